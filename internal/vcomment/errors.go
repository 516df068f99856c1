package vcomment

import "errors"

// Static error definitions for better error handling.
var (
	// ErrImageDecode indicates a malformed embedded picture payload.
	// Such failures are logged and the single image skipped; they never
	// abort a load pass.
	ErrImageDecode = errors.New("malformed picture payload")
)

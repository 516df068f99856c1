// Package app provides the command entry points of the tagger CLI.
// Each Execute function builds the tagging service from the loaded
// configuration and runs one user-facing operation.
package app

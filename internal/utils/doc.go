// Package utils provides small shared helpers for filename sanitizing,
// file existence checks and slice transformations.
package utils

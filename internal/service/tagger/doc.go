// Package tagger orchestrates the tagging pipeline: container detection,
// loading raw tags into the internal metadata model, applying edits and
// writing the result back. It is the layer the CLI commands talk to.
package tagger

// Package vcomment implements the bidirectional mapping between the internal
// metadata model and the Vorbis-comment tag representation: free-form tag
// fields with embedded structured sub-information (performer roles), numeric
// rating rescaling, totals-field aliases and the three competing cover art
// representations. The rules are deterministic and reversible where the
// representation allows it; lossy conversions (lyrics roles) are deliberate.
package vcomment

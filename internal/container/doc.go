// Package container abstracts the underlying audio container parser/writer.
// It exposes the raw Vorbis-comment tag dictionary, native picture blocks and
// save operations behind the File interface, with concrete adapters for FLAC
// (go-flac) and the Ogg family (taglib), plus codec detection for the generic
// Ogg audio/video container types.
package container

package container

//go:generate $MOCKGEN -source=container.go -destination=mocks/container_mock.go

import (
	"errors"

	"github.com/go-flac/flacpicture"

	"github.com/oshokin/vorbis-tagger/internal/metadata"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownFormat indicates that no candidate codec matched the stream header.
	ErrUnknownFormat = errors.New("unknown audio format")
	// ErrUnsupportedSaveOption indicates that the container rejected a save option.
	ErrUnsupportedSaveOption = errors.New("unsupported save option")
)

// Capabilities describes a concrete container format.
// The per-format behavior differences are configuration, not code: one engine
// parameterized by a Capabilities record serves every format.
type Capabilities struct {
	// Name is the display name stored in the format identifier field.
	Name string
	// Extension is the canonical filename extension.
	Extension string
	// SupportsPictures indicates native embedded-picture block storage.
	SupportsPictures bool
	// SupportsForeignTagRemoval indicates a coexisting legacy tag block
	// (ID3v2 on FLAC) can be stripped on save.
	SupportsForeignTagRemoval bool
}

// SaveOptions controls a container write.
type SaveOptions struct {
	// RemoveForeignTagBlock requests removal of a coexisting legacy tag block.
	// Containers that cannot honor it fail with ErrUnsupportedSaveOption.
	RemoveForeignTagBlock bool
}

// File is an open container handle.
// Mutations are applied in memory and persisted by Save.
// Implementations are not safe for concurrent use.
type File interface {
	// Path returns the filesystem path the handle was opened from.
	Path() string
	// Tags returns the raw tag dictionary, or nil when the container has none.
	Tags() *Tags
	// AddTags creates an empty tag dictionary when none is present.
	AddTags()
	// Pictures returns the native embedded pictures, when the format has them.
	Pictures() []*metadata.Image
	// ClearPictures removes all native picture blocks.
	ClearPictures()
	// AddPicture appends a native picture block.
	AddPicture(picture *flacpicture.MetadataBlockPicture)
	// Save persists the current state back to the file.
	Save(options SaveOptions) error
}

package container

import (
	"fmt"
	"sort"

	"github.com/go-flac/flacpicture"
	"go.senan.xyz/taglib"

	"github.com/oshokin/vorbis-tagger/internal/metadata"
)

// oggFile adapts the Ogg container family (Vorbis, FLAC, Speex, Theora, Opus)
// to the File interface through TagLib. These formats have no native picture
// storage; embedded images travel inside the tag dictionary as
// METADATA_BLOCK_PICTURE entries, which the mapping engine handles.
type oggFile struct {
	path string
	tags *Tags
}

// OpenOgg opens an Ogg-family file and reads its raw tag dictionary.
func OpenOgg(path string) (File, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read Ogg tags: %w", err)
	}

	// The map iteration order is randomized; sort names so repeated loads
	// of the same file see the same entry order.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	sort.Strings(names)

	tags := NewTags()

	for _, name := range names {
		for _, value := range raw[name] {
			tags.Append(name, value)
		}
	}

	return &oggFile{
		path: path,
		tags: tags,
	}, nil
}

// Path returns the filesystem path the handle was opened from.
func (f *oggFile) Path() string {
	return f.path
}

// Tags returns the raw tag dictionary. Ogg streams always carry a comment
// header, so this is never nil.
func (f *oggFile) Tags() *Tags {
	return f.tags
}

// AddTags is a no-op: the dictionary always exists.
func (f *oggFile) AddTags() {}

// Pictures returns nil: the format has no native picture blocks.
func (f *oggFile) Pictures() []*metadata.Image {
	return nil
}

// ClearPictures is a no-op for the same reason.
func (f *oggFile) ClearPictures() {}

// AddPicture is a no-op; the engine routes images through the tag dictionary
// for formats without native picture storage.
func (f *oggFile) AddPicture(_ *flacpicture.MetadataBlockPicture) {}

// Save writes the full tag dictionary back, replacing the existing one.
func (f *oggFile) Save(options SaveOptions) error {
	if options.RemoveForeignTagBlock {
		return fmt.Errorf("%s: %w", f.path, ErrUnsupportedSaveOption)
	}

	out := make(map[string][]string, f.tags.Len())

	for key, values := range f.tags.All() {
		out[f.tags.Display(key)] = values
	}

	if err := taglib.WriteTags(f.path, out, taglib.Clear); err != nil {
		return fmt.Errorf("failed to write Ogg tags: %w", err)
	}

	return nil
}

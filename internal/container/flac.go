package container

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/oshokin/vorbis-tagger/internal/constants"
	"github.com/oshokin/vorbis-tagger/internal/metadata"
)

// id3HeaderLength is the size of the fixed ID3v2 header.
const id3HeaderLength = 10

// flacFile adapts a native FLAC stream to the File interface.
// A leading ID3v2 block is tolerated on parse and either preserved or
// stripped on save, depending on SaveOptions.
type flacFile struct {
	path            string
	file            *flac.File
	tags            *Tags
	vendor          string
	commentIndex    int
	id3Prefix       []byte
	pendingPictures []*flacpicture.MetadataBlockPicture
	clearPictures   bool
}

// OpenFLAC opens a FLAC file and extracts its Vorbis comment block.
func OpenFLAC(path string) (File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read FLAC file: %w", err)
	}

	var id3Prefix []byte

	if bytes.HasPrefix(data, id3Magic) {
		id3Size, sizeErr := id3BlockSize(data)
		if sizeErr != nil {
			return nil, sizeErr
		}

		if !bytes.HasPrefix(data[id3Size:], flacStreamMagic) {
			return nil, fmt.Errorf("no fLaC marker found after ID3v2 block in %s", path)
		}

		id3Prefix = data[:id3Size]
		data = data[id3Size:]
	}

	file, err := flac.ParseBytes(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC stream: %w", err)
	}

	handle := &flacFile{
		path:         path,
		file:         file,
		commentIndex: -1,
		id3Prefix:    id3Prefix,
	}

	if err = handle.extractComment(); err != nil {
		return nil, err
	}

	return handle, nil
}

// Path returns the filesystem path the handle was opened from.
func (f *flacFile) Path() string {
	return f.path
}

// Tags returns the raw tag dictionary, or nil when the file has no
// Vorbis comment block.
func (f *flacFile) Tags() *Tags {
	return f.tags
}

// AddTags creates an empty tag dictionary when none is present.
func (f *flacFile) AddTags() {
	if f.tags == nil {
		f.tags = NewTags()
	}
}

// Pictures decodes all native picture blocks.
// Malformed blocks are skipped.
func (f *flacFile) Pictures() []*metadata.Image {
	var images []*metadata.Image

	for _, meta := range f.file.Meta {
		if meta.Type != flac.Picture {
			continue
		}

		picture, err := flacpicture.ParseFromMetaDataBlock(*meta)
		if err != nil {
			continue
		}

		images = append(images, &metadata.Image{
			Data:          picture.ImageData,
			MIMEType:      picture.MIME,
			Description:   picture.Description,
			Type:          metadata.PictureType(picture.PictureType),
			SourceTag:     "FLAC/PICTURE",
			SupportsTypes: true,
		})
	}

	return images
}

// ClearPictures marks all native picture blocks for removal on save.
func (f *flacFile) ClearPictures() {
	f.clearPictures = true
}

// AddPicture queues a native picture block for the next save.
func (f *flacFile) AddPicture(picture *flacpicture.MetadataBlockPicture) {
	if picture == nil {
		return
	}

	f.pendingPictures = append(f.pendingPictures, picture)
}

// Save rebuilds the Vorbis comment block, applies picture changes and writes
// the file back. The leading ID3v2 block, when present, is preserved unless
// removal was requested.
func (f *flacFile) Save(options SaveOptions) error {
	if f.tags != nil {
		if err := f.rebuildComment(); err != nil {
			return err
		}
	}

	if f.clearPictures {
		kept := make([]*flac.MetaDataBlock, 0, len(f.file.Meta))

		for _, meta := range f.file.Meta {
			if meta.Type != flac.Picture {
				kept = append(kept, meta)
			}
		}

		f.file.Meta = kept
	}

	for _, picture := range f.pendingPictures {
		block := picture.Marshal()
		f.file.Meta = append(f.file.Meta, &block)
	}

	if err := f.file.Save(f.path); err != nil {
		return fmt.Errorf("failed to save FLAC file: %w", err)
	}

	// go-flac writes a bare stream, so a preserved ID3v2 block has to be
	// put back in front of it.
	if len(f.id3Prefix) > 0 && !options.RemoveForeignTagBlock {
		return f.restoreID3Prefix()
	}

	return nil
}

func (f *flacFile) extractComment() error {
	for idx, meta := range f.file.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		comment, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return fmt.Errorf("failed to parse Vorbis comment block: %w", err)
		}

		f.commentIndex = idx
		f.vendor = comment.Vendor
		f.tags = NewTags()

		for _, entry := range comment.Comments {
			name, value, found := strings.Cut(entry, "=")
			if !found {
				continue
			}

			f.tags.Append(name, value)
		}

		return nil
	}

	return nil
}

func (f *flacFile) rebuildComment() error {
	comment := flacvorbis.New()
	if f.vendor != "" {
		comment.Vendor = f.vendor
	}

	for key, values := range f.tags.All() {
		name := f.tags.Display(key)

		for _, value := range values {
			if err := comment.Add(name, value); err != nil {
				return fmt.Errorf("failed to add tag %q: %w", name, err)
			}
		}
	}

	block := comment.Marshal()
	if f.commentIndex >= 0 {
		f.file.Meta[f.commentIndex] = &block
	} else {
		f.file.Meta = append(f.file.Meta, &block)
		f.commentIndex = len(f.file.Meta) - 1
	}

	return nil
}

func (f *flacFile) restoreID3Prefix() error {
	data, err := os.ReadFile(filepath.Clean(f.path))
	if err != nil {
		return fmt.Errorf("failed to re-read saved FLAC file: %w", err)
	}

	combined := make([]byte, 0, len(f.id3Prefix)+len(data))
	combined = append(combined, f.id3Prefix...)
	combined = append(combined, data...)

	if err = os.WriteFile(f.path, combined, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to restore ID3v2 block: %w", err)
	}

	return nil
}

// id3BlockSize computes the total size of a leading ID3v2 block.
// The size field is a syncsafe integer (7 bits per byte).
func id3BlockSize(data []byte) (int64, error) {
	if len(data) < id3HeaderLength {
		return 0, fmt.Errorf("truncated ID3v2 header: %d bytes", len(data))
	}

	size := int64(id3HeaderLength)
	size += int64(data[6]&0x7f)<<21 |
		int64(data[7]&0x7f)<<14 |
		int64(data[8]&0x7f)<<7 |
		int64(data[9]&0x7f)

	if size > int64(len(data)) {
		return 0, fmt.Errorf("ID3v2 block size %d exceeds file size %d", size, len(data))
	}

	return size, nil
}

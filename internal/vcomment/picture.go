package vcomment

import (
	"encoding/base64"
	"fmt"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/go-flac"

	"github.com/oshokin/vorbis-tagger/internal/metadata"
)

const (
	// pictureBlockTag is the canonical (lower-case) embedded picture tag.
	pictureBlockTag = "metadata_block_picture"
	// coverArtTag is the legacy bare-base64 cover art tag.
	coverArtTag = "coverart"
	// pictureBlockRawName is the raw spelling used when writing pictures
	// into the comment dictionary of formats without native picture blocks.
	pictureBlockRawName = "METADATA_BLOCK_PICTURE"
)

// decodePictureBlock decodes a base64-encoded FLAC picture structure as
// carried by the metadata_block_picture tag.
func decodePictureBlock(encoded string) (*metadata.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	block, err := flacpicture.ParseFromMetaDataBlock(flac.MetaDataBlock{
		Type: flac.Picture,
		Data: raw,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	return &metadata.Image{
		Data:          block.ImageData,
		MIMEType:      block.MIME,
		Description:   block.Description,
		Type:          metadata.PictureType(block.PictureType),
		SourceTag:     pictureBlockTag,
		SupportsTypes: true,
	}, nil
}

// decodeLegacyCoverArt decodes a legacy coverart tag value, which is bare
// base64 image bytes with no type or description envelope.
func decodeLegacyCoverArt(encoded string) (*metadata.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	return &metadata.Image{
		Data:      raw,
		SourceTag: coverArtTag,
	}, nil
}

// encodePictureBlock wraps an image into a FLAC picture structure ready for
// either a native picture block or a base64 comment value.
func encodePictureBlock(image *metadata.Image) *flacpicture.MetadataBlockPicture {
	//nolint:exhaustruct // Geometry fields are unknown for arbitrary image data.
	return &flacpicture.MetadataBlockPicture{
		PictureType: flacpicture.PictureType(image.Type),
		MIME:        image.MIMEType,
		Description: image.Description,
		ImageData:   image.Data,
	}
}

// encodePictureTagValue renders a picture structure as the base64 payload of
// a METADATA_BLOCK_PICTURE comment entry.
func encodePictureTagValue(block *flacpicture.MetadataBlockPicture) string {
	return base64.StdEncoding.EncodeToString(block.Marshal().Data)
}

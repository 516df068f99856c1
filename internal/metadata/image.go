package metadata

// PictureType classifies an embedded image.
// The numeric values are the ID3v2 APIC type codes, which the FLAC picture
// block and METADATA_BLOCK_PICTURE reuse unchanged.
type PictureType uint32

// Picture type codes.
const (
	PictureTypeOther PictureType = iota
	PictureTypeFileIcon
	PictureTypeOtherFileIcon
	PictureTypeFrontCover
	PictureTypeBackCover
	PictureTypeLeaflet
	PictureTypeMedia
	PictureTypeLeadArtist
	PictureTypeArtist
	PictureTypeConductor
	PictureTypeBand
	PictureTypeComposer
	PictureTypeLyricist
	PictureTypeRecordingLocation
	PictureTypeDuringRecording
	PictureTypeDuringPerformance
	PictureTypeScreenCapture
	PictureTypeFish
	PictureTypeIllustration
	PictureTypeBandLogo
	PictureTypePublisherLogo
)

//nolint:gochecknoglobals // Immutable lookup table for PictureType.String.
var pictureTypeNames = map[PictureType]string{
	PictureTypeOther:             "other",
	PictureTypeFileIcon:          "file icon",
	PictureTypeOtherFileIcon:     "other file icon",
	PictureTypeFrontCover:        "front cover",
	PictureTypeBackCover:         "back cover",
	PictureTypeLeaflet:           "leaflet page",
	PictureTypeMedia:             "media",
	PictureTypeLeadArtist:        "lead artist",
	PictureTypeArtist:            "artist",
	PictureTypeConductor:         "conductor",
	PictureTypeBand:              "band",
	PictureTypeComposer:          "composer",
	PictureTypeLyricist:          "lyricist",
	PictureTypeRecordingLocation: "recording location",
	PictureTypeDuringRecording:   "during recording",
	PictureTypeDuringPerformance: "during performance",
	PictureTypeScreenCapture:     "screen capture",
	PictureTypeFish:              "a bright coloured fish",
	PictureTypeIllustration:      "illustration",
	PictureTypeBandLogo:          "band logotype",
	PictureTypePublisherLogo:     "publisher logotype",
}

// String returns the human-readable classification name.
func (t PictureType) String() string {
	if name, ok := pictureTypeNames[t]; ok {
		return name
	}

	return "unknown"
}

// Image is a cover art image extracted from or destined for a container.
type Image struct {
	// Data contains the raw image bytes.
	Data []byte
	// MIMEType specifies the image format (e.g., "image/jpeg").
	MIMEType string
	// Description is the free-text picture description.
	Description string
	// Type is the picture classification.
	Type PictureType
	// SourceTag records where the image came from
	// (e.g. "metadata_block_picture", "FLAC/PICTURE", "COVERART").
	SourceTag string
	// SupportsTypes reports whether the source representation carries a type classification.
	SupportsTypes bool
}

// FileExtension returns a filename extension matching the image MIME type.
func (i *Image) FileExtension() string {
	switch i.MIMEType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}

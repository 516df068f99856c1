package vcomment

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/oshokin/vorbis-tagger/internal/container"
	"github.com/oshokin/vorbis-tagger/internal/logger"
	"github.com/oshokin/vorbis-tagger/internal/metadata"
)

// Engine applies the mapping rules between raw tag dictionaries and the
// internal metadata model. It is stateless beyond its configuration and safe
// for concurrent use.
type Engine struct {
	cfg Config
}

// SaveOptions controls a single save pass.
type SaveOptions struct {
	// ClearExistingTags drops every raw entry not produced by the current
	// metadata before writing.
	ClearExistingTags bool
	// RemoveForeignTagBlock requests removal of non-Vorbis tag blocks for
	// formats that support it; it is silently ignored elsewhere.
	RemoveForeignTagBlock bool
}

// NewEngine constructs an engine, falling back to the default rating scale
// when the configured one is unusable.
func NewEngine(cfg Config) *Engine {
	if cfg.RatingSteps < 2 {
		cfg.RatingSteps = DefaultRatingSteps
	}

	return &Engine{cfg: cfg}
}

// Load translates the raw tag dictionary of an open file into the internal
// metadata model. Malformed embedded pictures are logged and skipped, never
// fatal.
func (e *Engine) Load(
	ctx context.Context,
	file container.File,
	caps container.Capabilities,
) *metadata.Metadata {
	md := metadata.New()

	tags := file.Tags()
	if tags == nil {
		tags = container.NewTags()
	}

	for name, values := range tags.All() {
		for _, value := range values {
			entry := normalizeInbound(name, value, tags, e.cfg)

			switch entry.kind {
			case inboundSkip:
				continue
			case inboundPicture:
				image, err := decodePictureBlock(entry.value)
				if err != nil {
					logger.Errorf(ctx, "Cannot load image from %q: %v", file.Path(), err)
					continue
				}

				md.AppendImage(image)
			case inboundField:
				md.Add(entry.name, entry.value)
			}
		}
	}

	if caps.SupportsPictures {
		for _, image := range file.Pictures() {
			md.AppendImage(image)
		}
	}

	// The legacy cover art tag only counts when no modern picture tag is
	// present in the same file.
	if !tags.Contains(pictureBlockTag) {
		for _, encoded := range tags.Get(coverArtTag) {
			image, err := decodeLegacyCoverArt(encoded)
			if err != nil {
				logger.Errorf(ctx, "Cannot load image from %q: %v", file.Path(), err)
				continue
			}

			md.AppendImage(image)
		}
	}

	md.Add(metadata.FormatField, caps.Name)

	return md
}

// Save translates the internal metadata model back into the raw dictionary
// of an open file and persists it. When the file rejects a save option, the
// save is retried once without options.
func (e *Engine) Save(
	ctx context.Context,
	file container.File,
	caps container.Capabilities,
	md *metadata.Metadata,
	options SaveOptions,
) error {
	tags := file.Tags()
	if tags == nil {
		file.AddTags()
		tags = file.Tags()
	}

	if options.ClearExistingTags {
		tags.Clear()
	}

	if caps.SupportsPictures && (options.ClearExistingTags || len(md.Images()) > 0) {
		file.ClearPictures()
	}

	assembled := e.assembleRawTags(md)

	e.attachImages(file, caps, md, assembled)

	for name, values := range assembled.All() {
		tags.Set(assembled.Display(name), values)
	}

	e.applyDeletions(md, tags)

	saveOptions := container.SaveOptions{
		RemoveForeignTagBlock: options.RemoveForeignTagBlock && caps.SupportsForeignTagRemoval,
	}

	err := file.Save(saveOptions)
	if errors.Is(err, container.ErrUnsupportedSaveOption) {
		logger.Warnf(ctx, "Save options rejected for %q, retrying without them: %v", file.Path(), err)

		err = file.Save(container.SaveOptions{})
	}

	if err != nil {
		return fmt.Errorf("save tags to %q: %w", file.Path(), err)
	}

	return nil
}

// assembleRawTags runs the outbound rules over every field and re-emits the
// totals aliases so downstream readers see both spellings.
func (e *Engine) assembleRawTags(md *metadata.Metadata) *container.Tags {
	assembled := container.NewTags()

	for name, values := range md.All() {
		for _, value := range values {
			entry := normalizeOutbound(name, value, e.cfg)
			if entry.drop {
				continue
			}

			assembled.Append(entry.name, entry.value)
		}
	}

	if md.Contains("totaltracks") {
		assembled.Append("TRACKTOTAL", md.GetFirst("totaltracks"))
	}

	if md.Contains("totaldiscs") {
		assembled.Append("DISCTOTAL", md.GetFirst("totaldiscs"))
	}

	return assembled
}

// attachImages stores pending images either as native picture blocks or as
// base64 comment entries, depending on what the format supports.
func (e *Engine) attachImages(
	file container.File,
	caps container.Capabilities,
	md *metadata.Metadata,
	assembled *container.Tags,
) {
	for _, image := range md.Images() {
		block := encodePictureBlock(image)

		if caps.SupportsPictures {
			file.AddPicture(block)
			continue
		}

		assembled.Append(pictureBlockRawName, encodePictureTagValue(block))
	}
}

// applyDeletions removes raw entries for every field deleted from the model.
// Role-scoped deletions of performer and comment entries only remove values
// carrying that exact role suffix.
func (e *Engine) applyDeletions(md *metadata.Metadata, tags *container.Tags) {
	for _, name := range md.DeletedTags() {
		rawName, ok := resolveRawName(name, e.cfg)
		if !ok {
			continue
		}

		prefix, role, hasRole := splitCompositeName(name)
		if hasRole && (prefix == "performer" || prefix == "comment") {
			pattern := regexp.MustCompile(`\(` + regexp.QuoteMeta(role) + `\)`)

			var kept []string

			for _, value := range tags.Get(rawName) {
				if !pattern.MatchString(value) {
					kept = append(kept, value)
				}
			}

			if len(kept) > 0 {
				tags.Set(tags.Display(rawName), kept)
			} else {
				tags.Remove(rawName)
			}

			continue
		}

		tags.Remove(rawName)
	}
}

// splitCompositeName splits "performer:Piano" into its base and role parts.
func splitCompositeName(name string) (string, string, bool) {
	for i := range len(name) {
		if name[i] == ':' {
			return name[:i], name[i+1:], true
		}
	}

	return name, "", false
}

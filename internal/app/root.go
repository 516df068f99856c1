package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/vorbis-tagger/internal/config"
	"github.com/oshokin/vorbis-tagger/internal/logger"
	"github.com/oshokin/vorbis-tagger/internal/service/tagger"
	"github.com/oshokin/vorbis-tagger/internal/utils"
)

// ExecuteShowCommand prints the metadata of every given file.
func ExecuteShowCommand(ctx context.Context, cfg *config.Config, paths []string) {
	service := newTaggerService(ctx, cfg)

	for _, path := range paths {
		md, err := service.LoadFile(ctx, path)
		if err != nil {
			logger.Errorf(ctx, "Failed to load %s: %v", path, err)
			continue
		}

		logger.Infof(ctx, "%s:", path)

		for name, values := range md.All() {
			for _, value := range values {
				logger.Infof(ctx, "  %s = %s", name, value)
			}
		}

		for _, image := range md.Images() {
			logger.Infof(ctx, "  [image] %s, %s, %s",
				image.Type.String(), image.MIMEType, humanize.Bytes(uint64(len(image.Data))))
		}
	}
}

// ExecuteWriteCommand applies tag edits to every given file and prints a
// batch summary.
func ExecuteWriteCommand(ctx context.Context, cfg *config.Config, request *tagger.TagRequest) {
	service := newTaggerService(ctx, cfg)

	// Ensure the summary is ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		service.PrintBatchSummary(ctx)
	}()

	service.TagFiles(ctx, request)
}

// ExecuteDetectCommand prints the detected container format of every given file.
func ExecuteDetectCommand(ctx context.Context, cfg *config.Config, paths []string) {
	service := newTaggerService(ctx, cfg)

	for _, path := range paths {
		caps, err := service.DetectFormat(ctx, path)
		if err != nil {
			logger.Errorf(ctx, "Failed to detect %s: %v", path, err)
			continue
		}

		logger.Infof(ctx, "%s: %s", path, caps.Name)
	}
}

// ExecuteExportCoversCommand writes the embedded cover art of a file to a
// directory.
func ExecuteExportCoversCommand(ctx context.Context, cfg *config.Config, path, outputDir string) {
	service := newTaggerService(ctx, cfg)

	written, err := service.ExportCovers(ctx, path, outputDir)
	if err != nil {
		logger.Fatalf(ctx, "Failed to export covers: %v", err)
		return
	}

	if len(written) == 0 {
		logger.Infof(ctx, "%s has no embedded cover art", path)
		return
	}

	logger.Infof(ctx, "Exported %d cover(s) from %s: %s",
		len(written), path, strings.Join(utils.Map(written, filepath.Base), ", "))
}

// ExecuteSetEmailCommand stores the rating user email in the configuration
// file.
func ExecuteSetEmailCommand(ctx context.Context, cfg *config.Config, email string) {
	cfg.RatingUserEmail = email

	if err := config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Infof(ctx, "Rating user email set to %q", email)
	logger.Info(ctx, "Ratings stored for other users will now be ignored on load.")
}

// newTaggerService builds the tagging service or aborts the process.
func newTaggerService(ctx context.Context, cfg *config.Config) tagger.Service {
	service, err := tagger.NewService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize tagger service: %v", err)
	}

	return service
}

package tagger

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/vorbis-tagger/internal/config"
	"github.com/oshokin/vorbis-tagger/internal/constants"
	"github.com/oshokin/vorbis-tagger/internal/container"
	"github.com/oshokin/vorbis-tagger/internal/logger"
	"github.com/oshokin/vorbis-tagger/internal/metadata"
	"github.com/oshokin/vorbis-tagger/internal/utils"
	"github.com/oshokin/vorbis-tagger/internal/vcomment"
)

// Service provides methods for reading and writing Vorbis comment metadata.
type Service interface {
	// DetectFormat resolves the container format of the file at path.
	DetectFormat(ctx context.Context, path string) (container.Capabilities, error)
	// LoadFile reads the file's tags into the internal metadata model.
	LoadFile(ctx context.Context, path string) (*metadata.Metadata, error)
	// SaveFile writes the metadata model back into the file at path.
	SaveFile(ctx context.Context, path string, md *metadata.Metadata) error
	// TagFiles applies the requested edits to every file in the batch.
	// Per-file failures are recorded in the batch statistics, not fatal.
	TagFiles(ctx context.Context, request *TagRequest)
	// ExportCovers writes every embedded cover art image of the file to
	// outputDir and returns the written paths.
	ExportCovers(ctx context.Context, path, outputDir string) ([]string, error)
	// PrintBatchSummary prints a formatted summary of the last batch run.
	PrintBatchSummary(ctx context.Context)
}

// ServiceImpl implements the tagging service with cover art caching.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// engine applies the tag mapping rules.
	engine *vcomment.Engine
	// coverCache caches cover art loaded from disk, so batch runs over an
	// album read the artwork file once.
	coverCache *lru.Cache[string, *metadata.Image]
	// stats tracks the outcome of the current batch run.
	stats *BatchStatistics
	// statsMutex protects concurrent access to statistics.
	statsMutex *sync.Mutex
}

// TagRequest describes one batch edit run.
type TagRequest struct {
	// Paths are the files to edit.
	Paths []string
	// Set maps field names to replacement values.
	Set map[string]string
	// Delete lists field names whose raw tags are removed from the files.
	Delete []string
	// CoverPath optionally points to an image file embedded into every
	// file of the batch.
	CoverPath string
}

// BatchStatistics records the outcome of one batch run.
type BatchStatistics struct {
	// Processed is the number of files attempted.
	Processed int
	// Succeeded is the number of files written successfully.
	Succeeded int
	// Failed is the number of files that could not be processed.
	Failed int
	// StartTime marks the beginning of the batch run.
	StartTime time.Time
	// EndTime marks the end of the batch run.
	EndTime time.Time
}

// NewService creates a tagging service instance.
func NewService(cfg *config.Config) (Service, error) {
	coverCache, err := lru.New[string, *metadata.Image](cfg.CoverCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cover cache: %w", err)
	}

	engine := vcomment.NewEngine(vcomment.Config{
		RatingUserEmail: cfg.RatingUserEmail,
		RatingSteps:     cfg.RatingSteps,
	})

	return &ServiceImpl{
		cfg:        cfg,
		engine:     engine,
		coverCache: coverCache,
		stats:      new(BatchStatistics),
		statsMutex: new(sync.Mutex),
	}, nil
}

// DetectFormat resolves the container format of the file at path.
func (s *ServiceImpl) DetectFormat(ctx context.Context, path string) (container.Capabilities, error) {
	probe, err := detectFormat(path)
	if err != nil {
		return container.Capabilities{}, err
	}

	logger.Debugf(ctx, "Detected %s as %s", path, probe.Name)

	return probe.Capabilities, nil
}

// LoadFile reads the file's tags into the internal metadata model.
func (s *ServiceImpl) LoadFile(ctx context.Context, path string) (*metadata.Metadata, error) {
	file, caps, err := s.openFile(path)
	if err != nil {
		return nil, err
	}

	return s.engine.Load(ctx, file, caps), nil
}

// SaveFile writes the metadata model back into the file at path.
func (s *ServiceImpl) SaveFile(ctx context.Context, path string, md *metadata.Metadata) error {
	file, caps, err := s.openFile(path)
	if err != nil {
		return err
	}

	return s.engine.Save(ctx, file, caps, md, vcomment.SaveOptions{
		ClearExistingTags:     s.cfg.ClearExistingTags,
		RemoveForeignTagBlock: s.cfg.RemoveID3FromFLAC,
	})
}

// TagFiles applies the requested edits to every file in the batch.
func (s *ServiceImpl) TagFiles(ctx context.Context, request *TagRequest) {
	s.statsMutex.Lock()
	s.stats = &BatchStatistics{StartTime: time.Now()}
	s.statsMutex.Unlock()

	// Progress bars are disabled at verbose log levels to keep the
	// terminal output readable.
	var bar *progressbar.ProgressBar
	if logger.Level() <= zap.InfoLevel && len(request.Paths) > 1 {
		bar = progressbar.Default(int64(len(request.Paths)), "Tagging")
	}

	for _, path := range request.Paths {
		err := s.tagFile(ctx, path, request)

		s.statsMutex.Lock()
		s.stats.Processed++

		if err != nil {
			s.stats.Failed++

			logger.Errorf(ctx, "Failed to tag %s: %v", path, err)
		} else {
			s.stats.Succeeded++
		}
		s.statsMutex.Unlock()

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	s.statsMutex.Lock()
	s.stats.EndTime = time.Now()
	s.statsMutex.Unlock()
}

// ExportCovers writes every embedded cover art image of the file to outputDir.
func (s *ServiceImpl) ExportCovers(ctx context.Context, path, outputDir string) ([]string, error) {
	md, err := s.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	images := md.Images()
	if len(images) == 0 {
		return nil, nil
	}

	if err = os.MkdirAll(outputDir, constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	written := make([]string, 0, len(images))

	for _, image := range images {
		filename := utils.SanitizeFilename(base+"_"+image.Type.String()) +
			"_" + uuid.New().String() + image.FileExtension()
		target := filepath.Join(outputDir, filename)

		if err = os.WriteFile(target, image.Data, constants.DefaultFilePermissions); err != nil {
			return written, fmt.Errorf("failed to write cover file: %w", err)
		}

		logger.Infof(ctx, "Exported %s cover (%s) to %s",
			image.Type.String(), humanize.Bytes(uint64(len(image.Data))), target)

		written = append(written, target)
	}

	return written, nil
}

// PrintBatchSummary prints a formatted summary of the last batch run.
func (s *ServiceImpl) PrintBatchSummary(ctx context.Context) {
	s.statsMutex.Lock()
	stats := *s.stats
	s.statsMutex.Unlock()

	if stats.Processed == 0 {
		return
	}

	logger.Infof(ctx, "Tagged %d of %d files (%d failed) in %s",
		stats.Succeeded, stats.Processed, stats.Failed,
		stats.EndTime.Sub(stats.StartTime).Round(time.Millisecond))
}

// openFile detects the container format and opens the file with the matching
// parser.
func (s *ServiceImpl) openFile(path string) (container.File, container.Capabilities, error) {
	probe, err := detectFormat(path)
	if err != nil {
		return nil, container.Capabilities{}, err
	}

	var file container.File

	if probe.Capabilities.Name == container.CapabilitiesFLAC.Name {
		file, err = container.OpenFLAC(path)
	} else {
		file, err = container.OpenOgg(path)
	}

	if err != nil {
		return nil, container.Capabilities{}, err
	}

	return file, probe.Capabilities, nil
}

// tagFile applies the requested edits to a single file and saves it.
func (s *ServiceImpl) tagFile(ctx context.Context, path string, request *TagRequest) error {
	file, caps, err := s.openFile(path)
	if err != nil {
		return err
	}

	md := s.engine.Load(ctx, file, caps)

	for name, value := range request.Set {
		md.Set(name, value)
	}

	for _, name := range request.Delete {
		md.Delete(name)
	}

	if request.CoverPath != "" {
		cover, coverErr := s.loadCover(ctx, request.CoverPath)
		if coverErr != nil {
			return coverErr
		}

		md.AppendImage(cover)
	}

	return s.engine.Save(ctx, file, caps, md, vcomment.SaveOptions{
		ClearExistingTags:     s.cfg.ClearExistingTags,
		RemoveForeignTagBlock: s.cfg.RemoveID3FromFLAC,
	})
}

// loadCover reads a cover art file from disk, caching the decoded image so
// batch runs over an album do not re-read the same artwork per track.
func (s *ServiceImpl) loadCover(ctx context.Context, coverPath string) (*metadata.Image, error) {
	if cached, ok := s.coverCache.Get(coverPath); ok {
		logger.Debugf(ctx, "Cover %s served from cache", coverPath)

		return cached, nil
	}

	exists, err := utils.IsFileExist(coverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check cover file: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("cover file %s does not exist or is a directory", coverPath)
	}

	data, err := os.ReadFile(coverPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover file: %w", err)
	}

	image := &metadata.Image{
		Data:          data,
		MIMEType:      http.DetectContentType(data),
		Type:          metadata.PictureTypeFrontCover,
		SupportsTypes: true,
	}

	s.coverCache.Add(coverPath, image)

	return image, nil
}

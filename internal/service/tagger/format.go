package tagger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/vorbis-tagger/internal/constants"
	"github.com/oshokin/vorbis-tagger/internal/container"
)

// candidatesForPath narrows the codec candidates by file extension, so a
// .flac file is never scored against Ogg probes. Unknown extensions fall
// back to the full candidate list.
func candidatesForPath(path string) []*container.Probe {
	switch strings.ToLower(filepath.Ext(path)) {
	case constants.ExtensionFLAC:
		return []*container.Probe{container.NewFLACProbe()}
	case constants.ExtensionOggVorbis,
		constants.ExtensionOggAudio,
		constants.ExtensionOggFLAC,
		constants.ExtensionOggSpeex,
		constants.ExtensionOggOpus:
		return container.OggAudioCandidates()
	case constants.ExtensionOggVideo,
		constants.ExtensionOggTheora:
		return container.OggVideoCandidates()
	default:
		return allCandidates()
	}
}

// allCandidates returns every known codec probe in declaration order.
func allCandidates() []*container.Probe {
	candidates := []*container.Probe{container.NewFLACProbe()}
	candidates = append(candidates, container.OggAudioCandidates()...)
	candidates = append(candidates, container.OggVideoCandidates()...)

	return candidates
}

// readHeader reads the leading bytes the format detector inspects.
// Files shorter than the probe length yield what they have.
func readHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, container.HeaderProbeLength)

	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	return header[:n], nil
}

// detectFormat resolves the codec probe for the file at path.
func detectFormat(path string) (*container.Probe, error) {
	header, err := readHeader(path)
	if err != nil {
		return nil, err
	}

	probe, err := container.Detect(path, header, candidatesForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return probe, nil
}

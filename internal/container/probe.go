package container

import (
	"bytes"

	"github.com/oshokin/vorbis-tagger/internal/constants"
)

// HeaderProbeLength is how many leading bytes of a stream the detector inspects.
const HeaderProbeLength = 128

// Capability records for the supported formats.
//
//nolint:gochecknoglobals // Immutable per-format configuration records.
var (
	CapabilitiesFLAC = Capabilities{
		Name:                      "FLAC",
		Extension:                 constants.ExtensionFLAC,
		SupportsPictures:          true,
		SupportsForeignTagRemoval: true,
	}

	CapabilitiesOggVorbis = Capabilities{
		Name:      "Ogg Vorbis",
		Extension: constants.ExtensionOggVorbis,
	}

	CapabilitiesOggFLAC = Capabilities{
		Name:      "Ogg FLAC",
		Extension: constants.ExtensionOggFLAC,
	}

	CapabilitiesOggSpeex = Capabilities{
		Name:      "Speex",
		Extension: constants.ExtensionOggSpeex,
	}

	CapabilitiesOggTheora = Capabilities{
		Name:      "Ogg Theora",
		Extension: constants.ExtensionOggVideo,
	}

	CapabilitiesOggOpus = Capabilities{
		Name:      "Ogg Opus",
		Extension: constants.ExtensionOggOpus,
	}
)

// Codec magic markers. An Ogg stream starts with the "OggS" capture pattern;
// the first packet of the logical stream carries the codec identification.
//
//nolint:gochecknoglobals // Immutable byte patterns.
var (
	oggCapturePattern = []byte("OggS")
	vorbisPacketMagic = []byte("\x01vorbis")
	oggFLACMagic      = []byte("\x7fFLAC")
	speexMagic        = []byte("Speex   ")
	theoraPacketMagic = []byte("\x80theora")
	opusHeadMagic     = []byte("OpusHead")
	flacStreamMagic   = []byte("fLaC")
	id3Magic          = []byte("ID3")
)

// Probe is a candidate codec in container detection.
type Probe struct {
	// Name is the display name of the candidate format.
	Name string
	// Capabilities describes the candidate container.
	Capabilities Capabilities
	// Score rates how well the stream header matches this codec.
	// Higher is a stronger match; non-positive means "not this codec".
	Score func(filename string, header []byte) int
}

// Detect scores every candidate against the same header bytes and returns the
// one with the strictly highest score. Ties go to the last equal-highest
// candidate in declaration order. It fails with ErrUnknownFormat when no
// candidate scores positive.
func Detect(filename string, header []byte, candidates []*Probe) (*Probe, error) {
	var (
		best      *Probe
		bestScore int
	)

	for _, candidate := range candidates {
		score := candidate.Score(filename, header)
		if score > 0 && score >= bestScore {
			best, bestScore = candidate, score
		}
	}

	if best == nil {
		return nil, ErrUnknownFormat
	}

	return best, nil
}

// OggAudioCandidates returns the codec candidates for the generic Ogg audio
// container type (.oga), in declaration order.
func OggAudioCandidates() []*Probe {
	return []*Probe{
		newOggProbe(CapabilitiesOggFLAC, oggFLACMagic),
		newOggProbe(CapabilitiesOggSpeex, speexMagic),
		newOggProbe(CapabilitiesOggVorbis, vorbisPacketMagic),
		newOggProbe(CapabilitiesOggOpus, opusHeadMagic),
	}
}

// OggVideoCandidates returns the codec candidates for the generic Ogg video
// container type (.ogv).
func OggVideoCandidates() []*Probe {
	return []*Probe{
		newOggProbe(CapabilitiesOggTheora, theoraPacketMagic),
	}
}

// NewFLACProbe returns the probe for plain (non-Ogg) FLAC streams.
// A leading ID3v2 block in front of the fLaC marker is tolerated,
// scored lower than a clean stream.
func NewFLACProbe() *Probe {
	return &Probe{
		Name:         CapabilitiesFLAC.Name,
		Capabilities: CapabilitiesFLAC,
		Score: func(_ string, header []byte) int {
			if bytes.HasPrefix(header, flacStreamMagic) {
				return 2
			}

			if bytes.HasPrefix(header, id3Magic) && bytes.Contains(header, flacStreamMagic) {
				return 1
			}

			return 0
		},
	}
}

func newOggProbe(caps Capabilities, magic []byte) *Probe {
	return &Probe{
		Name:         caps.Name,
		Capabilities: caps,
		Score: func(_ string, header []byte) int {
			if !bytes.HasPrefix(header, oggCapturePattern) {
				return 0
			}

			if bytes.Contains(header, magic) {
				return 2
			}

			return 0
		},
	}
}

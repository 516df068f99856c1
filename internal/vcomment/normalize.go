package vcomment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oshokin/vorbis-tagger/internal/container"
	"github.com/oshokin/vorbis-tagger/internal/metadata"
)

// musicMagicPrefix is the fixed prefix MusicIP prepends to fingerprint values.
const musicMagicPrefix = "MusicMagic Fingerprint"

// DefaultRatingSteps is the rating scale used when none is configured.
const DefaultRatingSteps = 6

// Config carries the read-only settings the mapping rules depend on.
// It is passed explicitly so the rules stay pure and testable.
type Config struct {
	// RatingUserEmail scopes rating tags to one user; entries for other
	// users are dropped on load.
	RatingUserEmail string
	// RatingSteps is the number of rating steps (at least 2); the raw
	// scale is 0..1 and the internal scale 0..(RatingSteps-1).
	RatingSteps int
}

func (c Config) ratingDivisor() float64 {
	if c.RatingSteps < 2 {
		return float64(DefaultRatingSteps - 1)
	}

	return float64(c.RatingSteps - 1)
}

// inboundKind classifies the outcome of an inbound rule pass.
type inboundKind int

const (
	// inboundField is a plain internal field.
	inboundField inboundKind = iota
	// inboundSkip drops the raw entry entirely.
	inboundSkip
	// inboundPicture routes the value to the picture codec.
	inboundPicture
)

// inboundEntry is the outcome of translating one raw tag entry.
type inboundEntry struct {
	kind  inboundKind
	name  string
	value string
}

// normalizeInbound translates a single raw tag entry into its internal form.
// Rules are applied in priority order; the first match wins. The full raw
// dictionary is consulted for the totals-field conflict checks.
//
//nolint:cyclop // The rule table is a flat priority list; splitting it would obscure the order.
func normalizeInbound(name, value string, tags *container.Tags, cfg Config) inboundEntry {
	switch {
	case name == "date" || name == "originaldate":
		return inboundEntry{kind: inboundField, name: name, value: sanitizeDate(value)}

	case name == "performer" || name == "comment":
		// "performer=Joe Barr (Piano)" becomes "performer:Piano=Joe Barr".
		compositeName, strippedValue := splitRoleSuffix(name, value)

		return inboundEntry{kind: inboundField, name: compositeName, value: strippedValue}

	case strings.HasPrefix(name, "rating"):
		_, email, _ := strings.Cut(name, ":")
		if email != cfg.RatingUserEmail {
			return inboundEntry{kind: inboundSkip}
		}

		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return inboundEntry{kind: inboundSkip}
		}

		scaled := int(math.Round(parsed * cfg.ratingDivisor()))

		return inboundEntry{kind: inboundField, name: metadata.RatingField, value: strconv.Itoa(scaled)}

	case name == "fingerprint" && strings.HasPrefix(value, musicMagicPrefix):
		return inboundEntry{kind: inboundField, name: "musicip_fingerprint", value: value[len(musicMagicPrefix):]}

	case name == "tracktotal":
		if tags.Contains("totaltracks") {
			return inboundEntry{kind: inboundSkip}
		}

		return inboundEntry{kind: inboundField, name: "totaltracks", value: value}

	case name == "disctotal":
		if tags.Contains("totaldiscs") {
			return inboundEntry{kind: inboundSkip}
		}

		return inboundEntry{kind: inboundField, name: "totaldiscs", value: value}

	case name == pictureBlockTag:
		return inboundEntry{kind: inboundPicture, value: value}
	}

	if alias, ok := translateIn[name]; ok {
		return inboundEntry{kind: inboundField, name: alias, value: value}
	}

	return inboundEntry{kind: inboundField, name: name, value: value}
}

// outboundEntry is the outcome of translating one internal field value.
type outboundEntry struct {
	name  string
	value string
	drop  bool
}

// normalizeOutbound translates a single internal field value into its raw
// form. Rules are applied in priority order; the raw name is upper-cased
// last, whatever rule produced it.
func normalizeOutbound(name, value string, cfg Config) outboundEntry {
	switch {
	case name == metadata.RatingField:
		// Rating layout per the Quod Libet Vorbis comment conventions.
		rawName := "rating"
		if cfg.RatingUserEmail != "" {
			rawName += ":" + cfg.RatingUserEmail
		}

		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return outboundEntry{drop: true}
		}

		return outboundEntry{
			name:  strings.ToUpper(rawName),
			value: formatRatingValue(parsed / cfg.ratingDivisor()),
		}

	case metadata.IsPrivate(name):
		return outboundEntry{drop: true}

	case strings.HasPrefix(name, "lyrics:"):
		// The role suffix has no raw representation; dropping it is lossy by design.
		name = "lyrics"

	case name == "date" || name == "originaldate":
		value = sanitizeDate(value)

	case strings.HasPrefix(name, "performer:") || strings.HasPrefix(name, "comment:"):
		// "performer:Piano=Joe Barr" becomes "performer=Joe Barr (Piano)".
		base, role, _ := strings.Cut(name, ":")

		name = base
		if role != "" {
			value += " (" + role + ")"
		}

	case name == "musicip_fingerprint":
		name = "fingerprint"
		value = musicMagicPrefix + value

	default:
		if alias, ok := translateOut[name]; ok {
			name = alias
		}
	}

	return outboundEntry{name: strings.ToUpper(name), value: value}
}

// resolveRawName resolves the raw tag name an internal field would be written
// under, without any value transformation. Used by the deletion pass.
// The second return value is false for private fields, which have no raw name.
func resolveRawName(name string, cfg Config) (string, bool) {
	switch {
	case name == metadata.RatingField:
		if cfg.RatingUserEmail != "" {
			return "rating:" + cfg.RatingUserEmail, true
		}

		return "rating", true

	case metadata.IsPrivate(name):
		return "", false

	case strings.HasPrefix(name, "lyrics:"):
		return "lyrics", true

	case strings.HasPrefix(name, "performer:") || strings.HasPrefix(name, "comment:"):
		base, _, _ := strings.Cut(name, ":")

		return base, true

	case name == "musicip_fingerprint":
		return "fingerprint", true
	}

	if alias, ok := translateOut[name]; ok {
		return alias, true
	}

	return name, true
}

// sanitizeDate strips all-zero or missing date components:
// "1999-00-00" becomes "1999", "1999-03-00" becomes "1999-03".
// Values that do not start with a number pass through unchanged.
func sanitizeDate(value string) string {
	var parts []int

	for _, component := range strings.SplitN(value, "-", 3) {
		number, err := strconv.Atoi(strings.TrimSpace(component))
		if err != nil || number == 0 {
			break
		}

		parts = append(parts, number)
	}

	switch len(parts) {
	case 1:
		return fmt.Sprintf("%04d", parts[0])
	case 2:
		return fmt.Sprintf("%04d-%02d", parts[0], parts[1])
	case 3:
		return fmt.Sprintf("%04d-%02d-%02d", parts[0], parts[1], parts[2])
	default:
		return value
	}
}

// splitRoleSuffix extracts a trailing parenthesized role from a performer or
// comment value. It scans backward from the final ')' counting nesting depth;
// when no balanced opener is found with room before it, the name stays bare
// and the value is untouched.
func splitRoleSuffix(name, value string) (string, string) {
	name += ":"

	if !strings.HasSuffix(value, ")") {
		return name, value
	}

	start := len(value) - 2
	count := 1

	for count > 0 && start > 0 {
		switch value[start] {
		case ')':
			count++
		case '(':
			count--
		}

		start--
	}

	if start > 0 {
		name += value[start+2 : len(value)-1]
		value = value[:start]
	}

	return name, value
}

// formatRatingValue renders a raw rating float the way the reference
// implementation did: always with a decimal point ("1.0", "0.6").
func formatRatingValue(value float64) string {
	formatted := strconv.FormatFloat(value, 'g', -1, 64)
	if !strings.ContainsAny(formatted, ".e") {
		formatted += ".0"
	}

	return formatted
}

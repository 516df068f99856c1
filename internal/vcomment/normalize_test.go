package vcomment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oshokin/vorbis-tagger/internal/container"
	"github.com/oshokin/vorbis-tagger/internal/metadata"
)

// TestSanitizeDate tests the sanitizeDate function.
func TestSanitizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full date",
			input:    "2006-05-07",
			expected: "2006-05-07",
		},
		{
			name:     "zero day stripped",
			input:    "2006-05-00",
			expected: "2006-05",
		},
		{
			name:     "zero month and day stripped",
			input:    "2006-00-00",
			expected: "2006",
		},
		{
			name:     "zero month strips day too",
			input:    "2006-00-02",
			expected: "2006",
		},
		{
			name:     "year only",
			input:    "2006",
			expected: "2006",
		},
		{
			name:     "padded components",
			input:    "2006-5-7",
			expected: "2006-05-07",
		},
		{
			name:     "non-numeric passes through",
			input:    "unknown",
			expected: "unknown",
		},
		{
			name:     "zero year passes through",
			input:    "0000-05-07",
			expected: "0000-05-07",
		},
		{
			name:     "empty passes through",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sanitizeDate(tt.input))
		})
	}
}

// TestSplitRoleSuffix tests the splitRoleSuffix function.
func TestSplitRoleSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		tagName       string
		input         string
		expectedName  string
		expectedValue string
	}{
		{
			name:          "simple role",
			tagName:       "performer",
			input:         "Joe Barr (Piano)",
			expectedName:  "performer:Piano",
			expectedValue: "Joe Barr",
		},
		{
			name:          "nested parentheses in role",
			tagName:       "performer",
			input:         "Jane Doe (Guitar (acoustic))",
			expectedName:  "performer:Guitar (acoustic)",
			expectedValue: "Jane Doe",
		},
		{
			name:          "no role",
			tagName:       "performer",
			input:         "Joe Barr",
			expectedName:  "performer:",
			expectedValue: "Joe Barr",
		},
		{
			name:          "parenthesized from the start stays whole",
			tagName:       "performer",
			input:         "(Piano)",
			expectedName:  "performer:",
			expectedValue: "(Piano)",
		},
		{
			name:          "comment with context",
			tagName:       "comment",
			input:         "great take (studio)",
			expectedName:  "comment:studio",
			expectedValue: "great take",
		},
		{
			name:          "empty value",
			tagName:       "comment",
			input:         "",
			expectedName:  "comment:",
			expectedValue: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotName, gotValue := splitRoleSuffix(tt.tagName, tt.input)
			assert.Equal(t, tt.expectedName, gotName)
			assert.Equal(t, tt.expectedValue, gotValue)
		})
	}
}

// TestNormalizeInboundRating tests rating translation on load.
func TestNormalizeInboundRating(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingUserEmail: "user@example.com", RatingSteps: 6}
	tags := container.NewTags()

	tests := []struct {
		name          string
		tagName       string
		value         string
		expectedKind  inboundKind
		expectedValue string
	}{
		{
			name:          "matching email",
			tagName:       "rating:user@example.com",
			value:         "0.6",
			expectedKind:  inboundField,
			expectedValue: "3",
		},
		{
			name:         "foreign email skipped",
			tagName:      "rating:other@example.com",
			value:        "0.6",
			expectedKind: inboundSkip,
		},
		{
			name:         "bare rating with configured email skipped",
			tagName:      "rating",
			value:        "0.6",
			expectedKind: inboundSkip,
		},
		{
			name:         "unparsable value skipped",
			tagName:      "rating:user@example.com",
			value:        "great",
			expectedKind: inboundSkip,
		},
		{
			name:          "full scale",
			tagName:       "rating:user@example.com",
			value:         "1.0",
			expectedKind:  inboundField,
			expectedValue: "5",
		},
		{
			name:          "zero",
			tagName:       "rating:user@example.com",
			value:         "0.0",
			expectedKind:  inboundField,
			expectedValue: "0",
		},
		{
			name:          "rounds to nearest step",
			tagName:       "rating:user@example.com",
			value:         "0.5",
			expectedKind:  inboundField,
			expectedValue: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := normalizeInbound(tt.tagName, tt.value, tags, cfg)
			assert.Equal(t, tt.expectedKind, entry.kind)

			if tt.expectedKind == inboundField {
				assert.Equal(t, metadata.RatingField, entry.name)
				assert.Equal(t, tt.expectedValue, entry.value)
			}
		})
	}
}

// TestNormalizeInboundRatingNoEmail covers the unscoped rating tag.
func TestNormalizeInboundRatingNoEmail(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingSteps: 6}
	tags := container.NewTags()

	entry := normalizeInbound("rating", "0.8", tags, cfg)
	assert.Equal(t, inboundField, entry.kind)
	assert.Equal(t, "4", entry.value)

	entry = normalizeInbound("rating:someone@example.com", "0.8", tags, cfg)
	assert.Equal(t, inboundSkip, entry.kind)
}

// TestNormalizeInboundFingerprint tests the MusicIP fingerprint prefix handling.
func TestNormalizeInboundFingerprint(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingSteps: 6}
	tags := container.NewTags()

	entry := normalizeInbound("fingerprint", "MusicMagic Fingerprintabc123", tags, cfg)
	assert.Equal(t, inboundField, entry.kind)
	assert.Equal(t, "musicip_fingerprint", entry.name)
	assert.Equal(t, "abc123", entry.value)

	entry = normalizeInbound("fingerprint", "something else", tags, cfg)
	assert.Equal(t, "fingerprint", entry.name)
	assert.Equal(t, "something else", entry.value)
}

// TestNormalizeInboundTotals tests the totals alias conflict rules.
func TestNormalizeInboundTotals(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingSteps: 6}

	t.Run("alias adopted when canonical absent", func(t *testing.T) {
		t.Parallel()

		tags := container.NewTags()
		tags.Append("TRACKTOTAL", "12")

		entry := normalizeInbound("tracktotal", "12", tags, cfg)
		assert.Equal(t, inboundField, entry.kind)
		assert.Equal(t, "totaltracks", entry.name)
	})

	t.Run("alias skipped when canonical present", func(t *testing.T) {
		t.Parallel()

		tags := container.NewTags()
		tags.Append("TOTALTRACKS", "12")
		tags.Append("TRACKTOTAL", "12")

		entry := normalizeInbound("tracktotal", "12", tags, cfg)
		assert.Equal(t, inboundSkip, entry.kind)
	})

	t.Run("disc alias skipped when canonical present", func(t *testing.T) {
		t.Parallel()

		tags := container.NewTags()
		tags.Append("TOTALDISCS", "2")

		entry := normalizeInbound("disctotal", "2", tags, cfg)
		assert.Equal(t, inboundSkip, entry.kind)
	})
}

// TestNormalizeInboundTranslation tests the MusicBrainz identifier aliases.
func TestNormalizeInboundTranslation(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingSteps: 6}
	tags := container.NewTags()

	entry := normalizeInbound("musicbrainz_trackid", "abc", tags, cfg)
	assert.Equal(t, "musicbrainz_recordingid", entry.name)

	entry = normalizeInbound("musicbrainz_releasetrackid", "def", tags, cfg)
	assert.Equal(t, "musicbrainz_trackid", entry.name)

	entry = normalizeInbound("title", "Song", tags, cfg)
	assert.Equal(t, "title", entry.name)
	assert.Equal(t, "Song", entry.value)
}

// TestNormalizeOutbound tests field translation on save.
func TestNormalizeOutbound(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingUserEmail: "user@example.com", RatingSteps: 6}

	tests := []struct {
		name          string
		fieldName     string
		value         string
		expectedName  string
		expectedValue string
		expectedDrop  bool
	}{
		{
			name:          "plain field upper-cased",
			fieldName:     "title",
			value:         "Song",
			expectedName:  "TITLE",
			expectedValue: "Song",
		},
		{
			name:          "rating scoped to email",
			fieldName:     metadata.RatingField,
			value:         "3",
			expectedName:  "RATING:USER@EXAMPLE.COM",
			expectedValue: "0.6",
		},
		{
			name:          "rating full scale keeps decimal point",
			fieldName:     metadata.RatingField,
			value:         "5",
			expectedName:  "RATING:USER@EXAMPLE.COM",
			expectedValue: "1.0",
		},
		{
			name:          "rating zero keeps decimal point",
			fieldName:     metadata.RatingField,
			value:         "0",
			expectedName:  "RATING:USER@EXAMPLE.COM",
			expectedValue: "0.0",
		},
		{
			name:         "unparsable rating dropped",
			fieldName:    metadata.RatingField,
			value:        "five",
			expectedDrop: true,
		},
		{
			name:         "private field dropped",
			fieldName:    "~format",
			value:        "FLAC",
			expectedDrop: true,
		},
		{
			name:          "lyrics role dropped",
			fieldName:     "lyrics:translation",
			value:         "la la la",
			expectedName:  "LYRICS",
			expectedValue: "la la la",
		},
		{
			name:          "performer role folded into value",
			fieldName:     "performer:Piano",
			value:         "Joe Barr",
			expectedName:  "PERFORMER",
			expectedValue: "Joe Barr (Piano)",
		},
		{
			name:          "performer without role stays bare",
			fieldName:     "performer:",
			value:         "Joe Barr",
			expectedName:  "PERFORMER",
			expectedValue: "Joe Barr",
		},
		{
			name:          "comment role folded into value",
			fieldName:     "comment:studio",
			value:         "great take",
			expectedName:  "COMMENT",
			expectedValue: "great take (studio)",
		},
		{
			name:          "fingerprint prefix restored",
			fieldName:     "musicip_fingerprint",
			value:         "abc123",
			expectedName:  "FINGERPRINT",
			expectedValue: "MusicMagic Fingerprintabc123",
		},
		{
			name:          "date sanitized",
			fieldName:     "date",
			value:         "2006-00-00",
			expectedName:  "DATE",
			expectedValue: "2006",
		},
		{
			name:          "recording identifier aliased back",
			fieldName:     "musicbrainz_recordingid",
			value:         "abc",
			expectedName:  "MUSICBRAINZ_TRACKID",
			expectedValue: "abc",
		},
		{
			name:          "track identifier aliased back",
			fieldName:     "musicbrainz_trackid",
			value:         "def",
			expectedName:  "MUSICBRAINZ_RELEASETRACKID",
			expectedValue: "def",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entry := normalizeOutbound(tt.fieldName, tt.value, cfg)
			assert.Equal(t, tt.expectedDrop, entry.drop)

			if !tt.expectedDrop {
				assert.Equal(t, tt.expectedName, entry.name)
				assert.Equal(t, tt.expectedValue, entry.value)
			}
		})
	}
}

// TestNormalizeOutboundRatingNoEmail tests the unscoped rating spelling.
func TestNormalizeOutboundRatingNoEmail(t *testing.T) {
	t.Parallel()

	entry := normalizeOutbound(metadata.RatingField, "3", Config{RatingSteps: 6})
	assert.Equal(t, "RATING", entry.name)
	assert.Equal(t, "0.6", entry.value)
}

// TestPerformerRoundTrip verifies load and save are symmetric for roles.
func TestPerformerRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingSteps: 6}
	tags := container.NewTags()

	values := []string{
		"Joe Barr (Piano)",
		"Jane Doe (Guitar (acoustic))",
		"Solo Act",
	}

	for _, value := range values {
		entry := normalizeInbound("performer", value, tags, cfg)
		out := normalizeOutbound(entry.name, entry.value, cfg)

		assert.Equal(t, "PERFORMER", out.name)
		assert.Equal(t, value, out.value)
	}
}

// TestResolveRawName tests the deletion-pass name resolution.
func TestResolveRawName(t *testing.T) {
	t.Parallel()

	cfg := Config{RatingUserEmail: "user@example.com", RatingSteps: 6}

	tests := []struct {
		name       string
		fieldName  string
		expected   string
		expectedOK bool
	}{
		{
			name:       "rating scoped",
			fieldName:  metadata.RatingField,
			expected:   "rating:user@example.com",
			expectedOK: true,
		},
		{
			name:       "private field has no raw name",
			fieldName:  "~format",
			expectedOK: false,
		},
		{
			name:       "lyrics role collapses",
			fieldName:  "lyrics:translation",
			expected:   "lyrics",
			expectedOK: true,
		},
		{
			name:       "performer role collapses",
			fieldName:  "performer:Piano",
			expected:   "performer",
			expectedOK: true,
		},
		{
			name:       "alias resolves",
			fieldName:  "musicbrainz_recordingid",
			expected:   "musicbrainz_trackid",
			expectedOK: true,
		},
		{
			name:       "plain name passes through",
			fieldName:  "title",
			expected:   "title",
			expectedOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := resolveRawName(tt.fieldName, cfg)
			assert.Equal(t, tt.expectedOK, ok)

			if ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

// TestFormatRatingValue pins the decimal rendering of raw rating values.
func TestFormatRatingValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.6", formatRatingValue(0.6))
	assert.Equal(t, "1.0", formatRatingValue(1))
	assert.Equal(t, "0.0", formatRatingValue(0))
	assert.Equal(t, "0.2", formatRatingValue(0.2))
}

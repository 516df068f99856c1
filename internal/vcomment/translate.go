package vcomment

import "fmt"

// translateIn maps raw tag names to internal aliases on load.
// The reverse table is derived from it, never edited by hand, so the two
// cannot drift apart.
//
//nolint:gochecknoglobals // Static translation table, built once.
var translateIn = map[string]string{
	"musicbrainz_trackid":        "musicbrainz_recordingid",
	"musicbrainz_releasetrackid": "musicbrainz_trackid",
}

//nolint:gochecknoglobals // Derived from translateIn at initialization.
var translateOut = mustInvertTable(translateIn)

// mustInvertTable builds the reverse lookup table and asserts bijectivity.
func mustInvertTable(forward map[string]string) map[string]string {
	reverse := make(map[string]string, len(forward))

	for rawName, internalName := range forward {
		if _, exists := reverse[internalName]; exists {
			panic(fmt.Sprintf("translation table is not bijective: duplicate internal name %q", internalName))
		}

		reverse[internalName] = rawName
	}

	return reverse
}

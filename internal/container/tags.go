package container

import (
	"iter"
	"slices"
	"strings"
)

// Tags is the container's raw tag dictionary: a case-insensitive, ordered,
// multi-valued name/value map. Names are canonicalized to lower case for
// lookup and iteration; the spelling passed to the latest Append or Set is
// kept for writing back to the file.
type Tags struct {
	keys    []string
	values  map[string][]string
	display map[string]string
}

// NewTags creates an empty raw tag dictionary.
func NewTags() *Tags {
	return &Tags{
		values:  make(map[string][]string),
		display: make(map[string]string),
	}
}

// Append adds a value to the named entry, preserving earlier values.
func (t *Tags) Append(name, value string) {
	key := canonicalTagName(name)
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
		t.display[key] = name
	}

	t.values[key] = append(t.values[key], value)
}

// Set replaces all values of the named entry and adopts the given spelling.
// Setting no values removes the entry.
func (t *Tags) Set(name string, values []string) {
	key := canonicalTagName(name)
	if len(values) == 0 {
		t.Remove(name)

		return
	}

	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.display[key] = name
	t.values[key] = slices.Clone(values)
}

// Get returns all values of the named entry.
func (t *Tags) Get(name string) []string {
	return slices.Clone(t.values[canonicalTagName(name)])
}

// GetFirst returns the first value of the named entry or an empty string.
func (t *Tags) GetFirst(name string) string {
	values := t.values[canonicalTagName(name)]
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// Contains reports whether the named entry is present.
func (t *Tags) Contains(name string) bool {
	_, ok := t.values[canonicalTagName(name)]

	return ok
}

// Remove deletes the named entry entirely.
func (t *Tags) Remove(name string) {
	key := canonicalTagName(name)
	if _, ok := t.values[key]; !ok {
		return
	}

	delete(t.values, key)
	delete(t.display, key)

	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
}

// Clear removes all entries.
func (t *Tags) Clear() {
	t.keys = nil
	t.values = make(map[string][]string)
	t.display = make(map[string]string)
}

// Display returns the spelling the named entry will be written with.
func (t *Tags) Display(name string) string {
	key := canonicalTagName(name)
	if display, ok := t.display[key]; ok {
		return display
	}

	return name
}

// All iterates the entries in insertion order, yielding canonical
// (lower-cased) names.
func (t *Tags) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, key := range t.keys {
			if !yield(key, t.values[key]) {
				return
			}
		}
	}
}

// Len returns the number of distinct entry names.
func (t *Tags) Len() int {
	return len(t.keys)
}

// Vorbis comment names are case-insensitive; lower case is the canonical
// form the mapping rules match against.
func canonicalTagName(name string) string {
	return strings.ToLower(name)
}

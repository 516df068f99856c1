package metadata

import (
	"iter"
	"slices"
	"strings"
)

// PrivateFieldPrefix marks internal fields that must never be persisted to a file.
const PrivateFieldPrefix = "~"

// Well-known internal pseudo-field names.
const (
	// RatingField holds the user rating in 0..(steps-1).
	RatingField = PrivateFieldPrefix + "rating"
	// FormatField identifies the concrete container type a record was loaded from.
	FormatField = PrivateFieldPrefix + "format"
)

// Metadata is an ordered multi-valued string store.
// Field names may carry a private prefix (not persisted) or a composite
// "base:role" suffix. Value order per name is preserved.
// Metadata is not safe for concurrent use.
type Metadata struct {
	names   []string
	values  map[string][]string
	deleted []string
	images  []*Image
}

// New creates an empty metadata record.
func New() *Metadata {
	return &Metadata{
		values: make(map[string][]string),
	}
}

// Add appends a value to the named field, keeping earlier values.
func (m *Metadata) Add(name, value string) {
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}

	m.values[name] = append(m.values[name], value)
}

// Set replaces all values of the named field.
// Setting no values removes the field without recording a deletion.
func (m *Metadata) Set(name string, values ...string) {
	if len(values) == 0 {
		m.remove(name)

		return
	}

	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}

	m.values[name] = slices.Clone(values)
}

// Get returns all values of the named field in insertion order.
func (m *Metadata) Get(name string) []string {
	return slices.Clone(m.values[name])
}

// GetFirst returns the first value of the named field or an empty string.
func (m *Metadata) GetFirst(name string) string {
	values := m.values[name]
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// Contains reports whether the named field is present.
func (m *Metadata) Contains(name string) bool {
	_, ok := m.values[name]

	return ok
}

// Delete removes the named field and records it in the deletion list,
// so the next save pass removes the corresponding raw tag from the file.
func (m *Metadata) Delete(name string) {
	m.remove(name)

	if !slices.Contains(m.deleted, name) {
		m.deleted = append(m.deleted, name)
	}
}

// DeletedTags returns the names marked for deletion, in marking order.
func (m *Metadata) DeletedTags() []string {
	return slices.Clone(m.deleted)
}

// All iterates the fields in insertion order.
func (m *Metadata) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, name := range m.names {
			if !yield(name, m.values[name]) {
				return
			}
		}
	}
}

// Len returns the number of distinct field names.
func (m *Metadata) Len() int {
	return len(m.names)
}

// AppendImage adds a cover art image to the record.
// The record owns the image list.
func (m *Metadata) AppendImage(image *Image) {
	if image == nil {
		return
	}

	m.images = append(m.images, image)
}

// Images returns the record's image list.
func (m *Metadata) Images() []*Image {
	return m.images
}

// IsPrivate reports whether the field name carries the private prefix.
func IsPrivate(name string) bool {
	return strings.HasPrefix(name, PrivateFieldPrefix)
}

func (m *Metadata) remove(name string) {
	if _, ok := m.values[name]; !ok {
		return
	}

	delete(m.values, name)

	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
}

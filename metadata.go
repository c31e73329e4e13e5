/*
Package metadata provides an ordered, multi-valued mapping of strings that is carried
alongside events and requests, along with helpers to read CloudEvents attributes from it
and to move it across gRPC and HTTP boundaries.
*/
package metadata

import (
	"fmt"
	"strings"
)

// Metadata is an ordered, multi-valued mapping of string keys to string values that is
// carried alongside an event or request to describe it without unmarshaling the entire
// payload (similar to message headers). Each key may hold any number of values, which
// are returned in the order they were set. Keys are case-sensitive.
//
// The zero value is an empty Metadata that is ready to use. Metadata is not safe for
// concurrent use; it is expected to have a single owner at a time.
type Metadata struct {
	values map[string][]string
	keys   []string
}

// New returns an empty Metadata.
func New() *Metadata {
	return &Metadata{
		values: make(map[string][]string),
		keys:   make([]string, 0),
	}
}

// Set appends the value to the values already stored under the key. Set never replaces
// prior values; use Replace or Delete to remove them.
func (m *Metadata) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], value)
}

// Get returns all of the values set under the key in the order they were set. If the
// key has no values an empty slice is returned. The slice is a copy so modifying it
// does not modify the metadata.
func (m *Metadata) Get(key string) []string {
	vals := m.values[key]
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// First returns the first value set under the key and true, or an empty string and
// false if the key has no values.
func (m *Metadata) First(key string) (string, bool) {
	if vals := m.values[key]; len(vals) > 0 {
		return vals[0], true
	}
	return "", false
}

// Has returns true if at least one value is stored under the key.
func (m *Metadata) Has(key string) bool {
	return len(m.values[key]) > 0
}

// Delete removes all values stored under the key; deleting a missing key is a no-op.
func (m *Metadata) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Replace removes any values stored under the key then sets the specified values.
func (m *Metadata) Replace(key string, values ...string) {
	m.Delete(key)
	for _, value := range values {
		m.Set(key, value)
	}
}

// Clear removes every key and value from the metadata.
func (m *Metadata) Clear() {
	for key := range m.values {
		delete(m.values, key)
	}
	m.keys = m.keys[:0]
}

// Len returns the number of keys that have values.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in the order they were first set.
func (m *Metadata) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Range calls fn for each key in insertion order with a copy of its values. If fn
// returns false, iteration stops.
func (m *Metadata) Range(fn func(key string, values []string) bool) {
	for _, key := range m.Keys() {
		if !fn(key, m.Get(key)) {
			return
		}
	}
}

// Clone returns a deep copy of the metadata.
func (m *Metadata) Clone() *Metadata {
	c := New()
	c.Merge(m)
	return c
}

// Merge appends all of the values in other to this metadata, preserving the order of
// the keys and values in other.
func (m *Metadata) Merge(other *Metadata) {
	if other == nil {
		return
	}

	for _, key := range other.keys {
		for _, value := range other.values[key] {
			m.Set(key, value)
		}
	}
}

// String returns a representation of the metadata for logging and debugging.
func (m *Metadata) String() string {
	if m == nil {
		return ""
	}

	vals := make([]string, 0, len(m.keys))
	for _, key := range m.keys {
		vals = append(vals, fmt.Sprintf("%s=[%s]", key, strings.Join(m.values[key], " ")))
	}
	return fmt.Sprintf("Metadata{%s}", strings.Join(vals, ", "))
}

package envmap

import (
	"iter"
	"slices"
)

// Map is an insertion-ordered string to string mapping.
// The zero value is not usable; create one with New.
type Map struct {
	keys   []string
	values map[string]string
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: make(map[string]string)}
}

// FromPairs builds a Map from alternating key, value arguments.
// A trailing key without a value is stored with an empty value.
func FromPairs(kv ...string) *Map {
	m := New()
	for i := 0; i < len(kv); i += 2 {
		value := ""
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		m.Set(kv[i], value)
	}
	return m
}

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key, or an empty string.
func (m *Map) Get(key string) string {
	return m.values[key]
}

// Lookup returns the value stored under key and whether it was present.
// It satisfies the same shape as os.LookupEnv.
func (m *Map) Lookup(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// All iterates the entries in insertion order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	c := New()
	for k, v := range m.All() {
		c.Set(k, v)
	}
	return c
}

// ToMap returns the entries as an unordered Go map.
func (m *Map) ToMap() map[string]string {
	out := make(map[string]string, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

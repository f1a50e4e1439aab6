package envmap

// Merge returns a new Map holding every entry of env followed by each entry
// of defaults whose key is not already in env. Neither input is modified.
func Merge(env, defaults *Map) *Map {
	out := New()
	for k, v := range env.All() {
		out.Set(k, v)
	}
	out.MergeMissing(defaults)
	return out
}

// MergeMissing inserts every entry of defaults whose key is absent from m,
// in the order of defaults. Existing keys are never overwritten.
// It returns the keys that were added.
func (m *Map) MergeMissing(defaults *Map) []string {
	var added []string
	for k, v := range defaults.All() {
		if m.Has(k) {
			continue
		}
		m.Set(k, v)
		added = append(added, k)
	}
	return added
}

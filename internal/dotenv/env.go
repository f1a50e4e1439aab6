package dotenv

import "os"

// Lookuper provides the ambient environment used as a fallback when a
// variable reference is not defined earlier in the file.
type Lookuper interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv looks variables up in the process environment.
type OSEnv struct{}

// LookupEnv implements Lookuper.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is a fixed environment, mostly useful in tests.
type MapEnv map[string]string

// LookupEnv implements Lookuper.
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// emptyEnv resolves nothing.
type emptyEnv struct{}

func (emptyEnv) LookupEnv(string) (string, bool) { return "", false }

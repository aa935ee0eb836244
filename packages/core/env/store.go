package env

import (
	"fmt"
	"os"
)

// Store is a flat, case-sensitive mapping from variable name to value.
// A later Set for the same key overwrites the earlier value.
type Store interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

// OSStore reads and writes the live process environment.
type OSStore struct{}

func NewOSStore() *OSStore {
	return &OSStore{}
}

func (s *OSStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (s *OSStore) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// MapStore is an in-memory Store. It is not safe for concurrent use.
type MapStore struct {
	vars map[string]string
}

// NewMapStore returns a store seeded with a copy of the given variables.
func NewMapStore(seed map[string]string) *MapStore {
	s := &MapStore{vars: make(map[string]string, len(seed))}
	for k, v := range seed {
		s.vars[k] = v
	}
	return s
}

func (s *MapStore) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

func (s *MapStore) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("setting variable: empty key")
	}
	s.vars[key] = value
	return nil
}

// Snapshot returns a copy of the stored variables.
func (s *MapStore) Snapshot() map[string]string {
	return MergeVariables(s.vars)
}

// MergeVariables combines maps left to right; later sources win.
func MergeVariables(sources ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, src := range sources {
		for k, v := range src {
			result[k] = v
		}
	}
	return result
}

package env

import (
	"math"
	"strconv"
	"strings"
)

// Accessor reads single keys from a Store and converts them to primitive types.
type Accessor struct {
	store Store
}

func NewAccessor(store Store) *Accessor {
	return &Accessor{store: store}
}

// GetString returns the raw value. Absent and empty values fail with ErrNotDefined.
func (a *Accessor) GetString(key string) (string, error) {
	value, ok := a.store.Lookup(key)
	if !ok || value == "" {
		return "", &VarError{Key: key, Value: value, Present: ok, Err: ErrNotDefined}
	}
	return value, nil
}

// GetNumber returns the value parsed as a float64.
func (a *Accessor) GetNumber(key string) (float64, error) {
	value, ok := a.store.Lookup(key)
	n, parsed := ParseNumber(value)
	if !ok || !parsed {
		return 0, &VarError{Key: key, Value: value, Present: ok, Err: ErrNotANumber}
	}
	return n, nil
}

// GetBoolean accepts only the exact literals "true" and "false".
func (a *Accessor) GetBoolean(key string) (bool, error) {
	value, ok := a.store.Lookup(key)
	switch {
	case ok && value == "true":
		return true, nil
	case ok && value == "false":
		return false, nil
	}
	return false, &VarError{Key: key, Value: value, Present: ok, Err: ErrNotABoolean}
}

// GetScopedConfig looks up key_<ENV>, e.g. DB_URL_PRODUCTION for ("DB_URL", "production").
func (a *Accessor) GetScopedConfig(key, environment string) (string, error) {
	return a.GetString(ScopedKey(key, environment))
}

func ScopedKey(key, environment string) string {
	return key + "_" + strings.ToUpper(environment)
}

// ParseNumber parses a trimmed decimal or float literal. Empty, NaN and
// infinite values are rejected.
func ParseNumber(value string) (float64, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// FormatNumber renders n without a trailing fractional part when integral.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

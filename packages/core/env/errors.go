package env

import (
	"errors"
	"fmt"
)

var (
	ErrNotDefined  = errors.New("is not defined")
	ErrNotANumber  = errors.New("is not a valid number")
	ErrNotABoolean = errors.New("is not a valid boolean")
)

// VarError describes a failed typed lookup. Value is the raw value observed
// in the store; Present reports whether the key existed at all.
type VarError struct {
	Key     string
	Value   string
	Present bool
	Err     error
}

func (e *VarError) Error() string {
	if !e.Present {
		return fmt.Sprintf("environment variable %q %v (received no value)", e.Key, e.Err)
	}
	return fmt.Sprintf("environment variable %q %v (received %q)", e.Key, e.Err, e.Value)
}

func (e *VarError) Unwrap() error {
	return e.Err
}

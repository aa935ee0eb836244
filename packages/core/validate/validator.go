package validate

import (
	"github.com/abdul-hamid-achik/envkit/packages/core/env"
	"go.uber.org/zap"
)

// Kind is the classification of a validated key.
type Kind int

const (
	KindMissing Kind = iota
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "missing"
	}
}

// Result is the outcome for a single key.
type Result struct {
	Key    string
	Kind   Kind
	Value  string
	Number float64
	Err    error
}

func (r Result) Valid() bool {
	return r.Kind != KindMissing
}

// Reporter receives each result as soon as its key has been checked.
type Reporter interface {
	ReportResult(Result)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Result)

func (f ReporterFunc) ReportResult(r Result) {
	f(r)
}

type Validator struct {
	accessor *env.Accessor
	reporter Reporter
	logger   *zap.Logger
}

type Option func(*Validator)

func WithReporter(r Reporter) Option {
	return func(v *Validator) {
		v.reporter = r
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

func New(accessor *env.Accessor, opts ...Option) *Validator {
	v := &Validator{
		accessor: accessor,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks keys in order. String presence is checked first; a present
// value that parses as a number is reported as a number, otherwise as a string.
func (v *Validator) Validate(keys []string) []Result {
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		r := v.check(key)
		v.logger.Debug("validated variable", zap.String("key", key), zap.Stringer("kind", r.Kind))
		if v.reporter != nil {
			v.reporter.ReportResult(r)
		}
		results = append(results, r)
	}
	return results
}

func (v *Validator) check(key string) Result {
	value, err := v.accessor.GetString(key)
	if err != nil {
		return Result{Key: key, Kind: KindMissing, Err: err}
	}
	if n, ok := env.ParseNumber(value); ok {
		return Result{Key: key, Kind: KindNumber, Value: value, Number: n}
	}
	if value != "" {
		return Result{Key: key, Kind: KindString, Value: value}
	}
	return Result{Key: key, Kind: KindMissing}
}

// AllValid reports whether every result passed.
func AllValid(results []Result) bool {
	for _, r := range results {
		if !r.Valid() {
			return false
		}
	}
	return true
}

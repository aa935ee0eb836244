package validate

import (
	"testing"

	"github.com/abdul-hamid-achik/envkit/packages/core/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	store := env.NewMapStore(map[string]string{
		"A":       "5",
		"PI":      "3.14",
		"DB_URL":  "postgres://localhost/app",
		"EMPTY":   "",
		"PADDED":  "   ",
		"ZERO":    "0",
		"BOOLISH": "true",
		"TABS":    "\t \n",
		"INF":     "Infinity",
		"NEG_INF": "-Infinity",
		"NAN":     "NaN",
	})

	var reported []Result
	v := New(env.NewAccessor(store), WithReporter(ReporterFunc(func(r Result) {
		reported = append(reported, r)
	})))

	keys := []string{"A", "B", "PI", "DB_URL", "EMPTY", "PADDED", "ZERO", "BOOLISH", "TABS", "INF", "NEG_INF", "NAN"}
	results := v.Validate(keys)
	require.Len(t, results, len(keys))
	assert.Equal(t, results, reported)

	tests := []struct {
		key    string
		kind   Kind
		number float64
		value  string
	}{
		{key: "A", kind: KindNumber, number: 5, value: "5"},
		{key: "B", kind: KindMissing},
		{key: "PI", kind: KindNumber, number: 3.14, value: "3.14"},
		{key: "DB_URL", kind: KindString, value: "postgres://localhost/app"},
		{key: "EMPTY", kind: KindMissing},
		{key: "PADDED", kind: KindString, value: "   "},
		{key: "ZERO", kind: KindNumber, number: 0, value: "0"},
		{key: "BOOLISH", kind: KindString, value: "true"},
		// Blank and non-finite values are strings, not numbers.
		{key: "TABS", kind: KindString, value: "\t \n"},
		{key: "INF", kind: KindString, value: "Infinity"},
		{key: "NEG_INF", kind: KindString, value: "-Infinity"},
		{key: "NAN", kind: KindString, value: "NaN"},
	}

	for i, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			r := results[i]
			assert.Equal(t, tt.key, r.Key)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.value, r.Value)
			assert.Equal(t, tt.number, r.Number)
		})
	}
}

func TestValidateFailureIsolated(t *testing.T) {
	store := env.NewMapStore(map[string]string{"A": "5"})
	results := New(env.NewAccessor(store)).Validate([]string{"B", "A"})

	require.Len(t, results, 2)
	assert.False(t, results[0].Valid())
	assert.ErrorIs(t, results[0].Err, env.ErrNotDefined)
	assert.True(t, results[1].Valid())
	assert.Equal(t, float64(5), results[1].Number)
	assert.False(t, AllValid(results))
}

func TestValidateEmptyKeys(t *testing.T) {
	results := New(env.NewAccessor(env.NewMapStore(nil))).Validate(nil)
	assert.Empty(t, results)
	assert.True(t, AllValid(results))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "missing", KindMissing.String())
}

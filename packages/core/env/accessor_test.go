package env

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccessor(vars map[string]string) *Accessor {
	return NewAccessor(NewMapStore(vars))
}

func TestGetString(t *testing.T) {
	a := newTestAccessor(map[string]string{
		"DB_URL": "postgres://localhost/app",
		"EMPTY":  "",
		"ZERO":   "0",
	})

	v, err := a.GetString("DB_URL")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/app", v)

	v, err = a.GetString("ZERO")
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	for _, key := range []string{"EMPTY", "MISSING"} {
		_, err := a.GetString(key)
		require.Error(t, err, key)
		assert.ErrorIs(t, err, ErrNotDefined)

		var varErr *VarError
		require.True(t, errors.As(err, &varErr))
		assert.Equal(t, key, varErr.Key)
	}
}

func TestGetNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		present bool
		want    float64
		wantErr bool
	}{
		{name: "integer", value: "42", present: true, want: 42},
		{name: "float", value: "3.14", present: true, want: 3.14},
		{name: "negative", value: "-7", present: true, want: -7},
		{name: "exponent", value: "1e3", present: true, want: 1000},
		{name: "surrounding whitespace", value: " 8080 ", present: true, want: 8080},
		{name: "word", value: "abc", present: true, wantErr: true},
		{name: "empty", value: "", present: true, wantErr: true},
		{name: "nan literal", value: "NaN", present: true, wantErr: true},
		{name: "infinity", value: "Inf", present: true, wantErr: true},
		{name: "infinity word", value: "Infinity", present: true, wantErr: true},
		{name: "negative infinity", value: "-Infinity", present: true, wantErr: true},
		{name: "whitespace only", value: "   ", present: true, wantErr: true},
		{name: "absent", present: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := map[string]string{}
			if tt.present {
				vars["PORT"] = tt.value
			}
			got, err := newTestAccessor(vars).GetNumber("PORT")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBoolean(t *testing.T) {
	a := newTestAccessor(map[string]string{
		"ON":    "true",
		"OFF":   "false",
		"UPPER": "TRUE",
		"ONE":   "1",
		"EMPTY": "",
	})

	v, err := a.GetBoolean("ON")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = a.GetBoolean("OFF")
	require.NoError(t, err)
	assert.False(t, v)

	for _, key := range []string{"UPPER", "ONE", "EMPTY", "MISSING"} {
		_, err := a.GetBoolean(key)
		assert.ErrorIs(t, err, ErrNotABoolean, key)
	}
}

func TestGetScopedConfig(t *testing.T) {
	a := newTestAccessor(map[string]string{
		"DB_URL_PRODUCTION": "postgres://prod/app",
	})

	v, err := a.GetScopedConfig("DB_URL", "production")
	require.NoError(t, err)
	assert.Equal(t, "postgres://prod/app", v)

	_, err = a.GetScopedConfig("DB_URL", "staging")
	require.ErrorIs(t, err, ErrNotDefined)
	var varErr *VarError
	require.True(t, errors.As(err, &varErr))
	assert.Equal(t, "DB_URL_STAGING", varErr.Key)
	assert.Contains(t, err.Error(), "DB_URL_STAGING")
}

func TestVarErrorMessage(t *testing.T) {
	_, err := newTestAccessor(map[string]string{"PORT": "abc"}).GetNumber("PORT")
	require.Error(t, err)
	assert.Equal(t, `environment variable "PORT" is not a valid number (received "abc")`, err.Error())

	_, err = newTestAccessor(nil).GetString("API_KEY")
	require.Error(t, err)
	assert.Equal(t, `environment variable "API_KEY" is not defined (received no value)`, err.Error())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", FormatNumber(5))
	assert.Equal(t, "3.14", FormatNumber(3.14))
	assert.Equal(t, "-0.5", FormatNumber(-0.5))
}

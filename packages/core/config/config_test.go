package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".env", cfg.EnvFile)
	assert.Equal(t, []string{"DB_URL", "API_KEY"}, cfg.Required)
	assert.Equal(t, "console", cfg.Output)
	assert.False(t, cfg.GetNoColor())
	assert.Empty(t, cfg.Path)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name:    "empty document keeps defaults",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "full document",
			content: `envFile: config/app.env
required:
  - DATABASE_URL
  - PORT
environment: production
output: json
noColor: true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "config/app.env", cfg.EnvFile)
				assert.Equal(t, []string{"DATABASE_URL", "PORT"}, cfg.Required)
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, "json", cfg.Output)
				assert.True(t, cfg.GetNoColor())
			},
		},
		{
			name:    "partial document merges over defaults",
			content: "environment: staging\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ".env", cfg.EnvFile)
				assert.Equal(t, "staging", cfg.Environment)
				assert.Equal(t, DefaultRequired, cfg.Required)
			},
		},
		{
			name:    "unknown field",
			content: "envfile: .env\n",
			wantErr: true,
		},
		{
			name:    "invalid output",
			content: "output: xml\n",
			wantErr: true,
		},
		{
			name:    "invalid variable name",
			content: "required: [\"DB URL\"]\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: "noColor: maybe\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "required: [DB_URL\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestFindAndLoadConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/project"

	cfg, err := FindAndLoadConfig(fsys, dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(dir, "envkit.yaml")
	require.NoError(t, afero.WriteFile(fsys, path, []byte("envFile: prod.env\n"), 0644))

	cfg, err = FindAndLoadConfig(fsys, dir)
	require.NoError(t, err)
	assert.Equal(t, "prod.env", cfg.EnvFile)
	assert.Equal(t, path, cfg.Path)

	// .envkit.yaml is searched before envkit.yaml
	hidden := filepath.Join(dir, ".envkit.yaml")
	require.NoError(t, afero.WriteFile(fsys, hidden, []byte("envFile: hidden.env\n"), 0644))

	cfg, err = FindAndLoadConfig(fsys, dir)
	require.NoError(t, err)
	assert.Equal(t, "hidden.env", cfg.EnvFile)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := LoadConfig(fsys, "/project", "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, afero.WriteFile(fsys, "/project/bad.yaml", []byte("output: xml\n"), 0644))
	_, err = LoadConfig(fsys, "/project", "bad.yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "/project/bad.yaml")
}

func TestLoadConfigFromOSFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".envkit.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0644))

	cfg, err := LoadConfig(afero.NewOsFs(), dir, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()

	assert.Same(t, base, base.Merge(nil))

	merged := base.Merge(&Config{
		EnvFile: "other.env",
		NoColor: BoolPtr(true),
	})
	assert.Equal(t, "other.env", merged.EnvFile)
	assert.Equal(t, DefaultRequired, merged.Required)
	assert.True(t, merged.GetNoColor())
	assert.Equal(t, ".env", base.EnvFile)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Environment = "production"

	data, err := cfg.Marshal()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

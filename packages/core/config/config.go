package config

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// ErrInvalidConfig is returned when a config file does not match the schema.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the envkit configuration
type Config struct {
	EnvFile     string   `yaml:"envFile,omitempty"`
	Required    []string `yaml:"required,omitempty"`
	Environment string   `yaml:"environment,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	NoColor     *bool    `yaml:"noColor,omitempty"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	if c.NoColor == nil {
		return false
	}
	return *c.NoColor
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".envkit.yaml",
	"envkit.yaml",
	".envkit.yml",
}

// LoadConfig loads configuration from the specified path or searches dir
// for a config file.
func LoadConfig(fsys afero.Fs, dir, path string) (*Config, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return loadConfigFromFile(fsys, path)
	}
	return FindAndLoadConfig(fsys, dir)
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(fsys afero.Fs, dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if ok, _ := afero.Exists(fsys, configPath); ok {
			return loadConfigFromFile(fsys, configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

func loadConfigFromFile(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse validates a YAML document against the schema and decodes it over
// the defaults.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := DefaultConfig()
	if doc == nil {
		return cfg, nil
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func validateDocument(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.EnvFile != "" {
		result.EnvFile = other.EnvFile
	}
	if len(other.Required) > 0 {
		result.Required = append([]string(nil), other.Required...)
	}
	if other.Environment != "" {
		result.Environment = other.Environment
	}
	if other.Output != "" {
		result.Output = other.Output
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

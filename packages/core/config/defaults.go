package config

// DefaultRequired are the variables validated when none are configured.
var DefaultRequired = []string{"DB_URL", "API_KEY"}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		EnvFile:  ".env",
		Required: append([]string(nil), DefaultRequired...),
		Output:   "console",
	}
}

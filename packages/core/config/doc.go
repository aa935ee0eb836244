// Package config handles configuration loading for envkit itself.
//
// It provides functionality for:
//   - Loading configuration from .envkit.yaml, envkit.yaml or .envkit.yml
//   - Validating the document against an embedded JSON schema
//   - Default values and merging of overrides
package config

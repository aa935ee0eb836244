// Package cmd implements the envkit CLI commands using Cobra.
//
// Available commands:
//   - validate: Check that required environment variables are set
//   - list: Print variables from a .env file, optionally filtered by keyword
//   - load: Apply a .env file to the environment and print what was loaded
//   - get: Read a single variable as a string, number or boolean
//   - init: Create a .envkit.yaml configuration file
//   - version: Show envkit version information
//
// Before any command runs, the configured env file (default .env) is applied
// to the environment without overriding variables that are already set.
package cmd

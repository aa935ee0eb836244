// Package dotenv reads .env files and applies them to an environment store.
//
// Paths are resolved against an injectable root directory on an injectable
// afero filesystem, so callers can work against an in-memory tree. Line
// parsing is delegated to github.com/joho/godotenv.
//
// Three operations are offered:
//   - Load parses a file and writes every key into the store, overwriting
//   - Preload writes only keys the store does not already hold
//   - List parses a file without touching the store and filters keys by keyword
package dotenv

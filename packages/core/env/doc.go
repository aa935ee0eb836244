// Package env holds the environment store and typed access to its values.
//
// It provides functionality for:
//   - A Store abstraction over the process environment (OSStore) with an
//     in-memory implementation (MapStore) for isolated use
//   - Typed accessors for string, number and boolean values
//   - Scoped lookups such as DB_URL_PRODUCTION for per-deployment overrides
package env

// Package output provides formatters for displaying envkit results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//
// Each formatter implements the Formatter interface. The JSON formatter also
// implements Flushable and writes a single document once the command is done.
package output

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/envkit/packages/core/dotenv"
	"github.com/abdul-hamid-achik/envkit/packages/core/validate"
)

// Formatter renders the result of each envkit operation.
type Formatter interface {
	validate.Reporter
	FormatHeader(keys []string)
	FormatEntries(entries []dotenv.Entry)
	FormatLoaded(file string, vars map[string]string)
	FormatValue(key string, value any)
	FormatError(err error)
}

// Flushable is implemented by formatters that buffer output
type Flushable interface {
	Flush() error
}

// New returns the formatter for the named format.
func New(format string, stdout, stderr io.Writer, noColor bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return NewConsoleFormatter(
			WithWriter(stdout),
			WithErrWriter(stderr),
			WithNoColor(noColor),
		), nil
	case "json":
		return NewJSONFormatter(JSONWithWriter(stdout)), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (use console or json)", format)
	}
}

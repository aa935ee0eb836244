package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/envkit/packages/core/dotenv"
	"github.com/abdul-hamid-achik/envkit/packages/core/env"
	"github.com/abdul-hamid-achik/envkit/packages/core/validate"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer    io.Writer
	errWriter io.Writer
	noColor   bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// sprint returns a colorizer for attrs, plain when this formatter has color
// disabled.
func (f *ConsoleFormatter) sprint(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithErrWriter sets where failures are written.
func WithErrWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.errWriter = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatHeader(keys []string) {
	bold := f.sprint(color.Bold)
	fmt.Fprintf(f.writer, "%s %v\n", bold("Validating environment variables:"), keys)
}

func (f *ConsoleFormatter) ReportResult(r validate.Result) {
	green := f.sprint(color.FgGreen)
	red := f.sprint(color.FgRed)

	switch r.Kind {
	case validate.KindNumber:
		fmt.Fprintf(f.writer, "%s %s is valid: %s (type: number)\n", green("✔"), r.Key, env.FormatNumber(r.Number))
	case validate.KindString:
		fmt.Fprintf(f.writer, "%s %s is valid: %s (type: string)\n", green("✔"), r.Key, r.Value)
	default:
		if r.Err != nil {
			fmt.Fprintf(f.errWriter, "%s %s is missing or invalid: %v\n", red("✗"), r.Key, r.Err)
			return
		}
		fmt.Fprintf(f.errWriter, "%s %s is missing or invalid\n", red("✗"), r.Key)
	}
}

func (f *ConsoleFormatter) FormatEntries(entries []dotenv.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(f.writer, "No matching environment variables found.")
		return
	}

	cyan := f.sprint(color.FgCyan)
	for _, e := range entries {
		fmt.Fprintf(f.writer, "%s=%s\n", cyan(e.Key), e.Value)
	}
}

func (f *ConsoleFormatter) FormatLoaded(file string, vars map[string]string) {
	green := f.sprint(color.FgGreen)
	fmt.Fprintf(f.writer, "%s Environment variables loaded from %q (%d keys)\n", green("✔"), file, len(vars))
}

// FormatValue prints the bare value so it can be captured by shell scripts.
func (f *ConsoleFormatter) FormatValue(key string, value any) {
	switch v := value.(type) {
	case float64:
		fmt.Fprintln(f.writer, env.FormatNumber(v))
	default:
		fmt.Fprintln(f.writer, v)
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := f.sprint(color.FgRed)
	fmt.Fprintf(f.errWriter, "%s %v\n", red("Error:"), err)
}

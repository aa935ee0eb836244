package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/envkit/packages/core/dotenv"
	"github.com/abdul-hamid-achik/envkit/packages/core/validate"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	Summary *JSONSummary   `json:"summary,omitempty"`
	Results []JSONResult   `json:"results,omitempty"`
	Entries []dotenv.Entry `json:"entries,omitempty"`
	Matched *int           `json:"matched,omitempty"`
	Loaded  *JSONLoaded    `json:"loaded,omitempty"`
	Value   *JSONValue     `json:"value,omitempty"`
	Errors  []string       `json:"errors,omitempty"`
	Time    string         `json:"time"`
}

// JSONSummary counts validation outcomes
type JSONSummary struct {
	Total   int  `json:"total"`
	Valid   int  `json:"valid"`
	Invalid int  `json:"invalid"`
	Passed  bool `json:"passed"`
}

// JSONResult represents a single validated key
type JSONResult struct {
	Key    string   `json:"key"`
	Valid  bool     `json:"valid"`
	Type   string   `json:"type"`
	Value  string   `json:"value,omitempty"`
	Number *float64 `json:"number,omitempty"`
	Error  string   `json:"error,omitempty"`
}

type JSONLoaded struct {
	File      string            `json:"file"`
	Variables map[string]string `json:"variables"`
}

type JSONValue struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// JSONFormatter accumulates results and writes them as one JSON document
type JSONFormatter struct {
	writer io.Writer
	output JSONOutput
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatHeader(keys []string) {
	f.output.Summary = &JSONSummary{}
	f.output.Results = make([]JSONResult, 0, len(keys))
}

func (f *JSONFormatter) ReportResult(r validate.Result) {
	if f.output.Summary == nil {
		f.output.Summary = &JSONSummary{}
	}

	res := JSONResult{
		Key:   r.Key,
		Valid: r.Valid(),
		Type:  r.Kind.String(),
		Value: r.Value,
	}
	if r.Kind == validate.KindNumber {
		n := r.Number
		res.Number = &n
	}
	if r.Err != nil {
		res.Error = r.Err.Error()
	}

	f.output.Summary.Total++
	if res.Valid {
		f.output.Summary.Valid++
	} else {
		f.output.Summary.Invalid++
	}
	f.output.Results = append(f.output.Results, res)
}

func (f *JSONFormatter) FormatEntries(entries []dotenv.Entry) {
	f.output.Entries = append(f.output.Entries, entries...)
	matched := len(f.output.Entries)
	f.output.Matched = &matched
}

func (f *JSONFormatter) FormatLoaded(file string, vars map[string]string) {
	f.output.Loaded = &JSONLoaded{File: file, Variables: vars}
}

func (f *JSONFormatter) FormatValue(key string, value any) {
	f.output.Value = &JSONValue{Key: key, Value: value}
}

func (f *JSONFormatter) FormatError(err error) {
	f.output.Errors = append(f.output.Errors, err.Error())
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush() error {
	output := f.output
	if output.Summary != nil {
		output.Summary.Passed = output.Summary.Invalid == 0
	}
	output.Time = time.Now().Format(time.RFC3339)

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

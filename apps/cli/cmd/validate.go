package cmd

import (
	"strings"

	"github.com/abdul-hamid-achik/envkit/packages/core/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		varsFlag   []string
		strictFlag bool
	)

	cmd := &cobra.Command{
		Use:   "validate [VAR...]",
		Short: "Validate required environment variables",
		Long: `Check that required environment variables are set and report each one
as a number, a string, or missing/invalid.

Variables come from the arguments, --vars, or the "required" list in the
config file, in that order. Without any of them DB_URL and API_KEY are checked.

Examples:
  envkit validate
  envkit validate --vars DB_URL,API_KEY,PORT
  envkit validate -v "DB_URL API_KEY" --strict
  envkit validate PORT TIMEOUT -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := parseVars(append(append([]string{}, args...), varsFlag...))
			if len(keys) == 0 {
				keys = a.cfg.Required
			}

			a.formatter.FormatHeader(keys)
			v := validate.New(a.accessor, validate.WithReporter(a.formatter), validate.WithLogger(a.logger))
			results := v.Validate(keys)

			if strictFlag && !validate.AllValid(results) {
				return exitf(ExitFailure, "validation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&varsFlag, "vars", "v", nil, "Variables to validate, comma- or space-separated")
	cmd.Flags().BoolVar(&strictFlag, "strict", false, "Exit non-zero when any variable is missing or invalid")

	return cmd
}

// parseVars splits each raw value on commas and whitespace, dropping empties.
func parseVars(raw []string) []string {
	var keys []string
	for _, r := range raw {
		fields := strings.FieldsFunc(r, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == '\n'
		})
		keys = append(keys, fields...)
	}
	return keys
}


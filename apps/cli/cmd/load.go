package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/envkit/packages/core/dotenv"
	"github.com/spf13/cobra"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load variables from a .env file into the environment",
		Long: `Parse a .env file and set every variable it defines, replacing values
that are already set. Nothing is applied when the file cannot be parsed.

Examples:
  envkit load .env.production
  envkit load config/app.env -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := a.loader.Load(args[0])
			if err != nil {
				a.formatter.FormatError(err)
				return withExitCode(fileExitCode(err), err)
			}

			a.formatter.FormatLoaded(args[0], vars)
			return nil
		},
	}
}

func fileExitCode(err error) int {
	switch {
	case errors.Is(err, dotenv.ErrFileNotFound):
		return ExitFileNotFound
	case errors.Is(err, dotenv.ErrParse):
		return ExitParseError
	default:
		return ExitFailure
	}
}

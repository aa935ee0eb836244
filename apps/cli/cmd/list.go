package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "list [keyword] [filePath]",
		Short: "List variables in a .env file by keyword",
		Long: `List the variables defined in a .env file. When a keyword is given only
variables whose name contains it, ignoring case, are printed.

The file is read as-is; the environment is not modified.

Examples:
  envkit list
  envkit list data
  envkit list api config/staging.env
  envkit list --file .env.local`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keyword string
			if len(args) > 0 {
				keyword = args[0]
			}

			file := fileFlag
			if len(args) > 1 {
				file = args[1]
			}
			if file == "" {
				file = a.cfg.EnvFile
			}

			entries, err := a.loader.List(file, keyword)
			if err != nil {
				a.formatter.FormatError(err)
				return withExitCode(fileExitCode(err), err)
			}

			a.formatter.FormatEntries(entries)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Env file to list (default: the configured env file)")

	return cmd
}

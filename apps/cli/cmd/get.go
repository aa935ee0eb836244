package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/envkit/packages/core/env"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var (
		typeFlag  string
		scopeFlag string
	)

	cmd := &cobra.Command{
		Use:   "get <VAR>",
		Short: "Print a single variable as a string, number or boolean",
		Long: `Print the value of a variable, converted to the requested type.

With --scope (or "environment" in the config file) the variable is read
from VAR_<SCOPE>, e.g. DB_URL_PRODUCTION for --scope production.

Booleans must be exactly "true" or "false".

Examples:
  envkit get DB_URL
  envkit get PORT --type number
  envkit get DEBUG --type boolean
  envkit get DB_URL --scope production`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			scope := scopeFlag
			if !cmd.Flags().Changed("scope") {
				scope = a.cfg.Environment
			}
			lookup := key
			if scope != "" {
				lookup = env.ScopedKey(key, scope)
			}

			var (
				value any
				err   error
			)
			switch typeFlag {
			case "string":
				if scope != "" {
					value, err = a.accessor.GetScopedConfig(key, scope)
				} else {
					value, err = a.accessor.GetString(key)
				}
			case "number":
				value, err = a.accessor.GetNumber(lookup)
			case "boolean", "bool":
				value, err = a.accessor.GetBoolean(lookup)
			default:
				err := fmt.Errorf("unknown type %q (use string, number or boolean)", typeFlag)
				a.formatter.FormatError(err)
				return withExitCode(ExitUsageError, err)
			}

			if err != nil {
				a.formatter.FormatError(err)
				return withExitCode(ExitFailure, err)
			}

			a.formatter.FormatValue(lookup, value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "string", "Value type: string, number, boolean")
	cmd.Flags().StringVarP(&scopeFlag, "scope", "s", "", "Environment scope, reads VAR_<SCOPE>")

	return cmd
}

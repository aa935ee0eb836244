package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/envkit/packages/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var forceInit bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .envkit.yaml configuration file",
		Long: `Create a .envkit.yaml configuration file in the current directory.

The file lists the variables "envkit validate" checks by default and the env
file applied before each command.

Examples:
  envkit init
  envkit init --required DB_URL,API_KEY,PORT
  envkit init --force`,
		PersistentPreRunE: a.setupOutput,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.root
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return withExitCode(ExitFailure, err)
				}
				dir = cwd
			}
			configFile := filepath.Join(dir, config.ConfigFilenames[0])

			if !forceInit {
				if exists, _ := afero.Exists(a.fs, configFile); exists {
					err := fmt.Errorf("file already exists: %s (use --force to overwrite)", configFile)
					a.formatter.FormatError(err)
					return withExitCode(ExitFailure, err)
				}
			}

			cfg := config.DefaultConfig()
			if keys := parseVars(requiredFlag(cmd)); len(keys) > 0 {
				cfg.Required = keys
			}

			data, err := cfg.Marshal()
			if err != nil {
				return withExitCode(ExitFailure, err)
			}
			if err := afero.WriteFile(a.fs, configFile, data, 0644); err != nil {
				err = fmt.Errorf("failed to create config file: %w", err)
				a.formatter.FormatError(err)
				return withExitCode(ExitFailure, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringSlice("required", nil, "Variables to validate by default")

	return cmd
}

func requiredFlag(cmd *cobra.Command) []string {
	keys, _ := cmd.Flags().GetStringSlice("required")
	return keys
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/envkit/packages/core/config"
	"github.com/abdul-hamid-achik/envkit/packages/core/dotenv"
	"github.com/abdul-hamid-achik/envkit/packages/core/env"
	"github.com/abdul-hamid-achik/envkit/packages/logging"
	"github.com/abdul-hamid-achik/envkit/packages/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// app holds everything a command needs. The store, filesystem and root
// directory are injectable; the rest is derived in PersistentPreRunE.
type app struct {
	store env.Store
	fs    afero.Fs
	root  string

	configFlag    string
	envFileFlag   string
	outputFlag    string
	noColorFlag   bool
	noPreloadFlag bool
	verboseFlag   bool

	cfg       *config.Config
	logger    *zap.Logger
	loader    *dotenv.Loader
	accessor  *env.Accessor
	formatter output.Formatter
}

func newApp() *app {
	return &app{
		store: env.NewOSStore(),
		fs:    afero.NewOsFs(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "envkit",
		Short: "Read, validate and list .env configuration.",
		Long: `envkit reads environment configuration from .env files and the
process environment. It validates required variables, lists variables by
keyword, loads files into the environment and reads single values as
strings, numbers or booleans.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFlag, "config", "", "Path to config file (env: ENVKIT_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&a.envFileFlag, "env-file", "", "Env file applied before each command (env: ENVKIT_ENV_FILE, default .env)")
	rootCmd.PersistentFlags().StringVarP(&a.outputFlag, "output", "o", "", "Output format: console, json (env: ENVKIT_OUTPUT)")
	rootCmd.PersistentFlags().BoolVar(&a.noColorFlag, "no-color", false, "Disable colored output (env: ENVKIT_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVar(&a.noPreloadFlag, "no-preload", false, "Do not apply the env file before running the command")
	rootCmd.PersistentFlags().BoolVar(&a.verboseFlag, "verbose", false, "Log diagnostics to stderr (env: ENVKIT_VERBOSE)")

	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newLoadCmd(a))
	rootCmd.AddCommand(newGetCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs the CLI and exits with the resulting code.
func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(newApp(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(a *app, args []string, stdout, stderr io.Writer) int {
	a.formatter = nil
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()

	if f, ok := a.formatter.(output.Flushable); ok {
		if flushErr := f.Flush(); flushErr != nil && err == nil {
			err = withExitCode(ExitFailure, flushErr)
			fmt.Fprintf(stderr, "Error: %v\n", flushErr)
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}

	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\nRun 'envkit --help' for usage.\n", err)
	return ExitUsageError
}

// setup resolves configuration with precedence flags > ENVKIT_* variables >
// config file > defaults, then wires the logger, loader and formatter.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configPath := a.configFlag
	if !cmd.Flags().Changed("config") {
		configPath = a.getEnvString("ENVKIT_CONFIG", "")
	}

	cfg, err := config.LoadConfig(a.fs, a.root, configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return withExitCode(ExitConfigError, err)
	}
	a.cfg = cfg.Merge(a.envOverrides()).Merge(a.flagOverrides(cmd))

	verbose := a.verboseFlag
	if !cmd.Flags().Changed("verbose") {
		verbose, _ = a.getEnvBool("ENVKIT_VERBOSE")
	}

	a.logger, err = logging.New(verbose)
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}
	if cfg.Path != "" {
		a.logger.Debug("using config file", zap.String("path", cfg.Path))
	}

	if err := a.setupFormatter(cmd, a.cfg); err != nil {
		return err
	}

	opts := []dotenv.Option{dotenv.WithFs(a.fs), dotenv.WithLogger(a.logger)}
	if a.root != "" {
		opts = append(opts, dotenv.WithRoot(a.root))
	}
	a.loader = dotenv.NewLoader(a.store, opts...)
	a.accessor = env.NewAccessor(a.store)

	if !a.noPreloadFlag {
		applied, err := a.loader.Preload(a.cfg.EnvFile)
		if err != nil {
			// Preload failures are reported and never abort the command.
			a.formatter.FormatError(fmt.Errorf("preloading env file: %w", err))
		} else {
			a.logger.Debug("preloaded env file", zap.String("file", a.cfg.EnvFile), zap.Int("applied", applied))
		}
	}

	return nil
}

// setupOutput wires only the formatter, from flags and ENVKIT_* variables
// over the defaults. Commands that rewrite or ignore the config file use it
// so a broken config cannot block them.
func (a *app) setupOutput(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig().Merge(a.envOverrides()).Merge(a.flagOverrides(cmd))
	return a.setupFormatter(cmd, cfg)
}

func (a *app) setupFormatter(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	a.formatter, err = output.New(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.GetNoColor())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return withExitCode(ExitConfigError, err)
	}
	return nil
}

// envOverrides collects the ENVKIT_* settings present in the store.
func (a *app) envOverrides() *config.Config {
	overrides := &config.Config{
		EnvFile:     a.getEnvString("ENVKIT_ENV_FILE", ""),
		Environment: a.getEnvString("ENVKIT_ENVIRONMENT", ""),
		Output:      a.getEnvString("ENVKIT_OUTPUT", ""),
	}
	if noColor, ok := a.getEnvBool("ENVKIT_NO_COLOR"); ok {
		overrides.NoColor = config.BoolPtr(noColor)
	}
	return overrides
}

// flagOverrides collects the persistent flags set on the command line.
func (a *app) flagOverrides(cmd *cobra.Command) *config.Config {
	flags := cmd.Flags()
	overrides := &config.Config{}
	if flags.Changed("env-file") {
		overrides.EnvFile = a.envFileFlag
	}
	if flags.Changed("output") {
		overrides.Output = a.outputFlag
	}
	if flags.Changed("no-color") {
		overrides.NoColor = config.BoolPtr(a.noColorFlag)
	}
	return overrides
}

// Environment variable helpers, read through the store so that tests can
// supply them without touching the process environment.
func (a *app) getEnvString(key, defaultVal string) string {
	if val, ok := a.store.Lookup(key); ok && val != "" {
		return val
	}
	return defaultVal
}

func (a *app) getEnvBool(key string) (value, ok bool) {
	val, found := a.store.Lookup(key)
	if !found || val == "" {
		return false, false
	}
	return val == "true" || val == "1" || val == "yes", true
}

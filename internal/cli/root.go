// Package cli implements the binder command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/internal/logging"
	"github.com/mesh-intelligence/binder/internal/paths"
	"github.com/mesh-intelligence/binder/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

var (
	flags rootFlags

	// cfg is loaded from config.yaml by PersistentPreRunE.
	cfg types.Config
)

// sysError marks failures of the environment (files, database) rather than
// of the user's input.
type sysError struct {
	err error
}

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

func system(err error) error {
	if err == nil {
		return nil
	}
	return sysError{err: err}
}

// NewRootCmd creates the top-level "binder" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}
	cfg = types.DefaultConfig()

	root := &cobra.Command{
		Use:   "binder",
		Short: "Bind, render and order primitive values through one variant type",
		Long: "binder exercises the variant library: it binds values of every supported\n" +
			"kind, renders and orders them, runs the validation checks, and scans SQLite\n" +
			"query results through bound variants.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newKindsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newSortCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newExecCmd())

	return root
}

// setup loads config.yaml, applies flag overrides and configures logging.
func setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return system(fmt.Errorf("resolve config dir: %w", err))
	}
	loaded, err := loadConfig(configDir)
	if err != nil {
		return system(err)
	}
	if flags.jsonMode {
		loaded.Output = types.OutputJSON
	}
	if flags.logLevel != "" {
		loaded.LogLevel = flags.logLevel
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg = loaded

	logging.ConfigureRuntime(cfg.LogLevel)
	logging.Logger().Debug().
		Str("command", cmd.Name()).
		Str("config_dir", configDir).
		Str("output", cfg.Output).
		Msg("binder start")
	return nil
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "binder:", err)
	return exitCode(err)
}

func exitCode(err error) int {
	var se sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

func jsonOutput() bool {
	return cfg.Output == types.OutputJSON
}

// Init command writes a default config.yaml and creates the database.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/internal/logging"
	"github.com/mesh-intelligence/binder/internal/paths"
	"github.com/mesh-intelligence/binder/internal/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration and create the database",
		Long: `Init writes config.yaml into the configuration directory if it does not
exist yet, creates the data directory, and opens the SQLite database once so
that the file exists for later query and exec commands.

Running init again leaves an existing config.yaml untouched.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return system(fmt.Errorf("resolve config dir: %w", err))
	}
	written, err := writeConfigIfMissing(configDir, cfg, flags.dataDir)
	if err != nil {
		return system(err)
	}

	dbPath, err := databasePath("")
	if err != nil {
		return system(fmt.Errorf("resolve data dir: %w", err))
	}
	store := sqlite.NewStore()
	if err := store.Attach(dbPath); err != nil {
		return system(err)
	}
	if err := store.Detach(); err != nil {
		return system(err)
	}

	logging.Logger().Info().
		Str("config_dir", configDir).
		Str("database", dbPath).
		Bool("config_written", written).
		Msg("binder initialized")

	if jsonOutput() {
		return printJSON(cmd, map[string]any{
			"config_dir":     configDir,
			"database":       dbPath,
			"config_written": written,
		})
	}
	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintln(out, "wrote", filepath.Join(configDir, paths.ConfigFileName))
	} else {
		fmt.Fprintln(out, "config exists in", configDir)
	}
	fmt.Fprintln(out, "database", dbPath)
	return nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/internal/logging"
	"github.com/mesh-intelligence/binder/internal/sqlite"
	"github.com/mesh-intelligence/binder/pkg/types"
)

// queryJSON is the JSON shape of a query result. Cells are positional, so
// repeated column names keep every value.
type queryJSON struct {
	Columns []string      `json:"columns"`
	Rows    [][]valueJSON `json:"rows"`
}

func newQueryCmd() *cobra.Command {
	var kindList, dbName string
	cmd := &cobra.Command{
		Use:   "query --kinds k1,k2,... <sql>",
		Short: "Run a SELECT and scan each column into the given kind",
		Long: `Query runs a SQL statement against the configured SQLite database and
scans every column into a bound value of the matching kind. One kind is
required per result column. Rows print tab-separated; NULL columns and
values out of range for their kind are errors.

Example:
  binder query --kinds text,uint8 "SELECT name, age FROM people ORDER BY name"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKindList(kindList)
			if err != nil {
				return err
			}
			return runQuery(cmd, dbName, kinds, args[0])
		},
	}
	cmd.Flags().StringVar(&kindList, "kinds", "", "comma-separated kinds, one per column (required)")
	cmd.Flags().StringVar(&dbName, "db", "", "database file (default: config database)")
	_ = cmd.MarkFlagRequired("kinds")
	return cmd
}

func newExecCmd() *cobra.Command {
	var dbName string
	cmd := &cobra.Command{
		Use:   "exec <sql>",
		Short: "Run a statement that returns no rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(dbName)
			if err != nil {
				return err
			}
			defer store.Detach()

			n, err := store.Exec(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return printJSON(cmd, map[string]int64{"rows_affected": n})
			}
			fmt.Fprintln(cmd.OutOrStdout(), n, "rows affected")
			return nil
		},
	}
	cmd.Flags().StringVar(&dbName, "db", "", "database file (default: config database)")
	return cmd
}

func parseKindList(list string) ([]types.Kind, error) {
	var kinds []types.Kind
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := types.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: empty kind list", types.ErrInvalidKind)
	}
	return kinds, nil
}

func openStore(dbName string) (*sqlite.Store, error) {
	path, err := databasePath(dbName)
	if err != nil {
		return nil, system(fmt.Errorf("resolve data dir: %w", err))
	}
	store := sqlite.NewStore()
	if err := store.Attach(path); err != nil {
		return nil, system(err)
	}
	logging.Logger().Debug().Str("database", path).Msg("store attached")
	return store, nil
}

func runQuery(cmd *cobra.Command, dbName string, kinds []types.Kind, query string) error {
	store, err := openStore(dbName)
	if err != nil {
		return err
	}
	defer store.Detach()

	res, err := store.Query(cmd.Context(), kinds, query)
	if err != nil {
		return err
	}
	defer res.Free()

	if jsonOutput() {
		out := queryJSON{Columns: res.Columns, Rows: make([][]valueJSON, 0, len(res.Rows))}
		for _, row := range res.Rows {
			cells := make([]valueJSON, len(row))
			for i, v := range row {
				cells[i] = toValueJSON(v)
			}
			out.Rows = append(out.Rows, cells)
		}
		return printJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, strings.Join(res.Columns, "\t"))
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return nil
}

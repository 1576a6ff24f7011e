package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/internal/logging"
	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/variant"
)

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <kind>=<text>...",
		Short: "Order values of mixed kinds",
		Long: `Sort binds each kind=text argument, orders the values, and prints one per
line as "kind<TAB>text". Values of the same kind order by value; values of
different kinds order by kind identity (see "binder kinds").

Example:
  binder sort long=3 text=b long=-1 text=a`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSort,
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	arena := slot.New()
	vs := make([]variant.Variant, 0, len(args))
	for _, arg := range args {
		k, text, err := splitKindValue(arg)
		if err != nil {
			return err
		}
		v, err := bindParsed(arena, k, text)
		if err != nil {
			return err
		}
		vs = append(vs, v)
	}
	variant.Sort(vs)
	logging.Logger().Debug().Int("count", len(vs)).Msg("sorted")

	if jsonOutput() {
		out := make([]valueJSON, 0, len(vs))
		for _, v := range vs {
			out = append(out, toValueJSON(v))
		}
		return printJSON(cmd, out)
	}
	for _, v := range vs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Kind(), v)
	}
	return nil
}

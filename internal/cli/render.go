package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/internal/logging"
	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/types"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <kind> <text>",
		Short: "Parse text as a kind and print its canonical rendering",
		Long: `Render binds a fresh value of the given kind, assigns the parsed text to it,
and prints the value back in its canonical form.

Example:
  binder render uint8 65      # 65
  binder render double 1e3    # 1000
  binder render char x        # 120`,
		Args: cobra.ExactArgs(2),
		RunE: runRender,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	k, err := types.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", err, args[0])
	}
	arena := slot.New()
	v, err := bindParsed(arena, k, args[1])
	if err != nil {
		return err
	}
	logging.Logger().Debug().Str("kind", k.String()).Str("input", args[1]).Str("text", v.String()).Msg("render")

	if jsonOutput() {
		return printJSON(cmd, toValueJSON(v))
	}
	_, err = v.WriteTo(cmd.OutOrStdout())
	if err != nil {
		return system(err)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

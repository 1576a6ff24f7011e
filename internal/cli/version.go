// Version command for the binder CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the binder release, overridden at link time by the build.
var Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the binder version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput() {
				return printJSON(cmd, map[string]string{"version": Version})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "binder", Version)
			return nil
		},
	}
}

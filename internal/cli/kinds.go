package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/pkg/types"
)

type kindJSON struct {
	Name   string `json:"name"`
	Token  uint8  `json:"token"`
	GoType string `json:"go_type"`
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported kinds in identity order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := types.Kinds()
			if jsonOutput() {
				out := make([]kindJSON, 0, len(kinds))
				for _, k := range kinds {
					out = append(out, kindJSON{Name: k.String(), Token: uint8(k), GoType: k.GoType()})
				}
				return printJSON(cmd, out)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TOKEN\tKIND\tGO TYPE")
			for _, k := range kinds {
				fmt.Fprintf(w, "%d\t%s\t%s\n", uint8(k), k, k.GoType())
			}
			return w.Flush()
		},
	}
}

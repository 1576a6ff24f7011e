// Shared output helpers for binder commands.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/pkg/slot"
	"github.com/mesh-intelligence/binder/pkg/types"
	"github.com/mesh-intelligence/binder/pkg/variant"
)

// valueJSON is the JSON shape of one bound value.
type valueJSON struct {
	Kind  string `json:"kind"`
	Token uint8  `json:"token"`
	Text  string `json:"text"`
}

func toValueJSON(v variant.Variant) valueJSON {
	return valueJSON{Kind: v.Kind().String(), Token: uint8(v.Kind()), Text: v.String()}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// bindParsed allocates a slot of kind k in arena, binds a variant to it and
// parses text into it.
func bindParsed(arena *slot.Arena, k types.Kind, text string) (variant.Variant, error) {
	h, err := arena.Alloc(k)
	if err != nil {
		return variant.Variant{}, err
	}
	v, err := variant.BindSlot(arena, h)
	if err != nil {
		return variant.Variant{}, err
	}
	if err := v.SetText(text); err != nil {
		return variant.Variant{}, err
	}
	return v, nil
}

// splitKindValue splits a "kind=text" argument. The text may itself contain
// '=' characters.
func splitKindValue(arg string) (types.Kind, string, error) {
	name, text, found := strings.Cut(arg, "=")
	if !found {
		return types.KindNone, "", fmt.Errorf("invalid argument %q (expected kind=text)", arg)
	}
	k, err := types.ParseKind(name)
	if err != nil {
		return types.KindNone, "", fmt.Errorf("%w: %q", err, name)
	}
	return k, text, nil
}

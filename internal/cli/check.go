package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/binder/internal/check"
	"github.com/mesh-intelligence/binder/internal/logging"
)

// errChecksFailed is returned when at least one check fails.
var errChecksFailed = errors.New("checks failed")

type checkJSON struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [name...]",
		Short: "Run the built-in validation scenarios",
		Long: `Check runs the validation scenarios against the variant library and
reports PASS or FAIL for each. With names, only those scenarios run.
The command fails if any scenario fails.`,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	checks, err := check.Select(args)
	if err != nil {
		return err
	}
	results := check.Run(checks)
	failed := check.Failed(results)

	log := logging.Logger()
	for _, r := range results {
		if r.Passed() {
			log.Debug().Str("check", r.Name).Msg("pass")
		} else {
			log.Warn().Str("check", r.Name).Err(r.Err).Msg("fail")
		}
	}

	if jsonOutput() {
		out := make([]checkJSON, 0, len(results))
		for _, r := range results {
			c := checkJSON{Name: r.Name, Passed: r.Passed()}
			if r.Err != nil {
				c.Error = r.Err.Error()
			}
			out = append(out, c)
		}
		if err := printJSON(cmd, out); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, r := range results {
			if r.Passed() {
				fmt.Fprintf(w, "PASS %s\n", r.Name)
			} else {
				fmt.Fprintf(w, "FAIL %s: %v\n", r.Name, r.Err)
			}
		}
		fmt.Fprintf(w, "%d passed, %d failed\n", len(results)-failed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
	}
	return nil
}

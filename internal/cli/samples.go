package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcliao/aoc2023/internal/days"
	"github.com/rcliao/aoc2023/internal/puzzle"
	"github.com/rcliao/aoc2023/internal/samples"
)

func init() {
	cmd := &cobra.Command{
		Use:   "samples [unit...]",
		Short: "Check units against their worked examples",
		Long:  "Runs every worked example of the named units (all units when none are named) and compares the answers.",
		Run:   runSamples,
	}

	cmd.Flags().Bool("json", false, "Output results as JSON")

	RootCmd.AddCommand(cmd)
}

func runSamples(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")

	set, err := samples.Load()
	if err != nil {
		exitErr("load samples", err)
	}
	if err := reportSamples(cmd.OutOrStdout(), days.Registry(), set, args, asJSON); err != nil {
		exitErr("samples", err)
	}
}

// reportSamples checks the named units (all when names is empty), writes one
// line or JSON object per result and fails when any check failed.
func reportSamples(out io.Writer, reg *puzzle.Registry, set samples.Set, names []string, asJSON bool) error {
	if len(names) == 0 {
		names = reg.Names()
	}

	results, err := samples.Check(reg, set, names)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}

	if asJSON {
		b, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(out, string(b))
	} else {
		for _, r := range results {
			fmt.Fprintln(out, r.String())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/aoc2023/internal/journal"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded answers",
		Long:  "Show answers recorded with --record, newest first.",
		Run:   runHistory,
	}

	cmd.Flags().StringP("unit", "u", "", "Filter by unit")
	cmd.Flags().String("run", "", "Filter by run id")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	unit, _ := cmd.Flags().GetString("unit")
	run, _ := cmd.Flags().GetString("run")
	limit, _ := cmd.Flags().GetInt("limit")

	j, err := openJournal()
	if err != nil {
		exitErr("open journal", err)
	}
	defer j.Close()

	entries, err := j.List(cmd.Context(), journal.ListParams{
		Unit:  unit,
		RunID: run,
		Limit: limit,
	})
	if err != nil {
		exitErr("history", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "[]")
		return
	}

	b, _ := json.MarshalIndent(entries, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

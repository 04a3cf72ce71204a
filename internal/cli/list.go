package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/aoc2023/internal/days"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered units",
		Run:   runList,
	}

	cmd.Flags().Bool("names-only", false, "Only output unit names")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	reg := days.Registry()
	for _, name := range reg.Names() {
		if namesOnly {
			fmt.Fprintln(cmd.OutOrStdout(), name)
			continue
		}
		u, _ := reg.Lookup(name)
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", name, u.Title())
	}
}

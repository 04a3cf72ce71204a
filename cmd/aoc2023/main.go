package main

import (
	"os"

	"github.com/rcliao/aoc2023/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

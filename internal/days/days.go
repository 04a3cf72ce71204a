// Package days wires every puzzle unit into a registry.
package days

import (
	"github.com/rcliao/aoc2023/internal/days/day01"
	"github.com/rcliao/aoc2023/internal/days/day02"
	"github.com/rcliao/aoc2023/internal/days/day03"
	"github.com/rcliao/aoc2023/internal/days/day04"
	"github.com/rcliao/aoc2023/internal/days/day05"
	"github.com/rcliao/aoc2023/internal/days/day06"
	"github.com/rcliao/aoc2023/internal/days/day07"
	"github.com/rcliao/aoc2023/internal/puzzle"
)

// Registry returns a registry with every unit, in day order.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(
		day01.Puzzle{},
		day02.Puzzle{},
		day03.Puzzle{},
		day04.Puzzle{},
		day05.Puzzle{},
		day06.Puzzle{},
		day07.Puzzle{},
	)
}

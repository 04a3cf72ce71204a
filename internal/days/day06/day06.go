// Package day06 counts the ways to win the boat races.
package day06

import (
	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/race"
)

// Puzzle is the day_06 unit.
type Puzzle struct{}

func (Puzzle) Name() string  { return "day_06" }
func (Puzzle) Title() string { return "Wait For It" }

func (Puzzle) Solve(input string) ([]model.Answer, error) {
	races, err := race.ParseSheet(input)
	if err != nil {
		return nil, err
	}
	product := uint64(1)
	for _, r := range races {
		product *= r.Ways()
	}

	long, err := race.ParseKerned(input)
	if err != nil {
		return nil, err
	}
	return []model.Answer{
		{Part: 1, Label: "The number of ways you could win each race multiplied gives", Value: product},
		{Part: 2, Label: "The number of ways you can beat the record in the long race is", Value: long.Ways()},
	}, nil
}

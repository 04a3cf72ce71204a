// Package day05 finds the nearest location needing a seed.
package day05

import (
	"fmt"

	"github.com/rcliao/aoc2023/internal/almanac"
	"github.com/rcliao/aoc2023/internal/model"
)

// Puzzle is the day_05 unit.
type Puzzle struct{}

func (Puzzle) Name() string  { return "day_05" }
func (Puzzle) Title() string { return "If You Give A Seed A Fertilizer" }

func (Puzzle) Solve(input string) ([]model.Answer, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return nil, err
	}
	lowest, err := a.LowestLocation()
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}
	lowestRanged, err := a.LowestLocationForRanges()
	if err != nil {
		return nil, fmt.Errorf("seed ranges: %w", err)
	}
	return []model.Answer{
		{Part: 1, Label: "The lowest location number is", Value: lowest},
		{Part: 2, Label: "The lowest location number for the seed ranges is", Value: lowestRanged},
	}, nil
}

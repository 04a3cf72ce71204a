package almanac

import (
	"fmt"
	"strings"

	"github.com/rcliao/aoc2023/internal/puzzle"
	"github.com/rcliao/aoc2023/internal/section"
)

const parseUnit = "almanac"

// Almanac is a parsed puzzle input: the seeds line plus the stage chain.
type Almanac struct {
	Seeds    []uint64
	Pipeline Pipeline
}

// SeedRanges reads the seeds line as "start length" pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("almanac: %d seed numbers do not form start/length pairs", len(a.Seeds))
	}
	ranges := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, ok := Span(a.Seeds[i], a.Seeds[i+1])
		if !ok {
			return nil, fmt.Errorf("almanac: seed range %d+%d overflows", a.Seeds[i], a.Seeds[i+1])
		}
		ranges = append(ranges, iv)
	}
	return ranges, nil
}

// Locations maps each seed to its terminal value, in seed order.
func (a *Almanac) Locations() []uint64 {
	out := make([]uint64, len(a.Seeds))
	for i, s := range a.Seeds {
		out[i] = a.Pipeline.Map(s)
	}
	return out
}

// LowestLocation is the minimum terminal value over the individual seeds.
func (a *Almanac) LowestLocation() (uint64, error) {
	return a.Pipeline.Lowest(a.Seeds)
}

// LowestLocationForRanges is the minimum terminal value when the seeds line
// describes ranges.
func (a *Almanac) LowestLocationForRanges() (uint64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return a.Pipeline.LowestOfIntervals(ranges)
}

// Parse reads an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	...
//
// Each map's destination category must be the next map's source category.
func Parse(input string) (*Almanac, error) {
	sections := section.Split(input)
	if len(sections) == 0 {
		return nil, puzzle.Errorf(parseUnit, 0, "empty input")
	}

	head := sections[0]
	if len(head.Lines) != 1 {
		return nil, puzzle.Errorf(parseUnit, head.StartLine+1, "expected a blank line after the seeds line")
	}
	rest, ok := strings.CutPrefix(head.Lines[0], "seeds:")
	if !ok {
		return nil, puzzle.Errorf(parseUnit, head.StartLine, "expected %q, got %q", "seeds:", head.Lines[0])
	}
	seeds, err := puzzle.Ints[uint64](rest)
	if err != nil {
		return nil, &puzzle.ParseError{Unit: parseUnit, Line: head.StartLine, Err: err}
	}
	if len(seeds) == 0 {
		return nil, puzzle.Errorf(parseUnit, head.StartLine, "no seeds listed")
	}

	a := &Almanac{Seeds: seeds}
	for _, sec := range sections[1:] {
		stage, err := parseStage(sec)
		if err != nil {
			return nil, err
		}
		if n := len(a.Pipeline.Stages); n > 0 {
			if prev := a.Pipeline.Stages[n-1]; prev.To != stage.From {
				return nil, puzzle.Errorf(parseUnit, sec.StartLine,
					"map %s-to-%s does not continue from %q", stage.From, stage.To, prev.To)
			}
		}
		a.Pipeline.Stages = append(a.Pipeline.Stages, stage)
	}
	if len(a.Pipeline.Stages) == 0 {
		return nil, puzzle.Errorf(parseUnit, 0, "no maps")
	}
	return a, nil
}

func parseStage(sec section.Section) (Stage, error) {
	name, ok := strings.CutSuffix(sec.Header(), " map:")
	if !ok {
		return Stage{}, puzzle.Errorf(parseUnit, sec.StartLine, "expected a map header, got %q", sec.Header())
	}
	from, to, ok := strings.Cut(name, "-to-")
	if !ok || from == "" || to == "" {
		return Stage{}, puzzle.Errorf(parseUnit, sec.StartLine, "map name %q is not <from>-to-<to>", name)
	}

	stage := Stage{From: from, To: to}
	for i, line := range sec.Body() {
		lineNum := sec.StartLine + 1 + i
		nums, err := puzzle.Ints[uint64](line)
		if err != nil {
			return Stage{}, &puzzle.ParseError{Unit: parseUnit, Line: lineNum, Err: err}
		}
		if len(nums) != 3 {
			return Stage{}, puzzle.Errorf(parseUnit, lineNum, "expected 3 numbers, got %d", len(nums))
		}
		rule, err := NewRule(nums[0], nums[1], nums[2])
		if err != nil {
			return Stage{}, &puzzle.ParseError{Unit: parseUnit, Line: lineNum, Err: err}
		}
		stage.Rules = append(stage.Rules, rule)
	}
	if len(stage.Rules) == 0 {
		return Stage{}, puzzle.Errorf(parseUnit, sec.StartLine, "map %s has no ranges", name)
	}
	return stage, nil
}

package race

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcliao/aoc2023/internal/puzzle"
)

const parseUnit = "race sheet"

// ParseSheet reads the "Time:" and "Distance:" lines as one race per column.
func ParseSheet(input string) ([]Race, error) {
	times, dists, err := sheetFields(input)
	if err != nil {
		return nil, err
	}
	t, err := puzzle.Ints[uint64](times)
	if err != nil {
		return nil, &puzzle.ParseError{Unit: parseUnit, Line: 1, Err: err}
	}
	d, err := puzzle.Ints[uint64](dists)
	if err != nil {
		return nil, &puzzle.ParseError{Unit: parseUnit, Line: 2, Err: err}
	}
	if len(t) != len(d) {
		return nil, puzzle.Errorf(parseUnit, 2, "%d times but %d distances", len(t), len(d))
	}
	if len(t) == 0 {
		return nil, puzzle.Errorf(parseUnit, 1, "no races")
	}

	races := make([]Race, len(t))
	for i := range t {
		races[i] = Race{Time: t[i], Record: d[i]}
	}
	return races, nil
}

// ParseKerned reads the sheet as a single race, ignoring the spaces between
// digits.
func ParseKerned(input string) (Race, error) {
	times, dists, err := sheetFields(input)
	if err != nil {
		return Race{}, err
	}
	t, err := joinDigits(times)
	if err != nil {
		return Race{}, &puzzle.ParseError{Unit: parseUnit, Line: 1, Err: err}
	}
	d, err := joinDigits(dists)
	if err != nil {
		return Race{}, &puzzle.ParseError{Unit: parseUnit, Line: 2, Err: err}
	}
	return Race{Time: t, Record: d}, nil
}

func sheetFields(input string) (times, dists string, err error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return "", "", puzzle.Errorf(parseUnit, 0, "expected 2 lines, got %d", len(lines))
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return "", "", puzzle.Errorf(parseUnit, 1, "expected %q, got %q", "Time:", lines[0])
	}
	dists, ok = strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return "", "", puzzle.Errorf(parseUnit, 2, "expected %q, got %q", "Distance:", lines[1])
	}
	return times, dists, nil
}

func joinDigits(s string) (uint64, error) {
	joined := strings.Join(strings.Fields(s), "")
	if joined == "" {
		return 0, fmt.Errorf("no digits")
	}
	return strconv.ParseUint(joined, 10, 64)
}

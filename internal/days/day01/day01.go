// Package day01 recovers calibration values from an amended document.
package day01

import (
	"strings"

	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/puzzle"
)

// Puzzle is the day_01 unit.
type Puzzle struct{}

func (Puzzle) Name() string  { return "day_01" }
func (Puzzle) Title() string { return "Trebuchet?!" }

func (Puzzle) Solve(input string) ([]model.Answer, error) {
	var digits, written uint64
	for _, line := range puzzle.Lines(input) {
		if v, ok := CalibrationValue(line); ok {
			digits += uint64(v)
		}
		if v, ok := WrittenCalibrationValue(line); ok {
			written += uint64(v)
		}
	}
	return []model.Answer{
		{Part: 1, Label: "The sum of all the calibration values is", Value: digits},
		{Part: 2, Label: "The sum of all the calibration values, including written ones, is", Value: written},
	}, nil
}

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// CalibrationValue combines the first and last digit of line. ok is false
// when the line holds no digit.
func CalibrationValue(line string) (int, bool) {
	return calibrate(line, func(s string) (int, bool) {
		if c := s[0]; c >= '0' && c <= '9' {
			return int(c - '0'), true
		}
		return 0, false
	})
}

// WrittenCalibrationValue also counts spelled-out digits. Spellings may
// overlap, so "eightwo" starts with 8 and ends with 2.
func WrittenCalibrationValue(line string) (int, bool) {
	return calibrate(line, func(s string) (int, bool) {
		if c := s[0]; c >= '0' && c <= '9' {
			return int(c - '0'), true
		}
		for i, w := range words {
			if strings.HasPrefix(s, w) {
				return i + 1, true
			}
		}
		return 0, false
	})
}

func calibrate(line string, digitAt func(string) (int, bool)) (int, bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line[i:]); ok {
			first = d
			break
		}
	}
	if first < 0 {
		return 0, false
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line[i:]); ok {
			last = d
			break
		}
	}
	return first*10 + last, true
}

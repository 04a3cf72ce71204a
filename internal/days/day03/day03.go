// Package day03 reads part numbers off an engine schematic.
package day03

import (
	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/puzzle"
)

const name = "day_03"

// Point is a row/column position in the schematic.
type Point struct{ Row, Col int }

// Number is a run of digits on one row, covering columns [Col, End).
type Number struct {
	Row, Col, End int
	Value         uint64
}

// Neighbours reports whether p touches the number, diagonals included.
func (n Number) Neighbours(p Point) bool {
	return p.Row >= n.Row-1 && p.Row <= n.Row+1 && p.Col >= n.Col-1 && p.Col <= n.End
}

// Schematic holds every number and every symbol (anything but digits and '.').
type Schematic struct {
	Numbers []Number
	Symbols map[Point]byte
}

// Parse scans the grid row by row, merging adjacent digits into numbers.
func Parse(input string) (*Schematic, error) {
	s := &Schematic{Symbols: make(map[Point]byte)}
	for row, line := range puzzle.Lines(input) {
		for col := 0; col < len(line); {
			c := line[col]
			switch {
			case isDigit(c):
				start := col
				var v uint64
				for col < len(line) && isDigit(line[col]) {
					if v > (^uint64(0)-9)/10 {
						return nil, puzzle.Errorf(name, row+1, "number at column %d overflows", start+1)
					}
					v = v*10 + uint64(line[col]-'0')
					col++
				}
				s.Numbers = append(s.Numbers, Number{Row: row, Col: start, End: col, Value: v})
				continue
			case c != '.':
				s.Symbols[Point{row, col}] = c
			}
			col++
		}
	}
	return s, nil
}

// adjacent lists the numbers touching p.
func (s *Schematic) adjacent(p Point) []Number {
	var out []Number
	for _, n := range s.Numbers {
		if n.Neighbours(p) {
			out = append(out, n)
		}
	}
	return out
}

// PartNumbers returns every number touching at least one symbol. A number
// next to several symbols is returned once.
func (s *Schematic) PartNumbers() []uint64 {
	var out []uint64
	for _, n := range s.Numbers {
		for p := range s.Symbols {
			if n.Neighbours(p) {
				out = append(out, n.Value)
				break
			}
		}
	}
	return out
}

// GearRatios returns, for every '*' touching exactly two numbers, their
// product.
func (s *Schematic) GearRatios() []uint64 {
	var out []uint64
	for p, c := range s.Symbols {
		if c != '*' {
			continue
		}
		if nums := s.adjacent(p); len(nums) == 2 {
			out = append(out, nums[0].Value*nums[1].Value)
		}
	}
	return out
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Puzzle is the day_03 unit.
type Puzzle struct{}

func (Puzzle) Name() string  { return name }
func (Puzzle) Title() string { return "Gear Ratios" }

func (Puzzle) Solve(input string) ([]model.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return []model.Answer{
		{Part: 1, Label: "The sum of all the part numbers in the engine schematic is", Value: puzzle.Sum(s.PartNumbers())},
		{Part: 2, Label: "The sum of all the gear ratios in the engine schematic is", Value: puzzle.Sum(s.GearRatios())},
	}, nil
}

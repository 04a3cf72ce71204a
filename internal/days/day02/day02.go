// Package day02 checks cube games against the bag's contents.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/puzzle"
)

const name = "day_02"

// Round is one handful of cubes.
type Round struct {
	Red, Green, Blue uint64
}

// Game is a numbered sequence of rounds.
type Game struct {
	ID     uint64
	Rounds []Round
}

// Bag is the load the elf claims to carry.
var Bag = Round{Red: 12, Green: 13, Blue: 14}

// Possible reports whether no round shows more cubes of a colour than bag
// holds.
func (g Game) Possible(bag Round) bool {
	for _, r := range g.Rounds {
		if r.Red > bag.Red || r.Green > bag.Green || r.Blue > bag.Blue {
			return false
		}
	}
	return true
}

// Minimum is the smallest bag that makes the game possible.
func (g Game) Minimum() Round {
	var m Round
	for _, r := range g.Rounds {
		m.Red = max(m.Red, r.Red)
		m.Green = max(m.Green, r.Green)
		m.Blue = max(m.Blue, r.Blue)
	}
	return m
}

// Power multiplies the colour counts together.
func (r Round) Power() uint64 { return r.Red * r.Green * r.Blue }

// Puzzle is the day_02 unit.
type Puzzle struct{}

func (Puzzle) Name() string  { return name }
func (Puzzle) Title() string { return "Cube Conundrum" }

func (Puzzle) Solve(input string) ([]model.Answer, error) {
	var idSum, powerSum uint64
	for i, line := range puzzle.Lines(input) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, &puzzle.ParseError{Unit: name, Line: i + 1, Err: err}
		}
		if g.Possible(Bag) {
			idSum += g.ID
		}
		powerSum += g.Minimum().Power()
	}
	return []model.Answer{
		{Part: 1, Label: "The sum of the games that are possible is", Value: idSum},
		{Part: 2, Label: "The sum of the power of the minimum sets is", Value: powerSum},
	}, nil
}

// ParseGame reads "Game 1: 3 blue, 4 red; 1 red, 2 green".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, fmt.Errorf("missing %q in %q", ": ", line)
	}
	idText, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("expected %q, got %q", "Game <id>", head)
	}
	id, err := strconv.ParseUint(idText, 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("game id: %w", err)
	}

	g := Game{ID: id}
	for _, roundText := range strings.Split(body, "; ") {
		var r Round
		for _, cube := range strings.Split(roundText, ", ") {
			countText, colour, ok := strings.Cut(cube, " ")
			if !ok {
				return Game{}, fmt.Errorf("cube %q is not <count> <colour>", cube)
			}
			n, err := strconv.ParseUint(countText, 10, 64)
			if err != nil {
				return Game{}, fmt.Errorf("cube count: %w", err)
			}
			switch colour {
			case "red":
				r.Red = n
			case "green":
				r.Green = n
			case "blue":
				r.Blue = n
			default:
				return Game{}, fmt.Errorf("unknown colour %q", colour)
			}
		}
		g.Rounds = append(g.Rounds, r)
	}
	return g, nil
}

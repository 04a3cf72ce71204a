// Package day04 scores scratchcards.
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/puzzle"
)

const name = "day_04"

// Card is one scratchcard.
type Card struct {
	ID      uint64
	Winning map[uint64]struct{}
	Numbers map[uint64]struct{}
}

// Matches counts the numbers that are also winning numbers.
func (c Card) Matches() int {
	n := 0
	for v := range c.Numbers {
		if _, ok := c.Winning[v]; ok {
			n++
		}
	}
	return n
}

// Score is 1 for the first match, doubled for each further match.
func (c Card) Score() uint64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// TotalCards plays the copy rule: a card with m matches wins one copy of
// each of the next m cards, for every copy of itself held. Copies never run
// past the end of the table.
func TotalCards(cards []Card) uint64 {
	pile := make([]uint64, len(cards))
	for i := range pile {
		pile[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(pile); j++ {
			pile[j] += pile[i]
		}
	}
	return puzzle.Sum(pile)
}

// ParseCard reads "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' in %q", line)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("expected %q, got %q", "Card <id>", head)
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Card{}, fmt.Errorf("card id: %w", err)
	}
	winText, haveText, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("missing '|' in %q", line)
	}
	winning, err := numberSet(winText)
	if err != nil {
		return Card{}, err
	}
	numbers, err := numberSet(haveText)
	if err != nil {
		return Card{}, err
	}
	return Card{ID: id, Winning: winning, Numbers: numbers}, nil
}

func numberSet(s string) (map[uint64]struct{}, error) {
	nums, err := puzzle.Ints[uint64](s)
	if err != nil {
		return nil, err
	}
	set := make(map[uint64]struct{}, len(nums))
	for _, n := range nums {
		set[n] = struct{}{}
	}
	return set, nil
}

// Puzzle is the day_04 unit.
type Puzzle struct{}

func (Puzzle) Name() string  { return name }
func (Puzzle) Title() string { return "Scratchcards" }

func (Puzzle) Solve(input string) ([]model.Answer, error) {
	var cards []Card
	var points uint64
	for i, line := range puzzle.Lines(input) {
		c, err := ParseCard(line)
		if err != nil {
			return nil, &puzzle.ParseError{Unit: name, Line: i + 1, Err: err}
		}
		cards = append(cards, c)
		points += c.Score()
	}
	return []model.Answer{
		{Part: 1, Label: "The total amount of points that all the scratchcards are worth is", Value: points},
		{Part: 2, Label: "The total amount of scratchcards that you end up with is", Value: TotalCards(cards)},
	}, nil
}

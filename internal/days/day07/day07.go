// Package day07 ranks Camel Cards hands.
package day07

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rcliao/aoc2023/internal/model"
	"github.com/rcliao/aoc2023/internal/puzzle"
)

const name = "day_07"

// Kind is a hand's type, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (k Kind) String() string {
	return [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}[k]
}

// Card strength orders, weakest first. With jokers, J is the weakest card.
const (
	order      = "23456789TJQKA"
	jokerOrder = "J23456789TQKA"
)

// Hand is five cards and a bid.
type Hand struct {
	Cards string
	Bid   uint64
}

// Kind classifies the hand. With jokers set, every J joins the largest
// group of other cards.
func (h Hand) Kind(jokers bool) Kind {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// Compare orders hands by kind, then card by card.
func Compare(a, b Hand, jokers bool) int {
	if ka, kb := a.Kind(jokers), b.Kind(jokers); ka != kb {
		return int(ka) - int(kb)
	}
	strengths := order
	if jokers {
		strengths = jokerOrder
	}
	for i := 0; i < len(a.Cards); i++ {
		if d := strings.IndexByte(strengths, a.Cards[i]) - strings.IndexByte(strengths, b.Cards[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Winnings ranks the hands and sums rank times bid.
func Winnings(hands []Hand, jokers bool) uint64 {
	ranked := slices.Clone(hands)
	slices.SortStableFunc(ranked, func(a, b Hand) int { return Compare(a, b, jokers) })
	var total uint64
	for i, h := range ranked {
		total += uint64(i+1) * h.Bid
	}
	return total
}

// ParseHand reads "32T3K 765".
func ParseHand(line string) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("expected <cards> <bid>, got %q", line)
	}
	cards := fields[0]
	if len(cards) != 5 {
		return Hand{}, fmt.Errorf("hand %q does not have 5 cards", cards)
	}
	for _, c := range cards {
		if !strings.ContainsRune(order, c) {
			return Hand{}, fmt.Errorf("unknown card %q in %q", c, cards)
		}
	}
	bid, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("bid: %w", err)
	}
	return Hand{Cards: cards, Bid: bid}, nil
}

// Puzzle is the day_07 unit.
type Puzzle struct{}

func (Puzzle) Name() string  { return name }
func (Puzzle) Title() string { return "Camel Cards" }

func (Puzzle) Solve(input string) ([]model.Answer, error) {
	var hands []Hand
	for i, line := range puzzle.Lines(input) {
		h, err := ParseHand(line)
		if err != nil {
			return nil, &puzzle.ParseError{Unit: name, Line: i + 1, Err: err}
		}
		hands = append(hands, h)
	}
	return []model.Answer{
		{Part: 1, Label: "The total winnings are", Value: Winnings(hands, false)},
		{Part: 2, Label: "The total winnings with jokers are", Value: Winnings(hands, true)},
	}, nil
}

// Package samples holds each unit's worked examples and checks units
// against them.
package samples

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/aoc2023/internal/puzzle"
)

//go:embed samples.yaml
var raw []byte

// Example is one worked example: an input and the answers it must produce.
type Example struct {
	Input string         `yaml:"input"`
	Want  map[int]uint64 `yaml:"want"`
}

// Set maps unit names to their examples.
type Set map[string][]Example

// Load parses the embedded examples.
func Load() (Set, error) {
	return Parse(raw)
}

// Parse reads a YAML document of examples.
func Parse(b []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}
	for unit, examples := range s {
		for i, ex := range examples {
			if len(ex.Want) == 0 {
				return nil, fmt.Errorf("parse samples: %s example %d has no expected answers", unit, i+1)
			}
		}
	}
	return s, nil
}

// First returns the unit's first example input.
func (s Set) First(unit string) (string, bool) {
	ex := s[unit]
	if len(ex) == 0 {
		return "", false
	}
	return ex[0].Input, true
}

// Result is the outcome of checking one part of one example.
type Result struct {
	Unit    string `json:"unit"`
	Example int    `json:"example"`
	Part    int    `json:"part"`
	Want    uint64 `json:"want"`
	Got     uint64 `json:"got"`
	Err     string `json:"error,omitempty"`
}

// OK reports whether the part produced the expected answer.
func (r Result) OK() bool { return r.Err == "" && r.Got == r.Want }

func (r Result) String() string {
	status := "ok  "
	if !r.OK() {
		status = "FAIL"
	}
	line := fmt.Sprintf("%s %s example %d part %d: want %d, got %d", status, r.Unit, r.Example, r.Part, r.Want, r.Got)
	if r.Err != "" {
		line = fmt.Sprintf("%s %s example %d part %d: %s", status, r.Unit, r.Example, r.Part, r.Err)
	}
	return line
}

// Check runs every example of every named unit. Units with no examples are
// skipped; names missing from the registry fail the lookup.
func Check(reg *puzzle.Registry, s Set, names []string) ([]Result, error) {
	var results []Result
	for _, name := range names {
		u, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}
		for i, ex := range s[name] {
			results = append(results, checkExample(u, i+1, ex)...)
		}
	}
	return results, nil
}

func checkExample(u puzzle.Unit, n int, ex Example) []Result {
	parts := make([]int, 0, len(ex.Want))
	for p := range ex.Want {
		parts = append(parts, p)
	}
	slices.Sort(parts)

	answers, err := u.Solve(ex.Input)
	got := make(map[int]uint64, len(answers))
	for _, a := range answers {
		got[a.Part] = a.Value
	}

	results := make([]Result, 0, len(parts))
	for _, p := range parts {
		r := Result{Unit: u.Name(), Example: n, Part: p, Want: ex.Want[p]}
		switch v, ok := got[p]; {
		case err != nil:
			r.Err = err.Error()
		case !ok:
			r.Err = "no answer for this part"
		default:
			r.Got = v
		}
		results = append(results, r)
	}
	return results
}

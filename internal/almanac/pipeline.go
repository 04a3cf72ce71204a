package almanac

import "errors"

// ErrNoSeeds is returned when asking for a minimum over an empty seed set.
var ErrNoSeeds = errors.New("almanac: no seeds")

// Pipeline is an ordered chain of stages. It is never mutated after parsing.
type Pipeline struct {
	Stages []Stage
}

// Map threads v through every stage in order.
func (p Pipeline) Map(v uint64) uint64 {
	for _, s := range p.Stages {
		v = s.Map(v)
	}
	return v
}

// MapIntervals threads a set of intervals through every stage in order.
func (p Pipeline) MapIntervals(in []Interval) []Interval {
	out := in
	for _, s := range p.Stages {
		out = s.MapIntervals(out)
	}
	return out
}

// Then returns a pipeline running p's stages followed by next's.
func (p Pipeline) Then(next Pipeline) Pipeline {
	stages := make([]Stage, 0, len(p.Stages)+len(next.Stages))
	stages = append(stages, p.Stages...)
	stages = append(stages, next.Stages...)
	return Pipeline{Stages: stages}
}

// Lowest maps every value and returns the smallest result.
func (p Pipeline) Lowest(values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := p.Map(values[0])
	for _, v := range values[1:] {
		lowest = min(lowest, p.Map(v))
	}
	return lowest, nil
}

// LowestOfIntervals maps every interval and returns the smallest start among
// the non-empty results.
func (p Pipeline) LowestOfIntervals(in []Interval) (uint64, error) {
	found := false
	var lowest uint64
	for _, iv := range p.MapIntervals(in) {
		if iv.Empty() {
			continue
		}
		if !found || iv.Start < lowest {
			lowest = iv.Start
			found = true
		}
	}
	if !found {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}

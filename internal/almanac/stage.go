package almanac

import "fmt"

// Rule maps Source onto Destination by a constant offset. Both intervals
// have the same positive length.
type Rule struct {
	Source      Interval
	Destination Interval
}

// NewRule builds a rule from an almanac line's "destination source length"
// triple.
func NewRule(dst, src, n uint64) (Rule, error) {
	if n == 0 {
		return Rule{}, fmt.Errorf("rule %d %d %d: zero length", dst, src, n)
	}
	s, ok := Span(src, n)
	if !ok {
		return Rule{}, fmt.Errorf("rule %d %d %d: source overflows", dst, src, n)
	}
	d, ok := Span(dst, n)
	if !ok {
		return Rule{}, fmt.Errorf("rule %d %d %d: destination overflows", dst, src, n)
	}
	return Rule{Source: s, Destination: d}, nil
}

// Map translates v when the rule's source covers it.
func (r Rule) Map(v uint64) (uint64, bool) {
	if !r.Source.Contains(v) {
		return 0, false
	}
	return r.Destination.Start + (v - r.Source.Start), true
}

// shift translates an interval that lies entirely inside Source.
func (r Rule) shift(iv Interval) Interval {
	return Interval{
		Start: r.Destination.Start + (iv.Start - r.Source.Start),
		End:   r.Destination.Start + (iv.End - r.Source.Start),
	}
}

// Stage is one category transition, e.g. seed-to-soil.
type Stage struct {
	From  string
	To    string
	Rules []Rule
}

// Map applies the first rule covering v, or returns v unchanged. Rules are
// not checked for overlap; parse order decides.
func (s Stage) Map(v uint64) uint64 {
	for _, r := range s.Rules {
		if out, ok := r.Map(v); ok {
			return out
		}
	}
	return v
}

// MapIntervals applies the stage to a set of intervals. Every input interval
// is split at the rule boundaries it crosses: overlapping pieces are
// translated, the rest moves on to the next rule, and whatever no rule
// claims passes through unchanged. The output has the same total length as
// the input.
func (s Stage) MapIntervals(in []Interval) []Interval {
	pending := make([]Interval, 0, len(in))
	for _, iv := range in {
		if !iv.Empty() {
			pending = append(pending, iv)
		}
	}

	var out []Interval
	for _, r := range s.Rules {
		var rest []Interval
		for _, iv := range pending {
			overlap := iv.Intersect(r.Source)
			if overlap.Empty() {
				rest = append(rest, iv)
				continue
			}
			out = append(out, r.shift(overlap))
			if iv.Start < overlap.Start {
				rest = append(rest, Interval{Start: iv.Start, End: overlap.Start})
			}
			if overlap.End < iv.End {
				rest = append(rest, Interval{Start: overlap.End, End: iv.End})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

func (s Stage) String() string {
	return fmt.Sprintf("%s-to-%s (%d rules)", s.From, s.To, len(s.Rules))
}

// Package almanac translates category values through chained range maps.
//
// A Pipeline is an ordered list of Stages. Each Stage holds Rules that map a
// half-open source interval onto a destination interval of the same length;
// values no rule covers pass through unchanged. Pipelines evaluate either one
// value at a time or over whole intervals, splitting them at rule boundaries
// so very large seed populations never have to be enumerated.
package almanac

import "fmt"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start uint64
	End   uint64
}

// Span returns the interval of length n starting at start. ok is false when
// the end would overflow.
func Span(start, n uint64) (iv Interval, ok bool) {
	end := start + n
	if end < start {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// Len is the number of values in the interval.
func (iv Interval) Len() uint64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty reports whether the interval holds no values.
func (iv Interval) Empty() bool { return iv.End <= iv.Start }

// Contains reports whether v lies in the interval.
func (iv Interval) Contains(v uint64) bool { return v >= iv.Start && v < iv.End }

// Intersect returns the overlap of two intervals, possibly empty.
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{Start: max(iv.Start, o.Start), End: min(iv.End, o.End)}
}

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.End) }

// TotalLen sums the lengths of ivs.
func TotalLen(ivs []Interval) uint64 {
	var n uint64
	for _, iv := range ivs {
		n += iv.Len()
	}
	return n
}

package interval

import (
	"iter"
	"slices"
)

// Pair is an overlapping pair in sweep order: First sorts at or before Second.
type Pair struct {
	First  Interval
	Second Interval
}

// Minutes returns the number of minutes the pair shares.
func (p Pair) Minutes() int {
	return OverlapMinutes(p.First, p.Second)
}

// Sort returns a copy of xs stably sorted by start time.
// Intervals with equal starts keep their input order.
func Sort(xs []Interval) []Interval {
	sorted := slices.Clone(xs)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return a.Start - b.Start
	})
	return sorted
}

// Filter keeps the intervals that lie entirely within window.
// A nil window returns xs itself. Order is preserved.
func Filter(xs []Interval, window *Interval) []Interval {
	if window == nil {
		return xs
	}
	kept := make([]Interval, 0, len(xs))
	for _, iv := range xs {
		if window.Contains(iv) {
			kept = append(kept, iv)
		}
	}
	return kept
}

// Sweep yields every overlapping pair of an already sorted slice.
// The inner scan stops at the first interval starting at or after the
// current end, since every later interval starts no earlier.
func Sweep(sorted []Interval) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for i, a := range sorted {
			for _, b := range sorted[i+1:] {
				if b.Start >= a.End {
					break
				}
				if b.End > a.Start {
					if !yield(Pair{First: a, Second: b}) {
						return
					}
				}
			}
		}
	}
}

// Detect sorts xs and yields every overlapping pair in sweep order.
// xs is not modified.
func Detect(xs []Interval) iter.Seq[Pair] {
	return Sweep(Sort(xs))
}

// Find runs the full pipeline: stable sort, window filter, sweep.
// Filtering after the sort keeps equal-start ties in input order.
func Find(xs []Interval, window *Interval) iter.Seq[Pair] {
	return Sweep(Filter(Sort(xs), window))
}

// Collect drains a pair sequence into a slice.
func Collect(seq iter.Seq[Pair]) []Pair {
	var pairs []Pair
	for p := range seq {
		pairs = append(pairs, p)
	}
	return pairs
}

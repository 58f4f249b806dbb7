package model

import "fmt"

// YearInterval is an inclusive range of calendar years.
// Always normalized: Start <= End. Construction through NewYearInterval
// is the only place the invariant is checked; code holding a
// YearInterval may rely on it.
type YearInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewYearInterval builds a validated interval.
func NewYearInterval(start, end int) (YearInterval, error) {
	if start > end {
		return YearInterval{}, fmt.Errorf("invalid interval: %d > %d", start, end)
	}
	return YearInterval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share at least one year.
func (y YearInterval) Overlaps(other YearInterval) bool {
	return y.Start <= other.End && other.Start <= y.End
}

// Intersect returns the overlapping part of two intervals.
// ok is false when they are disjoint.
func (y YearInterval) Intersect(other YearInterval) (YearInterval, bool) {
	if !y.Overlaps(other) {
		return YearInterval{}, false
	}
	return YearInterval{Start: max(y.Start, other.Start), End: min(y.End, other.End)}, true
}

// Contains reports whether the year falls inside the interval.
func (y YearInterval) Contains(year int) bool {
	return y.Start <= year && year <= y.End
}

// Span is the number of years covered, inclusive.
func (y YearInterval) Span() int {
	return y.End - y.Start + 1
}

// Midpoint is the floor of the average of the bounds. Later stages use
// it as the representative "as-of" year for a multi-year range.
func (y YearInterval) Midpoint() int {
	return (y.Start + y.End) / 2
}

func (y YearInterval) String() string {
	if y.Start == y.End {
		return fmt.Sprintf("%d", y.Start)
	}
	return fmt.Sprintf("%d-%d", y.Start, y.End)
}

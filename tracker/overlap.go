package tracker

import "fmt"

// Range is a closed 1-D interval [Lo, Hi]
type Range struct {
	Lo float64
	Hi float64
}

// Span returns the length of the range
func (r Range) Span() float64 {
	return r.Hi - r.Lo
}

// RangeOverlap returns the intersection of range a (a1, a2) and range
// b (b1, b2).  Each range must have its low end strictly below its high end.
// The ok result is false when the ranges do not intersect, ranges that only
// touch return ok with a zero width range.
func RangeOverlap(a1, a2, b1, b2 float64) (r Range, ok bool, err error) {

	if !(a1 < a2) {
		return Range{}, false, fmt.Errorf("%w: a1 %v not less than a2 %v",
			ErrInvalidRange, a1, a2)
	}

	if !(b1 < b2) {
		return Range{}, false, fmt.Errorf("%w: b1 %v not less than b2 %v",
			ErrInvalidRange, b1, b2)
	}

	switch {
	case within(a1, b1, b2) && within(a2, b1, b2):
		// a is fully contained in b
		return Range{Lo: a1, Hi: a2}, true, nil

	case within(b1, a1, a2) && within(b2, a1, a2):
		// b is fully contained in a
		return Range{Lo: b1, Hi: b2}, true, nil

	case within(a1, b1, b2):
		// a starts inside b
		return Range{Lo: a1, Hi: b2}, true, nil

	case within(a2, b1, b2):
		// a ends inside b
		return Range{Lo: b1, Hi: a2}, true, nil
	}

	return Range{}, false, nil
}

// within reports whether v lies in the closed range [lo, hi]
func within(v, lo, hi float64) bool {
	return lo <= v && v <= hi
}

package tracker

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBox is returned when a box does not have min < max on both axes
	ErrInvalidBox = errors.New("invalid box")
	// ErrInvalidRange is returned when a 1-D range does not have low < high
	ErrInvalidRange = errors.New("invalid range")
	// ErrTypeMismatch is returned when overlap is requested for a shape
	// that is not an axis aligned Box
	ErrTypeMismatch = errors.New("shape is not a Box")
)

// Shape is any region a detector may report an object within
type Shape interface {
	Area() float64
}

// Point represents a 2D coordinate
type Point struct {
	X, Y float64
}

// Box is an axis aligned bounding box defined by its min and max coordinates
// on each axis
type Box struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// NewBox creates a Box from its x and y extents.  The min value of each
// axis must be strictly less than the max value
func NewBox(xMin, xMax, yMin, yMax float64) (Box, error) {
	b := Box{
		XMin: xMin,
		XMax: xMax,
		YMin: yMin,
		YMax: yMax,
	}

	if err := b.Validate(); err != nil {
		return Box{}, err
	}

	return b, nil
}

// BoxFromXYXY creates a Box from the top left (x1, y1) and bottom
// right (x2, y2) corners
func BoxFromXYXY(x1, y1, x2, y2 float64) (Box, error) {
	return NewBox(x1, x2, y1, y2)
}

// Validate checks the min < max invariant on both axes.  NaN coordinates
// fail the check
func (b Box) Validate() error {
	if !(b.XMin < b.XMax) {
		return fmt.Errorf("%w: x min %v not less than x max %v", ErrInvalidBox,
			b.XMin, b.XMax)
	}

	if !(b.YMin < b.YMax) {
		return fmt.Errorf("%w: y min %v not less than y max %v", ErrInvalidBox,
			b.YMin, b.YMax)
	}

	return nil
}

// Width returns the size of the box along the x axis
func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the size of the box along the y axis
func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

// Center returns the mid point of the box
func (b Box) Center() Point {
	return Point{
		X: (b.XMax + b.XMin) / 2.0,
		Y: (b.YMax + b.YMin) / 2.0,
	}
}

// Area returns the area of the box
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// String returns the box extents in xmin, xmax, ymin, ymax order
func (b Box) String() string {
	return fmt.Sprintf("<Box %v, %v, %v, %v>", b.XMin, b.XMax, b.YMin, b.YMax)
}

// Overlap returns the overlap ratio of the two boxes, defined as twice the
// intersecting area over the sum of both box areas.  Identical boxes give
// 1.0 and boxes that do not intersect give 0.0
func (b Box) Overlap(other Box) float64 {

	// check for horizontal overlap
	h, ok, err := RangeOverlap(b.XMin, b.XMax, other.XMin, other.XMax)
	if err != nil || !ok {
		return 0.0
	}

	// check for vertical overlap
	v, ok, err := RangeOverlap(b.YMin, b.YMax, other.YMin, other.YMax)
	if err != nil || !ok {
		return 0.0
	}

	overlapArea := h.Span() * v.Span()
	total := b.Area() + other.Area()

	if total <= 0 || math.IsInf(total, 0) {
		return 0.0
	}

	return 2.0 * overlapArea / total
}

// OverlapAmount computes the overlap ratio between two shapes.  Both shapes
// must be a Box or *Box
func OverlapAmount(a, b Shape) (float64, error) {

	boxA, err := asBox(a)
	if err != nil {
		return 0, fmt.Errorf("first shape: %w", err)
	}

	boxB, err := asBox(b)
	if err != nil {
		return 0, fmt.Errorf("second shape: %w", err)
	}

	return boxA.Overlap(boxB), nil
}

// asBox unwraps a Shape into a validated Box
func asBox(s Shape) (Box, error) {

	var box Box

	switch v := s.(type) {
	case Box:
		box = v
	case *Box:
		if v == nil {
			return Box{}, fmt.Errorf("%w: nil *Box", ErrTypeMismatch)
		}
		box = *v
	default:
		return Box{}, fmt.Errorf("%w: got %T", ErrTypeMismatch, s)
	}

	if err := box.Validate(); err != nil {
		return Box{}, err
	}

	return box, nil
}

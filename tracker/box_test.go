package tracker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustBoxXYXY creates a box from corners and fails the test on error
func mustBoxXYXY(t *testing.T, x1, y1, x2, y2 float64) Box {
	t.Helper()
	b, err := BoxFromXYXY(x1, y1, x2, y2)
	require.NoError(t, err)
	return b
}

// circle is a Shape that is not a Box
type circle struct {
	r float64
}

func (c circle) Area() float64 {
	return math.Pi * c.r * c.r
}

func TestNewBox(t *testing.T) {

	tests := []struct {
		name                   string
		xMin, xMax, yMin, yMax float64
		wantErr                bool
	}{
		{"valid", 1, 2, 3, 4, false},
		{"x equal", 1, 1, 3, 4, true},
		{"x reversed", 2, 1, 3, 4, true},
		{"y equal", 1, 2, 4, 4, true},
		{"y reversed", 1, 2, 5, 4, true},
		{"nan", math.NaN(), 2, 3, 4, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBox(tc.xMin, tc.xMax, tc.yMin, tc.yMax)

			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBox)
				assert.Equal(t, Box{}, b)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, Box{XMin: tc.xMin, XMax: tc.xMax, YMin: tc.yMin, YMax: tc.yMax}, b)
		})
	}
}

func TestBoxDerived(t *testing.T) {
	b, err := NewBox(1.0, 2.0, 1.0, 3.0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, b.Width())
	assert.Equal(t, 2.0, b.Height())
	assert.Equal(t, Point{X: 1.5, Y: 2.0}, b.Center())
	assert.Equal(t, 2.0, b.Area())

	b, err = NewBox(1.0, 2.0, 3.0, 4.0)
	require.NoError(t, err)
	assert.Equal(t, "<Box 1, 2, 3, 4>", b.String())
}

func TestBoxFromXYXY(t *testing.T) {
	b := mustBoxXYXY(t, 1, 2, 3, 4)
	assert.Equal(t, Box{XMin: 1, XMax: 3, YMin: 2, YMax: 4}, b)

	_, err := BoxFromXYXY(3, 2, 1, 4)
	assert.ErrorIs(t, err, ErrInvalidBox)
}

func TestRangeOverlap(t *testing.T) {

	tests := []struct {
		name           string
		a1, a2, b1, b2 float64
		want           Range
		ok             bool
	}{
		{"a left of b", 1.0, 4.0, 2.0, 6.0, Range{2.0, 4.0}, true},
		{"a right of b", 2.0, 6.0, 1.0, 4.0, Range{2.0, 4.0}, true},
		{"b inside a", 1.0, 6.0, 2.0, 5.0, Range{2.0, 5.0}, true},
		{"a inside b", 2.0, 5.0, 1.0, 6.0, Range{2.0, 5.0}, true},
		{"equal", 1.0, 3.0, 1.0, 3.0, Range{1.0, 3.0}, true},
		{"touching", 1.0, 2.0, 2.0, 3.0, Range{2.0, 2.0}, true},
		{"disjoint", 1.0, 2.0, 3.0, 4.0, Range{}, false},
		{"disjoint at origin", -2.0, -1.0, 0.0, 1.0, Range{}, false},
		{"degenerate at origin", -1.0, 0.0, 0.0, 1.0, Range{0.0, 0.0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, ok, err := RangeOverlap(tc.a1, tc.a2, tc.b1, tc.b2)
			require.NoError(t, err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, r)

			// swapping the ranges gives the same result
			rs, oks, err := RangeOverlap(tc.b1, tc.b2, tc.a1, tc.a2)
			require.NoError(t, err)
			assert.Equal(t, ok, oks)
			assert.Equal(t, r, rs)
		})
	}
}

func TestRangeOverlapInvalid(t *testing.T) {
	_, _, err := RangeOverlap(2, 1, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, _, err = RangeOverlap(0, 5, 3, 3)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestOverlapAmount(t *testing.T) {

	tests := []struct {
		name string
		a, b [4]float64
		want float64
	}{
		{"identical", [4]float64{1, 1, 3, 3}, [4]float64{1, 1, 3, 3}, 1.0},
		{"disjoint", [4]float64{1, 1, 2, 2}, [4]float64{3, 3, 4, 4}, 0.0},
		{"half", [4]float64{1, 1, 2, 2}, [4]float64{1, 1, 4, 2}, 0.5},
		{"cross", [4]float64{0, 1, 3, 2}, [4]float64{1, 0, 2, 3}, 1.0 / 3.0},
		{"disjoint on y only", [4]float64{1, 1, 3, 2}, [4]float64{1, 5, 3, 6}, 0.0},
		{"edges touch", [4]float64{0, 0, 1, 1}, [4]float64{1, 0, 2, 1}, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustBoxXYXY(t, tc.a[0], tc.a[1], tc.a[2], tc.a[3])
			b := mustBoxXYXY(t, tc.b[0], tc.b[1], tc.b[2], tc.b[3])

			got, err := OverlapAmount(a, b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)

			// order independent
			rev, err := OverlapAmount(&b, &a)
			require.NoError(t, err)
			assert.Equal(t, got, rev)

			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestOverlapSelfIsOne(t *testing.T) {
	boxes := [][4]float64{
		{0, 0, 1, 1},
		{-5, -3, 2, 7},
		{0.1, 0.2, 0.3, 0.4},
		{100, 200, 640, 480},
	}

	for _, c := range boxes {
		b := mustBoxXYXY(t, c[0], c[1], c[2], c[3])
		assert.Equal(t, 1.0, b.Overlap(b), "box %s", b)
	}
}

func TestOverlapAmountTypeMismatch(t *testing.T) {
	b := mustBoxXYXY(t, 0, 0, 1, 1)

	_, err := OverlapAmount(b, circle{r: 1})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = OverlapAmount(circle{r: 1}, b)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = OverlapAmount(b, nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	var nilBox *Box
	_, err = OverlapAmount(b, nilBox)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestOverlapAmountInvalidBox(t *testing.T) {
	b := mustBoxXYXY(t, 0, 0, 1, 1)

	_, err := OverlapAmount(b, Box{XMin: 1, XMax: 0, YMin: 0, YMax: 1})
	assert.ErrorIs(t, err, ErrInvalidBox)
}

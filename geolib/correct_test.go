package geolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectRingReversesClockwise(t *testing.T) {
	cw := Ring{Points: []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}}
	out, err := CorrectRing(cw, true)
	require.NoError(t, err)
	assert.True(t, ringArea(out) > 0, "outer ring should be CCW after correction")
}

func TestCorrectRingClosesOpenRing(t *testing.T) {
	open := Ring{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	out, err := CorrectRing(open, true)
	require.NoError(t, err)
	assert.True(t, EqualPoints(out.Points[0], out.Points[len(out.Points)-1]))
}

func TestCorrectRingDegenerateReturnsError(t *testing.T) {
	_, err := CorrectRing(Ring{Points: []Point{{0, 0}, {10, 0}}}, true)
	assert.ErrorIs(t, err, ErrDegenerateRing)
}

func TestCorrectPolygonInnersClockwise(t *testing.T) {
	poly := Polygon{
		Outer:  square(),
		Inners: []Ring{{Points: []Point{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}}}},
	}
	out, err := CorrectPolygon(poly)
	require.NoError(t, err)
	assert.True(t, ringArea(out.Outer) > 0)
	assert.True(t, ringArea(out.Inners[0]) < 0)
}

func TestSortRingIsRotationInvariant(t *testing.T) {
	a := Ring{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	b := Ring{Points: []Point{{10, 0}, {10, 10}, {0, 10}, {0, 0}, {10, 0}}}
	assert.Equal(t, 0, CompareRings(SortRing(a), SortRing(b)))
}

func TestCompareRingsIsRaw(t *testing.T) {
	a := Ring{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	b := Ring{Points: []Point{{10, 0}, {10, 10}, {0, 10}, {0, 0}, {10, 0}}}
	assert.NotEqual(t, 0, CompareRings(a, b), "Compare must not canonicalize a rotation away")
}

func TestComparePointsTotalOrder(t *testing.T) {
	assert.Equal(t, 0, ComparePoints(Point{1, 2}, Point{1, 2}))
	assert.True(t, Less(Point{0, 0}, Point{1, 0}))
	assert.True(t, Greater(Point{1, 0}, Point{0, 0}))
}

func TestEqualPolygonsAfterSort(t *testing.T) {
	a := Polygon{Outer: square()}
	b := Polygon{Outer: Ring{Points: []Point{{10, 0}, {10, 10}, {0, 10}, {0, 0}, {10, 0}}}}
	assert.True(t, EqualPolygons(SortPolygon(a), SortPolygon(b), 0))
}

func TestEqualIsRawWithoutSort(t *testing.T) {
	a := Polygon{Outer: square()}
	b := Polygon{Outer: Ring{Points: []Point{{10, 0}, {10, 10}, {0, 10}, {0, 0}, {10, 0}}}}
	assert.False(t, Equal(a, b, 0), "Equal must not canonicalize a rotation away")
}

func TestEqualPointsEpsTolerance(t *testing.T) {
	a := Point{X: 4.0 / 3.0}
	b := Point{X: 1.333333333333}
	assert.False(t, EqualPointsEps(a, b, 0), "exact equality must reject the rounded literal")
	assert.True(t, EqualPointsEps(a, b, 1e-10), "equality within epsilon must accept it")
}

func TestSortMultiPolygonOrdersParts(t *testing.T) {
	small := Polygon{Outer: Ring{Points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}}
	big := Polygon{Outer: square()}
	mpA := MultiPolygon{Polygons: []Polygon{big, small}}
	mpB := MultiPolygon{Polygons: []Polygon{small, big}}
	assert.True(t, EqualMultiPolygons(SortMultiPolygon(mpA), SortMultiPolygon(mpB), 0),
		"canonical form must not depend on part order")
}

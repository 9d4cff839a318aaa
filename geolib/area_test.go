package geolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaRing(t *testing.T) {
	assert.InDelta(t, 100.0, Area(square()), 1e-9)
}

func TestAreaPolygonWithHole(t *testing.T) {
	poly := Polygon{
		Outer:  square(),
		Inners: []Ring{{Points: []Point{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}}}},
	}
	corrected, err := CorrectPolygon(poly)
	require.NoError(t, err)
	assert.InDelta(t, 96.0, Area(corrected), 1e-9)
}

func TestAreaBox(t *testing.T) {
	b := Box{MinCorner: Point{0, 0}, MaxCorner: Point{4, 5}}
	assert.Equal(t, 20.0, Area(b))
}

func TestNumPoints(t *testing.T) {
	assert.Equal(t, 1, NumPoints(Point{0, 0}))
	assert.Equal(t, 2, NumPoints(Segment{Point{0, 0}, Point{1, 1}}))
	assert.Equal(t, 5, NumPoints(Box{Point{0, 0}, Point{1, 1}}))
	assert.Equal(t, 5, NumPoints(square()))
}

func TestBoundingBoxRing(t *testing.T) {
	b := BoundingBox(square())
	assert.Equal(t, Point{0, 0}, b.MinCorner)
	assert.Equal(t, Point{10, 10}, b.MaxCorner)
}

func TestCentroidSquare(t *testing.T) {
	// Centroid is a plain vertex average, not an area-weighted one, so the
	// ring's repeated closing vertex pulls the result away from (5, 5).
	c := Centroid(square())
	assert.Equal(t, Point{4, 4}, c)
}

func TestCentroidSegment(t *testing.T) {
	c := Centroid(Segment{First: Point{0, 0}, Second: Point{10, 0}})
	assert.Equal(t, Point{5, 0}, c)
}

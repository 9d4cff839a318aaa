package geolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionOverlappingSquares(t *testing.T) {
	a, b := overlapSquares()
	result, err := Union(a, b)
	require.NoError(t, err)
	require.Len(t, result.Polygons, 1)
	assert.InDelta(t, 175.0, Area(result), 1e-6, "100 + 100 - 25 overlap")
}

func TestIntersectionOverlappingSquares(t *testing.T) {
	a, b := overlapSquares()
	result, err := Intersection(a, b)
	require.NoError(t, err)
	require.Len(t, result.Polygons, 1)
	assert.InDelta(t, 25.0, Area(result), 1e-6)
	assert.True(t, Contains(result.Polygons[0], Point{7, 7}))
}

func TestDifferenceOverlappingSquares(t *testing.T) {
	a, b := overlapSquares()
	result, err := Difference(a, b)
	require.NoError(t, err)
	require.Len(t, result.Polygons, 1)
	assert.InDelta(t, 75.0, Area(result), 1e-6)
	assert.True(t, Contains(result.Polygons[0], Point{1, 1}))
	assert.False(t, Contains(result.Polygons[0], Point{7, 7}))
}

func TestUnionDisjointSquares(t *testing.T) {
	a := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}}}}}
	b := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{20, 20}, {30, 20}, {30, 30}, {20, 30}, {20, 20},
	}}}}}
	result, err := Union(a, b)
	require.NoError(t, err)
	assert.Len(t, result.Polygons, 2)
}

func TestIntersectionDisjointSquaresIsEmpty(t *testing.T) {
	a := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}}}}}
	b := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{20, 20}, {30, 20}, {30, 30}, {20, 30}, {20, 20},
	}}}}}
	result, err := Intersection(a, b)
	require.NoError(t, err)
	assert.Empty(t, result.Polygons)
}

func TestDifferenceProducesAHole(t *testing.T) {
	outer := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{0, 0}, {20, 0}, {20, 20}, {0, 20}, {0, 0},
	}}}}}
	inner := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{5, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 5},
	}}}}}
	donut, err := Difference(outer, inner)
	require.NoError(t, err)
	require.Len(t, donut.Polygons, 1)
	require.Len(t, donut.Polygons[0].Inners, 1)
	assert.False(t, Contains(donut.Polygons[0], Point{10, 10}), "inside the hole")
	assert.True(t, Contains(donut.Polygons[0], Point{1, 1}))
}

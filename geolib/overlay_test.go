package geolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func overlapSquares() (MultiPolygon, MultiPolygon) {
	a := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}}}}}
	b := MultiPolygon{Polygons: []Polygon{{Outer: Ring{Points: []Point{
		{5, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 5},
	}}}}}
	return a, b
}

func TestSplitCrossingsInsertsVertexAtCrossing(t *testing.T) {
	a, b := overlapSquares()
	g := newOverlayGraph()
	ingestGeometry(g, 0, a, false)
	ingestGeometry(g, 1, b, false)
	splitCrossings(g)

	found := false
	for _, e := range g.edgesByColor(0) {
		if EqualPoints(g.pointOf(e.dst), Point{10, 5}) || EqualPoints(g.pointOf(e.src), Point{10, 5}) {
			found = true
		}
	}
	assert.True(t, found, "expected a split vertex at (10, 5)")
}

func TestClassifyEdgeOuterAndInner(t *testing.T) {
	a, b := overlapSquares()
	g := newOverlayGraph()
	ingestGeometry(g, 0, a, false)
	ingestGeometry(g, 1, b, false)
	splitCrossings(g)

	var sawOuter, sawInner bool
	for _, e := range g.edgesByColor(0) {
		switch classifyEdge(g, 0, e.src, e.dst) {
		case EdgeTypeOuter:
			sawOuter = true
		case EdgeTypeInner:
			sawInner = true
		}
	}
	assert.True(t, sawOuter, "part of square a's boundary lies outside b")
	assert.True(t, sawInner, "part of square a's boundary lies inside b")
}

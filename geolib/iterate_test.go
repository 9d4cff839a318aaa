package geolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square() Ring {
	return Ring{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
}

func TestIterateVerticesRing(t *testing.T) {
	var seen []Point
	IterateVertices(square(), false, func(p Point, index, ringSize int) {
		seen = append(seen, p)
		assert.Equal(t, 5, ringSize)
	})
	assert.Len(t, seen, 5)
	assert.Equal(t, Point{0, 0}, seen[0])
}

func TestIterateVerticesReverse(t *testing.T) {
	var seen []Point
	IterateVertices(square(), true, func(p Point, index, ringSize int) {
		seen = append(seen, p)
	})
	assert.Equal(t, Point{0, 0}, seen[0])
	assert.Equal(t, Point{0, 10}, seen[1])
}

func TestIterateEdgesRing(t *testing.T) {
	var edges []Edge
	IterateEdges(square(), false, func(e Edge) { edges = append(edges, e) })
	assert.Len(t, edges, 4)
	assert.Equal(t, Point{0, 0}, edges[0].P1)
	assert.Equal(t, Point{10, 0}, edges[0].P2)
	// wraps around: the edge before (0,0)->(10,0) is (0,10)->(0,0)
	assert.Equal(t, Point{0, 10}, edges[0].Prev)
}

func TestIterateEdgesPolygonVisitsInners(t *testing.T) {
	poly := Polygon{
		Outer:  square(),
		Inners: []Ring{{Points: []Point{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}}}},
	}
	var count int
	IterateEdges(poly, false, func(e Edge) { count++ })
	assert.Equal(t, 8, count)
}

func TestIterateEdgesBox(t *testing.T) {
	b := Box{MinCorner: Point{0, 0}, MaxCorner: Point{10, 10}}
	var count int
	IterateEdges(b, false, func(e Edge) { count++ })
	assert.Equal(t, 4, count)
}

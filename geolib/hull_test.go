package geolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	hull := ConvexHull(pts)
	assert.Len(t, hull, 4, "interior point must not appear on the hull")
	for _, p := range hull {
		assert.NotEqual(t, Point{5, 5}, p)
	}
}

func TestConvexHullCollinearPoints(t *testing.T) {
	pts := []Point{{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}}
	hull := ConvexHull(pts)
	for _, p := range hull {
		assert.NotEqual(t, Point{5, 0}, p, "midpoint of a hull edge should be dropped")
	}
}

func TestConvexHullIsCCW(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	hull := ConvexHull(pts)
	ring := Ring{Points: append(append([]Point(nil), hull...), hull[0])}
	assert.True(t, ringArea(ring) > 0)
}

func TestConvexHullFewPoints(t *testing.T) {
	assert.Len(t, ConvexHull([]Point{{0, 0}}), 1)
	assert.Len(t, ConvexHull([]Point{{0, 0}, {1, 1}}), 2)
}

func TestConvexHullContainsAllInputPoints(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {3, 3}, {7, 2}}
	hull := ConvexHull(pts)
	ring := Ring{Points: append(append([]Point(nil), hull...), hull[0])}
	for _, p := range pts {
		assert.True(t, PointIndexRing(ring, p) >= 0, "point %v must be inside or on the hull", p)
	}
}

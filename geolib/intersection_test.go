package geolib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectSegmentsCrossing(t *testing.T) {
	res := IntersectSegments(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	assert.Equal(t, 1, res.Count)
	assert.True(t, EqualPoints(res.I1, Point{5, 5}), "got %v", res.I1)
	assert.InDelta(t, 0.5, res.U1, 1e-9)
	assert.InDelta(t, 0.5, res.V1, 1e-9)
}

func TestIntersectSegmentsSharedEndpoint(t *testing.T) {
	res := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{10, 0}, Point{10, 10})
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 1.0, res.U1)
	assert.Equal(t, 0.0, res.V1)
	assert.True(t, EqualPoints(res.I1, Point{10, 0}))
}

func TestIntersectSegmentsParallelDisjoint(t *testing.T) {
	res := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{0, 1}, Point{10, 1})
	assert.Equal(t, 0, res.Count)
}

func TestIntersectSegmentsNoOverlapBoundingBox(t *testing.T) {
	res := IntersectSegments(Point{0, 0}, Point{1, 1}, Point{5, 5}, Point{6, 6})
	assert.Equal(t, 0, res.Count)
}

func TestIntersectSegmentsCollinearOverlap(t *testing.T) {
	res := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{15, 0})
	assert.Equal(t, 2, res.Count)
	assert.True(t, EqualPoints(res.I1, Point{5, 0}))
	assert.True(t, EqualPoints(res.I2, Point{10, 0}))
}

func TestIntersectSegmentsCollinearNoOverlap(t *testing.T) {
	res := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{11, 0}, Point{20, 0})
	assert.Equal(t, 0, res.Count)
}

func TestIntersectSegmentsCollinearTouching(t *testing.T) {
	res := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{10, 0}, Point{20, 0})
	assert.Equal(t, 1, res.Count)
	assert.True(t, EqualPoints(res.I1, Point{10, 0}))
}

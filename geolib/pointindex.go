package geolib

import "math"

// updatePointIndex folds one edge a->b of a ring into a running
// winding-parity index for a query point. index is -1 outside, 0 on the
// boundary, +1 inside; once it reaches 0 it is final (a point on one edge
// is on the boundary regardless of any other edge).
//
// The ray cast is to the right, along +X, at height point.Y, with a
// half-open (ay, by] test on each edge's Y-extent: this is what keeps a ray
// that passes exactly through a shared vertex between two edges from being
// counted twice.
func updatePointIndex(point, a, b Point, index int) int {
	if index == 0 {
		return 0
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	if a.Y == b.Y {
		if a.Y == point.Y {
			lo, hi := a.X, b.X
			if lo > hi {
				lo, hi = hi, lo
			}
			if point.X >= lo && point.X <= hi {
				return 0
			}
		}
		return index
	}
	if a.Y >= point.Y || b.Y < point.Y {
		return index
	}
	lhs := (a.X - point.X) * (b.Y - a.Y)
	rhs := (a.Y - point.Y) * (b.X - a.X)
	if lhs == rhs {
		return 0
	}
	if lhs < rhs {
		return index
	}
	return -index
}

// PointIndexBox reports a point's position relative to a Box: -1 if it
// lies outside (or the box or point carry a non-finite coordinate), 0 if it
// lies exactly on the boundary, +1 if it lies strictly inside.
func PointIndexBox(b Box, p Point) int {
	if !finitePoint(p) || !finitePoint(b.MinCorner) || !finitePoint(b.MaxCorner) {
		return -1
	}
	if p.X < b.MinCorner.X || p.X > b.MaxCorner.X || p.Y < b.MinCorner.Y || p.Y > b.MaxCorner.Y {
		return -1
	}
	if p.X > b.MinCorner.X && p.X < b.MaxCorner.X && p.Y > b.MinCorner.Y && p.Y < b.MaxCorner.Y {
		return 1
	}
	return 0
}

func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// PointIndexRing reports a point's winding-parity index against a single
// ring, ignoring whether the ring is an outer boundary or a hole.
func PointIndexRing(r Ring, p Point) int {
	index := -1
	n := len(r.Points)
	for i := 0; i < n-1 && index != 0; i++ {
		index = updatePointIndex(p, r.Points[i], r.Points[i+1], index)
	}
	return index
}

// PointIndexPolygon reports a point's index against a polygon: outside or
// on the outer ring short-circuits immediately; otherwise, the first inner
// ring (hole) the point is inside or on flips the result (a point inside a
// hole is outside the polygon); a point inside the outer ring and outside
// every hole is inside the polygon.
func PointIndexPolygon(poly Polygon, p Point) int {
	outer := PointIndexRing(poly.Outer, p)
	if outer <= 0 {
		return outer
	}
	for _, inner := range poly.Inners {
		in := PointIndexRing(inner, p)
		if in >= 0 {
			return -in
		}
	}
	return 1
}

// PointIndexMultiPolygon reports a point's index against a multi-polygon:
// the first part the point is inside or on wins; if the point is outside
// every part, the result is -1.
func PointIndexMultiPolygon(mp MultiPolygon, p Point) int {
	for _, poly := range mp.Polygons {
		idx := PointIndexPolygon(poly, p)
		if idx >= 0 {
			return idx
		}
	}
	return -1
}

// PointIndex dispatches PointIndex* by g's concrete type. g must be a Box,
// Ring, Polygon or MultiPolygon.
func PointIndex(g Geometry, p Point) int {
	switch v := g.(type) {
	case Box:
		return PointIndexBox(v, p)
	case Ring:
		return PointIndexRing(v, p)
	case Polygon:
		return PointIndexPolygon(v, p)
	case MultiPolygon:
		return PointIndexMultiPolygon(v, p)
	default:
		assertTrue(false, "PointIndex: unsupported geometry %T", g)
		return -1
	}
}

// Contains reports whether region contains q, where q is a Point, Segment
// or LineString. A point on region's boundary counts as contained.
func Contains(region Geometry, q Geometry) bool {
	switch v := q.(type) {
	case Point:
		return PointIndex(region, v) >= 0
	case Segment:
		return containsSegment(region, v.First, v.Second)
	case LineString:
		for i := 0; i+1 < len(v.Points); i++ {
			if !containsSegment(region, v.Points[i], v.Points[i+1]) {
				return false
			}
		}
		return true
	default:
		assertTrue(false, "Contains: unsupported query geometry %T", q)
		return false
	}
}

// containsSegment reports whether region contains the segment first->second
// in its entirety: both endpoints must lie in region, the segment must
// never cross region's boundary transversally, and every sub-segment the
// boundary divides it into must have its midpoint inside or on region.
func containsSegment(region Geometry, first, second Point) bool {
	if PointIndex(region, first) < 0 || PointIndex(region, second) < 0 {
		return false
	}

	type crossing struct {
		u float64
		p Point
	}
	var crossings []crossing
	transversal := false

	IterateEdges(region, false, func(e Edge) {
		if transversal {
			return
		}
		res := IntersectSegments(first, second, e.P1, e.P2)
		if res.Count != 1 {
			return
		}
		if res.U1 > 0 && res.U1 < 1 && res.V1 > 0 && res.V1 < 1 {
			transversal = true
			return
		}
		if res.U1 > 0 && res.U1 < 1 {
			crossings = append(crossings, crossing{u: res.U1, p: res.I1})
		}
	})
	if transversal {
		return false
	}

	// Sort crossings by parameter along first->second.
	for i := 1; i < len(crossings); i++ {
		for j := i; j > 0 && crossings[j].u < crossings[j-1].u; j-- {
			crossings[j], crossings[j-1] = crossings[j-1], crossings[j]
		}
	}

	prev := first
	ok := true
	for _, c := range crossings {
		mid := pointScale(pointAdd(prev, c.p), 0.5)
		if PointIndex(region, mid) < 0 {
			ok = false
			break
		}
		prev = c.p
	}
	if ok {
		mid := pointScale(pointAdd(prev, second), 0.5)
		if PointIndex(region, mid) < 0 {
			ok = false
		}
	}
	return ok
}

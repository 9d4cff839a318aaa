package geolib

import "math"

// Area returns the signed area of g. A counter-clockwise ring has positive
// area; a clockwise ring has negative area. A polygon's area is its outer
// ring's area plus its inner rings' (already-negative, clockwise) areas. A
// point, segment or line string has zero area.
func Area(g Geometry) float64 {
	switch v := g.(type) {
	case Point, Segment, LineString:
		return 0
	case Box:
		return (v.MaxCorner.X - v.MinCorner.X) * (v.MaxCorner.Y - v.MinCorner.Y)
	case Ring:
		return ringArea(v)
	case Polygon:
		total := ringArea(v.Outer)
		for _, inner := range v.Inners {
			total += ringArea(inner)
		}
		return total
	case MultiPolygon:
		var total float64
		for _, poly := range v.Polygons {
			total += Area(poly)
		}
		return total
	default:
		assertTrue(false, "Area: unsupported geometry %T", g)
		return 0
	}
}

// ringArea implements the shoelace formula over a closed ring:
// sum((x1 - x2) * (y1 + y2)) / 2 across consecutive point pairs.
func ringArea(r Ring) float64 {
	n := len(r.Points)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n-1; i++ {
		a, b := r.Points[i], r.Points[i+1]
		sum += (a.X - b.X) * (a.Y + b.Y)
	}
	return sum / 2
}

// NumPoints returns the number of vertices g is described by: a Point
// counts as 1, a Segment as 2, a Box as 5 (its closed boundary), a
// LineString or Ring as len(Points), a Polygon as its outer plus the sum of
// its inners, and a MultiPolygon as the sum over its polygons.
func NumPoints(g Geometry) int {
	switch v := g.(type) {
	case Point:
		return 1
	case Segment:
		return 2
	case Box:
		return 5
	case LineString:
		return len(v.Points)
	case Ring:
		return len(v.Points)
	case Polygon:
		n := len(v.Outer.Points)
		for _, inner := range v.Inners {
			n += len(inner.Points)
		}
		return n
	case MultiPolygon:
		var n int
		for _, poly := range v.Polygons {
			n += NumPoints(poly)
		}
		return n
	default:
		assertTrue(false, "NumPoints: unsupported geometry %T", g)
		return 0
	}
}

// BoundingBox returns the smallest axis-aligned Box enclosing g. Inner
// rings (holes) do not extend a polygon's bounding box past its outer
// ring's, since a hole cannot reach outside its containing outer ring.
func BoundingBox(g Geometry) Box {
	minP := Point{X: math.Inf(1), Y: math.Inf(1)}
	maxP := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	grow := func(p Point) {
		minP.X, maxP.X = math.Min(minP.X, p.X), math.Max(maxP.X, p.X)
		minP.Y, maxP.Y = math.Min(minP.Y, p.Y), math.Max(maxP.Y, p.Y)
	}

	switch v := g.(type) {
	case Point:
		grow(v)
	case Segment:
		grow(v.First)
		grow(v.Second)
	case Box:
		return v
	case LineString:
		for _, p := range v.Points {
			grow(p)
		}
	case Ring:
		for _, p := range v.Points {
			grow(p)
		}
	case Polygon:
		for _, p := range v.Outer.Points {
			grow(p)
		}
	case MultiPolygon:
		for _, poly := range v.Polygons {
			for _, p := range poly.Outer.Points {
				grow(p)
			}
		}
	default:
		assertTrue(false, "BoundingBox: unsupported geometry %T", g)
	}
	return Box{MinCorner: minP, MaxCorner: maxP}
}

// Centroid returns the arithmetic mean of g's vertices (not its
// area-weighted centroid): a Point returns itself, a Segment or Box returns
// its midpoint, and every other shape averages every vertex it is made of,
// across all its rings or parts.
func Centroid(g Geometry) Point {
	switch v := g.(type) {
	case Point:
		return v
	case Segment:
		return pointScale(pointAdd(v.First, v.Second), 0.5)
	case Box:
		return pointScale(pointAdd(v.MinCorner, v.MaxCorner), 0.5)
	default:
		var sum Point
		var n int
		IterateVertices(g, false, func(p Point, index, ringSize int) {
			sum = pointAdd(sum, p)
			n++
		})
		assertTrue(n > 0, "Centroid: geometry has no vertices")
		if n == 0 {
			return Point{}
		}
		return pointScale(sum, 1/float64(n))
	}
}

package geolib

// Edge is one step of IterateEdges: the directed edge P1->P2, together with
// the vertex immediately before P1 and immediately after P2 in traversal
// order. Prev and Next let containment testing reason about the local turn
// at a boundary crossing without re-walking the ring.
type Edge struct {
	P1, P2     Point
	Prev, Next Point
}

// IterateVertices calls fn once per vertex of g, in traversal order (or
// reverse order if reverse is true). index is the vertex's position within
// its ring (0-based) and ringSize is the length of that ring, letting fn
// detect wraparound without extra bookkeeping.
//
// Box is treated as its closed 5-point CCW boundary. Ring and LineString
// are their own point sequence. Polygon visits its outer ring then each
// inner ring in order. MultiPolygon visits each polygon's outer and inner
// rings in order. A bare Point or Segment is visited as a 1- or 2-point
// sequence.
func IterateVertices(g Geometry, reverse bool, fn func(p Point, index, ringSize int)) {
	switch v := g.(type) {
	case Point:
		fn(v, 0, 1)
	case Segment:
		pts := []Point{v.First, v.Second}
		iterateRingVertices(pts, reverse, fn)
	case LineString:
		iterateRingVertices(v.Points, reverse, fn)
	case Box:
		iterateRingVertices(boxRing(v).Points, reverse, fn)
	case Ring:
		iterateRingVertices(v.Points, reverse, fn)
	case Polygon:
		iterateRingVertices(v.Outer.Points, reverse, fn)
		for _, inner := range v.Inners {
			iterateRingVertices(inner.Points, reverse, fn)
		}
	case MultiPolygon:
		for _, poly := range v.Polygons {
			iterateRingVertices(poly.Outer.Points, reverse, fn)
			for _, inner := range poly.Inners {
				iterateRingVertices(inner.Points, reverse, fn)
			}
		}
	default:
		assertTrue(false, "IterateVertices: unsupported geometry %T", g)
	}
}

func iterateRingVertices(points []Point, reverse bool, fn func(p Point, index, ringSize int)) {
	n := len(points)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		fn(points[idx], i, n)
	}
}

// IterateEdges calls fn once per edge of g (the closing edge between the
// last and first point of each ring included), in traversal order or
// reverse order if reverse is true. The same geometry arms as
// IterateVertices are supported; a bare Point has no edges, so fn is never
// called for it.
func IterateEdges(g Geometry, reverse bool, fn func(e Edge)) {
	switch v := g.(type) {
	case Point:
	case Segment:
		p1, p2 := v.First, v.Second
		if reverse {
			p1, p2 = p2, p1
		}
		fn(Edge{P1: p1, P2: p2, Prev: p1, Next: p2})
	case LineString:
		iterateOpenEdges(v.Points, reverse, fn)
	case Box:
		iterateRingEdges(boxRing(v).Points, reverse, fn)
	case Ring:
		iterateRingEdges(v.Points, reverse, fn)
	case Polygon:
		iterateRingEdges(v.Outer.Points, reverse, fn)
		for _, inner := range v.Inners {
			iterateRingEdges(inner.Points, reverse, fn)
		}
	case MultiPolygon:
		for _, poly := range v.Polygons {
			iterateRingEdges(poly.Outer.Points, reverse, fn)
			for _, inner := range poly.Inners {
				iterateRingEdges(inner.Points, reverse, fn)
			}
		}
	default:
		assertTrue(false, "IterateEdges: unsupported geometry %T", g)
	}
}

// iterateRingEdges assumes points is closed (points[0] == points[n-1]) and
// walks the n-1 distinct edges it describes.
func iterateRingEdges(points []Point, reverse bool, fn func(e Edge)) {
	n := len(points)
	if n < 2 {
		return
	}
	m := n - 1 // number of distinct edges in a closed ring
	for i := 0; i < m; i++ {
		idx := i
		if reverse {
			idx = m - 1 - i
		}
		a := idx
		b := (idx + 1) % m
		prev := (idx - 1 + m) % m
		next := (idx + 2) % m
		p1, p2 := points[a], points[b]
		prevPt, nextPt := points[prev], points[next]
		if reverse {
			p1, p2 = p2, p1
			prevPt, nextPt = nextPt, prevPt
		}
		fn(Edge{P1: p1, P2: p2, Prev: prevPt, Next: nextPt})
	}
}

// iterateOpenEdges walks the n-1 edges of an open point sequence (a
// LineString); unlike iterateRingEdges there is no closing edge between the
// last and first point, and the Prev/Next neighbors at either end fall back
// to the edge's own endpoints since there is no wraparound vertex.
func iterateOpenEdges(points []Point, reverse bool, fn func(e Edge)) {
	n := len(points)
	if n < 2 {
		return
	}
	m := n - 1
	for i := 0; i < m; i++ {
		idx := i
		if reverse {
			idx = m - 1 - i
		}
		p1, p2 := points[idx], points[idx+1]
		prevPt, nextPt := p1, p2
		if idx > 0 {
			prevPt = points[idx-1]
		}
		if idx+2 < n {
			nextPt = points[idx+2]
		}
		if reverse {
			p1, p2 = p2, p1
			prevPt, nextPt = nextPt, prevPt
		}
		fn(Edge{P1: p1, P2: p2, Prev: prevPt, Next: nextPt})
	}
}

// boxRing returns the closed, CCW 5-point ring describing a box's boundary.
func boxRing(b Box) Ring {
	return Ring{Points: []Point{
		{X: b.MinCorner.X, Y: b.MinCorner.Y},
		{X: b.MaxCorner.X, Y: b.MinCorner.Y},
		{X: b.MaxCorner.X, Y: b.MaxCorner.Y},
		{X: b.MinCorner.X, Y: b.MaxCorner.Y},
		{X: b.MinCorner.X, Y: b.MinCorner.Y},
	}}
}

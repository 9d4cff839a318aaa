package geolib

import "math"

// Buffer inflates geometry by radius, returning the union of a rounded
// capsule around every edge of geometry with geometry itself.
//
// semicircleSteps controls how finely each edge's two round caps are
// sampled: each cap is approximated by 2*semicircleSteps points around a
// full circle of the given radius.
//
// If skipErrors is false, an error from unioning any one edge's capsule
// aborts the whole operation. If skipErrors is true, that capsule is
// skipped (the accumulated result from the edges already processed is kept)
// and buffering continues with the remaining edges.
//
// Possible errors:
//   - ErrInvalidRadius: radius is not greater than Epsilon.
//   - ErrInvalidSemicircleSteps: semicircleSteps is less than 2.
//   - ErrOverlayFailure: a capsule union failed and skipErrors is false.
func Buffer(geometry Geometry, radius float64, semicircleSteps int, skipErrors bool) (MultiPolygon, error) {
	if radius <= Epsilon {
		return MultiPolygon{}, ErrInvalidRadius
	}
	if semicircleSteps < 2 {
		return MultiPolygon{}, ErrInvalidSemicircleSteps
	}

	result, err := toMultiPolygon(geometry)
	if err != nil {
		return MultiPolygon{}, err
	}

	var opErr error
	IterateEdges(geometry, false, func(e Edge) {
		if opErr != nil {
			return
		}
		capsule, err := edgeBufferCapsule(e.P1, e.P2, radius, semicircleSteps)
		if err != nil {
			if !skipErrors {
				opErr = err
			}
			return
		}
		next, err := Union(result, MultiPolygon{Polygons: []Polygon{capsule}})
		if err != nil {
			if !skipErrors {
				opErr = err
			}
			return
		}
		result = next
	})
	if opErr != nil {
		return MultiPolygon{}, opErr
	}
	return result, nil
}

// edgeBufferCapsule returns the convex hull of 4*steps points sampled
// around full circles of the given radius centered at p1 and p2, corrected
// into a single-ring polygon. Because it is a convex hull of two circle
// samples, this is the capsule-shaped region within radius of the segment
// p1->p2.
func edgeBufferCapsule(p1, p2 Point, radius float64, steps int) (Polygon, error) {
	pts := make([]Point, 0, 4*steps)
	pts = append(pts, circleSamples(p1, radius, steps)...)
	pts = append(pts, circleSamples(p2, radius, steps)...)

	hull := ConvexHull(pts)
	ring := Ring{Points: append(append([]Point(nil), hull...), hull[0])}
	return CorrectPolygon(Polygon{Outer: ring})
}

// circleSamples returns 2*steps points evenly spaced by angle pi/steps
// around a full circle of the given radius centered at p.
func circleSamples(p Point, radius float64, steps int) []Point {
	n := 2 * steps
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * math.Pi / float64(steps)
		out[i] = Point{
			X: p.X + radius*math.Cos(theta),
			Y: p.Y + radius*math.Sin(theta),
		}
	}
	return out
}

// toMultiPolygon normalizes a corrected copy of geometry into a
// MultiPolygon, the shape Buffer accumulates its result in.
func toMultiPolygon(g Geometry) (MultiPolygon, error) {
	switch v := g.(type) {
	case MultiPolygon:
		return CorrectMultiPolygon(v)
	case Polygon:
		return CorrectMultiPolygon(MultiPolygon{Polygons: []Polygon{v}})
	case Ring:
		return CorrectMultiPolygon(MultiPolygon{Polygons: []Polygon{{Outer: v}}})
	case Segment, LineString, Point:
		return MultiPolygon{}, nil
	default:
		assertTrue(false, "toMultiPolygon: unsupported geometry %T", g)
		return MultiPolygon{}, nil
	}
}

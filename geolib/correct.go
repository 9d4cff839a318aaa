package geolib

import "sort"

// CorrectRing returns a copy of r, closed if its first and last points are
// not already equal, and reversed if its winding direction does not match
// isOuter (true: counter-clockwise, false: clockwise). r itself is not
// modified.
//
// Possible errors:
//   - ErrDegenerateRing: r has fewer than 3 distinct vertices once closed.
func CorrectRing(r Ring, isOuter bool) (Ring, error) {
	pts := append([]Point(nil), r.Points...)
	if len(pts) > 0 && !EqualPoints(pts[0], pts[len(pts)-1]) {
		pts = append(pts, pts[0])
	}
	distinct := 0
	for i := 0; i < len(pts)-1 && distinct < 3; i++ {
		dup := false
		for j := 0; j < i && !dup; j++ {
			dup = EqualPoints(pts[i], pts[j])
		}
		if !dup {
			distinct++
		}
	}
	if distinct < 3 {
		return Ring{}, ErrDegenerateRing
	}
	out := Ring{Points: pts}
	if isClockwiseRing(out) == isOuter {
		reverseRing(out)
	}
	return out, nil
}

func isClockwiseRing(r Ring) bool {
	return ringArea(r) < 0
}

func reverseRing(r Ring) {
	for i, j := 0, len(r.Points)-1; i < j; i, j = i+1, j-1 {
		r.Points[i], r.Points[j] = r.Points[j], r.Points[i]
	}
}

// CorrectPolygon corrects a polygon's outer ring to counter-clockwise and
// every inner ring to clockwise.
//
// Possible errors:
//   - ErrDegenerateRing: the outer ring or any inner ring has fewer than 3
//     distinct vertices once closed.
func CorrectPolygon(p Polygon) (Polygon, error) {
	outer, err := CorrectRing(p.Outer, true)
	if err != nil {
		return Polygon{}, err
	}
	out := Polygon{Outer: outer}
	if len(p.Inners) > 0 {
		out.Inners = make([]Ring, len(p.Inners))
		for i, inner := range p.Inners {
			r, err := CorrectRing(inner, false)
			if err != nil {
				return Polygon{}, err
			}
			out.Inners[i] = r
		}
	}
	return out, nil
}

// CorrectMultiPolygon applies CorrectPolygon to every part.
//
// Possible errors:
//   - ErrDegenerateRing: propagated from any part's CorrectPolygon.
func CorrectMultiPolygon(mp MultiPolygon) (MultiPolygon, error) {
	out := MultiPolygon{Polygons: make([]Polygon, len(mp.Polygons))}
	for i, p := range mp.Polygons {
		cp, err := CorrectPolygon(p)
		if err != nil {
			return MultiPolygon{}, err
		}
		out.Polygons[i] = cp
	}
	return out, nil
}

// Correct dispatches CorrectRing/CorrectPolygon/CorrectMultiPolygon by g's
// concrete type, returning a corrected copy. A bare Ring is corrected as an
// outer ring.
//
// Possible errors:
//   - ErrDegenerateRing: propagated from the underlying CorrectRing call(s).
func Correct(g Geometry) (Geometry, error) {
	switch v := g.(type) {
	case Ring:
		return CorrectRing(v, true)
	case Polygon:
		return CorrectPolygon(v)
	case MultiPolygon:
		return CorrectMultiPolygon(v)
	default:
		assertTrue(false, "Correct: unsupported geometry %T", g)
		return g, nil
	}
}

// SortRing rotates a closed ring so that its lexicographically smallest
// vertex comes first, then re-closes it. This gives rings that differ only
// in their starting point the same canonical representation for
// comparison; winding direction is not normalized, so a ring and its
// reversal still differ after SortRing.
func SortRing(r Ring) Ring {
	n := len(r.Points)
	if n <= 1 {
		return Ring{Points: append([]Point(nil), r.Points...)}
	}
	open := r.Points[:n-1] // drop the repeated closing point
	minIdx := 0
	for i := 1; i < len(open); i++ {
		if LessPoints(open[i], open[minIdx]) {
			minIdx = i
		}
	}
	rotated := make([]Point, 0, n)
	rotated = append(rotated, open[minIdx:]...)
	rotated = append(rotated, open[:minIdx]...)
	rotated = append(rotated, rotated[0])
	return Ring{Points: rotated}
}

// SortPolygon canonicalizes a polygon's outer ring and each inner ring via
// SortRing, then stably sorts the inner rings by CompareRings.
func SortPolygon(p Polygon) Polygon {
	out := Polygon{Outer: SortRing(p.Outer)}
	if len(p.Inners) > 0 {
		out.Inners = make([]Ring, len(p.Inners))
		for i, inner := range p.Inners {
			out.Inners[i] = SortRing(inner)
		}
		sort.SliceStable(out.Inners, func(i, j int) bool {
			return CompareRings(out.Inners[i], out.Inners[j]) < 0
		})
	}
	return out
}

// SortMultiPolygon canonicalizes every part via SortPolygon, then stably
// sorts the parts themselves by ComparePolygons, so a multi-polygon's
// canonical form does not depend on the order its parts were produced in.
func SortMultiPolygon(mp MultiPolygon) MultiPolygon {
	out := MultiPolygon{Polygons: make([]Polygon, len(mp.Polygons))}
	for i, p := range mp.Polygons {
		out.Polygons[i] = SortPolygon(p)
	}
	sort.SliceStable(out.Polygons, func(i, j int) bool {
		return ComparePolygons(out.Polygons[i], out.Polygons[j]) < 0
	})
	return out
}

// Sort dispatches SortRing/SortPolygon/SortMultiPolygon by g's concrete
// type, returning a canonicalized copy usable for deterministic comparison.
func Sort(g Geometry) Geometry {
	switch v := g.(type) {
	case Ring:
		return SortRing(v)
	case Polygon:
		return SortPolygon(v)
	case MultiPolygon:
		return SortMultiPolygon(v)
	default:
		assertTrue(false, "Sort: unsupported geometry %T", g)
		return g
	}
}

// CompareSegments orders segments lexicographically by First then Second.
func CompareSegments(a, b Segment) int {
	if c := ComparePoints(a.First, b.First); c != 0 {
		return c
	}
	return ComparePoints(a.Second, b.Second)
}

// CompareBoxes orders boxes lexicographically by MinCorner then MaxCorner.
func CompareBoxes(a, b Box) int {
	if c := ComparePoints(a.MinCorner, b.MinCorner); c != 0 {
		return c
	}
	return ComparePoints(a.MaxCorner, b.MaxCorner)
}

// CompareLineStrings orders line strings lexicographically, point by
// point, with a shorter prefix sorting before a longer one that extends it.
func CompareLineStrings(a, b LineString) int {
	return comparePointSlices(a.Points, b.Points)
}

// CompareRings compares two rings as raw point sequences, in order, with no
// canonicalization: rotation or winding differences are not normalized
// away. Callers comparing rings that may differ by rotation or winding
// should Sort both first.
func CompareRings(a, b Ring) int {
	return comparePointSlices(a.Points, b.Points)
}

// ComparePolygons compares two polygons' outer rings, then their inner
// rings pairwise (up to the shorter inner-ring count), then by inner ring
// count - all raw, with no canonicalization. Callers comparing polygons
// that may differ by rotation, winding, or inner-ring order should Sort
// both first.
func ComparePolygons(a, b Polygon) int {
	if c := CompareRings(a.Outer, b.Outer); c != 0 {
		return c
	}
	n := len(a.Inners)
	if len(b.Inners) < n {
		n = len(b.Inners)
	}
	for i := 0; i < n; i++ {
		if c := CompareRings(a.Inners[i], b.Inners[i]); c != 0 {
			return c
		}
	}
	if len(a.Inners) == len(b.Inners) {
		return 0
	}
	if len(a.Inners) < len(b.Inners) {
		return -1
	}
	return 1
}

// CompareMultiPolygons compares two multi-polygons by part count, then by
// part pairwise via ComparePolygons, in input order.
func CompareMultiPolygons(a, b MultiPolygon) int {
	if len(a.Polygons) != len(b.Polygons) {
		if len(a.Polygons) < len(b.Polygons) {
			return -1
		}
		return 1
	}
	for i := range a.Polygons {
		if c := ComparePolygons(a.Polygons[i], b.Polygons[i]); c != 0 {
			return c
		}
	}
	return 0
}

func comparePointSlices(a, b []Point) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := ComparePoints(a[i], b[i]); c != 0 {
			return c
		}
	}
	if len(a) == len(b) {
		return 0
	}
	if len(a) < len(b) {
		return -1
	}
	return 1
}

// Compare orders two geometries of the same concrete type. If g1 and g2 are
// different concrete types, a build with the "debug" tag panics via an
// internal assertion; any other build compares g1 against the zero value
// of g1's type. Callers needing a total order across mixed geometry types
// must normalize first.
func Compare(g1, g2 Geometry) int {
	switch a := g1.(type) {
	case Point:
		b, ok := g2.(Point)
		assertTrue(ok, "Compare: mismatched geometry types")
		return ComparePoints(a, b)
	case Segment:
		b, ok := g2.(Segment)
		assertTrue(ok, "Compare: mismatched geometry types")
		return CompareSegments(a, b)
	case Box:
		b, ok := g2.(Box)
		assertTrue(ok, "Compare: mismatched geometry types")
		return CompareBoxes(a, b)
	case LineString:
		b, ok := g2.(LineString)
		assertTrue(ok, "Compare: mismatched geometry types")
		return CompareLineStrings(a, b)
	case Ring:
		b, ok := g2.(Ring)
		assertTrue(ok, "Compare: mismatched geometry types")
		return CompareRings(a, b)
	case Polygon:
		b, ok := g2.(Polygon)
		assertTrue(ok, "Compare: mismatched geometry types")
		return ComparePolygons(a, b)
	case MultiPolygon:
		b, ok := g2.(MultiPolygon)
		assertTrue(ok, "Compare: mismatched geometry types")
		return CompareMultiPolygons(a, b)
	default:
		assertTrue(false, "Compare: unsupported geometry %T", g1)
		return 0
	}
}

// Less reports whether Compare(g1, g2) < 0.
func Less(g1, g2 Geometry) bool { return Compare(g1, g2) < 0 }

// Greater reports whether Compare(g1, g2) > 0.
func Greater(g1, g2 Geometry) bool { return Compare(g1, g2) > 0 }

// EqualSegments reports whether a and b are equal within an absolute
// tolerance of epsilon on every coordinate (epsilon == 0 requires exact
// equality).
func EqualSegments(a, b Segment, epsilon float64) bool {
	return EqualPointsEps(a.First, b.First, epsilon) && EqualPointsEps(a.Second, b.Second, epsilon)
}

// EqualBoxes reports whether a and b are equal within an absolute tolerance
// of epsilon on every coordinate.
func EqualBoxes(a, b Box, epsilon float64) bool {
	return EqualPointsEps(a.MinCorner, b.MinCorner, epsilon) && EqualPointsEps(a.MaxCorner, b.MaxCorner, epsilon)
}

// EqualLineStrings reports whether a and b have the same number of points
// and each pair is equal within epsilon. Unlike CompareLineStrings this is
// not an ordering: a length mismatch is simply false, not a direction.
func EqualLineStrings(a, b LineString, epsilon float64) bool {
	return equalPointSlices(a.Points, b.Points, epsilon)
}

// EqualRings reports whether a and b are equal, point by point in order,
// within epsilon. Like CompareRings this is raw: a ring that is a rotation
// or reversal of another is not considered equal unless both are Sorted
// first.
func EqualRings(a, b Ring, epsilon float64) bool {
	return equalPointSlices(a.Points, b.Points, epsilon)
}

// EqualPolygons reports whether a and b have equal outer rings, the same
// number of inner rings, and each pair of inner rings equal in order, all
// within epsilon.
func EqualPolygons(a, b Polygon, epsilon float64) bool {
	if !EqualRings(a.Outer, b.Outer, epsilon) {
		return false
	}
	if len(a.Inners) != len(b.Inners) {
		return false
	}
	for i := range a.Inners {
		if !EqualRings(a.Inners[i], b.Inners[i], epsilon) {
			return false
		}
	}
	return true
}

// EqualMultiPolygons reports whether a and b have the same number of parts
// and each pair of parts is equal in order, within epsilon.
func EqualMultiPolygons(a, b MultiPolygon, epsilon float64) bool {
	if len(a.Polygons) != len(b.Polygons) {
		return false
	}
	for i := range a.Polygons {
		if !EqualPolygons(a.Polygons[i], b.Polygons[i], epsilon) {
			return false
		}
	}
	return true
}

func equalPointSlices(a, b []Point, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualPointsEps(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// Equal reports whether g1 and g2 are equal within an absolute tolerance of
// epsilon on every coordinate (epsilon == 0 requires exact equality). Like
// Compare it is raw, with no implicit canonicalization: callers comparing
// geometries that may differ by rotation, winding, or part order should
// Sort both first. If g1 and g2 are different concrete types, a build with
// the "debug" tag panics via an internal assertion; any other build
// compares g1 against the zero value of g1's type.
func Equal(g1, g2 Geometry, epsilon float64) bool {
	switch a := g1.(type) {
	case Point:
		b, ok := g2.(Point)
		assertTrue(ok, "Equal: mismatched geometry types")
		return EqualPointsEps(a, b, epsilon)
	case Segment:
		b, ok := g2.(Segment)
		assertTrue(ok, "Equal: mismatched geometry types")
		return EqualSegments(a, b, epsilon)
	case Box:
		b, ok := g2.(Box)
		assertTrue(ok, "Equal: mismatched geometry types")
		return EqualBoxes(a, b, epsilon)
	case LineString:
		b, ok := g2.(LineString)
		assertTrue(ok, "Equal: mismatched geometry types")
		return EqualLineStrings(a, b, epsilon)
	case Ring:
		b, ok := g2.(Ring)
		assertTrue(ok, "Equal: mismatched geometry types")
		return EqualRings(a, b, epsilon)
	case Polygon:
		b, ok := g2.(Polygon)
		assertTrue(ok, "Equal: mismatched geometry types")
		return EqualPolygons(a, b, epsilon)
	case MultiPolygon:
		b, ok := g2.(MultiPolygon)
		assertTrue(ok, "Equal: mismatched geometry types")
		return EqualMultiPolygons(a, b, epsilon)
	default:
		assertTrue(false, "Equal: unsupported geometry %T", g1)
		return false
	}
}

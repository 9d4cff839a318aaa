package geolib

import "math"

// IntersectionResult describes where two segments p1->p2 and q1->q2 meet.
//
// Count is 0 (no contact), 1 (a single point) or 2 (collinear overlap,
// itself a sub-segment described by its two endpoints). U1/V1/I1 describe
// the first contact as a parameter along p (U1), a parameter along q (V1)
// and the contact point itself; U2/V2/I2 describe the second contact when
// Count == 2 and are zero otherwise.
type IntersectionResult struct {
	Count  int
	U1, V1 float64
	I1     Point
	U2, V2 float64
	I2     Point
}

// IntersectSegments finds the intersection, if any, between segment p1->p2
// and segment q1->q2.
//
// Parameters are snapped to exactly 0 or 1 when within intersectionEpsilon
// of a bound, so an intersection that lands on (or very near) an endpoint
// is reported at that exact endpoint rather than at a nearby computed
// point; this is what lets callers compare contact points with EqualPoints
// after an intersection query. A transversal crossing outside [0, 1] on
// either segment, after snapping, is not a contact and yields Count == 0.
//
// Two collinear overlapping segments yield Count == 2, describing the
// shared sub-segment's two endpoints. Two collinear, non-overlapping or
// merely touching-at-a-point segments yield Count == 0 or 1 accordingly.
func IntersectSegments(p1, p2, q1, q2 Point) IntersectionResult {
	if !boxesMayOverlap(p1, p2, q1, q2) {
		return IntersectionResult{}
	}

	d1 := pointSub(p2, p1)
	d2 := pointSub(q2, q1)
	r := pointSub(q1, p1)

	a11, a12 := d1.X, -d2.X
	a21, a22 := d1.Y, -d2.Y
	det := a11*a22 - a12*a21
	det1 := r.X*a22 - a12*r.Y
	det2 := a11*r.Y - r.X*a21

	if det != 0 {
		u := det1 / det
		v := det2 / det
		u = snapCoef(u)
		v = snapCoef(v)
		if math.IsNaN(u) || math.IsNaN(v) || math.IsInf(u, 0) || math.IsInf(v, 0) {
			return IntersectionResult{}
		}
		if u < 0 || u > 1 || v < 0 || v > 1 {
			return IntersectionResult{}
		}
		return IntersectionResult{
			Count: 1,
			U1:    u, V1: v, I1: contactPoint(p1, p2, q1, q2, u, v),
		}
	}

	// Parallel. Collinear only if the same translation also solves v's
	// numerator; otherwise the lines are parallel but distinct.
	if det1 != 0 || det2 != 0 {
		return IntersectionResult{}
	}
	return collinearOverlap(p1, p2, q1, q2)
}

func boxesMayOverlap(p1, p2, q1, q2 Point) bool {
	pMinX, pMaxX := minMax(p1.X, p2.X)
	pMinY, pMaxY := minMax(p1.Y, p2.Y)
	qMinX, qMaxX := minMax(q1.X, q2.X)
	qMinY, qMaxY := minMax(q1.Y, q2.Y)
	if pMaxX < qMinX-Epsilon || qMaxX < pMinX-Epsilon {
		return false
	}
	if pMaxY < qMinY-Epsilon || qMaxY < pMinY-Epsilon {
		return false
	}
	return true
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// contactPoint resolves a contact to an exact input endpoint whenever the
// snapped parameter identifies one, priority u1==0, u1==1, v1==0, v1==1,
// falling back to linear interpolation along p.
func contactPoint(p1, p2, q1, q2 Point, u, v float64) Point {
	switch {
	case u == 0:
		return p1
	case u == 1:
		return p2
	case v == 0:
		return q1
	case v == 1:
		return q2
	default:
		return pointLerp(p1, p2, u)
	}
}

// collinearOverlap handles the det == 0, collinear case: it projects both
// segments onto whichever axis of p's direction vector has the larger
// magnitude (for numerical stability) and intersects the two resulting
// intervals.
func collinearOverlap(p1, p2, q1, q2 Point) IntersectionResult {
	d := pointSub(p2, p1)
	var axis func(Point) float64
	if math.Abs(d.X) >= math.Abs(d.Y) {
		axis = func(p Point) float64 { return p.X }
	} else {
		axis = func(p Point) float64 { return p.Y }
	}
	pLo, pHi := axis(p1), axis(p2)
	if pLo > pHi {
		pLo, pHi = pHi, pLo
	}
	if pLo == pHi {
		// p1 == p2: degenerate, treat as a single point test.
		if axis(q1) <= pLo && pLo <= axis(q2) || axis(q2) <= pLo && pLo <= axis(q1) {
			return IntersectionResult{Count: 1, U1: 0, V1: paramAlong(q1, q2, p1, axis), I1: p1}
		}
		return IntersectionResult{}
	}

	toParamP := func(p Point) float64 { return (axis(p) - axis(p1)) / (axis(p2) - axis(p1)) }
	uq1, uq2 := toParamP(q1), toParamP(q2)
	loU, hiU := uq1, uq2
	if loU > hiU {
		loU, hiU = hiU, loU
	}
	lo := math.Max(0, loU)
	hi := math.Min(1, hiU)
	if lo > hi+intersectionEpsilon {
		return IntersectionResult{}
	}
	lo = snapCoef(lo)
	hi = snapCoef(hi)

	first := Point{X: p1.X + (p2.X-p1.X)*lo, Y: p1.Y + (p2.Y-p1.Y)*lo}
	v1 := paramAlong(q1, q2, first, axis)
	if math.Abs(hi-lo) <= intersectionEpsilon {
		return IntersectionResult{Count: 1, U1: lo, V1: snapCoef(v1), I1: first}
	}
	second := Point{X: p1.X + (p2.X-p1.X)*hi, Y: p1.Y + (p2.Y-p1.Y)*hi}
	v2 := paramAlong(q1, q2, second, axis)
	return IntersectionResult{
		Count: 2,
		U1:    lo, V1: snapCoef(v1), I1: first,
		U2: hi, V2: snapCoef(v2), I2: second,
	}
}

func paramAlong(a, b, p Point, axis func(Point) float64) float64 {
	denom := axis(b) - axis(a)
	if denom == 0 {
		return 0
	}
	return (axis(p) - axis(a)) / denom
}

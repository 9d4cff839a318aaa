package geolib

import (
	"math"
	"sort"
)

// ConvexHull returns the convex hull of points as an open (not closed)
// sequence of vertices in counter-clockwise order, computed with a Graham
// scan. Fewer than 3 distinct input points yield the distinct points
// unchanged (0, 1 or 2 of them).
func ConvexHull(points []Point) []Point {
	pts := append([]Point(nil), points...)
	if len(pts) < 2 {
		return pts
	}

	sort.SliceStable(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	pts = dedupExact(pts)
	if len(pts) < 3 {
		return pts
	}

	p0 := pts[0]
	rest := pts[1:]

	sort.SliceStable(rest, func(i, j int) bool {
		ai := polarAngle(p0, rest[i])
		aj := polarAngle(p0, rest[j])
		if ai != aj {
			return ai < aj
		}
		// Farther point first on a tie.
		return Distance(p0, rest[i]) > Distance(p0, rest[j])
	})
	rest = dedupCollinearRuns(p0, rest)
	if len(rest) < 2 {
		return append([]Point{p0}, rest...)
	}

	stack := []Point{p0, rest[0], rest[1]}
	for i := 2; i < len(rest); i++ {
		candidate := rest[i]
		for len(stack) >= 2 && checkCCW(stack[len(stack)-2], stack[len(stack)-1], candidate) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, candidate)
	}
	return stack
}

// checkCCW returns a positive value when a, b, c turn counter-clockwise,
// negative when clockwise, zero when collinear.
func checkCCW(a, b, c Point) float64 {
	return CrossProduct(a, b, c)
}

func polarAngle(origin, p Point) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X)
}

func dedupExact(pts []Point) []Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || !EqualPoints(p, pts[i-1]) {
			out = append(out, p)
		}
	}
	return out
}

// dedupCollinearRuns keeps only the first point of every maximal run of
// points that share a polar angle about origin; after the farther-first
// sort that first point is the farthest one, which is exactly the point
// worth keeping when every closer point in the run lies strictly inside
// the hull.
func dedupCollinearRuns(origin Point, pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	lastAngle := polarAngle(origin, pts[0])
	for i := 1; i < len(pts); i++ {
		a := polarAngle(origin, pts[i])
		if a != lastAngle {
			out = append(out, pts[i])
			lastAngle = a
		}
	}
	return out
}

package geolib

import "sort"

// ingestGeometry adds every boundary edge of geom into the overlay graph
// under the given color. When reverse is true each edge is added
// src<-dst instead of src->dst, which is how BinaryOp encodes a
// difference's second operand so its interior winds the opposite way from
// its first operand's.
func ingestGeometry(g *overlayGraph, color int, geom Geometry, reverse bool) {
	IterateEdges(geom, reverse, func(e Edge) {
		g.edgeAdd(color, e.P1, e.P2)
	})
}

// splitPoint records where, along the parameter [0, 1] of one overlay edge,
// a crossing with an edge of the other color falls.
type splitPoint struct {
	t float64
	p Point
}

// splitCrossings finds every point where an edge of color 0 crosses an edge
// of color 1 in their shared interior, and rewrites both graphs so that no
// edge of either color passes through a crossing point without a vertex
// there. Edges within the same color are never split against each other:
// each color's input is assumed to already be a simple (non-self-crossing)
// boundary.
func splitCrossings(g *overlayGraph) {
	edges0 := g.edgesByColor(0)
	edges1 := g.edgesByColor(1)

	splits := make(map[overlayEdge][]splitPoint)
	record := func(e overlayEdge, t float64, p Point) {
		if t <= 0 || t >= 1 {
			return
		}
		splits[e] = append(splits[e], splitPoint{t: t, p: p})
	}

	for _, e0 := range edges0 {
		p1, p2 := g.pointOf(e0.src), g.pointOf(e0.dst)
		for _, e1 := range edges1 {
			q1, q2 := g.pointOf(e1.src), g.pointOf(e1.dst)
			res := IntersectSegments(p1, p2, q1, q2)
			switch res.Count {
			case 1:
				record(e0, res.U1, res.I1)
				record(e1, res.V1, res.I1)
			case 2:
				record(e0, res.U1, res.I1)
				record(e1, res.V1, res.I1)
				record(e0, res.U2, res.I2)
				record(e1, res.V2, res.I2)
			}
		}
	}

	applySplits(g, 0, splits)
	applySplits(g, 1, splits)
}

func applySplits(g *overlayGraph, color int, splits map[overlayEdge][]splitPoint) {
	for e, pts := range splits {
		if e.color != color {
			continue
		}
		if !g.hasEdge(color, e.src, e.dst) {
			continue
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].t < pts[j].t })
		g.edgeRemove(color, e.src, e.dst)
		prev := e.src
		for _, sp := range pts {
			next := g.vertexID(sp.p)
			if next == prev {
				continue
			}
			g.edgeAdd(color, g.pointOf(prev), g.pointOf(next))
			prev = next
		}
		if prev != e.dst {
			g.edgeAdd(color, g.pointOf(prev), g.pointOf(e.dst))
		}
	}
}

// classifyEdge reports edge src->dst of the given color relative to the
// geometry ingested under the other color:
//
//   - EdgeTypeBorder: the other color has the same directed edge.
//   - EdgeTypeNone: the other color has the reverse directed edge (the two
//     boundaries cancel along this edge), or the edge's midpoint lies
//     exactly on the other color's boundary.
//   - EdgeTypeInner: the edge's midpoint lies strictly inside the other
//     color's geometry.
//   - EdgeTypeOuter: the edge's midpoint lies strictly outside the other
//     color's geometry (and is not canceled by a reverse edge).
func classifyEdge(g *overlayGraph, color, src, dst int) EdgeType {
	other := 1 - color
	if g.hasEdge(other, src, dst) {
		return EdgeTypeBorder
	}
	if g.hasEdge(other, dst, src) {
		return EdgeTypeNone
	}
	mid := pointScale(pointAdd(g.pointOf(src), g.pointOf(dst)), 0.5)
	switch idx := g.pointIndexAgainstColor(other, mid); {
	case idx == 0:
		return EdgeTypeNone
	case idx > 0:
		return EdgeTypeInner
	default:
		return EdgeTypeOuter
	}
}

package geolib

import "sort"

// BinaryOp computes the union, intersection or difference of two
// multi-polygons.
//
// Possible errors:
//   - ErrIncompleteRing (which wraps ErrOverlayFailure): the ring-harvesting
//     walk could not close a ring from the filtered overlay edges. This can
//     only happen on malformed input (e.g. a ring that does not close, or
//     inputs whose self-intersections violate the simple-ring assumption
//     ingestGeometry depends on).
//   - ErrAmbiguousRingAssignment (which wraps ErrOverlayFailure): a harvested
//     inner ring's sample point could not be assigned to exactly one outer
//     ring during reconstruction.
func BinaryOp(op Op, a, b MultiPolygon) (MultiPolygon, error) {
	return binaryOpImpl(op, a, b)
}

// Union returns the union of a and b.
func Union(a, b MultiPolygon) (MultiPolygon, error) { return BinaryOp(OpUnion, a, b) }

// Intersection returns the intersection of a and b.
func Intersection(a, b MultiPolygon) (MultiPolygon, error) { return BinaryOp(OpIntersection, a, b) }

// Difference returns a with b removed.
func Difference(a, b MultiPolygon) (MultiPolygon, error) { return BinaryOp(OpDifference, a, b) }

func binaryOpImpl(op Op, a, b MultiPolygon) (MultiPolygon, error) {
	g := newOverlayGraph()
	ingestGeometry(g, 0, a, false)
	// A difference ingests its second operand reversed, so the edges that
	// survive filtering trace the subtracted region's boundary with the
	// winding direction a hole needs.
	ingestGeometry(g, 1, b, op == OpDifference)

	splitCrossings(g)

	kept := filterEdges(g, op)
	if len(kept) == 0 {
		return MultiPolygon{}, nil
	}

	rings, err := harvestRings(g, kept)
	if err != nil {
		return MultiPolygon{}, err
	}

	return assembleRings(rings)
}

// keepEdge implements the Boolean-operation filter policy: which edges,
// classified by their own color and their EdgeType relative to the other
// color's geometry, survive into the result's boundary.
//
//   - Union keeps edges that lie outside the other operand (EdgeTypeOuter),
//     plus one copy - color 0's - of any shared border.
//   - Intersection keeps edges that lie inside the other operand
//     (EdgeTypeInner), plus one copy of any shared border.
//   - Difference keeps color 0's edges that lie outside b
//     (EdgeTypeOuter) and color 1's (reversed) edges that lie inside a
//     (EdgeTypeInner); a shared border contributes a zero-width seam to a
//     subtraction and is dropped entirely.
//
// EdgeTypeNone (an edge exactly canceled by a reverse edge of the other
// color, or whose midpoint falls exactly on the other color's boundary) is
// never kept, by any operation.
func keepEdge(op Op, color int, et EdgeType) bool {
	switch op {
	case OpUnion:
		return et == EdgeTypeOuter || (et == EdgeTypeBorder && color == 0)
	case OpIntersection:
		return et == EdgeTypeInner || (et == EdgeTypeBorder && color == 0)
	case OpDifference:
		if color == 0 {
			return et == EdgeTypeOuter
		}
		return et == EdgeTypeInner
	default:
		assertTrue(false, "keepEdge: unsupported operation %v", op)
		return false
	}
}

func filterEdges(g *overlayGraph, op Op) []overlayEdge {
	var kept []overlayEdge
	for _, e := range g.allEdges() {
		et := classifyEdge(g, e.color, e.src, e.dst)
		if keepEdge(op, e.color, et) {
			kept = append(kept, e)
		}
	}
	return kept
}

// edgeSet is a mutable pool of surviving overlay edges that harvestRings
// consumes as it walks rings out of them.
type edgeSet struct {
	remaining map[overlayEdge]bool
}

func newEdgeSet(edges []overlayEdge) *edgeSet {
	s := &edgeSet{remaining: make(map[overlayEdge]bool, len(edges))}
	for _, e := range edges {
		s.remaining[e] = true
	}
	return s
}

func (s *edgeSet) empty() bool { return len(s.remaining) == 0 }

func (s *edgeSet) remove(e overlayEdge) { delete(s.remaining, e) }

// firstRemaining returns the lexicographically-first (color, src, dst)
// remaining edge.
func (s *edgeSet) firstRemaining() overlayEdge {
	var edges []overlayEdge
	for e := range s.remaining {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].color != edges[j].color {
			return edges[i].color < edges[j].color
		}
		if edges[i].src != edges[j].src {
			return edges[i].src < edges[j].src
		}
		return edges[i].dst < edges[j].dst
	})
	return edges[0]
}

// firstRemainingFrom returns the lexicographically-first-by-(color,dst)
// remaining edge leaving src, preferring color 0 over color 1.
func (s *edgeSet) firstRemainingFrom(src int) (overlayEdge, bool) {
	for color := 0; color < 2; color++ {
		best := overlayEdge{}
		found := false
		for e := range s.remaining {
			if e.color != color || e.src != src {
				continue
			}
			if !found || e.dst < best.dst {
				best, found = e, true
			}
		}
		if found {
			return best, true
		}
	}
	return overlayEdge{}, false
}

// harvestRings walks the kept edges into closed rings. Every surviving edge
// is consumed exactly once. The walk always advances from the current
// edge's destination via the lexicographically-first remaining edge
// leaving it (color-major, then destination id); when that destination has
// already been visited earlier in the current path, the loop between the
// first and second visit is extracted as a ring.
func harvestRings(g *overlayGraph, kept []overlayEdge) ([]Ring, error) {
	pool := newEdgeSet(kept)
	var rings []Ring

	var path []int
	posInPath := map[int]int{}
	var current overlayEdge
	haveCurrent := false

	for !pool.empty() || haveCurrent {
		if !haveCurrent {
			if pool.empty() {
				break
			}
			current = pool.firstRemaining()
			path = []int{current.src}
			posInPath = map[int]int{current.src: 0}
			haveCurrent = true
		}

		dst := current.dst
		if pos, seen := posInPath[dst]; seen {
			rings = append(rings, buildRing(g, path[pos:], dst))
			for k := pos + 1; k < len(path); k++ {
				delete(posInPath, path[k])
			}
			path = path[:pos+1]
		} else {
			path = append(path, dst)
			posInPath[dst] = len(path) - 1
		}

		pool.remove(current)

		next, ok := pool.firstRemainingFrom(dst)
		if !ok {
			if len(path) >= 2 {
				return nil, ErrIncompleteRing
			}
			haveCurrent = false
			continue
		}
		current = next
	}

	if haveCurrent && len(path) >= 2 {
		return nil, ErrIncompleteRing
	}
	return rings, nil
}

func buildRing(g *overlayGraph, ids []int, closingID int) Ring {
	pts := make([]Point, 0, len(ids)+1)
	for _, id := range ids {
		pts = append(pts, g.pointOf(id))
	}
	pts = append(pts, g.pointOf(closingID))
	return Ring{Points: pts}
}

// assembleRings partitions harvested rings into outer rings (positive
// signed area) and inner rings (negative), then assigns each inner ring to
// the first outer ring (in ascending order of |area|) whose interior
// strictly contains a sample point on the inner ring.
//
// An empty outer-ring set after a Boolean operation is not an error: it
// simply means the operation's result is empty (e.g. disjoint inputs under
// Intersection). The whole assembled result is run through
// CorrectMultiPolygon before being returned.
func assembleRings(rings []Ring) (MultiPolygon, error) {
	var outers, inners []Ring
	for _, r := range rings {
		if ringArea(r) >= 0 {
			outers = append(outers, r)
		} else {
			inners = append(inners, r)
		}
	}
	if len(outers) == 0 {
		return MultiPolygon{}, nil
	}

	sort.SliceStable(outers, func(i, j int) bool {
		return absf(ringArea(outers[i])) < absf(ringArea(outers[j]))
	})
	sort.SliceStable(inners, func(i, j int) bool {
		return absf(ringArea(inners[i])) < absf(ringArea(inners[j]))
	})

	polys := make([]Polygon, len(outers))
	for i, o := range outers {
		polys[i] = Polygon{Outer: o}
	}

	for _, inner := range inners {
		sample := ringSamplePoint(inner)
		assigned := false
		for i := range polys {
			idx := PointIndexRing(polys[i].Outer, sample)
			if idx == 0 {
				return MultiPolygon{}, ErrAmbiguousRingAssignment
			}
			if idx > 0 {
				polys[i].Inners = append(polys[i].Inners, inner)
				assigned = true
				break
			}
		}
		if !assigned {
			return MultiPolygon{}, ErrAmbiguousRingAssignment
		}
	}

	return CorrectMultiPolygon(MultiPolygon{Polygons: polys})
}

// ringSamplePoint returns the midpoint of a ring's first edge, used as the
// representative point when testing which outer ring contains it.
func ringSamplePoint(r Ring) Point {
	if len(r.Points) < 2 {
		return r.Points[0]
	}
	return pointScale(pointAdd(r.Points[0], r.Points[1]), 0.5)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

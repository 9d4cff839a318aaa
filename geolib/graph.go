package geolib

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/graph/core"
)

// overlayGraph is the two-colored directed edge graph the Boolean-operation
// driver builds each input geometry's boundary into. Color 0 holds the
// first operand's edges, color 1 the second's (reversed, when the
// operation is a difference, so its interior winds the opposite way).
//
// Vertices are identified by a dense integer id assigned on first snap;
// core.Graph itself only ever sees that id's decimal string, one *core.Graph
// per color. The id<->point mapping lives outside core.Graph because an
// overlay vertex can be touched by edges of either or both colors and one
// id must name the same point in both graphs. Vertices carry no color tag
// of their own.
type overlayGraph struct {
	colorGraphs [2]*core.Graph
	pointToID   map[Point]int
	idToPoint   []Point
}

func newOverlayGraph() *overlayGraph {
	return &overlayGraph{
		colorGraphs: [2]*core.Graph{core.NewGraph(true, false), core.NewGraph(true, false)},
		pointToID:   make(map[Point]int),
	}
}

// vertexID returns the id for p's snapped position, allocating one if this
// is the first time p has been seen.
func (g *overlayGraph) vertexID(p Point) int {
	sp := Snap(p)
	if id, ok := g.pointToID[sp]; ok {
		return id
	}
	id := len(g.idToPoint)
	g.pointToID[sp] = id
	g.idToPoint = append(g.idToPoint, sp)
	return id
}

func (g *overlayGraph) pointOf(id int) Point { return g.idToPoint[id] }

func vid(id int) string { return strconv.Itoa(id) }

// edgeAdd inserts edge src->dst of the given color, snapping both endpoints
// first. It is a no-op if src and dst snap to the same vertex (a
// zero-length edge) or if the edge already exists - the overlay graph is a
// simple graph per color, never a multigraph.
func (g *overlayGraph) edgeAdd(color int, p1, p2 Point) {
	assertTrue(color == 0 || color == 1, "edgeAdd: invalid color %d", color)
	src, dst := g.vertexID(p1), g.vertexID(p2)
	if src == dst {
		return
	}
	if g.colorGraphs[color].HasEdge(vid(src), vid(dst)) {
		return
	}
	g.colorGraphs[color].AddEdge(vid(src), vid(dst), 0)
}

func (g *overlayGraph) edgeRemove(color, src, dst int) {
	g.colorGraphs[color].RemoveEdge(vid(src), vid(dst))
}

func (g *overlayGraph) hasEdge(color, src, dst int) bool {
	return g.colorGraphs[color].HasEdge(vid(src), vid(dst))
}

// overlayEdge is a single overlay-graph edge, endpoints as vertex ids.
type overlayEdge struct {
	color    int
	src, dst int
}

// edgesByColor returns every edge of the given color, sorted by (src, dst)
// ascending. lvlath's adjacency list is map-backed and iterates in
// unspecified order; every order-sensitive consumer (ring harvesting, in
// particular) goes through this sorted view rather than through
// core.Graph.Edges directly.
func (g *overlayGraph) edgesByColor(color int) []overlayEdge {
	raw := g.colorGraphs[color].Edges()
	out := make([]overlayEdge, 0, len(raw))
	for _, e := range raw {
		src, _ := strconv.Atoi(e.From.ID)
		dst, _ := strconv.Atoi(e.To.ID)
		out = append(out, overlayEdge{color: color, src: src, dst: dst})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].src != out[j].src {
			return out[i].src < out[j].src
		}
		return out[i].dst < out[j].dst
	})
	return out
}

// allEdges returns every edge across both colors, sorted color-major, then
// by source id, then by destination id - the deterministic traversal order
// the ring-harvesting walk (boolean.go) depends on.
func (g *overlayGraph) allEdges() []overlayEdge {
	out := make([]overlayEdge, 0)
	out = append(out, g.edgesByColor(0)...)
	out = append(out, g.edgesByColor(1)...)
	return out
}

// findFirstEdgeFrom returns the lexicographically-first-by-(color,dst)
// edge leaving src, preferring color 0 over color 1, or ok=false if src has
// no outgoing edge in either color. It applies the ring-harvesting walk's
// next-hop rule to the whole graph; harvestRings itself applies that rule
// through edgeSet.firstRemainingFrom over its pool of remaining kept edges
// and does not call this method.
func (g *overlayGraph) findFirstEdgeFrom(src int) (e overlayEdge, ok bool) {
	for color := 0; color < 2; color++ {
		best := overlayEdge{}
		found := false
		for _, edge := range g.edgesByColor(color) {
			if edge.src != src {
				continue
			}
			if !found || edge.dst < best.dst {
				best, found = edge, true
			}
		}
		if found {
			return best, true
		}
	}
	return overlayEdge{}, false
}

// pointIndexAgainstColor reports point p's winding-parity index against the
// closed boundary formed by every edge of the given color, by folding
// updatePointIndex over that color's edge set directly (the color's edges
// need not yet be assembled into Ring values).
func (g *overlayGraph) pointIndexAgainstColor(color int, p Point) int {
	index := -1
	for _, e := range g.edgesByColor(color) {
		if index == 0 {
			break
		}
		index = updatePointIndex(p, g.pointOf(e.src), g.pointOf(e.dst), index)
	}
	return index
}

package facility

import (
	"fmt"

	"github.com/rs/zerolog"
)

// New returns a graph with nodes 0..v-1 and no edges.
func New(v int, opts ...Option) (*Graph, error) {
	if v < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, v)
	}
	g := &Graph{
		adj: make([][]Edge, v),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// AddEdge connects u and v in both directions with weight w and reports
// whether the edge was added.
//
// If u or v is outside [0, V) the call is a no-op: the adjacency is left
// untouched, a warning carrying ErrInvalidEndpoint is logged, and false is
// returned. Out-of-range edges are deliberately not an error so that
// layouts written for a larger floor still load.
func (g *Graph) AddEdge(u, v int, w int64) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		g.log.Warn().
			Err(ErrInvalidEndpoint).
			Int("from", u).
			Int("to", v).
			Int64("weight", w).
			Int("nodes", len(g.adj)).
			Msg("edge ignored")

		return false
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
	g.edges++

	return true
}

// HasNode reports whether u is in [0, V).
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < len(g.adj) }

// Order returns V, the number of nodes.
func (g *Graph) Order() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges added.
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns a copy of u's adjacency list in insertion order.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasNode(u) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, u, len(g.adj))
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Each calls fn for every adjacency entry of u without copying.
// fn must not modify the graph.
func (g *Graph) Each(u int, fn func(e Edge)) {
	if !g.HasNode(u) {
		return
	}
	for _, e := range g.adj[u] {
		fn(e)
	}
}

// Sample returns the six-node reference floor:
//
//	    1 ---4--- 3 ---6--- 4
//	    |         |
//	    3         2
//	    |         |
//	    0 ---2--- 2 ---7--- 5
func Sample(opts ...Option) *Graph {
	g, _ := New(6, opts...)
	for _, e := range SampleEdges() {
		g.AddEdge(e[0], e[1], int64(e[2]))
	}

	return g
}

// SampleEdges lists the reference floor's corridors as {from, to, weight}.
func SampleEdges() [][3]int {
	return [][3]int{
		{0, 1, 3},
		{0, 2, 2},
		{1, 3, 4},
		{2, 3, 2},
		{3, 4, 6},
		{2, 5, 7},
	}
}

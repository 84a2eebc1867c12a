// Package facility models the cafeteria floor as a weighted undirected
// graph over a fixed set of nodes 0..V-1 (counters, tray racks, seating
// areas, exits).
//
// This file declares Edge, Graph, Option and the sentinel errors.
//
// Invariants:
//
//   - The node set is fixed at construction.
//   - Adjacency is symmetric: an edge u-v of weight w is stored in both
//     u's and v's lists with the same weight.
//   - Parallel edges are kept as added; nothing is deduplicated.
//
// Errors:
//
//	ErrBadNodeCount     - New was called with fewer than one node.
//	ErrNodeOutOfRange   - a query referenced a node outside [0, V).
//	ErrInvalidEndpoint  - diagnostic attached to ignored AddEdge calls.
package facility

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for facility graph operations.
var (
	// ErrBadNodeCount indicates a graph with no nodes was requested.
	ErrBadNodeCount = errors.New("facility: node count must be at least 1")

	// ErrNodeOutOfRange indicates a node index outside [0, V).
	ErrNodeOutOfRange = errors.New("facility: node out of range")

	// ErrInvalidEndpoint is logged when AddEdge ignores an edge whose
	// endpoint is outside [0, V). AddEdge never returns it.
	ErrInvalidEndpoint = errors.New("facility: edge endpoint out of range")
)

// Edge is one entry of a node's adjacency list.
type Edge struct {
	// To is the neighbor node.
	To int

	// Weight is the walking cost of the corridor. Must be non-negative
	// for shortest-path queries.
	Weight int64
}

// Option configures a Graph at construction.
type Option func(g *Graph)

// WithLogger attaches a logger for diagnostics such as ignored edges.
// The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(g *Graph) { g.log = l }
}

// Graph is a fixed-size weighted undirected multigraph.
//
// It is not safe for concurrent mutation. After setup it is read-only and
// may be queried freely.
type Graph struct {
	adj   [][]Edge // adj[u] = edges leaving u
	edges int      // undirected edges accepted by AddEdge
	log   zerolog.Logger
}

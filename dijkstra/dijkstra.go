package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/cafeteria/facility"
)

// ShortestPaths computes minimum walking distances from the source node
// (Options.Source) to every node of g.
//
// Preconditions and validation (in order):
//  1. No option was invalid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be set (ErrNoSource) and in [0, V) (ErrSourceOutOfRange).
//  4. No edge may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *facility.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == -1 {
		return nil, ErrNoSource
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, g.Order())
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	V := g.Order()
	for u := 0; u < V; u++ {
		var bad *facility.Edge
		g.Each(u, func(e facility.Edge) {
			if bad == nil && e.Weight < 0 {
				bad = &e
			}
		})
		if bad != nil {
			return nil, fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, bad.To, bad.Weight)
		}
	}

	// 4) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, V)
	}
	r.init()
	r.process()

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *facility.Graph // read-only within ShortestPaths
	options Options
	dist    []int64 // node → best known distance from Source
	prev    []int   // node → predecessor; nil unless ReturnPath
	pq      nodePQ  // lazy min-heap
}

// init sets every distance to Unreachable, the source to 0, and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = noPred
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest frontier node and relaxes its
// corridors until the heap is empty or the MaxDistance cap is passed.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was pushed after this one.
		if item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.relax(item.id)
	}
}

// relax applies dist[to] = min(dist[to], dist[u]+w) over u's adjacency and
// pushes every improved node. Assumes dist[u] is final.
func (r *runner) relax(u int) {
	du := r.dist[u]
	r.g.Each(u, func(e facility.Edge) {
		if e.Weight >= r.options.InfEdgeThreshold {
			return
		}
		// Guard the sum against int64 overflow.
		if e.Weight > math.MaxInt64-du {
			return
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[e.To] {
			return
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	})
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
// Old entries are never removed on improvement; process skips them.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller distance, then smaller node id for determinism.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

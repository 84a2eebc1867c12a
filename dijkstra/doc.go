// Package dijkstra computes single-source shortest walking distances over
// a facility.Graph with non-negative corridor weights.
//
// Overview:
//
//   - Every node starts at Unreachable (math.MaxInt64) except the source at 0.
//   - A min-heap always yields the unsettled node with the smallest
//     tentative distance; its corridors are relaxed with
//     dist[to] = min(dist[to], dist[cur]+w) and improved nodes are pushed.
//   - Decrease-key is lazy: improved nodes are pushed again and entries
//     whose distance no longer matches the best known one are skipped when
//     popped. The run ends when the heap is empty.
//
// Key features:
//
//   - WithReturnPath records predecessors so Result.Path can rebuild a route.
//   - WithMaxDistance stops settling nodes farther than a cap.
//   - WithInfEdgeThreshold treats heavy corridors as closed.
//   - Parallel corridors are all considered; the lightest wins.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNoSource, ErrSourceOutOfRange: bad inputs.
//   - ErrNegativeWeight: detected by an O(E) pre-scan before any work.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid options.
//
// Thread safety:
//
//   - ShortestPaths only reads the graph. Concurrent queries are safe as
//     long as nobody adds edges at the same time.
package dijkstra

package dijkstra

import "fmt"

// Result holds the distances computed by ShortestPaths.
type Result struct {
	// Source is the node distances are measured from.
	Source int

	// Dist[v] is the shortest distance to v, or Unreachable.
	Dist []int64

	// Prev[v] is v's predecessor on one shortest path (-1 for the source
	// and unreachable nodes). Nil unless WithReturnPath was given.
	Prev []int
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// Distance returns the shortest distance to v and whether v is reachable.
func (r *Result) Distance(v int) (int64, bool) {
	if !r.Reachable(v) {
		return Unreachable, false
	}

	return r.Dist[v], true
}

// Path returns the node sequence from Source to target, inclusive.
func (r *Result) Path(target int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrPathNotTracked
	}
	if !r.Reachable(target) {
		return nil, fmt.Errorf("%w: %d from %d", ErrNoPath, target, r.Source)
	}

	var rev []int
	for v := target; v != noPred; v = r.Prev[v] {
		rev = append(rev, v)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, nil
}

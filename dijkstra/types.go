// Package dijkstra defines core types and configuration options
// for shortest-path queries over a facility.Graph.
//
// Options:
//
//	– Source:           starting node (required, must be in [0, V)).
//	– ReturnPath:       if true, record predecessors so Result.Path works.
//	– MaxDistance:      optional cap; nodes farther than this stay unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrNoSource         if Source was not given.
//	– ErrSourceOutOfRange if the source node is outside [0, V).
//	– ErrNegativeWeight   if a negative edge weight is detected.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
//	– ErrPathNotTracked   if Path is called without WithReturnPath.
//	– ErrNoPath           if Path targets an unreachable node.
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for nodes with no path from the source.
const Unreachable int64 = math.MaxInt64

// noPred marks a node without predecessor in Result.Prev.
const noPred = -1

// Sentinel errors returned by ShortestPaths and Result.
var (
	// ErrNilGraph indicates that a nil *facility.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrSourceOutOfRange indicates the source node is not in the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrPathNotTracked indicates Path was called on a result computed without WithReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors not recorded")

	// ErrNoPath indicates the requested target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures the behavior of ShortestPaths.
//
// Source           – starting node; -1 (the default) means unset.
// ReturnPath       – if true, predecessors are recorded for Result.Path.
// MaxDistance      – nodes whose distance would exceed this are not settled.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           int
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64

	err error // first invalid option, surfaced by ShortestPaths
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// Source sets the starting node.
func Source(node int) Option {
	return func(o *Options) {
		o.Source = node
	}
}

// WithReturnPath enables predecessor tracking so Result.Path can rebuild routes.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative value makes ShortestPaths return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as closed corridors.
// A zero or negative value makes ShortestPaths return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no path tracking and no caps.
func DefaultOptions() Options {
	return Options{
		Source:           -1,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

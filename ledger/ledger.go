// Package ledger keeps the permanent history of served customers and the
// wait-time metrics derived from it.
//
// Two views of wait time are maintained:
//
//   - a bounded window of the most recent waits (default 5) whose mean is
//     the rolling average reported after every service;
//   - an all-time distribution (DDSketch, 1% relative accuracy) for
//     percentile summaries.
//
// Record is the only mutator. Records are never changed or removed.
// A Ledger is not safe for concurrent use.
package ledger

import (
	"errors"
	"fmt"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"

	"github.com/katalvlaran/cafeteria/customer"
)

// DefaultWindowSize is the number of recent waits averaged by default.
const DefaultWindowSize = 5

// sketchAccuracy is the relative accuracy of percentile estimates.
const sketchAccuracy = 0.01

// Sentinel errors.
var (
	// ErrBadWindowSize indicates a window size below 1.
	ErrBadWindowSize = errors.New("ledger: window size must be at least 1")

	// ErrNoRecords indicates a summary was requested before any service.
	ErrNoRecords = errors.New("ledger: no served records")
)

// Options configures a Ledger.
type Options struct {
	WindowSize int
}

// Option is a functional option for New.
type Option func(*Options)

// WithWindowSize sets how many recent waits the rolling average covers.
// Values below 1 make New return ErrBadWindowSize.
func WithWindowSize(n int) Option {
	return func(o *Options) { o.WindowSize = n }
}

// Snapshot is the rolling metric after a Record.
type Snapshot struct {
	Window  []int   // recent waits, oldest first
	Average float64 // arithmetic mean of Window
}

// Summary describes every wait recorded so far.
type Summary struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
	P50   float64 // approximate, within sketchAccuracy
	P95   float64 // approximate, within sketchAccuracy
}

// Ledger is the append-only service history.
type Ledger struct {
	records []customer.ServedRecord
	window  *Window[int]
	waits   []float64
	sketch  *ddsketch.DDSketch
}

// New returns an empty Ledger.
func New(opts ...Option) (*Ledger, error) {
	cfg := Options{WindowSize: DefaultWindowSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.WindowSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadWindowSize, cfg.WindowSize)
	}

	sketch, err := ddsketch.NewDefaultDDSketch(sketchAccuracy)
	if err != nil {
		return nil, fmt.Errorf("ledger: wait sketch: %w", err)
	}

	return &Ledger{
		window: NewWindow[int](cfg.WindowSize),
		sketch: sketch,
	}, nil
}

// Record appends rec and folds its wait time into the metrics.
func (l *Ledger) Record(rec customer.ServedRecord) Snapshot {
	l.records = append(l.records, rec)

	wait := rec.Wait()
	l.window.Push(wait)
	l.waits = append(l.waits, float64(wait))
	// DDSketch only rejects values outside its indexable range; waits are
	// small non-negative tick counts.
	_ = l.sketch.Add(float64(wait))

	avg, _ := l.RollingAverage()

	return Snapshot{Window: l.window.Values(), Average: avg}
}

// Records returns a copy of the history in service order.
func (l *Ledger) Records() []customer.ServedRecord {
	out := make([]customer.ServedRecord, len(l.records))
	copy(out, l.records)

	return out
}

// Len returns the number of served records.
func (l *Ledger) Len() int { return len(l.records) }

// Window returns the recent waits, oldest first.
func (l *Ledger) Window() []int { return l.window.Values() }

// RollingAverage returns the mean of the recent-wait window, or false
// when nothing has been recorded.
func (l *Ledger) RollingAverage() (float64, bool) {
	vals := l.window.Values()
	if len(vals) == 0 {
		return 0, false
	}
	xs := make([]float64, len(vals))
	for i, v := range vals {
		xs[i] = float64(v)
	}

	return stats.Mean(xs), true
}

// Summary reports statistics over every recorded wait.
func (l *Ledger) Summary() (Summary, error) {
	if len(l.waits) == 0 {
		return Summary{}, ErrNoRecords
	}
	qs, err := l.sketch.GetValuesAtQuantiles([]float64{0.50, 0.95})
	if err != nil {
		return Summary{}, fmt.Errorf("ledger: wait quantiles: %w", err)
	}
	sample := stats.Sample{Xs: l.waits}
	lo, hi := sample.Bounds()

	return Summary{
		Count: len(l.waits),
		Mean:  sample.Mean(),
		Min:   lo,
		Max:   hi,
		P50:   qs[0],
		P95:   qs[1],
	}, nil
}

// Package sim is the single owner of a cafeteria run: the logical clock,
// both waiting lines, the tray store and tray counters, the service ledger
// and the facility graph.
//
// Data flow:
//
//	arrival → AddStudent/AddFaculty → dispatch queues
//	ServeNext → dispatch policy → tray issued → ledger record → rolling average
//	ReturnTray → most recently issued tray back in circulation
//	ShortestPaths → independent query on the static facility graph
//
// Every failure is recoverable and leaves the simulation unchanged.
//
// Thread safety:
//
//   - A Simulator is not safe for concurrent use. Its operations must be
//     called in sequence by one owner (or under an external lock); the
//     monotonic clock depends on that ordering.
package sim

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cafeteria/customer"
	"github.com/katalvlaran/cafeteria/dispatch"
	"github.com/katalvlaran/cafeteria/ledger"
)

// Tray capacity bounds accepted by New.
const (
	MinCapacity = 1
	MaxCapacity = 500
)

// FirstTrayID is the id given to the first tray issued in a run.
const FirstTrayID = 100

// Sentinel errors.
var (
	// ErrTraysExhausted indicates a service was attempted with no tray available.
	ErrTraysExhausted = errors.New("sim: no trays available")

	// ErrNoTraysToReturn indicates a return was attempted with no tray out.
	ErrNoTraysToReturn = errors.New("sim: no trays to return")

	// ErrEmptyDispatch indicates a service was requested with nobody waiting.
	ErrEmptyDispatch = dispatch.ErrEmptyDispatch

	// ErrBadCapacity indicates a tray capacity outside [MinCapacity, MaxCapacity].
	ErrBadCapacity = errors.New("sim: tray capacity out of range")

	// ErrBadAvailability indicates starting availability outside [0, capacity].
	ErrBadAvailability = errors.New("sim: available trays out of range")

	// ErrBadRestock indicates a non-positive restock amount.
	ErrBadRestock = errors.New("sim: restock amount must be positive")
)

// ReturnPolicy decides what happens when a returned tray would push
// availability above capacity.
type ReturnPolicy int

const (
	// ClampOnReturn keeps availability at or below capacity.
	ClampOnReturn ReturnPolicy = iota
	// AllowOverReturn always increments availability.
	AllowOverReturn
)

// String returns "clamp" or "allow".
func (p ReturnPolicy) String() string {
	if p == AllowOverReturn {
		return "allow"
	}

	return "clamp"
}

// EdgeSpec is one configured corridor.
type EdgeSpec struct {
	From, To int
	Weight   int64
}

// Config is the starting state of a run.
type Config struct {
	Capacity  int // tray ceiling, [MinCapacity, MaxCapacity]
	Available int // trays on the rack at start, [0, Capacity]

	// Nodes and Edges describe the facility graph. When Nodes is 0 the
	// reference six-node floor is used and Edges is ignored.
	Nodes int
	Edges []EdgeSpec

	WindowSize int // recent waits averaged; 0 means ledger.DefaultWindowSize
	Policy     ReturnPolicy
}

// DefaultConfig returns capacity 50 with 30 trays available, the reference
// floor and a five-service rolling window.
func DefaultConfig() Config {
	return Config{
		Capacity:   50,
		Available:  30,
		WindowSize: ledger.DefaultWindowSize,
		Policy:     ClampOnReturn,
	}
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the event logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// ServeResult reports one completed service.
type ServeResult struct {
	Customer  customer.Customer
	TrayID    int
	ServedAt  int
	Wait      int
	Average   float64 // mean of the recent-wait window
	WindowLen int     // number of waits averaged
	Available int     // trays left after the service
}

// ReturnResult reports one tray return.
type ReturnResult struct {
	TrayID    int
	Available int
	Clamped   bool // the increment was absorbed by the capacity ceiling
}

// QueueSizes reports how many customers wait in each line.
type QueueSizes struct {
	Faculty  int
	Students int
}

// Stats is a point-in-time view of the resource counters.
type Stats struct {
	Capacity  int
	Available int
	Issued    int // trays issued so far
	Out       int // issued trays not yet returned
	Served    int
	Waiting   int
	Tick      int
	Average   float64 // rolling average, valid when Served > 0
}

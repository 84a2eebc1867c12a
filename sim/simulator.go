package sim

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cafeteria/clock"
	"github.com/katalvlaran/cafeteria/customer"
	"github.com/katalvlaran/cafeteria/dijkstra"
	"github.com/katalvlaran/cafeteria/dispatch"
	"github.com/katalvlaran/cafeteria/facility"
	"github.com/katalvlaran/cafeteria/ledger"
	"github.com/katalvlaran/cafeteria/traystore"
)

// Simulator owns all mutable state of one run.
type Simulator struct {
	clock  *clock.Clock
	queues *dispatch.Queues
	trays  *traystore.Store
	ledger *ledger.Ledger
	graph  *facility.Graph
	log    zerolog.Logger

	capacity  int
	available int
	policy    ReturnPolicy
	nextTray  int
	issued    []int // stack of issued, not yet returned tray ids
}

// New validates cfg and returns a Simulator at tick 0.
func New(cfg Config, opts ...Option) (*Simulator, error) {
	if cfg.Capacity < MinCapacity || cfg.Capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadCapacity, cfg.Capacity, MinCapacity, MaxCapacity)
	}
	if cfg.Available < 0 || cfg.Available > cfg.Capacity {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrBadAvailability, cfg.Available, cfg.Capacity)
	}

	s := &Simulator{
		clock:     clock.New(),
		queues:    dispatch.New(),
		trays:     traystore.New(),
		log:       zerolog.Nop(),
		capacity:  cfg.Capacity,
		available: cfg.Available,
		policy:    cfg.Policy,
		nextTray:  FirstTrayID,
	}
	for _, opt := range opts {
		opt(s)
	}

	window := cfg.WindowSize
	if window == 0 {
		window = ledger.DefaultWindowSize
	}
	l, err := ledger.New(ledger.WithWindowSize(window))
	if err != nil {
		return nil, err
	}
	s.ledger = l

	if cfg.Nodes == 0 {
		s.graph = facility.Sample(facility.WithLogger(s.log))
	} else {
		g, err := facility.New(cfg.Nodes, facility.WithLogger(s.log))
		if err != nil {
			return nil, err
		}
		for _, e := range cfg.Edges {
			g.AddEdge(e.From, e.To, e.Weight)
		}
		s.graph = g
	}

	s.log.Debug().
		Int("capacity", s.capacity).
		Int("available", s.available).
		Int("nodes", s.graph.Order()).
		Int("edges", s.graph.EdgeCount()).
		Stringer("return_policy", s.policy).
		Msg("simulation ready")

	return s, nil
}

// AddStudent registers a student arrival at the next tick.
func (s *Simulator) AddStudent(name string) (customer.Customer, error) {
	if name == "" {
		return customer.Customer{}, customer.ErrEmptyName
	}
	c, err := customer.NewStudent(s.clock.NextToken(), name, s.clock.Tick())
	if err != nil {
		return customer.Customer{}, err
	}
	if err := s.queues.EnqueueStudent(c); err != nil {
		return customer.Customer{}, err
	}
	s.logArrival(c)

	return c, nil
}

// AddFaculty registers a faculty arrival with the given priority at the next tick.
func (s *Simulator) AddFaculty(name string, priority int) (customer.Customer, error) {
	// validate before consuming a token or tick
	if name == "" {
		return customer.Customer{}, customer.ErrEmptyName
	}
	if priority < customer.MinPriority || priority > customer.MaxPriority {
		return customer.Customer{}, fmt.Errorf("%w: %d", customer.ErrBadPriority, priority)
	}
	c, err := customer.NewFaculty(s.clock.NextToken(), name, priority, s.clock.Tick())
	if err != nil {
		return customer.Customer{}, err
	}
	if err := s.queues.EnqueueFaculty(c); err != nil {
		return customer.Customer{}, err
	}
	s.logArrival(c)

	return c, nil
}

func (s *Simulator) logArrival(c customer.Customer) {
	s.log.Info().
		Int("token", c.Token).
		Stringer("role", c.Role).
		Int("priority", c.Priority).
		Int("tick", c.ArrivalTime).
		Msg("customer arrived")
}

// ServeNext dispatches the next customer and serves them.
//
// With nobody waiting it returns ErrEmptyDispatch; with no tray on the rack
// it returns ErrTraysExhausted and the customer keeps their place. In both
// cases nothing changes.
func (s *Simulator) ServeNext() (ServeResult, error) {
	if s.queues.Len() == 0 {
		s.log.Info().Msg("serve requested with empty queues")
		return ServeResult{}, ErrEmptyDispatch
	}
	if s.available <= 0 {
		s.log.Info().Int("waiting", s.queues.Len()).Msg("serve refused, trays exhausted")
		return ServeResult{}, ErrTraysExhausted
	}
	c, err := s.queues.Next()
	if err != nil {
		return ServeResult{}, err
	}

	return s.recordAndServe(c), nil
}

// recordAndServe is the only mutator of the ledger and the tray sequence.
// The caller guarantees a tray is available.
func (s *Simulator) recordAndServe(c customer.Customer) ServeResult {
	servedAt := s.clock.Tick()

	trayID := s.nextTray
	s.nextTray++
	s.trays.Insert(trayID)
	s.issued = append(s.issued, trayID)

	rec := customer.Served(c, servedAt)
	snap := s.ledger.Record(rec)
	s.available--

	res := ServeResult{
		Customer:  c,
		TrayID:    trayID,
		ServedAt:  servedAt,
		Wait:      rec.Wait(),
		Average:   snap.Average,
		WindowLen: len(snap.Window),
		Available: s.available,
	}
	s.log.Info().
		Int("token", c.Token).
		Stringer("role", c.Role).
		Int("tray", trayID).
		Int("wait", res.Wait).
		Float64("avg_wait", res.Average).
		Int("available", s.available).
		Msg("customer served")

	return res
}

// ReturnTray puts the most recently issued, not yet returned tray back on
// the rack.
func (s *Simulator) ReturnTray() (ReturnResult, error) {
	n := len(s.issued)
	if n == 0 {
		return ReturnResult{}, ErrNoTraysToReturn
	}
	id := s.issued[n-1]
	s.issued = s.issued[:n-1]

	clamped := false
	if s.policy == ClampOnReturn && s.available >= s.capacity {
		clamped = true
	} else {
		s.available++
	}
	s.log.Info().
		Int("tray", id).
		Int("available", s.available).
		Bool("clamped", clamped).
		Msg("tray returned")

	return ReturnResult{TrayID: id, Available: s.available, Clamped: clamped}, nil
}

// Restock adds n trays to the rack, never exceeding capacity, and returns
// the new availability.
func (s *Simulator) Restock(n int) (int, error) {
	if n <= 0 {
		return s.available, fmt.Errorf("%w: %d", ErrBadRestock, n)
	}
	s.available += n
	if s.available > s.capacity {
		s.available = s.capacity
	}
	s.log.Info().Int("added", n).Int("available", s.available).Msg("trays restocked")

	return s.available, nil
}

// QueueSizes returns the number of waiting faculty and students.
func (s *Simulator) QueueSizes() QueueSizes {
	f, st := s.queues.Sizes()

	return QueueSizes{Faculty: f, Students: st}
}

// Queue returns the combined waiting view, faculty first.
func (s *Simulator) Queue() []customer.Customer { return s.queues.View() }

// TrayIDs lists every tray id issued so far in ascending order.
func (s *Simulator) TrayIDs() []int { return s.trays.Sorted() }

// HasTray reports whether id was ever issued.
func (s *Simulator) HasTray(id int) bool { return s.trays.Contains(id) }

// Graph returns the facility graph. Callers must not add edges to it.
func (s *Simulator) Graph() *facility.Graph { return s.graph }

// ShortestPaths computes walking distances from src over the facility graph.
func (s *Simulator) ShortestPaths(src int, opts ...dijkstra.Option) (*dijkstra.Result, error) {
	all := append([]dijkstra.Option{dijkstra.Source(src)}, opts...)

	return dijkstra.ShortestPaths(s.graph, all...)
}

// History returns the service ledger in service order.
func (s *Simulator) History() []customer.ServedRecord { return s.ledger.Records() }

// WaitSummary reports statistics over every wait recorded so far.
func (s *Simulator) WaitSummary() (ledger.Summary, error) { return s.ledger.Summary() }

// Stats returns the current counters.
func (s *Simulator) Stats() Stats {
	avg, _ := s.ledger.RollingAverage()

	return Stats{
		Capacity:  s.capacity,
		Available: s.available,
		Issued:    s.nextTray - FirstTrayID,
		Out:       len(s.issued),
		Served:    s.ledger.Len(),
		Waiting:   s.queues.Len(),
		Tick:      s.clock.Now(),
		Average:   avg,
	}
}

// Package cafeteria simulates a single-server cafeteria: customers arrive,
// wait, are served in priority order and carry away trays, while a small
// routing model answers "how far is it from here" across the floor.
//
// What is in the box:
//
//   - clock/      logical tick counter and customer token issuer
//   - customer/   Customer and ServedRecord values
//   - dispatch/   student FIFO + faculty priority heap, faculty served first
//   - traystore/  ordered set of every tray id ever issued
//   - ledger/     append-only service history, rolling and all-time wait metrics
//   - facility/   fixed-size weighted undirected floor graph
//   - dijkstra/   single-source shortest walking distances
//   - sim/        the driver that owns all of the above for one run
//   - config/     YAML file + flag configuration
//
// The interactive front end lives in cmd/cafeteria and internal/console.
//
// Quick example:
//
//	s, _ := sim.New(sim.DefaultConfig())
//	s.AddStudent("Ana")
//	s.AddFaculty("Dr. Lee", 12)
//	r, _ := s.ServeNext() // Dr. Lee, tray #100
//
// Nothing in this module is safe for uncoordinated concurrent use: a run
// has one owner that calls every operation in sequence.
package cafeteria

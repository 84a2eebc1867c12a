// Package console is the interactive front end of the cafeteria: it shows
// the menu, reads and validates input, calls into the simulator and prints
// human-readable reports. Nothing here is machine-parseable.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cafeteria/customer"
	"github.com/katalvlaran/cafeteria/sim"
)

// Menu choices.
const (
	choiceExit = iota
	choiceAddStudent
	choiceAddFaculty
	choiceServe
	choiceReturnTray
	choiceShowQueues
	choiceTrayRecords
	choiceSearchTray
	choiceShortestPaths
	choiceRestock
	choiceSummary

	lastChoice = choiceSummary
)

// Tray ids accepted by the search prompt.
const (
	minSearchID = 0
	maxSearchID = 9999
)

// errQuit ends Run when input runs out mid-prompt.
var errQuit = errors.New("console: input closed")

// Console reads commands from in and writes reports to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
}

// New returns a Console. log receives diagnostics only; reports go to out.
func New(in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	return &Console{in: bufio.NewReader(in), out: out, log: log}
}

// SetupTrays prompts for tray capacity and starting availability and
// stores them in cfg.
func (c *Console) SetupTrays(cfg *sim.Config) error {
	capacity, err := c.readInt("Enter max tray capacity: ", sim.MinCapacity, sim.MaxCapacity)
	if err != nil {
		return err
	}
	available, err := c.readInt("Enter starting available trays: ", 0, capacity)
	if err != nil {
		return err
	}
	cfg.Capacity = capacity
	cfg.Available = available

	return nil
}

// Run executes menu commands against s until the user chooses 0 or input
// ends. Both are a clean exit and return nil.
func (c *Console) Run(s *sim.Simulator) error {
	c.printf("Welcome to Cafeteria Self-Service System!\n")
	for {
		c.printMenu()
		choice, err := c.readInt("Your choice: ", choiceExit, lastChoice)
		if err != nil {
			return c.quit(err)
		}
		if choice == choiceExit {
			c.printf("Exiting. Goodbye!\n")
			return nil
		}
		if err := c.dispatch(s, choice); err != nil {
			return c.quit(err)
		}
	}
}

func (c *Console) quit(err error) error {
	if errors.Is(err, errQuit) {
		c.log.Debug().Msg("input closed, leaving menu")
		return nil
	}

	return err
}

func (c *Console) dispatch(s *sim.Simulator, choice int) error {
	switch choice {
	case choiceAddStudent:
		return c.addStudent(s)
	case choiceAddFaculty:
		return c.addFaculty(s)
	case choiceServe:
		c.serveNext(s)
	case choiceReturnTray:
		c.returnTray(s)
	case choiceShowQueues:
		c.showQueues(s)
	case choiceTrayRecords:
		c.showTrays(s)
	case choiceSearchTray:
		return c.searchTray(s)
	case choiceShortestPaths:
		return c.shortestPaths(s)
	case choiceRestock:
		return c.restock(s)
	case choiceSummary:
		c.summary(s)
	}

	return nil
}

func (c *Console) printMenu() {
	c.printf("\n====== CAFETERIA MENU ======\n")
	c.printf("1. Add Student\n")
	c.printf("2. Add Faculty\n")
	c.printf("3. Serve Next (faculty first)\n")
	c.printf("4. Return Tray\n")
	c.printf("5. Show Queues\n")
	c.printf("6. Show Tray Records\n")
	c.printf("7. Search Tray ID\n")
	c.printf("8. Cafeteria Shortest Paths\n")
	c.printf("9. Restock Trays\n")
	c.printf("10. Service Summary\n")
	c.printf("0. Exit\n")
}

func (c *Console) addStudent(s *sim.Simulator) error {
	name, err := c.readString("Enter student name: ")
	if err != nil {
		return err
	}
	st, err := s.AddStudent(name)
	if err != nil {
		c.printf(" Could not add student: %v\n", err)
		return nil
	}
	c.printf(" Student added -> Token #%d\n", st.Token)

	return nil
}

func (c *Console) addFaculty(s *sim.Simulator) error {
	name, err := c.readString("Enter faculty name: ")
	if err != nil {
		return err
	}
	prompt := fmt.Sprintf("Enter priority (%d low - %d high): ", customer.MinPriority, customer.MaxPriority)
	pr, err := c.readInt(prompt, customer.MinPriority, customer.MaxPriority)
	if err != nil {
		return err
	}
	f, err := s.AddFaculty(name, pr)
	if err != nil {
		c.printf(" Could not add faculty: %v\n", err)
		return nil
	}
	c.printf(" Faculty added -> Token #%d | Priority %d\n", f.Token, f.Priority)

	return nil
}

func (c *Console) serveNext(s *sim.Simulator) {
	res, err := s.ServeNext()
	switch {
	case errors.Is(err, sim.ErrEmptyDispatch):
		c.printf(" No customers waiting.\n")
	case errors.Is(err, sim.ErrTraysExhausted):
		c.printf(" No trays available right now. Restock first!\n")
	case err != nil:
		c.printf(" Could not serve: %v\n", err)
	default:
		c.printf("\n Served: %s [%s] | Token #%d | Tray #%d | Wait Time = %d\n",
			res.Customer.Name, res.Customer.Role, res.Customer.Token, res.TrayID, res.Wait)
		c.printf(" Avg waiting time (last %d): %s\n", res.WindowLen, formatFloat(res.Average))
	}
}

func (c *Console) returnTray(s *sim.Simulator) {
	res, err := s.ReturnTray()
	if err != nil {
		c.printf(" No trays returned yet.\n")
		return
	}
	c.printf(" Tray #%d returned. Available trays: %d\n", res.TrayID, res.Available)
	if res.Clamped {
		c.printf(" Rack already at capacity; availability unchanged.\n")
	}
}

func (c *Console) showQueues(s *sim.Simulator) {
	q := s.QueueSizes()
	c.printf("\n--- Current Queues ---\n")
	c.printf("Faculty: %d | Students: %d\n", q.Faculty, q.Students)
}

func (c *Console) showTrays(s *sim.Simulator) {
	ids := s.TrayIDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	c.printf("%s\n", strings.Join(parts, " "))
}

func (c *Console) searchTray(s *sim.Simulator) error {
	id, err := c.readInt("Enter tray ID to search: ", minSearchID, maxSearchID)
	if err != nil {
		return err
	}
	if s.HasTray(id) {
		c.printf(" Found\n")
	} else {
		c.printf(" Not found\n")
	}

	return nil
}

func (c *Console) shortestPaths(s *sim.Simulator) error {
	last := s.Graph().Order() - 1
	src, err := c.readInt(fmt.Sprintf("Enter start node (0-%d): ", last), 0, last)
	if err != nil {
		return err
	}
	res, err := s.ShortestPaths(src)
	if err != nil {
		c.printf(" Could not compute paths: %v\n", err)
		return nil
	}
	c.printf("\n Shortest distances from node %d:\n", src)
	for v := 0; v <= last; v++ {
		if d, ok := res.Distance(v); ok {
			c.printf(" -> To node %d = %d\n", v, d)
		} else {
			c.printf(" -> To node %d = Unreachable\n", v)
		}
	}

	return nil
}

func (c *Console) restock(s *sim.Simulator) error {
	st := s.Stats()
	room := st.Capacity - st.Available
	if room == 0 {
		c.printf(" Rack is full (%d trays).\n", st.Capacity)
		return nil
	}
	n, err := c.readInt(fmt.Sprintf("Trays to add (1-%d): ", room), 1, room)
	if err != nil {
		return err
	}
	avail, err := s.Restock(n)
	if err != nil {
		c.printf(" Could not restock: %v\n", err)
		return nil
	}
	c.printf(" Restocked. Available trays: %d\n", avail)

	return nil
}

func (c *Console) summary(s *sim.Simulator) {
	st := s.Stats()
	c.printf("\n--- Service Summary ---\n")
	c.printf("Served: %d | Waiting: %d | Trays: %d/%d available, %d out\n",
		st.Served, st.Waiting, st.Available, st.Capacity, st.Out)
	sum, err := s.WaitSummary()
	if err != nil {
		c.printf("No services yet.\n")
		return
	}
	c.printf("Wait mean %s | min %s | max %s | p50 ~%s | p95 ~%s\n",
		formatFloat(sum.Mean), formatFloat(sum.Min), formatFloat(sum.Max),
		formatFloat(sum.P50), formatFloat(sum.P95))
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// formatFloat prints like a default C++ ostream: up to six significant
// digits, no trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

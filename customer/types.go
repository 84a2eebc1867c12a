// Package customer defines the people who queue in the cafeteria and the
// immutable records written once they have been served.
//
// Customers are values: once built by NewStudent or NewFaculty they are
// never mutated. A ServedRecord is derived from a Customer at service time
// and is append-only.
package customer

import (
	"errors"
	"fmt"
)

// Priority bounds for faculty customers. Students always carry priority 0.
const (
	MinPriority = 1
	MaxPriority = 20
)

// Sentinel errors for customer construction.
var (
	// ErrEmptyName indicates a customer was created without a name.
	ErrEmptyName = errors.New("customer: name is empty")

	// ErrBadPriority indicates a faculty priority outside [MinPriority, MaxPriority].
	ErrBadPriority = errors.New("customer: faculty priority out of range")

	// ErrBadToken indicates a non-positive customer token.
	ErrBadToken = errors.New("customer: token must be positive")
)

// Role distinguishes standard customers from elevated ones.
type Role int

const (
	// Student customers are served in arrival order after all faculty.
	Student Role = iota
	// Faculty customers preempt students and are ordered by priority.
	Faculty
)

// String returns "Student" or "Faculty".
func (r Role) String() string {
	switch r {
	case Student:
		return "Student"
	case Faculty:
		return "Faculty"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Customer is a single arrival waiting to be served.
type Customer struct {
	Token       int    // unique, positive, issued at arrival
	Name        string // non-empty display name
	Role        Role
	Priority    int // [MinPriority, MaxPriority] for faculty, 0 for students
	ArrivalTime int // logical tick at creation
}

// IsFaculty reports whether c has the Faculty role.
func (c Customer) IsFaculty() bool { return c.Role == Faculty }

// NewStudent builds a student customer.
func NewStudent(token int, name string, arrival int) (Customer, error) {
	if token <= 0 {
		return Customer{}, fmt.Errorf("%w: %d", ErrBadToken, token)
	}
	if name == "" {
		return Customer{}, ErrEmptyName
	}

	return Customer{Token: token, Name: name, Role: Student, ArrivalTime: arrival}, nil
}

// NewFaculty builds a faculty customer with the given priority.
// A higher priority is served earlier.
func NewFaculty(token int, name string, priority, arrival int) (Customer, error) {
	if token <= 0 {
		return Customer{}, fmt.Errorf("%w: %d", ErrBadToken, token)
	}
	if name == "" {
		return Customer{}, ErrEmptyName
	}
	if priority < MinPriority || priority > MaxPriority {
		return Customer{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadPriority, priority, MinPriority, MaxPriority)
	}

	return Customer{Token: token, Name: name, Role: Faculty, Priority: priority, ArrivalTime: arrival}, nil
}

// ServedRecord is the permanent ledger entry for a served customer.
type ServedRecord struct {
	Token     int
	Name      string
	Role      Role
	Priority  int
	ArrivedAt int
	ServedAt  int
}

// Served derives the ledger record for c served at tick servedAt.
func Served(c Customer, servedAt int) ServedRecord {
	return ServedRecord{
		Token:     c.Token,
		Name:      c.Name,
		Role:      c.Role,
		Priority:  c.Priority,
		ArrivedAt: c.ArrivalTime,
		ServedAt:  servedAt,
	}
}

// Wait returns the number of ticks the customer spent queued.
func (r ServedRecord) Wait() int { return r.ServedAt - r.ArrivedAt }

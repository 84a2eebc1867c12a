package dispatch

import (
	"errors"

	"github.com/katalvlaran/cafeteria/customer"
)

// Sentinel errors returned by Queues.
var (
	// ErrEmptyDispatch indicates Next was called with no customers waiting.
	ErrEmptyDispatch = errors.New("dispatch: no customers waiting")

	// ErrWrongRole indicates a student was offered to the faculty queue or vice versa.
	ErrWrongRole = errors.New("dispatch: customer role does not match queue")
)

// facultyPQ is a max-heap of faculty customers for container/heap.
// Ordering: higher Priority first, then smaller ArrivalTime, then smaller Token.
type facultyPQ []customer.Customer

// Len returns the number of waiting faculty.
func (pq facultyPQ) Len() int { return len(pq) }

// Less reports whether pq[i] must be served before pq[j].
func (pq facultyPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}

	return a.Token < b.Token
}

// Swap swaps two elements in the heap.
func (pq facultyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *facultyPQ) Push(x interface{}) { *pq = append(*pq, x.(customer.Customer)) }

// Pop removes the last element; called by heap.Pop.
func (pq *facultyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = customer.Customer{}
	*pq = old[:n-1]

	return item
}

package dispatch

import (
	"container/heap"
	"container/list"
	"fmt"

	"github.com/katalvlaran/cafeteria/customer"
)

// Queues is the pair of waiting lines plus the combined display view.
// The zero value is not ready for use; call New.
type Queues struct {
	faculty  facultyPQ
	students []customer.Customer // FIFO; head at index 0

	view   *list.List            // combined deque of customer.Customer
	inView map[int]*list.Element // token → element in view
}

// New returns empty queues.
func New() *Queues {
	return &Queues{
		faculty: make(facultyPQ, 0),
		view:    list.New(),
		inView:  make(map[int]*list.Element),
	}
}

// EnqueueStudent appends c to the tail of the student FIFO.
func (q *Queues) EnqueueStudent(c customer.Customer) error {
	if c.Role != customer.Student {
		return fmt.Errorf("%w: token %d is %s", ErrWrongRole, c.Token, c.Role)
	}
	q.students = append(q.students, c)
	q.inView[c.Token] = q.view.PushBack(c)

	return nil
}

// EnqueueFaculty inserts c into the faculty priority queue.
func (q *Queues) EnqueueFaculty(c customer.Customer) error {
	if c.Role != customer.Faculty {
		return fmt.Errorf("%w: token %d is %s", ErrWrongRole, c.Token, c.Role)
	}
	heap.Push(&q.faculty, c)
	q.inView[c.Token] = q.view.PushFront(c)

	return nil
}

// Enqueue routes c to the queue matching its role.
func (q *Queues) Enqueue(c customer.Customer) error {
	if c.IsFaculty() {
		return q.EnqueueFaculty(c)
	}

	return q.EnqueueStudent(c)
}

// Next removes and returns the customer to serve now: the best faculty
// member if any is waiting, otherwise the student at the head of the FIFO.
func (q *Queues) Next() (customer.Customer, error) {
	var c customer.Customer
	switch {
	case q.faculty.Len() > 0:
		c = heap.Pop(&q.faculty).(customer.Customer)
	case len(q.students) > 0:
		c = q.students[0]
		q.students[0] = customer.Customer{}
		q.students = q.students[1:]
	default:
		return customer.Customer{}, ErrEmptyDispatch
	}
	q.dropFromView(c.Token)

	return c, nil
}

// Peek returns the customer Next would return, without removing it.
func (q *Queues) Peek() (customer.Customer, error) {
	switch {
	case q.faculty.Len() > 0:
		return q.faculty[0], nil
	case len(q.students) > 0:
		return q.students[0], nil
	default:
		return customer.Customer{}, ErrEmptyDispatch
	}
}

// Sizes returns the number of waiting faculty and students.
func (q *Queues) Sizes() (faculty, students int) {
	return q.faculty.Len(), len(q.students)
}

// Len returns the total number of waiting customers.
func (q *Queues) Len() int { return q.faculty.Len() + len(q.students) }

// View returns a snapshot of the combined deque, front to back.
// Faculty appear before students, most recent faculty arrival first.
func (q *Queues) View() []customer.Customer {
	out := make([]customer.Customer, 0, q.view.Len())
	for e := q.view.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(customer.Customer))
	}

	return out
}

func (q *Queues) dropFromView(token int) {
	if e, ok := q.inView[token]; ok {
		q.view.Remove(e)
		delete(q.inView, token)
	}
}

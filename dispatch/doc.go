// Package dispatch holds the two waiting lines of the cafeteria and the
// policy that decides who is served next.
//
// Overview:
//
//   - Students wait in a FIFO and are served in arrival order.
//   - Faculty wait in a max-heap keyed by (priority descending,
//     arrival tick ascending). Equal priorities are served oldest first.
//   - Next always drains faculty before students: any waiting faculty
//     member, whatever the priority, preempts every student.
//
// A combined display view mirrors both lines as a deque: faculty are
// pushed to the front, students to the back. Dispatch removes the same
// customer from the view, so the view always holds exactly the customers
// waiting in the two primary queues. The view has no effect on ordering.
//
// Complexity:
//
//   - EnqueueStudent: O(1)
//   - EnqueueFaculty: O(log F)
//   - Next:           O(log F) for faculty, amortized O(1) for students
//   - View:           O(F + S)
//
// Errors (sentinel):
//
//   - ErrEmptyDispatch if Next is called with nobody waiting.
//   - ErrWrongRole     if a customer is offered to the other role's queue.
//
// Thread safety:
//
//   - Queues is not safe for concurrent use. Each Next removes exactly one
//     customer; callers that share a Queues must serialize access.
package dispatch

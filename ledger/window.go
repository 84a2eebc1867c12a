package ledger

// Window is a bounded FIFO. Once it holds Cap values, each Push evicts the
// oldest value. It is a ring buffer; the zero value is unusable, call NewWindow.
type Window[T any] struct {
	buf  []T
	head int // index of the oldest value
	n    int // number of values held
}

// NewWindow returns an empty Window holding at most capacity values.
// It panics if capacity < 1.
func NewWindow[T any](capacity int) *Window[T] {
	if capacity < 1 {
		panic(ErrBadWindowSize.Error())
	}

	return &Window[T]{buf: make([]T, capacity)}
}

// Push appends v. When the window is full the oldest value is evicted and
// returned with evicted=true.
func (w *Window[T]) Push(v T) (old T, evicted bool) {
	if w.n < len(w.buf) {
		w.buf[(w.head+w.n)%len(w.buf)] = v
		w.n++

		return old, false
	}
	old = w.buf[w.head]
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)

	return old, true
}

// Values returns the held values, oldest first.
func (w *Window[T]) Values() []T {
	out := make([]T, w.n)
	for i := 0; i < w.n; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}

	return out
}

// Len returns the number of values held.
func (w *Window[T]) Len() int { return w.n }

// Cap returns the maximum number of values held.
func (w *Window[T]) Cap() int { return len(w.buf) }

package symtab

// Queue is a first-in, first-out queue of names.  It does not deduplicate:
// a name pushed twice is popped twice.
type Queue struct {
	items []string

	// The index of the next item to pop.
	head int
}

// NewQueue creates a new, empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Len returns the number of items waiting in the queue.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Push appends name to the back of the queue.
func (q *Queue) Push(name string) {
	q.items = append(q.items, name)
}

// Pop removes and returns the name at the front of the queue.  The boolean is
// false if the queue is empty.
func (q *Queue) Pop() (string, bool) {
	if q.head == len(q.items) {
		return "", false
	}

	name := q.items[q.head]
	q.items[q.head] = ""
	q.head++

	// Reclaim the consumed prefix once it makes up most of the slice.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return name, true
}

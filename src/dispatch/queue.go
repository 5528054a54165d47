package dispatch

// requestQueue holds the distinct floors with a pending hall call in one
// direction, oldest first. Duplicate presses collapse into the existing entry.
type requestQueue struct {
	floors []int
}

func (q *requestQueue) Contains(floor int) bool {
	for _, f := range q.floors {
		if f == floor {
			return true
		}
	}
	return false
}

// Push appends floor unless it is already pending. Reports whether the queue
// changed.
func (q *requestQueue) Push(floor int) bool {
	if q.Contains(floor) {
		return false
	}
	q.floors = append(q.floors, floor)
	return true
}

// Remove deletes floor from the queue, preserving the order of the rest.
func (q *requestQueue) Remove(floor int) bool {
	for i, f := range q.floors {
		if f == floor {
			q.floors = append(q.floors[:i], q.floors[i+1:]...)
			return true
		}
	}
	return false
}

// PopOldest removes and returns the longest-waiting floor.
func (q *requestQueue) PopOldest() (int, bool) {
	if len(q.floors) == 0 {
		return 0, false
	}
	floor := q.floors[0]
	q.floors = q.floors[1:]
	return floor, true
}

func (q *requestQueue) Len() int {
	return len(q.floors)
}

// Snapshot returns a copy of the pending floors, oldest first.
func (q *requestQueue) Snapshot() []int {
	out := make([]int, len(q.floors))
	copy(out, q.floors)
	return out
}

package voronoi

// fortuneEvent is either a *siteEvent or a *circleEvent.
type fortuneEvent interface {
	x() float64
	y() float64
}

type siteEvent struct {
	site *Site
}

func (e *siteEvent) x() float64 { return e.site.X }
func (e *siteEvent) y() float64 { return e.site.Y }

// circleEvent fires when the sweep reaches the bottom of the circle through
// three consecutive arcs; arc is the middle one, which collapses.
type circleEvent struct {
	lowest  Vertex
	yCenter float64
	arc     *arc
}

func (e *circleEvent) x() float64 { return e.lowest.X }
func (e *circleEvent) y() float64 { return e.lowest.Y }

// center is the vertex where the collapsing arc's two edges meet.
func (e *circleEvent) center() Vertex {
	return Vertex{e.lowest.X, e.yCenter}
}

func eventLess(a, b fortuneEvent) bool {
	if a.y() != b.y() {
		return a.y() < b.y()
	}
	return a.x() < b.x()
}

// eventQueue is a binary min-heap ordered by (y, x) with a fixed capacity.
type eventQueue struct {
	items    []fortuneEvent
	capacity int
}

func newEventQueue(capacity int) *eventQueue {
	if capacity < 2 {
		capacity = 2
	}
	return &eventQueue{
		items:    make([]fortuneEvent, 0, capacity),
		capacity: capacity,
	}
}

func (q *eventQueue) Len() int {
	return len(q.items)
}

// Insert adds ev and reports false when the queue is full.
func (q *eventQueue) Insert(ev fortuneEvent) bool {
	if len(q.items) == q.capacity {
		return false
	}
	q.items = append(q.items, ev)
	q.up(len(q.items) - 1)
	return true
}

// Pop removes and returns the minimal event.
func (q *eventQueue) Pop() fortuneEvent {
	if len(q.items) == 0 {
		violate("eventQueue.Pop", "queue is empty")
	}
	min := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items[last] = nil
	q.items = q.items[:last]
	q.down(0)
	return min
}

// Peek returns the minimal event without removing it.
func (q *eventQueue) Peek() fortuneEvent {
	if len(q.items) == 0 {
		violate("eventQueue.Peek", "queue is empty")
	}
	return q.items[0]
}

// Remove deletes ev if present. It is a linear scan; the sweep uses lazy
// deletion instead.
func (q *eventQueue) Remove(ev fortuneEvent) bool {
	index := -1
	for i, item := range q.items {
		if item == ev {
			index = i
			break
		}
	}
	if index == -1 {
		return false
	}

	last := len(q.items) - 1
	q.swap(index, last)
	q.items[last] = nil
	q.items = q.items[:last]
	if index < last {
		if index > 0 && q.less(index, (index-1)/2) {
			q.up(index)
		} else {
			q.down(index)
		}
	}
	return true
}

func (q *eventQueue) less(i, j int) bool {
	return eventLess(q.items[i], q.items[j])
}

func (q *eventQueue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *eventQueue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *eventQueue) down(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		right := left + 1
		smallest := i
		if left < n && q.less(left, smallest) {
			smallest = left
		}
		if right < n && q.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}

package voronoi

import (
	"math"

	"go.uber.org/zap"
)

// fortune holds the state of one sweep. Nothing in it outlives Run.
type fortune struct {
	sites     []*Site
	queue     *eventQueue
	beachline beachLine
	// circle events whose arc lost a neighbour after the event was queued
	deleted map[*circleEvent]struct{}
	edges   []*Edge

	log Logger
}

func newFortune(sites []*Site, log Logger) *fortune {
	f := &fortune{
		sites:   sites,
		queue:   newEventQueue(5 * len(sites)),
		deleted: make(map[*circleEvent]struct{}),
		log:     log,
	}
	for _, s := range sites {
		f.enqueue(&siteEvent{site: s})
	}
	return f
}

func (f *fortune) enqueue(ev fortuneEvent) {
	if !f.queue.Insert(ev) {
		violate("enqueue", "event queue is full (capacity %d)", f.queue.capacity)
	}
}

// sweep drains the event queue and leaves the unclipped edge graph in f.edges.
func (f *fortune) sweep() {
	for f.queue.Len() != 0 {
		switch ev := f.queue.Pop().(type) {
		case *siteEvent:
			f.log.Debug("[sweep] site event", zap.Stringer("site", ev.site))
			f.addBeachSection(ev)
		case *circleEvent:
			f.log.Debug("[sweep] circle event",
				zap.Float64("x", ev.lowest.X),
				zap.Float64("y", ev.lowest.Y),
				zap.Float64("ycenter", ev.yCenter))
			f.removeBeachSection(ev)
		}
	}
}

// invalidate marks the pending circle event of a as a false alarm.
func (f *fortune) invalidate(a *arc) {
	if a.event == nil {
		return
	}
	f.deleted[a.event] = struct{}{}
	a.event = nil
}

// locate finds the arcs around x at the given sweep position. lArc == rArc
// means x falls inside that arc; otherwise x sits on the breakpoint between
// them. A nil side means the beach line ends there.
func (f *fortune) locate(x, directrix float64) (lArc, rArc *arc) {
	node := f.beachline.root
	for node != nil && lArc == nil && rArc == nil {
		dxl := leftBreakPoint(node, directrix) - x
		if greaterThanWithEpsilon(dxl, 0) {
			if node.left == nil {
				lArc, rArc = node.prev, node
			} else {
				node = node.left
			}
			continue
		}
		dxr := x - rightBreakPoint(node, directrix)
		if greaterThanWithEpsilon(dxr, 0) {
			if node.right == nil {
				lArc, rArc = node, node.next
			} else {
				node = node.right
			}
			continue
		}
		switch {
		case equalWithEpsilon(dxl, 0):
			lArc, rArc = node.prev, node
		case equalWithEpsilon(dxr, 0):
			lArc, rArc = node, node.next
		default:
			lArc, rArc = node, node
		}
	}
	return lArc, rArc
}

func (f *fortune) addBeachSection(ev *siteEvent) {
	site := ev.site
	x := site.X
	directrix := site.Y

	lArc, rArc := f.locate(x, directrix)
	if f.beachline.root != nil && lArc == nil && rArc == nil {
		violate("addBeachSection", "no arc found above site %v", site)
	}

	newArc := &arc{site: site}
	f.beachline.insertSuccessor(lArc, newArc)

	switch {
	// first arc of the beach line
	case lArc == nil && rArc == nil:
		return

	// the site splits an existing arc in two
	case lArc == rArc:
		f.invalidate(lArc)

		rArc = &arc{site: lArc.site}
		f.beachline.insertSuccessor(newArc, rArc)

		y := directrix
		if !equalWithEpsilon(lArc.site.Y, directrix) {
			y = evalParabola(lArc.site.X, lArc.site.Y, directrix, x)
		} else {
			f.log.Warn("[beach] site coincides with an existing site", zap.Stringer("site", site))
		}
		start := Vertex{x, y}

		leftEdge := newEdge(start, site, lArc.site)
		rightEdge := newEdge(start, lArc.site, site)
		leftEdge.Neighbor = rightEdge
		f.edges = append(f.edges, leftEdge)

		newArc.edge = leftEdge
		rArc.edge = rightEdge
		link(site, lArc.site)

		f.checkCircle(lArc)
		f.checkCircle(rArc)

	// the site is right of every arc; all previous sites share its y
	case rArc == nil:
		start := Vertex{(lArc.site.X + x) / 2, -math.MaxFloat64}
		downward := newEdge(start, lArc.site, site)
		e := newEdge(start, site, lArc.site)
		e.Neighbor = downward
		f.edges = append(f.edges, e)

		newArc.edge = e
		link(site, lArc.site)

	// the site is left of every arc; only reachable for a site coinciding
	// with the leftmost one
	case lArc == nil:
		start := Vertex{(rArc.site.X + x) / 2, -math.MaxFloat64}
		downward := newEdge(start, site, rArc.site)
		e := newEdge(start, rArc.site, site)
		e.Neighbor = downward
		f.edges = append(f.edges, e)

		rArc.edge = e
		link(site, rArc.site)

	// the site falls exactly on the breakpoint between two arcs
	default:
		f.invalidate(lArc)
		f.invalidate(rArc)

		vertex := circumcenter(lArc.site, site, rArc.site)
		if rArc.edge == nil {
			violate("addBeachSection", "arc of %v has no left edge", rArc.site)
		}
		rArc.edge.End = vertex

		newArc.edge = newEdge(vertex, site, lArc.site)
		rArc.edge = newEdge(vertex, rArc.site, site)
		f.edges = append(f.edges, newArc.edge, rArc.edge)

		link(site, lArc.site)
		link(site, rArc.site)

		f.checkCircle(lArc)
		f.checkCircle(rArc)
	}
}

func (f *fortune) removeBeachSection(ev *circleEvent) {
	if _, stale := f.deleted[ev]; stale {
		delete(f.deleted, ev)
		f.log.Debug("[beach] false alarm skipped", zap.Float64("y", ev.lowest.Y))
		return
	}

	a := ev.arc
	if a == nil || a.event != ev {
		violate("removeBeachSection", "circle event at %v does not own its arc", ev.lowest)
	}
	if a.prev == nil || a.next == nil {
		violate("removeBeachSection", "arc of %v lacks a neighbour", a.site)
	}

	x := ev.lowest.X
	y := ev.yCenter
	vertex := ev.center()

	// several arcs may collapse into the same vertex
	var collapsing []*arc
	prev := a.prev
	for prev.event != nil && equalWithEpsilon(x, prev.event.lowest.X) && equalWithEpsilon(y, prev.event.yCenter) {
		collapsing = append(collapsing, prev)
		prev = prev.prev
	}
	next := a.next
	for next.event != nil && equalWithEpsilon(x, next.event.lowest.X) && equalWithEpsilon(y, next.event.yCenter) {
		collapsing = append(collapsing, next)
		next = next.next
	}

	f.finishEdges(a, vertex)
	a.event = nil
	for _, c := range collapsing {
		f.finishEdges(c, vertex)
		f.invalidate(c)
	}

	f.invalidate(prev)
	f.invalidate(next)

	e := newEdge(vertex, next.site, prev.site)
	next.edge = e
	f.edges = append(f.edges, e)
	link(prev.site, next.site)

	f.beachline.remove(a)
	for _, c := range collapsing {
		f.beachline.remove(c)
	}

	f.checkCircle(prev)
	f.checkCircle(next)
}

// finishEdges ends both edges bounding a at vertex.
func (f *fortune) finishEdges(a *arc, vertex Vertex) {
	if a.edge == nil || a.next == nil || a.next.edge == nil {
		violate("finishEdges", "arc of %v is missing an adjacent edge", a.site)
	}
	a.edge.End = vertex
	a.next.edge.End = vertex
}

// checkCircle queues a circle event for a if its neighbours converge.
func (f *fortune) checkCircle(a *arc) {
	lArc := a.prev
	rArc := a.next
	if lArc == nil || rArc == nil {
		return
	}
	lSite := lArc.site
	cSite := a.site
	rSite := rArc.site
	if lSite == rSite {
		return
	}

	// the triple must turn right (y grows downward) for a to vanish
	bx := cSite.X
	by := cSite.Y
	ax := lSite.X - bx
	ay := lSite.Y - by
	cx := rSite.X - bx
	cy := rSite.Y - by
	d := ax*cy - ay*cx
	if greaterOrEqualWithEpsilon(d, 0) {
		return
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / (2 * d)
	y := (ax*hc - cx*ha) / (2 * d)
	yCenter := y + by

	ev := &circleEvent{
		lowest:  Vertex{x + bx, yCenter + math.Sqrt(x*x+y*y)},
		yCenter: yCenter,
		arc:     a,
	}
	a.event = ev
	f.enqueue(ev)
}

package voronoi

import "math"

// arc is one parabolic section of the beach line. It is also the node of the
// red-black tree that orders the beach line, so neighbours are reachable in
// O(1) through prev and next.
type arc struct {
	site *Site
	// edge traced by the breakpoint between prev and this arc. Its Left is
	// this arc's site, its Right the site of prev.
	edge  *Edge
	event *circleEvent

	parent, left, right *arc
	prev, next          *arc
	red                 bool
}

// leftBreakPoint returns the x of the breakpoint between a and its left
// neighbour for the sweep line at directrix.
func leftBreakPoint(a *arc, directrix float64) float64 {
	site := a.site
	rfocx := site.X
	rfocy := site.Y
	pby2 := rfocy - directrix
	// parabola degenerates into a vertical line
	if equalWithEpsilon(pby2, 0) {
		return rfocx
	}

	lArc := a.prev
	if lArc == nil {
		return math.Inf(-1)
	}
	site = lArc.site
	lfocx := site.X
	lfocy := site.Y
	plby2 := lfocy - directrix
	if equalWithEpsilon(plby2, 0) {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if !equalWithEpsilon(lfocy, rfocy) {
		return (-b+math.Sqrt(b*b-2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)))/aby2 + rfocx
	}
	return (rfocx + lfocx) / 2
}

// rightBreakPoint returns the x of the breakpoint between a and its right
// neighbour.
func rightBreakPoint(a *arc, directrix float64) float64 {
	if equalWithEpsilon(a.site.Y, directrix) {
		return a.site.X
	}
	if a.next != nil {
		return leftBreakPoint(a.next, directrix)
	}
	return math.Inf(1)
}

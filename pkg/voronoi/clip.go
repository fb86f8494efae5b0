package voronoi

// outcode bits
const (
	outLeft   = 0x1
	outRight  = 0x2
	outBottom = 0x4
	outTop    = 0x8
)

// outCode classifies v against the box. A coordinate within Epsilon of a
// boundary counts as inside that boundary.
func outCode(v Vertex, bbox BoundingBox) int {
	code := 0
	switch {
	case equalWithEpsilon(v.X, bbox.MinX) || equalWithEpsilon(v.X, bbox.MaxX):
	case v.X < bbox.MinX:
		code |= outLeft
	case v.X > bbox.MaxX:
		code |= outRight
	}

	switch {
	case equalWithEpsilon(v.Y, bbox.MinY) || equalWithEpsilon(v.Y, bbox.MaxY):
	case v.Y < bbox.MinY:
		code |= outBottom
	case v.Y > bbox.MaxY:
		code |= outTop
	}
	return code
}

// clipEdges clips every edge to bbox in place and returns the survivors.
func clipEdges(edges []*Edge, bbox BoundingBox) []*Edge {
	kept := edges[:0]
	for _, e := range edges {
		if !clipEdge(e, bbox) {
			continue
		}
		if e.Start.Equal(e.End) {
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(edges); i++ {
		edges[i] = nil
	}
	return kept
}

// clipEdge clips e, then its Neighbor, and merges both halves into e.
func clipEdge(e *Edge, bbox BoundingBox) bool {
	var accept bool
	switch {
	case e.degenerate():
	case e.IsRay():
		accept = clipRay(e, bbox)
	default:
		accept = clipSegment(e, bbox)
	}

	if e.Neighbor != nil {
		valid := clipEdge(e.Neighbor, bbox)
		switch {
		case accept && valid:
			e.Start = e.Neighbor.End
		case !accept && valid:
			e.Start = e.Neighbor.End
			e.End = e.Neighbor.Start
			accept = true
		}
	}
	return accept
}

// clipSegment is Cohen-Sutherland on a finished edge.
func clipSegment(e *Edge, bbox BoundingBox) bool {
	start := outCode(e.Start, bbox)
	end := outCode(e.End, bbox)

	for {
		if start|end == 0 {
			return true
		}
		if start&end != 0 {
			return false
		}

		s, t := e.Start, e.End
		var v Vertex
		code := start
		if code == 0 {
			code = end
		}

		switch {
		case code&outTop != 0:
			v = Vertex{s.X + (t.X-s.X)*(bbox.MaxY-s.Y)/(t.Y-s.Y), bbox.MaxY}
		case code&outBottom != 0:
			v = Vertex{s.X + (t.X-s.X)*(bbox.MinY-s.Y)/(t.Y-s.Y), bbox.MinY}
		case code&outRight != 0:
			v = Vertex{bbox.MaxX, s.Y + (t.Y-s.Y)*(bbox.MaxX-s.X)/(t.X-s.X)}
		case code&outLeft != 0:
			v = Vertex{bbox.MinX, s.Y + (t.Y-s.Y)*(bbox.MinX-s.X)/(t.X-s.X)}
		}

		if code == start {
			e.Start = v
			start = outCode(v, bbox)
		} else {
			e.End = v
			end = outCode(v, bbox)
		}
	}
}

// clipRay turns a ray into a segment inside bbox.
func clipRay(e *Edge, bbox BoundingBox) bool {
	start := e.Start
	horizontal := equalWithEpsilon(e.slopeRise, 0)
	vertical := equalWithEpsilon(e.slopeRun, 0)

	switch {
	case horizontal:
		if !within(start.Y, bbox.MinY, bbox.MaxY) {
			return false
		}
		if e.slopeRun > 0 && greaterThanWithEpsilon(start.X, bbox.MaxX) {
			return false
		}
		if e.slopeRun < 0 && lessThanWithEpsilon(start.X, bbox.MinX) {
			return false
		}
		if within(start.X, bbox.MinX, bbox.MaxX) {
			if e.slopeRun > 0 {
				e.End = Vertex{bbox.MaxX, start.Y}
			} else {
				e.End = Vertex{bbox.MinX, start.Y}
			}
		} else if e.slopeRun > 0 {
			e.Start = Vertex{bbox.MinX, start.Y}
			e.End = Vertex{bbox.MaxX, start.Y}
		} else {
			e.Start = Vertex{bbox.MaxX, start.Y}
			e.End = Vertex{bbox.MinX, start.Y}
		}
		return true

	case vertical:
		if !within(start.X, bbox.MinX, bbox.MaxX) {
			return false
		}
		if e.slopeRise > 0 && greaterThanWithEpsilon(start.Y, bbox.MaxY) {
			return false
		}
		if e.slopeRise < 0 && lessThanWithEpsilon(start.Y, bbox.MinY) {
			return false
		}
		if within(start.Y, bbox.MinY, bbox.MaxY) {
			if e.slopeRise > 0 {
				e.End = Vertex{start.X, bbox.MaxY}
			} else {
				e.End = Vertex{start.X, bbox.MinY}
			}
		} else if e.slopeRise > 0 {
			e.Start = Vertex{start.X, bbox.MinY}
			e.End = Vertex{start.X, bbox.MaxY}
		} else {
			e.Start = Vertex{start.X, bbox.MaxY}
			e.End = Vertex{start.X, bbox.MinY}
		}
		return true
	}

	top := Vertex{e.calcX(bbox.MaxY), bbox.MaxY}
	bottom := Vertex{e.calcX(bbox.MinY), bbox.MinY}
	left := Vertex{bbox.MinX, e.calcY(bbox.MinX)}
	right := Vertex{bbox.MaxX, e.calcY(bbox.MaxX)}

	candidates := make([]Vertex, 0, 4)
	add := func(v Vertex) {
		// a ray through a corner hits two boundaries at the same point
		for _, c := range candidates {
			if c.Equal(v) {
				return
			}
		}
		// drop intersections behind the start
		ax := v.X - start.X
		ay := v.Y - start.Y
		if e.slopeRun*ax+e.slopeRise*ay < 0 {
			return
		}
		candidates = append(candidates, v)
	}
	if within(top.X, bbox.MinX, bbox.MaxX) {
		add(top)
	}
	if within(bottom.X, bbox.MinX, bbox.MaxX) {
		add(bottom)
	}
	if within(left.Y, bbox.MinY, bbox.MaxY) {
		add(left)
	}
	if within(right.Y, bbox.MinY, bbox.MaxY) {
		add(right)
	}

	switch len(candidates) {
	case 2:
		a, b := candidates[0], candidates[1]
		if a.dist2(start) > b.dist2(start) {
			a, b = b, a
		}
		e.Start = a
		e.End = b
		return true
	case 1:
		// a start outside the box that meets it in one point only grazes a corner
		if !bbox.Contains(start) {
			return false
		}
		e.End = candidates[0]
		return true
	}
	return false
}

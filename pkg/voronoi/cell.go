package voronoi

import "fmt"

// Site is an input point. Cell and Neighbors are written by Run and stay
// valid until the caller drops the diagram.
type Site struct {
	X float64
	Y float64

	// Cell holds every returned edge that has this site as Left or Right.
	Cell []*Edge
	// Neighbors holds the sites across each bisector met during the sweep.
	Neighbors []*Site

	// Tag and Data are carried through untouched.
	Tag  int64
	Data any
}

func NewSite(x, y float64) *Site {
	return &Site{X: x, Y: y}
}

func (s *Site) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%g, %g)", s.X, s.Y)
}

// Vertex returns the site position.
func (s *Site) Vertex() Vertex {
	return Vertex{s.X, s.Y}
}

func (s *Site) reset() {
	s.Cell = nil
	s.Neighbors = nil
}

func (s *Site) hasNeighbor(o *Site) bool {
	for _, n := range s.Neighbors {
		if n == o {
			return true
		}
	}
	return false
}

// link records a and b as neighbors of each other.
func link(a, b *Site) {
	if !a.hasNeighbor(b) {
		a.Neighbors = append(a.Neighbors, b)
	}
	if !b.hasNeighbor(a) {
		b.Neighbors = append(b.Neighbors, a)
	}
}

// fillCells attaches every surviving edge to both of its sites.
func fillCells(edges []*Edge) {
	for _, e := range edges {
		e.Left.Cell = append(e.Left.Cell, e)
		e.Right.Cell = append(e.Right.Cell, e)
	}
}

package voronoi

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for every equality and ordering test in the
// package: outcodes, slope-zero checks and range containment.
const Epsilon = 1e-9

// Vertex is an immutable point in the plane.
type Vertex struct {
	X float64
	Y float64
}

// NoVertex marks an endpoint that has not been computed yet.
var NoVertex = Vertex{math.Inf(1), math.Inf(1)}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Equal reports whether both coordinates match within Epsilon.
func (v Vertex) Equal(o Vertex) bool {
	return equalWithEpsilon(v.X, o.X) && equalWithEpsilon(v.Y, o.Y)
}

func (v Vertex) isSet() bool {
	return v != NoVertex
}

func (v Vertex) dist2(o Vertex) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func lessThanWithEpsilon(a, b float64) bool {
	return b-a > Epsilon
}

func greaterThanWithEpsilon(a, b float64) bool {
	return a-b > Epsilon
}

func greaterOrEqualWithEpsilon(a, b float64) bool {
	return a > b || equalWithEpsilon(a, b)
}

func lessOrEqualWithEpsilon(a, b float64) bool {
	return a < b || equalWithEpsilon(a, b)
}

// within reports a <= x <= b with tolerance on both ends.
func within(x, a, b float64) bool {
	return greaterOrEqualWithEpsilon(x, a) && lessOrEqualWithEpsilon(x, b)
}

// BoundingBox is the clipping rectangle [MinX,MaxX] x [MinY,MaxY].
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Contains reports whether v lies inside the box, boundary included, up to Epsilon.
func (b BoundingBox) Contains(v Vertex) bool {
	return within(v.X, b.MinX, b.MaxX) && within(v.Y, b.MinY, b.MaxY)
}

// Edge is one bisector between the sites Left and Right. While End is
// NoVertex the edge is a ray leaving Start. Neighbor is the other half of
// the same bisector, traced in the opposite direction; the clipper merges
// both halves into a single segment.
type Edge struct {
	Start    Vertex
	End      Vertex
	Left     *Site
	Right    *Site
	Neighbor *Edge

	// direction of the ray is (slopeRun, slopeRise)
	slopeRise float64
	slopeRun  float64
	hasSlope  bool
	slope     float64
	intercept float64
}

func newEdge(start Vertex, left, right *Site) *Edge {
	e := &Edge{
		Start: start,
		End:   NoVertex,
		Left:  left,
		Right: right,
	}

	// negative reciprocal of the slope of the segment left -> right
	e.slopeRise = left.X - right.X
	e.slopeRun = -(left.Y - right.Y)

	if equalWithEpsilon(e.slopeRise, 0) || equalWithEpsilon(e.slopeRun, 0) {
		return e
	}
	e.hasSlope = true
	e.slope = e.slopeRise / e.slopeRun
	e.intercept = start.Y - e.slope*start.X
	return e
}

// degenerate reports whether Left and Right coincide, leaving the bisector
// without a direction.
func (e *Edge) degenerate() bool {
	return equalWithEpsilon(e.slopeRise, 0) && equalWithEpsilon(e.slopeRun, 0)
}

// IsRay reports whether the edge still lacks an end point.
func (e *Edge) IsRay() bool {
	return !e.End.isSet()
}

// Length is the euclidean length of a finished edge.
func (e *Edge) Length() float64 {
	if e.IsRay() {
		return math.Inf(1)
	}
	return math.Sqrt(e.Start.dist2(e.End))
}

func (e *Edge) String() string {
	return fmt.Sprintf("%v -> %v [%v | %v]", e.Start, e.End, e.Left, e.Right)
}

func (e *Edge) calcY(x float64) float64 {
	return e.slope*x + e.intercept
}

func (e *Edge) calcX(y float64) float64 {
	return (y - e.intercept) / e.slope
}

// circumcenter of the triangle a, b, c. The caller guarantees the points
// are not collinear.
func circumcenter(a, b, c *Site) Vertex {
	ax, ay := a.X, a.Y
	bx := b.X - ax
	by := b.Y - ay
	cx := c.X - ax
	cy := c.Y - ay
	d := 2 * (bx*cy - by*cx)
	hb := bx*bx + by*by
	hc := cx*cx + cy*cy
	return Vertex{(cy*hb-by*hc)/d + ax, (bx*hc-cx*hb)/d + ay}
}

// evalParabola returns the y of the parabola with the given focus and
// directrix at x.
func evalParabola(focusX, focusY, directrix, x float64) float64 {
	return 0.5 * ((x-focusX)*(x-focusX)/(focusY-directrix) + focusY + directrix)
}

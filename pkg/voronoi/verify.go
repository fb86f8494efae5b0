package voronoi

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// verifyTolerance is looser than Epsilon: distances are compared after the
// clipper has interpolated along the bisector.
const verifyTolerance = 1e-6

// Verify checks a diagram returned by Run against bbox: both ends inside the
// box, both ends equidistant from Left and Right, and the adjacency recorded
// on the sites. It returns every violation found.
func Verify(edges []*Edge, bbox BoundingBox) error {
	var err error
	for i, e := range edges {
		if e.IsRay() || !e.Start.isSet() {
			err = multierr.Append(err, fmt.Errorf("edge %d is unbounded", i))
			continue
		}
		if e.Left == nil || e.Right == nil {
			err = multierr.Append(err, fmt.Errorf("edge %d misses a site", i))
			continue
		}
		for _, v := range []Vertex{e.Start, e.End} {
			if !bbox.Contains(v) {
				err = multierr.Append(err, fmt.Errorf("edge %d: %v lies outside the box", i, v))
			}
			dl := math.Sqrt(v.dist2(e.Left.Vertex()))
			dr := math.Sqrt(v.dist2(e.Right.Vertex()))
			if math.Abs(dl-dr) > verifyTolerance*math.Max(1, math.Max(dl, dr)) {
				err = multierr.Append(err, fmt.Errorf("edge %d: %v is %g from %v but %g from %v", i, v, dl, e.Left, dr, e.Right))
			}
		}
		if !e.Left.hasNeighbor(e.Right) || !e.Right.hasNeighbor(e.Left) {
			err = multierr.Append(err, fmt.Errorf("edge %d: %v and %v are not neighbors", i, e.Left, e.Right))
		}
		if !inCell(e.Left, e) || !inCell(e.Right, e) {
			err = multierr.Append(err, fmt.Errorf("edge %d is missing from a site cell", i))
		}
	}
	return err
}

func inCell(s *Site, e *Edge) bool {
	for _, c := range s.Cell {
		if c == e {
			return true
		}
	}
	return false
}

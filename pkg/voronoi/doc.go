// Package voronoi computes the Voronoi diagram of a set of sites clipped to a
// rectangle, using Steven Fortune's sweep-line algorithm.
//
// The sweep line moves towards increasing y. Site and circle events are kept
// in a fixed-capacity binary heap; the beach line is an intrusive red-black
// tree whose order is decided from parabola breakpoints at the current sweep
// position. Circle events that become false alarms are not removed from the
// heap but marked and skipped when popped.
//
// Every bisector is traced as two halves growing in opposite directions. The
// clipper cuts each half to the bounding box and stitches the halves back into
// one segment.
//
//	sites := []*voronoi.Site{voronoi.NewSite(0, 0), voronoi.NewSite(10, 0)}
//	edges, err := voronoi.Run(sites, 0, 0, 10, 10)
//
// Coincident sites are not supported: they are logged and the bisector
// between them is dropped.
//
// All comparisons use the absolute tolerance Epsilon. Inputs whose site
// spacing approaches it (coordinates around 1e-5 and below) can lose edge
// pieces; scale such inputs up before calling Run.
package voronoi

package voronoi_test

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-fortune/pkg/logger"
	"github.com/0x0FACED/go-fortune/pkg/voronoi"
)

func sitesOf(points ...voronoi.Vertex) []*voronoi.Site {
	sites := make([]*voronoi.Site, len(points))
	for i, p := range points {
		sites[i] = voronoi.NewSite(p.X, p.Y)
	}
	return sites
}

func randomSites(seed int64, n int, w, h float64) []*voronoi.Site {
	r := rand.New(rand.NewSource(seed))
	sites := make([]*voronoi.Site, n)
	for i := range sites {
		sites[i] = voronoi.NewSite(r.Float64()*w, r.Float64()*h)
	}
	return sites
}

func verifyDiagram(t *testing.T, edges []*voronoi.Edge, bbox voronoi.BoundingBox, edgesCount int) {
	t.Helper()
	if edgesCount >= 0 {
		test.T(t, len(edges), edgesCount, "edge count")
	}
	test.Error(t, voronoi.Verify(edges, bbox))
}

func TestSingleSite(t *testing.T) {
	sites := sitesOf(voronoi.Vertex{5, 5})
	edges, err := voronoi.Run(sites, 0, 0, 10, 10)
	test.Error(t, err)
	test.T(t, len(edges), 0)
	test.T(t, len(sites[0].Cell), 0)
}

func TestNoSites(t *testing.T) {
	edges, err := voronoi.Run(nil, 0, 0, 10, 10)
	test.Error(t, err)
	test.T(t, len(edges), 0)
}

func TestTwoSites(t *testing.T) {
	sites := sitesOf(voronoi.Vertex{0, 0}, voronoi.Vertex{10, 0})
	edges, err := voronoi.Run(sites, 0, 0, 10, 10)
	test.Error(t, err)
	verifyDiagram(t, edges, voronoi.NewBoundingBox(0, 0, 10, 10), 1)

	e := edges[0]
	test.That(t, e.Start.Equal(voronoi.Vertex{5, 0}), e.Start)
	test.That(t, e.End.Equal(voronoi.Vertex{5, 10}), e.End)
	test.That(t, (e.Left == sites[1] && e.Right == sites[0]), "left is the site right of the upward edge")

	test.T(t, sites[0].Neighbors, []*voronoi.Site{sites[1]})
	test.T(t, sites[1].Neighbors, []*voronoi.Site{sites[0]})
	test.T(t, sites[0].Cell, []*voronoi.Edge{e})
	test.T(t, sites[1].Cell, []*voronoi.Edge{e})
}

func TestTwoSitesStacked(t *testing.T) {
	sites := sitesOf(voronoi.Vertex{5, 2}, voronoi.Vertex{5, 8})
	edges, err := voronoi.Run(sites, 0, 0, 10, 10)
	test.Error(t, err)
	verifyDiagram(t, edges, voronoi.NewBoundingBox(0, 0, 10, 10), 1)

	e := edges[0]
	test.Float(t, e.Start.Y, 5)
	test.Float(t, e.End.Y, 5)
	test.Float(t, math.Abs(e.End.X-e.Start.X), 10)
}

func TestThreeSites(t *testing.T) {
	sites := sitesOf(voronoi.Vertex{0, 0}, voronoi.Vertex{10, 0}, voronoi.Vertex{5, 10})
	bbox := voronoi.NewBoundingBox(-20, -20, 30, 30)
	edges, err := voronoi.Run(sites, bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY)
	test.Error(t, err)
	verifyDiagram(t, edges, bbox, 3)

	// every site pair has exactly one edge
	pairs := map[[2]*voronoi.Site]int{}
	for _, e := range edges {
		a, b := e.Left, e.Right
		if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
			a, b = b, a
		}
		pairs[[2]*voronoi.Site{a, b}]++
	}
	test.T(t, len(pairs), 3)

	// all edges meet at the circumcenter
	center := voronoi.Vertex{5, 3.75}
	for _, e := range edges {
		test.That(t, e.Start.Equal(center) || e.End.Equal(center), e)
	}
	for _, s := range sites {
		test.T(t, len(s.Cell), 2)
		test.T(t, len(s.Neighbors), 2)
	}
}

func TestSquare(t *testing.T) {
	// four cocircular sites meet in a single vertex
	sites := sitesOf(voronoi.Vertex{2, 2}, voronoi.Vertex{8, 2}, voronoi.Vertex{2, 8}, voronoi.Vertex{8, 8})
	bbox := voronoi.NewBoundingBox(0, 0, 10, 10)
	edges, err := voronoi.Run(sites, 0, 0, 10, 10)
	test.Error(t, err)
	verifyDiagram(t, edges, bbox, 4)
	for _, e := range edges {
		test.That(t, e.Start.Equal(voronoi.Vertex{5, 5}) || e.End.Equal(voronoi.Vertex{5, 5}), e)
	}
}

func TestHorizontalRow(t *testing.T) {
	var sites []*voronoi.Site
	for i := 0; i < 20; i++ {
		sites = append(sites, voronoi.NewSite(float64(i)*5+2.5, 50))
	}
	bbox := voronoi.NewBoundingBox(0, 0, 100, 100)
	edges, err := voronoi.Run(sites, 0, 0, 100, 100)
	test.Error(t, err)
	verifyDiagram(t, edges, bbox, 19)
	for _, e := range edges {
		test.Float(t, e.Start.X, e.End.X)
		test.Float(t, math.Abs(e.End.Y-e.Start.Y), 100)
	}
}

func TestVerticalColumn(t *testing.T) {
	var sites []*voronoi.Site
	for i := 0; i < 20; i++ {
		sites = append(sites, voronoi.NewSite(50, float64(i)*5+2.5))
	}
	bbox := voronoi.NewBoundingBox(0, 0, 100, 100)
	edges, err := voronoi.Run(sites, 0, 0, 100, 100)
	test.Error(t, err)
	verifyDiagram(t, edges, bbox, 19)
	for _, e := range edges {
		test.Float(t, e.Start.Y, e.End.Y)
	}
}

func TestGrid(t *testing.T) {
	var sites []*voronoi.Site
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			sites = append(sites, voronoi.NewSite(float64(i)*10+5, float64(j)*10+5))
		}
	}
	bbox := voronoi.NewBoundingBox(0, 0, 100, 100)
	edges, err := voronoi.Run(sites, 0, 0, 100, 100)
	test.Error(t, err)
	// 9 inner lines per axis, each split into 10 unit segments
	verifyDiagram(t, edges, bbox, 180)
}

func TestRandomProperties(t *testing.T) {
	for _, n := range []int{3, 10, 50, 200, 1000} {
		sites := randomSites(int64(n), n, 1000, 1000)
		bbox := voronoi.NewBoundingBox(0, 0, 1000, 1000)
		edges, err := voronoi.Run(sites, 0, 0, 1000, 1000)
		test.Error(t, err)
		verifyDiagram(t, edges, bbox, -1)

		// planar graph: at most 3n-6 edges
		test.That(t, len(edges) <= 3*n, "too many edges")
		for _, s := range sites {
			test.That(t, len(s.Cell) > 0, "every site has a cell")
		}
	}
}

func TestSmallBox(t *testing.T) {
	// box much smaller than the site spread clips most edges away
	sites := randomSites(5, 100, 1000, 1000)
	bbox := voronoi.NewBoundingBox(400, 400, 600, 600)
	edges, err := voronoi.Run(sites, bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY)
	test.Error(t, err)
	verifyDiagram(t, edges, bbox, -1)
	test.That(t, len(edges) > 0)
}

func TestTinyScaleScaledUp(t *testing.T) {
	// sites 1e-5 apart sit close to Epsilon; scaled up they are exact
	const scale = 1e6
	tiny := randomSites(25, 25, 1e-5, 1e-5)
	sites := make([]*voronoi.Site, len(tiny))
	for i, s := range tiny {
		sites[i] = voronoi.NewSite(s.X*scale, s.Y*scale)
	}
	bbox := voronoi.NewBoundingBox(0, 0, 1e-5*scale, 1e-5*scale)
	edges, err := voronoi.Run(sites, bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY)
	test.Error(t, err)
	verifyDiagram(t, edges, bbox, -1)
	for _, s := range sites {
		test.That(t, len(s.Cell) > 0, "every site has a cell")
	}
}

func TestDeterminism(t *testing.T) {
	sites := randomSites(99, 300, 500, 500)
	first, err := voronoi.Run(sites, 0, 0, 500, 500)
	test.Error(t, err)
	type snapshot struct {
		start, end  voronoi.Vertex
		left, right *voronoi.Site
	}
	snap := func(edges []*voronoi.Edge) []snapshot {
		out := make([]snapshot, len(edges))
		for i, e := range edges {
			out[i] = snapshot{e.Start, e.End, e.Left, e.Right}
		}
		return out
	}
	want := snap(first)
	cells := len(sites[0].Cell)

	second, err := voronoi.Run(sites, 0, 0, 500, 500)
	test.Error(t, err)
	test.T(t, snap(second), want)
	// cells are rebuilt, not appended to
	test.T(t, len(sites[0].Cell), cells)
}

func TestTagsAreKept(t *testing.T) {
	sites := sitesOf(voronoi.Vertex{1, 1}, voronoi.Vertex{9, 9})
	sites[0].Tag = 7
	sites[1].Data = "payload"
	edges, err := voronoi.Run(sites, 0, 0, 10, 10)
	test.Error(t, err)
	test.T(t, len(edges), 1)
	test.T(t, sites[0].Tag, int64(7))
	test.T(t, sites[1].Data, any("payload"))
}

func TestCoincidentSites(t *testing.T) {
	sites := sitesOf(voronoi.Vertex{2, 2}, voronoi.Vertex{5, 5}, voronoi.Vertex{5, 5}, voronoi.Vertex{8, 3})
	edges, err := voronoi.Run(sites, 0, 0, 10, 10)
	test.Error(t, err)
	for _, e := range edges {
		test.That(t, !(e.Left.X == e.Right.X && e.Left.Y == e.Right.Y), "no bisector between coincident sites")
	}
}

func TestRunLogs(t *testing.T) {
	log := logger.NewBuffered(logger.WithLevel(zapcore.DebugLevel), logger.WithoutColor())
	sites := sitesOf(voronoi.Vertex{2, 2}, voronoi.Vertex{5, 5}, voronoi.Vertex{5, 5}, voronoi.Vertex{8, 3})
	_, err := voronoi.Run(sites, 0, 0, 10, 10, voronoi.WithLogger(log))
	test.Error(t, err)

	log.UpdateLogs()
	test.T(t, len(log.Logs), 1)
	out := log.Logs[0]
	test.That(t, strings.Contains(out, "fortune started"), out)
	test.That(t, strings.Contains(out, "coincident sites"), out)
	test.That(t, strings.Contains(out, "edges clipped"), out)
}

func TestInvalidInput(t *testing.T) {
	var tests = []struct {
		name  string
		sites []*voronoi.Site
		box   [4]float64
	}{
		{"inverted x", sitesOf(voronoi.Vertex{1, 1}), [4]float64{10, 0, 0, 10}},
		{"flat y", sitesOf(voronoi.Vertex{1, 1}), [4]float64{0, 5, 10, 5}},
		{"nan bound", sitesOf(voronoi.Vertex{1, 1}), [4]float64{math.NaN(), 0, 10, 10}},
		{"inf bound", sitesOf(voronoi.Vertex{1, 1}), [4]float64{0, 0, math.Inf(1), 10}},
		{"nan site", sitesOf(voronoi.Vertex{math.NaN(), 1}), [4]float64{0, 0, 10, 10}},
		{"inf site", sitesOf(voronoi.Vertex{1, math.Inf(-1)}), [4]float64{0, 0, 10, 10}},
		{"nil site", []*voronoi.Site{voronoi.NewSite(1, 1), nil}, [4]float64{0, 0, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := voronoi.Run(tt.sites, tt.box[0], tt.box[1], tt.box[2], tt.box[3])
			test.That(t, err != nil, "expected an error")
			test.That(t, errors.Is(err, voronoi.ErrInvalidInput), err)
			test.T(t, len(edges), 0)
		})
	}
}

func BenchmarkRun1000(b *testing.B) {
	sites := randomSites(1234567, 1000, 1000, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := voronoi.Run(sites, 0, 0, 1000, 1000); err != nil {
			b.Fatal(err)
		}
	}
}

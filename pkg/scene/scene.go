// Package scene loads and generates the inputs of a Voronoi run: a bounding
// box and a list of sites.
package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/0x0FACED/go-fortune/pkg/voronoi"
)

var ErrEmptyScene = errors.New("scene has no sites")

type Bounds struct {
	MinX float64 `toml:"min_x" json:"min_x"`
	MinY float64 `toml:"min_y" json:"min_y"`
	MaxX float64 `toml:"max_x" json:"max_x"`
	MaxY float64 `toml:"max_y" json:"max_y"`
}

type Point struct {
	X   float64 `toml:"x" json:"x"`
	Y   float64 `toml:"y" json:"y"`
	Tag int64   `toml:"tag" json:"tag,omitempty"`
}

// Scene is the content of a scene file:
//
//	[bounds]
//	min_x = 0.0
//	min_y = 0.0
//	max_x = 100.0
//	max_y = 100.0
//
//	[[sites]]
//	x = 10.0
//	y = 20.0
//	tag = 1
type Scene struct {
	Bounds Bounds  `toml:"bounds" json:"bounds"`
	Sites  []Point `toml:"sites" json:"sites"`
}

// Load reads a scene file from path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a scene from r.
func Decode(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if len(s.Sites) == 0 {
		return nil, ErrEmptyScene
	}
	return &s, nil
}

// Encode writes s in the scene file format.
func (s *Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// VoronoiSites converts the scene points into fresh engine sites, keeping
// each point's tag.
func (s *Scene) VoronoiSites() []*voronoi.Site {
	sites := make([]*voronoi.Site, len(s.Sites))
	for i, p := range s.Sites {
		site := voronoi.NewSite(p.X, p.Y)
		site.Tag = p.Tag
		sites[i] = site
	}
	return sites
}

func (s *Scene) BoundingBox() voronoi.BoundingBox {
	return voronoi.NewBoundingBox(s.Bounds.MinX, s.Bounds.MinY, s.Bounds.MaxX, s.Bounds.MaxY)
}

// Random scatters n sites uniformly over [0,width] x [0,height]. The same
// seed always gives the same scene.
func Random(n int, width, height float64, seed int64) *Scene {
	r := rand.New(rand.NewSource(seed))
	s := &Scene{
		Bounds: Bounds{MaxX: width, MaxY: height},
		Sites:  make([]Point, n),
	}
	for i := range s.Sites {
		s.Sites[i] = Point{
			X:   r.Float64() * width,
			Y:   r.Float64() * height,
			Tag: int64(i),
		}
	}
	return s
}

// Grid places n sites at the centers of a near-square grid over
// [0,width] x [0,height], filling it row by row.
func Grid(n int, width, height float64) *Scene {
	s := &Scene{
		Bounds: Bounds{MaxX: width, MaxY: height},
		Sites:  make([]Point, 0, n),
	}
	if n <= 0 {
		return s
	}

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// the last row may be short
			if len(s.Sites) == n {
				return s
			}
			s.Sites = append(s.Sites, Point{
				X:   xStep/2 + float64(j)*xStep,
				Y:   yStep/2 + float64(i)*yStep,
				Tag: int64(len(s.Sites)),
			})
		}
	}
	return s
}

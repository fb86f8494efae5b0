package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fortune/pkg/scene"
	"github.com/0x0FACED/go-fortune/pkg/voronoi"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type runOpts struct {
	input  inputOpts
	format string
}

func newRunCmd() *cobra.Command {
	opts := runOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute a Voronoi diagram and print its edges",
		Example: `  fortune run --scene sites.toml
  fortune run --random 100 --seed 7 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
			}
			return runRun(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}
	addInputFlags(cmd, &opts.input)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	return cmd
}

// diagram is computed once per command from the selected input.
type diagram struct {
	scene *scene.Scene
	sites []*voronoi.Site
	bbox  voronoi.BoundingBox
	edges []*voronoi.Edge
}

func compute(ctx context.Context, in *inputOpts) (*diagram, error) {
	log := loggerFromContext(ctx)

	sc, err := in.load()
	if err != nil {
		return nil, err
	}
	d := &diagram{
		scene: sc,
		sites: sc.VoronoiSites(),
		bbox:  sc.BoundingBox(),
	}

	start := time.Now()
	d.edges, err = voronoi.Run(d.sites, d.bbox.MinX, d.bbox.MinY, d.bbox.MaxX, d.bbox.MaxY, voronoi.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("[cli] diagram computed",
		zap.Int("sites", len(d.sites)),
		zap.Int("edges", len(d.edges)),
		zap.Duration("elapsed", time.Since(start).Round(time.Microsecond)))
	return d, nil
}

func runRun(ctx context.Context, w io.Writer, opts *runOpts) error {
	d, err := compute(ctx, &opts.input)
	if err != nil {
		return err
	}
	if opts.format == formatJSON {
		return writeJSON(w, d)
	}
	return writeText(w, d)
}

// writeText prints one edge per line: start, end and the tags of both sites.
func writeText(w io.Writer, d *diagram) error {
	for _, e := range d.edges {
		_, err := fmt.Fprintf(w, "%g %g %g %g %d %d\n",
			e.Start.X, e.Start.Y, e.End.X, e.End.Y, e.Left.Tag, e.Right.Tag)
		if err != nil {
			return err
		}
	}
	return nil
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonEdge struct {
	Start  jsonPoint `json:"start"`
	End    jsonPoint `json:"end"`
	Left   int64     `json:"left"`
	Right  int64     `json:"right"`
	Length float64   `json:"length"`
}

type jsonSite struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Tag       int64   `json:"tag"`
	Neighbors []int64 `json:"neighbors"`
}

type jsonDiagram struct {
	Bounds scene.Bounds `json:"bounds"`
	Sites  []jsonSite   `json:"sites"`
	Edges  []jsonEdge   `json:"edges"`
}

func writeJSON(w io.Writer, d *diagram) error {
	out := jsonDiagram{
		Bounds: d.scene.Bounds,
		Sites:  make([]jsonSite, len(d.sites)),
		Edges:  make([]jsonEdge, len(d.edges)),
	}
	for i, s := range d.sites {
		neighbors := make([]int64, len(s.Neighbors))
		for j, n := range s.Neighbors {
			neighbors[j] = n.Tag
		}
		out.Sites[i] = jsonSite{X: s.X, Y: s.Y, Tag: s.Tag, Neighbors: neighbors}
	}
	for i, e := range d.edges {
		out.Edges[i] = jsonEdge{
			Start:  jsonPoint{e.Start.X, e.Start.Y},
			End:    jsonPoint{e.End.X, e.End.Y},
			Left:   e.Left.Tag,
			Right:  e.Right.Tag,
			Length: e.Length(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0x0FACED/go-fortune/pkg/scene"
)

const (
	defaultWidth  = 1000.0
	defaultHeight = 1000.0
	defaultSeed   = 42
)

var errNoInput = errors.New("one of --scene, --random or --grid is required")

// inputOpts selects where the sites of a run come from.
type inputOpts struct {
	path   string  // TOML scene file
	random int     // number of uniformly random sites
	grid   int     // number of sites on a regular grid
	seed   int64   // seed for --random
	width  float64 // frame width of generated scenes
	height float64 // frame height of generated scenes
}

func addInputFlags(cmd *cobra.Command, o *inputOpts) {
	o.seed = defaultSeed
	o.width = defaultWidth
	o.height = defaultHeight

	cmd.Flags().StringVarP(&o.path, "scene", "s", "", "TOML scene file")
	cmd.Flags().IntVar(&o.random, "random", 0, "generate N random sites")
	cmd.Flags().IntVar(&o.grid, "grid", 0, "generate N sites on a grid")
	cmd.Flags().Int64Var(&o.seed, "seed", o.seed, "seed for --random")
	cmd.Flags().Float64Var(&o.width, "width", o.width, "frame width of generated scenes")
	cmd.Flags().Float64Var(&o.height, "height", o.height, "frame height of generated scenes")
	cmd.MarkFlagsMutuallyExclusive("scene", "random", "grid")
}

func (o *inputOpts) load() (*scene.Scene, error) {
	switch {
	case o.path != "":
		return scene.Load(o.path)
	case o.random > 0:
		return scene.Random(o.random, o.width, o.height, o.seed), nil
	case o.grid > 0:
		return scene.Grid(o.grid, o.width, o.height), nil
	case o.random < 0 || o.grid < 0:
		return nil, fmt.Errorf("site count must be positive")
	}
	return nil, errNoInput
}

package voronoi

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Logger is the structured logger used by Run. Both *zap.Logger and
// *logger.ZapLogger satisfy it.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

type options struct {
	log Logger
}

// Option configures Run.
type Option func(*options)

// WithLogger routes the sweep log to l.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Run computes the Voronoi diagram of sites clipped to
// [minX,maxX] x [minY,maxY] with Fortune's sweep.
//
// Every returned edge has both ends inside the box. As a side effect each
// site's Cell holds the returned edges bordering it and Neighbors the sites
// across the bisectors found by the sweep. Both lists are reset first.
//
// Coincident sites are accepted but yield no edge between them.
func Run(sites []*Site, minX, minY, maxX, maxY float64, opts ...Option) ([]*Edge, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log

	bbox := NewBoundingBox(minX, minY, maxX, maxY)
	if err := validate(sites, bbox); err != nil {
		log.Error("[run] input rejected", zap.Error(err))
		return nil, err
	}

	log.Info("[run] fortune started",
		zap.Int("sites", len(sites)),
		zap.Float64("minX", minX), zap.Float64("minY", minY),
		zap.Float64("maxX", maxX), zap.Float64("maxY", maxY))

	warnCoincident(sites, log)
	for _, s := range sites {
		s.reset()
	}

	return newFortune(sites, log).run(bbox)
}

// run sweeps, clips and fills the cells. A broken invariant aborts the run:
// it is logged, returned as the error and every site is left reset. Any
// other panic propagates.
func (f *fortune) run(bbox BoundingBox) (edges []*Edge, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		f.log.Error("[run] aborted", zap.String("op", ie.Op), zap.String("detail", ie.Detail))
		for _, s := range f.sites {
			s.reset()
		}
		edges, err = nil, ie
	}()

	f.sweep()
	raw := len(f.edges)
	f.log.Info("[run] sweep finished", zap.Int("edges", raw))

	edges = clipEdges(f.edges, bbox)
	fillCells(edges)
	f.log.Info("[run] edges clipped", zap.Int("kept", len(edges)), zap.Int("dropped", raw-len(edges)))
	return edges, nil
}

func validate(sites []*Site, bbox BoundingBox) error {
	var err error
	bounds := []struct {
		name string
		v    float64
	}{
		{"minX", bbox.MinX}, {"minY", bbox.MinY}, {"maxX", bbox.MaxX}, {"maxY", bbox.MaxY},
	}
	for _, b := range bounds {
		if !finite(b.v) {
			err = multierr.Append(err, fmt.Errorf("%w: %s is not finite (%g)", ErrInvalidInput, b.name, b.v))
		}
	}
	if !(bbox.MinX < bbox.MaxX) {
		err = multierr.Append(err, fmt.Errorf("%w: minX %g must be below maxX %g", ErrInvalidInput, bbox.MinX, bbox.MaxX))
	}
	if !(bbox.MinY < bbox.MaxY) {
		err = multierr.Append(err, fmt.Errorf("%w: minY %g must be below maxY %g", ErrInvalidInput, bbox.MinY, bbox.MaxY))
	}
	for i, s := range sites {
		if s == nil {
			err = multierr.Append(err, fmt.Errorf("%w: site %d is nil", ErrInvalidInput, i))
			continue
		}
		if !finite(s.X) || !finite(s.Y) {
			err = multierr.Append(err, fmt.Errorf("%w: site %d has non-finite coordinates %v", ErrInvalidInput, i, s))
		}
	}
	return err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// warnCoincident logs every site sharing its exact position with an earlier one.
func warnCoincident(sites []*Site, log Logger) {
	seen := make(map[Vertex]int, len(sites))
	for i, s := range sites {
		if j, ok := seen[s.Vertex()]; ok {
			log.Warn("[run] coincident sites", zap.Int("first", j), zap.Int("second", i), zap.Stringer("site", s))
			continue
		}
		seen[s.Vertex()] = i
	}
}

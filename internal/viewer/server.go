// Package viewer serves an HTML page that builds a Voronoi diagram from a
// form and draws it next to the run log.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-fortune/pkg/logger"
	"github.com/0x0FACED/go-fortune/pkg/scene"
	"github.com/0x0FACED/go-fortune/pkg/voronoi"
	"github.com/0x0FACED/go-fortune/static"
)

const (
	defaultWidth  = 1000
	defaultHeight = 1000
	defaultSites  = 12
	maxSide       = 5000
	maxSites      = 2000
)

// Server renders the diagram page. Each request gets its own buffered run
// log so concurrent requests never mix their output.
type Server struct {
	log      *logger.ZapLogger
	runLevel zapcore.Level
	router   chi.Router
}

// New builds the router. log receives request-level messages; runLevel is the
// level of the per-request sweep log embedded in the page.
func New(log *logger.ZapLogger, runLevel zapcore.Level) *Server {
	s := &Server{
		log:      log,
		runLevel: runLevel,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.diagramHandler)
	r.Post("/", s.diagramHandler)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("[viewer] listening", zap.String("addr", "http://"+addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

type request struct {
	width, height float64
	sites         int
	seed          int64
	random        bool
}

func parseRequest(r *http.Request) (request, error) {
	req := request{
		width:  defaultWidth,
		height: defaultHeight,
		sites:  defaultSites,
		seed:   1,
	}
	if r.Method != http.MethodPost {
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}

	var err error
	intField := func(name string, min, max int) int {
		v, perr := strconv.Atoi(r.FormValue(name))
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", name, perr))
			return 0
		}
		if v < min || v > max {
			err = multierr.Append(err, fmt.Errorf("%s: %d is outside [%d, %d]", name, v, min, max))
		}
		return v
	}
	req.width = float64(intField("width", 1, maxSide))
	req.height = float64(intField("height", 1, maxSide))
	req.sites = intField("sites", 1, maxSites)
	if seed := r.FormValue("seed"); seed != "" {
		v, perr := strconv.ParseInt(seed, 10, 64)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("seed: %w", perr))
		}
		req.seed = v
	}
	req.random = r.FormValue("random") == "true"
	return req, err
}

// diagramHandler serves the page with the diagram and the form.
func (s *Server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		s.log.Warn("[viewer] bad form", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var sc *scene.Scene
	if req.random {
		sc = scene.Random(req.sites, req.width, req.height, req.seed)
	} else {
		sc = scene.Grid(req.sites, req.width, req.height)
	}
	sites := sc.VoronoiSites()
	bbox := sc.BoundingBox()

	runLog := logger.NewBuffered(logger.WithLevel(s.runLevel))
	defer runLog.ClearLogs()

	edges, err := voronoi.Run(sites, bbox.MinX, bbox.MinY, bbox.MaxX, bbox.MaxY, voronoi.WithLogger(runLog))
	if err != nil {
		s.log.Error("[viewer] run failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Debug("[viewer] diagram built",
		zap.String("request", middleware.GetReqID(r.Context())),
		zap.Int("sites", len(sites)),
		zap.Int("edges", len(edges)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintln(w, static.Part1)

	if err := diagramChart(sites, edges, bbox).Render(w); err != nil {
		s.log.Error("[viewer] chart render failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintf(w, "<p id=\"summary\">%d sites, %d edges</p>\n", len(sites), len(edges))

	runLog.UpdateLogs()
	for _, l := range runLog.Logs {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, static.Part3)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ewmst/bfs"
	"github.com/katalvlaran/ewmst/core"
	"github.com/katalvlaran/ewmst/dfs"
	"github.com/katalvlaran/ewmst/internal/config"
	"github.com/katalvlaran/ewmst/internal/metrics"
	"github.com/katalvlaran/ewmst/prim_kruskal"
)

// Consistency failures of a computed forest.
var (
	// ErrComponentMismatch means the forest and a BFS flood disagree on the
	// number of connected components.
	ErrComponentMismatch = errors.New("app: forest and bfs disagree on component count")

	// ErrForestCycle means the accepted edges contain a cycle.
	ErrForestCycle = errors.New("app: forest contains a cycle")
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	recorder *metrics.Recorder

	mu sync.Mutex // serializes runs in watch mode
}

// Report summarizes one run.
type Report struct {
	RunID      string
	Method     string
	Vertices   int
	Edges      int
	Forest     *prim_kruskal.Forest
	Components int
	Elapsed    time.Duration
}

// NewApp is the constructor for the main application. It returns an App
// with its own isolated logger and metrics registry.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		recorder: metrics.NewRecorder(),
	}
}

// Recorder returns the application's metrics recorder. This is primarily for testing.
func (a *App) Recorder() *metrics.Recorder {
	return a.recorder
}

// Run loads the run config and executes it once. In watch mode it then
// re-executes on every config change until ctx is done; failed re-runs are
// logged and do not stop the watch.
func (a *App) Run(ctx context.Context) error {
	loader, err := config.NewLoader(a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Run configuration loaded.", "path", loader.Path())

	if _, err := a.Execute(ctx, loader.Config()); err != nil && !a.config.Watch {
		return err
	}
	if !a.config.Watch {
		return nil
	}

	changes := make(chan *config.RunConfig, 1)
	loader.OnChange(func(cfg *config.RunConfig) {
		// Keep only the newest pending config.
		select {
		case <-changes:
		default:
		}
		changes <- cfg
	})
	loader.OnError(func(err error) {
		a.logger.Warn("Config reload failed; keeping previous config.", "error", err)
	})

	stop, err := loader.Watch()
	if err != nil {
		return err
	}
	defer stop()
	a.logger.Info("Watching run configuration.", "path", loader.Path())

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watch stopped.")
			return nil
		case cfg := <-changes:
			_, _ = a.Execute(ctx, cfg)
		}
	}
}

// Execute performs one run described by cfg and records its outcome.
//
// Steps:
//  1. Generate the graph with the builder.
//  2. Compute the spanning forest with the configured method.
//  3. Cross-check the forest: acyclic (dfs) and one tree per component (bfs).
//  4. Record metrics (and the textfile, if configured) and log the summary.
//
// A forest that is not spanning is only an error with require_spanning.
func (a *App) Execute(ctx context.Context, cfg *config.RunConfig) (*Report, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{RunID: uuid.NewString(), Method: cfg.Method, Vertices: cfg.VertexCount()}
	log := a.logger.With("run_id", rep.RunID, "method", cfg.Method, "topology", cfg.Topology)
	start := time.Now()

	forest, runErr := a.compute(cfg, rep)
	rep.Forest = forest
	rep.Elapsed = time.Since(start)

	obs := metrics.Observation{Method: cfg.Method, Elapsed: rep.Elapsed}
	switch {
	case forest == nil:
		obs.Result = metrics.ResultError
	case forest.Spanning():
		obs.Result = metrics.ResultOK
	default:
		obs.Result = metrics.ResultNotSpan
	}
	if forest != nil {
		obs.Accepted = len(forest.Edges)
		obs.Rejected = forest.Rejected
		obs.Weight = forest.Weight
		obs.Components = forest.Components()
	}
	a.recorder.Observe(obs)

	if cfg.MetricsTextfile != "" {
		if err := a.recorder.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Warn("Failed to write metrics textfile.", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	if runErr != nil {
		log.Error("Run failed.", "error", runErr, "elapsed", rep.Elapsed)
		return rep, runErr
	}
	log.Info("Run complete.",
		"vertices", rep.Vertices,
		"edges", rep.Edges,
		"forest_edges", len(forest.Edges),
		"weight", forest.Weight,
		"components", rep.Components,
		"spanning", forest.Spanning(),
		"examined", forest.Examined,
		"rejected", forest.Rejected,
		"elapsed", rep.Elapsed,
	)

	return rep, nil
}

// compute runs steps 1-3 of Execute. It returns the forest whenever one was
// produced, even alongside prim_kruskal.ErrDisconnected.
func (a *App) compute(cfg *config.RunConfig, rep *Report) (*prim_kruskal.Forest, error) {
	g, err := buildGraph(cfg)
	if err != nil {
		return nil, fmt.Errorf("generate graph: %w", err)
	}
	rep.Edges = g.EdgeCount()

	opts := []prim_kruskal.Option{
		prim_kruskal.WithMethod(cfg.Method),
		prim_kruskal.WithRoot(cfg.Root),
	}
	if cfg.RequireSpanning {
		opts = append(opts, prim_kruskal.WithRequireSpanning())
	}
	forest, mstErr := prim_kruskal.Compute(g, opts...)
	if forest == nil {
		return nil, fmt.Errorf("spanning forest: %w", mstErr)
	}

	_, count, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	rep.Components = count
	if count != forest.Components() {
		return nil, fmt.Errorf("%w: forest %d, bfs %d", ErrComponentMismatch, forest.Components(), count)
	}

	if err := verifyAcyclic(forest); err != nil {
		return nil, err
	}

	if mstErr != nil {
		return forest, fmt.Errorf("spanning forest: %w", mstErr)
	}

	return forest, nil
}

// verifyAcyclic lays the forest's edges over a fresh graph and searches it
// for a cycle.
func verifyAcyclic(f *prim_kruskal.Forest) error {
	g, err := core.NewGraph(f.Vertices, core.WithEdgeHint(len(f.Edges)))
	if err != nil {
		return err
	}
	for _, e := range f.Edges {
		if err := g.InsertEdge(e); err != nil {
			return err
		}
	}
	cycle, err := dfs.FindCycle(g)
	if err != nil {
		return err
	}
	if cycle != nil {
		return fmt.Errorf("%w: %v", ErrForestCycle, cycle)
	}

	return nil
}

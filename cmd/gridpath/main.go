package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/driver"
	"github.com/katalvlaran/gridpath/internal/observer"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/internal/runindex"
	"github.com/katalvlaran/gridpath/internal/snapshot"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config (defaults built in)")
		seed       = flag.Int64("seed", 0, "override grid.seed (0 keeps config)")
		budget     = flag.Int("budget", -1, "override search.step_budget (-1 keeps config)")
		listen     = flag.String("listen", "", "override observer.listen, e.g. 127.0.0.1:8089")
		snapPath   = flag.String("snapshot", "", "override persistence.snapshot_path")
		dbPath     = flag.String("db", "", "override persistence.index_db")
		watch      = flag.Int("watch", 0, "print the grid every n ticks (0 prints only the result)")
		quiet      = flag.Bool("quiet", false, "do not print the grid")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[gridpath] ", log.LstdFlags|log.Lmicroseconds)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Fatalf("config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Grid.Seed = *seed
	}
	if *budget >= 0 {
		cfg.Search.StepBudget = *budget
	}
	if *listen != "" {
		cfg.Observer.Listen = *listen
	}
	if *snapPath != "" {
		cfg.Persistence.SnapshotPath = *snapPath
	}
	if *dbPath != "" {
		cfg.Persistence.IndexDB = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *watch, *quiet); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger, watch int, quiet bool) error {
	g, err := gridgraph.NewGrid(cfg.Grid.Columns, cfg.Grid.Rows, cfg.GridOptions())
	if err != nil {
		return err
	}
	sp, ep := cfg.StartPoint(), cfg.EndPoint()
	start, end := g.Index(sp.X, sp.Y), g.Index(ep.X, ep.Y)
	if cfg.Grid.EnsurePassage {
		cleared, err := g.EnsurePassage(start, end)
		if err != nil {
			return err
		}
		logger.Printf("cleared %d walls to join (%d,%d) and (%d,%d)", len(cleared), sp.X, sp.Y, ep.X, ep.Y)
	}
	walls := g.Count(gridgraph.Wall)

	s, err := astar.NewSearch(g, start, end, cfg.SearchOptions()...)
	if err != nil {
		return err
	}

	var sinks []driver.Sink
	var ascii *render.ASCII
	if !quiet {
		ascii = render.NewASCII(os.Stdout, watch)
		sinks = append(sinks, ascii.Sink)
	}
	if cfg.Observer.Listen != "" {
		obs := observer.NewServer(log.New(os.Stderr, "[observer] ", log.LstdFlags))
		defer obs.Close()
		mux := http.NewServeMux()
		mux.Handle("/v1/frames", obs.WSHandler())
		srv := &http.Server{Addr: cfg.Observer.Listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Printf("observer: %v", err)
			}
		}()
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
		logger.Printf("observer listening on ws://%s/v1/frames", cfg.Observer.Listen)
		sinks = append(sinks, obs.Publish)
	}

	loop := driver.New(s, driver.Config{
		TickRateHz: cfg.Driver.TickRateHz,
		MaxTicks:   cfg.Driver.MaxTicks,
		Smoothing:  cfg.Driver.Smoothing,
	}, log.New(os.Stderr, "[driver] ", log.LstdFlags), sinks...)

	res, runErr := loop.Run(ctx)
	if runErr != nil && !errors.Is(runErr, driver.ErrTickLimit) {
		return runErr
	}

	if ascii != nil {
		if err := ascii.Err(); err != nil {
			logger.Printf("render: %v", err)
		}
		fmt.Printf("%s in %d ticks (%.1f tps), path %d cells\n", res.State, res.Ticks, res.TPS, len(s.Path()))
	}

	if p := cfg.Persistence.SnapshotPath; p != "" {
		if err := snapshot.Write(p, snapshot.Capture(s, res.Ticks, cfg.Grid.Seed)); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		logger.Printf("snapshot written to %s", p)
	}

	if p := cfg.Persistence.IndexDB; p != "" {
		idx, err := runindex.OpenSQLite(p)
		if err != nil {
			return fmt.Errorf("run index: %w", err)
		}
		defer idx.Close()
		st := s.Stats()
		id, err := idx.Record(ctx, runindex.Run{
			Seed:       cfg.Grid.Seed,
			Columns:    g.Columns(),
			Rows:       g.Rows(),
			Walls:      walls,
			Start:      start,
			End:        end,
			Heuristic:  cfg.Search.Heuristic,
			CostModel:  cfg.Search.CostModel,
			StepBudget: cfg.Search.StepBudget,
			State:      res.State.String(),
			Ticks:      res.Ticks,
			Expansions: st.Expansions,
			Stale:      st.Stale,
			PathLen:    len(s.Path()),
			Snapshot:   cfg.Persistence.SnapshotPath,
		})
		if err != nil {
			return fmt.Errorf("run index: %w", err)
		}
		logger.Printf("run %d recorded in %s", id, p)
	}

	return runErr
}

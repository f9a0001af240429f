// Command keepalive-sim drives a keep-alive container through a scripted
// sequence of render passes and reports what was reused.
//
//	SCRIPT="Home,Users,Home,Settings@panel" MAX=2 EXCLUDE="re:^Set" go run ./cmd/keepalive-sim
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	promadapter "github.com/codewandler/keepalive-go/adapters/prometheus"
	"github.com/codewandler/keepalive-go/core/keepalive"
	"github.com/codewandler/keepalive-go/core/match"
)

// === Config ===

var (
	script        = getEnv("SCRIPT", "Home,Users,Home,Settings@panel,Users,Profile,Home,Users")
	include       = getEnv("INCLUDE", "")
	exclude       = getEnv("EXCLUDE", "")
	maxEntries    = getEnv("MAX", "3")
	passes        = getEnvInt("PASSES", 1)
	changeAt      = getEnvInt("CHANGE_AT", -1)
	changeExclude = getEnv("CHANGE_EXCLUDE", "")
	metricsAddr   = getEnv("METRICS_ADDR", "")
	debug         = getEnvBool("DEBUG", false)
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(ctx, log); err != nil {
		log.Error("simulation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	steps, err := parseScript(script)
	if err != nil {
		return fmt.Errorf("parse SCRIPT: %w", err)
	}
	inc, err := match.Parse(include)
	if err != nil {
		return fmt.Errorf("parse INCLUDE: %w", err)
	}
	exc, err := match.Parse(exclude)
	if err != nil {
		return fmt.Errorf("parse EXCLUDE: %w", err)
	}
	lateExc, err := match.Parse(changeExclude)
	if err != nil {
		return fmt.Errorf("parse CHANGE_EXCLUDE: %w", err)
	}

	reg := prometheus.NewRegistry()
	props := keepalive.NewProps()
	p := &patcher{log: log}
	c := keepalive.New(keepalive.Config{
		Include:    inc,
		Exclude:    exc,
		Max:        maxEntries,
		Watcher:    props,
		OnHandOver: p.adopt,
		Log:        log,
		Metrics:    promadapter.NewKeepAliveMetrics(reg),
	})
	p.log = log.With(slog.String("container", c.ID()))
	pass := 0
	for i := 0; i < passes; i++ {
		for _, s := range steps {
			if pass == changeAt {
				log.Info("changing exclude", slog.String("exclude", changeExclude))
				props.Set(keepalive.PropExclude, lateExc)
			}
			out := c.Render([]*keepalive.Node{s.node()})
			p.patch(out)
			if pass == 0 {
				c.Mounted()
			} else {
				c.Updated()
			}
			if c.TakeStale() {
				log.Debug("slot marked stale")
			}
			log.Info("pass",
				slog.Int("n", pass),
				slog.String("step", s.String()),
				slog.Bool("kept_alive", out[0].KeptAlive),
				slog.Any("cache", c.Keys()),
			)
			pass++
		}
	}

	c.Unmount()
	log.Info("done",
		slog.Int("passes", pass),
		slog.Int("constructed", p.built),
		slog.Int("reused", p.reused),
		slog.Int("destroyed_by_host", p.destroyed),
	)

	if metricsAddr == "" {
		return nil
	}
	return serveMetrics(ctx, log, reg)
}

// serveMetrics exposes the collected metrics until ctx is cancelled.
func serveMetrics(ctx context.Context, log *slog.Logger, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving metrics", slog.String("addr", metricsAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

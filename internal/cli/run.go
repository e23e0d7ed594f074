package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/finiteconsole"
	"github.com/aretw0/finiteconsole/internal/config"
	"github.com/aretw0/finiteconsole/internal/logging"
	httpadapter "github.com/aretw0/finiteconsole/pkg/adapters/http"
	"github.com/aretw0/finiteconsole/pkg/adapters/redis"
	"github.com/aretw0/finiteconsole/pkg/console"
	"github.com/aretw0/finiteconsole/pkg/domain"
	"github.com/aretw0/finiteconsole/pkg/observability"
	"github.com/aretw0/finiteconsole/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	backend "github.com/redis/go-redis/v9"
)

// RunOptions configures a single run of a graph file.
type RunOptions struct {
	GraphPath string
	Config    *config.Config

	// Inputs are fed to the loop instead of reading Stdin.
	Inputs []string
	// JSON switches to NDJSON views and notices.
	JSON bool

	Actions *registry.Registry
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func (o *RunOptions) defaults() {
	if o.Config == nil {
		o.Config = &config.Config{
			LogLevel:    config.DefaultLogLevel,
			LogFormat:   config.DefaultLogFormat,
			Renderer:    config.DefaultRenderer,
			RedisStream: config.DefaultRedisStream,
		}
	}
	if o.Actions == nil {
		o.Actions = registry.NewWithBuiltins()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run loads the graph, wires the configured collaborators and drives the loop
// until a finite menu is reached, the input ends or the process is signalled.
// Interruptions are not errors.
func Run(ctx context.Context, opts RunOptions) (any, error) {
	opts.defaults()
	cfg := opts.Config

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewWithWriter(opts.Stderr, level, cfg.LogFormat)

	var stopReason string
	hooks := []domain.LifecycleHooks{
		observability.LogHooks(logger),
		{OnLoopStop: func(_ context.Context, e *domain.LoopEvent) { stopReason = e.Reason }},
	}

	var (
		gatherer *prometheus.Registry
		streams  *httpadapter.StreamManager
	)
	if cfg.MetricsAddr != "" {
		gatherer = prometheus.NewRegistry()
		gatherer.MustRegister(collectors.NewGoCollector())
		metrics, err := observability.NewMetrics(gatherer)
		if err != nil {
			return nil, err
		}
		streams = httpadapter.NewStreamManager(logger)
		hooks = append(hooks, metrics.Hooks(), streams.Hooks())
	}

	if cfg.RedisAddr != "" {
		client := backend.NewClient(&backend.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		sink := redis.NewSink(client, redis.WithStream(cfg.RedisStream), redis.WithLogger(logger))
		hooks = append(hooks, sink.Hooks())
	}

	p, err := finiteconsole.New(
		finiteconsole.WithLogger(logger),
		finiteconsole.WithLifecycleHooks(domain.ComposeHooks(hooks...)),
	)
	if err != nil {
		return nil, err
	}
	defer p.Drop()

	if err := p.LoadFile(opts.GraphPath, opts.Actions); err != nil {
		return nil, err
	}

	if cfg.MetricsAddr != "" {
		srv := httpadapter.NewServer(p,
			httpadapter.WithGatherer(gatherer),
			httpadapter.WithStreams(streams),
			httpadapter.WithLogger(logger),
			httpadapter.WithVersion(finiteconsole.Version),
		)
		stop := serve(cfg.MetricsAddr, srv.Handler(), logger)
		defer stop()
	}

	handler, err := newHandler(opts)
	if err != nil {
		return nil, err
	}

	quiet := opts.JSON || cfg.Headless
	if !quiet && cfg.Banner {
		if f, ok := opts.Stdin.(*os.File); ok && console.IsInteractive(f) {
			console.PrintBanner(opts.Stdout, finiteconsole.Version)
		}
	}

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	result, runErr := p.Start(sigCtx, handler)

	if !quiet {
		logCompletion(opts.Stdout, p.Current().String(), stopReason, runErr, sigCtx.Signal())
	}
	if runErr != nil {
		if isInterrupted(runErr) {
			return nil, nil
		}
		return result, runErr
	}
	return result, nil
}

func newHandler(opts RunOptions) (console.Handler, error) {
	if opts.JSON {
		if len(opts.Inputs) > 0 {
			return nil, errors.New("--input cannot be combined with --json")
		}
		return console.NewJSONHandler(opts.Stdin, opts.Stdout), nil
	}

	render, err := console.RendererByName(opts.Config.Renderer)
	if err != nil {
		return nil, err
	}
	if len(opts.Inputs) > 0 {
		return console.NewScriptedHandler(opts.Inputs...).Echo(opts.Stdout, render), nil
	}

	handlerOpts := []console.TextHandlerOption{console.WithRenderer(render)}
	if opts.Config.Headless {
		handlerOpts = append(handlerOpts, console.WithPrompt(""))
	}
	return console.NewTextHandler(opts.Stdin, opts.Stdout, handlerOpts...), nil
}

// serve runs the introspection server in the background and returns its shutdown.
func serve(addr string, h http.Handler, logger *slog.Logger) func() {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("introspection server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("introspection server failed", "addr", addr, "err", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// PrintResult writes a loop result: NDJSON in JSON mode, plain text otherwise.
// A nil result prints nothing in text mode.
func PrintResult(w io.Writer, result any, jsonMode bool) error {
	if jsonMode {
		return json.NewEncoder(w).Encode(map[string]any{"type": "result", "result": result})
	}
	if result == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, result)
	return err
}

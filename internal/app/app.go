// Package app implements the application layer for clustertap.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/muesli/termenv"
	"go.trai.ch/clustertap/internal/adapters/classifier"
	"go.trai.ch/clustertap/internal/adapters/correlation"
	"go.trai.ch/clustertap/internal/adapters/extractor"
	"go.trai.ch/clustertap/internal/adapters/ingest"
	"go.trai.ch/clustertap/internal/adapters/sink"
	"go.trai.ch/clustertap/internal/adapters/telemetry"
	"go.trai.ch/clustertap/internal/build"
	"go.trai.ch/clustertap/internal/core/domain"
	"go.trai.ch/clustertap/internal/core/ports"
	"go.trai.ch/clustertap/internal/engine/correlator"
	"go.trai.ch/clustertap/internal/ui/output"
	"go.trai.ch/clustertap/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// logSettings is implemented by loggers whose format and level can change at runtime.
type logSettings interface {
	SetJSON(enable bool)
	SetLevel(level string) error
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	metrics      *telemetry.Metrics
	hub          *sink.Hub
	spoolWindow  time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	metrics *telemetry.Metrics,
	hub *sink.Hub,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		tracer:       tracer,
		metrics:      metrics,
		hub:          hub,
		spoolWindow:  ingest.DefaultSpoolWindow,
	}
}

// WithSpoolWindow overrides the quiet period before a spooled file is read.
func (a *App) WithSpoolWindow(window time.Duration) *App {
	a.spoolWindow = window
	return a
}

// ServeOptions configuration for the Serve method. Empty fields keep the
// configured value.
type ServeOptions struct {
	ConfigPath string
	Addr       string
	SpoolDir   string
	LogFormat  string
	LogLevel   string
}

// Serve runs the ingest server, the cache sweeper and, when a spool directory
// is configured, the spool watcher until ctx is cancelled or one of them fails.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := applyServeOverrides(cfg, opts); err != nil {
		return err
	}

	if err := a.configureLogger(cfg.Log); err != nil {
		return err
	}
	a.metrics.SetBuildInfo(build.Version, build.Commit)

	cache := correlation.NewCache(cfg.Cache.MaxAge)
	engine, err := a.newEngine(cfg, cache)
	if err != nil {
		return err
	}
	observe := func(ctx context.Context, rec domain.ExchangeRecord) {
		engine.Observe(ctx, rec)
	}

	server := ingest.NewServer(cfg.Server.Addr, observe, a.hub, a.metrics, a.logger)
	sweeper := correlation.NewSweeper(cache, cfg.Cache.SweepInterval, a.logger, a.metrics)

	a.logger.Info("clustertap starting", "version", build.Version, "patterns", len(cfg.Classifier.Patterns))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Run(ctx) })
	g.Go(func() error { return sweeper.Run(ctx) })
	if cfg.Spool.Dir != "" {
		spool := ingest.NewSpoolWatcher(cfg.Spool.Dir, a.spoolWindow, observe, a.logger)
		g.Go(func() error { return spool.Run(ctx) })
	}

	return g.Wait()
}

// ExtractOptions configuration for the Extract method.
type ExtractOptions struct {
	ConfigPath string
	ExpectID   string
}

// Extract reads a captured response from file and writes its cluster graph to w as JSON.
func (a *App) Extract(_ context.Context, file string, opts ExtractOptions, w io.Writer) error {
	payload, err := readInput(file)
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	ext := extractor.New(cfg.Extractor, extractor.NewHistory(cfg.Extractor.HistorySize))
	graph, ok := ext.Extract(domain.Payload(payload), opts.ExpectID)
	if !ok {
		return zerr.With(domain.ErrNoClusterGraph, "file", file)
	}

	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode cluster graph")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ClassifyOptions configuration for the Classify method.
type ClassifyOptions struct {
	ConfigPath  string
	PayloadFile string
}

// Classify reports whether an exchange with the given address, and optionally
// a request payload read from a file, is of interest.
func (a *App) Classify(_ context.Context, address string, opts ClassifyOptions, w io.Writer) error {
	var payload domain.Payload
	if opts.PayloadFile != "" {
		data, err := readInput(opts.PayloadFile)
		if err != nil {
			return err
		}
		payload = data
	}

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	cls, err := classifier.New(cfg.Classifier.Patterns)
	if err != nil {
		return err
	}

	out := output.New(w)
	if !cls.IsOfInterest(address, payload) {
		icon := out.String(style.Cross).Foreground(out.Color(string(style.Red)))
		_, err = fmt.Fprintf(w, "%s not of interest: %s\n", icon, address)
		return err
	}

	op := cls.Describe(payload)
	icon := out.String(style.Check).Foreground(out.Color(string(style.Green)))
	if _, err := fmt.Fprintf(w, "%s of interest: %s\n", icon, address); err != nil {
		return err
	}
	return writeOperation(w, out, op)
}

func writeOperation(w io.Writer, out *termenv.Output, op domain.Operation) error {
	label := func(s string) termenv.Style {
		return out.String(s).Foreground(out.Color(string(style.Slate)))
	}

	lines := [][2]string{{"operation", op.Label()}}
	if op.Type != "" {
		lines = append(lines, [2]string{"type", op.Type})
	}
	if op.Persisted {
		lines = append(lines, [2]string{"persisted", "yes"})
	}
	if op.Batched {
		lines = append(lines, [2]string{"batched", "yes"})
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "  %s %s\n", label(l[0]+":"), l[1]); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) newEngine(cfg *domain.Config, cache ports.CorrelationCache) (*correlator.Engine, error) {
	cls, err := classifier.New(cfg.Classifier.Patterns)
	if err != nil {
		return nil, err
	}
	history := extractor.NewHistory(cfg.Extractor.HistorySize)
	ext := extractor.New(cfg.Extractor, history)

	return correlator.New(
		cache,
		cls,
		ext,
		history,
		a.hub,
		a.tracer,
		a.metrics,
		a.logger,
		cfg.Extractor.IDKeys,
	), nil
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	cfg, err := a.configLoader.Load(cwd, path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func (a *App) configureLogger(cfg domain.LogConfig) error {
	settings, ok := a.logger.(logSettings)
	if !ok {
		return nil
	}
	settings.SetJSON(cfg.Format == "json")
	if cfg.Level == "" {
		return nil
	}
	if err := settings.SetLevel(cfg.Level); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "log.level", cfg.Level)
	}
	return nil
}

// overrideValidator checks the settings that flags can change after the
// loader has validated the file.
var overrideValidator = validator.New(validator.WithRequiredStructEnabled())

func applyServeOverrides(cfg *domain.Config, opts ServeOptions) error {
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}
	if opts.SpoolDir != "" {
		cfg.Spool.Dir = opts.SpoolDir
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	if err := overrideValidator.Struct(cfg.Log); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()),
			"log.format", cfg.Log.Format), "log.level", cfg.Log.Level)
	}
	return nil
}

func readInput(file string) ([]byte, error) {
	data, err := os.ReadFile(file) //nolint:gosec // reading user-specified input is the purpose of the command
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInputReadFailed.Error()), "file", file)
	}
	return data, nil
}

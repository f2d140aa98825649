package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/gamebook/internal/console"
	"github.com/specialistvlad/gamebook/internal/ctxlog"
	"github.com/specialistvlad/gamebook/internal/graph"
	"github.com/specialistvlad/gamebook/internal/hcl_adapter"
	"github.com/specialistvlad/gamebook/internal/storage"
	"github.com/specialistvlad/gamebook/internal/storage/jsoncodec"
	"github.com/specialistvlad/gamebook/internal/storage/yamlcodec"
)

// App encapsulates the application's dependencies, configuration, and the
// adventure graph the shell operates on.
type App struct {
	console *console.Console
	logger  *slog.Logger
	store   *storage.Store
	graph   graph.Graph
	config  *Config
}

// NewApp is the constructor for the main application. The shell reads
// operator input from in and writes to out; logs go to logW, which is never
// the interactive output.
func NewApp(in io.Reader, out, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	store := storage.New(cfg.EntryID, jsoncodec.New(), yamlcodec.New(), hcl_adapter.NewCodec())

	return &App{
		console: console.New(in, out),
		logger:  logger,
		store:   store,
		graph:   graph.New(),
		config:  cfg,
	}
}

// Graph returns the current adventure. This is primarily for testing.
func (a *App) Graph() graph.Reader {
	return a.graph
}

// Run loads the startup adventure, if one is configured, and then serves
// the menu until the operator exits or input ends.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.AdventurePath != "" {
		a.open(ctx, a.config.AdventurePath)
	}

	err := a.shell(ctx)
	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/susannasiebert/procera/internal/config"
	"github.com/susannasiebert/procera/internal/ctxlog"
	"github.com/susannasiebert/procera/internal/node"
	"github.com/susannasiebert/procera/internal/process"
	"github.com/susannasiebert/procera/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// New is the constructor for the main application. It returns an App with
// its own isolated logger; configuration is loaded lazily when Run starts.
func New(outW, errW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}

// Run loads the configuration, assembles the node set, resolves the process
// into a composed graph, and prints a report of the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Application starting.", "path", a.config.Path)

	model, err := a.loader.Load(ctx, a.config.Path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Info("Configuration loaded.",
		"kinds", len(model.Kinds), "operations", len(model.Operations))

	reg := registry.New()
	if err := reg.PopulateFromModel(model); err != nil {
		return err
	}
	if err := reg.Validate(ctx); err != nil {
		return err
	}

	nodes, err := node.FromModel(model, reg.Lookup)
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no operations declared under %s", a.config.Path)
	}

	proc := process.New(nodes)

	g, err := proc.Build(ctx, a.config.GraphName)
	if err != nil {
		return fmt.Errorf("failed to resolve process: %w", err)
	}
	a.logger.Info("Process resolved.",
		"graph", a.config.GraphName, "links", len(g.Links()))

	inputs, err := proc.Inputs(ctx)
	if err != nil {
		return err
	}
	outputs, err := proc.Outputs(ctx)
	if err != nil {
		return err
	}

	return a.report(g.Name(), g, inputs, outputs)
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/passgraph/internal/container"
	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/internal/script"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	registry   *pass.Registry
	loader     *script.Loader
	store      *container.Store
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Reports and exports
// are written to outW, logs to logW. When no modules are given the
// compiled-in pass libraries are used.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...pass.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := pass.NewWithModules(modules...)
	logger.Debug("All pass modules registered.", "count", len(modules), "libraries", reg.Libraries())

	if err := reg.Validate(ctx); err != nil {
		return nil, fmt.Errorf("pass registry is inconsistent: %w", err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		loader:   script.NewLoader(reg.Enums()),
		store:    container.New(),
	}, nil
}

// Registry returns the application's pass registry. This is primarily for testing.
func (a *App) Registry() *pass.Registry {
	return a.registry
}

// Store returns the container holding every assembled graph.
func (a *App) Store() *container.Store {
	return a.store
}

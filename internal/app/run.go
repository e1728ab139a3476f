package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/passgraph/internal/assembler"
	"github.com/specialistvlad/passgraph/internal/config"
	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Run executes the main application logic based on the App's configuration.
// With an inspection port set it keeps serving until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scripts, err := a.loadScripts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load graph scripts: %w", err)
	}
	if len(scripts) == 0 {
		a.logger.Warn("No graphs found, nothing to assemble.", "path", a.config.GraphPath)
		return nil
	}

	if err := a.assembleAll(ctx, scripts); err != nil {
		return fmt.Errorf("graph assembly failed: %w", err)
	}

	active := scripts[0].Name
	if a.config.Select != "" {
		active = a.config.Select
	}
	if err := a.store.SetActive(active); err != nil {
		return fmt.Errorf("cannot select graph: %w", err)
	}

	switch a.config.Export {
	case ExportNone:
		if err := a.printReport(); err != nil {
			return err
		}
	default:
		if err := a.export(ctx, active); err != nil {
			return err
		}
	}

	if a.config.InspectPort > 0 {
		return a.serveInspection(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// assembleAll assembles every script into the store using up to WorkerCount
// goroutines. Every failing graph is reported, not just the first.
func (a *App) assembleAll(ctx context.Context, scripts []*config.GraphScript) error {
	a.logger.Info("Assembling graphs...", "count", len(scripts), "workers", a.config.WorkerCount)

	var (
		mu   sync.Mutex
		errs error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for _, s := range scripts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := assembler.Assemble(gctx, s, a.registry, a.store); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if errs != nil {
		return errs
	}

	a.logger.Info("Graphs assembled.", "count", a.store.Len())
	return nil
}

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/passgraph/graphs"
	"github.com/specialistvlad/passgraph/internal/config"
	"github.com/specialistvlad/passgraph/internal/ctxlog"
)

// loadScripts collects the graph scripts from the embedded set and the
// configured path. Graph names must be unique across both.
func (a *App) loadScripts(ctx context.Context) ([]*config.GraphScript, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}

	if a.config.Builtin {
		builtin, err := graphs.Scripts()
		if err != nil {
			return nil, fmt.Errorf("failed to read built-in graphs: %w", err)
		}
		for _, s := range builtin {
			m, err := a.loader.Parse(ctx, s.Filename, s.Source)
			if err != nil {
				return nil, err
			}
			if err := merge(model, m); err != nil {
				return nil, err
			}
		}
		logger.Debug("Built-in graphs loaded.", "count", len(model.Graphs))
	}

	if a.config.GraphPath != "" {
		m, err := a.loader.Load(ctx, a.config.GraphPath)
		if err != nil {
			return nil, err
		}
		if err := merge(model, m); err != nil {
			return nil, err
		}
	}

	logger.Info("Graph scripts loaded.", "graphs", len(model.Graphs))
	return model.Graphs, nil
}

func merge(dst, src *config.Model) error {
	for _, gs := range src.Graphs {
		if existing, ok := dst.Graph(gs.Name); ok {
			return fmt.Errorf("graph %q declared in %s is already declared in %s", gs.Name, gs.Source, existing.Source)
		}
		dst.Graphs = append(dst.Graphs, gs)
	}
	return nil
}

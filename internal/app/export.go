package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/passgraph/internal/container"
	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/specialistvlad/passgraph/internal/rendergraph"
	"github.com/specialistvlad/passgraph/internal/script"
)

// export writes the named graph to the output in the configured format.
func (a *App) export(ctx context.Context, name string) error {
	logger := ctxlog.FromContext(ctx)

	g, ok := a.store.Graph(name)
	if !ok {
		return fmt.Errorf("%w: %q", container.ErrGraphNotFound, name)
	}

	switch a.config.Export {
	case ExportDOT:
		if err := g.WriteDOT(a.outW, rendergraph.DOTWithGraphName(name)); err != nil {
			return fmt.Errorf("failed to export graph %q as DOT: %w", name, err)
		}
	case ExportHCL:
		src, err := script.Write(g, a.registry)
		if err != nil {
			return fmt.Errorf("failed to export graph %q as HCL: %w", name, err)
		}
		if _, err := a.outW.Write(src); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export format %q", a.config.Export)
	}

	logger.Info("Graph exported.", "graph", name, "format", a.config.Export)
	return nil
}

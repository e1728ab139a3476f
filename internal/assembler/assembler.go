package assembler

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/specialistvlad/passgraph/internal/config"
	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/internal/rendergraph"
	"github.com/zclconf/go-cty/cty"
)

// ErrNilScript is returned when Assemble is called without a script.
var ErrNilScript = errors.New("nil graph script")

// Host provides the pass libraries a script depends on.
type Host interface {
	LoadPlugin(ctx context.Context, file string) error
	CreatePass(ctx context.Context, typeName string, options map[string]cty.Value) (*pass.Instance, error)
	LibraryOf(typeName string) (string, bool)
}

// Container receives assembled graphs.
type Container interface {
	AddGraph(ctx context.Context, g *rendergraph.Graph) error
}

// Assemble builds the graph described by script. A nil container, typed or
// not, skips registration; the graph is still returned.
//
// A pass type can only be created when its library is listed by the script
// itself, whatever the host has loaded for other scripts.
func Assemble(ctx context.Context, script *config.GraphScript, host Host, container Container) (*rendergraph.Graph, error) {
	if script == nil {
		return nil, ErrNilScript
	}
	ctx, logger := ctxlog.With(ctx, "graph", script.Name)
	logger.Debug("Assembling graph.", "source", script.Source)

	listed := make(map[string]struct{}, len(script.Libraries))
	for _, lib := range script.Libraries {
		if err := host.LoadPlugin(ctx, lib); err != nil {
			return nil, fmt.Errorf("graph %q: load library %q: %w", script.Name, lib, err)
		}
		listed[pass.LibraryName(lib)] = struct{}{}
		logger.Debug("Library loaded.", "library", lib)
	}

	g := rendergraph.New(script.Name)

	for _, decl := range script.Passes {
		if owner, ok := host.LibraryOf(decl.Type); ok {
			if _, ok := listed[owner]; !ok {
				return nil, fmt.Errorf("graph %q: create pass %q: %w: %q is provided by library %q, which the graph does not list",
					script.Name, decl.Name, pass.ErrPassTypeNotLoaded, decl.Type, owner)
			}
		}
		inst, err := host.CreatePass(ctx, decl.Type, decl.Options)
		if err != nil {
			return nil, fmt.Errorf("graph %q: create pass %q: %w", script.Name, decl.Name, err)
		}
		if err := g.AddPass(inst, decl.Name); err != nil {
			return nil, fmt.Errorf("graph %q: add pass %q: %w", script.Name, decl.Name, err)
		}
		logger.Debug("Pass added.", "pass", decl.Name, "type", decl.Type)
	}

	for _, e := range script.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("graph %q: add edge %s -> %s: %w", script.Name, e.From, e.To, err)
		}
		logger.Debug("Edge added.", "from", e.From, "to", e.To)
	}

	for _, out := range script.Outputs {
		if err := g.MarkOutput(out); err != nil {
			return nil, fmt.Errorf("graph %q: mark output %q: %w", script.Name, out, err)
		}
		logger.Debug("Output marked.", "port", out)
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graph %q: validate: %w", script.Name, err)
	}

	if isNil(container) {
		logger.Debug("No container supplied, skipping graph registration.")
		return g, nil
	}
	if err := container.AddGraph(ctx, g); err != nil {
		return nil, fmt.Errorf("graph %q: register: %w", script.Name, err)
	}
	logger.Debug("Graph registered.")
	return g, nil
}

// isNil reports whether c is nil or an interface holding a nil pointer.
func isNil(c Container) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

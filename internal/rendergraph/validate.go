package rendergraph

import (
	"fmt"

	"github.com/specialistvlad/passgraph/internal/portid"
	"go.uber.org/multierr"
)

// Validate checks whole-graph properties and reports every problem found:
// at least one output is marked, the pass dependencies are acyclic, and every
// required input of a pass contributing to an output is connected.
func (g *Graph) Validate() error {
	var errs error

	if len(g.outputs) == 0 {
		errs = multierr.Append(errs, ErrNoOutputs)
	}
	if err := g.topo.DetectCycles(); err != nil {
		errs = multierr.Append(errs, err)
	}

	contributing := g.topo.Ancestors(g.outputNodes()...)
	for _, name := range g.order {
		if _, ok := contributing[name]; !ok {
			continue
		}
		n := g.nodes[name]
		for _, in := range n.Pass.Type.Inputs {
			if in.Optional {
				continue
			}
			port := portid.New(name, in.Name)
			if _, ok := g.bound[port.String()]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrUnboundInput, port))
			}
		}
	}

	if errs != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidGraph, g.name, errs)
	}
	return nil
}

// Compile validates the graph and derives its execution plan.
func (g *Graph) Compile() (*Plan, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	contributing := g.topo.Ancestors(g.outputNodes()...)
	order, err := g.topo.TopologicalSort(contributing)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidGraph, g.name, err)
	}

	plan := &Plan{Order: order}
	for _, name := range g.order {
		if _, ok := contributing[name]; !ok {
			plan.Culled = append(plan.Culled, name)
		}
	}
	return plan, nil
}

func (g *Graph) outputNodes() []string {
	nodes := make([]string, 0, len(g.outputs))
	for _, o := range g.outputs {
		nodes = append(nodes, o.Node)
	}
	return nodes
}

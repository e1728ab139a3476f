package rendergraph

import (
	"fmt"

	"github.com/specialistvlad/passgraph/internal/dag"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/internal/portid"
)

// New creates an empty graph.
func New(name string) *Graph {
	return &Graph{
		name:  name,
		nodes: make(map[string]*Node),
		bound: make(map[string]Edge),
		topo:  dag.New(),
	}
}

// Name returns the graph's name.
func (g *Graph) Name() string {
	return g.name
}

// AddPass places a pass instance in the graph under a unique name.
func (g *Graph) AddPass(inst *pass.Instance, name string) error {
	if !portid.ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if inst == nil || inst.Type == nil {
		return fmt.Errorf("add pass %q: nil pass instance", name)
	}
	if _, exists := g.nodes[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePass, name)
	}

	g.nodes[name] = &Node{Name: name, Pass: inst}
	g.order = append(g.order, name)
	g.topo.AddNode(name)
	return nil
}

// RemovePass removes a pass together with its edges and output markers.
func (g *Graph) RemovePass(name string) error {
	if _, ok := g.nodes[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPass, name)
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From.Node == name || e.To.Node == name {
			if !e.IsExecution() {
				delete(g.bound, e.To.String())
			}
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	outputs := g.outputs[:0]
	for _, o := range g.outputs {
		if o.Node != name {
			outputs = append(outputs, o)
		}
	}
	g.outputs = outputs

	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	delete(g.nodes, name)
	g.topo.RemoveNode(name)
	return nil
}

// Pass looks up a pass by name.
func (g *Graph) Pass(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Passes returns the passes in insertion order.
func (g *Graph) Passes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, name := range g.order {
		nodes = append(nodes, g.nodes[name])
	}
	return nodes
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Outputs returns a copy of the marked outputs in marking order.
func (g *Graph) Outputs() []portid.Port {
	return append([]portid.Port(nil), g.outputs...)
}

// IncomingEdge returns the edge bound to an input port, if any.
func (g *Graph) IncomingEdge(input portid.Port) (Edge, bool) {
	e, ok := g.bound[input.String()]
	return e, ok
}

// AddEdge connects `src` to `dst`. Both are port addresses ("node.port") for
// a data edge or bare pass names for an execution edge.
func (g *Graph) AddEdge(src, dst string) error {
	edge, err := g.resolveEdge(src, dst)
	if err != nil {
		return fmt.Errorf("add edge %s -> %s: %w", src, dst, err)
	}

	for _, e := range g.edges {
		if e == edge {
			return fmt.Errorf("add edge %s: %w", edge, ErrDuplicateEdge)
		}
	}
	if !edge.IsExecution() {
		if existing, taken := g.bound[edge.To.String()]; taken {
			return fmt.Errorf("add edge %s: %w (%s)", edge, ErrInputAlreadyBound, existing)
		}
	}

	if err := g.topo.AddEdge(edge.From.Node, edge.To.Node); err != nil {
		return fmt.Errorf("add edge %s: %w", edge, err)
	}
	g.edges = append(g.edges, edge)
	if !edge.IsExecution() {
		g.bound[edge.To.String()] = edge
	}
	return nil
}

// RemoveEdge removes a previously added edge.
func (g *Graph) RemoveEdge(src, dst string) error {
	from, err := portid.Parse(src)
	if err != nil {
		return err
	}
	to, err := portid.Parse(dst)
	if err != nil {
		return err
	}
	target := Edge{From: from, To: to}

	for i, e := range g.edges {
		if e != target {
			continue
		}
		if err := g.topo.RemoveEdge(e.From.Node, e.To.Node); err != nil {
			return fmt.Errorf("remove edge %s: %w", e, err)
		}
		g.edges = append(g.edges[:i], g.edges[i+1:]...)
		if !e.IsExecution() {
			delete(g.bound, e.To.String())
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownEdge, target)
}

func (g *Graph) resolveEdge(src, dst string) (Edge, error) {
	from, err := portid.Parse(src)
	if err != nil {
		return Edge{}, err
	}
	to, err := portid.Parse(dst)
	if err != nil {
		return Edge{}, err
	}
	if from.IsNodeOnly() != to.IsNodeOnly() {
		return Edge{}, fmt.Errorf("%w: cannot connect a pass to a port", ErrInvalidEdge)
	}
	if from.Node == to.Node {
		return Edge{}, fmt.Errorf("%w: a pass cannot feed itself", ErrInvalidEdge)
	}

	fromNode, ok := g.nodes[from.Node]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrUnknownPass, from.Node)
	}
	toNode, ok := g.nodes[to.Node]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrUnknownPass, to.Node)
	}

	if !from.IsNodeOnly() {
		if _, ok := fromNode.Pass.Type.Output(from.Port); !ok {
			return Edge{}, fmt.Errorf("%w: %s is not an output of %s", ErrUnknownPort, from, fromNode.Pass.TypeName())
		}
		if _, ok := toNode.Pass.Type.Input(to.Port); !ok {
			return Edge{}, fmt.Errorf("%w: %s is not an input of %s", ErrUnknownPort, to, toNode.Pass.TypeName())
		}
	}
	return Edge{From: from, To: to}, nil
}

// MarkOutput marks an output channel as a graph output. Marking the same
// port twice is a no-op.
func (g *Graph) MarkOutput(port string) error {
	p, err := g.resolveOutput(port)
	if err != nil {
		return fmt.Errorf("mark output %s: %w", port, err)
	}
	for _, o := range g.outputs {
		if o == p {
			return nil
		}
	}
	g.outputs = append(g.outputs, p)
	return nil
}

// UnmarkOutput removes an output marker.
func (g *Graph) UnmarkOutput(port string) error {
	p, err := portid.Parse(port)
	if err != nil {
		return fmt.Errorf("unmark output %s: %w", port, err)
	}
	for i, o := range g.outputs {
		if o == p {
			g.outputs = append(g.outputs[:i], g.outputs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unmark output %s: %w", port, ErrNotMarked)
}

// IsOutput reports whether the port is marked as a graph output.
func (g *Graph) IsOutput(port portid.Port) bool {
	for _, o := range g.outputs {
		if o == port {
			return true
		}
	}
	return false
}

func (g *Graph) resolveOutput(port string) (portid.Port, error) {
	p, err := portid.Parse(port)
	if err != nil {
		return portid.Port{}, err
	}
	if p.IsNodeOnly() {
		return portid.Port{}, fmt.Errorf("%w: an output must name a channel", portid.ErrInvalidAddress)
	}
	n, ok := g.nodes[p.Node]
	if !ok {
		return portid.Port{}, fmt.Errorf("%w: %q", ErrUnknownPass, p.Node)
	}
	if _, ok := n.Pass.Type.Output(p.Port); !ok {
		return portid.Port{}, fmt.Errorf("%w: %s is not an output of %s", ErrUnknownPort, p, n.Pass.TypeName())
	}
	return p, nil
}

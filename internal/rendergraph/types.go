package rendergraph

import (
	"errors"

	"github.com/specialistvlad/passgraph/internal/dag"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/internal/portid"
)

var (
	ErrInvalidName       = errors.New("invalid pass name")
	ErrDuplicatePass     = errors.New("duplicate pass name")
	ErrUnknownPass       = errors.New("unknown pass")
	ErrUnknownPort       = errors.New("unknown port")
	ErrInvalidEdge       = errors.New("invalid edge")
	ErrDuplicateEdge     = errors.New("duplicate edge")
	ErrUnknownEdge       = errors.New("unknown edge")
	ErrInputAlreadyBound = errors.New("input already has an incoming edge")
	ErrNotMarked         = errors.New("port is not marked as output")
	ErrNoOutputs         = errors.New("graph has no marked outputs")
	ErrUnboundInput      = errors.New("required input is not connected")
	ErrInvalidGraph      = errors.New("invalid render graph")
)

// Graph is a named render graph.
type Graph struct {
	name  string
	nodes map[string]*Node
	// order lists pass names in insertion order.
	order   []string
	edges   []Edge
	outputs []portid.Port
	// bound maps a bound input port address to the edge feeding it.
	bound map[string]Edge
	topo  *dag.Graph
}

// Node is a pass instance placed in a graph under a name.
type Node struct {
	Name string
	Pass *pass.Instance
}

// Edge is a directed connection between two ports, or between two passes
// for execution edges.
type Edge struct {
	From portid.Port
	To   portid.Port
}

// IsExecution reports whether the edge only orders two passes.
func (e Edge) IsExecution() bool {
	return e.From.IsNodeOnly()
}

// String renders the edge as "from -> to".
func (e Edge) String() string {
	return e.From.String() + " -> " + e.To.String()
}

// Plan is the result of compiling a graph.
type Plan struct {
	// Order lists the passes contributing to the marked outputs, each after
	// the passes it depends on.
	Order []string
	// Culled lists passes that reach no marked output, in insertion order.
	Culled []string
}

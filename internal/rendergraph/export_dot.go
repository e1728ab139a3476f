package rendergraph

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNilWriter indicates that a nil writer was provided to an exporter.
var ErrNilWriter = errors.New("rendergraph: nil writer")

// DOTOption configures the behaviour of WriteDOT.
type DOTOption func(*dotConfig)

type dotConfig struct {
	graphName string
	rankDir   string
}

// DOTWithGraphName overrides the DOT graph identifier.
func DOTWithGraphName(name string) DOTOption {
	return func(cfg *dotConfig) {
		if name != "" {
			cfg.graphName = name
		}
	}
}

// DOTWithRankDir sets the rank direction (e.g. "LR", "TB") of the exported graph.
func DOTWithRankDir(rankDir string) DOTOption {
	return func(cfg *dotConfig) {
		if rankDir != "" {
			cfg.rankDir = rankDir
		}
	}
}

// WriteDOT renders the graph in Graphviz DOT format. Passes become boxes,
// data edges are labelled with their ports, execution edges are dashed, and
// every marked output gets its own terminal node.
func (g *Graph) WriteDOT(w io.Writer, opts ...DOTOption) error {
	if w == nil {
		return ErrNilWriter
	}

	cfg := dotConfig{graphName: g.name, rankDir: "LR"}
	if cfg.graphName == "" {
		cfg.graphName = "rendergraph"
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", dotQuote(cfg.graphName))
	fmt.Fprintf(&sb, "    rankdir=%s;\n", cfg.rankDir)
	sb.WriteString("    node [shape=box];\n")

	for _, n := range g.Passes() {
		label := n.Name
		if n.Pass.TypeName() != n.Name {
			label += "\\n(" + n.Pass.TypeName() + ")"
		}
		fmt.Fprintf(&sb, "    %s [label=%s];\n", dotQuote(n.Name), dotQuote(label))
	}

	for _, e := range g.edges {
		if e.IsExecution() {
			fmt.Fprintf(&sb, "    %s -> %s [style=dashed];\n", dotQuote(e.From.Node), dotQuote(e.To.Node))
			continue
		}
		label := e.From.Port + " -> " + e.To.Port
		fmt.Fprintf(&sb, "    %s -> %s [label=%s];\n", dotQuote(e.From.Node), dotQuote(e.To.Node), dotQuote(label))
	}

	for _, o := range g.outputs {
		id := "output:" + o.String()
		fmt.Fprintf(&sb, "    %s [shape=doublecircle, label=%s];\n", dotQuote(id), dotQuote(o.Port))
		fmt.Fprintf(&sb, "    %s -> %s;\n", dotQuote(o.Node), dotQuote(id))
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func dotQuote(s string) string {
	escaped := strings.ReplaceAll(s, `"`, `\"`)
	return `"` + escaped + `"`
}

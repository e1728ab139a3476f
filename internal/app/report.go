package app

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/specialistvlad/passgraph/internal/rendergraph"
)

// graphSummary describes one assembled graph. It backs both the console
// report and the inspection API.
type graphSummary struct {
	Name    string   `json:"name"`
	Active  bool     `json:"active"`
	Passes  []string `json:"passes"`
	Edges   []string `json:"edges"`
	Outputs []string `json:"outputs"`
	Order   []string `json:"order"`
	Culled  []string `json:"culled,omitempty"`
}

func summarize(g *rendergraph.Graph, active bool) (*graphSummary, error) {
	plan, err := g.Compile()
	if err != nil {
		return nil, err
	}
	s := &graphSummary{
		Name:    g.Name(),
		Active:  active,
		Passes:  make([]string, 0, len(g.Passes())),
		Edges:   make([]string, 0, len(g.Edges())),
		Outputs: make([]string, 0, len(g.Outputs())),
		Order:   plan.Order,
		Culled:  plan.Culled,
	}
	for _, n := range g.Passes() {
		s.Passes = append(s.Passes, n.Name)
	}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, e.String())
	}
	for _, o := range g.Outputs() {
		s.Outputs = append(s.Outputs, o.String())
	}
	return s, nil
}

// summaries returns a summary of every graph in the store, in name order.
func (a *App) summaries() ([]*graphSummary, error) {
	activeName := ""
	if active, ok := a.store.Active(); ok {
		activeName = active.Name()
	}
	var out []*graphSummary
	for _, name := range a.store.Names() {
		g, ok := a.store.Graph(name)
		if !ok {
			continue
		}
		s, err := summarize(g, name == activeName)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type painter interface {
	Sprint(a ...any) string
}

func (a *App) paint(p painter, s string) string {
	if a.config.NoColor {
		return s
	}
	return p.Sprint(s)
}

// printReport writes a human readable overview of the assembled graphs.
func (a *App) printReport() error {
	sums, err := a.summaries()
	if err != nil {
		return fmt.Errorf("failed to summarize graphs: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d graph(s)\n\n", a.paint(color.Green, "Assembled"), len(sums))
	for _, s := range sums {
		marker := " "
		if s.Active {
			marker = a.paint(color.Yellow, "*")
		}
		fmt.Fprintf(&b, "%s %s  passes=%d edges=%d outputs=%d\n",
			marker, a.paint(color.New(color.OpBold), s.Name), len(s.Passes), len(s.Edges), len(s.Outputs))
		fmt.Fprintf(&b, "    order: %s\n", strings.Join(s.Order, " -> "))
		fmt.Fprintf(&b, "    outputs: %s\n", a.paint(color.Cyan, strings.Join(s.Outputs, ", ")))
		if len(s.Culled) > 0 {
			fmt.Fprintf(&b, "    culled: %s\n", a.paint(color.Gray, strings.Join(s.Culled, ", ")))
		}
	}

	_, err = fmt.Fprint(a.outW, b.String())
	return err
}

package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified, format-agnostic representation of all loaded graph
// scripts.
type Model struct {
	Graphs []*GraphScript
}

// Graph returns the script with the given name.
func (m *Model) Graph(name string) (*GraphScript, bool) {
	for _, g := range m.Graphs {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// GraphScript describes how to assemble one render graph.
type GraphScript struct {
	Name string
	// Source is the file the script was read from, for error messages.
	Source    string
	Libraries []string
	Passes    []*PassDecl
	Edges     []*EdgeDecl
	Outputs   []string
}

// PassDecl declares a named pass instance and its option values.
type PassDecl struct {
	Type    string
	Name    string
	Options map[string]cty.Value
}

// EdgeDecl declares an edge between two port addresses.
type EdgeDecl struct {
	From string
	To   string
}

package script

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a script file.
type fileRoot struct {
	Graphs []*graphBlock `hcl:"graph,block"`
}

type graphBlock struct {
	Name      string       `hcl:"name,label"`
	Libraries []string     `hcl:"libraries,optional"`
	Passes    []*passBlock `hcl:"pass,block"`
	Edges     []*edgeBlock `hcl:"edge,block"`
	Outputs   []string     `hcl:"outputs,optional"`
	DeclRange hcl.Range    `hcl:",def_range"`
}

type passBlock struct {
	Type    string        `hcl:"type,label"`
	Name    string        `hcl:"name,label"`
	Options *optionsBlock `hcl:"options,block"`
}

// optionsBlock keeps the raw body so option expressions can be evaluated
// with the enum context.
type optionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type edgeBlock struct {
	From string `hcl:"from,label"`
	To   string `hcl:"to,label"`
}

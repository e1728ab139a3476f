package script

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/passgraph/internal/rendergraph"
	"github.com/zclconf/go-cty/cty"
)

// LibraryResolver maps a pass type to the library providing it.
type LibraryResolver interface {
	LibraryOf(passType string) (string, bool)
}

// Write serializes an assembled graph into a script that assembles the same
// graph again. Only options that differ from their defaults are written.
func Write(g *rendergraph.Graph, libs LibraryResolver) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body().AppendNewBlock("graph", []string{g.Name()}).Body()

	var libraries []cty.Value
	seen := make(map[string]struct{})
	for _, n := range g.Passes() {
		lib, ok := libs.LibraryOf(n.Pass.TypeName())
		if !ok {
			return nil, fmt.Errorf("write graph %q: no library provides pass type %q", g.Name(), n.Pass.TypeName())
		}
		if _, dup := seen[lib]; dup {
			continue
		}
		seen[lib] = struct{}{}
		libraries = append(libraries, cty.StringVal(lib))
	}
	if len(libraries) > 0 {
		body.SetAttributeValue("libraries", cty.ListVal(libraries))
	}

	for _, n := range g.Passes() {
		body.AppendNewline()
		passBody := body.AppendNewBlock("pass", []string{n.Pass.TypeName(), n.Name}).Body()

		changed := n.Pass.ChangedOptions()
		if len(changed) == 0 {
			continue
		}
		optBody := passBody.AppendNewBlock("options", nil).Body()
		for _, name := range changed {
			spec, _ := n.Pass.Type.Option(name)
			val := n.Pass.Option(name)
			if spec.Enum != "" {
				optBody.SetAttributeTraversal(name, hcl.Traversal{
					hcl.TraverseRoot{Name: spec.Enum},
					hcl.TraverseAttr{Name: val.AsString()},
				})
				continue
			}
			optBody.SetAttributeValue(name, val)
		}
	}

	if edges := g.Edges(); len(edges) > 0 {
		body.AppendNewline()
		for _, e := range edges {
			body.AppendNewBlock("edge", []string{e.From.String(), e.To.String()})
		}
	}

	if outputs := g.Outputs(); len(outputs) > 0 {
		body.AppendNewline()
		vals := make([]cty.Value, 0, len(outputs))
		for _, o := range outputs {
			vals = append(vals, cty.StringVal(o.String()))
		}
		body.SetAttributeValue("outputs", cty.ListVal(vals))
	}

	return hclwrite.Format(f.Bytes()), nil
}

package script

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes every enum as a variable and a handful of pure
// functions to option expressions.
func newEvalContext(enums []*pass.Enum) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(enums))
	for _, e := range enums {
		vars[e.Name] = e.Object()
	}
	return &hcl.EvalContext{
		Variables: vars,
		Functions: map[string]function.Function{
			"min":    stdlib.MinFunc,
			"max":    stdlib.MaxFunc,
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"concat": stdlib.ConcatFunc,
		},
	}
}

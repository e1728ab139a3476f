package rendergraph

import (
	"context"
	"testing"

	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/modules/accumulatepass"
	"github.com/specialistvlad/passgraph/modules/gbuffer"
	"github.com/specialistvlad/passgraph/modules/jumprenderpass"
	"github.com/specialistvlad/passgraph/modules/renderpass01"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// newPass creates an instance of a built-in pass type with its libraries loaded.
func newPass(t *testing.T, typeName string, options map[string]cty.Value) *pass.Instance {
	t.Helper()
	ctx := context.Background()
	r := pass.NewWithModules(&gbuffer.Module{}, &accumulatepass.Module{}, &jumprenderpass.Module{}, &renderpass01.Module{})
	for _, lib := range r.Libraries() {
		require.NoError(t, r.LoadPlugin(ctx, lib))
	}
	inst, err := r.CreatePass(ctx, typeName, options)
	require.NoError(t, err)
	return inst
}

// renderPass01Graph builds the accumulated ray traced graph.
func renderPass01Graph(t *testing.T) *Graph {
	t.Helper()
	g := New("RenderPass01")
	require.NoError(t, g.AddPass(newPass(t, "AccumulatePass", map[string]cty.Value{
		"enabled":       cty.True,
		"precisionMode": cty.StringVal("Single"),
	}), "AccumulatePass"))
	require.NoError(t, g.AddPass(newPass(t, "RenderPass01", nil), "RenderPass01"))
	require.NoError(t, g.AddPass(newPass(t, "VBufferRT", map[string]cty.Value{
		"samplePattern": cty.StringVal("Stratified"),
		"sampleCount":   cty.NumberIntVal(16),
	}), "VBufferRT"))
	require.NoError(t, g.AddEdge("VBufferRT.vbuffer", "RenderPass01.vbuffer"))
	require.NoError(t, g.AddEdge("VBufferRT.viewW", "RenderPass01.viewW"))
	require.NoError(t, g.AddEdge("RenderPass01.color", "AccumulatePass.input"))
	require.NoError(t, g.MarkOutput("AccumulatePass.output"))
	return g
}

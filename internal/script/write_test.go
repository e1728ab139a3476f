package script

import (
	"context"
	"testing"

	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/internal/rendergraph"
	"github.com/specialistvlad/passgraph/modules/accumulatepass"
	"github.com/specialistvlad/passgraph/modules/gbuffer"
	"github.com/specialistvlad/passgraph/modules/renderpass01"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestWrite(t *testing.T) {
	ctx := context.Background()
	reg := pass.NewWithModules(&gbuffer.Module{}, &accumulatepass.Module{}, &renderpass01.Module{})
	for _, lib := range reg.Libraries() {
		require.NoError(t, reg.LoadPlugin(ctx, lib))
	}
	create := func(typeName string, options map[string]cty.Value) *pass.Instance {
		inst, err := reg.CreatePass(ctx, typeName, options)
		require.NoError(t, err)
		return inst
	}

	g := rendergraph.New("RenderPass01")
	require.NoError(t, g.AddPass(create("AccumulatePass", map[string]cty.Value{"precisionMode": cty.StringVal("Double")}), "AccumulatePass"))
	require.NoError(t, g.AddPass(create("RenderPass01", nil), "RenderPass01"))
	require.NoError(t, g.AddPass(create("VBufferRT", map[string]cty.Value{"sampleCount": cty.NumberIntVal(4)}), "VBufferRT"))
	require.NoError(t, g.AddEdge("VBufferRT.vbuffer", "RenderPass01.vbuffer"))
	require.NoError(t, g.AddEdge("RenderPass01.color", "AccumulatePass.input"))
	require.NoError(t, g.AddEdge("VBufferRT", "AccumulatePass"))
	require.NoError(t, g.MarkOutput("AccumulatePass.output"))

	src, err := Write(g, reg)
	require.NoError(t, err)
	text := string(src)

	assert.Contains(t, text, `graph "RenderPass01" {`)
	assert.Contains(t, text, `libraries = ["AccumulatePass", "RenderPass01", "GBuffer"]`)
	assert.Contains(t, text, `precisionMode = AccumulatePrecision.Double`)
	assert.Contains(t, text, `sampleCount = 4`)
	assert.Contains(t, text, `edge "VBufferRT" "AccumulatePass" {`)
	assert.Contains(t, text, `outputs = ["AccumulatePass.output"]`)
	assert.NotContains(t, text, "samplePattern", "default options are not written")

	model, err := NewLoader(reg.Enums()).Parse(ctx, "roundtrip.hcl", src)
	require.NoError(t, err)
	require.Len(t, model.Graphs, 1)
	script := model.Graphs[0]
	assert.Equal(t, "RenderPass01", script.Name)
	assert.Len(t, script.Passes, 3)
	assert.Len(t, script.Edges, 3)
	assert.True(t, script.Passes[0].Options["precisionMode"].RawEquals(cty.StringVal("Double")))
	assert.True(t, script.Passes[2].Options["sampleCount"].RawEquals(cty.NumberIntVal(4)))
}

type noLibraries struct{}

func (noLibraries) LibraryOf(string) (string, bool) { return "", false }

func TestWrite_UnknownLibrary(t *testing.T) {
	ctx := context.Background()
	reg := pass.NewWithModules(&renderpass01.Module{})
	require.NoError(t, reg.LoadPlugin(ctx, "RenderPass01"))
	inst, err := reg.CreatePass(ctx, "RenderPass01", nil)
	require.NoError(t, err)

	g := rendergraph.New("g")
	require.NoError(t, g.AddPass(inst, "P"))

	_, err = Write(g, noLibraries{})
	assert.ErrorContains(t, err, `no library provides pass type "RenderPass01"`)
}

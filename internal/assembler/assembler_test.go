package assembler

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/passgraph/graphs"
	"github.com/specialistvlad/passgraph/internal/config"
	"github.com/specialistvlad/passgraph/internal/container"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/internal/portid"
	"github.com/specialistvlad/passgraph/internal/rendergraph"
	"github.com/specialistvlad/passgraph/internal/script"
	"github.com/specialistvlad/passgraph/modules/accumulatepass"
	"github.com/specialistvlad/passgraph/modules/gbuffer"
	"github.com/specialistvlad/passgraph/modules/jumprenderpass"
	"github.com/specialistvlad/passgraph/modules/renderpass01"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func newRegistry() *pass.Registry {
	return pass.NewWithModules(
		&gbuffer.Module{},
		&accumulatepass.Module{},
		&jumprenderpass.Module{},
		&renderpass01.Module{},
	)
}

// builtinScript loads one of the embedded scripts by graph name.
func builtinScript(t *testing.T, reg *pass.Registry, name string) *config.GraphScript {
	t.Helper()
	scripts, err := graphs.Scripts()
	require.NoError(t, err)

	loader := script.NewLoader(reg.Enums())
	for _, s := range scripts {
		model, err := loader.Parse(context.Background(), s.Filename, s.Source)
		require.NoError(t, err)
		if gs, ok := model.Graph(name); ok {
			return gs
		}
	}
	t.Fatalf("no built-in script declares graph %q", name)
	return nil
}

// countingContainer records every graph it receives.
type countingContainer struct {
	graphs []*rendergraph.Graph
	err    error
}

func (c *countingContainer) AddGraph(_ context.Context, g *rendergraph.Graph) error {
	c.graphs = append(c.graphs, g)
	return c.err
}

func TestAssemble_JumpRenderPass(t *testing.T) {
	reg := newRegistry()
	c := &countingContainer{}

	g, err := Assemble(context.Background(), builtinScript(t, reg, "JumpRenderPass"), reg, c)
	require.NoError(t, err)

	assert.Equal(t, "JumpRenderPass", g.Name())
	assert.Len(t, g.Passes(), 2)
	assert.Len(t, g.Edges(), 2)
	assert.Equal(t, []portid.Port{portid.New("JumpRenderPass", "output")}, g.Outputs())
	require.Len(t, c.graphs, 1, "graph is registered exactly once")
	assert.Same(t, g, c.graphs[0])

	raster, ok := g.Pass("GBufferRaster")
	require.True(t, ok)
	assert.True(t, raster.Pass.Option("samplePattern").RawEquals(cty.StringVal("Center")))
	assert.True(t, raster.Pass.Option("sampleCount").RawEquals(cty.NumberIntVal(16)))
}

func TestAssemble_RenderPass01(t *testing.T) {
	reg := newRegistry()
	store := container.New()

	g, err := Assemble(context.Background(), builtinScript(t, reg, "RenderPass01"), reg, store)
	require.NoError(t, err)

	assert.Len(t, g.Passes(), 3)
	assert.Len(t, g.Edges(), 3)
	assert.Equal(t, []portid.Port{portid.New("AccumulatePass", "output")}, g.Outputs())

	stored, ok := store.Graph("RenderPass01")
	require.True(t, ok)
	assert.Same(t, g, stored)
	assert.Equal(t, 1, store.Len())

	for _, lib := range []string{"GBuffer", "AccumulatePass", "RenderPass01"} {
		assert.True(t, reg.Loaded(lib), "library %s should be loaded", lib)
	}
	assert.False(t, reg.Loaded("JumpRenderPass"))

	acc, _ := g.Pass("AccumulatePass")
	assert.True(t, acc.Pass.Option("precisionMode").RawEquals(cty.StringVal("Single")))
	assert.True(t, acc.Pass.Option("enabled").True())
}

func TestAssemble_NilContainer(t *testing.T) {
	reg := newRegistry()

	g, err := Assemble(context.Background(), builtinScript(t, reg, "RenderPass01"), reg, nil)
	require.NoError(t, err)
	assert.Equal(t, "RenderPass01", g.Name())
}

func TestAssemble_TypedNilContainer(t *testing.T) {
	reg := newRegistry()
	var store *container.Store

	var (
		g   *rendergraph.Graph
		err error
	)
	require.NotPanics(t, func() {
		g, err = Assemble(context.Background(), builtinScript(t, reg, "JumpRenderPass"), reg, store)
	})
	require.NoError(t, err)
	assert.Equal(t, "JumpRenderPass", g.Name())
}

func TestAssemble_LibraryMustBeListedByScript(t *testing.T) {
	reg := newRegistry()
	unlisted := &config.GraphScript{
		Name:    "Unlisted",
		Passes:  []*config.PassDecl{{Type: "JumpRenderPass", Name: "J"}},
		Outputs: []string{"J.output"},
	}

	_, err := Assemble(context.Background(), unlisted, reg, nil)
	require.ErrorIs(t, err, pass.ErrPassTypeNotLoaded)

	// Another graph loading the library first must not change the outcome.
	_, err = Assemble(context.Background(), builtinScript(t, reg, "JumpRenderPass"), reg, nil)
	require.NoError(t, err)
	require.True(t, reg.Loaded("JumpRenderPass"))

	_, err = Assemble(context.Background(), unlisted, reg, nil)
	require.ErrorIs(t, err, pass.ErrPassTypeNotLoaded)
	assert.ErrorContains(t, err, `which the graph does not list`)

	unlisted.Libraries = []string{"libJumpRenderPass.so"}
	_, err = Assemble(context.Background(), unlisted, reg, nil)
	assert.NoError(t, err)
}

func TestAssemble_RegisterError(t *testing.T) {
	reg := newRegistry()
	store := container.New()
	gs := builtinScript(t, reg, "JumpRenderPass")

	_, err := Assemble(context.Background(), gs, reg, store)
	require.NoError(t, err)

	_, err = Assemble(context.Background(), gs, reg, store)
	require.Error(t, err)
	assert.ErrorIs(t, err, container.ErrDuplicateGraph)
	assert.ErrorContains(t, err, `graph "JumpRenderPass": register`)
}

func TestAssemble_Errors(t *testing.T) {
	valid := func() *config.GraphScript {
		return &config.GraphScript{
			Name:      "g",
			Libraries: []string{"GBuffer.dll", "RenderPass01.dll"},
			Passes: []*config.PassDecl{
				{Type: "VBufferRT", Name: "V"},
				{Type: "RenderPass01", Name: "R"},
			},
			Edges:   []*config.EdgeDecl{{From: "V.vbuffer", To: "R.vbuffer"}},
			Outputs: []string{"R.color"},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(s *config.GraphScript)
		wantErr error
		step    string
	}{
		{
			name:    "unknown library",
			mutate:  func(s *config.GraphScript) { s.Libraries = append(s.Libraries, "Missing.dll") },
			wantErr: pass.ErrUnknownLibrary,
			step:    `load library "Missing.dll"`,
		},
		{
			name:    "library not loaded",
			mutate:  func(s *config.GraphScript) { s.Libraries = s.Libraries[:1] },
			wantErr: pass.ErrPassTypeNotLoaded,
			step:    `create pass "R"`,
		},
		{
			name: "invalid option",
			mutate: func(s *config.GraphScript) {
				s.Passes[0].Options = map[string]cty.Value{"sampleCount": cty.NumberIntVal(0)}
			},
			wantErr: pass.ErrInvalidOption,
			step:    `create pass "V"`,
		},
		{
			name: "duplicate pass",
			mutate: func(s *config.GraphScript) {
				s.Passes = append(s.Passes, &config.PassDecl{Type: "VBufferRT", Name: "V"})
			},
			wantErr: rendergraph.ErrDuplicatePass,
			step:    `add pass "V"`,
		},
		{
			name:    "edge to unknown pass",
			mutate:  func(s *config.GraphScript) { s.Edges[0].To = "X.vbuffer" },
			wantErr: rendergraph.ErrUnknownPass,
			step:    "add edge V.vbuffer -> X.vbuffer",
		},
		{
			name:    "unknown output port",
			mutate:  func(s *config.GraphScript) { s.Outputs = []string{"R.missing"} },
			wantErr: rendergraph.ErrUnknownPort,
			step:    `mark output "R.missing"`,
		},
		{
			name:    "no outputs",
			mutate:  func(s *config.GraphScript) { s.Outputs = nil },
			wantErr: rendergraph.ErrNoOutputs,
			step:    "validate",
		},
		{
			name:    "unbound required input",
			mutate:  func(s *config.GraphScript) { s.Edges = nil },
			wantErr: rendergraph.ErrUnboundInput,
			step:    "validate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := newRegistry()
			c := &countingContainer{}
			s := valid()
			tc.mutate(s)

			g, err := Assemble(context.Background(), s, reg, c)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorContains(t, err, `graph "g": `+tc.step)
			assert.Empty(t, c.graphs, "a failed graph is never registered")
		})
	}
}

func TestAssemble_ValidScriptBaseline(t *testing.T) {
	reg := newRegistry()
	s := &config.GraphScript{
		Name:      "g",
		Libraries: []string{"GBuffer.dll", "RenderPass01.dll"},
		Passes: []*config.PassDecl{
			{Type: "VBufferRT", Name: "V"},
			{Type: "RenderPass01", Name: "R"},
		},
		Edges:   []*config.EdgeDecl{{From: "V.vbuffer", To: "R.vbuffer"}},
		Outputs: []string{"R.color"},
	}
	_, err := Assemble(context.Background(), s, reg, nil)
	require.NoError(t, err)
}

func TestAssemble_NilScript(t *testing.T) {
	_, err := Assemble(context.Background(), nil, newRegistry(), nil)
	assert.True(t, errors.Is(err, ErrNilScript))
}

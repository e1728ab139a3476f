package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/passgraph/internal/config"
	"github.com/specialistvlad/passgraph/internal/pass"
	"github.com/specialistvlad/passgraph/modules/accumulatepass"
	"github.com/specialistvlad/passgraph/modules/gbuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testLoader() *Loader {
	return NewLoader([]*pass.Enum{gbuffer.SamplePattern, accumulatepass.Precision})
}

const renderPass01Script = `
graph "RenderPass01" {
  libraries = ["GBuffer.dll", "AccumulatePass.dll", "RenderPass01.dll"]

  pass "AccumulatePass" "AccumulatePass" {
    options {
      enabled       = true
      precisionMode = AccumulatePrecision.Single
    }
  }
  pass "RenderPass01" "RenderPass01" {}
  pass "VBufferRT" "VBufferRT" {
    options {
      samplePattern = SamplePattern.Stratified
      sampleCount   = max(4, 16)
    }
  }

  edge "VBufferRT.vbuffer" "RenderPass01.vbuffer" {}
  edge "VBufferRT.viewW" "RenderPass01.viewW" {}
  edge "RenderPass01.color" "AccumulatePass.input" {}

  outputs = ["AccumulatePass.output"]
}
`

// ctyComparer lets cmp compare cty values structurally.
var ctyComparer = cmp.Comparer(func(a, b cty.Value) bool { return a.RawEquals(b) })

func TestParse_RenderPass01(t *testing.T) {
	model, err := testLoader().Parse(context.Background(), "RenderPass01.hcl", []byte(renderPass01Script))
	require.NoError(t, err)
	require.Len(t, model.Graphs, 1)

	expected := &config.GraphScript{
		Name:      "RenderPass01",
		Source:    "RenderPass01.hcl",
		Libraries: []string{"GBuffer.dll", "AccumulatePass.dll", "RenderPass01.dll"},
		Passes: []*config.PassDecl{
			{Type: "AccumulatePass", Name: "AccumulatePass", Options: map[string]cty.Value{
				"enabled":       cty.True,
				"precisionMode": cty.StringVal("Single"),
			}},
			{Type: "RenderPass01", Name: "RenderPass01", Options: map[string]cty.Value{}},
			{Type: "VBufferRT", Name: "VBufferRT", Options: map[string]cty.Value{
				"samplePattern": cty.StringVal("Stratified"),
				"sampleCount":   cty.NumberIntVal(16),
			}},
		},
		Edges: []*config.EdgeDecl{
			{From: "VBufferRT.vbuffer", To: "RenderPass01.vbuffer"},
			{From: "VBufferRT.viewW", To: "RenderPass01.viewW"},
			{From: "RenderPass01.color", To: "AccumulatePass.input"},
		},
		Outputs: []string{"AccumulatePass.output"},
	}

	if diff := cmp.Diff(expected, model.Graphs[0], ctyComparer); diff != "" {
		t.Errorf("graph script mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		errContains string
	}{
		{
			name:        "syntax error",
			src:         `graph "g" {`,
			errContains: "failed to parse",
		},
		{
			name:        "unknown block",
			src:         `pipeline "g" {}`,
			errContains: "failed to decode",
		},
		{
			name:        "unknown attribute",
			src:         `graph "g" { color = "red" }`,
			errContains: "failed to decode",
		},
		{
			name: "unknown enum member",
			src: `graph "g" {
  pass "VBufferRT" "V" {
    options { samplePattern = SamplePattern.Spiral }
  }
}`,
			errContains: "invalid option value",
		},
		{
			name: "unknown variable",
			src: `graph "g" {
  pass "VBufferRT" "V" {
    options { samplePattern = Pattern.Center }
  }
}`,
			errContains: `pass "V"`,
		},
		{
			name: "nested block in options",
			src: `graph "g" {
  pass "VBufferRT" "V" {
    options {
      nested {}
    }
  }
}`,
			errContains: "invalid options block",
		},
		{
			name:        "empty graph name",
			src:         `graph "" {}`,
			errContains: "non-empty name",
		},
		{
			name: "duplicate graph in one file",
			src: `graph "g" {}
graph "g" {}`,
			errContains: `graph "g" declared in dup.hcl is already declared in dup.hcl`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := testLoader().Parse(context.Background(), "dup.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.errContains)
		})
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	write("b/second.hcl", `graph "Second" { outputs = ["B.out"] }`)
	write("a.hcl", `graph "First" {}`)
	write("readme.md", `graph "Ignored" {}`)

	model, err := testLoader().Load(context.Background(), dir, filepath.Join(dir, "a.hcl"))
	require.NoError(t, err)
	require.Len(t, model.Graphs, 2)
	assert.Equal(t, "First", model.Graphs[0].Name)
	assert.Equal(t, "Second", model.Graphs[1].Name)
	assert.Equal(t, []string{"B.out"}, model.Graphs[1].Outputs)

	_, ok := model.Graph("Ignored")
	assert.False(t, ok)
}

func TestLoad_DuplicateAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`graph "G" {}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`graph "G" {}`), 0o644))

	_, err := testLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, `graph "G"`)
	assert.ErrorContains(t, err, "already declared")
}

func TestLoad_MissingPath(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing")

	_, err := testLoader().Load(context.Background(), dir, missing)
	require.ErrorIs(t, err, ErrPathNotFound)
	assert.ErrorContains(t, err, missing)
}

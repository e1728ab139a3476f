package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// AssertGraphAssembled checks that the named graph reached the container with
// the expected number of passes, edges and outputs.
func AssertGraphAssembled(t *testing.T, result *HarnessResult, name string, passes, edges, outputs int) {
	t.Helper()

	require.NotNil(t, result.App, "application was not created: %v", result.Err)
	g, ok := result.App.Store().Graph(name)
	require.True(t, ok, "graph %q was not registered", name)

	assert.Len(t, g.Passes(), passes, "pass count of %q", name)
	assert.Len(t, g.Edges(), edges, "edge count of %q", name)
	assert.Len(t, g.Outputs(), outputs, "output count of %q", name)
}

// AssertPassOption checks the resolved value of one option of a pass.
func AssertPassOption(t *testing.T, result *HarnessResult, graph, passName, option string, want cty.Value) {
	t.Helper()

	require.NotNil(t, result.App)
	g, ok := result.App.Store().Graph(graph)
	require.True(t, ok, "graph %q was not registered", graph)
	n, ok := g.Pass(passName)
	require.True(t, ok, "graph %q has no pass %q", graph, passName)

	got := n.Pass.Option(option)
	assert.True(t, got.RawEquals(want), "option %s.%s = %#v, want %#v", passName, option, got, want)
}

package script

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/passgraph/internal/config"
	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// translateGraph converts a decoded graph block into the agnostic model,
// evaluating every option expression.
func (l *Loader) translateGraph(ctx context.Context, file string, b *graphBlock) (*config.GraphScript, error) {
	logger := ctxlog.FromContext(ctx).With("graph", b.Name, "file", file)

	if b.Name == "" {
		return nil, fmt.Errorf("%s: graph block needs a non-empty name", b.DeclRange)
	}

	script := &config.GraphScript{
		Name:      b.Name,
		Source:    file,
		Libraries: b.Libraries,
		Outputs:   b.Outputs,
	}

	for _, p := range b.Passes {
		options, err := l.evalOptions(p.Options)
		if err != nil {
			return nil, fmt.Errorf("graph %q, pass %q: %w", b.Name, p.Name, err)
		}
		script.Passes = append(script.Passes, &config.PassDecl{
			Type:    p.Type,
			Name:    p.Name,
			Options: options,
		})
	}
	for _, e := range b.Edges {
		script.Edges = append(script.Edges, &config.EdgeDecl{From: e.From, To: e.To})
	}

	logger.Debug("Translated graph script.",
		"libraries", len(script.Libraries),
		"passes", len(script.Passes),
		"edges", len(script.Edges),
		"outputs", len(script.Outputs),
	)
	return script, nil
}

// evalOptions evaluates the attributes of an options block. A missing block
// yields an empty mapping.
func (l *Loader) evalOptions(block *optionsBlock) (map[string]cty.Value, error) {
	options := make(map[string]cty.Value)
	if block == nil || block.Body == nil {
		return options, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid options block: %w", diags)
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var all hcl.Diagnostics
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(l.evalCtx)
		if diags.HasErrors() {
			all = append(all, diags...)
			continue
		}
		options[name] = val
	}
	if all.HasErrors() {
		return nil, fmt.Errorf("invalid option value: %w", all)
	}
	return options, nil
}

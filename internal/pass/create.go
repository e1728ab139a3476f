package pass

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// CreatePass instantiates a pass of a loaded library with the given options.
// Omitted options take their declared default; a null value also selects the
// default.
func (r *Registry) CreatePass(ctx context.Context, typeName string, options map[string]cty.Value) (*Instance, error) {
	logger := ctxlog.FromContext(ctx).With("pass_type", typeName)

	r.mu.RLock()
	defer r.mu.RUnlock()

	t, owner, err := r.lookup(typeName)
	if err != nil {
		return nil, err
	}
	if _, ok := r.loaded[owner]; !ok {
		return nil, fmt.Errorf("%w: %q is provided by library %q", ErrPassTypeNotLoaded, typeName, owner)
	}

	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	resolved := make(map[string]cty.Value, len(t.Options))
	for _, name := range names {
		spec, ok := t.Option(name)
		if !ok {
			return nil, fmt.Errorf("%w: pass type %q has no option %q", ErrUnknownOption, typeName, name)
		}
		val := options[name]
		if val.IsNull() {
			continue
		}
		converted, err := r.convertOption(spec, val)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidOption, typeName, name, err)
		}
		resolved[name] = converted
	}

	for _, spec := range t.Options {
		if _, set := resolved[spec.Name]; set {
			continue
		}
		if spec.Default != cty.NilVal {
			resolved[spec.Name] = spec.Default
		}
	}

	logger.Debug("Pass instance created.", "options_given", len(options), "options_resolved", len(resolved))
	return &Instance{Type: t, Options: resolved}, nil
}

// convertOption coerces a value to the option's declared type and applies the enum and
// custom constraints. Callers hold the read lock.
func (r *Registry) convertOption(spec OptionSpec, val cty.Value) (cty.Value, error) {
	if !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("value must be known when the graph is assembled")
	}

	converted, err := convert.Convert(val, spec.Type)
	if err != nil {
		return cty.NilVal, fmt.Errorf("expected %s: %w", spec.Type.FriendlyName(), err)
	}

	if spec.Enum != "" {
		enum, ok := r.enums[spec.Enum]
		if !ok {
			return cty.NilVal, fmt.Errorf("enum %q is not registered", spec.Enum)
		}
		if !enum.Has(converted.AsString()) {
			return cty.NilVal, fmt.Errorf("%q is not a member of %s %v", converted.AsString(), enum.Name, enum.Values)
		}
	}

	if spec.Check != nil {
		if err := spec.Check(converted); err != nil {
			return cty.NilVal, err
		}
	}
	return converted, nil
}

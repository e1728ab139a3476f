package pass

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/passgraph/internal/ctxlog"
	"github.com/specialistvlad/passgraph/internal/portid"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/multierr"
)

// ErrInvalidRegistry wraps every problem found by Validate.
var ErrInvalidRegistry = errors.New("pass registry validation failed")

// Validate performs a consistency check of everything registered: channel
// names are unique per direction, option defaults fit their types and enums,
// and no pass type is claimed by two libraries.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs error
	for _, c := range r.conflicts {
		errs = multierr.Append(errs, errors.New(c))
	}

	for _, name := range sortedKeys(r.libraries) {
		lib := r.libraries[name]
		if len(lib.Types) == 0 {
			logger.Warn("Pass library provides no pass types.", "library", name)
		}
		for _, t := range lib.Types {
			errs = multierr.Append(errs, r.validateType(t))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegistry, errs)
	}
	return nil
}

func (r *Registry) validateType(t *Type) error {
	var errs error

	if t.Name == "" {
		return errors.New("pass type with empty name")
	}
	errs = multierr.Append(errs, uniqueChannels(t.Name, "input", t.Inputs))
	errs = multierr.Append(errs, uniqueChannels(t.Name, "output", t.Outputs))

	seen := make(map[string]struct{})
	for _, spec := range t.Options {
		if _, dup := seen[spec.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("pass type %q: option %q declared twice", t.Name, spec.Name))
			continue
		}
		seen[spec.Name] = struct{}{}

		if spec.Default == cty.NilVal || spec.Default.IsNull() {
			errs = multierr.Append(errs, fmt.Errorf("pass type %q: option %q has no default value", t.Name, spec.Name))
			continue
		}
		if _, err := r.convertOption(spec, spec.Default); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("pass type %q: default of option %q: %w", t.Name, spec.Name, err))
		}
	}
	return errs
}

func uniqueChannels(typeName, direction string, channels []Channel) error {
	var errs error
	seen := make(map[string]struct{})
	for _, c := range channels {
		if !portid.ValidName(c.Name) {
			errs = multierr.Append(errs, fmt.Errorf("pass type %q: %s channel name %q is not a valid port name", typeName, direction, c.Name))
			continue
		}
		if _, dup := seen[c.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("pass type %q: %s channel %q declared twice", typeName, direction, c.Name))
		}
		seen[c.Name] = struct{}{}
	}
	return errs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

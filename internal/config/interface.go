package config

import "context"

// Loader is the interface for a format-specific graph script loader.
type Loader interface {
	// Load reads every script found under the given paths and translates
	// them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

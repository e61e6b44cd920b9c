package config

import "context"

// Loader is the interface for a format-specific build description loader.
// Implementations parse user-authored files, validate them at the boundary,
// and return the typed model. The rest of the pipeline never sees raw input.
type Loader interface {
	// Load reads the build description (and any bundle registry files) from
	// the given paths and translates it into the typed model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

package config

import "context"

// Loader is the interface for a format-specific component loader.
type Loader interface {
	// Load reads every given path (file or directory) and translates what it
	// finds into a single Model. Components keep the order in which they
	// appear in the inputs.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

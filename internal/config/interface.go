package config

import (
	"context"
)

// Loader is the interface for a format-specific scenario loader.
type Loader interface {
	// Load reads the scenario at path and translates it into a Document.
	// Syntax and structure failures are returned as *ParseError.
	Load(ctx context.Context, path string) (*Document, error)
}

// Package loader picks a scenario loader from a file's extension.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/randscenario/internal/config"
	"github.com/specialistvlad/randscenario/internal/file_adapter"
	"github.com/specialistvlad/randscenario/internal/hcl_adapter"
)

// ErrUnsupportedExtension is returned for a scenario path whose extension
// no loader handles.
var ErrUnsupportedExtension = errors.New("unsupported scenario file extension")

var byExtension = map[string]func() config.Loader{
	".hcl":  func() config.Loader { return hcl_adapter.NewLoader() },
	".toml": func() config.Loader { return file_adapter.NewLoader(file_adapter.FormatTOML) },
	".yaml": func() config.Loader { return file_adapter.NewLoader(file_adapter.FormatYAML) },
	".yml":  func() config.Loader { return file_adapter.NewLoader(file_adapter.FormatYAML) },
	".json": func() config.Loader { return file_adapter.NewLoader(file_adapter.FormatJSON) },
}

// Extensions lists the supported extensions in sorted order.
func Extensions() []string {
	out := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// ForPath returns the loader for the given scenario path.
func ForPath(path string) (config.Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	newLoader, ok := byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnsupportedExtension, ext, strings.Join(Extensions(), ", "))
	}
	return newLoader(), nil
}

// Load reads the scenario at path with the loader its extension selects.
// An unsupported extension is reported as a *config.ParseError.
func Load(ctx context.Context, path string) (*config.Document, error) {
	l, err := ForPath(path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}
	return l.Load(ctx, path)
}

package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/randscenario/internal/ctxlog"
)

// Validate checks that every encoder has a usable name and extension and
// that no two encoders claim the same extension.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	if len(r.encoders) == 0 {
		return errors.New("registry validation failed: no encoders registered")
	}

	byExt := make(map[string]string, len(r.encoders))
	for _, name := range r.Names() {
		e := r.encoders[name]
		if name == "" || name != strings.ToLower(name) {
			errs = append(errs, fmt.Sprintf("encoder '%s': name must be non-empty lower case", name))
		}
		ext := e.Extension()
		if ext == "" || strings.ContainsAny(ext, `./\`) {
			errs = append(errs, fmt.Sprintf("encoder '%s': invalid extension '%s'", name, ext))
			continue
		}
		if other, dup := byExt[ext]; dup {
			errs = append(errs, fmt.Sprintf("encoders '%s' and '%s' share the extension '%s'", other, name, ext))
			continue
		}
		byExt[ext] = name
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Registry validation passed.", "encoders", len(r.encoders))
	return nil
}

package file_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/randscenario/internal/config"
	"github.com/specialistvlad/randscenario/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader implements config.Loader for one tree format.
type Loader struct {
	format Format
}

// NewLoader creates a loader for the given format.
func NewLoader(format Format) *Loader {
	return &Loader{format: format}
}

// Format returns the format this loader reads.
func (l *Loader) Format() Format {
	return l.format
}

// Load reads and translates the scenario at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("File loader started.", "path", path, "format", l.format)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}

	var raw fileScenario
	if err := l.format.decode(data, &raw); err != nil {
		return nil, &config.ParseError{Path: path, Err: fmt.Errorf("invalid %s: %w", l.format, err)}
	}

	doc, err := translate(path, string(l.format), &raw)
	if err != nil {
		return nil, &config.ParseError{Path: path, Err: err}
	}

	logger.Debug("File loading complete.", "scenario", doc.Name, "variables", len(doc.Variables))
	return doc, nil
}

func translate(path, format string, raw *fileScenario) (*config.Document, error) {
	seed, err := parseSeed(raw.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	doc := &config.Document{
		Path:      path,
		Format:    format,
		Name:      raw.Name,
		Seed:      seed,
		Variables: make([]*config.Variable, 0, len(raw.Variables)),
	}

	for i, v := range raw.Variables {
		if v == nil {
			return nil, fmt.Errorf("variable #%d is empty", i+1)
		}
		samples := cty.NullVal(cty.Number)
		if v.Samples != nil {
			samples, err = config.NativeToCty(v.Samples)
			if err != nil {
				return nil, fmt.Errorf("variable #%d (%s) samples: %w", i+1, v.Name, err)
			}
		}
		params, err := config.NativeMapToCty(v.Params)
		if err != nil {
			return nil, fmt.Errorf("variable #%d (%s): %w", i+1, v.Name, err)
		}
		doc.Variables = append(doc.Variables, &config.Variable{
			Name:         v.Name,
			Distribution: v.Distribution,
			Samples:      samples,
			Params:       params,
			Location:     fmt.Sprintf("%s: variable #%d", path, i+1),
		})
	}
	return doc, nil
}

// parseSeed accepts a whole number or a decimal string. Strings let TOML
// carry seeds above the signed 64-bit range.
func parseSeed(v any) (*uint64, error) {
	var seed uint64
	switch v := v.(type) {
	case nil:
		return nil, nil
	case int:
		if v < 0 {
			return nil, fmt.Errorf("must be non-negative, got %d", v)
		}
		seed = uint64(v)
	case int64:
		if v < 0 {
			return nil, fmt.Errorf("must be non-negative, got %d", v)
		}
		seed = uint64(v)
	case uint64:
		seed = v
	case float64:
		if v < 0 || v != math.Trunc(v) || v >= math.MaxUint64 {
			return nil, fmt.Errorf("must be a non-negative whole number, got %g", v)
		}
		seed = uint64(v)
	case json.Number:
		return parseSeed(v.String())
	case string:
		s := strings.TrimSpace(v)
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			if f, ok := new(big.Float).SetString(s); ok {
				return nil, fmt.Errorf("must be a non-negative whole number below 2^64, got %s", f.Text('g', -1))
			}
			return nil, fmt.Errorf("must be a non-negative whole number, got %q", v)
		}
		seed = n
	default:
		return nil, fmt.Errorf("must be a whole number, got %T", v)
	}
	return &seed, nil
}

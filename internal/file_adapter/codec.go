package file_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a tree format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// decode parses data into out, rejecting keys the schema does not know.
func (f Format) decode(data []byte, out *fileScenario) error {
	switch f {
	case FormatTOML:
		meta, err := toml.Decode(string(data), out)
		if err != nil {
			return err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
		return nil

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				// An empty document decodes to an empty scenario.
				return nil
			}
			return err
		}
		return nil

	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		if err := dec.Decode(out); err != nil {
			return err
		}
		if dec.More() {
			return errors.New("unexpected data after the top-level object")
		}
		return nil

	default:
		return fmt.Errorf("unsupported format %q", string(f))
	}
}

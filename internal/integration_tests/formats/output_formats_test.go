package integration_tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/randscenario/internal/app"
	"github.com/specialistvlad/randscenario/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const outputScenario = `
scenario {
  name = "out"
  seed = 8
}
variable "u" {
  distribution = "uniform"
  samples      = 3
  params = {
    low  = -1
    high = 1
  }
}
variable "k" {
  distribution = "binomial"
  samples      = 2
  params = {
    n = 10
    p = 0.3
  }
}
`

type decodedFile struct {
	Scenario string `json:"scenario" yaml:"scenario" toml:"scenario"`
	Ordinal  int    `json:"ordinal" yaml:"ordinal" toml:"ordinal"`
	Seed     struct {
		Base   string `json:"base" yaml:"base" toml:"base"`
		Stream string `json:"stream" yaml:"stream" toml:"stream"`
	} `json:"seed" yaml:"seed" toml:"seed"`
	Variables []struct {
		Name         string `json:"name" yaml:"name" toml:"name"`
		Distribution string `json:"distribution" yaml:"distribution" toml:"distribution"`
		Values       []any  `json:"values" yaml:"values" toml:"values"`
	} `json:"variables" yaml:"variables" toml:"variables"`
}

func numbers(t *testing.T, values []any) []float64 {
	t.Helper()
	out := make([]float64, len(values))
	for i, v := range values {
		switch n := v.(type) {
		case float64:
			out[i] = n
		case int:
			out[i] = float64(n)
		case int64:
			out[i] = float64(n)
		default:
			t.Fatalf("value %d has unexpected type %T", i, v)
		}
	}
	return out
}

func runFormat(t *testing.T, format string) string {
	t.Helper()
	result := testutil.RunIntegrationTest(t, map[string]string{"out.hcl": outputScenario}, "out.hcl", 1, testutil.Options{
		Configure: func(cfg *app.Config) { cfg.Format = format },
	})
	require.NoError(t, result.Err)
	testutil.AssertOutputFiles(t, result.OutputDir, "out", format, 1)
	return filepath.Join(result.OutputDir, "out_1."+format)
}

// Test for: structured encoders carry the same values as CSV
func TestFormats_Encoders_AgreeWithCSV(t *testing.T) {
	t.Parallel()

	_, csvValues := testutil.ReadCSVOutput(t, runFormat(t, "csv"))
	wantU := testutil.ParseFloats(t, csvValues["u"])
	wantK := testutil.ParseFloats(t, csvValues["k"])

	decoders := map[string]func(raw []byte, into *decodedFile) error{
		"json": func(raw []byte, into *decodedFile) error { return json.Unmarshal(raw, into) },
		"yaml": func(raw []byte, into *decodedFile) error { return yaml.Unmarshal(raw, into) },
		"toml": func(raw []byte, into *decodedFile) error { return toml.Unmarshal(raw, into) },
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			raw, err := os.ReadFile(runFormat(t, format))
			require.NoError(t, err)

			var got decodedFile
			require.NoError(t, decode(raw, &got))

			assert.Equal(t, "out", got.Scenario)
			assert.Equal(t, 1, got.Ordinal)
			assert.Equal(t, "8", got.Seed.Base)
			assert.Equal(t, "1", got.Seed.Stream)
			require.Len(t, got.Variables, 2)
			assert.Equal(t, "u", got.Variables[0].Name)
			assert.Equal(t, "uniform", got.Variables[0].Distribution)
			assert.Equal(t, wantU, numbers(t, got.Variables[0].Values))
			assert.Equal(t, wantK, numbers(t, got.Variables[1].Values))
		})
	}
}

// Test for: HCL output is valid HCL
func TestFormats_HCLEncoder_ProducesParsableHCL(t *testing.T) {
	t.Parallel()

	path := runFormat(t, "hcl")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	_, diags := hclparse.NewParser().ParseHCL(raw, path)
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Contains(t, string(raw), `variable "u"`)
	assert.Contains(t, string(raw), `variable "k"`)
	assert.Contains(t, string(raw), "seed {")
}

const overflowScenario = `
variable "huge" {
  distribution = "lognormal"
  samples      = 2
  params = {
    mu    = 800
    sigma = 1
  }
}
`

// Test for: samples that overflow to infinity are written by every encoder
func TestFormats_OverflowingSamples_AreWrittenAsText(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"csv", "json", "yaml", "toml", "hcl"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := testutil.RunIntegrationTest(t, map[string]string{"huge.hcl": overflowScenario}, "huge.hcl", 1, testutil.Options{
				Configure: func(cfg *app.Config) { cfg.Format = format },
			})

			// --- Assert ---
			require.NoError(t, result.Err)
			testutil.AssertOutputFiles(t, result.OutputDir, "huge", format, 1)
			raw, err := os.ReadFile(filepath.Join(result.OutputDir, "huge_1."+format))
			require.NoError(t, err)
			assert.Contains(t, string(raw), "+Inf")
			if format == "hcl" {
				_, diags := hclparse.NewParser().ParseHCL(raw, "huge_1.hcl")
				require.False(t, diags.HasErrors(), diags.Error())
			}
		})
	}
}

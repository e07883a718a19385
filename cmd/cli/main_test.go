package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/randscenario/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "demo.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	return dir, path
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir, path := writeScenario(t, `
variable "v" {
  distribution = "uniform"
  samples      = 5
}
`)
	outDir := filepath.Join(dir, "out")
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, []string{"-seed", "42", path, outDir, "3"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Generated 3 files in "+outDir+" (base seed 42).\n", out.String())
	assert.FileExists(t, filepath.Join(outDir, "demo_1.csv"))
	assert.FileExists(t, filepath.Join(outDir, "demo_3.csv"))
	assert.FileExists(t, filepath.Join(outDir, "seed.txt"))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	validScenario := `
variable "x" {
  distribution = "normal"
  params = {
    mean   = 0
    stddev = 1
  }
}
`
	invalidScenario := `
variable "x" {
  distribution = "normal"
  params = {
    mean   = 0
    stddev = -1
  }
}
`

	testCases := []struct {
		name     string
		scenario string
		args     func(path, outDir string) []string
		preexist bool
		wantCode int
	}{
		{
			name:     "unknown flag",
			scenario: validScenario,
			args:     func(path, outDir string) []string { return []string{"--this-is-not-a-valid-flag", path, outDir, "1"} },
			wantCode: cli.ExitUsage,
		},
		{
			name:     "unknown format",
			scenario: validScenario,
			args:     func(path, outDir string) []string { return []string{"-format", "xml", path, outDir, "1"} },
			wantCode: cli.ExitUsage,
		},
		{
			name:     "invalid scenario",
			scenario: invalidScenario,
			args:     func(path, outDir string) []string { return []string{path, outDir, "1"} },
			wantCode: cli.ExitScenario,
		},
		{
			name:     "unparsable scenario",
			scenario: `variable "x" {`,
			args:     func(path, outDir string) []string { return []string{path, outDir, "1"} },
			wantCode: cli.ExitScenario,
		},
		{
			name:     "existing output directory",
			scenario: validScenario,
			args:     func(path, outDir string) []string { return []string{path, outDir, "1"} },
			preexist: true,
			wantCode: cli.ExitOutput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			dir, path := writeScenario(t, tc.scenario)
			outDir := filepath.Join(dir, "out")
			if tc.preexist {
				require.NoError(t, os.Mkdir(outDir, 0o755))
			}

			// --- Act ---
			err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, tc.args(path, outDir))

			// --- Assert ---
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, cli.Classify(err).Code, "error: %v", err)
			if !tc.preexist {
				assert.NoDirExists(t, outDir)
			}
		})
	}
}

package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/randscenario/internal/app"
	"github.com/specialistvlad/randscenario/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Stdout    string
	Err       error
	Result    *app.Result
	// Root is the temporary directory holding the scenario files.
	Root string
	// OutputDir is where the run was told to write.
	OutputDir string
	App       *app.App
}

// Options tweaks a harness run.
type Options struct {
	// Configure adjusts the app configuration before validation.
	Configure func(cfg *app.Config)
	// Modules replaces the core encoders.
	Modules []registry.Module
}

// RunIntegrationTest writes files into a fresh temporary directory and runs
// the application against scenario (a key of files) with count
// realizations, using a background context.
func RunIntegrationTest(t *testing.T, files map[string]string, scenario string, count int, opts Options) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, scenario, count, opts)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller
// supplied context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, scenario string, count int, opts Options) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	cfg := app.Config{
		ScenarioPath: filepath.Join(root, scenario),
		OutputDir:    filepath.Join(root, "out"),
		Count:        count,
		Workers:      4,
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if opts.Configure != nil {
		opts.Configure(&cfg)
	}

	res := &HarnessResult{Root: root, OutputDir: cfg.OutputDir}
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		res.Err = err
		return res
	}

	logBuffer := &SafeBuffer{}
	stdout := &SafeBuffer{}

	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("RANDSCENARIO_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		res.App = app.NewApp(stdout, logBuffer, appConfig, opts.Modules...)
	}()
	if panicErr != nil {
		res.LogOutput = logBuffer.String()
		res.Err = fmt.Errorf("application startup panicked | %v", panicErr)
		return res
	}

	res.Result, res.Err = res.App.Run(ctx)
	res.LogOutput = logBuffer.String()
	res.Stdout = stdout.String()

	if os.Getenv("RANDSCENARIO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), res.LogOutput)
	}
	return res
}

// WriteFiles creates a temporary directory holding files, keyed by their
// relative path, and returns its path.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return root
}

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadOutputs returns the contents of every file in dir whose name ends in
// ext, keyed by file name.
func ReadOutputs(t *testing.T, dir, ext string) map[string]string {
	t.Helper()
	require.NotEmpty(t, ext, "an extension is required")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		out[e.Name()] = string(raw)
	}
	return out
}

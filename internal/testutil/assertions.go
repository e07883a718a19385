package testutil

import (
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertOutputFiles checks that dir holds exactly <prefix>_1..n.<ext> plus
// the seed manifest, and nothing else.
func AssertOutputFiles(t *testing.T, dir, prefix, ext string, n int) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}

	want := []string{"seed.txt"}
	for i := 1; i <= n; i++ {
		want = append(want, fmt.Sprintf("%s_%d.%s", prefix, i, ext))
	}
	sort.Strings(got)
	sort.Strings(want)
	require.Equal(t, want, got, "unexpected files in %s", dir)
}

// ReadCSVOutput parses a CSV realization file into variable name -> raw
// values, preserving row order in names.
func ReadCSVOutput(t *testing.T, path string) (names []string, values map[string][]string) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := stdcsv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err, "output %s is not valid CSV", filepath.Base(path))

	values = make(map[string][]string, len(rows))
	for _, row := range rows {
		require.NotEmpty(t, row)
		names = append(names, row[0])
		values[row[0]] = row[1:]
	}
	return names, values
}

// ParseFloats converts raw CSV values to numbers.
func ParseFloats(t *testing.T, raw []string) []float64 {
	t.Helper()

	out := make([]float64, len(raw))
	for i, s := range raw {
		f, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err, "value %d: %q", i, s)
		out[i] = f
	}
	return out
}

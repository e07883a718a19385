package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/specialistvlad/randscenario/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserverCounts(t *testing.T) {
	// --- Arrange ---
	m := New()

	// --- Act ---
	m.Generated(1, 5, time.Millisecond)
	m.Written(1, time.Millisecond)
	m.Generated(2, 5, time.Millisecond)
	m.Written(2, time.Millisecond)
	m.Generated(3, 5, time.Millisecond)
	m.Failed(3, batch.StageWrite, errors.New("disk full"))
	m.Failed(4, batch.StageGenerate, errors.New("bad source"))

	// --- Assert ---
	assert.Equal(t, 2.0, testutil.ToFloat64(m.realizations.WithLabelValues("committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.realizations.WithLabelValues("failed_write")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.realizations.WithLabelValues("failed_generate")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.samples))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.pendingWrites))
	assert.Equal(t, 3, testutil.CollectAndCount(m.realizations))
}

func TestMetrics_RunStarted(t *testing.T) {
	m := New()
	m.RunStarted("run-1", "demo", "csv", 42)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runInfo.WithLabelValues("run-1", "demo", "csv")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.baseSeed))
}

func TestMetrics_PrivateRegistries(t *testing.T) {
	a, b := New(), New()
	a.Generated(1, 3, 0)

	assert.Equal(t, 3.0, testutil.ToFloat64(a.samples))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.samples))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	// --- Arrange ---
	m := New()
	m.RunStarted("run-1", "demo", "json", 7)
	m.Generated(1, 4, time.Millisecond)
	m.Written(1, time.Millisecond)
	path := filepath.Join(t.TempDir(), "run.prom")

	// --- Act ---
	require.NoError(t, m.WriteTextfile(path))

	// --- Assert ---
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.Contains(text, `randscenario_realizations_total{outcome="committed"} 1`), text)
	assert.True(t, strings.Contains(text, "randscenario_samples_total 4"), text)
	assert.True(t, strings.Contains(text, `randscenario_run_info{format="json",run_id="run-1",scenario="demo"} 1`), text)
}

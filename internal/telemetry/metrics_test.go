package telemetry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCalculation(t *testing.T) {
	m := NewMetrics()

	m.ObserveCalculation("add", StatusSuccess, 8)
	m.ObserveCalculation("add", StatusSuccess, 2)
	m.ObserveCalculation("divide", StatusDivisionByZero, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("add", StatusSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("divide", StatusDivisionByZero)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LastResult.WithLabelValues("add")))
	assert.Greater(t, testutil.ToFloat64(m.LastRunTimestamp), 0.0)

	// Failures never set a result gauge.
	assert.Equal(t, 1, testutil.CollectAndCount(m.LastResult))
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.ObserveCalculation("multiply", StatusSuccess, 12)

	path := filepath.Join(t.TempDir(), "calc.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, `calc_calculations_total{operation="multiply",status="success"} 1`)
	assert.Contains(t, out, `calc_last_result{operation="multiply"} 12`)
	assert.Contains(t, out, "calc_last_run_timestamp_seconds")
}

func TestWriteTextfile_BadPath(t *testing.T) {
	m := NewMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "calc.prom"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics")
}

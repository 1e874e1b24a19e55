package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Calculation outcomes used as the status label.
const (
	StatusSuccess          = "success"
	StatusDivisionByZero   = "division_by_zero"
	StatusUnknownOperation = "unknown_operation"
	StatusError            = "error"
)

// Metrics holds the counters of a single calc invocation. They live on a private
// registry and are only ever exported to a node-exporter textfile.
type Metrics struct {
	registry *prometheus.Registry

	CalculationsTotal *prometheus.CounterVec
	LastRunTimestamp  prometheus.Gauge
	LastResult        *prometheus.GaugeVec
}

// NewMetrics creates and registers the calc metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.CalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_calculations_total",
			Help: "Total number of calculations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	m.LastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "calc_last_run_timestamp_seconds",
			Help: "Unix time of the last calc invocation",
		},
	)

	m.LastResult = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "calc_last_result",
			Help: "Value of the last successful calculation by operation",
		},
		[]string{"operation"},
	)

	m.registry.MustRegister(m.CalculationsTotal, m.LastRunTimestamp, m.LastResult)
	return m
}

// ObserveCalculation records one calculation outcome.
func (m *Metrics) ObserveCalculation(operation, status string, value float64) {
	m.CalculationsTotal.WithLabelValues(operation, status).Inc()
	m.LastRunTimestamp.Set(float64(time.Now().Unix()))
	if status == StatusSuccess {
		m.LastResult.WithLabelValues(operation).Set(value)
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"car-rental/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveConfirmation(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.ObserveConfirmation("confirmed")
	m.ObserveConfirmation("confirmed")
	m.ObserveConfirmation("already_confirmed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingConfirmations.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConfirmations.WithLabelValues("already_confirmed")))
}

func TestObserveSweep(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())

	m.ObserveSweep("ok", 20*time.Millisecond, 3)
	m.ObserveSweep("skipped", 0, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRuns.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SweepRuns.WithLabelValues("skipped")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CarsReleased))
}

func TestNewRegistryIsIsolated(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewMetrics(metrics.NewRegistry())
		metrics.NewMetrics(metrics.NewRegistry())
	})
}

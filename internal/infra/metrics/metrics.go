package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "car_rental"

// Metrics holds the Prometheus collectors for the confirmation workflow and the availability sweep.
type Metrics struct {
	BookingConfirmations *prometheus.CounterVec
	SweepRuns            *prometheus.CounterVec
	CarsReleased         prometheus.Counter
	SweepDuration        prometheus.Histogram
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingConfirmations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_confirmations_total",
			Help:      "Booking confirmation attempts by outcome",
		}, []string{"outcome"}),

		SweepRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_runs_total",
			Help:      "Availability sweep ticks by result",
		}, []string{"result"}),

		CarsReleased: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cars_released_total",
			Help:      "Cars made available again by the sweep",
		}),

		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of availability sweep runs",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveConfirmation(outcome string) {
	m.BookingConfirmations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSweep(result string, duration time.Duration, released int) {
	m.SweepRuns.WithLabelValues(result).Inc()
	if duration > 0 {
		m.SweepDuration.Observe(duration.Seconds())
	}
	if released > 0 {
		m.CarsReleased.Add(float64(released))
	}
}

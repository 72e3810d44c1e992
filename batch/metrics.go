package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by Solve.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Batches     prometheus.Counter
	Blocks      prometheus.Counter
	Rejected    prometheus.Counter
	Reflections prometheus.Counter
	Duration    prometheus.Histogram
}

// NewMetrics creates the batch collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "polar3",
			Name:      "batches_total",
			Help:      "Total number of batches solved.",
		}),
		Blocks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "polar3",
			Name:      "blocks_total",
			Help:      "Total number of 3x3 blocks projected onto a rotation.",
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "polar3",
			Name:      "rejected_total",
			Help:      "Total number of batches rejected by precondition checks.",
		}),
		Reflections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "polar3",
			Name:      "reflections_total",
			Help:      "Total number of blocks whose naive solution was a reflection.",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "polar3",
			Name:      "batch_duration_seconds",
			Help:      "Wall time of a Solve call in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}

	for _, c := range []prometheus.Collector{m.Batches, m.Blocks, m.Rejected, m.Reflections, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(blocks, reflections int, d time.Duration) {
	if m == nil {
		return
	}
	m.Batches.Inc()
	m.Blocks.Add(float64(blocks))
	m.Reflections.Add(float64(reflections))
	m.Duration.Observe(d.Seconds())
}

func (m *Metrics) reject() {
	if m == nil {
		return
	}
	m.Rejected.Inc()
}

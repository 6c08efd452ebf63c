package playground

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Inserts prometheus.Counter
	Deletes *prometheus.CounterVec
	Finds   prometheus.Counter
	Size    prometheus.Gauge
	Height  prometheus.Gauge
}

// NewMetrics registers the session metrics on reg. Pass a fresh
// prometheus.NewRegistry() per session, registering twice on the same
// registry panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Inserts: f.NewCounter(prometheus.CounterOpts{
			Name: "bst_inserts_total",
			Help: "Values inserted into the tree.",
		}),
		Deletes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bst_deletes_total",
			Help: "Delete calls, by whether the value was found.",
		}, []string{"found"}),
		Finds: f.NewCounter(prometheus.CounterOpts{
			Name: "bst_finds_total",
			Help: "Membership lookups.",
		}),
		Size: f.NewGauge(prometheus.GaugeOpts{
			Name: "bst_size",
			Help: "Values currently in the tree.",
		}),
		Height: f.NewGauge(prometheus.GaugeOpts{
			Name: "bst_height",
			Help: "Height of the tree when last measured.",
		}),
	}
}

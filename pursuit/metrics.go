package pursuit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what a Selector does over its lifetime.
type Metrics struct {
	Ticks    prometheus.Counter
	Removals prometheus.Counter
	Splits   prometheus.Counter
	Rebuilds prometheus.Counter
	Clusters prometheus.Gauge
}

// NewMetrics creates the selector metrics and registers them with reg.
// A nil reg creates unregistered metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "pillchase_ticks_total",
			Help: "Number of decisions taken",
		}),
		Removals: f.NewCounter(prometheus.CounterOpts{
			Name: "pillchase_removals_total",
			Help: "Number of collectible nodes removed from tracking",
		}),
		Splits: f.NewCounter(prometheus.CounterOpts{
			Name: "pillchase_splits_total",
			Help: "Number of removals that broke a cluster into two or more",
		}),
		Rebuilds: f.NewCounter(prometheus.CounterOpts{
			Name: "pillchase_registry_rebuilds_total",
			Help: "Number of registry rebuilds (first tick and level changes)",
		}),
		Clusters: f.NewGauge(prometheus.GaugeOpts{
			Name: "pillchase_clusters",
			Help: "Number of live clusters after the last decision",
		}),
	}
}

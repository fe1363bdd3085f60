package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evictionEvictedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "eviction",
		Name:      "evicted_entries_total",
		Help:      "Count of registry entries removed by eviction passes.",
	}, []string{"registry"})

	evictionPassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "eviction",
		Name:      "passes_total",
		Help:      "Count of eviction passes.",
	}, []string{"registry"})

	evictionRegistrySize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "eviction",
		Name:      "registry_entries",
		Help:      "Entries left in a registry after the last eviction pass.",
	}, []string{"registry"})
)

// Eviction tracks the registry eviction tasks.
type Eviction struct{}

func NewEviction() *Eviction {
	return &Eviction{}
}

func (m Eviction) ObserveEviction(registry string, evicted, size int) {
	evictionPassesTotal.WithLabelValues(registry).Inc()
	evictionEvictedTotal.WithLabelValues(registry).Add(float64(evicted))
	evictionRegistrySize.WithLabelValues(registry).Set(float64(size))
}

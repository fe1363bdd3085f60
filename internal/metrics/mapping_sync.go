package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mappingSyncPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mapping_sync",
		Name:      "passes_total",
		Help:      "Count of mapping sync passes.",
	}, []string{"trigger", "status"})

	mappingSyncPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mapping_sync",
		Name:      "pass_duration_seconds",
		Help:      "Duration of mapping sync passes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"trigger", "status"})

	mappingSyncMappedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mapping_sync",
		Name:      "mapped_blocks_total",
		Help:      "Count of block mappings written.",
	})

	mappingSyncCursor = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "mapping_sync",
		Name:      "synced_height",
		Help:      "Highest block height with a persisted mapping.",
	})
)

// MappingSync tracks the mapping sync worker.
type MappingSync struct{}

func NewMappingSync() *MappingSync {
	return &MappingSync{}
}

// ObservePass records a sync pass. trigger is "import" or "timer".
func (m MappingSync) ObservePass(trigger string, err error, mapped int, started time.Time) {
	mappingSyncPassTotal.WithLabelValues(trigger, status(err)).Inc()
	mappingSyncPassDuration.WithLabelValues(trigger, status(err)).Observe(time.Since(started).Seconds())
	mappingSyncMappedTotal.Add(float64(mapped))
}

func (m MappingSync) ObserveSyncedHeight(height uint64) {
	mappingSyncCursor.Set(float64(height))
}

package metrics

import (
	"time"

	"github.com/goodnatureofminers/evm-node/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collationSlotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "collation",
		Name:      "slots_total",
		Help:      "Count of collation slots by outcome.",
	}, []string{"outcome"})

	collationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "collation",
		Name:      "slot_duration_seconds",
		Help:      "Time spent handling a collation slot.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2, 4, 6, 12},
	}, []string{"outcome"})
)

// Collation tracks the collator.
type Collation struct{}

func NewCollation() *Collation {
	return &Collation{}
}

func (m Collation) ObserveCollation(outcome model.CollationOutcome, started time.Time) {
	collationSlotsTotal.WithLabelValues(string(outcome)).Inc()
	collationDuration.WithLabelValues(string(outcome)).Observe(time.Since(started).Seconds())
}

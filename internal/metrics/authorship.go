package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authorshipSealTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "authorship",
		Name:      "seal_attempts_total",
		Help:      "Count of block authoring attempts.",
	}, []string{"sealing", "status"})

	authorshipSealDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "authorship",
		Name:      "seal_duration_seconds",
		Help:      "Duration of block authoring attempts from command to import.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"sealing", "status"})

	authorshipBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "authorship",
		Name:      "block_transactions",
		Help:      "Number of transactions in authored blocks.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"sealing"})
)

// Authorship tracks the manual-seal authorship loop.
type Authorship struct {
	sealing string
}

// NewAuthorship labels the collector with the configured sealing mode.
func NewAuthorship(sealing string) *Authorship {
	if sealing == "" {
		sealing = "unknown"
	}
	return &Authorship{sealing: sealing}
}

// ObserveSeal records one authoring attempt. txCount is only recorded for
// imported blocks.
func (m Authorship) ObserveSeal(err error, txCount int, started time.Time) {
	authorshipSealTotal.WithLabelValues(m.sealing, status(err)).Inc()
	authorshipSealDuration.WithLabelValues(m.sealing, status(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		authorshipBlockTransactions.WithLabelValues(m.sealing).Observe(float64(txCount))
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of chain client operations.",
	}, []string{"operation", "backend", "status"})
	chainClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain client operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "backend", "status"})
)

// ChainClient tracks calls made through the chain client.
type ChainClient struct {
	backend string
}

// NewChainClient constructs a collector labelled with the backing implementation.
func NewChainClient(backend string) *ChainClient {
	if backend == "" {
		backend = "unknown"
	}
	return &ChainClient{backend: backend}
}

// Observe records a single call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	chainClientRequestsTotal.WithLabelValues(operation, m.backend, status(err)).Inc()
	chainClientRequestDuration.WithLabelValues(operation, m.backend, status(err)).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse",
		Name:      "operations_total",
		Help:      "Count of mapping store operations against ClickHouse.",
	}, []string{"operation", "status"})
	clickhouseOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse",
		Name:      "operation_duration_seconds",
		Help:      "Duration of mapping store operations against ClickHouse.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "status"})
	clickhouseRowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse",
		Name:      "rows_written_total",
		Help:      "Rows written per table.",
	}, []string{"table"})
)

// ClickhouseRepository is the collector of the ClickHouse mapping store.
type ClickhouseRepository struct{}

func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

func (m ClickhouseRepository) Observe(operation string, err error, started time.Time) {
	clickhouseOperationsTotal.WithLabelValues(operation, status(err)).Inc()
	clickhouseOperationDuration.WithLabelValues(operation, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveRows counts rows acknowledged by the server.
func (m ClickhouseRepository) ObserveRows(table string, rows int) {
	clickhouseRowsWritten.WithLabelValues(table).Add(float64(rows))
}

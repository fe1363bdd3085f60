package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	supervisorTasksRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "supervisor",
		Name:      "tasks_running",
		Help:      "Number of supervised tasks currently running.",
	})

	supervisorTaskExitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "supervisor",
		Name:      "task_exits_total",
		Help:      "Count of supervised task exits.",
	}, []string{"task", "status"})
)

// Supervisor tracks essential task lifecycles.
type Supervisor struct{}

func NewSupervisor() *Supervisor {
	return &Supervisor{}
}

func (m Supervisor) ObserveTaskStart(string) {
	supervisorTasksRunning.Inc()
}

func (m Supervisor) ObserveTaskExit(task string, err error) {
	supervisorTasksRunning.Dec()
	supervisorTaskExitsTotal.WithLabelValues(task, status(err)).Inc()
}

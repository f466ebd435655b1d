package harness

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics — Prometheus-метрики одного запуска.
//
// Инструмент — batch-процесс, поэтому вместо /metrics endpoint
// метрики отправляются в Pushgateway по завершении запуска.
type Metrics struct {
	registry *prometheus.Registry
	runID    string

	tasksTotal   *prometheus.CounterVec
	taskDuration *prometheus.GaugeVec
}

// NewMetrics создаёт метрики для запуска runID.
func NewMetrics(runID string) *Metrics {
	registry := prometheus.NewRegistry()

	tasksTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "releng_tasks_total",
		Help: "Release tasks executed, by task name and outcome.",
	}, []string{"task", "status"})

	taskDuration := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "releng_task_duration_seconds",
		Help: "Duration of the last execution of each release task.",
	}, []string{"task"})

	registry.MustRegister(tasksTotal, taskDuration)

	return &Metrics{
		registry:     registry,
		runID:        runID,
		tasksTotal:   tasksTotal,
		taskDuration: taskDuration,
	}
}

// observeTask учитывает завершение задачи. Безопасен при nil-метриках.
func (m *Metrics) observeTask(task, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.tasksTotal.WithLabelValues(task, status).Inc()
	m.taskDuration.WithLabelValues(task).Set(d.Seconds())
}

// Push отправляет метрики запуска в Pushgateway по адресу gateway.
func (m *Metrics) Push(gateway string) error {
	if m == nil {
		return nil
	}
	return push.New(gateway, "releng").
		Gatherer(m.registry).
		Grouping("run_id", m.runID).
		Push()
}

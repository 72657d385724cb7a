// Package metrics exposes Prometheus metrics describing the most recent
// allocation run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application
var Registry = prometheus.NewRegistry()

// factory registers metrics against Registry directly
var factory = promauto.With(Registry)

// RunsTotal counts completed allocation runs since process start.
var RunsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "allocator",
	Name:      "runs_total",
	Help:      "Total number of completed allocation runs",
})

// AlertsTotal counts run alerts by severity.
var AlertsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "allocator",
	Name:      "alerts_total",
	Help:      "Total run alerts emitted, broken down by severity",
}, []string{"severity"})

// ShiftsTotal tracks the number of operating windows in the latest run.
var ShiftsTotal = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "allocator",
	Name:      "shifts_total",
	Help:      "Number of operating window shifts in the latest run",
})

// ShiftsFilled tracks how many of those shifts were fully covered.
var ShiftsFilled = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "allocator",
	Name:      "shifts_filled",
	Help:      "Number of shifts fully covered in the latest run",
})

// HoursRequired tracks the total operating hours demanded by the latest run.
var HoursRequired = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "allocator",
	Name:      "hours_required",
	Help:      "Total operating hours across all shifts in the latest run",
})

// HoursCovered tracks hours assigned to agents in the latest run.
var HoursCovered = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "allocator",
	Name:      "hours_covered",
	Help:      "Operating hours covered by agent assignments in the latest run",
})

// HoursUnfilled tracks hours left to unfilled sentinels in the latest run.
var HoursUnfilled = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "allocator",
	Name:      "hours_unfilled",
	Help:      "Operating hours left unfilled in the latest run",
})

// AgentsByClassification tracks roster size by classification in the latest run.
var AgentsByClassification = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "allocator",
	Name:      "agents_by_classification",
	Help:      "Number of agents per classification in the latest run",
}, []string{"classification"})

// RunDurationSeconds tracks time to run the full allocation pipeline.
var RunDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "allocator",
	Name:      "run_duration_seconds",
	Help:      "Time taken to run the full allocation pipeline",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
})

// ResetRunGauges clears the latest-run gauges before a new allocation run.
func ResetRunGauges() {
	ShiftsTotal.Set(0)
	ShiftsFilled.Set(0)
	HoursRequired.Set(0)
	HoursCovered.Set(0)
	HoursUnfilled.Set(0)
	AgentsByClassification.Reset()
}

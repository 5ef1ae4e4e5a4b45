package schedule

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MutationsTotal counts applied store mutations.
	// Labels: op (add, update, delete, toggle, recover)
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sweep",
			Subsystem: "store",
			Name:      "mutations_total",
			Help:      "Total number of applied task mutations",
		},
		[]string{"op"},
	)

	// MirrorWriteFailures counts failed writes to the durable mirror.
	MirrorWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sweep",
			Subsystem: "store",
			Name:      "mirror_write_failures_total",
			Help:      "Total number of failed durable mirror writes",
		},
	)

	// LoadsTotal counts mirror loads by outcome.
	// Labels: outcome (ok, empty, malformed, error)
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sweep",
			Subsystem: "store",
			Name:      "loads_total",
			Help:      "Total number of mirror loads by outcome",
		},
		[]string{"outcome"},
	)

	// MigratedRecords counts legacy records upgraded at load time.
	MigratedRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sweep",
			Subsystem: "store",
			Name:      "migrated_records_total",
			Help:      "Total number of legacy task records migrated on load",
		},
	)

	// LiveTasks is the size of the live task list.
	LiveTasks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sweep",
			Subsystem: "store",
			Name:      "tasks",
			Help:      "Number of tasks in the live list",
		},
	)
)

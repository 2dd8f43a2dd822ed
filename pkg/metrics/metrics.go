// Package metrics provides Prometheus instrumentation for gobuf components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gobuf components.
type Registry struct {
	// Read Buffer Metrics
	ReadOps      *prometheus.CounterVec
	ReadBytes    *prometheus.CounterVec
	ReadErrors   *prometheus.CounterVec
	ReadResident *prometheus.GaugeVec

	// Write Buffer Metrics
	WriteOps     *prometheus.CounterVec
	WriteBytes   *prometheus.CounterVec
	WriteFlushes *prometheus.CounterVec
	WriteErrors  *prometheus.CounterVec
	WritePending *prometheus.GaugeVec

	// Shared Metrics
	BufferUtilization *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by gobuf components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		ReadOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobuf",
				Subsystem: "readbuf",
				Name:      "operations_total",
				Help:      "Total number of read buffer operations",
			},
			[]string{"operation", "buffer_name"},
		),

		ReadBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobuf",
				Subsystem: "readbuf",
				Name:      "bytes_total",
				Help:      "Total bytes delivered by read buffer operations",
			},
			[]string{"operation", "buffer_name"},
		),

		ReadErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobuf",
				Subsystem: "readbuf",
				Name:      "errors_total",
				Help:      "Total number of read buffer operation errors",
			},
			[]string{"operation", "buffer_name"},
		),

		ReadResident: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobuf",
				Subsystem: "readbuf",
				Name:      "resident_bytes",
				Help:      "Unread bytes currently resident in the read buffer",
			},
			[]string{"buffer_name"},
		),

		WriteOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobuf",
				Subsystem: "writebuf",
				Name:      "operations_total",
				Help:      "Total number of write buffer operations",
			},
			[]string{"operation", "buffer_name"},
		),

		WriteBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobuf",
				Subsystem: "writebuf",
				Name:      "bytes_total",
				Help:      "Total bytes accepted by write buffer operations",
			},
			[]string{"operation", "buffer_name"},
		),

		WriteFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobuf",
				Subsystem: "writebuf",
				Name:      "flushes_total",
				Help:      "Total number of write buffer flushes",
			},
			[]string{"buffer_name"},
		),

		WriteErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gobuf",
				Subsystem: "writebuf",
				Name:      "errors_total",
				Help:      "Total number of write buffer operation errors",
			},
			[]string{"operation", "buffer_name"},
		),

		WritePending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobuf",
				Subsystem: "writebuf",
				Name:      "pending_bytes",
				Help:      "Bytes buffered but not yet pushed to the sink",
			},
			[]string{"buffer_name"},
		),

		BufferUtilization: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gobuf",
				Subsystem: "buffer",
				Name:      "utilization_ratio",
				Help:      "Resident bytes as a fraction of buffer capacity (0.0 to 1.0)",
			},
			[]string{"buffer_type", "buffer_name"},
		),
	}
}

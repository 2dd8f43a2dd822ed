package writebuf

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gobuf/pkg/metrics"
)

// MetricsWriteBuffer wraps a WriteBuffer with Prometheus metrics collection.
type MetricsWriteBuffer struct {
	buf      *WriteBuffer
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new write buffer with metrics enabled.
func NewWithMetrics(size int, name string) (*MetricsWriteBuffer, error) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(size, name, config)
}

// NewWithConfigAndMetrics creates a new write buffer with custom metrics configuration.
func NewWithConfigAndMetrics(size int, name string, metricsConfig metrics.Config) (*MetricsWriteBuffer, error) {
	buf, err := NewSafe(size)
	if err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsWriteBuffer{
		buf:      buf,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}, nil
}

// Buffer returns the wrapped WriteBuffer for direct access.
func (mb *MetricsWriteBuffer) Buffer() *WriteBuffer {
	return mb.buf
}

// Available returns the number of bytes that can still be buffered.
func (mb *MetricsWriteBuffer) Available() int {
	return mb.buf.Available()
}

// Flushable returns the number of buffered bytes awaiting a push.
func (mb *MetricsWriteBuffer) Flushable() int {
	return mb.buf.Flushable()
}

// Size returns the fixed capacity of the internal buffer.
func (mb *MetricsWriteBuffer) Size() int {
	return mb.buf.Size()
}

// TryWrite copies as much of p as fits without touching the sink.
func (mb *MetricsWriteBuffer) TryWrite(p []byte) int {
	n := mb.buf.TryWrite(p)
	mb.observe("try_write", n, nil)
	return n
}

// Write buffers as much of p as possible, pushing at most once.
func (mb *MetricsWriteBuffer) Write(w io.Writer, p []byte) (int, error) {
	n, err := mb.buf.Write(w, p)
	mb.observe("write", n, err)
	return n, err
}

// WriteAll buffers every byte of p, pushing whenever the buffer fills.
func (mb *MetricsWriteBuffer) WriteAll(w io.Writer, p []byte) error {
	err := mb.buf.WriteAll(w, p)
	n := 0
	if err == nil {
		n = len(p)
	}
	mb.observe("write_all", n, err)
	return err
}

// Flush pushes all buffered bytes and flushes the sink.
func (mb *MetricsWriteBuffer) Flush(w io.Writer) error {
	err := mb.buf.Flush(w)
	mb.observe("flush", 0, err)
	if mb.enabled {
		mb.registry.WriteFlushes.WithLabelValues(mb.name).Inc()
	}
	return err
}

// observe records one operation outcome and refreshes the gauges.
func (mb *MetricsWriteBuffer) observe(op string, n int, err error) {
	if !mb.enabled {
		return
	}

	mb.registry.WriteOps.WithLabelValues(op, mb.name).Inc()
	if n > 0 {
		mb.registry.WriteBytes.WithLabelValues(op, mb.name).Add(float64(n))
	}
	if err != nil {
		mb.registry.WriteErrors.WithLabelValues(op, mb.name).Inc()
	}

	mb.registry.WritePending.WithLabelValues(mb.name).Set(float64(mb.buf.Flushable()))
	mb.registry.BufferUtilization.WithLabelValues("write", mb.name).
		Set(float64(mb.buf.Flushable()) / float64(mb.buf.Size()))
}

// EnableMetrics enables metrics collection.
func (mb *MetricsWriteBuffer) EnableMetrics(config metrics.Config) error {
	mb.enabled = config.Enabled

	if config.Registry != nil {
		mb.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mb *MetricsWriteBuffer) DisableMetrics() {
	mb.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mb *MetricsWriteBuffer) MetricsEnabled() bool {
	return mb.enabled
}

package readbuf

import (
	"bytes"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gobuf/pkg/metrics"
)

// MetricsReadBuffer wraps a ReadBuffer with Prometheus metrics collection.
type MetricsReadBuffer struct {
	buf      *ReadBuffer
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new read buffer with metrics enabled.
func NewWithMetrics(size int, name string) (*MetricsReadBuffer, error) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(size, name, config)
}

// NewWithConfigAndMetrics creates a new read buffer with custom metrics configuration.
func NewWithConfigAndMetrics(size int, name string, metricsConfig metrics.Config) (*MetricsReadBuffer, error) {
	buf, err := NewSafe(size)
	if err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsReadBuffer{
		buf:      buf,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}, nil
}

// Buffer returns the wrapped ReadBuffer for direct access.
func (mb *MetricsReadBuffer) Buffer() *ReadBuffer {
	return mb.buf
}

// Available returns the number of unread bytes resident in the buffer.
func (mb *MetricsReadBuffer) Available() int {
	return mb.buf.Available()
}

// Size returns the fixed capacity of the internal buffer.
func (mb *MetricsReadBuffer) Size() int {
	return mb.buf.Size()
}

// Read copies up to len(p) bytes into p, refilling at most once.
func (mb *MetricsReadBuffer) Read(r io.Reader, p []byte) (int, error) {
	n, err := mb.buf.Read(r, p)
	mb.observe("read", n, err)
	return n, err
}

// TryRead copies resident bytes into p without touching the source.
func (mb *MetricsReadBuffer) TryRead(p []byte) int {
	n := mb.buf.TryRead(p)
	mb.observe("try_read", n, nil)
	return n
}

// ReadExact fills p completely or fails.
func (mb *MetricsReadBuffer) ReadExact(r io.Reader, p []byte) error {
	err := mb.buf.ReadExact(r, p)
	n := 0
	if err == nil {
		n = len(p)
	}
	mb.observe("read_exact", n, err)
	return err
}

// ReadUntil appends bytes through the first delim to dst.
func (mb *MetricsReadBuffer) ReadUntil(r io.Reader, delim byte, dst *bytes.Buffer) (int, error) {
	n, err := mb.buf.ReadUntil(r, delim, dst)
	mb.observe("read_until", n, err)
	return n, err
}

// ReadUntilLimit appends at most limit bytes through the first delim to dst.
func (mb *MetricsReadBuffer) ReadUntilLimit(r io.Reader, delim byte, limit int, dst *bytes.Buffer) (int, error) {
	n, err := mb.buf.ReadUntilLimit(r, delim, limit, dst)
	mb.observe("read_until_limit", n, err)
	return n, err
}

// ReadToEnd appends all remaining bytes to dst.
func (mb *MetricsReadBuffer) ReadToEnd(r io.Reader, dst *bytes.Buffer) (int, error) {
	n, err := mb.buf.ReadToEnd(r, dst)
	mb.observe("read_to_end", n, err)
	return n, err
}

// ReadToString appends all remaining bytes to dst as UTF-8 text.
func (mb *MetricsReadBuffer) ReadToString(r io.Reader, dst *strings.Builder) (int, error) {
	n, err := mb.buf.ReadToString(r, dst)
	mb.observe("read_to_string", n, err)
	return n, err
}

// ReadLine appends one '\n'-terminated line to dst.
func (mb *MetricsReadBuffer) ReadLine(r io.Reader, dst *strings.Builder) (int, error) {
	n, err := mb.buf.ReadLine(r, dst)
	mb.observe("read_line", n, err)
	return n, err
}

// FillBuf returns the resident bytes, refilling once when empty. FillBuf may
// return the same resident bytes on consecutive calls, so it records no byte
// count of its own; bytes on the fill/consume path land in ReadBytes under
// the consume operation once Consume claims them.
func (mb *MetricsReadBuffer) FillBuf(r io.Reader) ([]byte, error) {
	p, err := mb.buf.FillBuf(r)
	mb.observe("fill_buf", 0, err)
	return p, err
}

// Consume advances past n bytes previously returned by FillBuf.
func (mb *MetricsReadBuffer) Consume(n int) {
	mb.buf.Consume(n)
	mb.observe("consume", n, nil)
}

// Skip discards n resident bytes.
func (mb *MetricsReadBuffer) Skip(n int) {
	mb.buf.Skip(n)
	mb.observe("skip", n, nil)
}

// observe records one operation outcome and refreshes the gauges.
func (mb *MetricsReadBuffer) observe(op string, n int, err error) {
	if !mb.enabled {
		return
	}

	mb.registry.ReadOps.WithLabelValues(op, mb.name).Inc()
	if n > 0 {
		mb.registry.ReadBytes.WithLabelValues(op, mb.name).Add(float64(n))
	}
	if err != nil {
		mb.registry.ReadErrors.WithLabelValues(op, mb.name).Inc()
	}

	mb.registry.ReadResident.WithLabelValues(mb.name).Set(float64(mb.buf.Available()))
	mb.registry.BufferUtilization.WithLabelValues("read", mb.name).
		Set(float64(mb.buf.Available()) / float64(mb.buf.Size()))
}

// EnableMetrics enables metrics collection.
func (mb *MetricsReadBuffer) EnableMetrics(config metrics.Config) error {
	mb.enabled = config.Enabled

	if config.Registry != nil {
		mb.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mb *MetricsReadBuffer) DisableMetrics() {
	mb.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mb *MetricsReadBuffer) MetricsEnabled() bool {
	return mb.enabled
}

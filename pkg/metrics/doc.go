// Package metrics provides Prometheus instrumentation for gobuf components.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	rb, _ := readbuf.NewWithMetrics(16*1024, "client_reads")
//	wb, _ := writebuf.NewWithMetrics(16*1024, "client_writes")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
//   - gobuf_readbuf_operations_total: Read buffer operations by operation and buffer name
//   - gobuf_readbuf_bytes_total: Bytes delivered by read operations
//   - gobuf_readbuf_errors_total: Read operation errors
//   - gobuf_readbuf_resident_bytes: Unread bytes currently buffered
//   - gobuf_writebuf_operations_total: Write buffer operations
//   - gobuf_writebuf_bytes_total: Bytes accepted by write operations
//   - gobuf_writebuf_flushes_total: Flush count
//   - gobuf_writebuf_errors_total: Write operation errors
//   - gobuf_writebuf_pending_bytes: Bytes buffered but not yet pushed
//   - gobuf_buffer_utilization_ratio: Resident bytes over capacity
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{Enabled: true, Registry: registry}
//	rb, _ := readbuf.NewWithConfigAndMetrics(16*1024, "isolated", config)
//
// Metrics are updated only when operations occur; there are no background
// goroutines or timers.
package metrics

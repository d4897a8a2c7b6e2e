// Package monitoring provides performance monitoring and metrics collection for DataFrame operations.
package monitoring

import (
	"runtime"
	"sync"
	"time"
)

// OperationMetrics represents performance metrics for a single DataFrame operation.
type OperationMetrics struct {
	Operation  string        `json:"operation"`
	Duration   time.Duration `json:"duration"`
	RowsIn     int64         `json:"rows_in"`
	RowsOut    int64         `json:"rows_out"`
	MemoryUsed int64         `json:"memory_used"`
	Failed     bool          `json:"failed"`
}

// MetricsCollector collects and stores performance metrics for DataFrame operations.
type MetricsCollector struct {
	mu      sync.RWMutex
	metrics []OperationMetrics
	enabled bool
}

var defaultCollector = NewMetricsCollector(true)

// Default returns the process-wide collector the dataframe package reports to
// when metrics collection is enabled in the configuration.
func Default() *MetricsCollector {
	return defaultCollector
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector(enabled bool) *MetricsCollector {
	return &MetricsCollector{
		metrics: make([]OperationMetrics, 0),
		enabled: enabled,
	}
}

// IsEnabled returns whether metrics collection is enabled.
func (mc *MetricsCollector) IsEnabled() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.enabled
}

// RecordOperation executes fn and records performance metrics for it.
// fn returns the number of rows it produced.
func (mc *MetricsCollector) RecordOperation(operation string, rowsIn int, fn func() (int, error)) error {
	if !mc.IsEnabled() {
		_, err := fn()
		return err
	}

	m := startMeasurement()
	rowsOut, err := fn()
	mc.finish(m, operation, rowsIn, rowsOut, err != nil)
	return err
}

// RecordRows is RecordOperation for operations that cannot fail.
func (mc *MetricsCollector) RecordRows(operation string, rowsIn int, fn func() int) {
	if !mc.IsEnabled() {
		fn()
		return
	}

	m := startMeasurement()
	rowsOut := fn()
	mc.finish(m, operation, rowsIn, rowsOut, false)
}

type measurement struct {
	start      time.Time
	allocBytes uint64
}

func startMeasurement() measurement {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return measurement{start: time.Now(), allocBytes: mem.TotalAlloc}
}

func (mc *MetricsCollector) finish(m measurement, operation string, rowsIn, rowsOut int, failed bool) {
	duration := time.Since(m.start)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	metrics := OperationMetrics{
		Operation:  operation,
		Duration:   duration,
		RowsIn:     int64(rowsIn),
		RowsOut:    int64(rowsOut),
		MemoryUsed: int64(memAfter.TotalAlloc - m.allocBytes), //nolint:gosec // TotalAlloc is monotonic
		Failed:     failed,
	}

	mc.mu.Lock()
	mc.metrics = append(mc.metrics, metrics)
	mc.mu.Unlock()
}

// GetMetrics returns a copy of all collected metrics.
func (mc *MetricsCollector) GetMetrics() []OperationMetrics {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	result := make([]OperationMetrics, len(mc.metrics))
	copy(result, mc.metrics)
	return result
}

// Clear removes all collected metrics.
func (mc *MetricsCollector) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.metrics = mc.metrics[:0]
}

// SetEnabled enables or disables metrics collection.
func (mc *MetricsCollector) SetEnabled(enabled bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.enabled = enabled
}

// GetSummary returns a summary of collected metrics.
func (mc *MetricsCollector) GetSummary() MetricsSummary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if len(mc.metrics) == 0 {
		return MetricsSummary{}
	}

	var totalDuration time.Duration
	var totalRows int64
	var failures int
	operationCounts := make(map[string]int)

	for _, metric := range mc.metrics {
		totalDuration += metric.Duration
		totalRows += metric.RowsOut
		if metric.Failed {
			failures++
		}
		operationCounts[metric.Operation]++
	}

	return MetricsSummary{
		TotalOperations: len(mc.metrics),
		TotalDuration:   totalDuration,
		TotalRowsOut:    totalRows,
		Failures:        failures,
		OperationCounts: operationCounts,
		AverageDuration: totalDuration / time.Duration(len(mc.metrics)),
	}
}

// MetricsSummary provides aggregate statistics for collected metrics.
type MetricsSummary struct {
	TotalOperations int            `json:"total_operations"`
	TotalDuration   time.Duration  `json:"total_duration"`
	TotalRowsOut    int64          `json:"total_rows_out"`
	Failures        int            `json:"failures"`
	OperationCounts map[string]int `json:"operation_counts"`
	AverageDuration time.Duration  `json:"average_duration"`
}

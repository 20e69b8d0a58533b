// interfaces.go: public observability interfaces for the hazard domain
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package hazard

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// This interface allows injecting optimized time implementations, used
// to timestamp scans without a time.Now() syscall on every retire.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector collects operational metrics about the domain.
// Implementations must be safe for concurrent use and fast: every method
// may be called on the retire hot path.
type MetricsCollector interface {
	// RecordScan is called once per completed reclamation scan.
	RecordScan(durationNanos int64, reclaimed, survivors int)

	// RecordRetirePush is called once per successful push onto the
	// retired list, with the list's depth immediately after the push.
	RecordRetirePush(listDepth int)

	// RecordCellAcquire is called once per Holder lease. reused is true
	// when an existing vacant cell was claimed, false when a new cell
	// had to be allocated and pushed onto the hazard list.
	RecordCellAcquire(reused bool)

	// RecordListGrowth is called whenever the hazard list grows,
	// reporting its new length. The list only ever grows, so this is
	// useful to watch for unbounded holder churn.
	RecordListGrowth(newLen int)

	// RecordViolation is called by the optional debug-mode checks (see
	// DomainOptions.DebugChecks) when a caller contract is violated,
	// e.g. "double_retire" or "retire_after_free".
	RecordViolation(kind string)
}

// NoOpMetricsCollector is a MetricsCollector that does nothing. Used as
// the default so production builds pay no overhead unless configured.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordScan(durationNanos int64, reclaimed, survivors int) {}
func (NoOpMetricsCollector) RecordRetirePush(listDepth int)                          {}
func (NoOpMetricsCollector) RecordCellAcquire(reused bool)                           {}
func (NoOpMetricsCollector) RecordListGrowth(newLen int)                             {}
func (NoOpMetricsCollector) RecordViolation(kind string)                             {}

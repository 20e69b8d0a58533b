// config.go: construction options for the hazard domain
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package hazard

import (
	"time"

	"github.com/agilira/go-timecache"
)

// DomainOptions holds construction parameters for a Domain.
type DomainOptions struct {
	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for scan-latency timestamps.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting reclamation metrics.
	// If nil, NoOpMetricsCollector is used (zero overhead). Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector

	// DebugChecks enables double-retire / retire-after-free detection.
	// It costs an extra map lookup per retire and per scan, so it
	// defaults to off and should only be enabled in tests.
	DebugChecks bool

	// OnViolation is called when DebugChecks is enabled and a caller
	// contract violation is detected (e.g. double-retire). It must be
	// fast and non-blocking; it is called synchronously from the
	// retiring goroutine.
	OnViolation func(error)

	// ScanLogThreshold is the scan duration, in nanoseconds, above which
	// a completed scan is logged at Warn level. Validate replaces zero
	// with DefaultScanLogThresholdNanos and rejects a negative value; the
	// warning can be switched off at runtime with
	// Domain.SetScanLogThreshold(0). Default: DefaultScanLogThresholdNanos.
	ScanLogThreshold int64
}

// DefaultScanLogThresholdNanos is the default ScanLogThreshold: 1ms.
const DefaultScanLogThresholdNanos = int64(time.Millisecond)

// Validate normalizes zero-valued fields to their defaults in place.
// It returns an ErrCodeInvalidScanLogThreshold error when
// ScanLogThreshold is negative; no other field can make it fail.
//
// Default values applied:
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
//   - ScanLogThreshold: DefaultScanLogThresholdNanos if 0
func (o *DomainOptions) Validate() error {
	if o.Logger == nil {
		o.Logger = NoOpLogger{}
	}

	if o.TimeProvider == nil {
		o.TimeProvider = &systemTimeProvider{}
	}

	if o.MetricsCollector == nil {
		o.MetricsCollector = NoOpMetricsCollector{}
	}

	if o.ScanLogThreshold == 0 {
		o.ScanLogThreshold = DefaultScanLogThresholdNanos
	} else if o.ScanLogThreshold < 0 {
		return NewErrInvalidScanLogThreshold(o.ScanLogThreshold)
	}

	return nil
}

// DefaultDomainOptions returns DomainOptions with sensible defaults.
func DefaultDomainOptions() DomainOptions {
	return DomainOptions{
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
		ScanLogThreshold: DefaultScanLogThresholdNanos,
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides much faster time access than time.Now() with zero
// allocations, suitable for timestamping every scan.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}

// config_test.go: unit tests for DomainOptions
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package hazard

import (
	"testing"
)

func TestDomainOptions_Validate(t *testing.T) {
	tests := []struct {
		name             string
		opts             DomainOptions
		wantErr          bool
		wantThreshold    int64
	}{
		{
			name:          "empty options get defaults",
			opts:          DomainOptions{},
			wantThreshold: DefaultScanLogThresholdNanos,
		},
		{
			name:          "explicit positive threshold is preserved",
			opts:          DomainOptions{ScanLogThreshold: 5000},
			wantThreshold: 5000,
		},
		{
			name:    "negative threshold is rejected",
			opts:    DomainOptions{ScanLogThreshold: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if tt.opts.Logger == nil {
				t.Error("Logger not defaulted")
			}
			if tt.opts.TimeProvider == nil {
				t.Error("TimeProvider not defaulted")
			}
			if tt.opts.MetricsCollector == nil {
				t.Error("MetricsCollector not defaulted")
			}
			if tt.opts.ScanLogThreshold != tt.wantThreshold {
				t.Errorf("ScanLogThreshold = %v, want %v", tt.opts.ScanLogThreshold, tt.wantThreshold)
			}
		})
	}
}

func TestDefaultDomainOptions(t *testing.T) {
	opts := DefaultDomainOptions()

	if opts.ScanLogThreshold != DefaultScanLogThresholdNanos {
		t.Errorf("ScanLogThreshold = %v, want %v", opts.ScanLogThreshold, DefaultScanLogThresholdNanos)
	}
	if opts.DebugChecks {
		t.Error("DebugChecks should default to false")
	}
	if _, ok := opts.Logger.(NoOpLogger); !ok {
		t.Errorf("Logger = %T, want NoOpLogger", opts.Logger)
	}
	if _, ok := opts.MetricsCollector.(NoOpMetricsCollector); !ok {
		t.Errorf("MetricsCollector = %T, want NoOpMetricsCollector", opts.MetricsCollector)
	}
}

func TestSystemTimeProvider(t *testing.T) {
	provider := &systemTimeProvider{}

	now1 := provider.Now()
	if now1 <= 0 {
		t.Errorf("expected positive timestamp, got: %v", now1)
	}

	now2 := provider.Now()
	if now2 < now1 {
		t.Errorf("time should not go backwards: now1=%v, now2=%v", now1, now2)
	}
}

func TestNoOpLogger(t *testing.T) {
	logger := NoOpLogger{}

	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	logger.Debug("test", "key", "value")
	logger.Info("test", "key", "value")
	logger.Warn("test", "key", "value")
	logger.Error("test", "key", "value")
}

func TestNoOpMetricsCollector(t *testing.T) {
	m := NoOpMetricsCollector{}

	m.RecordScan(100, 1, 2)
	m.RecordRetirePush(3)
	m.RecordCellAcquire(true)
	m.RecordListGrowth(4)
	m.RecordViolation("double_retire")
}

func TestNewDomain_InvalidOptionsRejected(t *testing.T) {
	_, err := NewDomain(DomainOptions{ScanLogThreshold: -1})
	if err == nil {
		t.Fatal("expected error for negative ScanLogThreshold")
	}
}

func TestNewDomain_AppliesOptions(t *testing.T) {
	d, err := NewDomain(DomainOptions{ScanLogThreshold: 42, DebugChecks: true})
	if err != nil {
		t.Fatalf("NewDomain failed: %v", err)
	}
	if d.ScanLogThreshold() != 42 {
		t.Errorf("ScanLogThreshold() = %v, want 42", d.ScanLogThreshold())
	}
	if !d.DebugChecks() {
		t.Error("DebugChecks() = false, want true")
	}
}

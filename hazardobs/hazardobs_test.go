// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazardobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agilira/hazard"
)

func TestNew_EmptyPath(t *testing.T) {
	domain := hazard.Default()
	_, err := New(domain, Options{ConfigPath: ""})
	if err == nil {
		t.Error("expected error for empty config path")
	}
}

func TestNew_DefaultsToDefaultDomain(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "hazard.yaml")
	if err := os.WriteFile(configPath, []byte("hazard:\n  debug_checks: false\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := New(nil, Options{ConfigPath: configPath, PollInterval: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = w.Stop() }()

	if w.domain != hazard.Default() {
		t.Error("expected nil domain to bind to hazard.Default()")
	}
}

func TestWatcher_StartStop(t *testing.T) {
	domain, err := hazard.NewDomain(hazard.DefaultDomainOptions())
	if err != nil {
		t.Fatalf("NewDomain failed: %v", err)
	}
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "hazard.yaml")
	if err := os.WriteFile(configPath, []byte("hazard:\n  scan_log_threshold: \"1ms\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := New(domain, Options{ConfigPath: configPath, PollInterval: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if err := w.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestWatcher_AppliesScanLogThresholdAndDebugChecks(t *testing.T) {
	domain, err := hazard.NewDomain(hazard.DefaultDomainOptions())
	if err != nil {
		t.Fatalf("NewDomain failed: %v", err)
	}
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "hazard.yaml")
	initial := "hazard:\n  scan_log_threshold: \"5ms\"\n  debug_checks: false\n"
	if err := os.WriteFile(configPath, []byte(initial), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	reloaded := make(chan Settings, 4)
	w, err := New(domain, Options{
		ConfigPath:   configPath,
		PollInterval: 50 * time.Millisecond,
		OnReload:     func(_, new Settings) { reloaded <- new },
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	updated := "hazard:\n  scan_log_threshold: \"9ms\"\n  debug_checks: true\n"
	if err := os.WriteFile(configPath, []byte(updated), 0644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case s := <-reloaded:
		if s.ScanLogThreshold != 9*time.Millisecond {
			t.Errorf("ScanLogThreshold = %v, want 9ms", s.ScanLogThreshold)
		}
		if !s.DebugChecks {
			t.Error("DebugChecks = false, want true")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if domain.ScanLogThreshold() != (9 * time.Millisecond).Nanoseconds() {
		t.Errorf("domain.ScanLogThreshold() = %d, want %d", domain.ScanLogThreshold(), (9 * time.Millisecond).Nanoseconds())
	}
	if !domain.DebugChecks() {
		t.Error("domain.DebugChecks() = false, want true")
	}
}

func TestParseSettings_IgnoresUnknownShape(t *testing.T) {
	fallback := Settings{ScanLogThreshold: time.Millisecond, DebugChecks: true}
	got := parseSettings(map[string]interface{}{"unrelated": 1}, fallback)
	if got != fallback {
		t.Errorf("parseSettings changed settings on unrelated data: %+v", got)
	}
}

// Package hazardobs provides dynamic, file-driven reconfiguration of a
// hazard.Domain's runtime knobs using Argus.
//
// Only the two knobs the domain exposes as atomics (scan log threshold
// and debug-mode contract checking) are hot-reloadable; everything
// else a Domain needs (logger, metrics collector, time provider) is
// fixed at construction, so there is nothing else for a file watcher
// to apply.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazardobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
	"github.com/agilira/hazard"
)

// Settings is the subset of a Domain's configuration that can change
// at runtime.
type Settings struct {
	ScanLogThreshold time.Duration
	DebugChecks      bool
}

// Watcher watches a configuration file and applies changes to a
// hazard.Domain's runtime knobs as they're detected.
type Watcher struct {
	domain  *hazard.Domain
	watcher *argus.Watcher
	mu      sync.RWMutex
	current Settings
	logger  hazard.Logger

	// OnReload is called after settings are successfully applied. This
	// callback is optional and must be fast and non-blocking.
	OnReload func(old, new Settings)
}

// Options configures a Watcher.
type Options struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats (Argus
	// detects format from the file extension).
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after settings are successfully applied.
	OnReload func(old, new Settings)

	// Logger receives a line each time a change is applied. Values that
	// fail to parse are ignored without a log line. If nil, nothing is
	// logged.
	Logger hazard.Logger
}

// New creates a Watcher bound to domain and starts watching
// opts.ConfigPath immediately.
//
// Example configuration file (YAML):
//
//	hazard:
//	  scan_log_threshold: "2ms"
//	  debug_checks: false
func New(domain *hazard.Domain, opts Options) (*Watcher, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}
	if domain == nil {
		domain = hazard.Default()
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = hazard.NoOpLogger{}
	}

	w := &Watcher{
		domain:  domain,
		OnReload: opts.OnReload,
		logger:  opts.Logger,
		current: Settings{
			ScanLogThreshold: time.Duration(domain.ScanLogThreshold()),
			DebugChecks:      domain.DebugChecks(),
		},
	}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, w.handleChange, argusConfig)
	if err != nil {
		return nil, err
	}
	w.watcher = watcher
	return w, nil
}

// Start begins watching the configuration file for changes.
func (w *Watcher) Start() error {
	if w.watcher.IsRunning() {
		return nil
	}
	return w.watcher.Start()
}

// Stop stops watching the configuration file.
func (w *Watcher) Stop() error {
	return w.watcher.Stop()
}

// Current returns the settings most recently applied to the domain.
func (w *Watcher) Current() Settings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

func (w *Watcher) handleChange(data map[string]interface{}) {
	w.mu.Lock()
	old := w.current
	next := parseSettings(data, old)
	w.current = next
	w.mu.Unlock()

	if next.ScanLogThreshold != old.ScanLogThreshold {
		w.domain.SetScanLogThreshold(next.ScanLogThreshold.Nanoseconds())
	}
	if next.DebugChecks != old.DebugChecks {
		w.domain.SetDebugChecks(next.DebugChecks)
	}

	w.logger.Info("hazardobs: settings reloaded",
		"scan_log_threshold", next.ScanLogThreshold,
		"debug_checks", next.DebugChecks)

	if w.OnReload != nil {
		w.OnReload(old, next)
	}
}

func parseSettings(data map[string]interface{}, fallback Settings) Settings {
	out := fallback

	section, ok := data["hazard"].(map[string]interface{})
	if !ok {
		if _, hasThreshold := data["scan_log_threshold"]; hasThreshold {
			section = data
		} else {
			return out
		}
	}

	if str, ok := section["scan_log_threshold"].(string); ok {
		if d, err := time.ParseDuration(str); err == nil && d >= 0 {
			out.ScanLogThreshold = d
		}
	}
	if b, ok := section["debug_checks"].(bool); ok {
		out.DebugChecks = b
	}

	return out
}

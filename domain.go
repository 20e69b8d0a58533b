// domain.go: the domain singleton composing one hazard list and one
// retired list.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import "sync/atomic"

// Domain is the pair (hazard list, retired list) that cooperate to
// provide safe reclamation. The zero value is never used directly by
// callers; construct one with NewDomain, or use Default for the
// process-wide singleton.
//
// The reclamation algorithm itself has no notion of cross-domain
// isolation; it just scans whatever retired list and hazard list belong
// to the Domain it was called on. NewDomain exists for test isolation,
// not to offer callers a way to partition reclamation; production code
// should generally use Default.
//
// scanLogThreshold and debugChecks are stored as atomics rather than
// inside DomainOptions because they are the two knobs the hazardobs
// subpackage hot-reloads at runtime; every other option is fixed at
// construction.
type Domain struct {
	list    hazardList
	retired retiredList
	debug   *debugState

	logger       Logger
	timeProvider TimeProvider
	metrics      MetricsCollector
	onViolation  func(error)

	scanLogThreshold atomic.Int64
	debugChecks      atomic.Bool
}

// defaultDomain is the process-wide singleton, zero-initialized: both
// list and retired list heads start nil, so there is no
// initialization-order hazard to worry about at package load.
var defaultDomain = newDomainFromOptions(DefaultDomainOptions())

// Default returns the process-wide hazard domain used by Holder values
// that were never given an explicit domain.
func Default() *Domain {
	return defaultDomain
}

// NewDomain constructs an independent Domain with the given options.
// Most programs should use Default; NewDomain exists chiefly so tests
// can exercise the reclamation algorithm without cross-test
// interference.
func NewDomain(opts DomainOptions) (*Domain, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newDomainFromOptions(opts), nil
}

func newDomainFromOptions(opts DomainOptions) *Domain {
	d := &Domain{
		debug:        newDebugState(),
		logger:       opts.Logger,
		timeProvider: opts.TimeProvider,
		metrics:      opts.MetricsCollector,
		onViolation:  opts.OnViolation,
	}
	d.scanLogThreshold.Store(opts.ScanLogThreshold)
	d.debugChecks.Store(opts.DebugChecks)
	return d
}

// TryReclaim runs a reclamation scan immediately, without retiring
// anything new. Useful after a burst of releases, to reclaim survivors
// left over from a scan that found them still protected.
func (d *Domain) TryReclaim() {
	d.retired.scan(d)
}

// PendingCount reports how many retired records currently await a
// scan. Useful for tests asserting eventual reclamation and for
// diagnostics; not used on any hot path.
func (d *Domain) PendingCount() int64 {
	return d.retired.depth.Load()
}

// HazardCellCount reports how many hazard cells are currently
// reachable from the domain's hazard list. The count only ever grows,
// since cells are leased and released but never freed.
func (d *Domain) HazardCellCount() int64 {
	return d.list.length()
}

// SetScanLogThreshold updates the scan-duration warn threshold at
// runtime. Zero disables the warning. Safe for concurrent use; read by
// every scan. This is the knob hazardobs hot-reloads.
func (d *Domain) SetScanLogThreshold(nanos int64) {
	d.scanLogThreshold.Store(nanos)
}

// ScanLogThreshold returns the current scan-duration warn threshold.
func (d *Domain) ScanLogThreshold() int64 {
	return d.scanLogThreshold.Load()
}

// SetDebugChecks enables or disables double-retire / retire-after-free
// detection at runtime. Safe for concurrent use. Disabling it does not
// clear previously recorded pending/reclaimed addresses.
func (d *Domain) SetDebugChecks(enabled bool) {
	d.debugChecks.Store(enabled)
}

// DebugChecks reports whether debug-mode contract checking is enabled.
func (d *Domain) DebugChecks() bool {
	return d.debugChecks.Load()
}

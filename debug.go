// debug.go: optional double-retire / retire-after-free detection.
//
// This is gated behind DomainOptions.DebugChecks, off by default: the
// hot path trusts callers not to double-retire or touch reclaimed
// memory, and enabling these checks costs a map lookup per retire and
// per reclaim, so they're meant for tests, not production.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import (
	"sync"
	"unsafe"
)

// debugState tracks, per Domain, which erased addresses are currently
// sitting on the retired list awaiting a scan, and which have already
// had their deleter invoked. Addresses are only ever compared while
// they're known to be live on one of these two sets; once an address
// leaves both (the caller legitimately reuses the memory for a new
// allocation after a prior generation was destroyed) it is forgotten.
type debugState struct {
	mu       sync.Mutex
	pending  map[uintptr]struct{}
	reclaimed map[uintptr]struct{}
}

func newDebugState() *debugState {
	return &debugState{
		pending:   make(map[uintptr]struct{}),
		reclaimed: make(map[uintptr]struct{}),
	}
}

// debugOnRetire records addr as pending and reports a violation through
// DomainOptions.OnViolation if addr is already pending (double-retire
// while still awaiting a scan).
func (d *Domain) debugOnRetire(addr unsafe.Pointer) {
	a := uintptrOf(addr)
	d.debug.mu.Lock()
	_, alreadyPending := d.debug.pending[a]
	_, alreadyReclaimed := d.debug.reclaimed[a]
	d.debug.pending[a] = struct{}{}
	d.debug.mu.Unlock()

	switch {
	case alreadyPending:
		d.metrics.RecordViolation("double_retire")
		d.reportViolation(NewErrDoubleRetire(a))
	case alreadyReclaimed:
		d.metrics.RecordViolation("retire_after_free")
		d.reportViolation(NewErrRetireAfterFree(a))
	}
}

// debugOnReclaim moves addr from pending to reclaimed once a scan has
// invoked its deleter.
func (d *Domain) debugOnReclaim(addr unsafe.Pointer) {
	a := uintptrOf(addr)
	d.debug.mu.Lock()
	delete(d.debug.pending, a)
	d.debug.reclaimed[a] = struct{}{}
	d.debug.mu.Unlock()
}

func (d *Domain) reportViolation(err error) {
	d.logger.Error("hazard: contract violation", "error", err)
	if d.onViolation != nil {
		d.onViolation(err)
	}
}

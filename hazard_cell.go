// hazard_cell.go: the single-slot protection register leased to one
// reader at a time.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import (
	"sync/atomic"
	"unsafe"
)

// hazardCell is a single protection register. It is allocated lazily
// and never freed for the lifetime of the process; vacant toggles as
// holders lease and release it. Field ordering keeps the 64-bit-aligned
// atomic fields first so they stay naturally aligned on every
// architecture.
type hazardCell struct {
	// protected is the type-erased address this cell currently
	// publishes, or nil. Readers store into it with SeqCst ordering
	// (see protect); Go's sync/atomic operations are sequentially
	// consistent, so a plain StorePointer already provides that.
	protected unsafe.Pointer

	// next links to the next cell in the domain's hazard list. Set once
	// at insertion and never mutated afterward.
	next atomic.Pointer[hazardCell]

	// vacant is true when the cell sits in the free pool and any
	// holder may claim it, false when exactly one holder leases it.
	vacant atomic.Bool
}

// protect publishes addr into the cell with sequentially-consistent
// ordering, so a concurrent scanner's snapshot load can never observe
// a write that is reordered past this store.
func (c *hazardCell) protect(addr unsafe.Pointer) {
	atomic.StorePointer(&c.protected, addr)
}

// load reads the currently protected address.
func (c *hazardCell) load() unsafe.Pointer {
	return atomic.LoadPointer(&c.protected)
}

// clear resets the cell to unprotected and returns it to the free pool.
// Ordering must be null-then-vacant so a concurrent scanner that
// observes vacant == false still sees the freshest protected value.
func (c *hazardCell) clear() {
	atomic.StorePointer(&c.protected, nil)
	c.vacant.Store(true)
}

// holder.go: the per-reader handle that leases one hazard cell and
// exposes load/swap/take/retire.
//
// Go forbids type parameters on methods, so the generic operations
// (LoadPointer, Swap, Take) are free functions taking *Holder as their
// first argument rather than methods on a generic Holder type — the
// same shape the standard library uses for e.g. maps.Keys.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import (
	"sync/atomic"
	"unsafe"
)

// Holder is a per-reader handle. The zero value is ready to use; it
// owns no heap memory until its first lease. Holder is not safe to
// share between goroutines — it is meant to live on the stack (or as a
// per-goroutine field) of a single reader.
type Holder struct {
	d    *Domain
	cell *hazardCell
}

// NewHolder returns a Holder bound to domain. A zero-value Holder binds
// lazily to Default() on first use; NewHolder exists for callers using
// an isolated Domain from NewDomain.
func NewHolder(domain *Domain) *Holder {
	return &Holder{d: domain}
}

func (h *Holder) domain() *Domain {
	if h.d == nil {
		h.d = Default()
	}
	return h.d
}

func (h *Holder) leasedCell() *hazardCell {
	if h.cell == nil {
		h.cell = h.domain().list.acquire(h.domain().metrics)
	}
	return h.cell
}

// LoadPointer publishes src's current value into h's hazard cell and
// re-validates it against concurrent writers, retrying the publish if
// src changed in between so the guard never protects a stale address.
// It returns nil if src currently holds nil.
//
// Precondition (unsafe): src must either be nil or point to a live
// object of type T for as long as any Guard returned here is live.
func LoadPointer[T any](h *Holder, src *atomic.Pointer[T]) *Guard[T] {
	cell := h.leasedCell()

	p1 := src.Load()
	for {
		cell.protect(unsafe.Pointer(p1))
		p2 := src.Load()
		if p1 == p2 {
			if p1 == nil {
				return nil
			}
			return &Guard[T]{holder: h, cell: cell, data: p1}
		}
		p1 = p2
	}
}

// Swap atomically installs next into src and returns a RetireToken
// wrapping the previous value, or nil if src held nil. It does not
// touch h's leased hazard cell; a writer never needs to protect the
// value it is retiring.
//
// Precondition (unsafe): the previous value of src, if non-nil, must
// not already be pending retirement elsewhere (no double-retire).
func Swap[T any](h *Holder, src *atomic.Pointer[T], next *T, deleter Deleter) *RetireToken[T] {
	old := src.Swap(next)
	if old == nil {
		return nil
	}
	return &RetireToken[T]{inner: old, domain: h.domain(), deleter: deleter}
}

// Take atomically installs nil into src and returns a RetireToken
// wrapping the previous value, or nil if src already held nil. Use
// this to retire the current value without installing a replacement.
func Take[T any](h *Holder, src *atomic.Pointer[T], deleter Deleter) *RetireToken[T] {
	old := src.Swap(nil)
	if old == nil {
		return nil
	}
	return &RetireToken[T]{inner: old, domain: h.domain(), deleter: deleter}
}

// TryReclaim runs a reclamation scan immediately against h's domain,
// without retiring anything new.
func (h *Holder) TryReclaim() {
	h.domain().TryReclaim()
}

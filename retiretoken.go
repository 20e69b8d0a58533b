// retiretoken.go: the capability to retire exactly one swapped-out
// pointer.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import "unsafe"

// RetireToken wraps a pointer that a writer has just swapped out of an
// atomic slot, granting the capability to retire it. Retire must be
// called at most once; a token that is never retired leaks its
// pointer, silently, since there is no finalizer hooked up to catch it.
type RetireToken[T any] struct {
	inner   *T
	domain  *Domain
	deleter Deleter
}

// Value returns the swapped-out value. It remains valid to read until
// Retire is called; after Retire, no guarantees hold.
func (t *RetireToken[T]) Value() *T {
	return t.inner
}

// Retire pushes the wrapped pointer onto the domain's retired list and
// triggers a reclamation scan.
//
// Precondition (unsafe): must not be called more than once for the
// same underlying pointer, even across different RetireTokens that
// happen to wrap it (see DomainOptions.DebugChecks for opt-in
// detection of this violation in tests).
func (t *RetireToken[T]) Retire() {
	t.domain.retired.push(unsafe.Pointer(t.inner), t.inner, t.deleter, t.domain)
}

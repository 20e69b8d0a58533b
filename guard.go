// guard.go: the scoped access token returned by LoadPointer.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

// Guard is a scoped access token over a value protected by a hazard
// cell. While live, the protected value is guaranteed not to be
// destroyed by any scan. Release must be called exactly once, after
// which Value must not be called again.
//
// By default Guard exposes only shared access (Value returns *T, but
// callers are expected to treat it as read-only): two Guards obtained
// through separate Holders can simultaneously reference the same
// object, so concurrent mutation through both would be a data race.
// Callers that have externally arranged exclusive mutation (e.g. a
// single-writer protocol) may use AssumeUniqueAccess to opt back into
// unchecked mutable access explicitly.
type Guard[T any] struct {
	holder *Holder
	cell   *hazardCell
	data   *T
}

// Value returns the protected value for shared (read) access.
func (g *Guard[T]) Value() *T {
	return g.data
}

// AssumeUniqueAccess returns the protected value for mutation. The
// caller takes on the full responsibility for that: it must ensure no
// other live Guard (in this goroutine or any other) is used to mutate
// the same object concurrently.
func (g *Guard[T]) AssumeUniqueAccess() *T {
	return g.data
}

// Release drops the hazard cell backing this Guard, returning it to the
// domain's free pool. After Release, the object g once protected may be
// destroyed by any subsequent scan.
func (g *Guard[T]) Release() {
	if g.cell == nil {
		return
	}
	g.holder.domain().list.release(g.cell)
	if g.holder.cell == g.cell {
		g.holder.cell = nil
	}
	g.cell = nil
	g.data = nil
}

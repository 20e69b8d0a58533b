// Package hazard implements a hazard-pointer domain: a lock-free safe
// memory reclamation (SMR) scheme for concurrent data structures.
//
// # Overview
//
// A reader dereferences a shared atomic pointer by publishing it into a
// hazard cell before touching it ("protecting" the address). A writer
// swaps the atomic pointer and retires the old value; retiring pushes it
// onto a lock-free retired list and triggers a scan that compares every
// retired address against every currently protected address, destroying
// whatever nothing protects.
//
//	var slot atomic.Pointer[User]
//	slot.Store(&User{ID: 1})
//
//	var h hazard.Holder
//	guard := hazard.LoadPointer(&h, &slot)
//	if guard != nil {
//	    defer guard.Release()
//	    fmt.Println(guard.Value().ID)
//	}
//
//	token := hazard.Swap(&h, &slot, &User{ID: 2}, hazard.Boxed)
//	if token != nil {
//	    token.Retire() // destroys User{ID: 1} once no guard protects it
//	}
//
// # Concurrency model
//
//   - No internal goroutines. No suspension points. Every operation is a
//     bounded sequence of atomic reads/writes/CAS loops.
//   - HazardCells are immortal: once allocated they live for the process
//     lifetime and are only ever leased and released, never freed.
//   - RetiredRecords are freed by whichever scan proves them unprotected.
//
// # Unsafe contracts
//
// This package cannot be made fully safe without a tracing GC or atomic
// reference counting; see Guard and RetireToken for the exact
// preconditions each caller must uphold:
//
//   - A pointer handed to Swap/Take must never be retired twice.
//   - A Guard must be released before the caller assumes the underlying
//     object is gone; it is not reference counted.
//   - Guard.Value returns shared (read-only) access by convention; a
//     caller that has externally arranged exclusive mutation may opt
//     into the stronger, unsafe contract via Guard.AssumeUniqueAccess —
//     see Guard.
//
// # Observability
//
// Domain construction accepts a Logger, a MetricsCollector and a
// TimeProvider (see DomainOptions). Logger and MetricsCollector default
// to zero-overhead no-ops; TimeProvider defaults to a go-timecache
// backed clock. The hazardobs subpackage wires Argus-based hot reload of the
// two runtime-mutable knobs (scan-latency warn threshold, debug-mode
// contract checking) without touching the reclamation algorithm itself.
package hazard

// retired.go: the lock-free LIFO of retired records and the
// reclamation scan that compares them against currently held hazards.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import (
	"sync/atomic"
	"unsafe"
)

// retiredRecord is an intrusive node carrying one pointer awaiting
// destruction. addr is the type-erased address used to test membership
// in a scan's hazard snapshot; value is the same pointer carried as
// interface{} so the Deleter can recover its concrete type.
type retiredRecord struct {
	addr    unsafe.Pointer
	value   interface{}
	deleter Deleter
	next    atomic.Pointer[retiredRecord]
}

// retiredList is a lock-free LIFO of retiredRecords. Head is an atomic
// pointer; pushes use compare-exchange, and a full swap detaches the
// whole chain for scanning.
type retiredList struct {
	head  atomic.Pointer[retiredRecord]
	depth atomic.Int64
}

// push installs a new retiredRecord at the head of the list and
// triggers a scan immediately, so retired memory doesn't accumulate
// between explicit calls to TryReclaim.
func (r *retiredList) push(addr unsafe.Pointer, value interface{}, deleter Deleter, d *Domain) {
	if d.debugChecks.Load() {
		d.debugOnRetire(addr)
	}

	rec := &retiredRecord{addr: addr, value: value, deleter: deleter}
	for {
		cur := r.head.Load()
		rec.next.Store(cur)
		if r.head.CompareAndSwap(cur, rec) {
			break
		}
	}
	depth := r.depth.Add(1)
	d.metrics.RecordRetirePush(int(depth))
	r.scan(d)
}

// scan is the reclamation engine: detach the retired chain, snapshot
// every currently protected address, partition the chain into
// deleted-now and survives-to-next-scan, then splice survivors back
// onto head.
func (r *retiredList) scan(d *Domain) {
	start := d.timeProvider.Now()

	chain := r.head.Swap(nil)

	hazards := make(map[uintptr]struct{})
	d.list.snapshot(hazards)

	var survivorsHead, survivorsTail *retiredRecord
	reclaimed := 0
	survivors := 0

	for cur := chain; cur != nil; {
		next := cur.next.Load()
		if _, protected := hazards[uintptrOf(cur.addr)]; !protected {
			cur.deleter.Delete(cur.value)
			r.depth.Add(-1)
			if d.debugChecks.Load() {
				d.debugOnReclaim(cur.addr)
			}
			reclaimed++
		} else {
			cur.next.Store(nil)
			if survivorsHead == nil {
				survivorsHead = cur
			} else {
				survivorsTail.next.Store(cur)
			}
			survivorsTail = cur
			survivors++
		}
		cur = next
	}

	// Splice survivors back onto head, retrying if another goroutine
	// pushed new records onto head while we were scanning.
	for {
		if r.head.CompareAndSwap(nil, survivorsHead) {
			break
		}
		if survivorsHead == nil {
			// Nothing of ours to reinsert; whatever is on head now is
			// work for the next scan.
			break
		}
		pushed := r.head.Swap(nil)
		tail := survivorsTail
		for tail.next.Load() != nil {
			tail = tail.next.Load()
		}
		tail.next.Store(pushed)
		// Loop back and retry the fast-path CAS with the now-longer
		// survivors chain; the tail walk above re-derives the new tail
		// from survivorsTail each time, so no extra bookkeeping needed.
	}

	elapsed := d.timeProvider.Now() - start
	d.metrics.RecordScan(elapsed, reclaimed, survivors)
	if threshold := d.scanLogThreshold.Load(); threshold > 0 && elapsed >= threshold {
		d.logger.Warn("hazard: scan exceeded threshold",
			"duration_ns", elapsed, "reclaimed", reclaimed, "survivors", survivors)
	}
}

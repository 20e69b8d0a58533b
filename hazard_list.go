// hazard_list.go: lock-free grow-only singly linked stack of hazard
// cells, with a lease/release protocol via the vacant flag.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

import (
	"sync/atomic"
	"unsafe"
)

// uintptrOf converts an erased address to a uintptr for use as a set
// key. It is used only to compare identity within a single scan; the
// object's liveness is guaranteed by whatever reader published it, not
// by this conversion.
func uintptrOf(p unsafe.Pointer) uintptr {
	return uintptr(p)
}

// hazardList is a lock-free, head-push-only singly linked stack of
// hazardCells. Nodes are immortal, so traversal is safe at any time
// without additional synchronization beyond the atomic loads below.
type hazardList struct {
	head atomic.Pointer[hazardCell]
	len  atomic.Int64 // monotonically non-decreasing, cells are never freed
}

// acquire leases a cell to the caller: it first walks the list looking
// for a vacant cell to claim, and only allocates a new one if none is
// free. Cells are never removed from the list and next is immutable
// once published, so the walk never races with a structural mutation.
func (l *hazardList) acquire(metrics MetricsCollector) *hazardCell {
	for cur := l.head.Load(); cur != nil; cur = cur.next.Load() {
		if cur.vacant.CompareAndSwap(true, false) {
			metrics.RecordCellAcquire(true)
			return cur
		}
	}

	fresh := &hazardCell{}
	fresh.vacant.Store(false)
	for {
		head := l.head.Load()
		fresh.next.Store(head)
		if l.head.CompareAndSwap(head, fresh) {
			n := l.len.Add(1)
			metrics.RecordCellAcquire(false)
			metrics.RecordListGrowth(int(n))
			return fresh
		}
		// Lost the race for head; another acquirer (or another
		// allocation by us) changed it. Reload and retry — fresh has
		// not been published yet, so no other goroutine can see it.
	}
}

// release returns cell to the free pool. Called by Guard.Release.
func (l *hazardList) release(cell *hazardCell) {
	cell.clear()
}

// snapshot collects every address currently protected by any cell
// reachable from head into dst, which the caller owns exclusively.
func (l *hazardList) snapshot(dst map[uintptr]struct{}) {
	for cur := l.head.Load(); cur != nil; cur = cur.next.Load() {
		if addr := cur.load(); addr != nil {
			dst[uintptrOf(addr)] = struct{}{}
		}
	}
}

// length reports the number of cells reachable from head, a value that
// only ever grows. Exposed for tests and diagnostics; not used on any
// hot path.
func (l *hazardList) length() int64 {
	return l.len.Load()
}

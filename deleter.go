// deleter.go: polymorphic "how to destroy one erased pointer" strategy.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package hazard

// Destroyer is an optional interface a retired value may implement. A
// scan invokes HazardDestroy once it has proven nothing protects the
// value anymore. Types that don't need cleanup (plain data) don't need
// to implement it; Go's garbage collector reclaims their memory once
// the RetiredRecord holding the last reference is itself collected.
type Destroyer interface {
	HazardDestroy()
}

// Deleter knows how to destroy one type-erased retired value.
// Implementations must be stateless and have process lifetime, since a
// scan may invoke Delete at an arbitrary future time after the retiring
// goroutine is long gone. Delete must tolerate a nil erased value.
//
// erased is the same value that was passed to Swap/Take as the old
// pointer, carried as interface{} rather than unsafe.Pointer so its
// concrete type survives for the Destroyer type assertion below; this
// also means Go's garbage collector keeps tracing it normally for as
// long as the RetiredRecord holds it.
type Deleter interface {
	Delete(erased interface{})
}

// boxedDeleter is the Deleter for pointers obtained from an owning heap
// allocation (the common case: new(T) or &T{...}). In a language
// without a tracing GC this would additionally deallocate the backing
// storage; in Go that step is implicit once the RetiredRecord referring
// to erased is itself collected, so Delete's only job is to run an
// optional Destroyer hook.
type boxedDeleter struct{}

func (boxedDeleter) Delete(erased interface{}) {
	if erased == nil {
		return
	}
	if d, ok := erased.(Destroyer); ok {
		d.HazardDestroy()
	}
}

// dropInPlaceDeleter is the Deleter for pointers into storage the
// caller owns and will free or reuse separately (e.g. a slot inside an
// arena or a ring buffer). Delete runs only the Destroyer hook and
// never assumes ownership of the backing memory: the caller, not this
// package, decides when that storage is freed or recycled.
type dropInPlaceDeleter struct{}

func (dropInPlaceDeleter) Delete(erased interface{}) {
	if erased == nil {
		return
	}
	if d, ok := erased.(Destroyer); ok {
		d.HazardDestroy()
	}
}

// Boxed is the Deleter for pointers obtained from an owning heap
// allocation. It is a zero-sized singleton with a stable address,
// suitable for use as the deleter argument of Swap/Take/Retire from any
// goroutine at any time.
var Boxed Deleter = boxedDeleter{}

// DropInPlace is the Deleter for pointers into caller-managed storage.
// Like Boxed it is a zero-sized, process-lifetime singleton.
var DropInPlace Deleter = dropInPlaceDeleter{}

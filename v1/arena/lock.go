// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

// Lock grants exclusive access to one Arena for building and traversing
// nodes. Only one Lock (or GC pass, see gc.go) may be alive on a given
// Arena at a time; every Ref minted by a Lock is tagged with that Lock's
// generation and becomes unusable the instant the Lock is released, the
// same way a borrow cannot outlive its scope in the original
// implementation's type system. Go has no compile-time borrow checker, so
// the discipline is enforced at runtime instead: stale use panics rather
// than silently reading freed or relocated memory.
type Lock[N any] struct {
	a        *Arena[N]
	gen      uint64
	released bool
}

// NewLock acquires the arena's exclusive lock. It panics if a Lock or GC
// pass is already active on a, or if a has been destroyed.
func NewLock[N any](a *Arena[N]) *Lock[N] {
	a.checkNotDestroyed()
	if !a.lockHeld.CompareAndSwap(false, true) {
		panic("arena: a Lock or GC pass is already active on this arena")
	}
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.mu.Unlock()
	return &Lock[N]{a: a, gen: gen}
}

// Release ends the borrow scope. Idempotent.
func (l *Lock[N]) Release() {
	if l.released {
		return
	}
	l.released = true
	l.a.lockHeld.Store(false)
}

func (l *Lock[N]) checkLive() {
	if l.released {
		panic("arena: use of a Lock after Release")
	}
}

// Alloc stores v in a new node slot and returns a Ref scoped to l.
func (l *Lock[N]) Alloc(v N) Ref {
	l.checkLive()
	return l.a.alloc(v)
}

// Deref resolves r to its current value. Panics if r was minted by a
// different Lock generation (including a since-released one) or if it
// addresses a slot GC has reclaimed.
func (l *Lock[N]) Deref(r Ref) N {
	l.checkLive()
	if r.IsNil() {
		panic("arena: dereferenced a nil Ref")
	}
	if r.gen != l.gen {
		panic("arena: Ref used outside the Lock scope that produced it")
	}
	return l.a.derefRaw(r.idx)
}

// Arena returns the arena l is locking, for APIs (GC, NodeRc registration)
// that need the arena itself rather than just access through the lock.
func (l *Lock[N]) Arena() *Arena[N] { return l.a }

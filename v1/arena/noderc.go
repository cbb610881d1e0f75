// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

// NodeRc is a pinned root: a reference to a node that survives across Lock
// scopes and across GC passes, at the cost of participating as a GC root
// for as long as it is registered. Drivers typically keep one NodeRc per
// top-level Program they intend to revisit across multiple compiler
// passes (parse, resolve, generate).
type NodeRc[N any] struct {
	a   *Arena[N]
	idx int32
}

// Pin registers r as a pinned root and returns a handle to it. r must have
// been produced by (and still be valid under) l.
func Pin[N any](l *Lock[N], r Ref) *NodeRc[N] {
	// Forces the generation check and liveness check Deref already does,
	// without needing to look at the value itself.
	l.Deref(r)

	a := l.a
	a.mu.Lock()
	defer a.mu.Unlock()
	rc := &NodeRc[N]{a: a, idx: r.idx}
	a.roots[rc] = struct{}{}
	return rc
}

// Deref resolves the pinned root to its current value under l. l must be a
// live Lock on the same arena that minted rc.
func (rc *NodeRc[N]) Deref(l *Lock[N]) N {
	l.checkLive()
	if l.a != rc.a {
		panic("arena: NodeRc dereferenced through a Lock on a different arena")
	}
	return l.a.derefRaw(rc.idx)
}

// Ref mints a fresh Ref scoped to l pointing at the same node rc pins,
// letting callers splice a pinned root back into a fresh tree as a child.
func (rc *NodeRc[N]) Ref(l *Lock[N]) Ref {
	l.checkLive()
	if l.a != rc.a {
		panic("arena: NodeRc referenced through a Lock on a different arena")
	}
	return Ref{idx: rc.idx, gen: l.gen}
}

// Drop unregisters rc as a GC root. Dereferencing rc after Drop panics.
// Dropping a NodeRc after its arena has been destroyed is a programmer
// error and panics, matching the arena-owns-its-roots lifetime rule.
func (rc *NodeRc[N]) Drop() {
	rc.a.mu.Lock()
	defer rc.a.mu.Unlock()
	if rc.a.destroyed {
		panic("arena: dropped a pinned root after its arena was destroyed")
	}
	delete(rc.a.roots, rc)
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package arena implements the chunked, generation-guarded node allocator
// that backs the AST: a single-writer arena of N-typed node slots plus an
// auxiliary chain of list cells, exposed only through a Lock that stands in
// for the borrow-scope discipline the original implementation gets from a
// compile-time lifetime. Exactly one Lock (or GC pass) may be active on a
// given Arena at a time; the arena panics rather than corrupt state when
// that invariant is violated.
//
// The node/cell storage layout is grounded directly on the teacher's
// v1/storage/arena package (segmented, geometrically growing chunks
// addressed by a flat int32 index, with a freelist for reclaimed slots).
package arena

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Ref is a lightweight, generation-tagged reference to a node slot. It is
// only valid for the lifetime of the Lock that minted it; dereferencing a
// Ref through any other Lock (or after Release) panics.
type Ref struct {
	idx int32
	gen uint64
}

// Nil is the sentinel "no node" reference used for optional child slots.
var Nil = Ref{idx: -1}

// IsNil reports whether r is the sentinel reference.
func (r Ref) IsNil() bool { return r.idx < 0 }

// CellRef addresses one list cell. Cell indices are never remapped by GC
// (see gc.go), so a CellRef embedded inside a node's own fields (as the
// head of a NodeList) always stays valid across GC passes without the
// arena needing to rewrite opaque node contents.
type CellRef struct {
	idx int32
}

// NilCell is the sentinel "empty list" cell reference.
var NilCell = CellRef{idx: -1}

// IsNil reports whether c is the sentinel reference.
func (c CellRef) IsNil() bool { return c.idx < 0 }

type cell struct {
	elem Ref
	next CellRef
	live bool
}

type nodeSlot[N any] struct {
	value N
	live  bool
}

// Arena owns every node and list cell produced while compiling one file (or
// one otherwise-independent unit of work). N is the node payload type;
// callers normally instantiate Arena[ast.Node].
type Arena[N any] struct {
	mu sync.Mutex // guards the bookkeeping fields below, not node content

	nodes    chunked[nodeSlot[N]]
	nodeFree []int32

	cells    chunked[cell]
	cellFree []int32

	lockHeld  atomic.Bool
	gen       uint64
	destroyed bool

	roots map[*NodeRc[N]]struct{}

	id  uuid.UUID
	log *logrus.Entry
}

// New creates an empty Arena. log may be nil, in which case GC passes are
// not logged.
func New[N any](log *logrus.Entry) *Arena[N] {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel + 1)
		log = logrus.NewEntry(l)
	}
	id := uuid.New()
	return &Arena[N]{
		roots: make(map[*NodeRc[N]]struct{}),
		id:    id,
		log:   log.WithField("arena_id", id),
	}
}

// ID returns the arena's correlation id, used to tag GC and diagnostic log
// lines across a run that may juggle many independent arenas concurrently
// (one per file; see cmd/astc).
func (a *Arena[N]) ID() uuid.UUID { return a.id }

// Destroy marks the arena permanently unusable. Any NodeRc still registered
// against it will panic on its next Deref, matching the "a pinned root must
// not outlive its arena" invariant.
func (a *Arena[N]) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyed = true
}

func (a *Arena[N]) checkNotDestroyed() {
	if a.destroyed {
		panic("arena: use of a destroyed arena")
	}
}

// NodeCount reports the number of live node slots (excludes freed slots
// awaiting reuse).
func (a *Arena[N]) NodeCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int(a.nodes.Len()) - len(a.nodeFree)
}

// alloc reserves a node slot, reusing a freed one when available, and
// stores v in it. Must be called with a live Lock held on a (enforced by
// callers in lock.go).
func (a *Arena[N]) alloc(v N) Ref {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkNotDestroyed()

	var idx int32
	if n := len(a.nodeFree); n > 0 {
		idx = a.nodeFree[n-1]
		a.nodeFree = a.nodeFree[:n-1]
		*a.nodes.at(idx) = nodeSlot[N]{value: v, live: true}
	} else {
		idx = a.nodes.grow()
		*a.nodes.at(idx) = nodeSlot[N]{value: v, live: true}
	}
	return Ref{idx: idx, gen: a.gen}
}

func (a *Arena[N]) derefRaw(idx int32) N {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkNotDestroyed()
	slot := a.nodes.at(idx)
	if !slot.live {
		panic("arena: dereferenced a reclaimed node slot")
	}
	return slot.value
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"github.com/sirupsen/logrus"

	"module/v1/arena"
)

// Arena, Lock and NodeRc are the ast package's instantiations of the
// generic arena types over Node, so callers never have to spell out the
// type parameter themselves.
type (
	Arena  = arena.Arena[Node]
	Lock   = arena.Lock[Node]
	NodeRc = arena.NodeRc[Node]
)

// NewArena creates an empty arena ready to hold one program's nodes.
func NewArena(log *logrus.Entry) *Arena { return arena.New[Node](log) }

// NewLock acquires the arena's exclusive lock; see arena.NewLock.
func NewLock(a *Arena) *Lock { return arena.NewLock(a) }

// Pin registers r as a pinned root surviving past lock's release and
// across GC passes.
func Pin(lock *Lock, r Ref) *NodeRc { return arena.Pin(lock, r) }

// GC runs one reachability pass over a, reclaiming anything not reachable
// from a pinned root. Panics if a Lock is currently held on a.
func GC(a *Arena) { a.GC(walkForGC) }

// TryGC is the non-panicking variant of GC, for callers that cannot prove
// no Lock is currently held.
func TryGC(a *Arena) bool { return a.TryGC(walkForGC) }

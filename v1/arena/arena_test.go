// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

import "testing"

// testNode is a minimal stand-in for ast.Node, just rich enough to
// exercise child-Ref and child-List reachability during GC.
type testNode struct {
	name     string
	child    Ref
	children List
}

func testWalk(n testNode, visitRef func(Ref), visitList func(List)) {
	visitRef(n.child)
	visitList(n.children)
}

func TestAllocDerefRoundTrip(t *testing.T) {
	a := New[testNode](nil)
	l := NewLock(a)
	defer l.Release()

	r := l.Alloc(testNode{name: "leaf", child: Nil})
	got := l.Deref(r)
	if got.name != "leaf" {
		t.Fatalf("Deref = %+v, want name=leaf", got)
	}
}

func TestStaleRefAfterReleasePanics(t *testing.T) {
	a := New[testNode](nil)
	l := NewLock(a)
	r := l.Alloc(testNode{child: Nil})
	l.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic dereferencing through a released Lock")
		}
	}()
	l.Deref(r)
}

func TestRefFromPriorGenerationPanics(t *testing.T) {
	a := New[testNode](nil)
	l1 := NewLock(a)
	r := l1.Alloc(testNode{child: Nil})
	l1.Release()

	l2 := NewLock(a)
	defer l2.Release()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic dereferencing a Ref from a prior Lock generation")
		}
	}()
	l2.Deref(r)
}

func TestDoubleLockPanics(t *testing.T) {
	a := New[testNode](nil)
	l1 := NewLock(a)
	defer l1.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic acquiring a second Lock while one is active")
		}
	}()
	NewLock(a)
}

func TestGCReclaimsUnreachable(t *testing.T) {
	a := New[testNode](nil)
	l := NewLock(a)
	leaf := l.Alloc(testNode{child: Nil})
	root := l.Alloc(testNode{child: leaf})
	pinned := Pin(l, root)
	_ = l.Alloc(testNode{child: Nil}) // unreachable garbage
	l.Release()

	if a.NodeCount() != 3 {
		t.Fatalf("NodeCount before GC = %d, want 3", a.NodeCount())
	}
	a.GC(testWalk)
	if a.NodeCount() != 2 {
		t.Fatalf("NodeCount after GC = %d, want 2 (root+leaf survive, garbage reclaimed)", a.NodeCount())
	}

	l2 := NewLock(a)
	defer l2.Release()
	got := pinned.Deref(l2)
	leafAgain := l2.Deref(got.child)
	_ = leafAgain
}

func TestGCWhileLockedPanics(t *testing.T) {
	a := New[testNode](nil)
	l := NewLock(a)
	defer l.Release()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic running GC while a Lock is active")
		}
	}()
	a.GC(testWalk)
}

func TestTryGCReturnsFalseWhenLocked(t *testing.T) {
	a := New[testNode](nil)
	l := NewLock(a)
	defer l.Release()

	if a.TryGC(testWalk) {
		t.Fatalf("TryGC = true while a Lock is active, want false")
	}
}

func TestListPrependAndElems(t *testing.T) {
	a := New[testNode](nil)
	l := NewLock(a)
	defer l.Release()

	r1 := l.Alloc(testNode{child: Nil})
	r2 := l.Alloc(testNode{child: Nil})
	ls := FromSlice(l, []Ref{r1, r2})
	if ls.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ls.Len())
	}
	elems := Elems(l, ls)
	if len(elems) != 2 || elems[0] != r1 || elems[1] != r2 {
		t.Fatalf("Elems = %+v, want [%+v %+v]", elems, r1, r2)
	}
}

func TestDestroyedArenaPanicsOnDrop(t *testing.T) {
	a := New[testNode](nil)
	l := NewLock(a)
	r := l.Alloc(testNode{child: Nil})
	rc := Pin(l, r)
	l.Release()
	a.Destroy()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic dropping a pinned root after arena destruction")
		}
	}()
	rc.Drop()
}

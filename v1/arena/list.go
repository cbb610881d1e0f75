// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package arena

// List is an intrusive, singly-linked chain of node references, used
// anywhere the AST needs an ordered sequence of children (statement
// bodies, argument lists, property lists, ...). It is a value type with
// copy-like handle semantics, exactly as specified: copying a List copies
// the head pointer, not the chain.
type List struct {
	head CellRef
	len  int32
}

// EmptyList is the canonical empty list value.
var EmptyList = List{head: NilCell}

// Len returns the number of elements, without walking the chain.
func (ls List) Len() int32 { return ls.len }

// IsEmpty reports whether the list has no elements.
func (ls List) IsEmpty() bool { return ls.head.IsNil() }

// Prepend allocates a new cell holding elem ahead of ls and returns the
// resulting list. Building a list front-to-back (as a template assembling
// children bottom-up generally must) means building in reverse order and
// prepending; PushBack is provided for the common top-down assembly case
// and costs an O(n) walk to find the tail.
func Prepend[N any](l *Lock[N], ls List, elem Ref) List {
	l.checkLive()
	a := l.a
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkNotDestroyed()

	idx := allocCellLocked(a, cell{elem: elem, next: ls.head, live: true})
	return List{head: CellRef{idx: idx}, len: ls.len + 1}
}

// PushBack appends elem to the end of ls and returns the resulting list.
func PushBack[N any](l *Lock[N], ls List, elem Ref) List {
	l.checkLive()
	a := l.a
	a.mu.Lock()
	defer a.mu.Unlock()
	a.checkNotDestroyed()

	idx := allocCellLocked(a, cell{elem: elem, next: NilCell, live: true})
	newCell := CellRef{idx: idx}
	if ls.head.IsNil() {
		return List{head: newCell, len: 1}
	}
	cur := ls.head
	for {
		c := a.cells.at(cur.idx)
		if c.next.IsNil() {
			c.next = newCell
			break
		}
		cur = c.next
	}
	return List{head: ls.head, len: ls.len + 1}
}

// FromSlice builds a List containing refs in order.
func FromSlice[N any](l *Lock[N], refs []Ref) List {
	ls := EmptyList
	for i := len(refs) - 1; i >= 0; i-- {
		ls = Prepend(l, ls, refs[i])
	}
	return ls
}

func allocCellLocked[N any](a *Arena[N], c cell) int32 {
	if n := len(a.cellFree); n > 0 {
		idx := a.cellFree[n-1]
		a.cellFree = a.cellFree[:n-1]
		*a.cells.at(idx) = c
		return idx
	}
	idx := a.cells.grow()
	*a.cells.at(idx) = c
	return idx
}

// Elems resolves ls into a plain slice of Refs, in order. Intended for
// visitor dispatch and the generator, not for hot allocation paths.
func Elems[N any](l *Lock[N], ls List) []Ref {
	l.checkLive()
	out := make([]Ref, 0, ls.len)
	cur := ls.head
	a := l.a
	for !cur.IsNil() {
		a.mu.Lock()
		c := *a.cells.at(cur.idx)
		a.mu.Unlock()
		if !c.live {
			panic("arena: walked into a reclaimed list cell")
		}
		out = append(out, c.elem)
		cur = c.next
	}
	return out
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import (
	"sync"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

type bucket16 struct {
	hash uint64
	idx  uint32
}

// Table16 uniques 16-bit-code-unit content (JS string literals). Unlike
// Table8 the content is not required to be valid UTF-8 or even valid
// UTF-16: unpaired surrogates round-trip exactly, since JS string literals
// may legally contain them.
type Table16 struct {
	mu      sync.RWMutex
	buckets []bucket16
	content [][]uint16 // content[0] is the unused sentinel
	count   int
}

// NewTable16 creates an empty table.
func NewTable16() *Table16 {
	return &Table16{
		buckets: make([]bucket16, 16),
		content: [][]uint16{nil},
	}
}

// units16Bytes views a []uint16 as its underlying bytes for hashing and
// byte-wise comparison, without copying. Safe because the slice's backing
// array outlives the view (we never hash past the caller's stack frame).
func units16Bytes(u []uint16) []byte {
	if len(u) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&u[0])), len(u)*2)
}

func units16Equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Intern returns the Atom16 for units, interning a copy on first occurrence.
func (t *Table16) Intern(units []uint16) Atom16 {
	h := xxhash.Sum64(units16Bytes(units))

	t.mu.RLock()
	if a, ok := t.find(h, units); ok {
		t.mu.RUnlock()
		return a
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if a, ok := t.find(h, units); ok {
		return a
	}
	owned := make([]uint16, len(units))
	copy(owned, units)
	return t.insert(h, owned)
}

// Lookup returns the content interned under a.
func (t *Table16) Lookup(a Atom16) []uint16 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx := int(a)
	if idx <= 0 || idx >= len(t.content) {
		panic("atom: lookup of handle not produced by this table")
	}
	return t.content[idx]
}

func (t *Table16) find(h uint64, units []uint16) (Atom16, bool) {
	mask := uint64(len(t.buckets) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		bk := t.buckets[i]
		if bk.idx == 0 {
			return 0, false
		}
		if bk.hash == h && units16Equal(t.content[bk.idx], units) {
			return Atom16(bk.idx), true
		}
	}
}

func (t *Table16) insert(h uint64, units []uint16) Atom16 {
	if t.count*2 >= len(t.buckets) {
		t.grow()
	}
	t.content = append(t.content, units)
	idx := uint32(len(t.content) - 1)
	mask := uint64(len(t.buckets) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		if t.buckets[i].idx == 0 {
			t.buckets[i] = bucket16{hash: h, idx: idx}
			t.count++
			return Atom16(idx)
		}
	}
}

func (t *Table16) grow() {
	old := t.buckets
	t.buckets = make([]bucket16, len(old)*2)
	mask := uint64(len(t.buckets) - 1)
	for _, bk := range old {
		if bk.idx == 0 {
			continue
		}
		for i := bk.hash & mask; ; i = (i + 1) & mask {
			if t.buckets[i].idx == 0 {
				t.buckets[i] = bk
				break
			}
		}
	}
}

// Len reports the number of distinct strings interned so far.
func (t *Table16) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

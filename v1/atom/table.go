// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package atom implements uniquing tables for two string alphabets used by
// the AST: 8-bit content (identifiers, always valid UTF-8) and 16-bit
// content (JS string literals, which may carry unpaired surrogates).
//
// Both tables hand out dense Atom handles starting at 1; handle 0 is the
// reserved invalid sentinel. Equality of atoms is integer equality: two
// atoms compare equal iff they were interned from byte-for-byte identical
// content. Handles never invalidate and are only meaningful against the
// table that produced them.
package atom

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Atom is a dense handle into a Table8.
type Atom uint32

// Atom16 is a dense handle into a Table16.
type Atom16 uint32

// Invalid is the reserved sentinel handle shared by both alphabets.
const Invalid = 0

// bucket is one slot of the open-addressing index. hash caches the content
// hash so probing never rehashes content on comparison misses.
type bucket struct {
	hash uint64
	idx  uint32 // 1-based index into content; 0 means empty
}

// Table8 uniques 8-bit (byte) content.
//
// Internally it is a hash set of owning copies backed by an open-addressing
// index table (linear probing, power-of-two sized) plus a parallel
// index -> content vector, matching the dense-handle contract: the same
// byte sequence always interns to the same Atom, and Lookup is O(1).
type Table8 struct {
	mu      sync.RWMutex
	buckets []bucket
	content []string // content[0] is the unused sentinel for Invalid
	count   int
}

// NewTable8 creates an empty table.
func NewTable8() *Table8 {
	return &Table8{
		buckets: make([]bucket, 16),
		content: []string{""},
	}
}

// Intern returns the Atom for b, interning it if this is the first
// occurrence of this exact byte sequence.
func (t *Table8) Intern(b []byte) Atom {
	h := xxhash.Sum64(b)

	t.mu.RLock()
	if a, ok := t.find(h, b); ok {
		t.mu.RUnlock()
		return a
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	// Re-check: another goroutine may have interned it while we waited
	// for the write lock.
	if a, ok := t.find(h, b); ok {
		return a
	}
	return t.insert(h, string(b))
}

// InternString is like Intern but avoids a copy when the caller already
// owns an immutable string.
func (t *Table8) InternString(s string) Atom {
	return t.Intern([]byte(s))
}

// Lookup returns the content interned under a. Panics if a is not a handle
// this table produced (including Invalid), since that indicates a
// cross-arena atom mixup (a programmer error per the error-handling design).
func (t *Table8) Lookup(a Atom) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx := int(a)
	if idx <= 0 || idx >= len(t.content) {
		panic("atom: lookup of handle not produced by this table")
	}
	return t.content[idx]
}

func (t *Table8) find(h uint64, b []byte) (Atom, bool) {
	mask := uint64(len(t.buckets) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		bk := t.buckets[i]
		if bk.idx == 0 {
			return 0, false
		}
		if bk.hash == h && t.content[bk.idx] == string(b) {
			return Atom(bk.idx), true
		}
	}
}

func (t *Table8) insert(h uint64, s string) Atom {
	if t.count*2 >= len(t.buckets) {
		t.grow()
	}
	t.content = append(t.content, s)
	idx := uint32(len(t.content) - 1)
	mask := uint64(len(t.buckets) - 1)
	for i := h & mask; ; i = (i + 1) & mask {
		if t.buckets[i].idx == 0 {
			t.buckets[i] = bucket{hash: h, idx: idx}
			t.count++
			return Atom(idx)
		}
	}
}

func (t *Table8) grow() {
	old := t.buckets
	t.buckets = make([]bucket, len(old)*2)
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
func (t *Table8) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import (
	"fmt"
	"testing"
)

func TestTable8Idempotence(t *testing.T) {
	tbl := NewTable8()
	a1 := tbl.InternString("hello")
	a2 := tbl.InternString("hello")
	if a1 != a2 {
		t.Fatalf("intern(s) != intern(s): %v != %v", a1, a2)
	}
	if tbl.Lookup(a1) != "hello" {
		t.Fatalf("lookup(intern(s)) != s: got %q", tbl.Lookup(a1))
	}
	b := tbl.InternString("world")
	if b == a1 {
		t.Fatalf("distinct strings must not share a handle")
	}
}

func TestTable8Growth(t *testing.T) {
	tbl := NewTable8()
	seen := make(map[Atom]string)
	for i := 0; i < 1000; i++ {
		s := fmt.Sprintf("ident_%d", i)
		a := tbl.InternString(s)
		if prev, ok := seen[a]; ok {
			t.Fatalf("handle collision: %v used for %q and %q", a, prev, s)
		}
		seen[a] = s
	}
	for a, s := range seen {
		if tbl.Lookup(a) != s {
			t.Fatalf("lookup(%v) = %q, want %q", a, tbl.Lookup(a), s)
		}
	}
}

func TestTable8LookupInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic looking up a handle this table never produced")
		}
	}()
	tbl := NewTable8()
	tbl.Lookup(Invalid)
}

func TestTable16UnpairedSurrogate(t *testing.T) {
	tbl := NewTable16()
	// U+D800 is a lone high surrogate: invalid as a Unicode scalar value,
	// but JS string literals are allowed to contain it.
	units := []uint16{'a', 0xD800, 'b'}
	a := tbl.Intern(units)
	got := tbl.Lookup(a)
	if len(got) != 3 || got[1] != 0xD800 {
		t.Fatalf("unpaired surrogate did not round-trip: %v", got)
	}
	// Interning an equal-but-distinct slice must yield the same handle.
	units2 := []uint16{'a', 0xD800, 'b'}
	if tbl.Intern(units2) != a {
		t.Fatalf("intern(s) != intern(s) for 16-bit content")
	}
}

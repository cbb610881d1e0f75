// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package source

import "testing"

func TestManagerAddAndLookup(t *testing.T) {
	m := NewManager(nil)
	id := m.AddSource("a.js", []byte("var x = 1;"))

	name, ok := m.Name(id)
	if !ok || name != "a.js" {
		t.Fatalf("Name(%v) = %q, %v; want a.js, true", id, name, ok)
	}
	buf, ok := m.Buffer(id)
	if !ok || string(buf) != "var x = 1;" {
		t.Fatalf("Buffer(%v) = %q, %v", id, buf, ok)
	}
	got, ok := m.LookupByName("a.js")
	if !ok || got != id {
		t.Fatalf("LookupByName = %v, %v; want %v, true", got, ok, id)
	}
	if _, ok := m.Digest(id); !ok {
		t.Fatalf("Digest(%v) not found", id)
	}
}

func TestManagerDiagnosticCounters(t *testing.T) {
	m := NewManager(nil)
	id := m.AddSource("a.js", []byte("x"))
	r := Range{File: id, Start: Loc{1, 1}, End: Loc{1, 2}}

	m.Error(r, "unexpected token %q", "x")
	m.Warning(r, "deprecated syntax")
	m.Note(r, "see also line 1")

	if m.NumErrors() != 1 || m.NumWarnings() != 1 || m.NumNotes() != 1 {
		t.Fatalf("counters = %d/%d/%d, want 1/1/1", m.NumErrors(), m.NumWarnings(), m.NumNotes())
	}
	diags := m.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("len(diagnostics) = %d, want 3", len(diags))
	}
	want := "a.js:1:1: error: unexpected token \"x\""
	if got := diags[0].Format(m); got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package source owns source buffers and diagnostics: it maps SourceIds to
// (name, contents) pairs and accumulates error/warning/note diagnostics
// emitted by later compiler stages.
package source

import (
	"fmt"

	"github.com/opencontainers/go-digest"
)

// Id identifies one source buffer registered with a Manager.
type Id int32

// Invalid is the reserved sentinel Id.
const Invalid Id = -1

// Loc is a 1-based line/column position within one source file.
type Loc struct {
	Line int32
	Col  int32
}

// InvalidLoc is the reserved sentinel location.
var InvalidLoc = Loc{Line: 0, Col: 0}

// Valid reports whether l is a real (non-sentinel) location.
func (l Loc) Valid() bool { return l.Line > 0 && l.Col > 0 }

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Range is a closed interval [Start, End] within one file.
type Range struct {
	File  Id
	Start Loc
	End   Loc
}

// InvalidRange is the reserved sentinel range.
var InvalidRange = Range{File: Invalid, Start: InvalidLoc, End: InvalidLoc}

// Valid reports whether r refers to a real span within a real file, with
// Start not past End.
func (r Range) Valid() bool {
	return r.File != Invalid && r.Start.Valid() && r.End.Valid() &&
		(r.Start.Line < r.End.Line || (r.Start.Line == r.End.Line && r.Start.Col <= r.End.Col))
}

// entry is one registered source buffer.
type entry struct {
	name       string
	buffer     []byte
	digest     digest.Digest
	lineStarts []int32 // byte offset of the first byte of each line; lineStarts[0] == 0
}

// Kind classifies a diagnostic.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindWarning:
		return "warning"
	case KindNote:
		return "note"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported error/warning/note, carrying enough context to
// format as `file:line:col: kind: message` and to dedup across driver runs
// over the same input via Digest.
type Diagnostic struct {
	Kind    Kind
	Range   Range
	Message string
	Digest  digest.Digest
}

// Format renders the diagnostic as `file:line:col: kind: message`.
func (d Diagnostic) Format(m *Manager) string {
	name := "<unknown>"
	if d.Range.File != Invalid {
		if n, ok := m.Name(d.Range.File); ok {
			name = n
		}
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", name, d.Range.Start.Line, d.Range.Start.Col, d.Kind, d.Message)
}

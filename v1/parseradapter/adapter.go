// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package parseradapter describes the contract a native JavaScript/Flow/
// TypeScript parser front-end must satisfy to feed this module's arena-
// managed AST. No such parser is implemented here (it is explicitly out
// of scope, see spec.md §1): this package only fixes the interface, the
// request flags, and the result/diagnostic shapes every adapter
// implementation — real or fake — must honor. See the fake subpackage
// for a hand-built stand-in used to exercise the validator, resolver, and
// generator in tests.
package parseradapter

import (
	"context"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
)

// Dialect selects the grammar superset an Adapter should parse under.
type Dialect uint8

const (
	JavaScript Dialect = iota
	Flow
	FlowUnambiguous
	FlowDetect
	TypeScript
)

func (d Dialect) String() string {
	switch d {
	case JavaScript:
		return "javascript"
	case Flow:
		return "flow"
	case FlowUnambiguous:
		return "flow-unambiguous"
	case FlowDetect:
		return "flow-detect"
	case TypeScript:
		return "typescript"
	default:
		return "unknown"
	}
}

// Flags carries the parse request options spec.md §6 requires an adapter
// to accept.
type Flags struct {
	StrictMode    bool
	EnableJSX     bool
	Dialect       Dialect
	StoreDocBlock bool
}

// MagicComments holds the two magic comment forms an adapter recognizes
// while scanning, independent of node construction: `//# sourceURL=...`
// and `//# sourceMappingURL=...`.
type MagicComments struct {
	SourceURL        string
	SourceMappingURL string
}

// Result is a successful parse: the Program/Module root (as both the Ref
// a later rewriting pass needs and the dereferenced Node read-only
// consumers want), an optional leading doc-block comment (only populated
// when Flags.StoreDocBlock was set), and any magic comments recognized
// while scanning.
type Result struct {
	RootRef       ast.Ref
	Root          ast.Node
	DocBlock      *string
	MagicComments MagicComments
}

// Adapter is the contract a parser front-end must implement. Unlike
// spec.md's pseudocode signature, the Lock and atom tables are threaded
// in explicitly by the caller rather than owned by the Adapter — the same
// refinement already applied to validate.Validate, resolver.ResolveProgram,
// and generator.Generate (see DESIGN.md), so every node an Adapter builds
// lands in the one arena/atom-table pair the rest of the pipeline uses
// for that compilation unit. ctx carries cancellation/deadline for
// adapters that shell out to or block on a native parser process; the
// core itself never blocks (spec.md §5).
type Adapter interface {
	Parse(ctx context.Context, lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, src source.Id, buf []byte, flags Flags) (Result, []source.Diagnostic)
}

// EmptyProgram builds a zero-statement Program/Module root at range r,
// the one construction every Adapter implementation (fake or real) needs
// for the "empty input" boundary case (spec.md §8).
func EmptyProgram(lock *ast.Lock, r source.Range, module bool) ast.Ref {
	return ast.ProgramTemplate{Range: r, Body: arena.List{}, Module: module}.Build(lock)
}

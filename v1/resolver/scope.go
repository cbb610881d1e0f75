// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package resolver

import "module/v1/atom"

// ScopeID indexes SemContext.Scopes.
type ScopeID int32

// NoScope is the sentinel "no parent scope" id, used by the global scope.
const NoScope ScopeID = -1

// LexicalScope is one block/function-top scope in the scope tree.
type LexicalScope struct {
	Depth           int
	ParentFunction  FunctionID
	ParentScope     ScopeID
	Decls           []DeclID
	HoistedFunctions []DeclID
	LocalEval       bool

	// index is a bookkeeping lookup table absent from the spec's field
	// list; it lets Decl resolution within one scope run in O(1) rather
	// than scanning Decls linearly.
	index map[atom.Atom]DeclID
}

// FunctionID indexes SemContext.Functions. Function 0 is always the
// implicit top-level function hosting Program's own scope.
type FunctionID int32

// NoFunction is the sentinel "no parent function" id, used by the
// top-level function.
const NoFunction FunctionID = -1

// FunctionInfo is one function (including the implicit top-level one).
type FunctionInfo struct {
	ParentFunction FunctionID
	ParentScope    ScopeID
	Strict         bool
	Arrow          bool
	Scopes         []ScopeID
	ArgumentsDecl  DeclID
	NumLabels      int
}

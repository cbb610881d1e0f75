// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package resolver

import (
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
)

// DependencyResolver maps a module specifier (the string literal argument
// of a require(...) call) to the SourceId it resolves to. ResolveModule
// calls it once per distinct require call site; ResolveProgram never
// calls it (no require resolution happens in top-level script mode).
type DependencyResolver func(specifier string) (source.Id, bool)

// Resolution is what an identifier use resolves to.
type Resolution struct {
	Decl         DeclID
	Unresolvable bool
	// Suggestion is a "did you mean `<name>`?" note attached only when
	// Unresolvable and some visible declaration is within edit distance
	// 2 of the identifier's own name. Additive: it never changes whether
	// an identifier resolves, only what a diagnostic can say about it.
	Suggestion string
}

// SemContext is the result of one resolve_program/resolve_module pass:
// every Decl, LexicalScope and FunctionInfo discovered, plus the three
// maps spec.md §4.9 names.
type SemContext struct {
	Decls     []Decl
	Scopes    []LexicalScope
	Functions []FunctionInfo

	idents     map[ast.Node]Resolution
	nodeScopes map[ast.Node]ScopeID
	requires   map[ast.Node]source.Id
}

func newSemContext() *SemContext {
	return &SemContext{
		idents:     make(map[ast.Node]Resolution),
		nodeScopes: make(map[ast.Node]ScopeID),
		requires:   make(map[ast.Node]source.Id),
	}
}

// Decl returns the declaration recorded under id.
func (c *SemContext) Decl(id DeclID) *Decl { return &c.Decls[id] }

// Scope returns the lexical scope recorded under id.
func (c *SemContext) Scope(id ScopeID) *LexicalScope { return &c.Scopes[id] }

// Function returns the function info recorded under id.
func (c *SemContext) Function(id FunctionID) *FunctionInfo { return &c.Functions[id] }

// Resolve returns the Resolution computed for an identifier-use node, or
// false if n was never visited as a use site (binding-position
// identifiers, labels, and non-computed property keys are never entered
// into this map).
func (c *SemContext) Resolve(n ast.Node) (Resolution, bool) {
	r, ok := c.idents[n]
	return r, ok
}

// ScopeOf returns the scope a scope-introducing node (Program,
// BlockStatement, or a function's own top scope keyed by its body node)
// established, or false if n never introduced a scope.
func (c *SemContext) ScopeOf(n ast.Node) (ScopeID, bool) {
	s, ok := c.nodeScopes[n]
	return s, ok
}

// Require returns the SourceId a require(...) call site resolved to.
func (c *SemContext) Require(n ast.Node) (source.Id, bool) {
	id, ok := c.requires[n]
	return id, ok
}

// ResolveProgram runs top-level script resolution: no require(...) calls
// are resolved (DependencyResolver is nil), matching a plain <script>.
// tbl is the identifier atom table the tree's Identifier nodes were
// interned against; tbl16 (may be nil) is the string-literal table,
// consulted only for "use strict" directive-prologue detection.
func ResolveProgram(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node, mgr *source.Manager) *SemContext {
	return resolve(lock, tbl, tbl16, root, nil, mgr)
}

// ResolveModule runs module resolution: require(...) call sites are
// resolved through dep.
func ResolveModule(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node, dep DependencyResolver, mgr *source.Manager) *SemContext {
	return resolve(lock, tbl, tbl16, root, dep, mgr)
}

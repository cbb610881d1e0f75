// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package resolver

import (
	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
)

// pendingUse is an identifier-use site queued for resolution after the
// full tree has been walked, so a direct eval appearing anywhere in a
// scope poisons every identifier resolved against that scope regardless
// of its textual position relative to the eval call.
type pendingUse struct {
	node     *ast.Identifier
	ref      ast.Node // the Node value backing node, used as the idents map key
	scope    ScopeID
	function FunctionID
	isArgs   bool // true if this is a bare "arguments" reference
}

// walker builds a SemContext in one recursive descent over the tree,
// deferring only the final identifier-use resolution step.
type walker struct {
	lock *ast.Lock
	tbl  *atom.Table8
	tbl16 *atom.Table16
	dep  DependencyResolver
	mgr  *source.Manager
	ctx  *SemContext

	evalAtom    atom.Atom
	requireAtom atom.Atom
	argsAtom    atom.Atom

	pending []pendingUse
}

func resolve(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node, dep DependencyResolver, mgr *source.Manager) *SemContext {
	w := &walker{
		lock:        lock,
		tbl:         tbl,
		tbl16:       tbl16,
		dep:         dep,
		mgr:         mgr,
		ctx:         newSemContext(),
		evalAtom:    tbl.InternString("eval"),
		requireAtom: tbl.InternString("require"),
		argsAtom:    tbl.InternString("arguments"),
	}

	prog, ok := root.(*ast.Program)
	if !ok {
		panic("resolver: root is not a Program")
	}

	topFn := w.newFunction(NoFunction, NoScope, false /* strict */, false /* arrow */)
	topScope := w.newScope(NoScope, topFn)
	w.ctx.Functions[topFn].Scopes = append(w.ctx.Functions[topFn].Scopes, topScope)
	w.ctx.nodeScopes[prog] = topScope

	if w.hasUseStrictDirective(prog.Body) {
		w.ctx.Functions[topFn].Strict = true
	}

	w.collectFunctionBody(prog.Body, topScope, topFn)
	for _, r := range arena.Elems(lock, prog.Body) {
		w.walkStmt(lock.Deref(r), topScope, topFn)
	}

	w.resolvePending()
	w.sweepCanRename()

	if mgr != nil {
		w.reportUnresolvable()
	}
	return w.ctx
}

func (w *walker) newScope(parent ScopeID, fn FunctionID) ScopeID {
	depth := 0
	if parent != NoScope {
		depth = w.ctx.Scopes[parent].Depth + 1
	}
	id := ScopeID(len(w.ctx.Scopes))
	w.ctx.Scopes = append(w.ctx.Scopes, LexicalScope{
		Depth:          depth,
		ParentFunction: fn,
		ParentScope:    parent,
		index:          make(map[atom.Atom]DeclID),
	})
	return id
}

func (w *walker) newFunction(parent FunctionID, parentScope ScopeID, strict, arrow bool) FunctionID {
	id := FunctionID(len(w.ctx.Functions))
	w.ctx.Functions = append(w.ctx.Functions, FunctionInfo{
		ParentFunction: parent,
		ParentScope:    parentScope,
		Strict:         strict,
		Arrow:          arrow,
		ArgumentsDecl:  NoDecl,
	})
	return id
}

// declare registers a new Decl in scope, or returns the existing DeclID
// if name is already bound there and kind hoists idempotently (var-like
// or scoped-function redeclaration of the same binding).
func (w *walker) declare(scope ScopeID, name atom.Atom, kind DeclKind, special Special) DeclID {
	s := &w.ctx.Scopes[scope]
	if kind.IsVarLikeOrScopedFunction() {
		if existing, ok := s.index[name]; ok {
			return existing
		}
	}
	id := DeclID(len(w.ctx.Decls))
	w.ctx.Decls = append(w.ctx.Decls, Decl{
		Name:      name,
		Kind:      kind,
		Scope:     scope,
		Special:   special,
		CanRename: true,
	})
	s.Decls = append(s.Decls, id)
	s.index[name] = id
	return id
}

// lookupLocal finds name declared directly in scope, without walking to
// ancestors.
func (w *walker) lookupLocal(scope ScopeID, name atom.Atom) (DeclID, bool) {
	id, ok := w.ctx.Scopes[scope].index[name]
	return id, ok
}

func (w *walker) hasUseStrictDirective(body ast.NodeList) bool {
	refs := arena.Elems(w.lock, body)
	if len(refs) == 0 {
		return false
	}
	stmt, ok := w.lock.Deref(refs[0]).(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	lit, ok := w.lock.Deref(stmt.Expression).(*ast.StringLiteral)
	if !ok {
		return false
	}
	if w.tbl16 == nil {
		return false
	}
	units := w.tbl16.Lookup(lit.Value)
	const want = "use strict"
	if len(units) != len(want) {
		return false
	}
	for i, r := range want {
		if units[i] != uint16(r) {
			return false
		}
	}
	return true
}

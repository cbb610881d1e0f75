// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package resolver

import (
	"module/v1/arena"
	"module/v1/ast"
)

// collectFunctionBody is the decl-collection pre-pass for one function
// (or the top-level program): it walks body without descending into
// nested function bodies, hoisting var/function declarations to scope
// and registering block-scoped (let/const/class) declarations in their
// own nested scopes as they are discovered. It does not resolve any
// identifier use; that happens in the later full walk once every
// declaration and eval-poisoned scope in the tree is known.
func (w *walker) collectFunctionBody(body ast.NodeList, scope ScopeID, fn FunctionID) {
	w.collectStmts(arena.Elems(w.lock, body), scope, fn)
}

func (w *walker) collectStmts(refs []ast.Ref, scope ScopeID, fn FunctionID) {
	for _, r := range refs {
		w.collectStmt(w.lock.Deref(r), scope, fn)
	}
}

// collectStmt hoists var-like and function declarations reachable from
// stmt into scope without descending into nested function bodies, and
// recurses into nested block scopes for let/const/class. It does not
// allocate the nested scopes those blocks will get during the real
// walk (walkStmt does, to keep one source of truth for scope creation);
// it only needs to see the var/function-level declarations that are
// hoisted regardless of nesting depth.
func (w *walker) collectStmt(n ast.Node, scope ScopeID, fn FunctionID) {
	switch v := n.(type) {
	case *ast.VariableDeclaration:
		if v.Kind != ast.VarKindVar {
			return // let/const are block-scoped; collected during the real walk instead
		}
		for _, r := range arena.Elems(w.lock, v.Declarations) {
			d := w.lock.Deref(r).(*ast.VariableDeclarator)
			w.declareBindingNames(w.lock.Deref(d.Id), scope, varKindOf(scope, w.ctx), NotSpecial)
		}

	case *ast.FunctionDeclaration:
		id := w.lock.Deref(v.Id).(*ast.Identifier)
		declID := w.declare(scope, id.Name, varKindOf(scope, w.ctx), NotSpecial)
		w.ctx.Decls[declID].FunctionInScope = true
		w.ctx.Scopes[scope].HoistedFunctions = append(w.ctx.Scopes[scope].HoistedFunctions, declID)

	case *ast.BlockStatement:
		w.collectStmts(arena.Elems(w.lock, v.Body), scope, fn)

	case *ast.IfStatement:
		w.collectStmt(w.lock.Deref(v.Consequent), scope, fn)
		if r, ok := v.Alternate.Get(); ok {
			w.collectStmt(w.lock.Deref(r), scope, fn)
		}

	case *ast.ForStatement:
		if r, ok := v.Init.Get(); ok {
			if decl, ok := w.lock.Deref(r).(*ast.VariableDeclaration); ok {
				w.collectStmt(decl, scope, fn)
			}
		}
		w.collectStmt(w.lock.Deref(v.Body), scope, fn)

	case *ast.WhileStatement:
		w.collectStmt(w.lock.Deref(v.Body), scope, fn)

	default:
		// ExpressionStatement, ReturnStatement, Break/ContinueStatement,
		// EmptyStatement, import/export declarations: none hoist a
		// var/function binding into an enclosing function scope.
	}
}

// varKindOf returns GlobalProperty for the implicit top-level scope
// (scope 0, depth 0, no parent function) and Var otherwise, matching the
// distinction spec.md draws between a top-level var (a global property)
// and a var inside any function (an ordinary function-scoped binding).
func varKindOf(scope ScopeID, ctx *SemContext) DeclKind {
	if ctx.Scopes[scope].ParentScope == NoScope && ctx.Scopes[scope].ParentFunction == 0 {
		return DeclGlobalProperty
	}
	return DeclVar
}

// declareBindingNames walks a Pattern tree registering every bound name
// it contains (ObjectPattern/ArrayPattern/AssignmentPattern/RestElement
// all nest further patterns; Identifier is the base case).
func (w *walker) declareBindingNames(pat ast.Node, scope ScopeID, kind DeclKind, special Special) {
	switch v := pat.(type) {
	case *ast.Identifier:
		w.declare(scope, v.Name, kind, special)

	case *ast.ObjectPattern:
		for _, r := range arena.Elems(w.lock, v.Properties) {
			p := w.lock.Deref(r).(*ast.Property)
			w.declareBindingNames(w.lock.Deref(p.Value), scope, kind, special)
		}
		if r, ok := v.Rest.Get(); ok {
			w.declareBindingNames(w.lock.Deref(r), scope, kind, special)
		}

	case *ast.ArrayPattern:
		for _, e := range v.Elements {
			if r, ok := e.Get(); ok {
				w.declareBindingNames(w.lock.Deref(r), scope, kind, special)
			}
		}

	case *ast.AssignmentPattern:
		w.declareBindingNames(w.lock.Deref(v.Left), scope, kind, special)

	case *ast.RestElement:
		w.declareBindingNames(w.lock.Deref(v.Argument), scope, kind, special)
	}
}

// walkStmt is the real (post-collection) tree walk: it creates block
// scopes, registers let/const/class/scoped-function declarations at the
// point they lexically appear, detects direct eval, and queues every
// identifier use for deferred resolution.
func (w *walker) walkStmt(n ast.Node, scope ScopeID, fn FunctionID) {
	switch v := n.(type) {
	case *ast.BlockStatement:
		child := w.newScope(scope, fn)
		w.ctx.Functions[fn].Scopes = append(w.ctx.Functions[fn].Scopes, child)
		w.ctx.nodeScopes[v] = child
		for _, r := range arena.Elems(w.lock, v.Body) {
			stmt := w.lock.Deref(r)
			if decl, ok := stmt.(*ast.FunctionDeclaration); ok {
				// A function declaration directly inside a nested block is
				// also block-scoped (Annex B 3.3's second, lexical binding),
				// in addition to the var-like hoist collectStmt already gave
				// the enclosing function scope.
				id := w.lock.Deref(decl.Id).(*ast.Identifier)
				w.declare(child, id.Name, DeclScopedFunction, NotSpecial)
			}
			w.walkStmt(stmt, child, fn)
		}

	case *ast.ExpressionStatement:
		w.walkExpr(w.lock.Deref(v.Expression), scope, fn)

	case *ast.IfStatement:
		w.walkExpr(w.lock.Deref(v.Test), scope, fn)
		w.walkStmt(w.lock.Deref(v.Consequent), scope, fn)
		if r, ok := v.Alternate.Get(); ok {
			w.walkStmt(w.lock.Deref(r), scope, fn)
		}

	case *ast.ForStatement:
		if r, ok := v.Init.Get(); ok {
			switch init := w.lock.Deref(r).(type) {
			case *ast.VariableDeclaration:
				w.walkVariableDeclaration(init, scope, fn)
			default:
				w.walkExpr(init, scope, fn)
			}
		}
		if r, ok := v.Test.Get(); ok {
			w.walkExpr(w.lock.Deref(r), scope, fn)
		}
		if r, ok := v.Update.Get(); ok {
			w.walkExpr(w.lock.Deref(r), scope, fn)
		}
		w.walkStmt(w.lock.Deref(v.Body), scope, fn)

	case *ast.WhileStatement:
		w.walkExpr(w.lock.Deref(v.Test), scope, fn)
		w.walkStmt(w.lock.Deref(v.Body), scope, fn)

	case *ast.ReturnStatement:
		if r, ok := v.Argument.Get(); ok {
			w.walkExpr(w.lock.Deref(r), scope, fn)
		}

	case *ast.VariableDeclaration:
		w.walkVariableDeclaration(v, scope, fn)

	case *ast.FunctionDeclaration:
		w.walkFunction(ast.SomeRef(v.Id), v.Params, v.Body, false, v.Async, scope, fn)

	case *ast.ImportDeclaration:
		for _, spec := range v.Specifiers {
			w.declare(scope, spec.Local, DeclImport, NotSpecial)
		}

	case *ast.ExportNamedDeclaration:
		if r, ok := v.Declaration.Get(); ok {
			w.walkStmt(w.lock.Deref(r), scope, fn)
		}

	case *ast.BreakStatement, *ast.ContinueStatement, *ast.EmptyStatement:
		// No expressions, no declarations, no scope.

	default:
		// Node kinds this resolver has no dedicated scoping behavior for
		// (JSX, Flow/TS annotations, class declarations not yet modeled
		// as their own statement kind) are left unvisited: they introduce
		// no bindings this subset's DeclKind set tracks.
	}
}

func (w *walker) walkVariableDeclaration(v *ast.VariableDeclaration, scope ScopeID, fn FunctionID) {
	kind := DeclLet
	switch v.Kind {
	case ast.VarKindConst:
		kind = DeclConst
	case ast.VarKindVar:
		kind = varKindOf(scope, w.ctx)
	}
	for _, r := range arena.Elems(w.lock, v.Declarations) {
		d := w.lock.Deref(r).(*ast.VariableDeclarator)
		if v.Kind != ast.VarKindVar {
			// var was already hoisted by collectFunctionBody; let/const
			// bind directly in the block scope they lexically appear in.
			w.declareBindingNames(w.lock.Deref(d.Id), scope, kind, NotSpecial)
		}
		if r2, ok := d.Init.Get(); ok {
			w.walkExpr(w.lock.Deref(r2), scope, fn)
		}
	}
}

// walkFunction processes a function-valued node's own scope: a new
// FunctionInfo and top scope, its parameters as Parameter decls, its
// name (for a named FunctionExpression) as a FunctionExprName decl
// visible only inside, strict-mode inheritance plus directive-prologue
// override, and the decl-collection pre-pass followed by the real walk
// over its body.
func (w *walker) walkFunction(name ast.OptRef, params ast.NodeList, bodyRef ast.Ref, arrow, async bool, scope ScopeID, parentFn FunctionID) {
	strict := w.ctx.Functions[parentFn].Strict
	body := w.lock.Deref(bodyRef)
	newFn := w.newFunction(parentFn, scope, strict, arrow)
	newScope := w.newScope(scope, newFn)
	w.ctx.Functions[newFn].Scopes = append(w.ctx.Functions[newFn].Scopes, newScope)
	w.ctx.nodeScopes[body] = newScope

	if nameRef, ok := name.Get(); ok {
		id := w.lock.Deref(nameRef).(*ast.Identifier)
		w.declare(newScope, id.Name, DeclFunctionExprName, NotSpecial)
	}

	for _, r := range arena.Elems(w.lock, params) {
		w.declareBindingNames(w.lock.Deref(r), newScope, DeclParameter, NotSpecial)
	}

	if block, ok := body.(*ast.BlockStatement); ok {
		if w.hasUseStrictDirective(block.Body) {
			w.ctx.Functions[newFn].Strict = true
		}
		w.collectFunctionBody(block.Body, newScope, newFn)
		for _, r := range arena.Elems(w.lock, block.Body) {
			w.walkStmt(w.lock.Deref(r), newScope, newFn)
		}
	} else {
		// Expression-bodied arrow function: no statement list, just one
		// expression evaluated in the function's own scope.
		w.walkExpr(body, newScope, newFn)
	}
}

// walkExpr queues identifier uses, descends into sub-expressions, and
// detects direct eval call sites and require(...) call sites.
func (w *walker) walkExpr(n ast.Node, scope ScopeID, fn FunctionID) {
	switch v := n.(type) {
	case *ast.Identifier:
		w.queueUse(v, scope, fn)

	case *ast.BinaryExpression:
		w.walkExpr(w.lock.Deref(v.Left), scope, fn)
		w.walkExpr(w.lock.Deref(v.Right), scope, fn)

	case *ast.LogicalExpression:
		w.walkExpr(w.lock.Deref(v.Left), scope, fn)
		w.walkExpr(w.lock.Deref(v.Right), scope, fn)

	case *ast.UnaryExpression:
		w.walkExpr(w.lock.Deref(v.Argument), scope, fn)

	case *ast.UpdateExpression:
		w.walkExpr(w.lock.Deref(v.Argument), scope, fn)

	case *ast.AssignmentExpression:
		w.walkExpr(w.lock.Deref(v.Left), scope, fn)
		w.walkExpr(w.lock.Deref(v.Right), scope, fn)

	case *ast.ConditionalExpression:
		w.walkExpr(w.lock.Deref(v.Test), scope, fn)
		w.walkExpr(w.lock.Deref(v.Consequent), scope, fn)
		w.walkExpr(w.lock.Deref(v.Alternate), scope, fn)

	case *ast.CallExpression:
		w.walkCall(v, scope, fn)

	case *ast.NewExpression:
		w.walkExpr(w.lock.Deref(v.Callee), scope, fn)
		for _, r := range arena.Elems(w.lock, v.Arguments) {
			w.walkExpr(w.lock.Deref(r), scope, fn)
		}

	case *ast.MemberExpression:
		w.walkExpr(w.lock.Deref(v.Object), scope, fn)
		if v.Computed {
			w.walkExpr(w.lock.Deref(v.Property), scope, fn)
		}
		// Non-computed property is a name, not a variable reference.

	case *ast.ArrayExpression:
		for _, e := range v.Elements {
			if r, ok := e.Get(); ok {
				w.walkExpr(w.lock.Deref(r), scope, fn)
			}
		}

	case *ast.ObjectExpression:
		for _, r := range arena.Elems(w.lock, v.Properties) {
			p := w.lock.Deref(r).(*ast.Property)
			if p.Computed {
				w.walkExpr(w.lock.Deref(p.Key), scope, fn)
			}
			w.walkExpr(w.lock.Deref(p.Value), scope, fn)
		}

	case *ast.SequenceExpression:
		for _, r := range arena.Elems(w.lock, v.Expressions) {
			w.walkExpr(w.lock.Deref(r), scope, fn)
		}

	case *ast.FunctionExpression:
		w.walkFunction(v.Id, v.Params, v.Body, false, v.Async, scope, fn)

	case *ast.ArrowFunctionExpression:
		w.walkFunction(ast.NoRef, v.Params, v.Body, true, v.Async, scope, fn)

	case *ast.TemplateLiteral:
		for _, r := range arena.Elems(w.lock, v.Expressions) {
			w.walkExpr(w.lock.Deref(r), scope, fn)
		}

	default:
		// Literals and other leaf/collaborator kinds (JSX, Flow/TS
		// annotations) contain no identifier uses this resolver tracks.
	}
}

func (w *walker) walkCall(v *ast.CallExpression, scope ScopeID, fn FunctionID) {
	if callee, ok := w.lock.Deref(v.Callee).(*ast.Identifier); ok {
		switch callee.Name {
		case w.evalAtom:
			w.poisonScope(scope)
		case w.requireAtom:
			w.recordRequire(v)
		}
	}
	w.walkExpr(w.lock.Deref(v.Callee), scope, fn)
	for _, r := range arena.Elems(w.lock, v.Arguments) {
		w.walkExpr(w.lock.Deref(r), scope, fn)
	}
}

// poisonScope sets LocalEval on scope and every ancestor, matching
// spec.md's "eval/with in a scope set local_eval=true on the scope and
// all ancestors".
func (w *walker) poisonScope(scope ScopeID) {
	for s := scope; s != NoScope; s = w.ctx.Scopes[s].ParentScope {
		w.ctx.Scopes[s].LocalEval = true
	}
}

func (w *walker) recordRequire(call *ast.CallExpression) {
	if w.dep == nil {
		return
	}
	args := arena.Elems(w.lock, call.Arguments)
	if len(args) != 1 {
		return
	}
	lit, ok := w.lock.Deref(args[0]).(*ast.StringLiteral)
	if !ok || w.tbl16 == nil {
		return
	}
	units := w.tbl16.Lookup(lit.Value)
	spec := string(utf16ToRunes(units))
	if id, ok := w.dep(spec); ok {
		w.ctx.requires[call] = id
	}
}

// utf16ToRunes performs a best-effort decode of a code-unit slice into
// runes for dependency-specifier lookups; lone surrogates (invalid in a
// module specifier) are dropped rather than rejected outright, since a
// malformed specifier is the DependencyResolver's problem to report, not
// this package's to validate.
func utf16ToRunes(units []uint16) []rune {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF {
			r := 0x10000 + (rune(u)-0xD800)<<10 + (rune(units[i+1]) - 0xDC00)
			out = append(out, r)
			i++
			continue
		}
		if u >= 0xD800 && u <= 0xDFFF {
			continue
		}
		out = append(out, rune(u))
	}
	return out
}

func (w *walker) queueUse(id *ast.Identifier, scope ScopeID, fn FunctionID) {
	w.pending = append(w.pending, pendingUse{
		node:     id,
		ref:      id,
		scope:    scope,
		function: fn,
		isArgs:   id.Name == w.argsAtom,
	})
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package resolver

import (
	"testing"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
)

func testRange() source.Range {
	return source.Range{File: source.Id(1), Start: source.Loc{Line: 1, Col: 1}, End: source.Loc{Line: 1, Col: 2}}
}

func newTestLock() (*ast.Arena, *ast.Lock) {
	a := ast.NewArena(nil)
	return a, ast.NewLock(a)
}

// buildNestedFunctions constructs:
//
//	function f(){ [eval('');]? var x; function g(){ return x; } }
//
// and returns the Program root plus the Identifier node for the `x`
// inside g, so the test can look up its Resolution.
func buildNestedFunctions(lock *ast.Lock, tbl *atom.Table8, withEval bool) (ast.Node, *ast.Identifier) {
	xName := tbl.InternString("x")
	fName := tbl.InternString("f")
	gName := tbl.InternString("g")

	xDeclId := ast.IdentifierTemplate{Range: testRange(), Name: xName}.Build(lock)
	xDecl := ast.VariableDeclaratorTemplate{Range: testRange(), Id: xDeclId, Init: ast.NoRef}.Build(lock)
	xDecls := ast.NodeList{}
	xDecls = arena.PushBack(lock, xDecls, xDecl)
	varX := ast.VariableDeclarationTemplate{Range: testRange(), Kind: ast.VarKindVar, Declarations: xDecls}.Build(lock)

	xUse := ast.IdentifierTemplate{Range: testRange(), Name: xName}.Build(lock)
	retStmt := ast.ReturnStatementTemplate{Range: testRange(), Argument: ast.SomeRef(xUse)}.Build(lock)
	gBody := ast.NodeList{}
	gBody = arena.PushBack(lock, gBody, retStmt)
	gBlock := ast.BlockStatementTemplate{Range: testRange(), Body: gBody}.Build(lock)
	gId := ast.IdentifierTemplate{Range: testRange(), Name: gName}.Build(lock)
	gDecl := ast.FunctionDeclarationTemplate{Range: testRange(), Id: gId, Params: ast.NodeList{}, Body: gBlock}.Build(lock)

	fBody := ast.NodeList{}
	if withEval {
		evalName := tbl.InternString("eval")
		evalId := ast.IdentifierTemplate{Range: testRange(), Name: evalName}.Build(lock)
		callEval := ast.CallExpressionTemplate{Range: testRange(), Callee: evalId, Arguments: ast.NodeList{}}.Build(lock)
		evalStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: callEval}.Build(lock)
		fBody = arena.PushBack(lock, fBody, evalStmt)
	}
	fBody = arena.PushBack(lock, fBody, varX)
	fBody = arena.PushBack(lock, fBody, gDecl)
	fBlock := ast.BlockStatementTemplate{Range: testRange(), Body: fBody}.Build(lock)
	fId := ast.IdentifierTemplate{Range: testRange(), Name: fName}.Build(lock)
	fDecl := ast.FunctionDeclarationTemplate{Range: testRange(), Id: fId, Params: ast.NodeList{}, Body: fBlock}.Build(lock)

	progBody := ast.NodeList{}
	progBody = arena.PushBack(lock, progBody, fDecl)
	prog := ast.ProgramTemplate{Range: testRange(), Body: progBody}.Build(lock)

	return lock.Deref(prog), lock.Deref(xUse).(*ast.Identifier)
}

// Scenario 6 from spec.md §8, first half: x inside g resolves to the
// same Decl as var x in f.
func TestResolve_NestedFunctionSeesEnclosingVar(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()

	prog, xUse := buildNestedFunctions(lock, tbl, false)
	ctx := ResolveProgram(lock, tbl, nil, prog, nil)

	res, ok := ctx.Resolve(xUse)
	if !ok {
		t.Fatalf("x use was never queued for resolution")
	}
	if res.Unresolvable {
		t.Fatalf("x resolved Unresolvable, want a Decl")
	}
	decl := ctx.Decl(res.Decl)
	if decl.Name != tbl.InternString("x") {
		t.Fatalf("resolved decl name mismatch")
	}
	if !decl.Kind.IsVarLike() {
		t.Fatalf("resolved decl kind %v is not var-like", decl.Kind)
	}
}

// Scenario 6 from spec.md §8, second half: with a direct eval in f, the
// same x use inside g resolves to Unresolvable.
func TestResolve_DirectEvalPoisonsEnclosingScope(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()

	prog, xUse := buildNestedFunctions(lock, tbl, true)
	ctx := ResolveProgram(lock, tbl, nil, prog, nil)

	res, ok := ctx.Resolve(xUse)
	if !ok {
		t.Fatalf("x use was never queued for resolution")
	}
	if !res.Unresolvable {
		t.Fatalf("x resolved to a Decl, want Unresolvable because f contains direct eval")
	}
}

func TestResolve_UndeclaredGlobalBecomesGlobalProperty(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()

	yName := tbl.InternString("y")
	yUse := ast.IdentifierTemplate{Range: testRange(), Name: yName}.Build(lock)
	stmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: yUse}.Build(lock)
	body := ast.NodeList{}
	body = arena.PushBack(lock, body, stmt)
	prog := ast.ProgramTemplate{Range: testRange(), Body: body}.Build(lock)

	ctx := ResolveProgram(lock, tbl, nil, lock.Deref(prog), nil)
	res, ok := ctx.Resolve(lock.Deref(yUse))
	if !ok || res.Unresolvable {
		t.Fatalf("bare global use should resolve, not be Unresolvable")
	}
	decl := ctx.Decl(res.Decl)
	if decl.Kind != DeclUndeclaredGlobalProperty {
		t.Fatalf("Kind = %v, want DeclUndeclaredGlobalProperty", decl.Kind)
	}
}

func TestDeclKindOrderingPredicates(t *testing.T) {
	if !DeclLet.IsLetLike() || DeclLet.IsVarLike() {
		t.Fatalf("DeclLet ordering wrong")
	}
	if !DeclVar.IsVarLike() || DeclVar.IsLetLike() {
		t.Fatalf("DeclVar ordering wrong")
	}
	if !DeclGlobalProperty.IsGlobal() || DeclVar.IsGlobal() {
		t.Fatalf("IsGlobal ordering wrong")
	}
	if !DeclScopedFunction.IsVarLikeOrScopedFunction() || DeclScopedFunction.IsVarLike() {
		t.Fatalf("ScopedFunction should count for IsVarLikeOrScopedFunction but not IsVarLike")
	}
}

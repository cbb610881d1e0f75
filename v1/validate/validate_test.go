// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package validate

import (
	"testing"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/source"
)

func testRange() source.Range {
	return source.Range{File: source.Id(1), Start: source.Loc{Line: 1, Col: 1}, End: source.Loc{Line: 1, Col: 2}}
}

func newTestLock() (*ast.Arena, *ast.Lock) {
	a := ast.NewArena(nil)
	return a, ast.NewLock(a)
}

func TestValidate_WellFormedProgram(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	x := ast.IdentifierTemplate{Range: testRange(), Name: 1}.Build(lock)
	ten := ast.NumericLiteralTemplate{Range: testRange(), Value: 10}.Build(lock)
	decl := ast.VariableDeclaratorTemplate{Range: testRange(), Id: x, Init: ast.SomeRef(ten)}.Build(lock)
	decls := ast.NodeList{}
	decls = arena.PushBack(lock, decls, decl)
	varDecl := ast.VariableDeclarationTemplate{Range: testRange(), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)

	body := ast.NodeList{}
	body = arena.PushBack(lock, body, varDecl)
	prog := ast.ProgramTemplate{Range: testRange(), Body: body}.Build(lock)

	errs := Validate(lock, lock.Deref(prog))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

// Scenario 5 from spec.md §8: a ReturnStatement whose argument is another
// ReturnStatement must produce exactly one ValidationError whose node
// equals the outer return.
func TestValidate_ReturnOfReturn(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	inner := ast.ReturnStatementTemplate{Range: testRange(), Argument: ast.NoRef}.Build(lock)
	outer := ast.ReturnStatementTemplate{Range: testRange(), Argument: ast.SomeRef(inner)}.Build(lock)

	body := ast.NodeList{}
	body = arena.PushBack(lock, body, outer)
	prog := ast.ProgramTemplate{Range: testRange(), Body: body}.Build(lock)

	errs := Validate(lock, lock.Deref(prog))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
	if errs[0].Node != lock.Deref(outer) {
		t.Fatalf("error attributed to %v, want the outer ReturnStatement", errs[0].Node)
	}
}

func TestValidate_PropertyComputedAndShorthandRejected(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	key := ast.IdentifierTemplate{Range: testRange(), Name: 1}.Build(lock)
	prop := ast.PropertyTemplate{
		Range: testRange(), Key: key, Value: key,
		Kind: ast.PropKindInit, Computed: true, Shorthand: true,
	}.Build(lock)
	props := ast.NodeList{}
	props = arena.PushBack(lock, props, prop)
	obj := ast.ObjectExpressionTemplate{Range: testRange(), Properties: props}.Build(lock)
	stmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: obj}.Build(lock)
	body := ast.NodeList{}
	body = arena.PushBack(lock, body, stmt)
	prog := ast.ProgramTemplate{Range: testRange(), Body: body}.Build(lock)

	errs := Validate(lock, lock.Deref(prog))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
}

func TestValidate_MemberExpressionNonComputedPropertyMustBeIdentifier(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	obj := ast.IdentifierTemplate{Range: testRange(), Name: 1}.Build(lock)
	notIdent := ast.NumericLiteralTemplate{Range: testRange(), Value: 1}.Build(lock)
	member := ast.MemberExpressionTemplate{Range: testRange(), Object: obj, Property: notIdent, Computed: false}.Build(lock)
	stmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: member}.Build(lock)
	body := ast.NodeList{}
	body = arena.PushBack(lock, body, stmt)
	prog := ast.ProgramTemplate{Range: testRange(), Body: body}.Build(lock)

	errs := Validate(lock, lock.Deref(prog))
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
}

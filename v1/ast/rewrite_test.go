// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"module/v1/arena"
	"testing"
)

// identityVisitor reports Unchanged for every node, exercising spec.md
// §8 scenario 2: a no-op VisitorMut must leave the tree, and the root
// reference, untouched.
type identityVisitor struct{}

func (identityVisitor) VisitMut(*Lock, Node, *Path) TransformResult { return Unchanged{} }

func TestRewriteProgram_IdentityVisitorReportsUnchanged(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	// function foo(p1){var x=(10+p1);}
	fooId := IdentifierTemplate{Range: testRange(10, 13), Name: 1}.Build(lock)
	p1Param := IdentifierTemplate{Range: testRange(14, 16), Name: 2}.Build(lock)
	params := arena.PushBack(lock, NodeList{}, p1Param)

	p1Use := IdentifierTemplate{Range: testRange(28, 30), Name: 2}.Build(lock)
	ten := NumericLiteralTemplate{Range: testRange(25, 27), Value: 10}.Build(lock)
	sum := BinaryExpressionTemplate{Range: testRange(25, 30), Operator: BinaryAdd, Left: ten, Right: p1Use}.Build(lock)
	xId := IdentifierTemplate{Range: testRange(21, 22), Name: 3}.Build(lock)
	xDecl := VariableDeclaratorTemplate{Range: testRange(21, 31), Id: xId, Init: SomeRef(sum)}.Build(lock)
	decls := arena.PushBack(lock, NodeList{}, xDecl)
	varX := VariableDeclarationTemplate{Range: testRange(17, 32), Kind: VarKindVar, Declarations: decls}.Build(lock)

	fnBody := arena.PushBack(lock, NodeList{}, varX)
	block := BlockStatementTemplate{Range: testRange(17, 33), Body: fnBody}.Build(lock)
	fnDecl := FunctionDeclarationTemplate{Range: testRange(1, 33), Id: fooId, Params: params, Body: block}.Build(lock)

	body := arena.PushBack(lock, NodeList{}, fnDecl)
	root := ProgramTemplate{Range: testRange(1, 33), Body: body}.Build(lock)

	got := RewriteProgram(lock, root, identityVisitor{})
	if got != root {
		t.Fatalf("RewriteProgram with an identity VisitorMut returned %v, want the original root %v", got, root)
	}
}

func TestRewriteProgram_IdempotentOnIdentityPass(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	left := IdentifierTemplate{Range: testRange(1, 2), Name: 1}.Build(lock)
	right := NumericLiteralTemplate{Range: testRange(5, 6), Value: 1}.Build(lock)
	bin := BinaryExpressionTemplate{Range: testRange(1, 6), Operator: BinaryAdd, Left: left, Right: right}.Build(lock)
	stmt := ExpressionStatementTemplate{Range: testRange(1, 6), Expression: bin}.Build(lock)
	body := arena.PushBack(lock, NodeList{}, stmt)
	root := ProgramTemplate{Range: testRange(1, 6), Body: body}.Build(lock)

	first := RewriteProgram(lock, root, identityVisitor{})
	second := RewriteProgram(lock, first, identityVisitor{})
	if first != root || second != root {
		t.Fatalf("two successive identity passes must both return the original root, got %v then %v (want %v)", first, second, root)
	}
}

// addNegationToSubtraction implements spec.md §8 scenario 3: `a + -b`
// rewrites to `a - b`.
type addNegationToSubtraction struct{}

func (addNegationToSubtraction) VisitMut(lock *Lock, n Node, _ *Path) TransformResult {
	bin, ok := n.(*BinaryExpression)
	if !ok || bin.Operator != BinaryAdd {
		return Unchanged{}
	}
	rhs, ok := lock.Deref(bin.Right).(*UnaryExpression)
	if !ok || rhs.Operator != UnaryMinus {
		return Unchanged{}
	}
	newRef := BinaryExpressionTemplate{
		Range:    bin.Range_,
		Operator: BinarySub,
		Left:     bin.Left,
		Right:    rhs.Argument,
	}.Build(lock)
	return Changed{Ref: newRef}
}

func TestRewriteProgram_RewritesAddNegationToSubtraction(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	// a + -b
	a := IdentifierTemplate{Range: testRange(1, 2), Name: 1}.Build(lock)
	b := IdentifierTemplate{Range: testRange(6, 7), Name: 2}.Build(lock)
	neg := UnaryExpressionTemplate{Range: testRange(5, 7), Operator: UnaryMinus, Argument: b, Prefix: true}.Build(lock)
	add := BinaryExpressionTemplate{Range: testRange(1, 7), Operator: BinaryAdd, Left: a, Right: neg}.Build(lock)
	stmt := ExpressionStatementTemplate{Range: testRange(1, 7), Expression: add}.Build(lock)
	body := arena.PushBack(lock, NodeList{}, stmt)
	root := ProgramTemplate{Range: testRange(1, 7), Body: body}.Build(lock)

	got := RewriteProgram(lock, root, addNegationToSubtraction{})
	if got == root {
		t.Fatalf("RewriteProgram did not rebuild the root after a descendant changed")
	}

	prog := MustDeref[*Program](lock, got)
	stmts := arena.Elems(lock, prog.Body)
	if len(stmts) != 1 {
		t.Fatalf("rewritten Program has %d statements, want 1", len(stmts))
	}
	rewrittenStmt := MustDeref[*ExpressionStatement](lock, stmts[0])
	rewrittenBin := MustDeref[*BinaryExpression](lock, rewrittenStmt.Expression)
	if rewrittenBin.Operator != BinarySub {
		t.Fatalf("rewritten operator = %v, want BinarySub", rewrittenBin.Operator)
	}
	if rewrittenBin.Left != a {
		t.Fatalf("rewritten Left = %v, want unchanged %v", rewrittenBin.Left, a)
	}
	if rewrittenBin.Right != b {
		t.Fatalf("rewritten Right = %v, want b's ref %v directly (unary wrapper dropped)", rewrittenBin.Right, b)
	}

	// Idempotence: re-running the same rewrite over its own output must
	// be a no-op, since there is no longer any BinaryAdd-of-UnaryMinus
	// shape left to match.
	again := RewriteProgram(lock, got, addNegationToSubtraction{})
	if again != got {
		t.Fatalf("second rewrite pass over already-rewritten tree changed it further: got %v, want %v", again, got)
	}
}

func TestRewriteProgram_StripsFlowAnnotation(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	// var x: any = 1;
	anyType := FlowAnyTypeAnnotationTemplate{Range: testRange(7, 10)}.Build(lock)
	xId := IdentifierTemplate{Range: testRange(5, 10), Name: 1, TypeAnnotation: SomeRef(anyType)}.Build(lock)
	one := NumericLiteralTemplate{Range: testRange(14, 15), Value: 1}.Build(lock)
	decl := VariableDeclaratorTemplate{Range: testRange(5, 15), Id: xId, Init: SomeRef(one)}.Build(lock)
	decls := arena.PushBack(lock, NodeList{}, decl)
	varDecl := VariableDeclarationTemplate{Range: testRange(1, 16), Kind: VarKindVar, Declarations: decls}.Build(lock)
	body := arena.PushBack(lock, NodeList{}, varDecl)
	root := ProgramTemplate{Range: testRange(1, 16), Body: body}.Build(lock)

	got := RewriteProgram(lock, root, flowStripperVisitor{})
	if got == root {
		t.Fatalf("RewriteProgram did not rebuild the root after stripping a FlowOrTS node")
	}

	prog := MustDeref[*Program](lock, got)
	stmts := arena.Elems(lock, prog.Body)
	rewrittenVarDecl := MustDeref[*VariableDeclaration](lock, stmts[0])
	rewrittenDecls := arena.Elems(lock, rewrittenVarDecl.Declarations)
	rewrittenDeclarator := MustDeref[*VariableDeclarator](lock, rewrittenDecls[0])
	rewrittenId := MustDeref[*Identifier](lock, rewrittenDeclarator.Id)
	if _, ok := rewrittenId.TypeAnnotation.Get(); ok {
		t.Fatalf("Identifier.TypeAnnotation still present after flowStripperVisitor pass")
	}
}

// flowStripperVisitor mirrors cmd/astc's --strip-flow pass: any node
// belonging to the FlowOrTS abstraction is removed from its slot.
type flowStripperVisitor struct{}

func (flowStripperVisitor) VisitMut(_ *Lock, n Node, _ *Path) TransformResult {
	if n.Variant().IsA(AbstractionFlowOrTS) {
		return Removed{}
	}
	return Unchanged{}
}

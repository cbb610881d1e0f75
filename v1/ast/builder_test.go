// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "testing"

func TestTemplateBuildRoundTrip(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	left := NumericLiteralTemplate{Range: testRange(1, 2), Value: 1}.Build(lock)
	right := NumericLiteralTemplate{Range: testRange(5, 6), Value: 2}.Build(lock)
	bin := BinaryExpressionTemplate{
		Range: testRange(1, 6), Operator: BinaryAdd, Left: left, Right: right,
	}.Build(lock)

	got := MustDeref[*BinaryExpression](lock, bin)
	if got.Operator != BinaryAdd {
		t.Fatalf("Operator = %v, want BinaryAdd", got.Operator)
	}
	if got.Left != left || got.Right != right {
		t.Fatalf("Left/Right = %v/%v, want %v/%v", got.Left, got.Right, left, right)
	}
}

func TestBuilderNoopReturnsOriginalRef(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	left := NumericLiteralTemplate{Range: testRange(1, 2), Value: 1}.Build(lock)
	right := NumericLiteralTemplate{Range: testRange(5, 6), Value: 2}.Build(lock)
	orig := BinaryExpressionTemplate{Range: testRange(1, 6), Operator: BinaryAdd, Left: left, Right: right}.Build(lock)

	b := NewBinaryExpressionBuilder(lock, orig)
	res := b.Build(lock)
	if res.Changed {
		t.Fatalf("Build reported Changed with no setter called")
	}
	if res.Ref != orig {
		t.Fatalf("Build returned %v, want original ref %v", res.Ref, orig)
	}
}

func TestBuilderSetterMarksDirtyAndReallocates(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	left := NumericLiteralTemplate{Range: testRange(1, 2), Value: 1}.Build(lock)
	right := NumericLiteralTemplate{Range: testRange(5, 6), Value: 2}.Build(lock)
	orig := BinaryExpressionTemplate{Range: testRange(1, 6), Operator: BinaryAdd, Left: left, Right: right}.Build(lock)

	newRight := NumericLiteralTemplate{Range: testRange(9, 10), Value: 3}.Build(lock)
	b := NewBinaryExpressionBuilder(lock, orig)
	b.SetRight(newRight)
	res := b.Build(lock)

	if !res.Changed {
		t.Fatalf("Build reported Changed = false after SetRight")
	}
	if res.Ref == orig {
		t.Fatalf("Build returned the original ref after a change")
	}

	rebuilt := MustDeref[*BinaryExpression](lock, res.Ref)
	if rebuilt.Right != newRight {
		t.Fatalf("rebuilt.Right = %v, want %v", rebuilt.Right, newRight)
	}
	if rebuilt.Left != left {
		t.Fatalf("rebuilt.Left = %v, want unchanged %v", rebuilt.Left, left)
	}

	// The original node must be untouched by the builder's copy-on-write.
	original := MustDeref[*BinaryExpression](lock, orig)
	if original.Right != right {
		t.Fatalf("original node's Right mutated in place: got %v, want %v", original.Right, right)
	}
}

func TestBuilderCopyOnWriteDoesNotAliasOriginal(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()

	id := IdentifierTemplate{Range: testRange(1, 2), Name: 0}.Build(lock)
	init := NumericLiteralTemplate{Range: testRange(5, 6), Value: 1}.Build(lock)
	orig := VariableDeclaratorTemplate{Range: testRange(1, 6), Id: id, Init: SomeRef(init)}.Build(lock)

	b := NewVariableDeclaratorBuilder(lock, orig)
	b.SetInit(NoRef)
	_ = b.Build(lock)

	stillThere := MustDeref[*VariableDeclarator](lock, orig)
	if got, ok := stillThere.Init.Get(); !ok || got != init {
		t.Fatalf("original VariableDeclarator.Init mutated: Get() = %v, %v", got, ok)
	}
}

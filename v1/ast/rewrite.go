// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"module/v1/arena"
	"module/v1/source"
)

// RewriteProgram runs a full bottom-up rewrite pass over root (which must
// be a *Program) and returns the (possibly new) root reference. Root is
// special: a VisitorMut that tries to Remove or Expand it is a programmer
// error, since there is no parent slot to splice the result into.
func RewriteProgram(lock *Lock, root Ref, v VisitorMut) Ref {
	switch t := rewriteNode(lock, root, nil, v).(type) {
	case Unchanged:
		return root
	case Changed:
		return t.Ref
	default:
		panic("ast: a VisitorMut must not Remove or Expand the Program root")
	}
}

// rewriteNode rewrites n's children bottom-up (for the kinds the rewrite
// engine knows how to reconstruct — see DESIGN.md for the scope this
// covers), rebuilds n if any child changed, then applies v to the
// (possibly rebuilt) node and reports the outcome for the caller to
// splice into n's own slot in its parent.
func rewriteNode(lock *Lock, r Ref, path *Path, v VisitorMut) TransformResult {
	n := lock.Deref(r)
	selfRef := r
	changedBelow := false

	switch cur := n.(type) {
	case *Program:
		if newBody, ch := rewriteList(lock, cur.Body, FieldBody, n, v); ch {
			b := NewProgramBuilder(lock, r)
			b.SetBody(newBody)
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *BlockStatement:
		if newBody, ch := rewriteList(lock, cur.Body, FieldBody, n, v); ch {
			b := NewBlockStatementBuilder(lock, r)
			b.SetBody(newBody)
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *ExpressionStatement:
		if newExpr, ch := rewriteRequiredRef(lock, cur.Expression, FieldExpression, n, v, nil); ch {
			b := NewExpressionStatementBuilder(lock, r)
			b.SetExpression(newExpr)
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *IfStatement:
		newTest, ch1 := rewriteRequiredRef(lock, cur.Test, FieldTest, n, v, nil)
		newCons, ch2 := rewriteRequiredRef(lock, cur.Consequent, FieldConsequent, n, v, statementPlaceholder)
		newAlt, ch3 := rewriteOptionalRef(lock, cur.Alternate, FieldAlternate, n, v)
		if ch1 || ch2 || ch3 {
			b := NewIfStatementBuilder(lock, r)
			if ch1 {
				b.SetTest(newTest)
			}
			if ch2 {
				b.SetConsequent(newCons)
			}
			if ch3 {
				b.SetAlternate(newAlt)
			}
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *BinaryExpression:
		newLeft, ch1 := rewriteRequiredRef(lock, cur.Left, FieldLeft, n, v, nil)
		newRight, ch2 := rewriteRequiredRef(lock, cur.Right, FieldRight, n, v, nil)
		if ch1 || ch2 {
			b := NewBinaryExpressionBuilder(lock, r)
			if ch1 {
				b.SetLeft(newLeft)
			}
			if ch2 {
				b.SetRight(newRight)
			}
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *CallExpression:
		newCallee, ch1 := rewriteRequiredRef(lock, cur.Callee, FieldCallee, n, v, nil)
		newArgs, ch2 := rewriteList(lock, cur.Arguments, FieldArguments, n, v)
		if ch1 || ch2 {
			b := NewCallExpressionBuilder(lock, r)
			if ch1 {
				b.SetCallee(newCallee)
			}
			if ch2 {
				b.SetArguments(newArgs)
			}
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *VariableDeclaration:
		if newDecls, ch := rewriteList(lock, cur.Declarations, FieldDeclarations, n, v); ch {
			b := NewVariableDeclarationBuilder(lock, r)
			b.SetDeclarations(newDecls)
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *VariableDeclarator:
		newId, ch1 := rewriteRequiredRef(lock, cur.Id, FieldId, n, v, nil)
		newInit, ch2 := rewriteOptionalRef(lock, cur.Init, FieldInit, n, v)
		if ch1 || ch2 {
			b := NewVariableDeclaratorBuilder(lock, r)
			if ch1 {
				b.SetId(newId)
			}
			if ch2 {
				b.SetInit(newInit)
			}
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *ReturnStatement:
		if newArg, ch := rewriteOptionalRef(lock, cur.Argument, FieldArgument, n, v); ch {
			b := NewReturnStatementBuilder(lock, r)
			b.SetArgument(newArg)
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	case *Identifier:
		if newTA, ch := rewriteOptionalRef(lock, cur.TypeAnnotation, FieldTypeAnnotation, n, v); ch {
			b := NewIdentifierBuilder(lock, r)
			b.SetTypeAnnotation(newTA)
			selfRef = b.Build(lock).Ref
			changedBelow = true
		}

	default:
		// Every other kind (leaves, and structural kinds not yet wired
		// into this switch) has no children rewritten by this pass; v
		// still gets a chance to replace the whole node from its parent.
	}

	rebuilt := n
	if changedBelow {
		rebuilt = lock.Deref(selfRef)
	}
	result := v.VisitMut(lock, rebuilt, path)
	if !changedBelow {
		return result
	}
	if _, ok := result.(Unchanged); ok {
		// A descendant changed even though v left this node itself alone;
		// report the rebuild up so the parent splices in the new subtree.
		return Changed{Ref: selfRef}
	}
	return result
}

func rewriteRequiredRef(lock *Lock, r Ref, field NodeField, parent Node, v VisitorMut, placeholder func(*Lock, source.Range) Ref) (Ref, bool) {
	switch t := rewriteNode(lock, r, &Path{Parent: parent, Field: field, Index: -1}, v).(type) {
	case Unchanged:
		return r, false
	case Changed:
		return t.Ref, true
	case Removed:
		if placeholder == nil {
			panic("ast: Removed used against a required slot with no placeholder")
		}
		return placeholder(lock, lock.Deref(r).Range()), true
	case Expanded:
		panic("ast: Expanded is invalid in a non-list slot")
	default:
		panic("ast: unknown TransformResult variant")
	}
}

func rewriteOptionalRef(lock *Lock, o OptRef, field NodeField, parent Node, v VisitorMut) (OptRef, bool) {
	r, ok := o.Get()
	if !ok {
		return o, false
	}
	switch t := rewriteNode(lock, r, &Path{Parent: parent, Field: field, Index: -1}, v).(type) {
	case Unchanged:
		return o, false
	case Changed:
		return SomeRef(t.Ref), true
	case Removed:
		return NoRef, true
	case Expanded:
		panic("ast: Expanded is invalid in a non-list slot")
	default:
		panic("ast: unknown TransformResult variant")
	}
}

func rewriteList(lock *Lock, ls NodeList, field NodeField, parent Node, v VisitorMut) (NodeList, bool) {
	elems := arena.Elems(lock, ls)
	out := make([]Ref, 0, len(elems))
	changed := false
	for i, r := range elems {
		switch t := rewriteNode(lock, r, &Path{Parent: parent, Field: field, Index: i}, v).(type) {
		case Unchanged:
			out = append(out, r)
		case Changed:
			out = append(out, t.Ref)
			changed = true
		case Removed:
			changed = true
		case Expanded:
			out = append(out, t.Refs...)
			changed = true
		default:
			panic("ast: unknown TransformResult variant")
		}
	}
	if !changed {
		return ls, false
	}
	return arena.FromSlice(lock, out), true
}

func statementPlaceholder(lock *Lock, r source.Range) Ref {
	return EmptyStatementTemplate{Range: r}.Build(lock)
}

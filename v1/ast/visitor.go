// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/arena"

// Visitor is the read-only traversal interface. Visit is called on every
// node in pre-order; returning false skips that node's children.
type Visitor interface {
	Visit(lock *Lock, n Node, path *Path) bool
}

// Walk performs a pre-order, read-only traversal of n and its descendants.
func Walk(lock *Lock, n Node, v Visitor) {
	walkNode(lock, n, nil, v)
}

func walkNode(lock *Lock, n Node, path *Path, v Visitor) {
	if !v.Visit(lock, n, path) {
		return
	}
	VisitChildren(lock, n, v)
}

// VisitChildren visits n's direct children (and, transitively through
// walkNode, their descendants), without re-visiting n itself. Exposed
// separately from Walk so a Visitor can implement "visit n myself, then
// delegate to the default child traversal" without re-deriving dispatch.
func VisitChildren(lock *Lock, n Node, v Visitor) {
	forEachChild(n,
		func(field NodeField, r Ref) {
			if r.IsNil() {
				return
			}
			child := lock.Deref(r)
			walkNode(lock, child, &Path{Parent: n, Field: field, Index: -1}, v)
		},
		func(field NodeField, ls NodeList) {
			for i, r := range arena.Elems(lock, ls) {
				child := lock.Deref(r)
				walkNode(lock, child, &Path{Parent: n, Field: field, Index: i}, v)
			}
		},
	)
}

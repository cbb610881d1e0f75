// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// TransformResult is the closed set of outcomes a VisitorMut may return
// for one node, the idiomatic-Go substitute for a Rust enum: an
// interface with an unexported marker method so no type outside this
// package can add a fifth variant.
type TransformResult interface {
	transformResult()
}

// Unchanged means the node (and everything under it not already visited)
// should be kept as-is.
type Unchanged struct{}

func (Unchanged) transformResult() {}

// Removed means the node should be deleted from its parent. Valid in a
// list-valued slot (the element is dropped) or an optional slot (becomes
// absent); using it against a required, non-optional, non-list slot
// substitutes the fixed placeholder for that slot's category (for a
// required Statement slot, a fresh EmptyStatement at the original node's
// starting position — see rewriteChildren).
type Removed struct{}

func (Removed) transformResult() {}

// Changed replaces the node with a different, already-built node.
type Changed struct{ Ref Ref }

func (Changed) transformResult() {}

// Expanded replaces one list element with zero or more nodes spliced in
// its place. Using Expanded against a non-list slot is a programmer
// error and panics, since there is nowhere to splice additional siblings.
type Expanded struct{ Refs []Ref }

func (Expanded) transformResult() {}

// VisitorMut is the rewriting traversal interface. VisitMut is called
// bottom-up: every descendant has already been rewritten (and its parent
// rebuilt to point at the rewritten children) by the time VisitMut sees
// it, so a mutator inspecting n's children always sees the final tree for
// that subtree.
type VisitorMut interface {
	VisitMut(lock *Lock, n Node, path *Path) TransformResult
}

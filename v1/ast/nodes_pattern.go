// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/atom"

// Identifier is a bare identifier reference or binding. It is its own
// category of Expression, Pattern and LVal all at once (see kind.go's
// abstraction table), exactly mirroring how an identifier can appear in
// any of those syntactic positions. TypeAnnotation is the one reachable
// FlowOrTS child slot in this node set (ESTree's own Identifier carries
// an optional typeAnnotation the same way); --strip-flow's rewrite
// removes it through a VariableDeclarator's Id slot, the one rebuilt
// rewrite-engine kind that reaches an Identifier.
type Identifier struct {
	Meta
	Name           atom.Atom
	TypeAnnotation OptRef // TSTypeAnnotation or FlowAnyTypeAnnotation
}

func (*Identifier) Variant() NodeVariant { return VariantIdentifier }

// ObjectPattern destructures an object; Properties holds AssignmentProperty-
// shaped Property nodes (Computed/Shorthand validity enforced by the
// validator, not the type system).
type ObjectPattern struct {
	Meta
	Properties NodeList
	Rest       OptRef // RestElement, if present, always last
}

func (*ObjectPattern) Variant() NodeVariant { return VariantObjectPattern }

// ArrayPattern destructures an array or iterable; elements may contain
// holes, represented as an absent OptRef entry materialized by the
// generator/dump layers rather than stored explicitly (a NodeList cannot
// represent "hole" directly, so ArrayPattern stores elements as a slice
// of OptRef instead of a NodeList).
type ArrayPattern struct {
	Meta
	Elements []OptRef
}

func (*ArrayPattern) Variant() NodeVariant { return VariantArrayPattern }

// AssignmentPattern is `pattern = default` in a parameter or destructuring
// position.
type AssignmentPattern struct {
	Meta
	Left  Ref // Pattern
	Right Ref // Expression
}

func (*AssignmentPattern) Variant() NodeVariant { return VariantAssignmentPattern }

// RestElement is `...argument` in a parameter list or destructuring
// pattern.
type RestElement struct {
	Meta
	Argument Ref // Pattern
}

func (*RestElement) Variant() NodeVariant { return VariantRestElement }

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/atom"

// TSTypeAnnotation is a `: Name` type annotation as it would appear after
// a parameter, variable, or return position in TypeScript source. Full
// type-expression grammar is out of scope (see SPEC_FULL §1 Non-goals).
// An Identifier's optional TypeAnnotation slot is the one reachable
// FlowOrTS child position in this node set (see nodes_pattern.go), which
// is what lets --strip-flow's rewrite actually find and remove one.
type TSTypeAnnotation struct {
	Meta
	TypeName atom.Atom
}

func (*TSTypeAnnotation) Variant() NodeVariant { return VariantTSTypeAnnotation }

// FlowAnyTypeAnnotation is Flow's `any` type annotation, the simplest
// member of Flow's type-annotation grammar.
type FlowAnyTypeAnnotation struct {
	Meta
}

func (*FlowAnyTypeAnnotation) Variant() NodeVariant { return VariantFlowAnyTypeAnnotation }

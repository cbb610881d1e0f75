// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/atom"

// JSXIdentifier is a JSX tag or attribute name, kept distinct from
// Identifier because JSX names permit hyphens and dotted member access
// that would never be a valid binding identifier.
type JSXIdentifier struct {
	Meta
	Name atom.Atom
}

func (*JSXIdentifier) Variant() NodeVariant { return VariantJSXIdentifier }

// JSXElement is `<Name attrs...>children...</Name>` or its self-closing
// form. Attributes and children are both kept as plain slices rather than
// NodeList/NodeList-of-pairs, since JSX attribute values mix string
// literals and `{expression}` children in a way that does not fit the
// single-kind-per-list assumption the rest of the tree relies on.
type JSXElement struct {
	Meta
	Name         Ref // JSXIdentifier
	Attributes   []JSXAttribute
	Children     NodeList
	SelfClosing  bool
}

func (*JSXElement) Variant() NodeVariant { return VariantJSXElement }

// JSXAttribute is one `name="value"` or `name={expr}` attribute.
type JSXAttribute struct {
	Name  atom.Atom
	Value OptRef // StringLiteral or Expression; absent for a bare boolean attribute
}

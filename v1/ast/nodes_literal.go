// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/atom"

// NumericLiteral is a numeric literal; Value is the parsed float64, Raw
// preserves the original source text (needed to round-trip hex/octal/
// separators exactly through the generator).
type NumericLiteral struct {
	Meta
	Value float64
	Raw   atom.Atom
}

func (*NumericLiteral) Variant() NodeVariant { return VariantNumericLiteral }

// StringLiteral holds 16-bit code-unit content, since JS string literals
// may contain unpaired surrogates that cannot round-trip through a Go
// UTF-8 string.
type StringLiteral struct {
	Meta
	Value atom.Atom16
}

func (*StringLiteral) Variant() NodeVariant { return VariantStringLiteral }

// BooleanLiteral is `true`/`false`.
type BooleanLiteral struct {
	Meta
	Value bool
}

func (*BooleanLiteral) Variant() NodeVariant { return VariantBooleanLiteral }

// NullLiteral is `null`.
type NullLiteral struct {
	Meta
}

func (*NullLiteral) Variant() NodeVariant { return VariantNullLiteral }

// RegExpLiteral is `/pattern/flags`.
type RegExpLiteral struct {
	Meta
	Pattern atom.Atom
	Flags   atom.Atom
}

func (*RegExpLiteral) Variant() NodeVariant { return VariantRegExpLiteral }

// TemplateLiteral is a template literal with interleaved raw/cooked
// quasis (stored as atoms, since quasis may contain invalid escapes with
// no cooked value — an absent cooked value is represented by Invalid) and
// substitution expressions.
type TemplateLiteral struct {
	Meta
	Quasis      []TemplateElement
	Expressions NodeList // Expression children
}

func (*TemplateLiteral) Variant() NodeVariant { return VariantTemplateLiteral }

// TemplateElement is one raw/cooked quasi segment of a TemplateLiteral.
// It is not itself an arena node (it carries no children and is always
// fully owned by its TemplateLiteral), so it lives as a plain value type.
type TemplateElement struct {
	Raw    atom.Atom16
	Cooked atom.Atom16 // atom.Invalid if the escape sequence was malformed
	Tail   bool
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// Program is the root of a parsed module or script.
type Program struct {
	Meta
	Body   NodeList // Statement children
	Module bool     // true for ES module source text, false for a script
}

func (*Program) Variant() NodeVariant { return VariantProgram }

// ExpressionStatement is an expression used in statement position.
type ExpressionStatement struct {
	Meta
	Expression Ref
}

func (*ExpressionStatement) Variant() NodeVariant { return VariantExpressionStatement }

// BlockStatement is `{ body... }`.
type BlockStatement struct {
	Meta
	Body NodeList // Statement children
}

func (*BlockStatement) Variant() NodeVariant { return VariantBlockStatement }

// EmptyStatement is a bare `;`. It also serves as the placeholder the
// rewriting visitor substitutes when VisitorMut.Removed() targets a
// required (non-list) statement slot.
type EmptyStatement struct {
	Meta
}

func (*EmptyStatement) Variant() NodeVariant { return VariantEmptyStatement }

// IfStatement is `if (test) consequent [else alternate]`.
type IfStatement struct {
	Meta
	Test       Ref // Expression
	Consequent Ref // Statement
	Alternate  OptRef
}

func (*IfStatement) Variant() NodeVariant { return VariantIfStatement }

// ForStatement is the C-style `for (init; test; update) body`. Init may
// be a VariableDeclaration or an Expression; the validator, not the type
// system, enforces that distinction.
type ForStatement struct {
	Meta
	Init   OptRef
	Test   OptRef
	Update OptRef
	Body   Ref // Statement
}

func (*ForStatement) Variant() NodeVariant { return VariantForStatement }

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Meta
	Test Ref // Expression
	Body Ref // Statement
}

func (*WhileStatement) Variant() NodeVariant { return VariantWhileStatement }

// ReturnStatement is `return [argument];`.
type ReturnStatement struct {
	Meta
	Argument OptRef // Expression
}

func (*ReturnStatement) Variant() NodeVariant { return VariantReturnStatement }

// BreakStatement is `break [label];`. Label is stored as an atom rather
// than an Identifier node, since a break/continue label is never itself
// independently visited or resolved as an expression.
type BreakStatement struct {
	Meta
	Label OptRef // Identifier
}

func (*BreakStatement) Variant() NodeVariant { return VariantBreakStatement }

// ContinueStatement is `continue [label];`.
type ContinueStatement struct {
	Meta
	Label OptRef // Identifier
}

func (*ContinueStatement) Variant() NodeVariant { return VariantContinueStatement }

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// BinaryExpression is `left op right` for a non-logical binary operator.
type BinaryExpression struct {
	Meta
	Operator BinaryOperator
	Left     Ref // Expression
	Right    Ref // Expression
}

func (*BinaryExpression) Variant() NodeVariant { return VariantBinaryExpression }

// LogicalExpression is `left op right` for &&, ||, ??.
type LogicalExpression struct {
	Meta
	Operator LogicalOperator
	Left     Ref // Expression
	Right    Ref // Expression
}

func (*LogicalExpression) Variant() NodeVariant { return VariantLogicalExpression }

// UnaryExpression is `op argument` for a prefix unary operator.
type UnaryExpression struct {
	Meta
	Operator UnaryOperator
	Argument Ref // Expression
	Prefix   bool
}

func (*UnaryExpression) Variant() NodeVariant { return VariantUnaryExpression }

// UpdateExpression is `++argument` / `argument++` (and the `--` forms).
type UpdateExpression struct {
	Meta
	Operator UpdateOperator
	Argument Ref // LVal
	Prefix   bool
}

func (*UpdateExpression) Variant() NodeVariant { return VariantUpdateExpression }

// AssignmentExpression is `left op= right`.
type AssignmentExpression struct {
	Meta
	Operator AssignmentOperator
	Left     Ref // LVal
	Right    Ref // Expression
}

func (*AssignmentExpression) Variant() NodeVariant { return VariantAssignmentExpression }

// ConditionalExpression is `test ? consequent : alternate`.
type ConditionalExpression struct {
	Meta
	Test       Ref // Expression
	Consequent Ref // Expression
	Alternate  Ref // Expression
}

func (*ConditionalExpression) Variant() NodeVariant { return VariantConditionalExpression }

// CallExpression is `callee(arguments...)`, optionally optional-chained.
type CallExpression struct {
	Meta
	Callee    Ref // Expression
	Arguments NodeList
	Optional  bool
}

func (*CallExpression) Variant() NodeVariant { return VariantCallExpression }

// NewExpression is `new callee(arguments...)`.
type NewExpression struct {
	Meta
	Callee    Ref // Expression
	Arguments NodeList
}

func (*NewExpression) Variant() NodeVariant { return VariantNewExpression }

// MemberExpression is `object.property` or `object[property]`.
type MemberExpression struct {
	Meta
	Object   Ref // Expression
	Property Ref // Identifier when !Computed, else Expression
	Computed bool
	Optional bool
}

func (*MemberExpression) Variant() NodeVariant { return VariantMemberExpression }

// ArrayExpression is `[elements...]`; holes are absent OptRef entries, as
// with ArrayPattern.
type ArrayExpression struct {
	Meta
	Elements []OptRef
}

func (*ArrayExpression) Variant() NodeVariant { return VariantArrayExpression }

// ObjectExpression is `{ properties... }`.
type ObjectExpression struct {
	Meta
	Properties NodeList // Property children
}

func (*ObjectExpression) Variant() NodeVariant { return VariantObjectExpression }

// Property is one `key: value` (or method/getter/setter) entry of an
// ObjectExpression or ObjectPattern.
type Property struct {
	Meta
	Key       Ref // Expression (Identifier when !Computed)
	Value     Ref // Expression (Pattern when used inside an ObjectPattern)
	Kind      PropertyKind
	Computed  bool
	Shorthand bool
}

func (*Property) Variant() NodeVariant { return VariantProperty }

// FunctionExpression is a named or anonymous `function` expression.
type FunctionExpression struct {
	Meta
	Id        OptRef // Identifier
	Params    NodeList
	Body      Ref // BlockStatement
	Async     bool
	Generator bool
}

func (*FunctionExpression) Variant() NodeVariant { return VariantFunctionExpression }

// ArrowFunctionExpression is `(params) => body`; Body is either a
// BlockStatement or, for an expression-bodied arrow, the expression
// itself (ExpressionBody distinguishes the two so the generator knows
// whether to wrap it in `{ return ... }`-equivalent braces or not, and the
// validator can require parenthesization when the body is an object
// literal).
type ArrowFunctionExpression struct {
	Meta
	Params         NodeList
	Body           Ref // BlockStatement or Expression
	ExpressionBody bool
	Async          bool
}

func (*ArrowFunctionExpression) Variant() NodeVariant { return VariantArrowFunctionExpression }

// SequenceExpression is `a, b, c`.
type SequenceExpression struct {
	Meta
	Expressions NodeList
}

func (*SequenceExpression) Variant() NodeVariant { return VariantSequenceExpression }

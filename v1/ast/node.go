// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package ast defines the arena-managed AST node model: every concrete
// node kind, the read-only and rewriting visitor APIs, builder-driven
// change detection, and node construction templates. Every node lives in
// an arena.Arena[Node] and is only ever observed through an arena.Lock.
package ast

import (
	"module/v1/arena"
	"module/v1/source"
)

// Node is implemented by every concrete AST node kind. Values are never
// constructed directly; see the per-kind Template and Builder types.
type Node interface {
	Range() source.Range
	Variant() NodeVariant
}

// Meta is embedded as the first field of every concrete node kind,
// matching the "metadata.range always present, first field" invariant.
type Meta struct {
	Range_ source.Range
}

// Range implements Node for any type embedding Meta.
func (m Meta) Range() source.Range { return m.Range_ }

// NodeList is the intrusive, singly-linked child sequence type used
// wherever a node has an ordered list of children (statement bodies,
// argument lists, property lists, ...). It is a thin alias over the
// arena's own List so ast code never has to re-implement list storage.
type NodeList = arena.List

// Ref is an arena-scoped reference to a child node. OptRef additionally
// tracks presence for slots that are genuinely optional (as opposed to
// always-present slots, which callers are expected to have populated via
// a Template).
type Ref = arena.Ref

// OptRef wraps Ref for slots the grammar allows to be absent (e.g. an
// IfStatement with no else branch), distinguishing "absent" from
// "arena.Nil used as a placeholder by mistake".
type OptRef struct {
	ref     Ref
	present bool
}

// NoRef is the canonical absent OptRef value.
var NoRef = OptRef{ref: arena.Nil, present: false}

// SomeRef wraps a present child reference.
func SomeRef(r Ref) OptRef { return OptRef{ref: r, present: true} }

// Get returns the wrapped Ref and whether it is present.
func (o OptRef) Get() (Ref, bool) { return o.ref, o.present }

// NodeField is the closed tag identifying which field of its parent a
// child occupies, used by Path during traversal.
type NodeField uint16

const (
	FieldNone NodeField = iota
	FieldBody
	FieldTest
	FieldConsequent
	FieldAlternate
	FieldLeft
	FieldRight
	FieldObject
	FieldProperty
	FieldCallee
	FieldArguments
	FieldElements
	FieldProperties
	FieldKey
	FieldValue
	FieldInit
	FieldUpdate
	FieldArgument
	FieldParams
	FieldId
	FieldDeclarations
	FieldSpecifiers
	FieldSource
	FieldExpression
	FieldDiscriminant
	FieldQuasi
	FieldExpressions
	FieldQuasis
	FieldExpr1
	FieldExpr2
	FieldTypeAnnotation
)

// Path describes where, during a traversal, the currently visited node
// sits relative to its parent.
type Path struct {
	Parent Node
	Field  NodeField
	Index  int // for list-valued fields, the index within the list; -1 otherwise
}

// --- Closed operator / kind enums -----------------------------------------

// BinaryOperator enumerates binary (non-logical, non-assignment) operators.
type BinaryOperator uint8

const (
	BinaryInvalid BinaryOperator = iota
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryExp
	BinaryEq
	BinaryNeq
	BinaryStrictEq
	BinaryStrictNeq
	BinaryLt
	BinaryLte
	BinaryGt
	BinaryGte
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryShl
	BinaryShr
	BinaryUShr
	BinaryIn
	BinaryInstanceof
)

var binaryOperatorStrings = map[BinaryOperator]string{
	BinaryAdd: "+", BinarySub: "-", BinaryMul: "*", BinaryDiv: "/", BinaryMod: "%",
	BinaryExp: "**", BinaryEq: "==", BinaryNeq: "!=", BinaryStrictEq: "===",
	BinaryStrictNeq: "!==", BinaryLt: "<", BinaryLte: "<=", BinaryGt: ">", BinaryGte: ">=",
	BinaryBitAnd: "&", BinaryBitOr: "|", BinaryBitXor: "^", BinaryShl: "<<", BinaryShr: ">>",
	BinaryUShr: ">>>", BinaryIn: "in", BinaryInstanceof: "instanceof",
}

func (o BinaryOperator) String() string { return binaryOperatorStrings[o] }

// LogicalOperator enumerates the short-circuiting logical operators,
// kept distinct from BinaryOperator because their evaluation semantics
// (and precedence, and validity as an AssignmentExpression target op)
// differ from ordinary binary operators.
type LogicalOperator uint8

const (
	LogicalInvalid LogicalOperator = iota
	LogicalAnd
	LogicalOr
	LogicalNullish
)

var logicalOperatorStrings = map[LogicalOperator]string{
	LogicalAnd: "&&", LogicalOr: "||", LogicalNullish: "??",
}

func (o LogicalOperator) String() string { return logicalOperatorStrings[o] }

// UnaryOperator enumerates prefix unary operators.
type UnaryOperator uint8

const (
	UnaryInvalid UnaryOperator = iota
	UnaryMinus
	UnaryPlus
	UnaryNot
	UnaryBitNot
	UnaryTypeof
	UnaryVoid
	UnaryDelete
)

var unaryOperatorStrings = map[UnaryOperator]string{
	UnaryMinus: "-", UnaryPlus: "+", UnaryNot: "!", UnaryBitNot: "~",
	UnaryTypeof: "typeof", UnaryVoid: "void", UnaryDelete: "delete",
}

func (o UnaryOperator) String() string { return unaryOperatorStrings[o] }

// UpdateOperator enumerates ++ / --.
type UpdateOperator uint8

const (
	UpdateInvalid UpdateOperator = iota
	UpdateIncrement
	UpdateDecrement
)

func (o UpdateOperator) String() string {
	if o == UpdateIncrement {
		return "++"
	}
	return "--"
}

// AssignmentOperator enumerates `=` and every compound assignment operator.
type AssignmentOperator uint8

const (
	AssignInvalid AssignmentOperator = iota
	Assign
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignExp
	AssignShl
	AssignShr
	AssignUShr
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignAnd
	AssignOr
	AssignNullish
)

var assignmentOperatorStrings = map[AssignmentOperator]string{
	Assign: "=", AssignAdd: "+=", AssignSub: "-=", AssignMul: "*=", AssignDiv: "/=",
	AssignMod: "%=", AssignExp: "**=", AssignShl: "<<=", AssignShr: ">>=", AssignUShr: ">>>=",
	AssignBitAnd: "&=", AssignBitOr: "|=", AssignBitXor: "^=",
	AssignAnd: "&&=", AssignOr: "||=", AssignNullish: "??=",
}

func (o AssignmentOperator) String() string { return assignmentOperatorStrings[o] }

// VariableDeclarationKind enumerates var/let/const.
type VariableDeclarationKind uint8

const (
	VarKindInvalid VariableDeclarationKind = iota
	VarKindVar
	VarKindLet
	VarKindConst
)

func (k VariableDeclarationKind) String() string {
	switch k {
	case VarKindVar:
		return "var"
	case VarKindLet:
		return "let"
	case VarKindConst:
		return "const"
	default:
		return ""
	}
}

// IsLetLike reports whether k introduces a block-scoped, TDZ-guarded binding.
func (k VariableDeclarationKind) IsLetLike() bool { return k == VarKindLet || k == VarKindConst }

// IsVarLike reports whether k introduces a function-scoped, hoisted binding.
func (k VariableDeclarationKind) IsVarLike() bool { return k == VarKindVar }

// PropertyKind enumerates ObjectExpression/ObjectPattern property kinds.
type PropertyKind uint8

const (
	PropKindInit PropertyKind = iota
	PropKindGet
	PropKindSet
)

// ImportKind distinguishes value vs type-only imports (TS/Flow).
type ImportKind uint8

const (
	ImportKindValue ImportKind = iota
	ImportKindType
)

// ExportKind distinguishes value vs type-only exports (TS/Flow).
type ExportKind uint8

const (
	ExportKindValue ExportKind = iota
	ExportKindType
)

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package generator

import "module/v1/ast"

// Precedence levels, lowest to tightest-binding. The numeric gaps
// between named operator groups let printBinary insert new sub-levels
// (e.g. if a future pass distinguishes `in`/`instanceof` from ordinary
// relational operators) without renumbering everything else.
const (
	precSequence = iota
	precAssignment
	precConditional
	precNullish
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precUpdate
	precCall
	precPrimary
)

// argPrec is the minimum precedence a comma-list element (call argument,
// array element, property value) must have to print unparenthesized: an
// AssignmentExpression is fine bare (`f(a = 1)`), a SequenceExpression is
// not (`f((a, b))`).
const argPrec = precAssignment

func binaryOpPrec(op ast.BinaryOperator) int {
	switch op {
	case ast.BinaryMul, ast.BinaryDiv, ast.BinaryMod:
		return precMultiplicative
	case ast.BinaryAdd, ast.BinarySub:
		return precAdditive
	case ast.BinaryShl, ast.BinaryShr, ast.BinaryUShr:
		return precShift
	case ast.BinaryLt, ast.BinaryLte, ast.BinaryGt, ast.BinaryGte, ast.BinaryIn, ast.BinaryInstanceof:
		return precRelational
	case ast.BinaryEq, ast.BinaryNeq, ast.BinaryStrictEq, ast.BinaryStrictNeq:
		return precEquality
	case ast.BinaryBitAnd:
		return precBitAnd
	case ast.BinaryBitXor:
		return precBitXor
	case ast.BinaryBitOr:
		return precBitOr
	case ast.BinaryExp:
		return precExponent
	default:
		return precPrimary
	}
}

func logicalOpPrec(op ast.LogicalOperator) int {
	switch op {
	case ast.LogicalNullish:
		return precNullish
	case ast.LogicalAnd:
		return precLogicalAnd
	default:
		return precLogicalOr
	}
}

// exprPrec returns the precedence level n prints at when it appears
// unparenthesized inside a larger expression, per the spec's operator
// precedence table (§4.10). Node kinds with no sub-expression ambiguity
// of their own (literals, identifiers, member/call chains, grouping
// forms) sit at precPrimary since nothing can ever require parenthesizing
// them for precedence reasons (though other policies, such as the
// arrow-body-returns-object-literal rule, may still add parens).
func exprPrec(n ast.Node) int {
	switch v := n.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignmentExpression:
		return precAssignment
	case *ast.ArrowFunctionExpression:
		return precAssignment
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.LogicalExpression:
		return logicalOpPrec(v.Operator)
	case *ast.BinaryExpression:
		return binaryOpPrec(v.Operator)
	case *ast.UnaryExpression:
		return precUnary
	case *ast.UpdateExpression:
		return precUpdate
	default:
		return precPrimary
	}
}

// isRightAssoc reports whether n's operator associates right-to-left, so
// printBinary knows which side tolerates an equal-precedence child
// unparenthesized.
func isRightAssoc(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.AssignmentExpression:
		return true
	case *ast.BinaryExpression:
		return v.Operator == ast.BinaryExp
	default:
		return false
	}
}

// mixesLogicalFamily reports whether parent and child are both
// LogicalExpression but from incompatible families (?? cannot be mixed
// with && or || without explicit parens — the grammar rejects it
// outright, not merely ambiguous precedence), forcing parens regardless
// of the numeric precedence comparison.
func mixesLogicalFamily(parentOp ast.LogicalOperator, child ast.Node) bool {
	childLog, ok := child.(*ast.LogicalExpression)
	if !ok {
		return false
	}
	parentNullish := parentOp == ast.LogicalNullish
	childNullish := childLog.Operator == ast.LogicalNullish
	return parentNullish != childNullish
}

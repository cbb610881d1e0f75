// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package generator

import (
	"module/v1/arena"
	"module/v1/ast"
)

// printExpr prints n with no parentheses of its own; callers that need
// n parenthesized relative to a surrounding operator go through
// printOperand instead.
func (p *printer) printExpr(n ast.Node) {
	p.mark(n.Range())
	switch v := n.(type) {
	case *ast.Identifier:
		p.write(p.identName(v))

	case *ast.NumericLiteral:
		p.write(formatNumber(v.Value))

	case *ast.StringLiteral:
		p.write(p.quoteString(v.Value))

	case *ast.BooleanLiteral:
		if v.Value {
			p.write("true")
		} else {
			p.write("false")
		}

	case *ast.NullLiteral:
		p.write("null")

	case *ast.RegExpLiteral:
		p.write("/")
		p.write(p.tbl.Lookup(v.Pattern))
		p.write("/")
		p.write(p.tbl.Lookup(v.Flags))

	case *ast.TemplateLiteral:
		p.printTemplateLiteral(v)

	case *ast.ObjectPattern:
		p.printObjectPattern(v)

	case *ast.ArrayPattern:
		p.printArrayLike(v.Elements)

	case *ast.AssignmentPattern:
		p.printOperand(p.lock.Deref(v.Left), precAssignment+1)
		p.write(p.opSep())
		p.write("=")
		p.write(p.opSep())
		p.printOperand(p.lock.Deref(v.Right), argPrec)

	case *ast.RestElement:
		p.write("...")
		p.printOperand(p.lock.Deref(v.Argument), argPrec)

	case *ast.BinaryExpression:
		p.printBinaryExpr(v)

	case *ast.LogicalExpression:
		p.printLogicalExpr(v)

	case *ast.UnaryExpression:
		op := v.Operator.String()
		p.write(op)
		if len(op) > 1 {
			p.space()
		}
		p.printOperand(p.lock.Deref(v.Argument), precUnary)

	case *ast.UpdateExpression:
		arg := p.lock.Deref(v.Argument)
		if v.Prefix {
			p.write(v.Operator.String())
			p.printOperand(arg, precUnary)
		} else {
			p.printOperand(arg, precCall)
			p.write(v.Operator.String())
		}

	case *ast.AssignmentExpression:
		p.printOperand(p.lock.Deref(v.Left), precCall)
		p.write(p.opSep())
		p.write(v.Operator.String())
		p.write(p.opSep())
		p.printOperand(p.lock.Deref(v.Right), precAssignment)

	case *ast.ConditionalExpression:
		p.printOperand(p.lock.Deref(v.Test), precNullish)
		p.write(p.opSep())
		p.write("?")
		p.write(p.opSep())
		p.printOperand(p.lock.Deref(v.Consequent), precAssignment)
		p.write(p.opSep())
		p.write(":")
		p.write(p.opSep())
		p.printOperand(p.lock.Deref(v.Alternate), precAssignment)

	case *ast.CallExpression:
		p.printOperand(p.lock.Deref(v.Callee), precCall)
		if v.Optional {
			p.write("?.")
		}
		p.printArguments(v.Arguments)

	case *ast.NewExpression:
		p.write("new ")
		p.printNewCallee(p.lock.Deref(v.Callee))
		p.printArguments(v.Arguments)

	case *ast.MemberExpression:
		p.printOperand(p.lock.Deref(v.Object), precCall)
		if v.Computed {
			if v.Optional {
				p.write("?.")
			}
			p.write("[")
			p.printOperand(p.lock.Deref(v.Property), argPrec)
			p.write("]")
		} else {
			if v.Optional {
				p.write("?.")
			} else {
				p.write(".")
			}
			p.printExpr(p.lock.Deref(v.Property))
		}

	case *ast.ArrayExpression:
		p.printArrayLike(v.Elements)

	case *ast.ObjectExpression:
		p.printObjectExpression(v)

	case *ast.Property:
		p.printProperty(v)

	case *ast.FunctionExpression:
		p.printFunctionLike(v.Id, v.Params, v.Body, v.Async, v.Generator, false)

	case *ast.ArrowFunctionExpression:
		p.printArrowFunction(v)

	case *ast.SequenceExpression:
		refs := arena.Elems(p.lock, v.Expressions)
		for i, r := range refs {
			if i > 0 {
				p.comma()
			}
			p.printOperand(p.lock.Deref(r), argPrec)
		}

	case *ast.JSXIdentifier:
		p.write(p.tbl.Lookup(v.Name))

	case *ast.JSXElement:
		p.printJSXElement(v)

	case *ast.TSTypeAnnotation:
		p.write(": ")
		p.write(p.tbl.Lookup(v.TypeName))

	case *ast.FlowAnyTypeAnnotation:
		p.write(": any")

	default:
		panic("generator: unhandled expression kind " + n.Variant().String())
	}
}

// printOperand prints n, wrapping it in parentheses first if its own
// precedence is below minPrec.
func (p *printer) printOperand(n ast.Node, minPrec int) {
	if exprPrec(n) < minPrec {
		p.write("(")
		p.printExpr(n)
		p.write(")")
		return
	}
	p.printExpr(n)
}

func (p *printer) printBinaryExpr(v *ast.BinaryExpression) {
	opPrec := binaryOpPrec(v.Operator)
	rightAssoc := isRightAssoc(v)
	left, right := p.lock.Deref(v.Left), p.lock.Deref(v.Right)

	leftMin := opPrec
	if rightAssoc {
		leftMin++
	}
	rightMin := opPrec
	if !rightAssoc {
		rightMin++
	}

	// `(-x) ** y`: a UnaryExpression can never sit unparenthesized as the
	// base of **, regardless of its nominal precedence.
	if v.Operator == ast.BinaryExp {
		if _, isUnary := left.(*ast.UnaryExpression); isUnary {
			leftMin = precPrimary + 1
		}
	}

	sep := p.opSep()
	if v.Operator == ast.BinaryIn || v.Operator == ast.BinaryInstanceof {
		sep = " "
	}
	p.printOperand(left, leftMin)
	p.write(sep)
	p.write(v.Operator.String())
	p.write(sep)
	p.printOperand(right, rightMin)
}

func (p *printer) printLogicalExpr(v *ast.LogicalExpression) {
	opPrec := logicalOpPrec(v.Operator)
	left, right := p.lock.Deref(v.Left), p.lock.Deref(v.Right)

	leftMin, rightMin := opPrec, opPrec+1
	if mixesLogicalFamily(v.Operator, left) {
		leftMin = precPrimary + 1
	}
	if mixesLogicalFamily(v.Operator, right) {
		rightMin = precPrimary + 1
	}

	p.printOperand(left, leftMin)
	p.write(p.opSep())
	p.write(v.Operator.String())
	p.write(p.opSep())
	p.printOperand(right, rightMin)
}

// printNewCallee prints a NewExpression's callee, adding parens whenever
// the callee itself contains an uncalled function call: `new (f())()`
// keeps the call inside the `new` callee explicit, since `new f()()`
// would instead parse as `(new f())()`.
func (p *printer) printNewCallee(n ast.Node) {
	_, isCall := n.(*ast.CallExpression)
	min := precCall
	if isCall {
		min = precPrimary + 1
	}
	p.printOperand(n, min)
}

func (p *printer) printArguments(args ast.NodeList) {
	p.write("(")
	refs := arena.Elems(p.lock, args)
	for i, r := range refs {
		if i > 0 {
			p.comma()
		}
		p.printOperand(p.lock.Deref(r), argPrec)
	}
	p.write(")")
}

func (p *printer) printArrayLike(elements []ast.OptRef) {
	p.write("[")
	for i, e := range elements {
		if i > 0 {
			p.comma()
		}
		if r, ok := e.Get(); ok {
			p.printOperand(p.lock.Deref(r), argPrec)
		}
	}
	p.write("]")
}

func (p *printer) printObjectExpression(v *ast.ObjectExpression) {
	refs := arena.Elems(p.lock, v.Properties)
	if len(refs) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, r := range refs {
		if i > 0 {
			p.comma()
		}
		p.printExpr(p.lock.Deref(r))
	}
	p.write(" }")
}

func (p *printer) printObjectPattern(v *ast.ObjectPattern) {
	refs := arena.Elems(p.lock, v.Properties)
	rest, hasRest := v.Rest.Get()
	if len(refs) == 0 && !hasRest {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, r := range refs {
		if i > 0 {
			p.comma()
		}
		p.printExpr(p.lock.Deref(r))
	}
	if hasRest {
		if len(refs) > 0 {
			p.comma()
		}
		p.write("...")
		p.printExpr(p.lock.Deref(rest))
	}
	p.write(" }")
}

func (p *printer) printProperty(v *ast.Property) {
	if v.Kind == ast.PropKindGet || v.Kind == ast.PropKindSet {
		if v.Kind == ast.PropKindGet {
			p.write("get ")
		} else {
			p.write("set ")
		}
		p.printPropertyKey(v)
		p.printFunctionValueAsMethod(v.Value)
		return
	}
	if fn, ok := p.lock.Deref(v.Value).(*ast.FunctionExpression); ok && !v.Shorthand {
		p.printPropertyKey(v)
		p.printFunctionLike(ast.NoRef, fn.Params, fn.Body, fn.Async, fn.Generator, true)
		return
	}
	if v.Shorthand {
		p.printExpr(p.lock.Deref(v.Key))
		return
	}
	p.printPropertyKey(v)
	p.write(":")
	p.write(p.opSep())
	p.printOperand(p.lock.Deref(v.Value), argPrec)
}

func (p *printer) printPropertyKey(v *ast.Property) {
	if v.Computed {
		p.write("[")
		p.printExpr(p.lock.Deref(v.Key))
		p.write("]")
		return
	}
	p.printExpr(p.lock.Deref(v.Key))
}

func (p *printer) printFunctionValueAsMethod(value ast.Ref) {
	fn := p.lock.Deref(value).(*ast.FunctionExpression)
	p.printFunctionLike(ast.NoRef, fn.Params, fn.Body, fn.Async, fn.Generator, true)
}

// printFunctionLike prints the `function` keyword form shared by
// FunctionDeclaration, FunctionExpression and object-literal methods.
// asMethod suppresses the "function" keyword (and the name), since a
// method shorthand is printed as `key(...) {...}` with neither.
func (p *printer) printFunctionLike(name ast.OptRef, params ast.NodeList, body ast.Ref, async, generator, asMethod bool) {
	if async {
		p.write("async ")
	}
	if !asMethod {
		p.write("function")
		if generator {
			p.write("*")
		}
		p.write(" ")
		if id, ok := name.Get(); ok {
			p.write(p.identName(p.lock.Deref(id).(*ast.Identifier)))
		}
	} else if generator {
		p.write("*")
	}
	p.printParamList(params)
	p.write(" ")
	p.printStmt(p.lock.Deref(body))
}

func (p *printer) printParamList(params ast.NodeList) {
	p.write("(")
	refs := arena.Elems(p.lock, params)
	for i, r := range refs {
		if i > 0 {
			p.comma()
		}
		p.printExpr(p.lock.Deref(r))
	}
	p.write(")")
}

// printArrowFunction applies the one parenthesization rule specific to
// arrow functions: an expression-bodied arrow whose body is an object
// literal must wrap it in parens, since `x => {}` would otherwise parse
// the braces as the arrow's block body.
func (p *printer) printArrowFunction(v *ast.ArrowFunctionExpression) {
	if v.Async {
		p.write("async ")
	}
	p.printParamList(v.Params)
	p.write(p.opSep())
	p.write("=>")
	p.write(p.opSep())
	body := p.lock.Deref(v.Body)
	if !v.ExpressionBody {
		p.printStmt(body)
		return
	}
	if _, isObject := body.(*ast.ObjectExpression); isObject {
		p.write("(")
		p.printExpr(body)
		p.write(")")
		return
	}
	p.printOperand(body, argPrec)
}

func (p *printer) printTemplateLiteral(v *ast.TemplateLiteral) {
	p.write("`")
	exprs := arena.Elems(p.lock, v.Expressions)
	for i, q := range v.Quasis {
		p.write(rawUTF16ToUTF8(p.tbl16.Lookup(q.Raw)))
		if !q.Tail && i < len(exprs) {
			p.write("${")
			p.printExpr(p.lock.Deref(exprs[i]))
			p.write("}")
		}
	}
	p.write("`")
}

// rawUTF16ToUTF8 best-effort renders template-literal raw text for
// output: raw quasis are passed through byte-for-byte wherever they are
// plain ASCII/BMP text, matching the "preserving raw input where
// semantically required" policy (§4.10) rather than re-escaping through
// quoteString16's string-literal rules, which would double-escape
// backticks and `${`.
func rawUTF16ToUTF8(units []uint16) string {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF {
			r := 0x10000 + (rune(u)-0xD800)<<10 + (rune(units[i+1]) - 0xDC00)
			out = append(out, r)
			i++
			continue
		}
		out = append(out, rune(u))
	}
	return string(out)
}

func (p *printer) printJSXElement(v *ast.JSXElement) {
	p.write("<")
	p.printExpr(p.lock.Deref(v.Name))
	for _, attr := range v.Attributes {
		p.write(" ")
		p.write(p.tbl.Lookup(attr.Name))
		if val, ok := attr.Value.Get(); ok {
			p.write("=")
			n := p.lock.Deref(val)
			if _, isString := n.(*ast.StringLiteral); isString {
				p.printExpr(n)
			} else {
				p.write("{")
				p.printExpr(n)
				p.write("}")
			}
		}
	}
	if v.SelfClosing {
		p.write(" />")
		return
	}
	p.write(">")
	for _, r := range arena.Elems(p.lock, v.Children) {
		p.printExpr(p.lock.Deref(r))
	}
	p.write("</")
	p.printExpr(p.lock.Deref(v.Name))
	p.write(">")
}

// startsWithBraceOrFunction reports whether n's leftmost printed token
// would be `{` or `function`, which is ambiguous at the start of an
// ExpressionStatement (the parser would read it as a block or a
// FunctionDeclaration instead). It recurses into whichever child prints
// first, stopping at any node whose own leading token cannot be one of
// those two (an operator, a keyword, an opening paren or bracket).
func startsWithBraceOrFunction(lock *ast.Lock, n ast.Node) bool {
	switch v := n.(type) {
	case *ast.ObjectExpression:
		return true
	case *ast.FunctionExpression:
		return true
	case *ast.BinaryExpression:
		return startsWithBraceOrFunction(lock, lock.Deref(v.Left))
	case *ast.LogicalExpression:
		return startsWithBraceOrFunction(lock, lock.Deref(v.Left))
	case *ast.AssignmentExpression:
		return startsWithBraceOrFunction(lock, lock.Deref(v.Left))
	case *ast.ConditionalExpression:
		return startsWithBraceOrFunction(lock, lock.Deref(v.Test))
	case *ast.SequenceExpression:
		refs := arena.Elems(lock, v.Expressions)
		if len(refs) == 0 {
			return false
		}
		return startsWithBraceOrFunction(lock, lock.Deref(refs[0]))
	case *ast.CallExpression:
		return startsWithBraceOrFunction(lock, lock.Deref(v.Callee))
	case *ast.MemberExpression:
		return startsWithBraceOrFunction(lock, lock.Deref(v.Object))
	case *ast.UpdateExpression:
		if !v.Prefix {
			return startsWithBraceOrFunction(lock, lock.Deref(v.Argument))
		}
		return false
	default:
		return false
	}
}

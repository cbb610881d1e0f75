// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package generator

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
)

// assertRoundTrip compares a printer round-trip's got/want output,
// rendering a readable diff on mismatch instead of two opaque strings.
func assertRoundTrip(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("generated output does not round-trip as expected:\n%s", dmp.DiffPrettyText(diffs))
}

func testRange() source.Range {
	return source.Range{File: source.Id(1), Start: source.Loc{Line: 1, Col: 1}, End: source.Loc{Line: 1, Col: 2}}
}

func newTestLock() (*ast.Arena, *ast.Lock) {
	a := ast.NewArena(nil)
	return a, ast.NewLock(a)
}

func genCompact(t *testing.T, lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node) string {
	t.Helper()
	out, _ := Generate(lock, tbl, tbl16, root, Options{Pretty: false})
	return out
}

func genPretty(t *testing.T, lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node) string {
	t.Helper()
	out, _ := Generate(lock, tbl, tbl16, root, Options{Pretty: true})
	return out
}

func wrapProgram(lock *ast.Lock, stmts ...ast.Ref) ast.Node {
	body := ast.NodeList{}
	for _, s := range stmts {
		body = arena.PushBack(lock, body, s)
	}
	prog := ast.ProgramTemplate{Range: testRange(), Body: body}.Build(lock)
	return lock.Deref(prog)
}

// Scenario 1 from spec.md §8: `var x = 10;` generates back to exactly
// "var x=10;" in compact mode, with no space around the `=`.
func TestGenerate_VarDeclarationCompact(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	xName := tbl.InternString("x")
	xId := ast.IdentifierTemplate{Range: testRange(), Name: xName}.Build(lock)
	ten := ast.NumericLiteralTemplate{Range: testRange(), Value: 10}.Build(lock)
	decl := ast.VariableDeclaratorTemplate{Range: testRange(), Id: xId, Init: ast.SomeRef(ten)}.Build(lock)
	decls := ast.NodeList{}
	decls = arena.PushBack(lock, decls, decl)
	varDecl := ast.VariableDeclarationTemplate{Range: testRange(), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)

	prog := wrapProgram(lock, varDecl)
	got := genCompact(t, lock, tbl, tbl16, prog)
	assertRoundTrip(t, got, "var x=10;")
}

func TestGenerate_VarDeclarationPretty(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	xName := tbl.InternString("x")
	xId := ast.IdentifierTemplate{Range: testRange(), Name: xName}.Build(lock)
	ten := ast.NumericLiteralTemplate{Range: testRange(), Value: 10}.Build(lock)
	decl := ast.VariableDeclaratorTemplate{Range: testRange(), Id: xId, Init: ast.SomeRef(ten)}.Build(lock)
	decls := ast.NodeList{}
	decls = arena.PushBack(lock, decls, decl)
	varDecl := ast.VariableDeclarationTemplate{Range: testRange(), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)

	prog := wrapProgram(lock, varDecl)
	got := genPretty(t, lock, tbl, tbl16, prog)
	assertRoundTrip(t, got, "var x = 10;\n")
}

// a + b * c must not parenthesize the multiplication (tighter precedence),
// but (a + b) * c must parenthesize the addition.
func TestGenerate_BinaryPrecedence(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	a := tbl.InternString("a")
	b := tbl.InternString("b")
	c := tbl.InternString("c")
	aId := ast.IdentifierTemplate{Range: testRange(), Name: a}.Build(lock)
	bId := ast.IdentifierTemplate{Range: testRange(), Name: b}.Build(lock)
	cId := ast.IdentifierTemplate{Range: testRange(), Name: c}.Build(lock)

	mul := ast.BinaryExpressionTemplate{Range: testRange(), Operator: ast.BinaryMul, Left: bId, Right: cId}.Build(lock)
	addHigh := ast.BinaryExpressionTemplate{Range: testRange(), Operator: ast.BinaryAdd, Left: aId, Right: mul}.Build(lock)
	exprStmt1 := ast.ExpressionStatementTemplate{Range: testRange(), Expression: addHigh}.Build(lock)
	prog1 := wrapProgram(lock, exprStmt1)
	got1 := genCompact(t, lock, tbl, tbl16, prog1)
	if got1 != "a+b*c;" {
		t.Fatalf("got %q, want %q", got1, "a+b*c;")
	}

	a2Id := ast.IdentifierTemplate{Range: testRange(), Name: a}.Build(lock)
	b2Id := ast.IdentifierTemplate{Range: testRange(), Name: b}.Build(lock)
	c2Id := ast.IdentifierTemplate{Range: testRange(), Name: c}.Build(lock)
	add := ast.BinaryExpressionTemplate{Range: testRange(), Operator: ast.BinaryAdd, Left: a2Id, Right: b2Id}.Build(lock)
	mulLow := ast.BinaryExpressionTemplate{Range: testRange(), Operator: ast.BinaryMul, Left: add, Right: c2Id}.Build(lock)
	exprStmt2 := ast.ExpressionStatementTemplate{Range: testRange(), Expression: mulLow}.Build(lock)
	prog2 := wrapProgram(lock, exprStmt2)
	got2 := genCompact(t, lock, tbl, tbl16, prog2)
	if got2 != "(a+b)*c;" {
		t.Fatalf("got %q, want %q", got2, "(a+b)*c;")
	}
}

// `in`/`instanceof` always print with surrounding spaces, even compact,
// since they are word operators and cannot merge with adjacent operands.
func TestGenerate_BinaryWordOperatorAlwaysSpaced(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	k := tbl.InternString("k")
	o := tbl.InternString("o")
	kId := ast.IdentifierTemplate{Range: testRange(), Name: k}.Build(lock)
	oId := ast.IdentifierTemplate{Range: testRange(), Name: o}.Build(lock)
	in := ast.BinaryExpressionTemplate{Range: testRange(), Operator: ast.BinaryIn, Left: kId, Right: oId}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: in}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "k in o;" {
		t.Fatalf("got %q, want %q", got, "k in o;")
	}
}

// `- -x` must keep its separating space even in compact mode, since
// `--x` would re-lex as a prefix decrement.
func TestGenerate_UnaryMinusMinusGuard(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	x := tbl.InternString("x")
	xId := ast.IdentifierTemplate{Range: testRange(), Name: x}.Build(lock)
	inner := ast.UnaryExpressionTemplate{Range: testRange(), Operator: ast.UnaryMinus, Argument: xId, Prefix: true}.Build(lock)
	outer := ast.UnaryExpressionTemplate{Range: testRange(), Operator: ast.UnaryMinus, Argument: inner, Prefix: true}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: outer}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "- -x;" {
		t.Fatalf("got %q, want %q", got, "- -x;")
	}
}

// An exponentiation base can never be a bare unary expression: `(-x) ** y`
// must keep its parens regardless of numeric precedence.
func TestGenerate_ExponentUnaryBaseParens(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	x := tbl.InternString("x")
	y := tbl.InternString("y")
	xId := ast.IdentifierTemplate{Range: testRange(), Name: x}.Build(lock)
	yId := ast.IdentifierTemplate{Range: testRange(), Name: y}.Build(lock)
	neg := ast.UnaryExpressionTemplate{Range: testRange(), Operator: ast.UnaryMinus, Argument: xId, Prefix: true}.Build(lock)
	exp := ast.BinaryExpressionTemplate{Range: testRange(), Operator: ast.BinaryExp, Left: neg, Right: yId}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: exp}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "(-x)**y;" {
		t.Fatalf("got %q, want %q", got, "(-x)**y;")
	}
}

// `??` can never mix unparenthesized with `&&`/`||`.
func TestGenerate_NullishMixingForcesParens(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	a := tbl.InternString("a")
	b := tbl.InternString("b")
	c := tbl.InternString("c")
	aId := ast.IdentifierTemplate{Range: testRange(), Name: a}.Build(lock)
	bId := ast.IdentifierTemplate{Range: testRange(), Name: b}.Build(lock)
	cId := ast.IdentifierTemplate{Range: testRange(), Name: c}.Build(lock)

	and := ast.LogicalExpressionTemplate{Range: testRange(), Operator: ast.LogicalAnd, Left: aId, Right: bId}.Build(lock)
	nullish := ast.LogicalExpressionTemplate{Range: testRange(), Operator: ast.LogicalNullish, Left: and, Right: cId}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: nullish}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "(a&&b)??c;" {
		t.Fatalf("got %q, want %q", got, "(a&&b)??c;")
	}
}

// `new`'s callee can never be a bare CallExpression: `new (f())()` must
// keep its parens, since `new f()()` parses as `(new f())()` instead.
func TestGenerate_NewCalleeCallParens(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	f := tbl.InternString("f")
	fId := ast.IdentifierTemplate{Range: testRange(), Name: f}.Build(lock)
	innerCall := ast.CallExpressionTemplate{Range: testRange(), Callee: fId, Arguments: ast.NodeList{}}.Build(lock)
	newExpr := ast.NewExpressionTemplate{Range: testRange(), Callee: innerCall, Arguments: ast.NodeList{}}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: newExpr}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "new (f())();" {
		t.Fatalf("got %q, want %q", got, "new (f())();")
	}
}

// An expression-bodied arrow returning an ObjectExpression must wrap the
// body in parens, or `x => {}` would read as an empty block body.
func TestGenerate_ArrowReturningObjectLiteralParens(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	x := tbl.InternString("x")
	xParam := ast.IdentifierTemplate{Range: testRange(), Name: x}.Build(lock)
	params := ast.NodeList{}
	params = arena.PushBack(lock, params, xParam)
	body := ast.ObjectExpressionTemplate{Range: testRange(), Properties: ast.NodeList{}}.Build(lock)
	arrow := ast.ArrowFunctionExpressionTemplate{Range: testRange(), Params: params, Body: body, ExpressionBody: true}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: arrow}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "(x)=>({});" {
		t.Fatalf("got %q, want %q", got, "(x)=>({});")
	}
}

// An ExpressionStatement whose leftmost token would be `{` or `function`
// must wrap the whole expression in parens.
func TestGenerate_ExpressionStatementLeadingBraceParens(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	obj := ast.ObjectExpressionTemplate{Range: testRange(), Properties: ast.NodeList{}}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: obj}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "({});" {
		t.Fatalf("got %q, want %q", got, "({});")
	}
}

// A function declaration prints multi-line and indented in pretty mode,
// matching spec.md §8 scenario 4's expected shape.
func TestGenerate_FunctionDeclarationPretty(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	fName := tbl.InternString("f")
	fId := ast.IdentifierTemplate{Range: testRange(), Name: fName}.Build(lock)
	one := ast.NumericLiteralTemplate{Range: testRange(), Value: 1}.Build(lock)
	ret := ast.ReturnStatementTemplate{Range: testRange(), Argument: ast.SomeRef(one)}.Build(lock)
	body := ast.NodeList{}
	body = arena.PushBack(lock, body, ret)
	block := ast.BlockStatementTemplate{Range: testRange(), Body: body}.Build(lock)
	fn := ast.FunctionDeclarationTemplate{Range: testRange(), Id: fId, Params: ast.NodeList{}, Body: block}.Build(lock)

	prog := wrapProgram(lock, fn)
	got := genPretty(t, lock, tbl, tbl16, prog)
	assertRoundTrip(t, got, "function f() {\n  return 1;\n}\n")
}

// Compact mode drops the function declaration's interior whitespace
// entirely, still printing valid, unambiguous JS.
func TestGenerate_FunctionDeclarationCompact(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	fName := tbl.InternString("f")
	fId := ast.IdentifierTemplate{Range: testRange(), Name: fName}.Build(lock)
	one := ast.NumericLiteralTemplate{Range: testRange(), Value: 1}.Build(lock)
	ret := ast.ReturnStatementTemplate{Range: testRange(), Argument: ast.SomeRef(one)}.Build(lock)
	body := ast.NodeList{}
	body = arena.PushBack(lock, body, ret)
	block := ast.BlockStatementTemplate{Range: testRange(), Body: body}.Build(lock)
	fn := ast.FunctionDeclarationTemplate{Range: testRange(), Id: fId, Params: ast.NodeList{}, Body: block}.Build(lock)

	prog := wrapProgram(lock, fn)
	got := genCompact(t, lock, tbl, tbl16, prog)
	assertRoundTrip(t, got, "function f() {return 1;}")
}

// Template literals pass their raw quasis through untouched and nest
// expressions inside `${...}`.
func TestGenerate_TemplateLiteral(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	xName := tbl.InternString("x")
	xId := ast.IdentifierTemplate{Range: testRange(), Name: xName}.Build(lock)

	head := tbl16.Intern([]uint16{'h', 'i', ' '})
	tail := tbl16.Intern([]uint16{'!'})
	quasis := []ast.TemplateElement{
		{Raw: head, Cooked: head, Tail: false},
		{Raw: tail, Cooked: tail, Tail: true},
	}
	exprs := ast.NodeList{}
	exprs = arena.PushBack(lock, exprs, xId)
	tmpl := ast.TemplateLiteralTemplate{Range: testRange(), Quasis: quasis, Expressions: exprs}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: tmpl}.Build(lock)
	prog := wrapProgram(lock, exprStmt)
	got := genCompact(t, lock, tbl, tbl16, prog)
	if got != "`hi ${x}!`;" {
		t.Fatalf("got %q, want %q", got, "`hi ${x}!`;")
	}
}

// Generate with Options.SourceMap records one mapping per marked node.
func TestGenerate_SourceMapRecordsMappings(t *testing.T) {
	_, lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()

	xName := tbl.InternString("x")
	rng := source.Range{File: source.Id(3), Start: source.Loc{Line: 2, Col: 5}, End: source.Loc{Line: 2, Col: 6}}
	xId := ast.IdentifierTemplate{Range: rng, Name: xName}.Build(lock)
	ten := ast.NumericLiteralTemplate{Range: testRange(), Value: 10}.Build(lock)
	decl := ast.VariableDeclaratorTemplate{Range: testRange(), Id: xId, Init: ast.SomeRef(ten)}.Build(lock)
	decls := ast.NodeList{}
	decls = arena.PushBack(lock, decls, decl)
	varDecl := ast.VariableDeclarationTemplate{Range: testRange(), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)
	prog := wrapProgram(lock, varDecl)

	_, sm := Generate(lock, tbl, tbl16, prog, Options{Pretty: false, SourceMap: true})
	if sm == nil {
		t.Fatal("expected a non-nil SourceMapBuilder")
	}
	mappings := sm.Mappings()
	if len(mappings) == 0 {
		t.Fatal("expected at least one recorded mapping")
	}
	found := false
	for _, m := range mappings {
		if m.SrcLine == 1 && m.SrcCol == 4 && m.SrcId == source.Id(3) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a mapping back to the identifier's 0-based source position, got %+v", mappings)
	}
}

func TestGenerate_NumberFormatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{0.5, "0.5"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
	}
	for _, c := range cases {
		got := formatNumber(c.in)
		if got != c.want {
			t.Errorf("formatNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestQuoteString16_EscapesAndSurrogates(t *testing.T) {
	got := quoteString16([]uint16{'A', 0x1234, '\t'}, '"')
	want := `"A\u1234\t"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package dump

import (
	"strings"
	"testing"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
)

func testRange() source.Range {
	return source.Range{File: source.Id(1), Start: source.Loc{Line: 1, Col: 1}, End: source.Loc{Line: 1, Col: 5}}
}

func newTestLock() *ast.Lock {
	a := ast.NewArena(nil)
	return ast.NewLock(a)
}

// newTestManager registers the source buffers testRange() and
// TestDumpJSON_RangeIsTwoElementArray's explicit range need, so rangeJSON
// can resolve real byte offsets rather than dumping null.
func newTestManager() *source.Manager {
	mgr := source.NewManager(nil)
	mgr.AddSource("dummy-0", []byte("unused"))          // id 0, never referenced by a test range
	mgr.AddSource("a.js", []byte("0123456789"))         // id 1, backs testRange()
	mgr.AddSource("b.js", []byte("ab\ncd\nefghijkl\n")) // id 2, backs the 3-line explicit range
	return mgr
}

func wrapProgram(lock *ast.Lock, stmts ...ast.Ref) ast.Node {
	body := ast.NodeList{}
	for _, s := range stmts {
		body = arena.PushBack(lock, body, s)
	}
	prog := ast.ProgramTemplate{Range: testRange(), Body: body}.Build(lock)
	return lock.Deref(prog)
}

func TestDumpJSON_VarDeclaration(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	xName := tbl.InternString("x")
	xId := ast.IdentifierTemplate{Range: testRange(), Name: xName}.Build(lock)
	ten := ast.NumericLiteralTemplate{Range: testRange(), Value: 10, Raw: tbl.InternString("10")}.Build(lock)
	decl := ast.VariableDeclaratorTemplate{Range: testRange(), Id: xId, Init: ast.SomeRef(ten)}.Build(lock)
	decls := ast.NodeList{}
	decls = arena.PushBack(lock, decls, decl)
	varDecl := ast.VariableDeclarationTemplate{Range: testRange(), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)

	prog := wrapProgram(lock, varDecl)
	got := string(DumpJSON(lock, tbl, tbl16, mgr, prog, false))

	for _, want := range []string{
		`"type":"Program"`,
		`"type":"VariableDeclaration"`,
		`"kind":"var"`,
		`"type":"Identifier"`,
		`"name":"x"`,
		`"type":"NumericLiteral"`,
		`"value":10`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("dump %q does not contain %q", got, want)
		}
	}
	if !strings.HasPrefix(got, `{"type":"Program"`) {
		t.Fatalf(`dump does not start with Program object: %q`, got)
	}
}

func TestDumpJSON_PrettyIndents(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	lit := ast.NullLiteralTemplate{Range: testRange()}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: lit}.Build(lock)
	prog := wrapProgram(lock, exprStmt)

	got := string(DumpJSON(lock, tbl, tbl16, mgr, prog, true))
	if !strings.Contains(got, "\n") {
		t.Fatalf("pretty dump has no newlines: %q", got)
	}
	if !strings.Contains(got, "  ") {
		t.Fatalf("pretty dump has no indentation: %q", got)
	}
}

func TestDumpJSON_AbsentOptionalIsNull(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	ret := ast.ReturnStatementTemplate{Range: testRange(), Argument: ast.NoRef}.Build(lock)
	prog := wrapProgram(lock, ret)

	got := string(DumpJSON(lock, tbl, tbl16, mgr, prog, false))
	if !strings.Contains(got, `"argument":null`) {
		t.Fatalf("dump %q missing null argument", got)
	}
}

func TestDumpJSON_ArrayHoleIsNull(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	one := ast.NumericLiteralTemplate{Range: testRange(), Value: 1, Raw: tbl.InternString("1")}.Build(lock)
	arr := ast.ArrayExpressionTemplate{
		Range:    testRange(),
		Elements: []ast.OptRef{ast.SomeRef(one), ast.NoRef},
	}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: arr}.Build(lock)
	prog := wrapProgram(lock, exprStmt)

	got := string(DumpJSON(lock, tbl, tbl16, mgr, prog, false))
	if !strings.Contains(got, `"elements":[{"type":"NumericLiteral"`) {
		t.Fatalf("dump %q missing first element", got)
	}
	if !strings.Contains(got, ",null]") {
		t.Fatalf("dump %q missing hole null", got)
	}
}

func TestDumpJSON_NonUTF16StringGetsUPrefix(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	// A lone high surrogate cannot decode to valid UTF-16 text.
	loneSurrogate := tbl16.Intern([]uint16{0xd800})
	str := ast.StringLiteralTemplate{Range: testRange(), Value: loneSurrogate}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: str}.Build(lock)
	prog := wrapProgram(lock, exprStmt)

	got := string(DumpJSON(lock, tbl, tbl16, mgr, prog, false))
	if !strings.Contains(got, `u\"\ud800\"`) {
		t.Fatalf("dump %q missing u-prefixed lone surrogate escape", got)
	}
}

func TestDumpJSON_RangeIsTwoElementArray(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	lit := ast.NullLiteralTemplate{Range: source.Range{
		File:  source.Id(2),
		Start: source.Loc{Line: 3, Col: 4},
		End:   source.Loc{Line: 3, Col: 8},
	}}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: lit}.Build(lock)
	prog := wrapProgram(lock, exprStmt)

	got := string(DumpJSON(lock, tbl, tbl16, mgr, prog, false))
	if !strings.Contains(got, `"range":[9,13]`) {
		t.Fatalf("dump %q missing expected byte-offset range array", got)
	}
}

func TestDumpEqual_IgnoresFormattingNotStructure(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	lit := ast.BooleanLiteralTemplate{Range: testRange(), Value: true}.Build(lock)
	exprStmt := ast.ExpressionStatementTemplate{Range: testRange(), Expression: lit}.Build(lock)
	prog := wrapProgram(lock, exprStmt)

	compact := DumpJSON(lock, tbl, tbl16, mgr, prog, false)
	pretty := DumpJSON(lock, tbl, tbl16, mgr, prog, true)
	if !DumpEqual(compact, pretty) {
		t.Fatalf("compact and pretty dumps of the same tree should be DumpEqual")
	}
}

func TestDumpEqual_DetectsStructuralDifference(t *testing.T) {
	lock := newTestLock()
	defer lock.Release()
	tbl := atom.NewTable8()
	tbl16 := atom.NewTable16()
	mgr := newTestManager()

	litTrue := ast.BooleanLiteralTemplate{Range: testRange(), Value: true}.Build(lock)
	litFalse := ast.BooleanLiteralTemplate{Range: testRange(), Value: false}.Build(lock)
	progTrue := wrapProgram(lock, ast.ExpressionStatementTemplate{Range: testRange(), Expression: litTrue}.Build(lock))
	progFalse := wrapProgram(lock, ast.ExpressionStatementTemplate{Range: testRange(), Expression: litFalse}.Build(lock))

	a := DumpJSON(lock, tbl, tbl16, mgr, progTrue, false)
	b := DumpJSON(lock, tbl, tbl16, mgr, progFalse, false)
	if DumpEqual(a, b) {
		t.Fatalf("dumps of differing trees must not be DumpEqual")
	}
}

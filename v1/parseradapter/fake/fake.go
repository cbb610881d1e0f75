// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package fake provides a small hand-built parseradapter.Adapter over a
// fixed set of template-literal programs. It exists only so the
// validator, resolver, and generator can be exercised end to end without
// a real JS grammar (spec.md §1 treats the native parser front-end as an
// external collaborator, out of scope for this module). Source text is
// matched verbatim against a table of known programs built straight from
// ast Templates, the same construction style resolver_test.go and
// generator_test.go already use; anything else is reported as a single
// parse diagnostic.
package fake

import (
	"context"

	"github.com/opencontainers/go-digest"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/parseradapter"
	"module/v1/source"
)

// builderFunc constructs one program's root node, given the Lock and atom
// tables the caller's Parse call supplied.
type builderFunc func(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16) ast.Ref

type program struct {
	source   string
	docBlock *string
	magic    parseradapter.MagicComments
	build    builderFunc
}

// Adapter implements parseradapter.Adapter over a fixed registry of
// known programs, keyed by exact source text.
type Adapter struct {
	byText map[string]program
}

// New returns an Adapter preloaded with the fixture programs spec.md §8's
// end-to-end scenarios and a couple of doc-block/magic-comment examples
// exercise.
func New() *Adapter {
	a := &Adapter{byText: make(map[string]program)}
	for _, p := range builtinPrograms() {
		a.byText[p.source] = p
	}
	return a
}

// Register adds or overwrites a fixture program, for callers (tests)
// that want to extend the fake adapter's vocabulary without forking it.
func (a *Adapter) Register(sourceText string, build builderFunc) {
	a.byText[sourceText] = program{source: sourceText, build: build}
}

// Parse implements parseradapter.Adapter. buf is matched verbatim against
// the registry; flags.StrictMode/EnableJSX/Dialect are accepted but do
// not change which fixture matches, since the fake adapter has no real
// grammar to flex them against.
func (a *Adapter) Parse(_ context.Context, lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, src source.Id, buf []byte, _ parseradapter.Flags) (parseradapter.Result, []source.Diagnostic) {
	text := string(buf)
	p, ok := a.byText[text]
	if !ok {
		r := source.Range{File: src, Start: source.Loc{Line: 1, Col: 1}, End: source.Loc{Line: 1, Col: 1}}
		return parseradapter.Result{}, []source.Diagnostic{{
			Kind:    source.KindError,
			Range:   r,
			Message: "fake adapter: unrecognized program (no native JS parser is implemented in this module)",
			Digest:  digest.FromBytes(buf),
		}}
	}
	root := p.build(lock, tbl, tbl16)
	return parseradapter.Result{
		RootRef:       root,
		Root:          lock.Deref(root),
		DocBlock:      p.docBlock,
		MagicComments: p.magic,
	}, nil
}

func rng(file source.Id, startCol, endCol int32) source.Range {
	return source.Range{File: file, Start: source.Loc{Line: 1, Col: startCol}, End: source.Loc{Line: 1, Col: endCol}}
}

func docPtr(s string) *string { return &s }

// builtinPrograms returns the fixed fixture set. Ranges are approximate
// (column-counted against the literal source strings below) rather than
// byte-exact, which is adequate for a fake adapter whose job is to
// exercise downstream passes, not to validate position math — the real
// position-precision guarantees (§8 round-trip, source maps) are tested
// directly against hand-built trees in generator_test.go instead.
func builtinPrograms() []program {
	const file = source.Id(1)

	return []program{
		// Boundary case: empty Program prints to the empty string and
		// round-trips (spec.md §8 "Boundary behaviors").
		{
			source: "",
			build: func(lock *ast.Lock, _ *atom.Table8, _ *atom.Table16) ast.Ref {
				return parseradapterEmptyProgram(lock, rng(file, 1, 1))
			},
		},
		// Scenario 1: var x = 10;
		{
			source: "var x = 10;",
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				xName := tbl.InternString("x")
				xId := ast.IdentifierTemplate{Range: rng(file, 5, 6), Name: xName}.Build(lock)
				ten := ast.NumericLiteralTemplate{Range: rng(file, 9, 11), Value: 10, Raw: tbl.InternString("10")}.Build(lock)
				decl := ast.VariableDeclaratorTemplate{Range: rng(file, 5, 11), Id: xId, Init: ast.SomeRef(ten)}.Build(lock)
				decls := arena.PushBack(lock, ast.NodeList{}, decl)
				varDecl := ast.VariableDeclarationTemplate{Range: rng(file, 1, 12), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)
				body := arena.PushBack(lock, ast.NodeList{}, varDecl)
				return ast.ProgramTemplate{Range: rng(file, 1, 12), Body: body}.Build(lock)
			},
		},
		// Scenario 2: function foo(p1){var x=(10+p1);} — used by the
		// no-op builder property (no Flow types present, rewrite with an
		// identity VisitorMut must report Unchanged for every node).
		{
			source: "function foo(p1){var x=(10+p1);}",
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				fooName := tbl.InternString("foo")
				p1Name := tbl.InternString("p1")
				xName := tbl.InternString("x")

				fooId := ast.IdentifierTemplate{Range: rng(file, 10, 13), Name: fooName}.Build(lock)
				p1Param := ast.IdentifierTemplate{Range: rng(file, 14, 16), Name: p1Name}.Build(lock)
				params := arena.PushBack(lock, ast.NodeList{}, p1Param)

				p1Use := ast.IdentifierTemplate{Range: rng(file, 28, 30), Name: p1Name}.Build(lock)
				ten := ast.NumericLiteralTemplate{Range: rng(file, 25, 27), Value: 10, Raw: tbl.InternString("10")}.Build(lock)
				sum := ast.BinaryExpressionTemplate{Range: rng(file, 25, 30), Operator: ast.BinaryAdd, Left: ten, Right: p1Use}.Build(lock)
				xId := ast.IdentifierTemplate{Range: rng(file, 21, 22), Name: xName}.Build(lock)
				xDecl := ast.VariableDeclaratorTemplate{Range: rng(file, 21, 31), Id: xId, Init: ast.SomeRef(sum)}.Build(lock)
				decls := arena.PushBack(lock, ast.NodeList{}, xDecl)
				varX := ast.VariableDeclarationTemplate{Range: rng(file, 17, 32), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)

				fnBody := arena.PushBack(lock, ast.NodeList{}, varX)
				block := ast.BlockStatementTemplate{Range: rng(file, 17, 33), Body: fnBody}.Build(lock)
				fnDecl := ast.FunctionDeclarationTemplate{Range: rng(file, 1, 33), Id: fooId, Params: params, Body: block}.Build(lock)

				body := arena.PushBack(lock, ast.NodeList{}, fnDecl)
				return ast.ProgramTemplate{Range: rng(file, 1, 33), Body: body}.Build(lock)
			},
		},
		// Scenario 3: a + -b — the rewrite-to-subtraction example.
		{
			source: "a + -b",
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				aName := tbl.InternString("a")
				bName := tbl.InternString("b")
				aId := ast.IdentifierTemplate{Range: rng(file, 1, 2), Name: aName}.Build(lock)
				bId := ast.IdentifierTemplate{Range: rng(file, 6, 7), Name: bName}.Build(lock)
				neg := ast.UnaryExpressionTemplate{Range: rng(file, 5, 7), Operator: ast.UnaryMinus, Argument: bId, Prefix: true}.Build(lock)
				add := ast.BinaryExpressionTemplate{Range: rng(file, 1, 7), Operator: ast.BinaryAdd, Left: aId, Right: neg}.Build(lock)
				stmt := ast.ExpressionStatementTemplate{Range: rng(file, 1, 7), Expression: add}.Build(lock)
				body := arena.PushBack(lock, ast.NodeList{}, stmt)
				return ast.ProgramTemplate{Range: rng(file, 1, 7), Body: body}.Build(lock)
			},
		},
		// Scenario 4: function f(){return 1} — the source-map scenario.
		{
			source: "function f(){return 1}",
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				fName := tbl.InternString("f")
				fId := ast.IdentifierTemplate{Range: rng(file, 10, 11), Name: fName}.Build(lock)
				one := ast.NumericLiteralTemplate{Range: rng(file, 21, 22), Value: 1, Raw: tbl.InternString("1")}.Build(lock)
				ret := ast.ReturnStatementTemplate{Range: rng(file, 14, 22), Argument: ast.SomeRef(one)}.Build(lock)
				fnBody := arena.PushBack(lock, ast.NodeList{}, ret)
				block := ast.BlockStatementTemplate{Range: rng(file, 13, 23), Body: fnBody}.Build(lock)
				fnDecl := ast.FunctionDeclarationTemplate{Range: rng(file, 1, 23), Id: fId, Params: ast.NodeList{}, Body: block}.Build(lock)
				body := arena.PushBack(lock, ast.NodeList{}, fnDecl)
				return ast.ProgramTemplate{Range: rng(file, 1, 23), Body: body}.Build(lock)
			},
		},
		// Scenario 6, first half: nested function sees the enclosing var.
		{
			source: "function f(){var x; function g(){ return x; }}",
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				return buildNestedScopeProgram(lock, tbl, false)
			},
		},
		// Scenario 6, second half: a direct eval in f poisons the same use.
		{
			source: "function f(){eval('');var x; function g(){return x;}}",
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				return buildNestedScopeProgram(lock, tbl, true)
			},
		},
		// Doc-block example: exercises Flags.StoreDocBlock / Result.DocBlock.
		{
			source:   "/** doc */ var y = 1;",
			docBlock: docPtr("doc"),
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				yName := tbl.InternString("y")
				yId := ast.IdentifierTemplate{Range: rng(file, 15, 16), Name: yName}.Build(lock)
				one := ast.NumericLiteralTemplate{Range: rng(file, 19, 20), Value: 1, Raw: tbl.InternString("1")}.Build(lock)
				decl := ast.VariableDeclaratorTemplate{Range: rng(file, 15, 20), Id: yId, Init: ast.SomeRef(one)}.Build(lock)
				decls := arena.PushBack(lock, ast.NodeList{}, decl)
				varY := ast.VariableDeclarationTemplate{Range: rng(file, 11, 21), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)
				body := arena.PushBack(lock, ast.NodeList{}, varY)
				return ast.ProgramTemplate{Range: rng(file, 1, 21), Body: body}.Build(lock)
			},
		},
		// Flow annotation example: var x: any = 1; -- exercises
		// --strip-flow's one reachable FlowOrTS child slot, Identifier's
		// optional TypeAnnotation reached through VariableDeclarator.Id.
		{
			source: "var x: any = 1;",
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				xName := tbl.InternString("x")
				anyType := ast.FlowAnyTypeAnnotationTemplate{Range: rng(file, 7, 10)}.Build(lock)
				xId := ast.IdentifierTemplate{Range: rng(file, 5, 10), Name: xName, TypeAnnotation: ast.SomeRef(anyType)}.Build(lock)
				one := ast.NumericLiteralTemplate{Range: rng(file, 14, 15), Value: 1, Raw: tbl.InternString("1")}.Build(lock)
				decl := ast.VariableDeclaratorTemplate{Range: rng(file, 5, 15), Id: xId, Init: ast.SomeRef(one)}.Build(lock)
				decls := arena.PushBack(lock, ast.NodeList{}, decl)
				varDecl := ast.VariableDeclarationTemplate{Range: rng(file, 1, 16), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)
				body := arena.PushBack(lock, ast.NodeList{}, varDecl)
				return ast.ProgramTemplate{Range: rng(file, 1, 16), Body: body}.Build(lock)
			},
		},
		// Magic comment example: exercises Result.MagicComments.
		{
			source: "var z=1;\n//# sourceMappingURL=out.js.map",
			magic:  parseradapter.MagicComments{SourceMappingURL: "out.js.map"},
			build: func(lock *ast.Lock, tbl *atom.Table8, _ *atom.Table16) ast.Ref {
				zName := tbl.InternString("z")
				zId := ast.IdentifierTemplate{Range: rng(file, 5, 6), Name: zName}.Build(lock)
				one := ast.NumericLiteralTemplate{Range: rng(file, 7, 8), Value: 1, Raw: tbl.InternString("1")}.Build(lock)
				decl := ast.VariableDeclaratorTemplate{Range: rng(file, 5, 8), Id: zId, Init: ast.SomeRef(one)}.Build(lock)
				decls := arena.PushBack(lock, ast.NodeList{}, decl)
				varZ := ast.VariableDeclarationTemplate{Range: rng(file, 1, 9), Kind: ast.VarKindVar, Declarations: decls}.Build(lock)
				body := arena.PushBack(lock, ast.NodeList{}, varZ)
				return ast.ProgramTemplate{Range: rng(file, 1, 9), Body: body}.Build(lock)
			},
		},
	}
}

func parseradapterEmptyProgram(lock *ast.Lock, r source.Range) ast.Ref {
	return parseradapter.EmptyProgram(lock, r, false)
}

// buildNestedScopeProgram constructs:
//
//	function f(){ [eval('');]? var x; function g(){ return x; } }
//
// matching resolver_test.go's buildNestedFunctions helper exactly, so the
// fake adapter's fixture and the resolver's own unit test describe the
// same tree shape.
func buildNestedScopeProgram(lock *ast.Lock, tbl *atom.Table8, withEval bool) ast.Ref {
	const file = source.Id(1)
	xName := tbl.InternString("x")
	fName := tbl.InternString("f")
	gName := tbl.InternString("g")

	xDeclId := ast.IdentifierTemplate{Range: rng(file, 1, 1), Name: xName}.Build(lock)
	xDecl := ast.VariableDeclaratorTemplate{Range: rng(file, 1, 1), Id: xDeclId, Init: ast.NoRef}.Build(lock)
	xDecls := arena.PushBack(lock, ast.NodeList{}, xDecl)
	varX := ast.VariableDeclarationTemplate{Range: rng(file, 1, 1), Kind: ast.VarKindVar, Declarations: xDecls}.Build(lock)

	xUse := ast.IdentifierTemplate{Range: rng(file, 1, 1), Name: xName}.Build(lock)
	retStmt := ast.ReturnStatementTemplate{Range: rng(file, 1, 1), Argument: ast.SomeRef(xUse)}.Build(lock)
	gBody := arena.PushBack(lock, ast.NodeList{}, retStmt)
	gBlock := ast.BlockStatementTemplate{Range: rng(file, 1, 1), Body: gBody}.Build(lock)
	gId := ast.IdentifierTemplate{Range: rng(file, 1, 1), Name: gName}.Build(lock)
	gDecl := ast.FunctionDeclarationTemplate{Range: rng(file, 1, 1), Id: gId, Params: ast.NodeList{}, Body: gBlock}.Build(lock)

	fBody := ast.NodeList{}
	if withEval {
		evalName := tbl.InternString("eval")
		evalId := ast.IdentifierTemplate{Range: rng(file, 1, 1), Name: evalName}.Build(lock)
		callEval := ast.CallExpressionTemplate{Range: rng(file, 1, 1), Callee: evalId, Arguments: ast.NodeList{}}.Build(lock)
		evalStmt := ast.ExpressionStatementTemplate{Range: rng(file, 1, 1), Expression: callEval}.Build(lock)
		fBody = arena.PushBack(lock, fBody, evalStmt)
	}
	fBody = arena.PushBack(lock, fBody, varX)
	fBody = arena.PushBack(lock, fBody, gDecl)
	fBlock := ast.BlockStatementTemplate{Range: rng(file, 1, 1), Body: fBody}.Build(lock)
	fId := ast.IdentifierTemplate{Range: rng(file, 1, 1), Name: fName}.Build(lock)
	fDecl := ast.FunctionDeclarationTemplate{Range: rng(file, 1, 1), Id: fId, Params: ast.NodeList{}, Body: fBlock}.Build(lock)

	progBody := arena.PushBack(lock, ast.NodeList{}, fDecl)
	return ast.ProgramTemplate{Range: rng(file, 1, 1), Body: progBody}.Build(lock)
}

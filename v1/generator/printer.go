// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package generator implements the deterministic JS pretty-printer: an
// operator precedence table, a quoting policy, a parenthesization policy
// for the handful of syntactic forms precedence alone cannot disambiguate,
// shortest-round-trip number printing, and optional interleaved
// source-map emission. It consumes the ast node model purely through
// read-only dereferences (arena.Lock, arena.Elems), the same access
// pattern the validator and resolver use, grounded on the flat
// type-switch dispatch idiom of v1/ast/children.go.
package generator

import (
	"strings"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
)

// Options configures one Generate call.
type Options struct {
	// Pretty selects multi-line, indented output; false selects the
	// compact single-line form.
	Pretty bool
	// Quote is the delimiter used for string literals, '"' or '\''.
	// The zero value defaults to '"'.
	Quote byte
	// SourceMap, when true, makes Generate return a populated
	// SourceMapBuilder instead of nil.
	SourceMap bool
}

func (o Options) quote() byte {
	if o.Quote == '\'' {
		return '\''
	}
	return '"'
}

const indentUnit = "  "

type printer struct {
	lock  *ast.Lock
	tbl   *atom.Table8
	tbl16 *atom.Table16
	opts  Options

	buf      strings.Builder
	line     int32
	col      int32
	indent   int
	lastByte byte

	sm *SourceMapBuilder
}

// Generate prints root (which must be a *ast.Program) according to opts,
// returning the source text and, if opts.SourceMap is set, the builder
// holding every token mapping recorded during the pass.
func Generate(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node, opts Options) (string, *SourceMapBuilder) {
	p := &printer{lock: lock, tbl: tbl, tbl16: tbl16, opts: opts}
	if opts.SourceMap {
		p.sm = NewSourceMapBuilder()
	}

	prog, ok := root.(*ast.Program)
	if !ok {
		panic("generator: root is not a Program")
	}
	// printStmtList already terminates every top-level statement with a
	// newline in pretty mode, so Generate itself adds nothing further.
	p.printStmtList(prog.Body, true)
	return p.buf.String(), p.sm
}

// isOpChar reports whether b can appear in a symbolic (non-word)
// operator token. write uses this to detect when two tokens emitted
// back to back would re-lex as one longer operator (e.g. a postfix `-`
// immediately followed by a unary `-` re-lexing as `--`).
func isOpChar(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '&', '|', '^', '?', '~', ':':
		return true
	default:
		return false
	}
}

func (p *printer) write(s string) {
	if len(s) == 0 {
		return
	}
	if isOpChar(p.lastByte) && isOpChar(s[0]) {
		p.buf.WriteByte(' ')
		p.col++
		p.lastByte = ' '
	}
	for _, r := range s {
		if r == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
	}
	p.buf.WriteString(s)
	p.lastByte = s[len(s)-1]
}

// opSep returns the separator printed on either side of a symbolic
// operator: a single space in pretty mode, nothing in compact mode
// (write's adjacency guard still protects against accidental re-lexing
// when compact mode omits it).
func (p *printer) opSep() string {
	if p.opts.Pretty {
		return " "
	}
	return ""
}

func (p *printer) writeIndent() {
	if p.opts.Pretty {
		p.write(strings.Repeat(indentUnit, p.indent))
	}
}

func (p *printer) mark(r source.Range) {
	if p.sm == nil || !r.Valid() {
		return
	}
	p.sm.Add(p.line, p.col, r.Start.Line-1, r.Start.Col-1, r.File)
}

func (p *printer) space() {
	p.write(" ")
}

// comma prints a list separator: "," in compact mode, ", " in pretty
// mode. Every comma-delimited list (arguments, array/object elements,
// declarator lists, import/export specifiers) goes through this so the
// two modes never drift from each other ad hoc.
func (p *printer) comma() {
	p.write(",")
	p.write(p.opSep())
}

func (p *printer) newline() {
	if p.opts.Pretty {
		p.write("\n")
	}
}

// --- top level: statements ------------------------------------------------

// printStmtList prints a NodeList of statements. topLevel controls
// whether each statement gets its own indented line in pretty mode versus
// being separated only by the compact mode's bare concatenation; both
// modes are driven by the same traversal so there is exactly one place
// that decides statement order.
func (p *printer) printStmtList(body ast.NodeList, topLevel bool) {
	refs := arena.Elems(p.lock, body)
	for _, r := range refs {
		n := p.lock.Deref(r)
		p.writeIndent()
		p.printStmt(n)
		if !p.opts.Pretty {
			continue
		}
		p.write("\n")
	}
	_ = topLevel
}

func (p *printer) printStmt(n ast.Node) {
	p.mark(n.Range())
	switch v := n.(type) {
	case *ast.ExpressionStatement:
		expr := p.lock.Deref(v.Expression)
		if startsWithBraceOrFunction(p.lock, expr) {
			p.write("(")
			p.printExpr(expr)
			p.write(")")
		} else {
			p.printExpr(expr)
		}
		p.write(";")

	case *ast.BlockStatement:
		p.printBlock(v.Body)

	case *ast.EmptyStatement:
		p.write(";")

	case *ast.IfStatement:
		p.write("if (")
		p.printExpr(p.lock.Deref(v.Test))
		p.write(") ")
		p.printStmt(p.lock.Deref(v.Consequent))
		if alt, ok := v.Alternate.Get(); ok {
			if p.opts.Pretty {
				p.write(" else ")
			} else {
				p.write("else ")
			}
			p.printStmt(p.lock.Deref(alt))
		}

	case *ast.ForStatement:
		p.write("for (")
		if init, ok := v.Init.Get(); ok {
			p.printForClause(p.lock.Deref(init))
		}
		p.write(";")
		if test, ok := v.Test.Get(); ok {
			p.space()
			p.printExpr(p.lock.Deref(test))
		}
		p.write(";")
		if upd, ok := v.Update.Get(); ok {
			p.space()
			p.printExpr(p.lock.Deref(upd))
		}
		p.write(") ")
		p.printStmt(p.lock.Deref(v.Body))

	case *ast.WhileStatement:
		p.write("while (")
		p.printExpr(p.lock.Deref(v.Test))
		p.write(") ")
		p.printStmt(p.lock.Deref(v.Body))

	case *ast.ReturnStatement:
		p.write("return")
		if arg, ok := v.Argument.Get(); ok {
			p.space()
			p.printExpr(p.lock.Deref(arg))
		}
		p.write(";")

	case *ast.BreakStatement:
		p.write("break")
		if lbl, ok := v.Label.Get(); ok {
			p.space()
			p.write(p.identName(p.lock.Deref(lbl).(*ast.Identifier)))
		}
		p.write(";")

	case *ast.ContinueStatement:
		p.write("continue")
		if lbl, ok := v.Label.Get(); ok {
			p.space()
			p.write(p.identName(p.lock.Deref(lbl).(*ast.Identifier)))
		}
		p.write(";")

	case *ast.VariableDeclaration:
		p.printVariableDeclaration(v)
		p.write(";")

	case *ast.FunctionDeclaration:
		p.printFunctionLike(ast.SomeRef(v.Id), v.Params, v.Body, v.Async, v.Generator, false)

	case *ast.ImportDeclaration:
		p.printImportDeclaration(v)

	case *ast.ExportNamedDeclaration:
		p.printExportNamedDeclaration(v)

	default:
		panic("generator: unhandled statement kind " + n.Variant().String())
	}
}

// printForClause prints a for-statement's init clause, which is either a
// VariableDeclaration (no trailing semicolon — the caller adds it) or a
// bare expression.
func (p *printer) printForClause(n ast.Node) {
	if decl, ok := n.(*ast.VariableDeclaration); ok {
		p.printVariableDeclaration(decl)
		return
	}
	p.printExpr(n)
}

func (p *printer) printVariableDeclaration(v *ast.VariableDeclaration) {
	p.write(v.Kind.String())
	p.space()
	refs := arena.Elems(p.lock, v.Declarations)
	for i, r := range refs {
		if i > 0 {
			p.comma()
		}
		decl := p.lock.Deref(r).(*ast.VariableDeclarator)
		p.printExpr(p.lock.Deref(decl.Id))
		if init, ok := decl.Init.Get(); ok {
			p.write(p.opSep())
			p.write("=")
			p.write(p.opSep())
			p.printOperand(p.lock.Deref(init), argPrec)
		}
	}
}

func (p *printer) printBlock(body ast.NodeList) {
	refs := arena.Elems(p.lock, body)
	if len(refs) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.newline()
	p.indent++
	for _, r := range refs {
		p.writeIndent()
		p.printStmt(p.lock.Deref(r))
		p.newline()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *printer) printImportDeclaration(v *ast.ImportDeclaration) {
	p.write("import")
	if len(v.Specifiers) > 0 {
		p.write(" { ")
		for i, s := range v.Specifiers {
			if i > 0 {
				p.write(", ")
			}
			imported := p.tbl.Lookup(s.Imported)
			local := p.tbl.Lookup(s.Local)
			p.write(imported)
			if local != imported {
				p.write(" as ")
				p.write(local)
			}
		}
		p.write(" }")
		p.space()
		p.write("from")
		p.space()
	} else {
		p.space()
	}
	p.write(p.quoteString(v.Source))
	p.write(";")
}

func (p *printer) printExportNamedDeclaration(v *ast.ExportNamedDeclaration) {
	p.write("export ")
	if decl, ok := v.Declaration.Get(); ok {
		p.printStmt(p.lock.Deref(decl))
		return
	}
	p.write("{ ")
	for i, s := range v.Specifiers {
		if i > 0 {
			p.write(", ")
		}
		local := p.tbl.Lookup(s.Local)
		exported := p.tbl.Lookup(s.Exported)
		p.write(local)
		if exported != local {
			p.write(" as ")
			p.write(exported)
		}
	}
	p.write(" }")
	if v.SourcePresent {
		p.write(" from ")
		p.write(p.quoteString(v.Source))
	}
	p.write(";")
}

func (p *printer) quoteString(a atom.Atom16) string {
	return quoteString16(p.tbl16.Lookup(a), p.opts.quote())
}

func (p *printer) identName(id *ast.Identifier) string {
	return p.tbl.Lookup(id.Name)
}

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/atom"

// VariableDeclaration is `var|let|const declarations...;`.
type VariableDeclaration struct {
	Meta
	Kind         VariableDeclarationKind
	Declarations NodeList // VariableDeclarator children
}

func (*VariableDeclaration) Variant() NodeVariant { return VariantVariableDeclaration }

// VariableDeclarator is one `id [= init]` binding within a
// VariableDeclaration.
type VariableDeclarator struct {
	Meta
	Id   Ref // Pattern
	Init OptRef
}

func (*VariableDeclarator) Variant() NodeVariant { return VariantVariableDeclarator }

// FunctionDeclaration is a top-level or block-scoped `function name(...)
// {...}`.
type FunctionDeclaration struct {
	Meta
	Id        Ref // Identifier
	Params    NodeList
	Body      Ref // BlockStatement
	Async     bool
	Generator bool
}

func (*FunctionDeclaration) Variant() NodeVariant { return VariantFunctionDeclaration }

// ImportSpecifier binds one imported name to a local name.
type ImportSpecifier struct {
	Imported atom.Atom
	Local    atom.Atom
}

// ImportDeclaration is `import { specifiers... } from "source";`.
type ImportDeclaration struct {
	Meta
	Specifiers []ImportSpecifier
	Source     atom.Atom16
	Kind       ImportKind
}

func (*ImportDeclaration) Variant() NodeVariant { return VariantImportDeclaration }

// ExportSpecifier re-exports one local name, optionally under an alias.
type ExportSpecifier struct {
	Local    atom.Atom
	Exported atom.Atom
}

// ExportNamedDeclaration is `export { specifiers... } [from "source"];`
// or `export <declaration>;`.
type ExportNamedDeclaration struct {
	Meta
	Declaration OptRef // Declaration, mutually exclusive with Specifiers
	Specifiers  []ExportSpecifier
	Source      atom.Atom16 // atom.Invalid's zero value if absent; presence tracked by SourcePresent
	SourcePresent bool
	Kind        ExportKind
}

func (*ExportNamedDeclaration) Variant() NodeVariant { return VariantExportNamedDeclaration }

// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package resolver implements scope and declaration analysis: walking a
// validated Program tree to build a SemContext recording every
// declaration, lexical scope, and function, then resolving every
// identifier use to a Decl or to Unresolvable.
package resolver

import "module/v1/atom"

// DeclKind partitions into three ordered groups so is_let_like/is_var_like/
// is_global reduce to a single integer comparison rather than a switch:
// let-like (Let..ES5Catch), function-name (FunctionExprName, ScopedFunction),
// then var-like (Var..UndeclaredGlobalProperty).
type DeclKind uint8

const (
	DeclLet DeclKind = iota
	DeclConst
	DeclClass
	DeclImport
	DeclES5Catch
	DeclFunctionExprName
	DeclScopedFunction
	DeclVar
	DeclParameter
	DeclGlobalProperty
	DeclUndeclaredGlobalProperty
)

func (k DeclKind) String() string {
	switch k {
	case DeclLet:
		return "Let"
	case DeclConst:
		return "Const"
	case DeclClass:
		return "Class"
	case DeclImport:
		return "Import"
	case DeclES5Catch:
		return "ES5Catch"
	case DeclFunctionExprName:
		return "FunctionExprName"
	case DeclScopedFunction:
		return "ScopedFunction"
	case DeclVar:
		return "Var"
	case DeclParameter:
		return "Parameter"
	case DeclGlobalProperty:
		return "GlobalProperty"
	case DeclUndeclaredGlobalProperty:
		return "UndeclaredGlobalProperty"
	default:
		return "DeclKind(?)"
	}
}

// IsLetLike reports whether k is one of Let|Const|Class|Import|ES5Catch.
func (k DeclKind) IsLetLike() bool { return k <= DeclES5Catch }

// IsVarLike reports whether k is one of Var|Parameter|GlobalProperty|
// UndeclaredGlobalProperty.
func (k DeclKind) IsVarLike() bool { return k >= DeclVar }

// IsVarLikeOrScopedFunction additionally includes ScopedFunction, which
// Annex B 3.3 hoists to the function scope the same way a var is.
func (k DeclKind) IsVarLikeOrScopedFunction() bool { return k >= DeclScopedFunction }

// IsGlobal reports whether k only ever arises at global scope.
func (k DeclKind) IsGlobal() bool { return k >= DeclGlobalProperty }

// Special marks a declaration as one of the two magic per-function
// bindings the language materializes rather than a user ever writing a
// declaration for.
type Special uint8

const (
	NotSpecial Special = iota
	Arguments
	Eval
)

// Decl is one declaration: a name bound in some LexicalScope.
type Decl struct {
	Name            atom.Atom
	Kind            DeclKind
	Scope           ScopeID
	Special         Special
	FunctionInScope bool
	CanRename       bool
}

// DeclID indexes SemContext.Decls.
type DeclID int32

// NoDecl is the sentinel "no declaration" id.
const NoDecl DeclID = -1

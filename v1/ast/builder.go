// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// BuildResult is what Builder.Build returns: Go has no tagged-union
// return type, so the original spec's Unchanged/Changed(n) pair collapses
// to a flag plus the resulting reference either way.
type BuildResult struct {
	Changed bool
	Ref     Ref
}

// Unwrap returns the reference regardless of whether anything changed,
// for callers that only want the live node and do not care which.
func (r BuildResult) Unwrap() Ref { return r.Ref }

// Builder is the generic core every per-kind XxxBuilder wraps: it keeps
// the original reference (returned unchanged if no setter ever fires),
// the mutable working copy, and a dirty flag. Concrete builders add
// nothing but named setters over Cur, which keeps the kind-by-kind
// boilerplate to one method per field instead of one whole struct's
// worth of alloc/compare plumbing per kind.
type Builder[T Node] struct {
	orig  Ref
	Cur   T
	dirty bool
}

// NewBuilder seeds a Builder from a reference already resolved to its
// concrete type under lock.
func NewBuilder[T Node](lock *Lock, orig Ref) *Builder[T] {
	cur := lock.Deref(orig).(T)
	return &Builder[T]{orig: orig, Cur: cur}
}

// markDirty is called by every generated setter.
func (b *Builder[T]) markDirty() { b.dirty = true }

// Build allocates Cur into the arena and returns BuildResult only if a
// setter actually changed something; otherwise it returns the original
// reference unchanged, so unmodified subtrees are never needlessly
// re-allocated during a rewrite pass.
func (b *Builder[T]) Build(lock *Lock) BuildResult {
	if !b.dirty {
		return BuildResult{Changed: false, Ref: b.orig}
	}
	return BuildResult{Changed: true, Ref: lock.Alloc(Node(b.Cur))}
}

// BuildForced always allocates Cur, even if nothing changed; used by the
// rewriting visitor for any node on the path from root to a changed leaf,
// which must be rebuilt regardless of whether its *own* direct fields
// changed, since at least one descendant reference did.
func (b *Builder[T]) BuildForced(lock *Lock) Ref {
	return lock.Alloc(Node(b.Cur))
}

// MustDeref resolves ref and asserts it to concrete type T, for callers
// that just built something and want the typed value back rather than
// the bare Node interface.
func MustDeref[T Node](lock *Lock, ref Ref) T {
	return lock.Deref(ref).(T)
}

// --- Per-kind builders -----------------------------------------------------
//
// Each wraps Builder[*Xxx] and adds named setters. Only the kinds
// exercised by the rewriting visitor (rewrite.go) and the demonstration
// driver get hand-written setters here; every other kind can still be
// rebuilt via Builder[*Xxx] directly using Cur's fields, since Cur is
// exported.

type BinaryExpressionBuilder struct{ *Builder[*BinaryExpression] }

func NewBinaryExpressionBuilder(lock *Lock, ref Ref) *BinaryExpressionBuilder {
	b := NewBuilder[*BinaryExpression](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &BinaryExpressionBuilder{b}
}
func (b *BinaryExpressionBuilder) SetLeft(r Ref) *BinaryExpressionBuilder {
	b.Cur.Left = r
	b.markDirty()
	return b
}
func (b *BinaryExpressionBuilder) SetRight(r Ref) *BinaryExpressionBuilder {
	b.Cur.Right = r
	b.markDirty()
	return b
}
func (b *BinaryExpressionBuilder) SetOperator(op BinaryOperator) *BinaryExpressionBuilder {
	b.Cur.Operator = op
	b.markDirty()
	return b
}

type IfStatementBuilder struct{ *Builder[*IfStatement] }

func NewIfStatementBuilder(lock *Lock, ref Ref) *IfStatementBuilder {
	b := NewBuilder[*IfStatement](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &IfStatementBuilder{b}
}
func (b *IfStatementBuilder) SetTest(r Ref) *IfStatementBuilder {
	b.Cur.Test = r
	b.markDirty()
	return b
}
func (b *IfStatementBuilder) SetConsequent(r Ref) *IfStatementBuilder {
	b.Cur.Consequent = r
	b.markDirty()
	return b
}
func (b *IfStatementBuilder) SetAlternate(o OptRef) *IfStatementBuilder {
	b.Cur.Alternate = o
	b.markDirty()
	return b
}

type BlockStatementBuilder struct{ *Builder[*BlockStatement] }

func NewBlockStatementBuilder(lock *Lock, ref Ref) *BlockStatementBuilder {
	b := NewBuilder[*BlockStatement](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &BlockStatementBuilder{b}
}
func (b *BlockStatementBuilder) SetBody(ls NodeList) *BlockStatementBuilder {
	b.Cur.Body = ls
	b.markDirty()
	return b
}

type ProgramBuilder struct{ *Builder[*Program] }

func NewProgramBuilder(lock *Lock, ref Ref) *ProgramBuilder {
	b := NewBuilder[*Program](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &ProgramBuilder{b}
}
func (b *ProgramBuilder) SetBody(ls NodeList) *ProgramBuilder {
	b.Cur.Body = ls
	b.markDirty()
	return b
}

type ExpressionStatementBuilder struct{ *Builder[*ExpressionStatement] }

func NewExpressionStatementBuilder(lock *Lock, ref Ref) *ExpressionStatementBuilder {
	b := NewBuilder[*ExpressionStatement](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &ExpressionStatementBuilder{b}
}
func (b *ExpressionStatementBuilder) SetExpression(r Ref) *ExpressionStatementBuilder {
	b.Cur.Expression = r
	b.markDirty()
	return b
}

type CallExpressionBuilder struct{ *Builder[*CallExpression] }

func NewCallExpressionBuilder(lock *Lock, ref Ref) *CallExpressionBuilder {
	b := NewBuilder[*CallExpression](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &CallExpressionBuilder{b}
}
func (b *CallExpressionBuilder) SetCallee(r Ref) *CallExpressionBuilder {
	b.Cur.Callee = r
	b.markDirty()
	return b
}
func (b *CallExpressionBuilder) SetArguments(ls NodeList) *CallExpressionBuilder {
	b.Cur.Arguments = ls
	b.markDirty()
	return b
}

type VariableDeclarationBuilder struct{ *Builder[*VariableDeclaration] }

func NewVariableDeclarationBuilder(lock *Lock, ref Ref) *VariableDeclarationBuilder {
	b := NewBuilder[*VariableDeclaration](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &VariableDeclarationBuilder{b}
}
func (b *VariableDeclarationBuilder) SetDeclarations(ls NodeList) *VariableDeclarationBuilder {
	b.Cur.Declarations = ls
	b.markDirty()
	return b
}

type VariableDeclaratorBuilder struct{ *Builder[*VariableDeclarator] }

func NewVariableDeclaratorBuilder(lock *Lock, ref Ref) *VariableDeclaratorBuilder {
	b := NewBuilder[*VariableDeclarator](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &VariableDeclaratorBuilder{b}
}
func (b *VariableDeclaratorBuilder) SetId(r Ref) *VariableDeclaratorBuilder {
	b.Cur.Id = r
	b.markDirty()
	return b
}
func (b *VariableDeclaratorBuilder) SetInit(o OptRef) *VariableDeclaratorBuilder {
	b.Cur.Init = o
	b.markDirty()
	return b
}

type IdentifierBuilder struct{ *Builder[*Identifier] }

func NewIdentifierBuilder(lock *Lock, ref Ref) *IdentifierBuilder {
	b := NewBuilder[*Identifier](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &IdentifierBuilder{b}
}
func (b *IdentifierBuilder) SetTypeAnnotation(o OptRef) *IdentifierBuilder {
	b.Cur.TypeAnnotation = o
	b.markDirty()
	return b
}

type ReturnStatementBuilder struct{ *Builder[*ReturnStatement] }

func NewReturnStatementBuilder(lock *Lock, ref Ref) *ReturnStatementBuilder {
	b := NewBuilder[*ReturnStatement](lock, ref)
	cp := *b.Cur
	b.Cur = &cp
	return &ReturnStatementBuilder{b}
}
func (b *ReturnStatementBuilder) SetArgument(o OptRef) *ReturnStatementBuilder {
	b.Cur.Argument = o
	b.markDirty()
	return b
}

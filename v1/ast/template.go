// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"module/v1/atom"
	"module/v1/source"
)

// Templates are the only way to construct a brand-new node (as opposed to
// rebuilding an existing one via a Builder). Every field a caller must
// supply is public and off-arena; Build resolves it into a freshly
// allocated arena.Ref.

type ProgramTemplate struct {
	Range  source.Range
	Body   NodeList
	Module bool
}

func (t ProgramTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&Program{Meta: Meta{t.Range}, Body: t.Body, Module: t.Module}))
}

type NumericLiteralTemplate struct {
	Range source.Range
	Value float64
	Raw   atom.Atom
}

func (t NumericLiteralTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&NumericLiteral{Meta: Meta{t.Range}, Value: t.Value, Raw: t.Raw}))
}

type StringLiteralTemplate struct {
	Range source.Range
	Value atom.Atom16
}

func (t StringLiteralTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&StringLiteral{Meta: Meta{t.Range}, Value: t.Value}))
}

type BooleanLiteralTemplate struct {
	Range source.Range
	Value bool
}

func (t BooleanLiteralTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&BooleanLiteral{Meta: Meta{t.Range}, Value: t.Value}))
}

type NullLiteralTemplate struct{ Range source.Range }

func (t NullLiteralTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&NullLiteral{Meta: Meta{t.Range}}))
}

type RegExpLiteralTemplate struct {
	Range           source.Range
	Pattern, Flags  atom.Atom
}

func (t RegExpLiteralTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&RegExpLiteral{Meta: Meta{t.Range}, Pattern: t.Pattern, Flags: t.Flags}))
}

type TemplateLiteralTemplate struct {
	Range       source.Range
	Quasis      []TemplateElement
	Expressions NodeList
}

func (t TemplateLiteralTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&TemplateLiteral{Meta: Meta{t.Range}, Quasis: t.Quasis, Expressions: t.Expressions}))
}

type IdentifierTemplate struct {
	Range          source.Range
	Name           atom.Atom
	TypeAnnotation OptRef // zero value (NoRef) when absent
}

func (t IdentifierTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&Identifier{Meta: Meta{t.Range}, Name: t.Name, TypeAnnotation: t.TypeAnnotation}))
}

type ObjectPatternTemplate struct {
	Range      source.Range
	Properties NodeList
	Rest       OptRef
}

func (t ObjectPatternTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ObjectPattern{Meta: Meta{t.Range}, Properties: t.Properties, Rest: t.Rest}))
}

type ArrayPatternTemplate struct {
	Range    source.Range
	Elements []OptRef
}

func (t ArrayPatternTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ArrayPattern{Meta: Meta{t.Range}, Elements: t.Elements}))
}

type AssignmentPatternTemplate struct {
	Range       source.Range
	Left, Right Ref
}

func (t AssignmentPatternTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&AssignmentPattern{Meta: Meta{t.Range}, Left: t.Left, Right: t.Right}))
}

type RestElementTemplate struct {
	Range    source.Range
	Argument Ref
}

func (t RestElementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&RestElement{Meta: Meta{t.Range}, Argument: t.Argument}))
}

type BinaryExpressionTemplate struct {
	Range       source.Range
	Operator    BinaryOperator
	Left, Right Ref
}

func (t BinaryExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&BinaryExpression{Meta: Meta{t.Range}, Operator: t.Operator, Left: t.Left, Right: t.Right}))
}

type LogicalExpressionTemplate struct {
	Range       source.Range
	Operator    LogicalOperator
	Left, Right Ref
}

func (t LogicalExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&LogicalExpression{Meta: Meta{t.Range}, Operator: t.Operator, Left: t.Left, Right: t.Right}))
}

type UnaryExpressionTemplate struct {
	Range    source.Range
	Operator UnaryOperator
	Argument Ref
	Prefix   bool
}

func (t UnaryExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&UnaryExpression{Meta: Meta{t.Range}, Operator: t.Operator, Argument: t.Argument, Prefix: t.Prefix}))
}

type UpdateExpressionTemplate struct {
	Range    source.Range
	Operator UpdateOperator
	Argument Ref
	Prefix   bool
}

func (t UpdateExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&UpdateExpression{Meta: Meta{t.Range}, Operator: t.Operator, Argument: t.Argument, Prefix: t.Prefix}))
}

type AssignmentExpressionTemplate struct {
	Range       source.Range
	Operator    AssignmentOperator
	Left, Right Ref
}

func (t AssignmentExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&AssignmentExpression{Meta: Meta{t.Range}, Operator: t.Operator, Left: t.Left, Right: t.Right}))
}

type ConditionalExpressionTemplate struct {
	Range                          source.Range
	Test, Consequent, Alternate Ref
}

func (t ConditionalExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ConditionalExpression{Meta: Meta{t.Range}, Test: t.Test, Consequent: t.Consequent, Alternate: t.Alternate}))
}

type CallExpressionTemplate struct {
	Range     source.Range
	Callee    Ref
	Arguments NodeList
	Optional  bool
}

func (t CallExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&CallExpression{Meta: Meta{t.Range}, Callee: t.Callee, Arguments: t.Arguments, Optional: t.Optional}))
}

type NewExpressionTemplate struct {
	Range     source.Range
	Callee    Ref
	Arguments NodeList
}

func (t NewExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&NewExpression{Meta: Meta{t.Range}, Callee: t.Callee, Arguments: t.Arguments}))
}

type MemberExpressionTemplate struct {
	Range              source.Range
	Object, Property   Ref
	Computed, Optional bool
}

func (t MemberExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&MemberExpression{Meta: Meta{t.Range}, Object: t.Object, Property: t.Property, Computed: t.Computed, Optional: t.Optional}))
}

type ArrayExpressionTemplate struct {
	Range    source.Range
	Elements []OptRef
}

func (t ArrayExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ArrayExpression{Meta: Meta{t.Range}, Elements: t.Elements}))
}

type ObjectExpressionTemplate struct {
	Range      source.Range
	Properties NodeList
}

func (t ObjectExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ObjectExpression{Meta: Meta{t.Range}, Properties: t.Properties}))
}

type PropertyTemplate struct {
	Range               source.Range
	Key, Value          Ref
	Kind                PropertyKind
	Computed, Shorthand bool
}

func (t PropertyTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&Property{Meta: Meta{t.Range}, Key: t.Key, Value: t.Value, Kind: t.Kind, Computed: t.Computed, Shorthand: t.Shorthand}))
}

type FunctionExpressionTemplate struct {
	Range             source.Range
	Id                OptRef
	Params            NodeList
	Body              Ref
	Async, Generator  bool
}

func (t FunctionExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&FunctionExpression{Meta: Meta{t.Range}, Id: t.Id, Params: t.Params, Body: t.Body, Async: t.Async, Generator: t.Generator}))
}

type ArrowFunctionExpressionTemplate struct {
	Range          source.Range
	Params         NodeList
	Body           Ref
	ExpressionBody bool
	Async          bool
}

func (t ArrowFunctionExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ArrowFunctionExpression{Meta: Meta{t.Range}, Params: t.Params, Body: t.Body, ExpressionBody: t.ExpressionBody, Async: t.Async}))
}

type SequenceExpressionTemplate struct {
	Range       source.Range
	Expressions NodeList
}

func (t SequenceExpressionTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&SequenceExpression{Meta: Meta{t.Range}, Expressions: t.Expressions}))
}

type ExpressionStatementTemplate struct {
	Range      source.Range
	Expression Ref
}

func (t ExpressionStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ExpressionStatement{Meta: Meta{t.Range}, Expression: t.Expression}))
}

type BlockStatementTemplate struct {
	Range source.Range
	Body  NodeList
}

func (t BlockStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&BlockStatement{Meta: Meta{t.Range}, Body: t.Body}))
}

type EmptyStatementTemplate struct{ Range source.Range }

func (t EmptyStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&EmptyStatement{Meta: Meta{t.Range}}))
}

type IfStatementTemplate struct {
	Range                      source.Range
	Test, Consequent           Ref
	Alternate                  OptRef
}

func (t IfStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&IfStatement{Meta: Meta{t.Range}, Test: t.Test, Consequent: t.Consequent, Alternate: t.Alternate}))
}

type ForStatementTemplate struct {
	Range                     source.Range
	Init, Test, Update        OptRef
	Body                      Ref
}

func (t ForStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ForStatement{Meta: Meta{t.Range}, Init: t.Init, Test: t.Test, Update: t.Update, Body: t.Body}))
}

type WhileStatementTemplate struct {
	Range      source.Range
	Test, Body Ref
}

func (t WhileStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&WhileStatement{Meta: Meta{t.Range}, Test: t.Test, Body: t.Body}))
}

type ReturnStatementTemplate struct {
	Range    source.Range
	Argument OptRef
}

func (t ReturnStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ReturnStatement{Meta: Meta{t.Range}, Argument: t.Argument}))
}

type BreakStatementTemplate struct {
	Range source.Range
	Label OptRef
}

func (t BreakStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&BreakStatement{Meta: Meta{t.Range}, Label: t.Label}))
}

type ContinueStatementTemplate struct {
	Range source.Range
	Label OptRef
}

func (t ContinueStatementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ContinueStatement{Meta: Meta{t.Range}, Label: t.Label}))
}

type VariableDeclarationTemplate struct {
	Range        source.Range
	Kind         VariableDeclarationKind
	Declarations NodeList
}

func (t VariableDeclarationTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&VariableDeclaration{Meta: Meta{t.Range}, Kind: t.Kind, Declarations: t.Declarations}))
}

type VariableDeclaratorTemplate struct {
	Range source.Range
	Id    Ref
	Init  OptRef
}

func (t VariableDeclaratorTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&VariableDeclarator{Meta: Meta{t.Range}, Id: t.Id, Init: t.Init}))
}

type FunctionDeclarationTemplate struct {
	Range            source.Range
	Id               Ref
	Params           NodeList
	Body             Ref
	Async, Generator bool
}

func (t FunctionDeclarationTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&FunctionDeclaration{Meta: Meta{t.Range}, Id: t.Id, Params: t.Params, Body: t.Body, Async: t.Async, Generator: t.Generator}))
}

type ImportDeclarationTemplate struct {
	Range      source.Range
	Specifiers []ImportSpecifier
	Source     atom.Atom16
	Kind       ImportKind
}

func (t ImportDeclarationTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ImportDeclaration{Meta: Meta{t.Range}, Specifiers: t.Specifiers, Source: t.Source, Kind: t.Kind}))
}

type ExportNamedDeclarationTemplate struct {
	Range         source.Range
	Declaration   OptRef
	Specifiers    []ExportSpecifier
	Source        atom.Atom16
	SourcePresent bool
	Kind          ExportKind
}

func (t ExportNamedDeclarationTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&ExportNamedDeclaration{
		Meta: Meta{t.Range}, Declaration: t.Declaration, Specifiers: t.Specifiers,
		Source: t.Source, SourcePresent: t.SourcePresent, Kind: t.Kind,
	}))
}

type JSXIdentifierTemplate struct {
	Range source.Range
	Name  atom.Atom
}

func (t JSXIdentifierTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&JSXIdentifier{Meta: Meta{t.Range}, Name: t.Name}))
}

type JSXElementTemplate struct {
	Range       source.Range
	Name        Ref
	Attributes  []JSXAttribute
	Children    NodeList
	SelfClosing bool
}

func (t JSXElementTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&JSXElement{
		Meta: Meta{t.Range}, Name: t.Name, Attributes: t.Attributes,
		Children: t.Children, SelfClosing: t.SelfClosing,
	}))
}

type TSTypeAnnotationTemplate struct {
	Range    source.Range
	TypeName atom.Atom
}

func (t TSTypeAnnotationTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&TSTypeAnnotation{Meta: Meta{t.Range}, TypeName: t.TypeName}))
}

type FlowAnyTypeAnnotationTemplate struct{ Range source.Range }

func (t FlowAnyTypeAnnotationTemplate) Build(lock *Lock) Ref {
	return lock.Alloc(Node(&FlowAnyTypeAnnotation{Meta: Meta{t.Range}}))
}

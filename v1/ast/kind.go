// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

// NodeVariant is the closed tag identifying a node's concrete Go type.
// Unlike a Rust enum discriminant, this is just an integer used for fast
// switch dispatch (VisitChildren, the validator's slot table, the dumper's
// "type" field) and is never itself part of any node's public API beyond
// Node.Variant().
type NodeVariant uint16

const (
	VariantInvalid NodeVariant = iota

	// Program
	VariantProgram

	// Literals
	VariantNumericLiteral
	VariantStringLiteral
	VariantBooleanLiteral
	VariantNullLiteral
	VariantRegExpLiteral
	VariantTemplateLiteral

	// Identifiers / patterns
	VariantIdentifier
	VariantObjectPattern
	VariantArrayPattern
	VariantAssignmentPattern
	VariantRestElement

	// Expressions
	VariantBinaryExpression
	VariantLogicalExpression
	VariantUnaryExpression
	VariantUpdateExpression
	VariantAssignmentExpression
	VariantConditionalExpression
	VariantCallExpression
	VariantNewExpression
	VariantMemberExpression
	VariantArrayExpression
	VariantObjectExpression
	VariantProperty
	VariantFunctionExpression
	VariantArrowFunctionExpression
	VariantSequenceExpression

	// Statements
	VariantExpressionStatement
	VariantBlockStatement
	VariantEmptyStatement
	VariantIfStatement
	VariantForStatement
	VariantWhileStatement
	VariantReturnStatement
	VariantBreakStatement
	VariantContinueStatement

	// Declarations
	VariantVariableDeclaration
	VariantVariableDeclarator
	VariantFunctionDeclaration
	VariantImportDeclaration
	VariantExportNamedDeclaration

	// JSX
	VariantJSXIdentifier
	VariantJSXElement

	// Flow / TS type annotations
	VariantTSTypeAnnotation
	VariantFlowAnyTypeAnnotation

	numVariants
)

func (v NodeVariant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return "Invalid"
}

var variantNames = map[NodeVariant]string{
	VariantProgram:                 "Program",
	VariantNumericLiteral:          "NumericLiteral",
	VariantStringLiteral:           "StringLiteral",
	VariantBooleanLiteral:          "BooleanLiteral",
	VariantNullLiteral:             "NullLiteral",
	VariantRegExpLiteral:           "RegExpLiteral",
	VariantTemplateLiteral:         "TemplateLiteral",
	VariantIdentifier:              "Identifier",
	VariantObjectPattern:           "ObjectPattern",
	VariantArrayPattern:            "ArrayPattern",
	VariantAssignmentPattern:       "AssignmentPattern",
	VariantRestElement:             "RestElement",
	VariantBinaryExpression:        "BinaryExpression",
	VariantLogicalExpression:       "LogicalExpression",
	VariantUnaryExpression:         "UnaryExpression",
	VariantUpdateExpression:        "UpdateExpression",
	VariantAssignmentExpression:    "AssignmentExpression",
	VariantConditionalExpression:   "ConditionalExpression",
	VariantCallExpression:          "CallExpression",
	VariantNewExpression:           "NewExpression",
	VariantMemberExpression:        "MemberExpression",
	VariantArrayExpression:         "ArrayExpression",
	VariantObjectExpression:        "ObjectExpression",
	VariantProperty:                "Property",
	VariantFunctionExpression:      "FunctionExpression",
	VariantArrowFunctionExpression: "ArrowFunctionExpression",
	VariantSequenceExpression:      "SequenceExpression",
	VariantExpressionStatement:     "ExpressionStatement",
	VariantBlockStatement:          "BlockStatement",
	VariantEmptyStatement:          "EmptyStatement",
	VariantIfStatement:             "IfStatement",
	VariantForStatement:            "ForStatement",
	VariantWhileStatement:          "WhileStatement",
	VariantReturnStatement:         "ReturnStatement",
	VariantBreakStatement:          "BreakStatement",
	VariantContinueStatement:       "ContinueStatement",
	VariantVariableDeclaration:     "VariableDeclaration",
	VariantVariableDeclarator:      "VariableDeclarator",
	VariantFunctionDeclaration:     "FunctionDeclaration",
	VariantImportDeclaration:       "ImportDeclaration",
	VariantExportNamedDeclaration:  "ExportNamedDeclaration",
	VariantJSXIdentifier:           "JSXIdentifier",
	VariantJSXElement:              "JSXElement",
	VariantTSTypeAnnotation:        "TSTypeAnnotation",
	VariantFlowAnyTypeAnnotation:   "FlowAnyTypeAnnotation",
}

// Abstraction is one node of the validator's is-a graph: a category a
// concrete NodeVariant may belong to, such as "every Expression" or
// "every LVal". Abstractions themselves can be members of broader
// abstractions (Pattern is-a LVal), forming the parent chain Parent()
// walks.
type Abstraction string

const (
	AbstractionExpression  Abstraction = "Expression"
	AbstractionStatement   Abstraction = "Statement"
	AbstractionPattern     Abstraction = "Pattern"
	AbstractionLVal        Abstraction = "LVal"
	AbstractionDeclaration Abstraction = "Declaration"
	AbstractionLiteral     Abstraction = "Literal"
	AbstractionJSX         Abstraction = "JSX"
	AbstractionFlowOrTS    Abstraction = "FlowOrTS"
)

// directAbstractions lists, for each concrete variant, the abstractions it
// is a *direct* member of; ParentAbstractions below computes the
// transitive closure (e.g. every Literal is also an Expression).
var directAbstractions = map[NodeVariant][]Abstraction{
	VariantNumericLiteral:          {AbstractionLiteral},
	VariantStringLiteral:           {AbstractionLiteral},
	VariantBooleanLiteral:          {AbstractionLiteral},
	VariantNullLiteral:             {AbstractionLiteral},
	VariantRegExpLiteral:           {AbstractionLiteral},
	VariantTemplateLiteral:         {AbstractionLiteral},
	VariantIdentifier:              {AbstractionExpression, AbstractionPattern, AbstractionLVal},
	VariantObjectPattern:           {AbstractionPattern, AbstractionLVal},
	VariantArrayPattern:            {AbstractionPattern, AbstractionLVal},
	VariantAssignmentPattern:       {AbstractionPattern},
	VariantRestElement:             {AbstractionPattern},
	VariantBinaryExpression:        {AbstractionExpression},
	VariantLogicalExpression:       {AbstractionExpression},
	VariantUnaryExpression:         {AbstractionExpression},
	VariantUpdateExpression:        {AbstractionExpression},
	VariantAssignmentExpression:    {AbstractionExpression},
	VariantConditionalExpression:   {AbstractionExpression},
	VariantCallExpression:          {AbstractionExpression},
	VariantNewExpression:           {AbstractionExpression},
	VariantMemberExpression:        {AbstractionExpression, AbstractionLVal},
	VariantArrayExpression:         {AbstractionExpression},
	VariantObjectExpression:        {AbstractionExpression},
	VariantFunctionExpression:      {AbstractionExpression},
	VariantArrowFunctionExpression: {AbstractionExpression},
	VariantSequenceExpression:      {AbstractionExpression},
	VariantExpressionStatement:     {AbstractionStatement},
	VariantBlockStatement:          {AbstractionStatement},
	VariantEmptyStatement:          {AbstractionStatement},
	VariantIfStatement:             {AbstractionStatement},
	VariantForStatement:            {AbstractionStatement},
	VariantWhileStatement:          {AbstractionStatement},
	VariantReturnStatement:         {AbstractionStatement},
	VariantBreakStatement:          {AbstractionStatement},
	VariantContinueStatement:       {AbstractionStatement},
	VariantVariableDeclaration:     {AbstractionDeclaration, AbstractionStatement},
	VariantFunctionDeclaration:     {AbstractionDeclaration, AbstractionStatement},
	VariantImportDeclaration:       {AbstractionDeclaration, AbstractionStatement},
	VariantExportNamedDeclaration:  {AbstractionDeclaration, AbstractionStatement},
	VariantJSXIdentifier:           {AbstractionJSX},
	VariantJSXElement:              {AbstractionJSX, AbstractionExpression},
	VariantTSTypeAnnotation:        {AbstractionFlowOrTS},
	VariantFlowAnyTypeAnnotation:   {AbstractionFlowOrTS},
}

// Abstractions returns every abstraction variant belongs to.
func (v NodeVariant) Abstractions() []Abstraction {
	return directAbstractions[v]
}

// IsA reports whether variant belongs to (directly or not — there is no
// further indirection above these single-level abstractions today, but
// the lookup is expressed as a set membership check so adding a deeper
// abstraction hierarchy later does not change call sites) abstraction.
func (v NodeVariant) IsA(a Abstraction) bool {
	for _, got := range directAbstractions[v] {
		if got == a {
			return true
		}
	}
	return false
}

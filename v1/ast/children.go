// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/arena"

// forEachChild enumerates every direct child slot of n, in the
// deterministic left-to-right field order the visitor and builder both
// rely on. It is the single source of truth for "what are n's children",
// grounded on the flat switch-dispatch idiom of
// google/gapid's ast visitor (see DESIGN.md): every consumer that needs to
// know a node's shape (GC marking, the read-only/rewriting visitors, the
// validator's generic child walk) is built on top of this one switch
// instead of re-deriving it.
func forEachChild(n Node, onRef func(NodeField, Ref), onList func(NodeField, NodeList)) {
	switch v := n.(type) {
	case *Program:
		onList(FieldBody, v.Body)

	case *NumericLiteral, *StringLiteral, *BooleanLiteral, *NullLiteral, *RegExpLiteral,
		*JSXIdentifier, *TSTypeAnnotation, *FlowAnyTypeAnnotation, *EmptyStatement:
		// leaf nodes: no children

	case *Identifier:
		if r, ok := v.TypeAnnotation.Get(); ok {
			onRef(FieldTypeAnnotation, r)
		}

	case *TemplateLiteral:
		onList(FieldExpressions, v.Expressions)

	case *ObjectPattern:
		onList(FieldProperties, v.Properties)
		if r, ok := v.Rest.Get(); ok {
			onRef(FieldProperty, r)
		}

	case *ArrayPattern:
		for _, e := range v.Elements {
			if r, ok := e.Get(); ok {
				onRef(FieldElements, r)
			}
		}

	case *AssignmentPattern:
		onRef(FieldLeft, v.Left)
		onRef(FieldRight, v.Right)

	case *RestElement:
		onRef(FieldArgument, v.Argument)

	case *BinaryExpression:
		onRef(FieldLeft, v.Left)
		onRef(FieldRight, v.Right)

	case *LogicalExpression:
		onRef(FieldLeft, v.Left)
		onRef(FieldRight, v.Right)

	case *UnaryExpression:
		onRef(FieldArgument, v.Argument)

	case *UpdateExpression:
		onRef(FieldArgument, v.Argument)

	case *AssignmentExpression:
		onRef(FieldLeft, v.Left)
		onRef(FieldRight, v.Right)

	case *ConditionalExpression:
		onRef(FieldTest, v.Test)
		onRef(FieldConsequent, v.Consequent)
		onRef(FieldAlternate, v.Alternate)

	case *CallExpression:
		onRef(FieldCallee, v.Callee)
		onList(FieldArguments, v.Arguments)

	case *NewExpression:
		onRef(FieldCallee, v.Callee)
		onList(FieldArguments, v.Arguments)

	case *MemberExpression:
		onRef(FieldObject, v.Object)
		onRef(FieldProperty, v.Property)

	case *ArrayExpression:
		for _, e := range v.Elements {
			if r, ok := e.Get(); ok {
				onRef(FieldElements, r)
			}
		}

	case *ObjectExpression:
		onList(FieldProperties, v.Properties)

	case *Property:
		onRef(FieldKey, v.Key)
		onRef(FieldValue, v.Value)

	case *FunctionExpression:
		if r, ok := v.Id.Get(); ok {
			onRef(FieldId, r)
		}
		onList(FieldParams, v.Params)
		onRef(FieldBody, v.Body)

	case *ArrowFunctionExpression:
		onList(FieldParams, v.Params)
		onRef(FieldBody, v.Body)

	case *SequenceExpression:
		onList(FieldExpressions, v.Expressions)

	case *ExpressionStatement:
		onRef(FieldExpression, v.Expression)

	case *BlockStatement:
		onList(FieldBody, v.Body)

	case *IfStatement:
		onRef(FieldTest, v.Test)
		onRef(FieldConsequent, v.Consequent)
		if r, ok := v.Alternate.Get(); ok {
			onRef(FieldAlternate, r)
		}

	case *ForStatement:
		if r, ok := v.Init.Get(); ok {
			onRef(FieldInit, r)
		}
		if r, ok := v.Test.Get(); ok {
			onRef(FieldTest, r)
		}
		if r, ok := v.Update.Get(); ok {
			onRef(FieldUpdate, r)
		}
		onRef(FieldBody, v.Body)

	case *WhileStatement:
		onRef(FieldTest, v.Test)
		onRef(FieldBody, v.Body)

	case *ReturnStatement:
		if r, ok := v.Argument.Get(); ok {
			onRef(FieldArgument, r)
		}

	case *BreakStatement:
		if r, ok := v.Label.Get(); ok {
			onRef(FieldId, r)
		}

	case *ContinueStatement:
		if r, ok := v.Label.Get(); ok {
			onRef(FieldId, r)
		}

	case *VariableDeclaration:
		onList(FieldDeclarations, v.Declarations)

	case *VariableDeclarator:
		onRef(FieldId, v.Id)
		if r, ok := v.Init.Get(); ok {
			onRef(FieldInit, r)
		}

	case *FunctionDeclaration:
		onRef(FieldId, v.Id)
		onList(FieldParams, v.Params)
		onRef(FieldBody, v.Body)

	case *ImportDeclaration:
		// ImportSpecifier holds only atoms, no child node refs.

	case *ExportNamedDeclaration:
		if r, ok := v.Declaration.Get(); ok {
			onRef(FieldDeclarations, r)
		}

	case *JSXElement:
		onRef(FieldId, v.Name)
		for _, attr := range v.Attributes {
			if r, ok := attr.Value.Get(); ok {
				onRef(FieldProperty, r)
			}
		}
		onList(FieldBody, v.Children)

	default:
		panic("ast: forEachChild: unhandled node kind")
	}
}

// walkForGC adapts forEachChild to the shape arena.Arena[Node].GC expects.
func walkForGC(n Node, visitRef func(arena.Ref), visitList func(arena.List)) {
	forEachChild(n, func(_ NodeField, r Ref) { visitRef(r) }, func(_ NodeField, l NodeList) { visitList(l) })
}

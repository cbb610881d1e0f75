// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package dump

import (
	"module/v1/ast"
	"module/v1/atom"
)

// node renders one AST node (and, transitively, every descendant reached
// through its Ref/NodeList fields) to an obj. Every case supplies "type"
// (the node's NodeVariant name, already PascalCase) and "range" first,
// then the node's own fields in the same left-to-right order
// v1/ast/children.go's forEachChild visits them, so a reader comparing
// a dump against the grammar comment on each node type finds fields in
// the order they were declared.
func (d *dumper) node(n ast.Node) obj {
	head := obj{
		{"type", n.Variant().String()},
		{"range", d.rangeJSON(n.Range())},
	}

	switch v := n.(type) {
	case *ast.Program:
		return append(head, field{"body", d.list(v.Body)}, field{"sourceType", sourceTypeString(v.Module)})

	case *ast.NumericLiteral:
		return append(head, field{"value", numberJSON(v.Value)}, field{"raw", d.atomStr(v.Raw)})

	case *ast.StringLiteral:
		return append(head, field{"value", d.str16(v.Value)})

	case *ast.BooleanLiteral:
		return append(head, field{"value", v.Value})

	case *ast.NullLiteral:
		return head

	case *ast.RegExpLiteral:
		return append(head, field{"pattern", d.atomStr(v.Pattern)}, field{"flags", d.atomStr(v.Flags)})

	case *ast.TemplateLiteral:
		quasis := make([]any, len(v.Quasis))
		for i, q := range v.Quasis {
			quasis[i] = d.templateElement(q)
		}
		return append(head, field{"quasis", quasis}, field{"expressions", d.list(v.Expressions)})

	case *ast.Identifier:
		return append(head, field{"name", d.atomStr(v.Name)})

	case *ast.ObjectPattern:
		return append(head, field{"properties", d.list(v.Properties)}, field{"rest", d.optRef(v.Rest)})

	case *ast.ArrayPattern:
		return append(head, field{"elements", d.elements(v.Elements)})

	case *ast.AssignmentPattern:
		return append(head, field{"left", d.ref(v.Left)}, field{"right", d.ref(v.Right)})

	case *ast.RestElement:
		return append(head, field{"argument", d.ref(v.Argument)})

	case *ast.BinaryExpression:
		return append(head, field{"operator", v.Operator.String()}, field{"left", d.ref(v.Left)}, field{"right", d.ref(v.Right)})

	case *ast.LogicalExpression:
		return append(head, field{"operator", v.Operator.String()}, field{"left", d.ref(v.Left)}, field{"right", d.ref(v.Right)})

	case *ast.UnaryExpression:
		return append(head, field{"operator", v.Operator.String()}, field{"argument", d.ref(v.Argument)}, field{"prefix", v.Prefix})

	case *ast.UpdateExpression:
		return append(head, field{"operator", v.Operator.String()}, field{"argument", d.ref(v.Argument)}, field{"prefix", v.Prefix})

	case *ast.AssignmentExpression:
		return append(head, field{"operator", v.Operator.String()}, field{"left", d.ref(v.Left)}, field{"right", d.ref(v.Right)})

	case *ast.ConditionalExpression:
		return append(head, field{"test", d.ref(v.Test)}, field{"consequent", d.ref(v.Consequent)}, field{"alternate", d.ref(v.Alternate)})

	case *ast.CallExpression:
		return append(head, field{"callee", d.ref(v.Callee)}, field{"arguments", d.list(v.Arguments)}, field{"optional", v.Optional})

	case *ast.NewExpression:
		return append(head, field{"callee", d.ref(v.Callee)}, field{"arguments", d.list(v.Arguments)})

	case *ast.MemberExpression:
		return append(head, field{"object", d.ref(v.Object)}, field{"property", d.ref(v.Property)},
			field{"computed", v.Computed}, field{"optional", v.Optional})

	case *ast.ArrayExpression:
		return append(head, field{"elements", d.elements(v.Elements)})

	case *ast.ObjectExpression:
		return append(head, field{"properties", d.list(v.Properties)})

	case *ast.Property:
		return append(head, field{"key", d.ref(v.Key)}, field{"value", d.ref(v.Value)},
			field{"kind", propKindString(v.Kind)}, field{"computed", v.Computed}, field{"shorthand", v.Shorthand})

	case *ast.FunctionExpression:
		return append(head, field{"id", d.optRef(v.Id)}, field{"params", d.list(v.Params)},
			field{"body", d.ref(v.Body)}, field{"async", v.Async}, field{"generator", v.Generator})

	case *ast.ArrowFunctionExpression:
		return append(head, field{"params", d.list(v.Params)}, field{"body", d.ref(v.Body)},
			field{"expressionBody", v.ExpressionBody}, field{"async", v.Async})

	case *ast.SequenceExpression:
		return append(head, field{"expressions", d.list(v.Expressions)})

	case *ast.ExpressionStatement:
		return append(head, field{"expression", d.ref(v.Expression)})

	case *ast.BlockStatement:
		return append(head, field{"body", d.list(v.Body)})

	case *ast.EmptyStatement:
		return head

	case *ast.IfStatement:
		return append(head, field{"test", d.ref(v.Test)}, field{"consequent", d.ref(v.Consequent)}, field{"alternate", d.optRef(v.Alternate)})

	case *ast.ForStatement:
		return append(head, field{"init", d.optRef(v.Init)}, field{"test", d.optRef(v.Test)},
			field{"update", d.optRef(v.Update)}, field{"body", d.ref(v.Body)})

	case *ast.WhileStatement:
		return append(head, field{"test", d.ref(v.Test)}, field{"body", d.ref(v.Body)})

	case *ast.ReturnStatement:
		return append(head, field{"argument", d.optRef(v.Argument)})

	case *ast.BreakStatement:
		return append(head, field{"label", d.optRef(v.Label)})

	case *ast.ContinueStatement:
		return append(head, field{"label", d.optRef(v.Label)})

	case *ast.VariableDeclaration:
		return append(head, field{"kind", v.Kind.String()}, field{"declarations", d.list(v.Declarations)})

	case *ast.VariableDeclarator:
		return append(head, field{"id", d.ref(v.Id)}, field{"init", d.optRef(v.Init)})

	case *ast.FunctionDeclaration:
		return append(head, field{"id", d.ref(v.Id)}, field{"params", d.list(v.Params)},
			field{"body", d.ref(v.Body)}, field{"async", v.Async}, field{"generator", v.Generator})

	case *ast.ImportDeclaration:
		specs := make([]any, len(v.Specifiers))
		for i, s := range v.Specifiers {
			specs[i] = obj{
				{"type", "ImportSpecifier"},
				{"imported", d.atomStr(s.Imported)},
				{"local", d.atomStr(s.Local)},
			}
		}
		return append(head, field{"specifiers", specs}, field{"source", d.str16(v.Source)}, field{"kind", importKindString(v.Kind)})

	case *ast.ExportNamedDeclaration:
		specs := make([]any, len(v.Specifiers))
		for i, s := range v.Specifiers {
			specs[i] = obj{
				{"type", "ExportSpecifier"},
				{"local", d.atomStr(s.Local)},
				{"exported", d.atomStr(s.Exported)},
			}
		}
		var src any
		if v.SourcePresent {
			src = d.str16(v.Source)
		}
		return append(head, field{"declaration", d.optRef(v.Declaration)}, field{"specifiers", specs},
			field{"source", src}, field{"kind", exportKindString(v.Kind)})

	case *ast.JSXIdentifier:
		return append(head, field{"name", d.atomStr(v.Name)})

	case *ast.JSXElement:
		attrs := make([]any, len(v.Attributes))
		for i, a := range v.Attributes {
			attrs[i] = obj{
				{"type", "JSXAttribute"},
				{"name", d.atomStr(a.Name)},
				{"value", d.optRef(a.Value)},
			}
		}
		return append(head, field{"name", d.ref(v.Name)}, field{"attributes", attrs},
			field{"children", d.list(v.Children)}, field{"selfClosing", v.SelfClosing})

	case *ast.TSTypeAnnotation:
		return append(head, field{"typeName", d.atomStr(v.TypeName)})

	case *ast.FlowAnyTypeAnnotation:
		return head

	default:
		panic("dump: unhandled node kind " + n.Variant().String())
	}
}

func (d *dumper) templateElement(e ast.TemplateElement) obj {
	o := obj{
		{"type", "TemplateElement"},
		{"raw", d.str16(e.Raw)},
		{"tail", e.Tail},
	}
	if e.Cooked == atom.Invalid {
		o = append(o, field{"cooked", nil})
	} else {
		o = append(o, field{"cooked", d.str16(e.Cooked)})
	}
	return o
}

func sourceTypeString(module bool) string {
	if module {
		return "module"
	}
	return "script"
}

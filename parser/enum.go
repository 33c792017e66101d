/*
File    : langc/parser/enum.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/exprcore"
	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/typeexpr"
)

// parseEnum parses either the single-item form `enum name [: type] = expr;`
// or the block form `enum name [: type] { member = expr; … }`.
func parseEnum(ctx *Context, mod *ast.Module, node *group.TokenNode, c *cursor) {
	stmt := node.Statement
	if len(stmt) < 2 || !stmt[0].Is("enum") {
		ctx.Diags.Emit(ctx.Source, lineOfStmt(stmt), "expected 'enum' declaration")
		return
	}
	line := stmt[0].Line
	attrs := ctx.takeAttributes()

	nameTok := stmt[1]
	if !validIdentifier(nameTok.Text) {
		ctx.Diags.Emit(ctx.Source, nameTok.Line, "invalid identifier %q in enum declaration", nameTok.Text)
		return
	}
	rest := stmt[2:]
	if len(rest) > 0 && rest[0].Is(":") {
		rest = rest[1:]
	}

	eqIdx := splitOnTopLevel(rest, "=")
	enum := ast.Enum{Name: nameTok.Text, Attributes: attrs, Line: line}

	if eqIdx >= 0 {
		typeTokens := rest[:eqIdx]
		exprTokens := rest[eqIdx+1:]
		if len(typeTokens) > 0 {
			typeInfo, tok := typeexpr.Parse(typeTokens, ctx.Source, ctx.Diags)
			if !tok {
				return
			}
			enum.Type = typeInfo
		}
		if len(exprTokens) == 0 {
			ctx.Diags.Emit(ctx.Source, line, "missing initializer expression in enum declaration")
			return
		}
		expr, eok := exprcore.Parse(exprTokens, ctx.Source, ctx.Diags)
		if !eok {
			return
		}
		enum.Expr = expr
		mod.Enums = append(mod.Enums, enum)
		return
	}

	if len(rest) > 0 {
		typeInfo, tok := typeexpr.Parse(rest, ctx.Source, ctx.Diags)
		if !tok {
			return
		}
		enum.Type = typeInfo
	}

	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "expected '=' or a block body in enum declaration")
		return
	}
	enum.IsBlock = true
	for _, memberNode := range body {
		if len(memberNode.Statement) == 0 {
			continue
		}
		member := parseVariableTokens(ctx, memberNode.Statement, memberNode.Statement[0].Line, nil)
		if member != nil {
			enum.Members = append(enum.Members, *member)
		}
	}
	mod.Enums = append(mod.Enums, enum)
}

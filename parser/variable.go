/*
File    : langc/parser/variable.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/exprcore"
	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/lexer"
)

// parseVariable parses `var [type] name [= expr] ;` (node.Statement
// excludes the trailing `;`, already dropped by the grouper). Used for
// module-level and scope-level variable declarations.
func parseVariable(ctx *Context, node *group.TokenNode) *ast.Variable {
	stmt := node.Statement
	if len(stmt) < 2 || !stmt[0].Is("var") {
		ctx.Diags.Emit(ctx.Source, lineOfStmt(stmt), "expected 'var' declaration")
		return nil
	}
	return parseVariableTokens(ctx, stmt[1:], stmt[0].Line, ctx.takeAttributes())
}

// parseVariableTokens parses the `[type] name [= expr]` tail of a variable
// declaration (the `var` keyword already stripped).
func parseVariableTokens(ctx *Context, tokens []lexer.Lexeme, line int, attrs []ast.Attribute) *ast.Variable {
	eqIdx := splitOnTopLevel(tokens, "=")
	declTokens := tokens
	var exprTokens []lexer.Lexeme
	hasExpr := false
	if eqIdx >= 0 {
		declTokens = tokens[:eqIdx]
		exprTokens = tokens[eqIdx+1:]
		hasExpr = true
	}

	typeInfo, name, ok := parseTypedName(ctx, declTokens, line)
	if !ok {
		return nil
	}

	v := &ast.Variable{Type: typeInfo, Name: name, Attributes: attrs, Line: line}

	if hasExpr {
		if len(exprTokens) == 0 {
			ctx.Diags.Emit(ctx.Source, line, "missing initializer expression after '='")
			return nil
		}
		expr, eok := exprcore.Parse(exprTokens, ctx.Source, ctx.Diags)
		if !eok {
			return nil
		}
		v.Expr = expr
	}
	return v
}

func lineOfStmt(stmt []lexer.Lexeme) int {
	if len(stmt) == 0 {
		return 0
	}
	return stmt[0].Line
}

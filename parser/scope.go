/*
File    : langc/parser/scope.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

The Scope parser (spec.md §4.H): walks a brace-delimited body's children,
classifying each and dispatching to the matching declaration or control-flow
parser. Pluggable scope-state handlers (package scopehandler) legitimize
`break`/`continue` only inside bodies that installed the corresponding
handler.
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/classify"
	"github.com/akashmaji946/langc/exprcore"
	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/lexer"
)

// parseScopeBody parses the statement/block children of one brace-delimited
// body into an ordered ScopeItem list.
func parseScopeBody(ctx *Context, nodes []*group.TokenNode) []ast.ScopeItem {
	c := newCursor(nodes)
	var items []ast.ScopeItem

	for !c.done() {
		node := c.advance()

		if len(node.Statement) == 0 && len(node.Children) > 0 && !node.IsBlock() {
			// A degenerate empty node the grouper never actually produces;
			// defensive skip.
			continue
		}

		if node.IsBlock() {
			items = append(items, ast.ScopeItem{Kind: ast.ItemScope, Scope: parseScopeBody(ctx, node.Body()), Line: blockLine(node)})
			continue
		}

		stmt := node.Statement
		if len(stmt) == 0 {
			continue
		}
		line := stmt[0].Line
		tag := classify.Classify(stmt)

		switch tag {
		case classify.EMPTY:
			continue

		case classify.ATTRIBUTE:
			parseAttribute(ctx, node)
			continue

		case classify.VARIABLE:
			v := parseVariable(ctx, node)
			if v != nil {
				items = append(items, ast.ScopeItem{Kind: ast.ItemVariable, Variable: v, Line: line})
			}
			continue

		case classify.RETURN:
			items = append(items, parseReturn(ctx, stmt))
			continue

		case classify.BREAK:
			if !ctx.handlers.Active("break") {
				ctx.Diags.Emit(ctx.Source, line, "'break' is not legal outside a loop or switch body")
			}
			items = append(items, ast.ScopeItem{Kind: ast.ItemBreak, State: ast.StateBreak, Line: line})
			continue

		case classify.CONTINUE:
			if !ctx.handlers.Active("continue") {
				ctx.Diags.Emit(ctx.Source, line, "'continue' is not legal outside a loop body")
			}
			items = append(items, ast.ScopeItem{Kind: ast.ItemContinue, State: ast.StateContinue, Line: line})
			continue

		case classify.IF:
			items = append(items, ast.ScopeItem{Kind: ast.ItemIf, If: parseIf(ctx, stmt, c), Line: line})
			continue

		case classify.ELSE:
			ctx.Diags.Emit(ctx.Source, line, "'else' without a preceding 'if'")
			continue

		case classify.SWITCH:
			items = append(items, ast.ScopeItem{Kind: ast.ItemSwitch, Switch: parseSwitch(ctx, stmt, c), Line: line})
			continue

		case classify.FOR:
			items = append(items, ast.ScopeItem{Kind: ast.ItemFor, For: parseFor(ctx, stmt, c), Line: line})
			continue

		case classify.FOREACH:
			items = append(items, ast.ScopeItem{Kind: ast.ItemForeach, Foreach: parseForeach(ctx, stmt, c), Line: line})
			continue

		case classify.WHILE:
			if body, hasDo := ctx.takePendingDo(); hasDo {
				dw := parseDoWhileTail(ctx, stmt, body, line)
				items = append(items, ast.ScopeItem{Kind: ast.ItemDoWhile, DoWhile: dw, Line: line})
				continue
			}
			items = append(items, ast.ScopeItem{Kind: ast.ItemWhile, While: parseWhile(ctx, stmt, c), Line: line})
			continue

		case classify.DO:
			parseDoHead(ctx, c)
			continue

		default:
			items = append(items, parseDefaultStatement(ctx, stmt, line))
			continue
		}
	}

	if _, hasDo := ctx.takePendingDo(); hasDo {
		ctx.Diags.Emit(ctx.Source, 0, "missing 'while' statement from do-while declaration")
	}

	return items
}

// parseReturn parses `return [expr] ;`.
func parseReturn(ctx *Context, stmt []lexer.Lexeme) ast.ScopeItem {
	line := stmt[0].Line
	ret := &ast.Return{Line: line}
	exprTokens := stmt[1:]
	if len(exprTokens) > 0 {
		expr, _ := exprcore.Parse(exprTokens, ctx.Source, ctx.Diags)
		ret.Expr = expr
	}
	return ast.ScopeItem{Kind: ast.ItemReturn, Return: ret, Line: line, State: ast.StateReturn}
}

func blockLine(n *group.TokenNode) int {
	body := n.Body()
	if len(body) > 0 && len(body[0].Statement) > 0 {
		return body[0].Statement[0].Line
	}
	return 0
}

// parseDefaultStatement implements the scope parser's default fall-through
// (spec.md §4.H, §9's resolved ordering): function-call parse first when
// the statement begins `identifier (` or `identifier .`, else an
// assignment expression, else a generic diagnostic.
func parseDefaultStatement(ctx *Context, stmt []lexer.Lexeme, line int) ast.ScopeItem {
	if len(stmt) >= 2 && stmt[0].Kind == lexer.Word && (stmt[1].Is("(") || stmt[1].Is(".")) {
		call, _ := exprcore.ParseChainStatement(stmt, ctx.Source, ctx.Diags)
		if call != nil {
			return ast.ScopeItem{Kind: ast.ItemCall, Call: call, Line: line}
		}
	}

	// parseAssignmentExpression emits its own diagnostic ("expected an
	// assignment or function call") when no assignment operator is found,
	// so no separate catch-all error is needed here.
	ae, _ := parseAssignmentExpression(ctx, stmt, line)
	return ast.ScopeItem{Kind: ast.ItemAssignment, Assignment: ae, Line: line}
}

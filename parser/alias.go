/*
File    : langc/parser/alias.go
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

// parseAlias parses `alias <name> [ ( params ) ] = <RHS> ;`. RHS is either
// an expression or a type expression, never both; which one it is cannot be
// told from the leading token alone, so both productions are tried
// speculatively against ctx.Diags (diag.Diagnostics.BeginSpeculative), and
// the first to succeed with nothing queued wins (spec.md §9's queue/flush/
// clear mechanism for ambiguous productions).
func parseAlias(ctx *Context, mod *ast.Module, node *group.TokenNode) {
	stmt := node.Statement
	line := lineOfStmt(stmt)
	if len(stmt) < 2 || !stmt[0].Is("alias") {
		ctx.Diags.Emit(ctx.Source, line, "expected 'alias' declaration")
		return
	}
	tokens := stmt[1:]
	if len(tokens) == 0 {
		ctx.Diags.Emit(ctx.Source, line, "missing name in alias declaration")
		return
	}
	nameTok := tokens[0]
	if !validIdentifier(nameTok.Text) {
		ctx.Diags.Emit(ctx.Source, nameTok.Line, "invalid identifier %q in alias declaration", nameTok.Text)
		return
	}
	rest := tokens[1:]

	alias := ast.Alias{Name: nameTok.Text, Line: line}

	if len(rest) > 0 && rest[0].Is("(") {
		closeIdx := -1
		depth := 0
		for i, lx := range rest {
			if lx.Is("(") {
				depth++
			} else if lx.Is(")") {
				depth--
				if depth == 0 {
					closeIdx = i
					break
				}
			}
		}
		if closeIdx < 0 {
			ctx.Diags.Emit(ctx.Source, line, "unbalanced '(' in alias parameter list")
			return
		}
		params, ok := parseParamList(ctx, rest[1:closeIdx], line)
		if !ok {
			return
		}
		alias.Params = params
		rest = rest[closeIdx+1:]
	}

	if len(rest) == 0 || !rest[0].Is("=") {
		ctx.Diags.Emit(ctx.Source, line, "expected '=' in alias declaration")
		return
	}
	rhs := rest[1:]
	if len(rhs) == 0 {
		ctx.Diags.Emit(ctx.Source, line, "missing right-hand side in alias declaration")
		return
	}

	ctx.Diags.BeginSpeculative()
	expr, ok := exprcore.Parse(rhs, ctx.Source, ctx.Diags)
	clean := ok && !ctx.Diags.HasQueued()
	ctx.Diags.EndSpeculative()
	if clean {
		ctx.Diags.ClearQueued()
		alias.Expr = expr
		mod.Aliases = append(mod.Aliases, alias)
		return
	}
	ctx.Diags.ClearQueued()

	ctx.Diags.BeginSpeculative()
	typeInfo, ok := typeexpr.Parse(rhs, ctx.Source, ctx.Diags)
	clean = ok && !ctx.Diags.HasQueued()
	ctx.Diags.EndSpeculative()
	if clean {
		ctx.Diags.ClearQueued()
		alias.IsType = true
		alias.Type = typeInfo
		mod.Aliases = append(mod.Aliases, alias)
		return
	}
	ctx.Diags.ClearQueued()

	// Neither production matched cleanly; re-run the expression parser
	// speculatively once more and flush its queued diagnostics for real, so
	// a meaningful error surfaces instead of the type attempt's.
	ctx.Diags.BeginSpeculative()
	exprcore.Parse(rhs, ctx.Source, ctx.Diags)
	ctx.Diags.EndSpeculative()
	ctx.Diags.FlushQueued()
}

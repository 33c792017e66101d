/*
File    : langc/parser/module.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

ParseModule is the recursive-descent parser's entry point (spec.md §4.G):
it walks one file's grouped token tree at module scope, dispatching each
top-level statement to the matching declaration parser and assembling the
resulting *ast.Module.
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/classify"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/group"
)

// ParseModule parses one file's grouped token tree (package group's output)
// into a *ast.Module. The returned Context carries the per-compilation
// state (scope handlers, pending attributes/do-body) that is no longer
// needed once parsing completes, but is returned for callers that want to
// inspect it (e.g. diagnostics-producing debug tooling).
func ParseModule(root *group.TokenNode, source string, diags *diag.Diagnostics) (*ast.Module, *Context) {
	ctx := NewContext(source, diags)
	mod := &ast.Module{Source: source}

	c := newCursor(root.Children)
	for !c.done() {
		node := c.advance()

		if node.IsBlock() {
			ctx.Diags.Emit(ctx.Source, blockLine(node), "unexpected block at module scope")
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

		case classify.MODULE:
			if ctx.sawModule {
				ctx.Diags.Emit(ctx.Source, line, "Only one module statement is allowed per module.")
				continue
			}
			ctx.sawModule = true
			if len(stmt) < 2 || !validIdentifier(stmt[1].Text) {
				ctx.Diags.Emit(ctx.Source, line, "missing or invalid name in module statement")
				continue
			}
			mod.Name = stmt[1].Text
			mod.Line = line

		case classify.IMPORT:
			parseImport(ctx, mod, node)

		case classify.INCLUDE:
			parseInclude(ctx, mod, node)

		case classify.ATTRIBUTE:
			parseAttribute(ctx, node)

		case classify.ALIAS:
			parseAlias(ctx, mod, node)

		case classify.VARIABLE:
			v := parseVariable(ctx, node)
			if v != nil {
				mod.Variables = append(mod.Variables, *v)
			}

		case classify.ENUM:
			parseEnum(ctx, mod, node, c)

		case classify.FUNCTION:
			parseFunction(ctx, mod, node, c)

		case classify.INTERNAL:
			parseInternalFunction(ctx, mod, node)

		default:
			ctx.Diags.Emit(ctx.Source, line, "%q is not legal at module scope", tag)
		}
	}

	return mod, ctx
}

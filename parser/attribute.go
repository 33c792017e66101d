/*
File    : langc/parser/attribute.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/exprcore"
	"github.com/akashmaji946/langc/group"
)

// parseAttribute parses one ATTRIBUTE-tagged statement and buffers it onto
// ctx's pending slot; the next declaration claims it (spec.md §4.G).
func parseAttribute(ctx *Context, node *group.TokenNode) {
	stmt := node.Statement
	if len(stmt) == 0 {
		return
	}
	line := stmt[0].Line

	if stmt[0].Is("@") {
		if len(stmt) < 4 || !stmt[2].Is("(") {
			ctx.Diags.Emit(ctx.Source, line, "malformed constructor-call attribute")
			return
		}
		name := stmt[1].Text
		closeIdx := len(stmt) - 1
		if stmt[closeIdx].Is(":") {
			closeIdx--
		}
		if closeIdx < 0 || !stmt[closeIdx].Is(")") {
			ctx.Diags.Emit(ctx.Source, line, "missing ')' in constructor-call attribute %q", name)
			return
		}
		args, ok := exprcore.ParseCallArgs(stmt[3:closeIdx], ctx.Source, ctx.Diags)
		if !ok {
			return
		}
		ctx.bufferAttributes([]ast.Attribute{{Kind: ast.CallAttribute, Name: name, Args: args, Line: line}})
		return
	}

	ctx.bufferAttributes([]ast.Attribute{{Kind: ast.BareAttribute, Keyword: stmt[0].Text, Line: line}})
}

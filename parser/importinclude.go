/*
File    : langc/parser/importinclude.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/lexer"
)

// parseImport parses `import <ident> [ : member , member … ] ;`.
func parseImport(ctx *Context, mod *ast.Module, node *group.TokenNode) {
	stmt := node.Statement
	line := stmt[0].Line
	if len(stmt) < 2 {
		ctx.Diags.Emit(ctx.Source, line, "missing module path in import")
		return
	}
	if !validIdentifier(stmt[1].Text) {
		ctx.Diags.Emit(ctx.Source, line, "invalid identifier %q in import", stmt[1].Text)
		return
	}
	imp := ast.Import{Path: stmt[1].Text, Line: line}

	if len(stmt) > 2 {
		if !stmt[2].Is(":") {
			ctx.Diags.Emit(ctx.Source, line, "expected ':' before import member list")
			return
		}
		for _, lx := range stmt[3:] {
			if lx.Is(",") {
				continue
			}
			if !validIdentifier(lx.Text) {
				ctx.Diags.Emit(ctx.Source, lx.Line, "invalid member identifier %q in import", lx.Text)
				continue
			}
			imp.Members = append(imp.Members, lx.Text)
		}
	}
	mod.Imports = append(mod.Imports, imp)
}

// parseInclude parses `include "<path>" ;`. Per spec.md §9's resolved open
// question, the path must be a double-quoted string literal — single-quoted
// forms are rejected rather than silently accepted.
func parseInclude(ctx *Context, mod *ast.Module, node *group.TokenNode) {
	stmt := node.Statement
	line := stmt[0].Line
	if len(stmt) != 2 || stmt[1].Kind != lexer.String {
		ctx.Diags.Emit(ctx.Source, line, "include path must be a double-quoted string")
		return
	}
	path := unquote(stmt[1].Text)
	if path == stmt[1].Text {
		ctx.Diags.Emit(ctx.Source, line, "include path must be a double-quoted string")
		return
	}
	mod.Includes = append(mod.Includes, ast.Include{Path: path, Line: line})
}

// unquote strips a single layer of surrounding double quotes, or returns
// text unchanged if it isn't double-quoted.
func unquote(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}

/*
File    : langc/parser/function.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/lexer"
	"github.com/akashmaji946/langc/typeexpr"
)

// parseParamList parses a comma-separated `<type> <name>` list (the parens
// already stripped by the caller).
func parseParamList(ctx *Context, tokens []lexer.Lexeme, line int) ([]ast.Parameter, bool) {
	if len(tokens) == 0 {
		return nil, true
	}
	ok := true
	var params []ast.Parameter
	for _, g := range splitCommaGroups(tokens) {
		if len(g) == 0 {
			ctx.Diags.Emit(ctx.Source, line, "empty parameter in parameter list")
			ok = false
			continue
		}
		typeInfo, name, pok := parseTypedName(ctx, g, g[0].Line)
		if !pok {
			ok = false
			continue
		}
		params = append(params, ast.Parameter{Type: typeInfo, Name: name, Line: g[0].Line})
	}
	return params, ok
}

// matchParen returns the index of the `)` that closes the `(` at tokens[openIdx].
func matchParen(tokens []lexer.Lexeme, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(tokens); i++ {
		switch tokens[i].Text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseFunction parses a FUNCTION-tagged declaration:
// `[returnType] name [ ( template-params ) ] ( params ) [ { body } | ; ]`.
// When no following block sibling exists, this produces an
// InternalFunction forward declaration instead and appends it to mod.
func parseFunction(ctx *Context, mod *ast.Module, node *group.TokenNode, c *cursor) {
	stmt := node.Statement
	if len(stmt) < 2 || !stmt[0].Is("fn") {
		ctx.Diags.Emit(ctx.Source, lineOfStmt(stmt), "expected 'fn' declaration")
		return
	}
	fn, ok := parseFunctionHeader(ctx, stmt[1:], stmt[0].Line)
	if !ok {
		return
	}
	attrs := ctx.takeAttributes()

	if body, isBlock := c.takeBlock(); isBlock {
		fn.body = parseScopeBody(ctx, body)
		mod.Functions = append(mod.Functions, ast.Function{
			Name: fn.name, ReturnType: fn.returnType, TemplateParams: fn.templateParams,
			Params: fn.params, Body: fn.body, Attributes: attrs, Line: fn.line,
		})
		return
	}

	mod.InternalFunctions = append(mod.InternalFunctions, ast.InternalFunction{
		Name: fn.name, ReturnType: fn.returnType, TemplateParams: fn.templateParams,
		Params: fn.params, Attributes: attrs, Line: fn.line,
	})
}

// parseInternalFunction parses `internal fn ...;` — a forward declaration
// terminated by `;`, never followed by a body.
func parseInternalFunction(ctx *Context, mod *ast.Module, node *group.TokenNode) {
	stmt := node.Statement
	if len(stmt) < 3 || !stmt[0].Is("internal") || !stmt[1].Is("fn") {
		ctx.Diags.Emit(ctx.Source, lineOfStmt(stmt), "expected 'internal fn' declaration")
		return
	}
	fn, ok := parseFunctionHeader(ctx, stmt[2:], stmt[0].Line)
	if !ok {
		return
	}
	attrs := ctx.takeAttributes()
	mod.InternalFunctions = append(mod.InternalFunctions, ast.InternalFunction{
		Name: fn.name, ReturnType: fn.returnType, TemplateParams: fn.templateParams,
		Params: fn.params, Attributes: attrs, Line: fn.line,
	})
}

// functionHeader is the common parsed shape of `[returnType] name
// [(template-params)] (params)`, shared by function and forward-declaration
// parsing.
type functionHeader struct {
	name           string
	returnType     *ast.TypeInfo
	templateParams []ast.Parameter
	params         []ast.Parameter
	line           int
	body           []ast.ScopeItem
}

func parseFunctionHeader(ctx *Context, tokens []lexer.Lexeme, line int) (*functionHeader, bool) {
	firstParen := -1
	for i, lx := range tokens {
		if lx.Is("(") {
			firstParen = i
			break
		}
	}
	if firstParen < 0 {
		ctx.Diags.Emit(ctx.Source, line, "missing parameter list in function declaration")
		return nil, false
	}

	typeTokens, nameTok, ok := splitDeclTokens(tokens[:firstParen])
	if !ok {
		ctx.Diags.Emit(ctx.Source, line, "missing function name")
		return nil, false
	}
	if !validIdentifier(nameTok.Text) {
		ctx.Diags.Emit(ctx.Source, nameTok.Line, "invalid identifier %q in function declaration", nameTok.Text)
		return nil, false
	}
	var returnType *ast.TypeInfo
	if len(typeTokens) > 0 {
		rt, rok := typeexpr.Parse(typeTokens, ctx.Source, ctx.Diags)
		if !rok {
			return nil, false
		}
		returnType = rt
	}

	firstClose := matchParen(tokens, firstParen)
	if firstClose < 0 {
		ctx.Diags.Emit(ctx.Source, line, "unbalanced '(' in function declaration")
		return nil, false
	}
	firstParams, pok := parseParamList(ctx, tokens[firstParen+1:firstClose], line)
	if !pok {
		return nil, false
	}

	rest := tokens[firstClose+1:]
	header := &functionHeader{name: nameTok.Text, returnType: returnType, line: line}

	if len(rest) > 0 && rest[0].Is("(") {
		secondClose := matchParen(rest, 0)
		if secondClose < 0 {
			ctx.Diags.Emit(ctx.Source, line, "unbalanced '(' in function declaration")
			return nil, false
		}
		secondParams, sok := parseParamList(ctx, rest[1:secondClose], line)
		if !sok {
			return nil, false
		}
		header.templateParams = firstParams
		header.params = secondParams
		rest = rest[secondClose+1:]
	} else {
		header.params = firstParams
	}

	if len(rest) != 0 {
		ctx.Diags.Emit(ctx.Source, line, "unexpected trailing tokens in function declaration")
		return nil, false
	}
	return header, true
}

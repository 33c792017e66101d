/*
File    : langc/parser/typeandname.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/lexer"
	"github.com/akashmaji946/langc/typeexpr"
)

// splitDeclTokens separates a `[type] name` spread into its optional
// leading type-expression tokens and trailing name lexeme: the last
// identifier-kind token is the name, everything before it is the type.
func splitDeclTokens(tokens []lexer.Lexeme) (typeTokens []lexer.Lexeme, name lexer.Lexeme, ok bool) {
	if len(tokens) == 0 {
		return nil, lexer.Lexeme{}, false
	}
	last := tokens[len(tokens)-1]
	if last.Kind != lexer.Word {
		return nil, lexer.Lexeme{}, false
	}
	return tokens[:len(tokens)-1], last, true
}

// parseTypedName parses `[type] name` into a *ast.TypeInfo (nil if no type
// tokens were present) and the validated name string.
func parseTypedName(ctx *Context, tokens []lexer.Lexeme, line int) (*ast.TypeInfo, string, bool) {
	typeTokens, nameTok, ok := splitDeclTokens(tokens)
	if !ok {
		ctx.Diags.Emit(ctx.Source, line, "missing identifier in declaration")
		return nil, "", false
	}
	if !validIdentifier(nameTok.Text) {
		ctx.Diags.Emit(ctx.Source, nameTok.Line, "invalid identifier %q", nameTok.Text)
		return nil, "", false
	}
	if len(typeTokens) == 0 {
		return nil, nameTok.Text, true
	}
	typeInfo, tok := typeexpr.Parse(typeTokens, ctx.Source, ctx.Diags)
	if typeInfo != nil {
		typeInfo.Name = nameTok.Text
	}
	return typeInfo, nameTok.Text, tok
}

// splitCommaGroups splits tokens on top-level commas, respecting nested
// `()`, `[]`, `{}` depth.
func splitCommaGroups(tokens []lexer.Lexeme) [][]lexer.Lexeme {
	var groups [][]lexer.Lexeme
	var cur []lexer.Lexeme
	depth := 0
	for _, lx := range tokens {
		switch lx.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}
		if lx.Text == "," && depth == 0 {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, lx)
	}
	if len(cur) > 0 || len(groups) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// splitOnTopLevel finds the index of the first top-level occurrence of sep
// (not nested inside brackets/parens) in tokens, or -1.
func splitOnTopLevel(tokens []lexer.Lexeme, sep string) int {
	depth := 0
	for i, lx := range tokens {
		switch lx.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		default:
			if depth == 0 && lx.Text == sep {
				return i
			}
		}
	}
	return -1
}

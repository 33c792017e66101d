/*
File    : langc/exprcore/expr.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package exprcore

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/lexer"
)

// Parse parses a flat token spread into an Expression (spec.md §4.F): the
// array-literal form when tokens open with `[`, otherwise a token-level
// expression in which embedded function calls are parsed eagerly and the
// remaining operator/atom stream is validated with Validate. The mode
// (mathematical vs. boolean) is inferred from the operators present.
func Parse(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) (*ast.Expression, bool) {
	return parse(tokens, source, diags, nil)
}

// ParseForced is like Parse but forces mode instead of inferring it —
// if/while/for/switch conditions force Boolean, so a stray math operator
// like `+` is reported as illegal in that context (spec.md §8 scenario 3)
// rather than silently reclassifying the expression as mathematical.
func ParseForced(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics, mode Mode) (*ast.Expression, bool) {
	return parse(tokens, source, diags, &mode)
}

func parse(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics, forced *Mode) (*ast.Expression, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	line := tokens[0].Line
	if tokens[0].Is("[") {
		lit, ok := ParseArrayLiteral(tokens, source, diags)
		if lit == nil {
			return nil, false
		}
		return &ast.Expression{Kind: ast.ExprArrayLiteral, ArrayLiteral: lit, Line: line}, ok
	}

	var items []ast.ExpressionToken
	var validation []lexer.Lexeme
	ok := true

	i := 0
	for i < len(tokens) {
		lx := tokens[i]
		if lx.Kind == lexer.Word && i+1 < len(tokens) && tokens[i+1].Is("(") {
			end := consumeCallSpan(tokens, i)
			if end < 0 {
				diags.Emit(source, lx.Line, "unbalanced '(' in call to %q", lx.Text)
				return nil, false
			}
			call, cok := ParseFunctionCall(tokens[i:end], source, diags)
			ok = ok && cok
			items = append(items, ast.ExpressionToken{Kind: ast.CallToken, Call: call})
			validation = append(validation, lexer.Lexeme{Kind: lexer.Word, Text: "<call>", Line: lx.Line})
			i = end
			continue
		}
		items = append(items, ast.ExpressionToken{Kind: ast.AtomToken, Atom: lx})
		validation = append(validation, lx)
		i++
	}

	mode := ClassifyMode(textsOf(validation))
	if forced != nil {
		mode = *forced
	}
	vok := Validate(validation, mode, source, diags)
	ok = ok && vok

	return &ast.Expression{
		Kind:                     ast.ExprTokens,
		Tokens:                   items,
		IsMathematicalExpression: mode == Mathematical,
		Line:                     line,
	}, ok
}

// consumeCallSpan returns the exclusive end index of the (possibly
// template-parameterized, possibly chained) call starting at tokens[start],
// or -1 if a paren fails to balance.
func consumeCallSpan(tokens []lexer.Lexeme, start int) int {
	closeIdx := matchBracket(tokens, start+1, "(", ")")
	if closeIdx < 0 {
		return -1
	}
	pos := closeIdx + 1
	if pos < len(tokens) && tokens[pos].Is("(") {
		close2 := matchBracket(tokens, pos, "(", ")")
		if close2 < 0 {
			return -1
		}
		pos = close2 + 1
	}
	for pos+2 < len(tokens) && tokens[pos].Is(".") && tokens[pos+1].Kind == lexer.Word && tokens[pos+2].Is("(") {
		closeC := matchBracket(tokens, pos+2, "(", ")")
		if closeC < 0 {
			return -1
		}
		pos = closeC + 1
		if pos < len(tokens) && tokens[pos].Is("(") {
			close2 := matchBracket(tokens, pos, "(", ")")
			if close2 < 0 {
				return -1
			}
			pos = close2 + 1
		}
	}
	return pos
}

func textsOf(tokens []lexer.Lexeme) []string {
	out := make([]string, len(tokens))
	for i, lx := range tokens {
		out[i] = lx.Text
	}
	return out
}

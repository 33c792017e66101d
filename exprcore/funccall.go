/*
File    : langc/exprcore/funccall.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package exprcore

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/lexer"
)

// ParseFunctionCall parses `name(args)`, `name(template)(args)`, and any
// number of chained `.name(args)` suffixes (spec.md §4.F). tokens must span
// exactly one call expression, with no trailing tokens left unconsumed.
func ParseFunctionCall(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) (*ast.FunctionCall, bool) {
	call, rest, ok := parseOneCall(tokens, source, diags)
	if call == nil {
		return nil, false
	}
	cok := continueChain(call, rest, source, diags)
	return call, ok && cok
}

// ParseChainStatement parses a statement-position call chain, allowing the
// degenerate form `a.b().c()` where the leading identifier carries no
// parens of its own (spec.md §8 scenario 2): the root FunctionCall's own
// Args/TemplateArgs stay nil and the real calls live in its Chain.
func ParseChainStatement(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) (*ast.FunctionCall, bool) {
	if len(tokens) == 0 || tokens[0].Kind != lexer.Word {
		diags.Emit(source, lineOf(tokens), "expected function call")
		return nil, false
	}
	if len(tokens) >= 2 && tokens[1].Is("(") {
		return ParseFunctionCall(tokens, source, diags)
	}
	if len(tokens) >= 2 && tokens[1].Is(".") {
		root := &ast.FunctionCall{Identifier: tokens[0].Text, Line: tokens[0].Line}
		ok := continueChain(root, tokens[1:], source, diags)
		return root, ok
	}
	diags.Emit(source, tokens[0].Line, "expected function call")
	return nil, false
}

// continueChain consumes zero or more `.name(...)` suffixes from rest,
// appending each to call.Chain.
func continueChain(call *ast.FunctionCall, rest []lexer.Lexeme, source string, diags *diag.Diagnostics) bool {
	ok := true
	for len(rest) > 0 {
		if !rest[0].Is(".") {
			diags.Emit(source, call.Line, "unexpected trailing tokens after function call")
			return false
		}
		rest = rest[1:]
		next, tail, nok := parseOneCall(rest, source, diags)
		if next == nil {
			return false
		}
		call.Chain = append(call.Chain, next)
		rest = tail
		ok = ok && nok
	}
	return ok
}

// parseOneCall parses a single, non-chained `name(...)` or
// `name(...)(...)` call at the front of tokens and returns the unconsumed
// remainder.
func parseOneCall(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) (*ast.FunctionCall, []lexer.Lexeme, bool) {
	if len(tokens) < 3 || tokens[0].Kind != lexer.Word || !tokens[1].Is("(") {
		diags.Emit(source, lineOf(tokens), "expected function call")
		return nil, nil, false
	}
	line := tokens[0].Line
	call := &ast.FunctionCall{Identifier: tokens[0].Text, Line: line}
	ok := true

	closeIdx := matchBracket(tokens, 1, "(", ")")
	if closeIdx < 0 {
		diags.Emit(source, line, "unbalanced '(' in call to %q", call.Identifier)
		return nil, nil, false
	}
	firstArgs, fok := parseArgs(tokens[2:closeIdx], source, diags)
	ok = ok && fok
	rest := tokens[closeIdx+1:]

	if len(rest) > 0 && rest[0].Is("(") {
		secondClose := matchBracket(rest, 0, "(", ")")
		if secondClose < 0 {
			diags.Emit(source, line, "unbalanced '(' in call to %q", call.Identifier)
			return nil, nil, false
		}
		call.TemplateArgs = firstArgs
		valueArgs, vok := parseArgs(rest[1:secondClose], source, diags)
		ok = ok && vok
		call.Args = valueArgs
		rest = rest[secondClose+1:]
	} else {
		call.Args = firstArgs
	}

	return call, rest, ok
}

// ParseCallArgs splits an argument-list interior (the tokens between a
// call's parens, excluding the parens themselves) on top-level commas and
// parses each one as either an array literal or a raw expression-token
// span. Exported for declaration parsers that accept call-shaped argument
// lists outside of a full function call, e.g. constructor-call attributes.
func ParseCallArgs(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) ([]ast.Argument, bool) {
	return parseArgs(tokens, source, diags)
}

// parseArgs splits an argument-list interior on top-level commas and parses
// each one as either an array literal or a raw expression-token span.
func parseArgs(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) ([]ast.Argument, bool) {
	if len(tokens) == 0 {
		return nil, true
	}
	ok := true
	var args []ast.Argument
	for _, g := range splitTopLevel(tokens) {
		if len(g) == 0 {
			diags.Emit(source, lineOf(tokens), "empty argument in call")
			ok = false
			continue
		}
		if g[0].Is("[") {
			lit, lok := ParseArrayLiteral(g, source, diags)
			ok = ok && lok
			args = append(args, ast.Argument{ArrayLiteral: lit})
			continue
		}
		args = append(args, ast.Argument{Tokens: g})
	}
	return args, ok
}

func lineOf(tokens []lexer.Lexeme) int {
	if len(tokens) == 0 {
		return 0
	}
	return tokens[0].Line
}

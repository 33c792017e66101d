/*
File    : langc/exprcore/arraylit.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package exprcore

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/lexer"
)

// ParseArrayLiteral parses `[ ... ]`, in either its plain form
// (`[v, v, v]`) or its associative form (`[k: v, k: v]`). tokens must span
// the full literal, brackets included.
func ParseArrayLiteral(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) (*ast.ArrayLiteral, bool) {
	if len(tokens) < 2 || !tokens[0].Is("[") || !tokens[len(tokens)-1].Is("]") {
		return nil, false
	}
	line := tokens[0].Line
	interior := tokens[1 : len(tokens)-1]
	lit := &ast.ArrayLiteral{Line: line}
	ok := true

	if len(interior) == 0 {
		return lit, true
	}

	groups := splitTopLevel(interior)
	for i, g := range groups {
		if len(g) == 0 {
			diags.Emit(source, line, "empty entry in array literal")
			ok = false
			continue
		}
		colonIdx := topLevelColon(g)
		if colonIdx >= 0 {
			if i == 0 {
				lit.IsAssociative = true
			} else if !lit.IsAssociative {
				diags.Emit(source, line, "mixed associative and plain entries in array literal")
				ok = false
			}
			key := g[:colonIdx]
			value := g[colonIdx+1:]
			if len(key) == 0 || len(value) == 0 {
				diags.Emit(source, line, "malformed associative entry in array literal")
				ok = false
				continue
			}
			lit.Entries = append(lit.Entries, ast.ArrayEntry{Key: key, Value: value})
		} else {
			if lit.IsAssociative {
				diags.Emit(source, line, "mixed associative and plain entries in array literal")
				ok = false
			}
			lit.Entries = append(lit.Entries, ast.ArrayEntry{Value: g})
		}
	}
	return lit, ok
}

// topLevelColon returns the index of a top-level ':' in tokens (one not
// nested inside brackets/parens), or -1 if none is present.
func topLevelColon(tokens []lexer.Lexeme) int {
	depth := 0
	for i, lx := range tokens {
		switch lx.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ":":
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

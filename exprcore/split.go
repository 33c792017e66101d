/*
File    : langc/exprcore/split.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package exprcore

import "github.com/akashmaji946/langc/lexer"

// splitTopLevel splits tokens on top-level commas, tracking nested
// `()`, `[]`, `{}` so that commas inside a nested call or array literal do
// not split an argument in two.
func splitTopLevel(tokens []lexer.Lexeme) [][]lexer.Lexeme {
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

// matchBracket returns the index (within tokens) of the lexeme that closes
// the bracket opened at tokens[openIdx], or -1 if unbalanced.
func matchBracket(tokens []lexer.Lexeme, openIdx int, open, close string) int {
	depth := 0
	for i := openIdx; i < len(tokens); i++ {
		switch tokens[i].Text {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

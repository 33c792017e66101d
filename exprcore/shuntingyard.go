/*
File    : langc/exprcore/shuntingyard.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Validate runs a shunting-yard pass over an already-atomized expression token
stream, purely to check that operator precedence, associativity, and
bracket nesting are well-formed (spec.md §4.F, §9's redesign note). Unlike
the teacher's parser_precedence.go, which builds the algorithm's RPN output
into an evaluable tree, this walk never evaluates anything: the output
queue is discarded and only the walk's success/failure matters.
*/
package exprcore

import (
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/lexer"
)

// unaryOps are operators legal in prefix position, where an operand is
// expected rather than a binary operator.
var unaryOps = map[string]bool{"+": true, "-": true, "!": true, "~": true}

const openMarker = "("

// Validate walks tokens (with nested function calls already reduced to a
// single atom by the caller) and reports whether it is a well-formed
// expression in the given precedence mode.
func Validate(tokens []lexer.Lexeme, mode Mode, source string, diags *diag.Diagnostics) bool {
	table := tableFor(mode)
	var stack []string
	wantOperand := true
	ok := true
	line := lineOf(tokens)

	popWhile := func(entry precedenceEntry, text string) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top == openMarker {
				break
			}
			topEntry, known := table[top]
			if !known {
				break
			}
			if topEntry.precedence > entry.precedence ||
				(topEntry.precedence == entry.precedence && !entry.rightAssoc) {
				stack = stack[:len(stack)-1]
				continue
			}
			break
		}
		stack = append(stack, text)
	}

	for _, lx := range tokens {
		text := lx.Text
		switch {
		case text == "(":
			stack = append(stack, openMarker)

		case text == ")":
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top == openMarker {
					found = true
					break
				}
			}
			if !found {
				diags.Emit(source, lx.Line, "unbalanced ')' in expression")
				ok = false
			}
			if wantOperand {
				diags.Emit(source, lx.Line, "empty parenthesized group in expression")
				ok = false
			}
			wantOperand = false

		case isOperator(text):
			entry, known := table[text]
			if wantOperand {
				if !unaryOps[text] {
					diags.Emit(source, lx.Line, "operator %q used without a left operand", text)
					ok = false
				}
				// Prefix/unary use: doesn't interact with the precedence
				// stack, operand is still expected next.
				continue
			}
			if !known {
				diags.Emit(source, lx.Line, "illegal symbol %q found in expression", text)
				ok = false
				wantOperand = true
				continue
			}
			popWhile(entry, text)
			wantOperand = true

		default:
			if !wantOperand {
				diags.Emit(source, lx.Line, "missing operator between %q and preceding operand", text)
				ok = false
			}
			wantOperand = false
		}
	}

	if wantOperand && len(tokens) > 0 {
		diags.Emit(source, line, "expression ends with a dangling operator")
		ok = false
	}
	for _, top := range stack {
		if top == openMarker {
			diags.Emit(source, line, "unbalanced '(' in expression")
			ok = false
		}
	}
	return ok
}

/*
File    : langc/exprcore/precedence.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package exprcore

// Mode is the operator-precedence mode an expression was classified into
// (spec.md §4.F step 2).
type Mode int

const (
	Mathematical Mode = iota
	Boolean
)

// mathOps are the operators that mark an expression mathematical.
var mathOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "^": true,
	"<<": true, ">>": true, "|": true, "&": true, "^^": true,
}

// booleanOps are the operators that mark an expression boolean.
var booleanOps = map[string]bool{
	"||": true, "&&": true, ">": true, ">=": true, "<=": true, "<": true,
	"!=": true, "!": true, "!!": true, "==": true,
}

// concatOp ("~") is valid in both modes.
const concatOp = "~"

// isOperator reports whether text is any operator recognized by either
// mode, including the shared concat operator.
func isOperator(text string) bool {
	return mathOps[text] || booleanOps[text] || text == concatOp
}

// precedenceEntry is one operator's binding power and associativity within
// a mode.
type precedenceEntry struct {
	precedence int
	rightAssoc bool
}

// mathPrecedence is spec.md §4.F's math precedence table: `+ -` 1; `* / %`
// 2; `^ << >> | ~ & ^^` 3 (right-assoc).
var mathPrecedence = map[string]precedenceEntry{
	"+": {1, false}, "-": {1, false},
	"*": {2, false}, "/": {2, false}, "%": {2, false},
	"^": {3, true}, "<<": {3, true}, ">>": {3, true}, "|": {3, true},
	"~": {3, true}, "&": {3, true}, "^^": {3, true},
}

// booleanPrecedence is spec.md §4.F's boolean precedence table: `||` 1
// (right); `&&` 2 (right); `~` 3 (left, concat); the comparison operators 4
// (right).
var booleanPrecedence = map[string]precedenceEntry{
	"||": {1, true},
	"&&": {2, true},
	"~":  {3, false},
	">":  {4, true}, ">=": {4, true}, "<=": {4, true}, "<": {4, true},
	"!=": {4, true}, "!": {4, true}, "!!": {4, true}, "==": {4, true},
}

// tableFor returns the precedence table for mode.
func tableFor(mode Mode) map[string]precedenceEntry {
	if mode == Mathematical {
		return mathPrecedence
	}
	return booleanPrecedence
}

// ClassifyMode scans tokens for operator kinds actually present and returns
// the inferred mode: mathematical unless a boolean-only operator appears.
func ClassifyMode(tokens []string) Mode {
	for _, t := range tokens {
		if booleanOps[t] && t != "!" { // "!" is checked by the second loop, which also marks it Boolean
			return Boolean
		}
	}
	for _, t := range tokens {
		if t == "!" || t == "!!" {
			return Boolean
		}
	}
	return Mathematical
}

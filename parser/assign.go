/*
File    : langc/parser/assign.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/exprcore"
	"github.com/akashmaji946/langc/lexer"
)

// assignOps are the assignment/increment operator texts spec.md §3 lists.
// The lexer already emits each as a single compound symbol lexeme.
var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"^=": true, ":=": true, "~=": true, "|=": true, "@=": true,
	"++": true, "--": true,
}

// parseAssignmentExpression parses `leftHand op rightHand` where op is one
// of the assignment/increment operators. Unary `++`/`--` has no
// right-hand operand.
func parseAssignmentExpression(ctx *Context, tokens []lexer.Lexeme, line int) (*ast.AssignmentExpression, bool) {
	idx := -1
	depth := 0
	for i, lx := range tokens {
		switch lx.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}
		if depth == 0 && assignOps[lx.Text] {
			idx = i
			break
		}
	}
	if idx < 0 {
		ctx.Diags.Emit(ctx.Source, line, "expected an assignment or function call")
		return nil, false
	}

	ae := &ast.AssignmentExpression{
		LeftHand: tokens[:idx],
		Operator: ast.AssignOp(tokens[idx].Text),
		Line:     line,
	}
	if len(ae.LeftHand) == 0 {
		ctx.Diags.Emit(ctx.Source, line, "missing left-hand side in assignment")
		return ae, false
	}

	if ae.Operator.IsUnary() {
		if idx != len(tokens)-1 {
			ctx.Diags.Emit(ctx.Source, line, "unexpected tokens after %q", ae.Operator)
			return ae, false
		}
		return ae, true
	}

	right := tokens[idx+1:]
	if len(right) == 0 {
		ctx.Diags.Emit(ctx.Source, line, "missing right-hand side in assignment")
		return ae, false
	}
	ae.RightHand = right
	expr, ok := exprcore.Parse(right, ctx.Source, ctx.Diags)
	ae.RightHandExpression = expr
	return ae, ok
}

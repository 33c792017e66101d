/*
File    : langc/parser/control.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

The Control-Flow parsers (spec.md §4.I): if/else, switch (with case/
default/final arms), for, foreach (with range), while, and do-while. Each
installs whatever scope-state handlers (package scopehandler) its body
legitimizes before delegating to the scope parser, and tears them down
before returning.
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/classify"
	"github.com/akashmaji946/langc/exprcore"
	"github.com/akashmaji946/langc/lexer"
)

// parseIf parses `if <expr> { body }` with an optional trailing
// `else`/`else if` chain. stmt is the `if <expr>` statement (the `;` the
// grouper would otherwise expect is replaced by the following block).
func parseIf(ctx *Context, stmt []lexer.Lexeme, c *cursor) *ast.If {
	line := stmt[0].Line
	cond, _ := exprcore.ParseForced(stmt[1:], ctx.Source, ctx.Diags, exprcore.Boolean)
	ifNode := &ast.If{Condition: cond, Line: line}

	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'if' statement")
		return ifNode
	}
	ifNode.Body = parseScopeBody(ctx, body)

	if next := c.peek(); next != nil && !next.IsBlock() && classify.Classify(next.Statement) == classify.ELSE {
		c.advance()
		ifNode.Else = parseElse(ctx, next.Statement, c)
	}
	return ifNode
}

// parseElse parses `else { body }` or `else if ...` (spec.md §4.I): the
// recursive-if form leaves Body nil, since the chained If owns its own
// body.
func parseElse(ctx *Context, stmt []lexer.Lexeme, c *cursor) *ast.Else {
	line := stmt[0].Line
	rest := stmt[1:]

	if len(rest) > 0 && rest[0].Is("if") {
		return &ast.Else{If: parseIf(ctx, rest, c), Line: line}
	}

	els := &ast.Else{Line: line}
	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'else' statement")
		return els
	}
	els.Body = parseScopeBody(ctx, body)
	return els
}

// parseSwitch parses `switch <expr> { arms }` (spec.md §4.I). Each arm's
// body runs with a `break` handler installed.
func parseSwitch(ctx *Context, stmt []lexer.Lexeme, c *cursor) *ast.Switch {
	line := stmt[0].Line
	cond, _ := exprcore.ParseForced(stmt[1:], ctx.Source, ctx.Diags, exprcore.Boolean)
	sw := &ast.Switch{Condition: cond, Line: line}

	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'switch' statement")
		return sw
	}

	arms := newCursor(body)
	for !arms.done() {
		node := arms.advance()
		if node.IsBlock() {
			ctx.Diags.Emit(ctx.Source, line, "unexpected block in switch body")
			continue
		}
		armStmt := node.Statement
		if len(armStmt) == 0 {
			continue
		}
		armLine := armStmt[0].Line

		switch armStmt[0].Text {
		case "case":
			ctx.handlers.Push("break")
			sw.Cases = append(sw.Cases, parseCaseArm(ctx, armStmt, arms))
			ctx.handlers.Pop("break")

		case "default":
			if sw.HasDefault {
				ctx.Diags.Emit(ctx.Source, armLine, "only one 'default' arm is allowed per switch")
			}
			sw.HasDefault = true
			armBody, armIsBlock := arms.takeBlock()
			if !armIsBlock {
				ctx.Diags.Emit(ctx.Source, armLine, "missing '{' body for 'default' arm")
				continue
			}
			ctx.handlers.Push("break")
			sw.Default = parseScopeBody(ctx, armBody)
			ctx.handlers.Pop("break")

		case "final":
			if sw.HasFinal {
				ctx.Diags.Emit(ctx.Source, armLine, "only one 'final' arm is allowed per switch")
			}
			sw.HasFinal = true
			armBody, armIsBlock := arms.takeBlock()
			if !armIsBlock {
				ctx.Diags.Emit(ctx.Source, armLine, "missing '{' body for 'final' arm")
				continue
			}
			ctx.handlers.Push("break")
			sw.Final = parseScopeBody(ctx, armBody)
			ctx.handlers.Pop("break")

		default:
			ctx.Diags.Emit(ctx.Source, armLine, "expected 'case', 'default', or 'final' in switch body")
		}
	}

	return sw
}

// parseCaseArm parses one `case v;` / `case v, v, v;` / `case a .. b;` arm
// and its brace-delimited body.
func parseCaseArm(ctx *Context, stmt []lexer.Lexeme, arms *cursor) ast.CaseArm {
	line := stmt[0].Line
	arm := ast.CaseArm{Line: line}
	vals := stmt[1:]

	if idx := splitOnTopLevel(vals, ".."); idx >= 0 {
		arm.IsRange = true
		low, _ := exprcore.Parse(vals[:idx], ctx.Source, ctx.Diags)
		high, _ := exprcore.Parse(vals[idx+1:], ctx.Source, ctx.Diags)
		if low != nil {
			arm.Values = append(arm.Values, *low)
		}
		if high != nil {
			arm.Values = append(arm.Values, *high)
		}
	} else {
		for _, g := range splitCommaGroups(vals) {
			if len(g) == 0 {
				continue
			}
			v, _ := exprcore.Parse(g, ctx.Source, ctx.Diags)
			if v != nil {
				arm.Values = append(arm.Values, *v)
			}
		}
	}

	body, isBlock := arms.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'case' arm")
		return arm
	}
	arm.Body = parseScopeBody(ctx, body)
	return arm
}

// parseFor parses `for init , cond , post { body }` (spec.md §4.I): init as
// a variable, cond as a forced-boolean expression, post as an assignment
// expression. Installs `break` and `continue` handlers for the body.
func parseFor(ctx *Context, stmt []lexer.Lexeme, c *cursor) *ast.For {
	line := stmt[0].Line
	groups := splitCommaGroups(stmt[1:])
	if len(groups) != 3 {
		ctx.Diags.Emit(ctx.Source, line, "'for' requires init, cond, and post clauses separated by ','")
		c.takeBlock()
		return &ast.For{Line: line}
	}

	initTokens := groups[0]
	if len(initTokens) > 0 && initTokens[0].Is("var") {
		initTokens = initTokens[1:]
	}
	forNode := &ast.For{
		Init: parseVariableTokens(ctx, initTokens, line, nil),
		Line: line,
	}
	forNode.Cond, _ = exprcore.ParseForced(groups[1], ctx.Source, ctx.Diags, exprcore.Boolean)
	forNode.Post, _ = parseAssignmentExpression(ctx, groups[2], line)

	ctx.handlers.Push("break")
	ctx.handlers.Push("continue")
	defer ctx.handlers.Pop("continue")
	defer ctx.handlers.Pop("break")

	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'for' statement")
		return forNode
	}
	forNode.Body = parseScopeBody(ctx, body)
	return forNode
}

// parseForeach parses `foreach index [, index2] , range-or-collection {
// body }` (spec.md §4.I), where range-or-collection is either `A` or
// `A .. B`. Installs `break` and `continue` handlers for the body.
func parseForeach(ctx *Context, stmt []lexer.Lexeme, c *cursor) *ast.Foreach {
	line := stmt[0].Line
	groups := splitCommaGroups(stmt[1:])
	if len(groups) < 2 || len(groups) > 3 {
		ctx.Diags.Emit(ctx.Source, line, "'foreach' requires an index and a range or collection")
		c.takeBlock()
		return &ast.Foreach{Line: line}
	}

	fe := &ast.Foreach{Line: line}
	if len(groups[0]) > 0 {
		fe.Index = groups[0][0].Text
	}

	rangeGroup := groups[len(groups)-1]
	if len(groups) == 3 && len(groups[1]) > 0 {
		fe.Index2 = groups[1][0].Text
	}

	if idx := splitOnTopLevel(rangeGroup, ".."); idx >= 0 {
		fe.IsRange = true
		fe.RangeLow, _ = exprcore.Parse(rangeGroup[:idx], ctx.Source, ctx.Diags)
		fe.RangeHigh, _ = exprcore.Parse(rangeGroup[idx+1:], ctx.Source, ctx.Diags)
	} else {
		fe.Collection, _ = exprcore.Parse(rangeGroup, ctx.Source, ctx.Diags)
	}

	ctx.handlers.Push("break")
	ctx.handlers.Push("continue")
	defer ctx.handlers.Pop("continue")
	defer ctx.handlers.Pop("break")

	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'foreach' statement")
		return fe
	}
	fe.Body = parseScopeBody(ctx, body)
	return fe
}

// parseWhile parses `while <cond> { body }` with a forced-boolean
// condition. Installs `break` and `continue` handlers for the body.
func parseWhile(ctx *Context, stmt []lexer.Lexeme, c *cursor) *ast.While {
	line := stmt[0].Line
	cond, _ := exprcore.ParseForced(stmt[1:], ctx.Source, ctx.Diags, exprcore.Boolean)
	w := &ast.While{Condition: cond, Line: line}

	ctx.handlers.Push("break")
	ctx.handlers.Push("continue")
	defer ctx.handlers.Pop("continue")
	defer ctx.handlers.Pop("break")

	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'while' statement")
		return w
	}
	w.Body = parseScopeBody(ctx, body)
	return w
}

// parseDoHead parses a `do { body }` head (spec.md §4.H, §4.I): unlike the
// other control-flow constructs, its body is parsed immediately and cached
// via ctx.setPendingDo rather than emitted as a ScopeItem directly, since it
// only becomes a DoWhile once the following `while <cond>;` at the same
// scope level is seen.
func parseDoHead(ctx *Context, c *cursor) {
	line := 0
	if n := c.peek(); n != nil && len(n.Statement) > 0 {
		line = n.Statement[0].Line
	}

	ctx.handlers.Push("break")
	ctx.handlers.Push("continue")
	defer ctx.handlers.Pop("continue")
	defer ctx.handlers.Pop("break")

	body, isBlock := c.takeBlock()
	if !isBlock {
		ctx.Diags.Emit(ctx.Source, line, "missing '{' body for 'do' statement")
		ctx.setPendingDo(nil)
		return
	}
	ctx.setPendingDo(parseScopeBody(ctx, body))
}

// parseDoWhileTail combines a cached `do` body with the `while <cond>;`
// that completes it into a DoWhile.
func parseDoWhileTail(ctx *Context, stmt []lexer.Lexeme, body []ast.ScopeItem, line int) *ast.DoWhile {
	cond, _ := exprcore.ParseForced(stmt[1:], ctx.Source, ctx.Diags, exprcore.Boolean)
	return &ast.DoWhile{Body: body, Condition: cond, Line: line}
}

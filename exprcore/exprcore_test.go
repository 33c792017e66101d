package exprcore_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/exprcore"
	"github.com/akashmaji946/langc/lexer"
)

func lex(t *testing.T, src string) []lexer.Lexeme {
	t.Helper()
	return lexer.New(src).Lex()
}

func TestParseSimpleMathExpression(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "1 + 2 * 3")
	expr, ok := exprcore.Parse(tokens, "main.lx", d)
	require.True(t, ok)
	assert.Empty(t, buf.String())
	assert.True(t, expr.IsMathematicalExpression)
	assert.False(t, d.HasErrors())
}

func TestParseBooleanExpression(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "a >= b && c != d")
	expr, ok := exprcore.Parse(tokens, "main.lx", d)
	require.True(t, ok)
	assert.False(t, expr.IsMathematicalExpression)
}

func TestParseRejectsDanglingOperator(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "1 + ")
	_, ok := exprcore.Parse(tokens, "main.lx", d)
	assert.False(t, ok)
	assert.True(t, d.HasErrors())
}

func TestParseRejectsMissingOperator(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "1 2")
	_, ok := exprcore.Parse(tokens, "main.lx", d)
	assert.False(t, ok)
}

func TestParseUnbalancedParens(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "(1 + 2")
	_, ok := exprcore.Parse(tokens, "main.lx", d)
	assert.False(t, ok)
}

func TestParseFunctionCallChain(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "foo(1, 2).bar(3)")
	expr, ok := exprcore.Parse(tokens, "main.lx", d)
	require.True(t, ok)
	require.Len(t, expr.Tokens, 1)
	call := expr.Tokens[0].Call
	require.NotNil(t, call)
	assert.Equal(t, "foo", call.Identifier)
	require.Len(t, call.Chain, 1)
	assert.Equal(t, "bar", call.Chain[0].Identifier)
}

func TestParseTemplateCall(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "make(int)(10)")
	expr, ok := exprcore.Parse(tokens, "main.lx", d)
	require.True(t, ok)
	call := expr.Tokens[0].Call
	require.NotNil(t, call)
	require.Len(t, call.TemplateArgs, 1)
	require.Len(t, call.Args, 1)
}

func TestParsePlainArrayLiteral(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "[1, 2, 3]")
	expr, ok := exprcore.Parse(tokens, "main.lx", d)
	require.True(t, ok)
	require.NotNil(t, expr.ArrayLiteral)
	assert.False(t, expr.ArrayLiteral.IsAssociative)
	assert.Len(t, expr.ArrayLiteral.Entries, 3)
}

func TestParseAssociativeArrayLiteral(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, `["a": 1, "b": 2]`)
	expr, ok := exprcore.Parse(tokens, "main.lx", d)
	require.True(t, ok)
	require.NotNil(t, expr.ArrayLiteral)
	assert.True(t, expr.ArrayLiteral.IsAssociative)
	assert.Len(t, expr.ArrayLiteral.Entries, 2)
}

func TestValidateRejectsWrongModeOperator(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	tokens := lex(t, "a && b")
	ok := exprcore.Validate(tokens, exprcore.Mathematical, "main.lx", d)
	assert.False(t, ok)
}

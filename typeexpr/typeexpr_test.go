package typeexpr_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/lexer"
	"github.com/akashmaji946/langc/typeexpr"
)

func lex(t *testing.T, src string) []lexer.Lexeme {
	t.Helper()
	return lexer.New(src).Lex()
}

func TestParseScalarType(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	info, ok := typeexpr.Parse(lex(t, "int"), "main.lx", d)
	require.True(t, ok)
	assert.Equal(t, ast.Scalar, info.Kind)
	assert.Equal(t, "int", info.Base)
	assert.False(t, info.IsPointer)
}

func TestParsePointerType(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	info, ok := typeexpr.Parse(lex(t, "ptr:int"), "main.lx", d)
	require.True(t, ok)
	assert.Equal(t, ast.PointerTo, info.Kind)
	assert.True(t, info.IsPointer)
	assert.Equal(t, "int", info.Base)
}

func TestParseStaticPointerArrayWithTrailingMutability(t *testing.T) {
	// spec.md end-to-end scenario 8: `ptr:int[10]:const foo`.
	var buf bytes.Buffer
	d := diag.New(&buf)
	info, ok := typeexpr.Parse(lex(t, "ptr:int[10]:const"), "main.lx", d)
	require.True(t, ok)
	assert.Equal(t, ast.StaticArray, info.Kind)
	assert.Equal(t, "10", info.Size)
	assert.Equal(t, "const", info.Mutability)
	require.NotNil(t, info.Elem)
	assert.True(t, info.Elem.IsPointer)
	assert.Equal(t, "int", info.Elem.Base)
}

func TestParseDynamicArrayType(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	info, ok := typeexpr.Parse(lex(t, "int[]"), "main.lx", d)
	require.True(t, ok)
	assert.Equal(t, ast.DynamicArray, info.Kind)
	require.NotNil(t, info.Elem)
	assert.Equal(t, "int", info.Elem.Base)
}

func TestParseAssociativeArrayType(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	info, ok := typeexpr.Parse(lex(t, "string[int]"), "main.lx", d)
	require.True(t, ok)
	assert.Equal(t, ast.AssocArray, info.Kind)
	require.NotNil(t, info.Key)
	require.NotNil(t, info.Value)
	assert.Equal(t, "int", info.Key.Base)
	assert.Equal(t, "string", info.Value.Base)
}

func TestParseRejectsUnbalancedBracket(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	_, ok := typeexpr.Parse(lex(t, "int[10"), "main.lx", d)
	assert.False(t, ok)
	assert.True(t, d.HasErrors())
}

func TestParseRejectsTooManyTypes(t *testing.T) {
	var buf bytes.Buffer
	d := diag.New(&buf)
	_, ok := typeexpr.Parse(lex(t, "int string"), "main.lx", d)
	assert.False(t, ok)
	assert.True(t, d.HasErrors())
}

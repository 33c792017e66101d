package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/lexer"
	"github.com/akashmaji946/langc/parser"
)

func parseSource(t *testing.T, src string) (*ast.Module, *diag.Diagnostics, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	d := diag.New(&buf)
	root := group.Build(lexer.New(src).Lex())
	mod, _ := parser.ParseModule(root, "main.lx", d)
	return mod, d, &buf
}

// spec.md end-to-end scenario 1: Hello World.
func TestHelloWorld(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ writeln("Hello"); }`)
	require.False(t, d.HasErrors())
	assert.Equal(t, "main", mod.Name)
	require.Len(t, mod.Functions, 1)
	fn := mod.Functions[0]
	assert.Equal(t, "main", fn.Name)
	assert.Nil(t, fn.ReturnType)
	require.Len(t, fn.Body, 1)
	item := fn.Body[0]
	require.Equal(t, ast.ItemCall, item.Kind)
	require.NotNil(t, item.Call)
	assert.Equal(t, "writeln", item.Call.Identifier)
	require.Len(t, item.Call.Args, 1)
}

// spec.md end-to-end scenario 2: chained call.
func TestChainedCall(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ a.b().c(1,2).d(); }`)
	require.False(t, d.HasErrors())
	require.Len(t, mod.Functions, 1)
	require.Len(t, mod.Functions[0].Body, 1)
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemCall, item.Kind)
	require.NotNil(t, item.Call)
	assert.Equal(t, "a", item.Call.Identifier)
	require.Len(t, item.Call.Chain, 3)
	assert.Equal(t, "b", item.Call.Chain[0].Identifier)
	assert.Equal(t, "c", item.Call.Chain[1].Identifier)
	require.Len(t, item.Call.Chain[1].Args, 2)
	assert.Equal(t, "d", item.Call.Chain[2].Identifier)
}

// spec.md end-to-end scenario 3: bad operator mode inside an if condition.
func TestBadOperatorModeInIfCondition(t *testing.T) {
	mod, d, buf := parseSource(t, `module main; fn main(){ if x + y { } }`)
	require.True(t, d.HasErrors())
	assert.Contains(t, buf.String(), `illegal symbol "+" found in expression`)
	require.Len(t, mod.Functions, 1)
}

// spec.md end-to-end scenario 4: unbalanced brackets in an initializer.
func TestUnbalancedBracketsInInitializer(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ var x = (1 + 2; }`)
	require.True(t, d.HasErrors())
	require.Len(t, mod.Functions, 1)
	assert.Empty(t, mod.Functions[0].Body)
}

// spec.md end-to-end scenario 5: associative array literal.
func TestAssociativeArrayLiteral(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; var m = ["a": 1, "b": 2];`)
	require.False(t, d.HasErrors())
	require.Len(t, mod.Variables, 1)
	v := mod.Variables[0]
	require.NotNil(t, v.Expr)
	require.NotNil(t, v.Expr.ArrayLiteral)
	assert.True(t, v.Expr.ArrayLiteral.IsAssociative)
	require.Len(t, v.Expr.ArrayLiteral.Entries, 2)
	for _, e := range v.Expr.ArrayLiteral.Entries {
		assert.Len(t, e.Key, 1)
		assert.Len(t, e.Value, 1)
	}
}

// spec.md end-to-end scenario 6: do-while.
func TestDoWhile(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ do { i++; } while(i<10); }`)
	require.False(t, d.HasErrors())
	require.Len(t, mod.Functions[0].Body, 1)
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemDoWhile, item.Kind)
	require.NotNil(t, item.DoWhile)
	require.Len(t, item.DoWhile.Body, 1)
	require.NotNil(t, item.DoWhile.Condition)
}

func TestDoWithoutWhileReportsMissingWhile(t *testing.T) {
	mod, d, buf := parseSource(t, `module main; fn main(){ do { i++; } }`)
	require.True(t, d.HasErrors())
	assert.Contains(t, buf.String(), "missing 'while' statement from do-while declaration")
	require.Len(t, mod.Functions, 1)
}

// spec.md end-to-end scenario 7: duplicate module statement.
func TestDuplicateModuleStatement(t *testing.T) {
	_, d, buf := parseSource(t, "module x; module x;")
	require.True(t, d.HasErrors())
	count := 0
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if bytes.Contains(line, []byte("Only one module statement is allowed per module.")) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestIfElseChain(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ if a { x(); } else if b { y(); } else { z(); } }`)
	require.False(t, d.HasErrors())
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemIf, item.Kind)
	require.NotNil(t, item.If.Else)
	require.NotNil(t, item.If.Else.If)
	require.NotNil(t, item.If.Else.If.Else)
	require.Nil(t, item.If.Else.If.Else.If)
}

func TestBreakOutsideLoopIsIllegal(t *testing.T) {
	_, d, buf := parseSource(t, `module main; fn main(){ break; }`)
	require.True(t, d.HasErrors())
	assert.Contains(t, buf.String(), "'break' is not legal outside a loop or switch body")
}

func TestBreakInsideForLoopIsLegal(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ for i, i<10, i++ { break; } }`)
	require.False(t, d.HasErrors())
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemFor, item.Kind)
	require.Len(t, item.For.Body, 1)
	assert.Equal(t, ast.ItemBreak, item.For.Body[0].Kind)
}

func TestSwitchWithCaseRangeAndDefault(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ switch x { case 1, 2 { y(); } case a .. b { z(); } default { w(); } } }`)
	require.False(t, d.HasErrors())
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemSwitch, item.Kind)
	sw := item.Switch
	require.Len(t, sw.Cases, 2)
	assert.False(t, sw.Cases[0].IsRange)
	assert.Len(t, sw.Cases[0].Values, 2)
	assert.True(t, sw.Cases[1].IsRange)
	assert.Len(t, sw.Cases[1].Values, 2)
	assert.True(t, sw.HasDefault)
}

func TestContinueLegalInsideForLoop(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ for i, i<10, i++ { continue; } }`)
	require.False(t, d.HasErrors())
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemFor, item.Kind)
	require.Len(t, item.For.Body, 1)
	assert.Equal(t, ast.ItemContinue, item.For.Body[0].Kind)
}

func TestContinueLegalInsideForeachLoop(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ foreach i, a .. b { continue; } }`)
	require.False(t, d.HasErrors())
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemForeach, item.Kind)
	require.Len(t, item.Foreach.Body, 1)
	assert.Equal(t, ast.ItemContinue, item.Foreach.Body[0].Kind)
}

func TestContinueLegalInsideWhileLoop(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ while x { continue; } }`)
	require.False(t, d.HasErrors())
	item := mod.Functions[0].Body[0]
	require.Equal(t, ast.ItemWhile, item.Kind)
	require.Len(t, item.While.Body, 1)
	assert.Equal(t, ast.ItemContinue, item.While.Body[0].Kind)
}

func TestContinueOutsideLoopIsIllegal(t *testing.T) {
	_, d, buf := parseSource(t, `module main; fn main(){ continue; }`)
	require.True(t, d.HasErrors())
	assert.Contains(t, buf.String(), "'continue' is not legal outside a loop body")
}

// spec.md end-to-end scenario 4: an unparseable initializer must not add a
// Variable at module scope either.
func TestUnbalancedBracketsInModuleScopeInitializer(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; var x = (1 + 2;`)
	require.True(t, d.HasErrors())
	assert.Empty(t, mod.Variables)
}

func TestMissingInitializerExpressionYieldsNoVariable(t *testing.T) {
	mod, d, _ := parseSource(t, `module main; fn main(){ var x = ; }`)
	require.True(t, d.HasErrors())
	assert.Empty(t, mod.Functions[0].Body)
}

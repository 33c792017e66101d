package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/lexer"
)

func build(t *testing.T, src string) *group.TokenNode {
	t.Helper()
	return group.Build(lexer.New(src).Lex())
}

func TestBuildSplitsOnSemicolons(t *testing.T) {
	root := build(t, "module main; import foo;")
	require.Len(t, root.Children, 2)
	assert.Equal(t, "module", root.Children[0].Statement[0].Text)
	assert.Equal(t, "import", root.Children[1].Statement[0].Text)
}

func TestBuildBlockHasOpenAndCloseSentinels(t *testing.T) {
	// The `fn main ( )` header is its own statement node; the block is the
	// sibling that follows it.
	root := build(t, "fn main() { writeln(1); }")
	require.Len(t, root.Children, 2)
	fnBody := root.Children[1]
	require.True(t, fnBody.IsBlock())

	children := fnBody.Children
	require.True(t, children[0].IsOpenBrace())
	require.True(t, children[len(children)-1].IsCloseBrace())
}

func TestBuildBlockBodyExcludesSentinels(t *testing.T) {
	root := build(t, "fn main() { writeln(1); }")
	fnBody := root.Children[1]
	body := fnBody.Body()
	require.Len(t, body, 1)
	assert.Equal(t, "writeln", body[0].Statement[0].Text)
}

func TestBuildNestedBlocks(t *testing.T) {
	root := build(t, "fn main() { if x { y(); } }")
	fnBody := root.Children[1]
	body := fnBody.Body()
	require.Len(t, body, 2)
	assert.Equal(t, "if", body[0].Statement[0].Text)
	ifNode := body[1]
	require.True(t, ifNode.IsBlock())
	innerBody := ifNode.Body()
	require.Len(t, innerBody, 1)
	assert.Equal(t, "y", innerBody[0].Statement[0].Text)
}

func TestBuildTrailingStatementWithoutSemicolonIsDropped(t *testing.T) {
	// Only `;`, `{` or `}` close a statement; an unterminated trailing
	// accumulator never gets flushed into the tree.
	root := build(t, "module main")
	assert.Len(t, root.Children, 0)
}

func TestBuildAttributeAbsorbsTrailingColon(t *testing.T) {
	root := build(t, "public:")
	require.Len(t, root.Children, 1)
	stmt := root.Children[0].Statement
	assert.Equal(t, []string{"public", ":"}, []string{stmt[0].Text, stmt[1].Text})
}

package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/langc/lexer"
)

func texts(lexemes []lexer.Lexeme) []string {
	out := make([]string, len(lexemes))
	for i, l := range lexemes {
		out[i] = l.Text
	}
	return out
}

func TestLexIdentifiersAndSymbols(t *testing.T) {
	out := lexer.New("module main;").Lex()
	assert.Equal(t, []string{"module", "main", ";"}, texts(out))
}

func TestLexStringLiteralKeepsQuotes(t *testing.T) {
	out := lexer.New(`"Hello"`).Lex()
	require.Len(t, out, 1)
	assert.Equal(t, `"Hello"`, out[0].Text)
	assert.Equal(t, lexer.String, out[0].Kind)
}

func TestLexStringLiteralWithEscapedQuote(t *testing.T) {
	out := lexer.New(`"a\"b"`).Lex()
	require.Len(t, out, 1)
	assert.Equal(t, `"a\"b"`, out[0].Text)
}

func TestLexCharLiteral(t *testing.T) {
	out := lexer.New(`'x'`).Lex()
	require.Len(t, out, 1)
	assert.Equal(t, lexer.Char, out[0].Kind)
	assert.Equal(t, `'x'`, out[0].Text)
}

func TestLexDiscardsCommentsByDefault(t *testing.T) {
	out := lexer.New("a // trailing comment\nb").Lex()
	assert.Equal(t, []string{"a", "b"}, texts(out))
}

func TestLexWithCommentsOptionKeepsThem(t *testing.T) {
	out := lexer.New("a // hi\nb", lexer.WithComments()).Lex()
	require.Len(t, out, 3)
	assert.Equal(t, lexer.Comment, out[1].Kind)
}

func TestLexBlockComment(t *testing.T) {
	out := lexer.New("a /* multi\nline */ b").Lex()
	assert.Equal(t, []string{"a", "b"}, texts(out))
}

func TestLexTracksLineNumbers(t *testing.T) {
	out := lexer.New("a;\nb;").Lex()
	require.Len(t, out, 4)
	assert.Equal(t, 1, out[0].Line)
	assert.Equal(t, 2, out[2].Line)
}

func TestLexCompoundSymbols(t *testing.T) {
	out := lexer.New("a >= b && c != d").Lex()
	assert.Equal(t, []string{"a", ">=", "b", "&&", "c", "!=", "d"}, texts(out))
}

func TestLexStructuralBracketsNeverCompound(t *testing.T) {
	// "](" must split into two symbols even though both chars are in
	// symbolChars, because ']' and '(' are in compoundExcluded.
	out := lexer.New("a[1](2)").Lex()
	assert.Equal(t, []string{"a", "[", "1", "]", "(", "2", ")"}, texts(out))
}

func TestLexDotGluesToWordByDefault(t *testing.T) {
	out := lexer.New("3.14").Lex()
	require.Len(t, out, 1)
	assert.Equal(t, "3.14", out[0].Text)
}

func TestLexDotSplitsAfterCloseParen(t *testing.T) {
	// The method-chaining exception: a '.' immediately after ')' is its
	// own Symbol lexeme rather than gluing onto the next word.
	out := lexer.New("a().b").Lex()
	assert.Equal(t, []string{"a", "(", ")", ".", "b"}, texts(out))
}

func TestLexDotSplitsAtStartOfChainedCall(t *testing.T) {
	// spec.md §8 scenario 2's degenerate chain `a.b().c(1,2).d();`: the
	// leading "a.b(" has no preceding ')', but "b(" still opens a chained
	// call, so the dot must split rather than glue "a.b" into one Word.
	out := lexer.New("a.b().c(1,2).d();").Lex()
	assert.Equal(t, []string{
		"a", ".", "b", "(", ")", ".", "c", "(", "1", ",", "2", ")", ".", "d", "(", ")", ";",
	}, texts(out))
}

func TestLexDotGluesWhenNotFollowedByCall(t *testing.T) {
	// A plain dotted name with nothing opening a call after it keeps the
	// existing glued-word behavior.
	out := lexer.New("a.b;").Lex()
	assert.Equal(t, []string{"a.b", ";"}, texts(out))
}

func TestLexRangeTokenWithSurroundingSpaces(t *testing.T) {
	// spec.md's range-literal grammar always shows spaces around `..`,
	// so it lexes as one standalone Word rather than gluing to neighbors.
	out := lexer.New("a .. b").Lex()
	assert.Equal(t, []string{"a", "..", "b"}, texts(out))
}

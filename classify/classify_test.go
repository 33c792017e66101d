package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/langc/classify"
	"github.com/akashmaji946/langc/lexer"
)

func classifyText(t *testing.T, src string) classify.Tag {
	t.Helper()
	return classify.Classify(lexer.New(src).Lex())
}

func TestClassifyEmptyStatement(t *testing.T) {
	assert.Equal(t, classify.EMPTY, classify.Classify(nil))
}

func TestClassifySingleKeywordTags(t *testing.T) {
	cases := map[string]classify.Tag{
		"module main":    classify.MODULE,
		"import foo":     classify.IMPORT,
		"include \"a\"":  classify.INCLUDE,
		"var x":          classify.VARIABLE,
		"enum Color":     classify.ENUM,
		"return 1":       classify.RETURN,
		"if x":           classify.IF,
		"else":           classify.ELSE,
		"switch x":       classify.SWITCH,
		"for i, i<10, i++": classify.FOR,
		"foreach i, x":   classify.FOREACH,
		"while x":        classify.WHILE,
		"break":          classify.BREAK,
		"continue":       classify.CONTINUE,
		"fn main":        classify.FUNCTION,
		"struct Point":   classify.STRUCT,
		"interface Shape": classify.INTERFACE,
		"template Box":   classify.TEMPLATE,
		"traits Foo":     classify.TRAITS,
		"this":           classify.THIS,
		"alias Foo":      classify.ALIAS,
		"internal fn":    classify.INTERNAL,
	}
	for src, want := range cases {
		assert.Equal(t, want, classifyText(t, src), "source: %q", src)
	}
}

func TestClassifyDoIsItsOwnTag(t *testing.T) {
	assert.Equal(t, classify.DO, classifyText(t, "do"))
}

func TestClassifyTwoWordKeywords(t *testing.T) {
	assert.Equal(t, classify.STATIC_THIS, classifyText(t, "static this"))
	assert.Equal(t, classify.STATIC_IF, classifyText(t, "static if x"))
	assert.Equal(t, classify.STATIC_ELSE, classifyText(t, "static else"))
	assert.Equal(t, classify.STRUCT, classifyText(t, "ref struct Point"))
}

func TestClassifyThreeWordSharedStaticThis(t *testing.T) {
	assert.Equal(t, classify.STATIC_THIS, classifyText(t, "shared static this"))
}

func TestClassifyBareAttributeKeywords(t *testing.T) {
	assert.Equal(t, classify.ATTRIBUTE, classifyText(t, "public"))
	assert.Equal(t, classify.ATTRIBUTE, classifyText(t, "const"))
}

func TestClassifyAttributeCall(t *testing.T) {
	assert.Equal(t, classify.ATTRIBUTE, classifyText(t, "@Deprecated"))
}

func TestClassifyUnknownFallsThrough(t *testing.T) {
	assert.Equal(t, classify.UNKNOWN, classifyText(t, "a.b().c()"))
}

func TestTagStringNamesKnownAndUnknownTags(t *testing.T) {
	assert.Equal(t, "MODULE", classify.MODULE.String())
	assert.Equal(t, "UNKNOWN", classify.Tag(9999).String())
}

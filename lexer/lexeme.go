/*
File    : langc/lexer/lexeme.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// Kind tags the shape of a Lexeme's text. spec.md's data model only requires
// {text, line} on a Lexeme; Kind is a pragmatic addition so the grouper and
// classifier never have to re-scan a lexeme's text to tell, say, a decimal
// literal apart from a lone `-` symbol.
type Kind int

const (
	// Word is an identifier, keyword, or number: any non-symbol,
	// non-whitespace run accumulated until the next symbol or whitespace.
	Word Kind = iota
	// String is a double-quoted string literal, quotes included.
	String
	// Char is a single-quoted character literal, quotes included.
	Char
	// Comment is a `//...` or `/*...*/` comment (only emitted when comment
	// inclusion was requested).
	Comment
	// Symbol is a single- or double-character operator/punctuation lexeme.
	Symbol
)

// Lexeme is the smallest chunk of source text the lexer emits.
type Lexeme struct {
	Text string
	Line int
	Kind Kind
}

// Is reports whether the lexeme's text equals s.
func (l Lexeme) Is(s string) bool { return l.Text == s }

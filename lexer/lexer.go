/*
File    : langc/lexer/lexer.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package lexer implements the front-end's hand-written lexical scanner.
It turns complete source text into an ordered list of Lexemes: identifiers,
numbers, string/char literals, comments, and symbols. It does not classify
lexemes into keywords or operators — that is the Classifier's job one layer
down the pipeline (package classify).
*/
package lexer

import "strings"

// symbolChars is the set of characters that form Symbol lexemes. The dot is
// deliberately excluded: it is kept glued to identifiers/numbers by default,
// and is only split out as its own symbol in the method-chaining exception —
// either the preceding lexeme was ")" or the dot opens a chained call
// (see dotStartsChainedCall).
const symbolChars = "+-*/%^<>=!&|~:;,(){}[]@?"

// compoundExcluded is the set of structural brackets and comma that can
// never participate in a two-character compound symbol, even when the
// adjacent character is itself a symbol char.
const compoundExcluded = "(){}],"

// Lexer scans one source file into Lexemes.
type Lexer struct {
	source    string
	runes     []rune
	pos       int
	line      int
	withComments bool

	// lastWasCloseParen tracks whether the most recently emitted lexeme was
	// the symbol ")" — the trigger for the dot/method-chaining exception.
	lastWasCloseParen bool
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithComments makes the lexer emit Comment lexemes instead of discarding
// comment text.
func WithComments() Option {
	return func(l *Lexer) { l.withComments = true }
}

// New creates a Lexer over source, ready to produce lexemes.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		source: source,
		runes:  []rune(source),
		line:   1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lex scans the whole source and returns its Lexemes in order.
func (l *Lexer) Lex() []Lexeme {
	var out []Lexeme
	var word strings.Builder
	wordLine := l.line

	flushWord := func() {
		if word.Len() == 0 {
			return
		}
		out = append(out, Lexeme{Text: word.String(), Line: wordLine, Kind: Word})
		word.Reset()
		l.lastWasCloseParen = false
	}

	for l.pos < len(l.runes) {
		r := l.runes[l.pos]

		switch {
		case r == '\n':
			flushWord()
			l.line++
			l.pos++

		case r == '\r':
			// Stray carriage returns outside strings/chars are dropped.
			l.pos++

		case r == ' ' || r == '\t':
			flushWord()
			l.pos++

		case r == '"':
			flushWord()
			out = append(out, l.scanQuoted('"', String))
			l.lastWasCloseParen = false

		case r == '\'':
			flushWord()
			out = append(out, l.scanQuoted('\'', Char))
			l.lastWasCloseParen = false

		case r == '/' && l.peek(1) == '/':
			flushWord()
			if c, ok := l.scanLineComment(); ok {
				out = append(out, c)
			}
			l.lastWasCloseParen = false

		case r == '/' && l.peek(1) == '*':
			flushWord()
			if c, ok := l.scanBlockComment(); ok {
				out = append(out, c)
			}
			l.lastWasCloseParen = false

		case r == '.':
			if l.lastWasCloseParen || (word.Len() > 0 && l.dotStartsChainedCall()) {
				flushWord()
				out = append(out, Lexeme{Text: ".", Line: l.line, Kind: Symbol})
				l.lastWasCloseParen = false
				l.pos++
			} else {
				if word.Len() == 0 {
					wordLine = l.line
				}
				word.WriteRune(r)
				l.pos++
			}

		case strings.ContainsRune(symbolChars, r):
			flushWord()
			lex := l.scanSymbol()
			out = append(out, lex)
			l.lastWasCloseParen = lex.Text == ")"

		default:
			if word.Len() == 0 {
				wordLine = l.line
			}
			word.WriteRune(r)
			l.pos++
		}
	}

	flushWord()
	return out
}

// peek returns the rune offset chars ahead of the current position, or 0 if
// that is past the end of input.
func (l *Lexer) peek(offset int) rune {
	i := l.pos + offset
	if i < 0 || i >= len(l.runes) {
		return 0
	}
	return l.runes[i]
}

// scanQuoted scans a string or character literal delimited by quote,
// preserving the surrounding quotes as part of the single emitted lexeme.
// A backslash escapes the following character unconditionally, including a
// closing quote, so `"a\"b"` is one literal.
func (l *Lexer) scanQuoted(quote rune, kind Kind) Lexeme {
	startLine := l.line
	var buf strings.Builder
	buf.WriteRune(quote)
	l.pos++

	for l.pos < len(l.runes) {
		c := l.runes[l.pos]

		if c == '\\' && l.pos+1 < len(l.runes) {
			buf.WriteRune(c)
			buf.WriteRune(l.runes[l.pos+1])
			if l.runes[l.pos+1] == '\n' {
				l.line++
			}
			l.pos += 2
			continue
		}

		if c == '\n' {
			l.line++
		}

		buf.WriteRune(c)
		l.pos++

		if c == quote {
			break
		}
	}

	return Lexeme{Text: buf.String(), Line: startLine, Kind: kind}
}

// scanLineComment consumes a `//` comment to end of line (exclusive) or
// EOF. Returns ok=false when comment inclusion was not requested, in which
// case the caller discards the text but the scan position has still moved
// past it.
func (l *Lexer) scanLineComment() (Lexeme, bool) {
	startLine := l.line
	var buf strings.Builder
	for l.pos < len(l.runes) && l.runes[l.pos] != '\n' {
		buf.WriteRune(l.runes[l.pos])
		l.pos++
	}
	if !l.withComments {
		return Lexeme{}, false
	}
	return Lexeme{Text: buf.String(), Line: startLine, Kind: Comment}, true
}

// scanBlockComment consumes a `/* ... */` comment, tracking embedded
// newlines so the line counter stays correct. An unterminated block comment
// consumes to EOF.
func (l *Lexer) scanBlockComment() (Lexeme, bool) {
	startLine := l.line
	var buf strings.Builder
	buf.WriteRune('/')
	buf.WriteRune('*')
	l.pos += 2

	for l.pos < len(l.runes) {
		c := l.runes[l.pos]
		if c == '\n' {
			l.line++
		}
		buf.WriteRune(c)
		if c == '*' && l.peek(1) == '/' {
			buf.WriteRune('/')
			l.pos += 2
			break
		}
		l.pos++
	}

	if !l.withComments {
		return Lexeme{}, false
	}
	return Lexeme{Text: buf.String(), Line: startLine, Kind: Comment}, true
}

// scanSymbol consumes one or two symbol characters per the compounding
// rule: two adjacent symbol chars merge into one lexeme unless either is a
// structural bracket or comma.
func (l *Lexer) scanSymbol() Lexeme {
	line := l.line
	c1 := l.runes[l.pos]
	c2 := l.peek(1)

	if c2 != 0 && strings.ContainsRune(symbolChars, c2) &&
		!strings.ContainsRune(compoundExcluded, c1) &&
		!strings.ContainsRune(compoundExcluded, c2) {
		l.pos += 2
		return Lexeme{Text: string(c1) + string(c2), Line: line, Kind: Symbol}
	}

	l.pos++
	return Lexeme{Text: string(c1), Line: line, Kind: Symbol}
}

// dotStartsChainedCall reports whether the '.' at the current position
// opens a method-chaining call suffix: an identifier run immediately
// followed by '(', e.g. the "b(" in "a.b(...)". This extends the
// preceded-by-')' exception to the start of a chain, where no prior call
// has happened yet, so a degenerate chain like `a.b().c(1,2).d();` (no
// parens of its own on the leading identifier) still splits into separate
// `a`, `.`, `b`, `(`... lexemes instead of gluing "a.b" into one Word. A
// plain dotted identifier not followed by a call, or a decimal literal
// like "3.14", is unaffected: this only fires when the upcoming identifier
// run is itself immediately followed by '('.
func (l *Lexer) dotStartsChainedCall() bool {
	i := l.pos + 1
	if i >= len(l.runes) || !isIdentStart(l.runes[i]) {
		return false
	}
	for i < len(l.runes) && isIdentPart(l.runes[i]) {
		i++
	}
	return i < len(l.runes) && l.runes[i] == '('
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the roots language.
//
// The roots lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/roots/internal/common/struct/loc"
	"github.com/michaelmacinnis/roots/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	notes bool   // True if ';' starts a comment.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Runes scanned on the current line.
	state action // Current action.

	source loc.T

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Annotated creates a new T that skips comments. A comment starts with a
// ';' at the beginning of a token and runs to the end of the line.
func Annotated(label string) *T {
	l := New(label)
	l.notes = true

	return l
}

// Lex scans all of text and returns its tokens.
func Lex(label, text string) []*token.T {
	l := New(label)

	l.Scan(text)

	var tokens []*token.T
	for t := l.Token(); t != nil; t = l.Token() {
		tokens = append(tokens, t)
	}

	return tokens
}

// Scan passes a text buffer to the lexer for scanning.
// Text not yet scanned is kept and the new text appended to it.
func (l *T) Scan(text string) {
	l.bytes = l.bytes[l.first:] + text
	l.index -= l.first
	l.first = 0

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	source := l.source

	l.tokens = append(l.tokens, token.New(c, l.Text(), &source))
	l.skip()
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

func delimiter(r rune) bool {
	return r == eof || r == '(' || r == ')' || r == '\'' || unicode.IsSpace(r)
}

// T states.

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()
		if delimiter(r) {
			l.emit(token.Symbol)

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.accept(r, w)
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case r == '(' || r == ')' || r == '\'':
			l.accept(r, w)
			l.emit(token.Class(r))

			return skipWhitespace
		case r == ';' && l.notes:
			return skipComment
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()
		default:
			return scanSymbol
		}
	}
}

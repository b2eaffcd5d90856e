// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the roots language.
package parser

import (
	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/struct/token"
	"github.com/michaelmacinnis/roots/internal/common/type/list"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
	"github.com/michaelmacinnis/roots/internal/reader/lexer"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes the tokens produced by item.
// The item function returns nil when there are no more tokens.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// All parses every expression in text.
func All(label, text string) ([]cell.I, error) {
	l := lexer.New(label)
	l.Scan(text)

	var cs []cell.I

	err := New(l.Token).Parse(func(c cell.I) {
		cs = append(cs, c)
	})

	return cs, err
}

// Annotated parses every expression in text, skipping comments.
func Annotated(label, text string) ([]cell.I, error) {
	l := lexer.Annotated(label)
	l.Scan(text)

	var cs []cell.I

	err := New(l.Token).Parse(func(c cell.I) {
		cs = append(cs, c)
	})

	return cs, err
}

// One parses text that must contain exactly one expression.
func One(label, text string) (cell.I, error) {
	l := lexer.New(label)
	l.Scan(text)

	return New(l.Token).Expression()
}

// Expression parses exactly one expression from all of the remaining tokens.
func (p *T) Expression() (c cell.I, err error) {
	defer p.recover(&err)

	t := p.peek()
	if t == nil {
		panic(fault.New(fault.ErrParse, "empty input"))
	}

	c = p.expression()

	if t = p.peek(); t != nil {
		panic(fault.New(fault.ErrParse, "unexpected trailing '%s'", t.Value()).At(t.Source()))
	}

	return c, nil
}

// Parse consumes tokens and emits expressions until there are no more tokens.
// Parsing stops at the first error.
func (p *T) Parse(emit func(cell.I)) (err error) {
	defer p.recover(&err)

	for t := p.peek(); t != nil; t = p.peek() {
		emit(p.expression())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	f, ok := r.(*fault.T)
	if !ok {
		panic(r)
	}

	*err = f
}

// T state functions.

// <body> ::= <expression>* .
func (p *T) body() cell.I {
	var cs []cell.I

	for t := p.peek(); t != nil && !t.Is(token.Close); t = p.peek() {
		cs = append(cs, p.expression())
	}

	return list.New(cs...)
}

// <expression> ::= Quote <expression> | Open <body> Close | Symbol .
func (p *T) expression() cell.I {
	t := p.consume()

	switch t.Class() {
	case token.Close:
		panic(fault.New(fault.ErrParse, "unexpected ')'").At(t.Source()))

	case token.Open:
		c := p.body()

		if p.peek() == nil {
			panic(fault.New(fault.ErrParse, "unmatched '('").At(t.Source()))
		}

		p.consume()

		return c

	case token.Quote:
		n := p.peek()
		if n == nil || n.Is(token.Close) {
			panic(fault.New(fault.ErrParse, "nothing to quote").At(t.Source()))
		}

		return list.New(sym.New("quote"), p.expression())
	}

	return sym.Token(t)
}

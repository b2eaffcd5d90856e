// Released under an MIT license. See LICENSE.

// Package reader turns lines of roots source text into expressions.
package reader

import (
	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/struct/token"
	"github.com/michaelmacinnis/roots/internal/reader/lexer"
	"github.com/michaelmacinnis/roots/internal/reader/parser"
)

// T (reader) encapsulates the roots lexer and parser. Expressions may span
// lines; a line may hold more than one expression.
type T struct {
	i    chan string
	name string
	o    chan result
	s    *lexer.T
}

type reader = T

type result struct {
	cs  []cell.I
	err error
}

// New creates a new reader for name.
func New(name string) *T {
	r := &T{
		i:    make(chan string),
		name: name,
		o:    make(chan result),
	}

	go r.start()

	return r
}

// Close terminates the reader. An expression left incomplete is an error.
func (r *reader) Close() error {
	close(r.i)

	return (<-r.o).err
}

// Scan reads the line and returns every expression completed by it.
// If scan encounters an error it returns the error along with the
// expressions completed before the error. Any partial expression is
// discarded after an error.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.i <- line

	o := <-r.o

	return o.cs, o.err
}

func (r *reader) next() bool {
	line, ok := <-r.i
	if ok {
		r.s.Scan(line)
	}

	return ok
}

func (r *reader) start() {
	for {
		r.s = lexer.New(r.name)

		if !r.next() {
			r.o <- result{}

			return
		}

		var cs []cell.I

		closed := false

		p := parser.New(func() *token.T {
			t := r.s.Token()

			for t == nil {
				r.o <- result{cs: cs}

				cs = nil

				if !r.next() {
					closed = true

					return nil
				}

				t = r.s.Token()
			}

			return t
		})

		err := p.Parse(func(c cell.I) {
			cs = append(cs, c)
		})
		if closed {
			r.o <- result{err: err}

			return
		}

		r.o <- result{cs: cs, err: err}
	}
}

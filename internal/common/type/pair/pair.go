// Released under an MIT license. See LICENSE.

// Package pair provides the roots cons cell type. Pairs are immutable.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
)

const name = "list"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a list with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	q := To(c)

	for p != Null && q != Null {
		if !p.car.Equal(q.car) {
			return false
		}

		p, q = To(p.cdr), To(q.cdr)
	}

	return p == q
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	var b strings.Builder

	b.WriteByte('(')

	for c := cell.I(p); c != Null; c = Cdr(c) {
		if c != cell.I(p) {
			b.WriteByte(' ')
		}

		b.WriteString(literal.String(Car(c)))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// The car of Null is Null. If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// The cdr of Null is Null. If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cons conses h and t together to form a new pair.
// The tail t must be a pair; all roots lists are proper.
func Cons(h, t cell.I) cell.I {
	if !Is(t) {
		panic("cons requires a list tail, got " + t.Name())
	}

	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair, including Null.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}

// Released under an MIT license. See LICENSE.

// Package commands provides the roots arithmetic primitives. Each primitive
// is passed a list of already evaluated arguments.
package commands

import (
	"math/big"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/integer"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/type/create"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
	"github.com/michaelmacinnis/roots/internal/common/validate"
)

// Add returns the sum of args. The sum of no arguments is 0.
func Add(args cell.I) (cell.I, error) {
	sum := &big.Int{}

	for ; args != pair.Null; args = pair.Cdr(args) {
		n, err := number(pair.Car(args))
		if err != nil {
			return nil, err
		}

		sum.Add(sum, n)
	}

	return integer.Cell(sum), nil
}

// Lt returns t if the first of two arguments is less than the second.
func Lt(args cell.I) (cell.I, error) {
	v, err := numbers(args, 2)
	if err != nil {
		return nil, err
	}

	return create.Bool(v[0].Cmp(v[1]) < 0), nil
}

// Sub returns the difference of two arguments.
func Sub(args cell.I) (cell.I, error) {
	v, err := numbers(args, 2)
	if err != nil {
		return nil, err
	}

	return integer.Cell(new(big.Int).Sub(v[0], v[1])), nil
}

func number(c cell.I) (*big.Int, error) {
	n, ok := integer.Value(c)
	if !ok {
		return nil, fault.New(fault.ErrType, "%s is not an integer", literal.String(c))
	}

	return n, nil
}

func numbers(args cell.I, n int) ([]*big.Int, error) {
	v, err := validate.Fixed(args, n, n)
	if err != nil {
		return nil, err
	}

	ns := make([]*big.Int, len(v))

	for i, c := range v {
		ns[i], err = number(c)
		if err != nil {
			return nil, err
		}
	}

	return ns, nil
}

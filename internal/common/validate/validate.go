// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to a form.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/type/list"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
)

// Variadic returns at least min and at most max arguments from actual as a
// slice along with any remaining arguments.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if actual == pair.Null {
			if i < min {
				s := Count(min, "argument", "s")

				return nil, nil, fault.New(fault.ErrArity, "expected %s, passed %d", s, i)
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, nil
}

// Fixed returns between min and max arguments from actual as a slice.
// Any remaining arguments are an error.
func Fixed(actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if rest != pair.Null {
		s := Count(max, "argument", "s")
		n := list.Length(actual)

		return nil, fault.New(fault.ErrArity, "expected %s, passed %d", s, n)
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

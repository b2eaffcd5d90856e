// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
)

// Elements returns the elements of list as a slice.
// A non-pair value where a pair is expected will cause a panic.
func Elements(list cell.I) []cell.I {
	elements := make([]cell.I, 0, Length(list))

	for ; list != pair.Null; list = pair.Cdr(list) {
		elements = append(elements, pair.Car(list))
	}

	return elements
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
func Length(list cell.I) int {
	length := 0

	for list != nil && list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	list := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		list = pair.Cons(elements[i], list)
	}

	return list
}

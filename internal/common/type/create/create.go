// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating roots values.
package create

import (
	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
)

// Bool returns the roots value corresponding to the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return sym.True
	}

	return pair.Null
}

// Atomic returns true if c is an atom or the empty list.
func Atomic(c cell.I) bool {
	return sym.Is(c) || c == pair.Null
}

// True returns true if c is the atom t.
func True(c cell.I) bool {
	return sym.True.Equal(c)
}

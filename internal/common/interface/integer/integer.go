// Released under an MIT license. See LICENSE.

// Package integer converts a roots cell to an arbitrary-precision integer, if possible.
package integer

import (
	"math/big"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
)

// Value returns the *big.Int value for a cell. Only an atom whose text is a
// base-10 integer has an integer value.
func Value(c cell.I) (*big.Int, bool) {
	if !sym.Is(c) {
		return nil, false
	}

	return new(big.Int).SetString(sym.To(c).String(), 10)
}

// Cell returns the atom representing the integer i.
func Cell(i *big.Int) cell.I {
	return sym.New(i.String())
}

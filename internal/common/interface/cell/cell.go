// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all roots expressions.
package cell

// I (cell) is the basic unit of storage in roots. Every expression, atom or
// list, is a cell.
type I interface {
	Equal(c I) bool
	Name() string
}

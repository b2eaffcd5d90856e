// Released under an MIT license. See LICENSE.

// Package boot provides the roots meta-circular evaluator.
//
// The script defines eval. and its helpers in roots itself. After it has
// been evaluated, (eval. 'e 'a) evaluates the expression e in the
// association-list environment a.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lisp
var script string //nolint:gochecknoglobals

// Entry is the name of the meta-circular evaluator's entry point.
const Entry = "eval."

// Script returns the source of the meta-circular evaluator.
func Script() string {
	return script
}

// Released under an MIT license. See LICENSE.

// Package fault provides the errors raised while reading and evaluating roots code.
package fault

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/roots/internal/common/struct/loc"
)

// Kinds of failure. Match with errors.Is.
var (
	ErrArity    = errors.New("arity mismatch")
	ErrCallable = errors.New("bad callable")
	ErrDepth    = errors.New("recursion too deep")
	ErrParse    = errors.New("parse error")
	ErrType     = errors.New("type mismatch")
	ErrUnbound  = errors.New("unbound name")
)

// T (fault) is a failure of a single reading or evaluation step.
type T struct {
	kind   error
	msg    string
	source *loc.T
	step   string
}

type fault = T

// New creates a fault of the given kind.
func New(kind error, format string, args ...interface{}) *fault {
	return &fault{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// At records the source location of the fault, if one is not already known.
func (f *fault) At(source *loc.T) *fault {
	if f.source == nil {
		f.source = source
	}

	return f
}

// In records the literal form of the step that failed, if one is not
// already known. The innermost step wins.
func (f *fault) In(step string) *fault {
	if f.step == "" {
		f.step = step
	}

	return f
}

// Error returns the text of the fault.
func (f *fault) Error() string {
	s := f.kind.Error()
	if f.msg != "" {
		s += ": " + f.msg
	}

	if f.step != "" {
		s += " in " + f.step
	}

	if f.source != nil {
		s = f.source.String() + ": " + s
	}

	return s
}

// Source returns the lexical location of the fault, or nil if it is unknown.
func (f *fault) Source() *loc.T {
	return f.source
}

// Step returns the literal form of the step that failed.
func (f *fault) Step() string {
	return f.step
}

// Unwrap returns the kind of the fault.
func (f *fault) Unwrap() error {
	return f.kind
}

// Name renders the name s for inclusion in a message.
// Names that would not print plainly are written in canonical form.
func Name(s string) string {
	if s == "" {
		return adapted.CanonicalString(s)
	}

	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsGraphic(r) || unicode.IsSpace(r) {
			return adapted.CanonicalString(s)
		}
	}

	return s
}

// To returns the *T wrapped by err, if there is one.
func To(err error) (*fault, bool) {
	var f *fault

	ok := errors.As(err, &f)

	return f, ok
}

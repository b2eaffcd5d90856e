// Released under an MIT license. See LICENSE.

// Package task provides the roots evaluator.
//
// Evaluation is a function of an expression and an environment. It returns
// a value and the environment to be used by whatever is evaluated next. Only
// label and defun, when they are the expression being evaluated, return an
// environment that differs from the one they were given.
package task

import (
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/type/env"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
	"github.com/michaelmacinnis/roots/internal/engine/form"
)

// DefaultDepth is the recursion ceiling used when none is configured.
const DefaultDepth = 100000

// Policy determines how label binds its value.
type Policy int

const (
	// Deferred binds the unevaluated value expression. A lookup of the
	// name yields that expression verbatim.
	Deferred Policy = iota

	// Eager evaluates the value expression at binding time. Lambda
	// expressions are bound as is.
	Eager
)

// Config holds the settings for a T.
type Config struct {
	Depth  int            // Recursion ceiling. Zero means no ceiling.
	Policy Policy         // Label binding policy.
	Trace  *logrus.Logger // If set, each step is logged at debug level.
}

// T (task) evaluates roots expressions. A T holds only its configuration
// and may be shared by concurrent evaluations.
type T struct {
	config Config
}

// New creates a new T.
func New(c Config) *T {
	return &T{config: c}
}

// Evaluate evaluates the expression c in the environment e.
func (t *T) Evaluate(c cell.I, e *env.T) (cell.I, *env.T, error) {
	return t.eval(c, e, 0)
}

// Sequence evaluates each expression in cs, threading the environment
// from one to the next. It returns the value of the last expression.
// On failure the environment in effect before the failing expression is
// returned along with the error.
func (t *T) Sequence(cs []cell.I, e *env.T) (cell.I, *env.T, error) {
	v := pair.Null

	for _, c := range cs {
		r, next, err := t.eval(c, e, 0)
		if err != nil {
			return nil, e, err
		}

		v, e = r, next
	}

	return v, e, nil
}

func (t *T) eval(c cell.I, e *env.T, depth int) (cell.I, *env.T, error) {
	if t.config.Depth > 0 && depth > t.config.Depth {
		err := fault.New(fault.ErrDepth, "more than %d nested steps", t.config.Depth)

		return nil, e, failed(err, c)
	}

	tracing := t.tracing()
	if tracing {
		t.config.Trace.WithFields(logrus.Fields{
			"depth": depth,
			"expr":  literal.String(c),
		}).Debug("eval")
	}

	v, next, err := t.dispatch(c, e, depth)
	if err != nil {
		return nil, e, failed(err, c)
	}

	if tracing {
		t.config.Trace.WithFields(logrus.Fields{
			"depth": depth,
			"value": literal.String(v),
		}).Debug("done")
	}

	return v, next, nil
}

func (t *T) dispatch(c cell.I, e *env.T, depth int) (cell.I, *env.T, error) {
	if sym.Is(c) {
		name := sym.To(c).String()

		v, ok := e.Lookup(name)
		if !ok {
			return nil, e, fault.New(fault.ErrUnbound, "%s", fault.Name(name))
		}

		return v, e, nil
	}

	if c == pair.Null {
		return c, e, nil
	}

	head, args := pair.Car(c), pair.Cdr(c)

	if sym.Is(head) {
		name := sym.To(head).String()

		if k := form.Lookup(name); k != form.None {
			return t.special(k, args, e, depth)
		}

		bound, ok := e.Lookup(name)
		if !ok {
			return nil, e, fault.New(fault.ErrUnbound, "%s", fault.Name(name))
		}

		v, _, err := t.eval(pair.Cons(bound, args), e, depth+1)

		return v, e, err
	}

	if !lambda(head) {
		err := fault.New(fault.ErrCallable, "%s is not a lambda expression", literal.String(head))

		return nil, e, err
	}

	v, err := t.apply(head, args, e, depth)

	return v, e, err
}

func (t *T) tracing() bool {
	return t.config.Trace != nil && t.config.Trace.IsLevelEnabled(logrus.DebugLevel)
}

// failed records c as the failing step, if no inner step has been recorded.
func failed(err error, c cell.I) error {
	f, ok := fault.To(err)
	if !ok || f.Step() != "" {
		return err
	}

	f.In(literal.String(c))

	if s := sym.Source(c); s != nil {
		f.At(s)
	} else if pair.Is(c) && c != pair.Null {
		if s := sym.Source(pair.Car(c)); s != nil {
			f.At(s)
		}
	}

	return f
}

func lambda(c cell.I) bool {
	if !pair.Is(c) || c == pair.Null {
		return false
	}

	head := pair.Car(c)

	return sym.Is(head) && sym.To(head).String() == form.Lambda
}

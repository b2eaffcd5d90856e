// Released under an MIT license. See LICENSE.

// Package engine provides the entry points for evaluating roots code.
package engine

import (
	"sync"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/type/env"
	"github.com/michaelmacinnis/roots/internal/common/type/list"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
	"github.com/michaelmacinnis/roots/internal/engine/boot"
	"github.com/michaelmacinnis/roots/internal/engine/task"
	"github.com/michaelmacinnis/roots/internal/reader/parser"
)

// T (engine) is a facade in front of the machinery for evaluating roots code.
type T struct {
	boot sync.Once
	err  error
	meta *env.T
	task *task.T
}

// New creates a new T.
func New(c task.Config) *T {
	return &T{task: task.New(c)}
}

// Boot returns an environment holding the meta-circular evaluator.
// Its source is evaluated on first use.
func (e *T) Boot() (*env.T, error) {
	e.boot.Do(func() {
		cs, err := parser.Annotated("boot", boot.Script())
		if err != nil {
			e.err = err

			return
		}

		_, e.meta, e.err = e.task.Sequence(cs, env.Empty())
	})

	return e.meta, e.err
}

// Evaluate evaluates text, which must hold exactly one expression, in a.
func (e *T) Evaluate(label, text string, a *env.T) (cell.I, *env.T, error) {
	c, err := parser.One(label, text)
	if err != nil {
		return nil, a, err
	}

	return e.task.Evaluate(c, a)
}

// Expression evaluates the already parsed expression c in a.
func (e *T) Expression(c cell.I, a *env.T) (cell.I, *env.T, error) {
	return e.task.Evaluate(c, a)
}

// Meta evaluates text, which must hold exactly one expression, with the
// meta-circular evaluator. The environment a is passed to the evaluator
// as a quoted association list. The environment returned is a.
func (e *T) Meta(label, text string, a *env.T) (cell.I, *env.T, error) {
	c, err := parser.One(label, text)
	if err != nil {
		return nil, a, err
	}

	return e.Program(c, a)
}

// Program evaluates the already parsed expression c with the
// meta-circular evaluator in the environment a.
func (e *T) Program(c cell.I, a *env.T) (cell.I, *env.T, error) {
	meta, err := e.Boot()
	if err != nil {
		return nil, a, err
	}

	quote := sym.New("quote")
	call := list.New(sym.New(boot.Entry), list.New(quote, c), list.New(quote, a.List()))

	v, _, err := e.task.Evaluate(call, meta)

	return v, a, err
}

// Run evaluates every expression in text, threading the environment from
// one expression to the next, starting with a. The value of the last
// expression is returned. The empty program evaluates to ().
func (e *T) Run(label, text string, a *env.T) (cell.I, *env.T, error) {
	cs, err := parser.All(label, text)
	if err != nil {
		return nil, a, err
	}

	return e.task.Sequence(cs, a)
}

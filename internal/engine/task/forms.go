// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/type/create"
	"github.com/michaelmacinnis/roots/internal/common/type/env"
	"github.com/michaelmacinnis/roots/internal/common/type/list"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
	"github.com/michaelmacinnis/roots/internal/common/validate"
	"github.com/michaelmacinnis/roots/internal/engine/commands"
	"github.com/michaelmacinnis/roots/internal/engine/form"
)

//nolint:cyclop,funlen
func (t *T) special(k form.Kind, args cell.I, e *env.T, depth int) (cell.I, *env.T, error) {
	switch k {
	case form.Quote:
		v, err := validate.Fixed(args, 1, 1)
		if err != nil {
			return nil, e, err
		}

		return v[0], e, nil

	case form.Atom:
		v, err := t.operands(args, 1, e, depth)
		if err != nil {
			return nil, e, err
		}

		return create.Bool(create.Atomic(v[0])), e, nil

	case form.Eq:
		v, err := t.operands(args, 2, e, depth)
		if err != nil {
			return nil, e, err
		}

		return create.Bool(create.Atomic(v[0]) && v[0].Equal(v[1])), e, nil

	case form.Car:
		v, err := t.list(k, args, e, depth)
		if err != nil {
			return nil, e, err
		}

		return pair.Car(v), e, nil

	case form.Cdr:
		v, err := t.list(k, args, e, depth)
		if err != nil {
			return nil, e, err
		}

		return pair.Cdr(v), e, nil

	case form.Cons:
		v, err := t.operands(args, 2, e, depth)
		if err != nil {
			return nil, e, err
		}

		if !pair.Is(v[1]) {
			return nil, e, mismatch(k, v[1])
		}

		return pair.Cons(v[0], v[1]), e, nil

	case form.Cond:
		v, err := t.cond(args, e, depth)

		return v, e, err

	case form.Label:
		v, err := validate.Fixed(args, 2, 2)
		if err != nil {
			return nil, e, err
		}

		return t.bind(v[0], v[1], e, depth)

	case form.Defun:
		v, err := validate.Fixed(args, 3, 3)
		if err != nil {
			return nil, e, err
		}

		return t.bind(v[0], list.New(sym.New(form.Lambda), v[1], v[2]), e, depth)

	case form.Add:
		var vs []cell.I

		for ; args != pair.Null; args = pair.Cdr(args) {
			v, _, err := t.eval(pair.Car(args), e, depth+1)
			if err != nil {
				return nil, e, err
			}

			vs = append(vs, v)
		}

		v, err := commands.Add(list.New(vs...))

		return v, e, err

	case form.Lt, form.Sub:
		v, err := t.operands(args, 2, e, depth)
		if err != nil {
			return nil, e, err
		}

		op := commands.Sub
		if k == form.Lt {
			op = commands.Lt
		}

		r, err := op(list.New(v...))

		return r, e, err

	case form.None:
	}

	panic("not a special form: " + k.String())
}

// apply applies the lambda expression head to the unevaluated args.
// Arguments are evaluated in e. The body is evaluated in e extended with
// the parameter bindings. The extension is discarded.
func (t *T) apply(head, args cell.I, e *env.T, depth int) (cell.I, error) {
	parts := list.Elements(head)
	if len(parts) != 3 { //nolint:gomnd
		return nil, fault.New(
			fault.ErrType, "expected (lambda params body), got %s", literal.String(head),
		)
	}

	params, body := parts[1], parts[2]
	if !pair.Is(params) {
		return nil, fault.New(fault.ErrType, "lambda parameters must be a list, got %s", literal.String(params))
	}

	names := list.Elements(params)
	for _, n := range names {
		if !sym.Is(n) {
			return nil, fault.New(fault.ErrType, "lambda parameter must be an atom, got %s", literal.String(n))
		}
	}

	if n := list.Length(args); n != len(names) {
		s := validate.Count(len(names), "argument", "s")

		return nil, fault.New(fault.ErrArity, "expected %s, passed %d", s, n)
	}

	scope := e

	for i := 0; args != pair.Null; i, args = i+1, pair.Cdr(args) {
		v, _, err := t.eval(pair.Car(args), e, depth+1)
		if err != nil {
			return nil, err
		}

		scope = scope.Extend(sym.To(names[i]).String(), v)
	}

	v, _, err := t.eval(body, scope, depth+1)

	return v, err
}

// bind returns e extended with name bound according to the label policy.
func (t *T) bind(name, value cell.I, e *env.T, depth int) (cell.I, *env.T, error) {
	if !sym.Is(name) {
		return nil, e, fault.New(fault.ErrType, "name must be an atom, got %s", literal.String(name))
	}

	if t.config.Policy == Eager && !lambda(value) {
		v, _, err := t.eval(value, e, depth+1)
		if err != nil {
			return nil, e, err
		}

		value = v
	}

	return pair.Null, e.Extend(sym.To(name).String(), value), nil
}

// cond checks every clause before evaluating predicates left to right.
func (t *T) cond(args cell.I, e *env.T, depth int) (cell.I, error) {
	clauses := list.Elements(args)

	for _, c := range clauses {
		if !pair.Is(c) || list.Length(c) != 2 { //nolint:gomnd
			return nil, fault.New(
				fault.ErrType, "expected (predicate result), got %s", literal.String(c),
			)
		}
	}

	for _, c := range clauses {
		p, _, err := t.eval(pair.Car(c), e, depth+1)
		if err != nil {
			return nil, err
		}

		if create.True(p) {
			v, _, err := t.eval(pair.Cadr(c), e, depth+1)

			return v, err
		}
	}

	return pair.Null, nil
}

// list evaluates the single argument to the form k, which must be a list.
func (t *T) list(k form.Kind, args cell.I, e *env.T, depth int) (cell.I, error) {
	v, err := t.operands(args, 1, e, depth)
	if err != nil {
		return nil, err
	}

	if !pair.Is(v[0]) {
		return nil, mismatch(k, v[0])
	}

	return v[0], nil
}

// operands evaluates exactly n arguments.
func (t *T) operands(args cell.I, n int, e *env.T, depth int) ([]cell.I, error) {
	v, err := validate.Fixed(args, n, n)
	if err != nil {
		return nil, err
	}

	for i, c := range v {
		v[i], _, err = t.eval(c, e, depth+1)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func mismatch(k form.Kind, c cell.I) error {
	return fault.New(fault.ErrType, "%s requires a list, got %s %s", k, c.Name(), literal.String(c))
}

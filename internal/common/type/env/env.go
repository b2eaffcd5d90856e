// Released under an MIT license. See LICENSE.

// Package env provides the roots environment type.
//
// An environment is a persistent association list. Extending an environment
// allocates a single node and leaves the original untouched, so environments
// can be shared freely. The nil *T is the empty environment.
package env

import (
	"sort"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/type/list"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
)

// T (env) binds a name to a value on top of a previous environment.
type T struct {
	key      string
	value    cell.I
	previous *T
}

type env = T

// Empty returns the empty environment.
func Empty() *env {
	return nil
}

// FromList creates an environment from an association list of the form
// ((name value) ...), where the first entry is the most recent binding.
func FromList(c cell.I) (*env, error) {
	if !pair.Is(c) {
		return nil, fault.New(fault.ErrType, "environment must be a list, got %s", c.Name())
	}

	entries := list.Elements(c)

	var e *env

	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if !pair.Is(entry) || list.Length(entry) != 2 || !sym.Is(pair.Car(entry)) {
			return nil, fault.New(
				fault.ErrType, "environment entry must be (name value), got %s",
				literal.String(entry),
			)
		}

		e = e.Extend(sym.To(pair.Car(entry)).String(), pair.Cadr(entry))
	}

	return e, nil
}

// Extend returns a new environment with k bound to v.
func (e *env) Extend(k string, v cell.I) *env {
	return &env{key: k, value: v, previous: e}
}

// List returns the canonical association list for the environment e.
// Shadowed bindings are omitted. The most recent binding is first.
func (e *env) List() cell.I {
	var entries []cell.I

	e.visible(func(k string, v cell.I) {
		entries = append(entries, list.New(sym.New(k), v))
	})

	return list.New(entries...)
}

// Lookup retrieves the value bound to the name k in the env e.
func (e *env) Lookup(k string) (cell.I, bool) {
	for ; e != nil; e = e.previous {
		if e.key == k {
			return e.value, true
		}
	}

	return nil, false
}

// Names returns the sorted names visible in the env e.
func (e *env) Names() []string {
	var names []string

	e.visible(func(k string, _ cell.I) {
		names = append(names, k)
	})

	sort.Strings(names)

	return names
}

// String returns the literal representation of the canonical association list.
func (e *env) String() string {
	return literal.String(e.List())
}

func (e *env) visible(f func(k string, v cell.I)) {
	seen := map[string]bool{}

	for ; e != nil; e = e.previous {
		if seen[e.key] {
			continue
		}

		seen[e.key] = true

		f(e.key, e.value)
	}
}

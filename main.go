// Released under an MIT license. See LICENSE.

/*
Roots is an interpreter for the seven primitive operators of McCarthy's
Lisp, extended with label, defun, and integer arithmetic.

	(defun separate (lst)
	    (cond
	        ((eq (cdr lst) '()) lst)
	        ('t (cons (car lst) (cons '| (separate (cdr lst)))))))

	(separate '(a b c))

evaluates to (a | b | c). The same programs can be run through eval., a
meta-circular evaluator written in roots, with -m.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
	"github.com/michaelmacinnis/roots/internal/common/type/env"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
	"github.com/michaelmacinnis/roots/internal/engine"
	"github.com/michaelmacinnis/roots/internal/engine/form"
	"github.com/michaelmacinnis/roots/internal/engine/task"
	"github.com/michaelmacinnis/roots/internal/reader/parser"
	"github.com/michaelmacinnis/roots/internal/system/options"
	"github.com/michaelmacinnis/roots/internal/ui"
)

// session threads one environment through every expression it evaluates.
type session struct {
	engine *engine.T
	env    *env.T
	failed bool
	meta   bool
	out    io.Writer
}

func newSession(c task.Config, meta bool, out io.Writer) *session {
	return &session{
		engine: engine.New(c),
		env:    env.Empty(),
		meta:   meta,
		out:    out,
	}
}

// Complete returns the bound names and special forms that start with prefix.
func (s *session) Complete(prefix string) []string {
	var cs []string

	for _, n := range append(s.env.Names(), append(form.Names(), form.Lambda)...) {
		if strings.HasPrefix(n, prefix) {
			cs = append(cs, n)
		}
	}

	sort.Strings(cs)

	return cs
}

// Evaluate evaluates c and prints its value.
func (s *session) Evaluate(c cell.I) error {
	v, err := s.evaluate(c)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, literal.String(v))

	return nil
}

// Fail records an error encountered while reading.
func (s *session) Fail(_ error) {
	s.failed = true
}

// program evaluates each expression in text and returns the last value.
func (s *session) program(label, text string) (cell.I, error) {
	cs, err := parser.All(label, text)
	if err != nil {
		s.failed = true

		return nil, err
	}

	v := pair.Null

	for _, c := range cs {
		v, err = s.evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// evaluate evaluates c natively or, in meta mode, with eval.. Top-level
// label and defun are always evaluated natively so that their bindings
// reach the environment passed to later expressions.
func (s *session) evaluate(c cell.I) (cell.I, error) {
	var (
		v   cell.I
		e   = s.env
		err error
	)

	if s.meta && !binding(c) {
		v, _, err = s.engine.Program(c, s.env)
	} else {
		v, e, err = s.engine.Expression(c, s.env)
	}

	if err != nil {
		s.failed = true

		return nil, err
	}

	s.env = e

	return v, nil
}

func binding(c cell.I) bool {
	if !pair.Is(c) || c == pair.Null || !sym.Is(pair.Car(c)) {
		return false
	}

	k := form.Lookup(sym.To(pair.Car(c)).String())

	return k == form.Label || k == form.Defun
}

func config() task.Config {
	c := task.Config{Depth: options.Depth()}

	if options.Eager() {
		c.Policy = task.Eager
	}

	if options.Trace() {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

		c.Trace = log
	}

	return c
}

func run(s *session) error {
	var (
		err error
		v   = pair.Null
	)

	if command := options.Command(); command != "" {
		v, err = s.program("command", command)
	} else if scripts := options.Scripts(); len(scripts) > 0 {
		for _, path := range scripts {
			var text []byte

			text, err = os.ReadFile(path)
			if err != nil {
				s.failed = true

				break
			}

			v, err = s.program(path, string(text))
			if err != nil {
				break
			}
		}
	} else if options.Interactive() {
		return ui.Run(s)
	} else {
		return ui.Stream(os.Stdin, os.Stderr, s)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, literal.String(v))

	return nil
}

func main() {
	options.Parse()

	s := newSession(config(), options.Meta(), os.Stdout)

	if err := run(s); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		os.Exit(1)
	}

	if s.failed && !options.Interactive() {
		os.Exit(1)
	}
}

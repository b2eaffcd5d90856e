// Released under an MIT license. See LICENSE.

// Package options parses the roots command line.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by roots -v.
const Version = "roots 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	depth       int
	eager       bool
	interactive bool
	meta        bool
	scripts     []string
	trace       bool
	usage       = `roots

Usage:
  roots [-t] [-d DEPTH] [-p POLICY] [-m] SCRIPT...
  roots [-t] [-d DEPTH] [-p POLICY] [-m] -c COMMAND
  roots [-t] [-d DEPTH] [-p POLICY] [-m] [-i]
  roots -h
  roots -v

Arguments:
  SCRIPT  Path to a roots program.

Options:
  -c, --command=COMMAND  Evaluate the specified program.
  -d, --depth=DEPTH      Recursion ceiling, 0 for none [default: 100000].
  -p, --policy=POLICY    Label policy, deferred or eager [default: deferred].
  -m, --meta             Evaluate with the meta-circular evaluator.
  -t, --trace            Log each evaluation step to stderr.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print roots version.

Scripts are evaluated in order, in a single environment. If roots' stdin is
a TTY and there are no scripts or command, roots is interactive. Otherwise,
expressions are read from stdin.
`
)

// Command returns the text passed with -c.
func Command() string {
	return command
}

// Depth returns the recursion ceiling.
func Depth() int {
	return depth
}

// Eager returns true if label should evaluate its value when binding.
func Eager() bool {
	return eager
}

// Interactive returns true if roots should prompt for input.
func Interactive() bool {
	return interactive
}

// Meta returns true if expressions should be evaluated by the
// meta-circular evaluator.
func Meta() bool {
	return meta
}

// Parse parses os.Args. A usage error terminates the process with status 2.
func Parse() {
	p := &docopt.Parser{HelpHandler: help}

	err := parse(p, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
}

// Scripts returns the paths of the scripts to evaluate.
func Scripts() []string {
	return scripts
}

// Trace returns true if evaluation steps should be logged.
func Trace() bool {
	return trace
}

func help(err error, usage string) {
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	fmt.Println(usage)
	os.Exit(0)
}

func parse(p *docopt.Parser, argv []string, terminal bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	scripts, _ = opts["SCRIPT"].([]string)

	depth, err = opts.Int("--depth")
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth: %v", opts["--depth"])
	}

	policy, _ := opts.String("--policy")
	switch policy {
	case "deferred":
		eager = false
	case "eager":
		eager = true
	default:
		return fmt.Errorf("invalid policy: %s", policy)
	}

	meta, _ = opts.Bool("--meta")
	trace, _ = opts.Bool("--trace")

	interactive = command == "" && len(scripts) == 0 && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}

// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the roots language.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/reader"
	"github.com/michaelmacinnis/roots/internal/system/history"
)

// Prompt is displayed when roots is interactive.
const Prompt = "> "

// Evaluator is the interface for things that want to process parsed expressions.
// Fail is called with each error encountered while reading.
type Evaluator interface {
	Complete(prefix string) []string
	Evaluate(c cell.I) error
	Fail(err error)
}

// Run prompts for lines of input and sends each completed expression to
// the Evaluator, until the user ends the session.
func Run(e Evaluator) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	err = history.Load(cli.ReadHistory)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		println("Error reading history: " + err.Error())
	}

	cli.SetCtrlCAborts(true)
	cli.SetTabCompletionStyle(liner.TabPrints)
	cli.SetWordCompleter(completer(e))

	r := reader.New("roots")

	for {
		err = uncooked.ApplyMode()
		if err != nil {
			break
		}

		line, perr := cli.Prompt(Prompt)

		err = cooked.ApplyMode()
		if err != nil {
			break
		}

		if errors.Is(perr, liner.ErrPromptAborted) {
			// Discard any partial expression.
			_ = r.Close()
			r = reader.New("roots")

			continue
		} else if perr != nil {
			os.Stdout.Write([]byte("\n"))

			break
		}

		cli.AppendHistory(line)

		evaluate(r, line+"\n", e, os.Stderr)
	}

	if rerr := r.Close(); rerr != nil {
		e.Fail(rerr)
		println(rerr.Error())
	}

	if herr := history.Save(cli.WriteHistory); herr != nil {
		println("Error writing history: " + herr.Error())
	}

	return err
}

// Stream reads lines from in and sends each completed expression to the
// Evaluator. Errors are written to w and do not end the stream. An
// expression left incomplete at the end of in is an error.
func Stream(in io.Reader, w io.Writer, e Evaluator) error {
	r := reader.New("stdin")

	s := bufio.NewScanner(in)
	for s.Scan() {
		evaluate(r, s.Text()+"\n", e, w)
	}

	if err := r.Close(); err != nil {
		e.Fail(err)
		fmt.Fprintln(w, err.Error())
	}

	return s.Err()
}

func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		head, tail := line[:pos], line[pos:]

		i := strings.LastIndexAny(head, " \t()'") + 1

		return head[:i], e.Complete(head[i:]), tail
	}
}

func evaluate(r *reader.T, line string, e Evaluator, w io.Writer) {
	cs, err := r.Scan(line)

	for _, c := range cs {
		if eerr := e.Evaluate(c); eerr != nil {
			fmt.Fprintln(w, eerr.Error())
		}
	}

	if err != nil {
		e.Fail(err)
		fmt.Fprintln(w, err.Error())
	}
}

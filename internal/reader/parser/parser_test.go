package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/type/list"
	"github.com/michaelmacinnis/roots/internal/common/type/pair"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
	"github.com/michaelmacinnis/roots/internal/engine/boot"
)

func check(t *testing.T, s string) {
	t.Helper()

	cs, err := All("test", s)
	if err != nil {
		t.Fatalf("Parsing (%s) failed: %v", s, err)
	}

	p := ""
	for _, c := range cs {
		p += literal.String(c) + "\n"
	}

	rs, err := All("test", p)
	if err != nil {
		t.Fatalf("Reparsing (%s) failed: %v", p, err)
	}

	r := ""
	for _, c := range rs {
		r += literal.String(c) + "\n"
	}

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}

	for i := range cs {
		if !cs[i].Equal(rs[i]) {
			t.Fatalf("Parsed %s and reparsed %s are not equal", cs[i], rs[i])
		}
	}
}

func TestBoot(t *testing.T) {
	cs, err := Annotated("boot", boot.Script())
	if err != nil {
		t.Fatalf("Parsing the boot script failed: %v", err)
	}

	p := ""
	for _, c := range cs {
		p += literal.String(c) + "\n"
	}

	check(t, p)

	for _, c := range cs {
		if s := literal.String(c); strings.Contains(s, ";") {
			t.Fatalf("Expected comments to be skipped; got %s", s)
		}
	}
}

func TestSemicolon(t *testing.T) {
	c, err := One("test", "(quote ;a)")
	if err != nil {
		t.Fatal(err)
	}

	if s := literal.String(c); s != "(quote ;a)" {
		t.Fatalf("Expected (quote ;a); got %s", s)
	}
}

func TestNestedQuote(t *testing.T) {
	check(t, "''a\n''()\n")
}

func TestRoundTrip(t *testing.T) {
	check(t, "(g (h) ())\n((e) f)\n(label a 'b) (wrap a)\n")
}

func TestSeparate(t *testing.T) {
	check(t, `
(defun separate (lst)
    (cond
        ((eq (cdr lst) '()) lst)
        ('t (cons (car lst) (cons '| (separate (cdr lst)))))))
`)
}

func TestStructure(t *testing.T) {
	a, b := sym.New("a"), sym.New("b")
	quote := sym.New("quote")

	for _, tc := range []struct {
		text     string
		expected cell.I
	}{
		{"'a", list.New(quote, a)},
		{"b", b},
		{"()", pair.Null},
		{"(a)", list.New(a)},
		{"(a b)", list.New(a, b)},
		{"((a) b)", list.New(list.New(a), b)},
		{"(a (b) ())", list.New(a, list.New(b), pair.Null)},
		{"''a", list.New(quote, list.New(quote, a))},
		{"'(a 'b)", list.New(quote, list.New(a, list.New(quote, b)))},
	} {
		c, err := One("test", tc.text)
		if err != nil {
			t.Fatalf("Parsing %s failed: %v", tc.text, err)
		}

		if !c.Equal(tc.expected) {
			t.Fatalf("Expected %s to parse as %s; got %s",
				tc.text, literal.String(tc.expected), literal.String(c))
		}
	}
}

func TestSequence(t *testing.T) {
	cs, err := All("test", "(label a 'b) (wrap a)")
	if err != nil {
		t.Fatal(err)
	}

	if len(cs) != 2 {
		t.Fatalf("Expected 2 expressions; got %d", len(cs))
	}

	expected := "(label a (quote b))"
	if s := literal.String(cs[0]); s != expected {
		t.Fatalf("Expected %s; got %s", expected, s)
	}
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		text    string
		message string
	}{
		{"(g(", "unmatched '('"},
		{"(a b", "unmatched '('"},
		{")", "unexpected ')'"},
		{"(a))", "unexpected ')'"},
		{"'", "nothing to quote"},
		{"(a ')", "nothing to quote"},
	} {
		_, err := All("test", tc.text)
		if !errors.Is(err, fault.ErrParse) {
			t.Fatalf("Expected a parse error for %q; got %v", tc.text, err)
		}

		if !strings.Contains(err.Error(), tc.message) {
			t.Fatalf("Expected %q in error for %q; got %q", tc.message, tc.text, err)
		}
	}
}

func TestErrorSource(t *testing.T) {
	_, err := All("test", "(a\n  (b c)\n")

	f, ok := fault.To(err)
	if !ok {
		t.Fatalf("Expected a fault; got %v", err)
	}

	if s := f.Source().String(); s != "test:1:1" {
		t.Fatalf("Expected error at test:1:1; got %s", s)
	}
}

func TestOne(t *testing.T) {
	if _, err := One("test", "  "); !errors.Is(err, fault.ErrParse) {
		t.Fatalf("Expected a parse error for empty input; got %v", err)
	}

	_, err := One("test", "(a) b")
	if !errors.Is(err, fault.ErrParse) || !strings.Contains(err.Error(), "trailing 'b'") {
		t.Fatalf("Expected a trailing token error; got %v", err)
	}
}

package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/michaelmacinnis/roots/internal/common/struct/loc"
)

func TestError(t *testing.T) {
	f := New(ErrUnbound, "%s", "x").In("(car x)").At(&loc.T{Char: 6, Line: 1, Name: "test"})

	if s := f.Error(); s != "test:1:6: unbound name: x in (car x)" {
		t.Fatalf("Unexpected message %q", s)
	}

	if s := New(ErrParse, "").Error(); s != "parse error" {
		t.Fatalf("Unexpected message %q", s)
	}
}

func TestInnermost(t *testing.T) {
	f := New(ErrType, "bad").In("inner").At(&loc.T{Char: 1, Line: 2, Name: "a"})

	f.In("outer").At(&loc.T{Char: 3, Line: 4, Name: "b"})

	if f.Step() != "inner" {
		t.Fatalf("Expected the innermost step; got %s", f.Step())
	}

	if s := f.Source().String(); s != "a:2:1" {
		t.Fatalf("Expected the innermost source; got %s", s)
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("reading: %w", New(ErrArity, "expected 1 argument, passed 2"))

	if !errors.Is(err, ErrArity) {
		t.Fatal("Expected the kind to be matched through wrapping")
	}

	if errors.Is(err, ErrType) {
		t.Fatal("Expected other kinds not to match")
	}

	f, ok := To(err)
	if !ok || f.Step() != "" {
		t.Fatal("Expected to recover the fault")
	}

	if _, ok := To(errors.New("plain")); ok {
		t.Fatal("Expected no fault in a plain error")
	}
}

func TestName(t *testing.T) {
	for _, tc := range []struct{ name, expected string }{
		{"fib", "fib"},
		{"eval.", "eval."},
		{"|", "|"},
	} {
		if s := Name(tc.name); s != tc.expected {
			t.Fatalf("Expected %s; got %s", tc.expected, s)
		}
	}

	for _, name := range []string{"", "a b", "tab\there", "café"} {
		if s := Name(name); s == name {
			t.Fatalf("Expected %q to be written in canonical form", name)
		}
	}
}

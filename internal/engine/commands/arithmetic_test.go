package commands

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/roots/internal/common/interface/cell"
	"github.com/michaelmacinnis/roots/internal/common/interface/literal"
	"github.com/michaelmacinnis/roots/internal/common/struct/fault"
	"github.com/michaelmacinnis/roots/internal/common/type/list"
	"github.com/michaelmacinnis/roots/internal/common/type/sym"
)

func args(vs ...string) cell.I {
	cs := make([]cell.I, len(vs))
	for i, v := range vs {
		cs[i] = sym.New(v)
	}

	return list.New(cs...)
}

func TestArithmetic(t *testing.T) {
	for _, tc := range []struct {
		name     string
		op       func(cell.I) (cell.I, error)
		args     cell.I
		expected string
	}{
		{"add none", Add, args(), "0"},
		{"add one", Add, args("7"), "7"},
		{"add many", Add, args("1", "2", "3", "-4"), "2"},
		{"add big", Add, args("9223372036854775807", "1"), "9223372036854775808"},
		{"sub", Sub, args("10", "12"), "-2"},
		{"sub big", Sub, args("-9223372036854775808", "1"), "-9223372036854775809"},
		{"lt true", Lt, args("1", "2"), "t"},
		{"lt false", Lt, args("2", "2"), "()"},
	} {
		c, err := tc.op(tc.args)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}

		if s := literal.String(c); s != tc.expected {
			t.Fatalf("%s: expected %s; got %s", tc.name, tc.expected, s)
		}
	}
}

func TestArithmeticErrors(t *testing.T) {
	if _, err := Add(args("1", "x")); !errors.Is(err, fault.ErrType) {
		t.Fatalf("Expected a type mismatch; got %v", err)
	}

	if _, err := Add(list.New(args("1"))); !errors.Is(err, fault.ErrType) {
		t.Fatalf("Expected a type mismatch; got %v", err)
	}

	if _, err := Sub(args("1")); !errors.Is(err, fault.ErrArity) {
		t.Fatalf("Expected an arity mismatch; got %v", err)
	}

	if _, err := Lt(args("1", "2", "3")); !errors.Is(err, fault.ErrArity) {
		t.Fatalf("Expected an arity mismatch; got %v", err)
	}
}

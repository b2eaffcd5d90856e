package lexer

import (
	"testing"

	"github.com/michaelmacinnis/roots/internal/common/struct/loc"
	"github.com/michaelmacinnis/roots/internal/common/struct/token"
)

func TestComment(t *testing.T) {
	h := &harness{lexer: Annotated("Comment"), t: t}

	h.scan("; leading comment\n(a ; trailing\n b)",
		h.literal("("),
		h.symbol("a"),
		h.symbol("b"),
		h.literal(")"),
		nil,
	)
}

func TestCommentInsideSymbol(t *testing.T) {
	h := &harness{lexer: Annotated("CommentInsideSymbol"), t: t}

	h.scan("a;b",
		h.symbol("a;b"),
		nil,
	)
}

func TestSemicolon(t *testing.T) {
	h := setup(t, "Semicolon")

	h.scan("(quote ;a) ; b\n",
		h.literal("("),
		h.symbol("quote"),
		h.symbol(";a"),
		h.literal(")"),
		h.symbol(";"),
		h.symbol("b"),
		nil,
	)
}

func TestEmpty(t *testing.T) {
	h := setup(t, "Empty")

	h.scan(" \t\n ", nil)
}

func TestIncremental(t *testing.T) {
	h := setup(t, "Incremental")

	h.scan("(car\n",
		h.literal("("),
		h.symbol("car"),
		nil,
	)

	h.scan(" '(a b))\n",
		h.literal("'"),
		h.literal("("),
		h.symbol("a"),
		h.symbol("b"),
		h.literal(")"),
		h.literal(")"),
		nil,
	)
}

func TestNested(t *testing.T) {
	h := setup(t, "Nested")

	h.scan("((some atoms) (could be (here)))",
		h.literal("("),
		h.literal("("),
		h.symbol("some"),
		h.symbol("atoms"),
		h.literal(")"),
		h.literal("("),
		h.symbol("could"),
		h.symbol("be"),
		h.literal("("),
		h.symbol("here"),
		h.literal(")"),
		h.literal(")"),
		h.literal(")"),
		nil,
	)
}

func TestQuote(t *testing.T) {
	h := setup(t, "Quote")

	h.scan("''a'b",
		h.literal("'"),
		h.literal("'"),
		h.symbol("a"),
		h.literal("'"),
		h.symbol("b"),
		nil,
	)
}

func TestSource(t *testing.T) {
	tokens := Lex("Source", "(a\n  bc)")

	expected := []loc.T{
		{Name: "Source", Line: 1, Char: 1},
		{Name: "Source", Line: 1, Char: 2},
		{Name: "Source", Line: 2, Char: 3},
		{Name: "Source", Line: 2, Char: 5},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens; got %d", len(expected), len(tokens))
	}

	for i, e := range expected {
		if a := *tokens[i].Source(); a != e {
			t.Fatalf("Expected %s for %v; got %s", e.String(), tokens[i], a.String())
		}
	}
}

func TestSymbols(t *testing.T) {
	h := setup(t, "Symbols")

	h.scan("eval. 42 -7 | là",
		h.symbol("eval."),
		h.symbol("42"),
		h.symbol("-7"),
		h.symbol("|"),
		h.symbol("là"),
		nil,
	)
}

type harness struct {
	lexer *T
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(label),
		t:     t,
	}
}

func (h *harness) literal(s string) *token.T {
	return token.New(token.Class(s[0]), s, nil)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)

	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			return
		case a == nil:
			h.t.Fatalf("Expected %q but there are no tokens", e.Value())
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.Class() != e.Class() || a.Value() != e.Value():
			h.t.Fatalf("Expected %q (%s); got %v", e.Value(), e.Class(), a)
		}
	}
}

func (h *harness) symbol(s string) *token.T {
	return token.New(token.Symbol, s, nil)
}

package form

import "testing"

func TestLookup(t *testing.T) {
	for _, n := range Names() {
		k := Lookup(n)
		if k == None {
			t.Fatalf("Expected %s to be a special form", n)
		}

		if s := k.String(); s != n {
			t.Fatalf("Expected %s; got %s", n, s)
		}
	}

	for _, n := range []string{"", "lambda", "eval.", "t", "QUOTE"} {
		if k := Lookup(n); k != None {
			t.Fatalf("Expected %q not to be a special form; got %s", n, k)
		}
	}
}

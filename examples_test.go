package goexpr

import "testing"

func TestLoadExamples(t *testing.T) {
	exprs, err := LoadExamples()
	if err != nil {
		t.Fatal(err)
	}
	if len(exprs) == 0 {
		t.Fatal("no demo expressions bundled")
	}
	for _, e := range exprs {
		t.Logf("%q", e)
		node, err := Parse(e)
		if err != nil {
			t.Errorf("demo expression %q does not parse: %v", e, err)
			continue
		}
		if _, err := Eval(node); err != nil {
			t.Errorf("demo expression %q does not evaluate: %v", e, err)
		}
	}
}

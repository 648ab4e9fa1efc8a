package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFreshName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	tests := []struct {
		nonterminals []string
		A            string
		fresh        string
	}{
		{[]string{"A0", "A1", "A2"}, "A", "A3"},
		{[]string{"B67", "B150", "B1000"}, "B", "B0"},
		{[]string{"S"}, "S", "S0"},
		{[]string{"S", "S1"}, "S", "S0"},
		{[]string{"S", "S0"}, "S0", "S1"},
	}
	for _, test := range tests {
		g := New("G")
		if err := g.AddNonTerminal(test.nonterminals...); err != nil {
			t.Fatal(err)
		}
		fresh, err := g.FreshName(test.A)
		if err != nil {
			t.Fatal(err)
		}
		if fresh != test.fresh {
			t.Errorf("expected fresh name for %s in %v to be %s, is %s",
				test.A, test.nonterminals, test.fresh, fresh)
		}
		if g.IsSymbol(test.fresh) {
			t.Errorf("expected FreshName not to declare %s", test.fresh)
		}
	}
}

func TestFreshNameAvoidsTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := New("G")
	g.SetStart("x")
	g.AddTerminal("x0")
	if fresh, _ := g.FreshName("x"); fresh != "x1" {
		t.Errorf("expected fresh name x1, is %s", fresh)
	}
}

func TestFreshNameWithoutSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := New("G")
	g.SetStart("S")
	if _, err := g.FreshName(""); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected empty name to be rejected, have %v", err)
	}
}

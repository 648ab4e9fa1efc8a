package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestProductive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> a S | B C | B D",
		"A -> c C | A B",
		"B -> b B | &",
		"C -> a A | B C",
		"D -> d D d | c",
	)
	productive := g.Productive()
	expectSet(t, "productive", productive, "S", "B", "D")
	expectSet(t, "productive (again)", g.Productive(), productive.Values()...)
}

func TestReachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> a S a | d D d",
		"A -> a B | C c | a",
		"B -> d D | b B | b",
		"C -> A a | d D | c",
		"D -> b b B | d",
	)
	expectSet(t, "reachable", g.Reachable("S"), "S", "B", "D", "a", "b", "d")
	expectSet(t, "reachable from B", g.Reachable("B"), "B", "D", "b", "d")
	h := makeGrammar(t, "S -> A", "A -> &")
	expectSet(t, "reachable without epsilon", h.Reachable("S"), "S", "A")
}

func TestIsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> A B",
		"A -> B B | a",
		"B -> A B | b",
	)
	if g.IsEmpty() {
		t.Errorf("expected language of G to be non-empty")
	}
	h := makeGrammar(t,
		"S -> A B",
		"A -> A B",
		"B -> B B | b",
	)
	if !h.IsEmpty() {
		t.Errorf("expected language of H to be empty")
	}
}

func TestEpsilonClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> A b B | A D",
		"A -> a A | B",
		"B -> S B D | C D",
		"C -> c C | A S | &",
		"D -> d D | &",
	)
	expectSet(t, "epsilon closure", g.EpsilonClosure(), "S", "A", "B", "C", "D")
	h := makeGrammar(t, "S -> a A", "A -> a A | a")
	expectSet(t, "epsilon closure", h.EpsilonClosure())
}

func TestSimpleTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> F G H",
		"F -> G | a",
		"G -> d G | H | b",
		"H -> c",
	)
	table := g.SimpleTable()
	expectSet(t, "NA(S)", table["S"], "S")
	expectSet(t, "NA(F)", table["F"], "F", "G", "H")
	expectSet(t, "NA(G)", table["G"], "G", "H")
	expectSet(t, "NA(H)", table["H"], "H")
	if g.IsSimple(NewProduction("G", "d", "G")) || !g.IsSimple(NewProduction("F", "G")) {
		t.Errorf("simple production test failed")
	}
}

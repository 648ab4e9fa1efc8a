package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar/iteratable"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makeGrammar creates a grammar from lines of the form "A -> a B | &".
// Symbols are classified by naming convention, the first head is the start
// symbol.
func makeGrammar(t *testing.T, lines ...string) *Grammar {
	t.Helper()
	g := New("G")
	for i, line := range lines {
		head := strings.TrimSpace(strings.SplitN(line, "->", 2)[0])
		var err error
		if i == 0 {
			err = g.SetStart(head)
		} else {
			err = g.AddNonTerminal(head)
		}
		if err != nil {
			t.Fatalf("cannot declare %q: %v", head, err)
		}
	}
	for _, line := range lines {
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			t.Fatalf("malformed rule %q", line)
		}
		head := strings.TrimSpace(parts[0])
		for _, alt := range strings.Split(parts[1], "|") {
			body := strings.Fields(alt)
			for _, sym := range body {
				switch cfgx.Classify(sym) {
				case cfgx.NonTerminalKind:
					g.AddNonTerminal(sym)
				case cfgx.TerminalKind:
					g.AddTerminal(sym)
				}
			}
			if err := g.AddProduction(head, body...); err != nil {
				t.Fatalf("cannot add %q: %v", line, err)
			}
		}
	}
	return g
}

// productionSet lists the productions of g, one per line, in order.
func productionSet(g *Grammar) string {
	var lines []string
	for _, p := range g.Productions() {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}

func expectEqual(t *testing.T, g, expected *Grammar) {
	t.Helper()
	if !g.Equals(expected) {
		t.Errorf("grammars differ; have (start %s, N=%v, T=%v)\n%s\nexpected (start %s, N=%v, T=%v)\n%s",
			g.Start(), g.NonTerminals(), g.Terminals(), productionSet(g),
			expected.Start(), expected.NonTerminals(), expected.Terminals(), productionSet(expected))
	}
}

func expectSet(t *testing.T, what string, set *iteratable.Set, members ...string) {
	t.Helper()
	if !set.Equals(iteratable.NewSet(members...)) {
		t.Errorf("expected %s to be %v, is %v", what, iteratable.NewSet(members...), set)
	}
}

// ---------------------------------------------------------------------------

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").N("A").T("b").End()
	b.LHS("S").N("A").N("B").T("c").End()
	b.LHS("A").T("a").N("A").End()
	b.LHS("A").Epsilon()
	b.LHS("B").T("b").N("B").End()
	b.LHS("B").N("A").T("d").End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start() != "S" {
		t.Errorf("expected start symbol S, is %q", g.Start())
	}
	if g.Size() != 7 {
		t.Errorf("expected 7 productions, have %d", g.Size())
	}
	expectSet(t, "N", g.NonTerminals(), "S", "A", "B")
	expectSet(t, "T", g.Terminals(), "a", "b", "c", "d")
	if !g.HasProduction(NewProduction("A")) {
		t.Errorf("expected A -> & to be present")
	}
}

func TestBuilderRejectsClash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("a").T("b").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrSymbolClash) {
		t.Errorf("expected symbol clash, have %v", err)
	}
}

func TestProductionsAreASet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S | b")
	if err := g.AddProduction("S", "a", "S"); err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 {
		t.Errorf("expected duplicate production to be ignored, have %d productions", g.Size())
	}
	if p := NewProduction("S"); !p.IsEpsilon() || p.Len() != 0 {
		t.Errorf("expected empty body to result in epsilon-production, have %v", p)
	}
	if p := NewProduction("S", "&", "a", "&"); p.Len() != 1 || p.Body[0] != "a" {
		t.Errorf("expected epsilon to vanish from non-empty body, have %v", p)
	}
}

func TestAddProductionMisuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S | b")
	if err := g.AddProduction("S", "x"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected unknown symbol error, have %v", err)
	}
	if err := g.AddProduction("a", "b"); !errors.Is(err, ErrNotNonTerminal) {
		t.Errorf("expected non-terminal error, have %v", err)
	}
	if err := g.AddTerminal("S"); !errors.Is(err, ErrSymbolClash) {
		t.Errorf("expected clash error, have %v", err)
	}
	if err := g.AddNonTerminal("&"); !errors.Is(err, ErrReservedSymbol) {
		t.Errorf("expected reserved symbol error, have %v", err)
	}
}

func TestPanicOnMisuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"panic-on-grammar-misuse": true})
	defer gconf.Initialize(testconfig.Conf{})
	g := makeGrammar(t, "S -> a")
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected misuse to panic")
		}
	}()
	g.RemoveNonTerminal("X")
}

func TestCopyIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S | A", "A -> b")
	h := g.Copy()
	if !h.Equals(g) {
		t.Fatalf("expected copy to equal original")
	}
	h.RemoveNonTerminal("A")
	h.AddTerminal("c")
	if g.Size() != 3 || !g.IsNonTerminal("A") || g.IsTerminal("c") {
		t.Errorf("expected original to be unaffected by changes to copy:\n%s", productionSet(g))
	}
	if h.Equals(g) {
		t.Errorf("expected modified copy to differ from original")
	}
}

func TestEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> A B", "A -> A B", "B -> B B | b")
	h := makeGrammar(t, "S -> A B", "B -> b | B B", "A -> A B")
	if !g.Equals(h) {
		t.Errorf("expected grammars to be equal")
	}
	h.AddTerminal("a")
	if g.Equals(h) {
		t.Errorf("expected grammars with different terminals to differ")
	}
	k := makeGrammar(t, "A -> A B", "S -> A B", "B -> B B | b")
	if g.Equals(k) {
		t.Errorf("expected grammars with different start symbols to differ")
	}
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> b S | A", "A -> &")
	expected := "S -> A | b S\nA -> &\n"
	if g.String() != expected {
		t.Errorf("expected\n%s\nhave\n%s", expected, g.String())
	}
	if heads := g.Heads(); len(heads) != 2 || heads[0] != "S" {
		t.Errorf("expected start symbol to be first head, have %v", heads)
	}
}

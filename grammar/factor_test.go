package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var unfactored = []string{
	"S -> a B | a S | d S",
	"B -> b B | b",
}

func TestIsFactored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	if makeGrammar(t, unfactored...).IsFactored() {
		t.Errorf("expected grammar not to be factored")
	}
	g := makeGrammar(t, "S -> a S | b A", "A -> c | &")
	if !g.IsFactored() {
		t.Errorf("expected grammar to be factored")
	}
	h := makeGrammar(t, "S -> A b | a", "A -> a | c") // overlap through A
	if h.IsFactored() {
		t.Errorf("expected grammar not to be factored")
	}
}

func TestFactors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, unfactored...)
	groups, err := g.Factors("S")
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups for S, have %v", groups)
	}
	sizes := map[int]int{}
	for _, group := range groups {
		sizes[len(group)]++
	}
	if sizes[1] != 1 || sizes[2] != 1 {
		t.Errorf("expected groups of sizes 1 and 2, have %v", groups)
	}
	groups, _ = g.Factors("B")
	if len(groups) != 1 || len(groups[0]) != 2 {
		t.Errorf("expected a single group for B, have %v", groups)
	}
	if _, err := g.Factors("b"); err == nil {
		t.Errorf("expected factors of terminal to fail")
	}
}

func TestFactor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, unfactored...)
	expected := makeGrammar(t,
		"S -> a S0 | d S",
		"S0 -> B | S",
		"B -> b B0",
		"B0 -> B | &",
	)
	for _, steps := range []int{2, 10} {
		result := g.Factor(steps)
		if !result.Factored {
			t.Fatalf("expected grammar to be factored within %d steps: %s", steps, result.Reason)
		}
		if result.Steps != 2 {
			t.Errorf("expected 2 factoring steps, have %d", result.Steps)
		}
		expectEqual(t, result.Grammar, expected)
		if !result.Grammar.IsFactored() {
			t.Errorf("expected result to be factored")
		}
	}
	expectEqual(t, g, makeGrammar(t, unfactored...))
}

func TestFactorStepBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, unfactored...)
	result := g.Factor(0)
	if result.Factored || result.Grammar != nil {
		t.Errorf("expected factoring with default step bound to fail")
	}
	if result.Steps != DefaultFactorSteps || result.Reason == "" {
		t.Errorf("unexpected result %v", result)
	}
	t.Logf("result: %v", result)
	//
	gconf.Initialize(testconfig.Conf{"factor-steps": 2})
	defer gconf.Initialize(testconfig.Conf{})
	if result = g.Factor(0); !result.Factored {
		t.Errorf("expected configured step bound to be honoured: %v", result)
	}
}

func TestFactorLoops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a S | A", "A -> a A c | &")
	result := g.Factor(10)
	if result.Factored {
		t.Errorf("expected factoring to fail, have\n%s", result.Grammar)
	}
	if result.Steps != 10 {
		t.Errorf("expected step bound to be exhausted, have %v", result)
	}
}

func TestFactorLeftRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> S a | b")
	result := g.Factor(10)
	if result.Factored || result.Steps != 0 {
		t.Errorf("expected left recursive grammar to fail immediately, have %v", result)
	}
	if result.Reason != "S is left recursive and cannot be factored" {
		t.Errorf("unexpected reason for failure: %q", result.Reason)
	}
}

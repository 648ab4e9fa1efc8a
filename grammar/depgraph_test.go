package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDependencyGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t,
		"S -> A a S | b",
		"A -> B A | c",
		"B -> b | &",
	)
	var out strings.Builder
	if err := g.DependencyGraphViz(&out); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	t.Logf("\n%s", dot)
	for _, line := range []string{
		"digraph {",
		"S [fillcolor=lightgray]",
		"A [fillcolor=white]",
		`S -> A [label="1", style=bold]`,
		`S -> S [label="1", style=solid]`,
		`A -> A [label="1", style=bold]`, // B is nullable
		`A -> B [label="1", style=bold]`,
	} {
		if !strings.Contains(dot, line) {
			t.Errorf("expected Dot output to contain %q", line)
		}
	}
	if strings.Contains(dot, "B -> ") {
		t.Errorf("expected B to have no successors")
	}
}

func TestDependencyCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgx.grammar")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a A", "A -> b S | c")
	if !g.dependencies(g.EpsilonClosure()).hasCycle() {
		t.Errorf("expected S -> A -> S to be detected as a cycle")
	}
	h := makeGrammar(t, "S -> a A", "A -> b B | c", "B -> d")
	if h.dependencies(h.EpsilonClosure()).hasCycle() {
		t.Errorf("expected no cycle")
	}
}

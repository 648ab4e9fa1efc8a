package grammar

import (
	"fmt"

	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar/iteratable"
	"github.com/npillmayer/schuko/gconf"
)

// DefaultFactorSteps is the number of factoring steps Factor will perform if
// neither the client nor the configuration ("factor-steps") supply a bound.
const DefaultFactorSteps = 1

// FactorResult is the outcome of factoring a grammar. Clients have to check
// Factored before using Grammar.
type FactorResult struct {
	Grammar  *Grammar // the left-factored grammar, nil if factoring failed
	Factored bool     // did factoring succeed within the bound?
	Steps    int      // number of factoring steps performed
	Reason   string   // reason for failure
}

func (r FactorResult) String() string {
	if r.Factored {
		return fmt.Sprintf("factored after %d step(s)", r.Steps)
	}
	return fmt.Sprintf("not factored after %d step(s): %s", r.Steps, r.Reason)
}

// IsFactored is a predicate: is g left-factored? A grammar is left-factored if
// no two productions of a non-terminal share a terminal in the FIRST sets of
// their bodies.
func (g *Grammar) IsFactored() bool {
	lead := g.leading()
	for _, A := range g.Heads() {
		for _, group := range g.factors(lead, A) {
			if len(group) > 1 {
				return false
			}
		}
	}
	return true
}

// Factors partitions the productions of non-terminal A into groups. Bodies
// of productions within a group have intersecting FIRST sets (epsilon not
// counting), bodies of different groups have disjoint FIRST sets. Groups of
// size > 1 have to be factored.
func (g *Grammar) Factors(A string) ([][]Production, error) {
	if !g.IsNonTerminal(A) {
		return nil, misuse(ErrNotNonTerminal, "computing factors of %q", A)
	}
	return g.factors(g.leading(), A), nil
}

func (g *Grammar) factors(lead leadTable, A string) [][]Production {
	var groups [][]Production
	var firsts []*iteratable.Set
	for _, p := range g.ProductionsFor(A) {
		first := g.firstOfSequence(lead, p.Symbols()).Remove(cfgx.Epsilon)
		// merge all groups overlapping with p into a new one
		var group []Production
		var keptGroups [][]Production
		var keptFirsts []*iteratable.Set
		for i, F := range firsts {
			if F.Intersects(first) {
				group = append(group, groups[i]...)
				first.Union(F)
			} else {
				keptGroups = append(keptGroups, groups[i])
				keptFirsts = append(keptFirsts, F)
			}
		}
		groups = append(keptGroups, append(group, p))
		firsts = append(keptFirsts, first)
	}
	return groups
}

// Factor left-factors g, performing at most steps factoring operations. One
// operation either factors out the common prefix of a group of productions
// (see Factors), or, if the group has no common prefix, substitutes leading
// non-terminals by their productions.
//
// If steps <= 0, the bound is taken from configuration key "factor-steps",
// defaulting to DefaultFactorSteps.
//
// Factor does not change g. Failure to factor g within the bound is reported
// by the result, not as an error.
func (g *Grammar) Factor(steps int) FactorResult {
	if steps <= 0 {
		steps = gconf.GetInt("factor-steps")
	}
	if steps <= 0 {
		steps = DefaultFactorSteps
	}
	h := g.Copy()
	for step := 0; ; step++ {
		A, group := h.nextFactorGroup()
		if group == nil {
			tracer().Infof("grammar %s factored in %d step(s)", g.Name, step)
			return FactorResult{Grammar: h, Factored: true, Steps: step}
		}
		if step == steps {
			return factorFailure(step, "step bound exhausted, %s still has to be factored", A)
		}
		if err := h.factorGroup(A, group); err != nil {
			return factorFailure(step, "%v", err)
		}
		h.Dump()
	}
}

func factorFailure(step int, format string, args ...interface{}) FactorResult {
	reason := fmt.Sprintf(format, args...)
	tracer().Infof("factoring failed: %s", reason)
	return FactorResult{Steps: step, Reason: reason}
}

// nextFactorGroup finds the first group of productions to be factored.
func (g *Grammar) nextFactorGroup() (string, []Production) {
	lead := g.leading()
	for _, A := range g.Heads() {
		for _, group := range g.factors(lead, A) {
			if len(group) > 1 {
				return A, group
			}
		}
	}
	return "", nil
}

// factorGroup performs a single factoring operation on a group of
// A-productions.
func (g *Grammar) factorGroup(A string, group []Production) error {
	prefix := commonPrefix(group)
	if len(prefix) > 0 {
		N := g.freshName(A)
		g.nonterminals.Add(N)
		for _, p := range group {
			g.remove(p)
			g.add(NewProduction(N, p.Body[len(prefix):]...))
		}
		g.add(NewProduction(A, append(clone(prefix), N)...))
		tracer().Debugf("factored %v out of %s, introducing %s", prefix, A, N)
		return nil
	}
	// no common prefix: bodies overlap by FIRST of leading non-terminals
	substituted := false
	for _, p := range group {
		B := p.Body[0]
		if !g.IsNonTerminal(B) {
			continue
		}
		if B == A {
			return fmt.Errorf("%s is left recursive and cannot be factored", A)
		}
		g.remove(p)
		for _, q := range g.ProductionsFor(B) {
			g.add(NewProduction(A, append(clone(q.Symbols()), p.Body[1:]...)...))
		}
		substituted = true
	}
	if !substituted {
		return fmt.Errorf("cannot factor productions of %s", A)
	}
	tracer().Debugf("substituted leading non-terminals of %s", A)
	return nil
}

// commonPrefix returns the longest sequence of symbols all bodies of a group
// start with.
func commonPrefix(group []Production) []string {
	prefix := group[0].Symbols()
	for _, p := range group[1:] {
		body := p.Symbols()
		n := 0
		for n < len(prefix) && n < len(body) && prefix[n] == body[n] {
			n++
		}
		prefix = prefix[:n]
	}
	return prefix
}

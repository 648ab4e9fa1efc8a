package grammar

import (
	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar/iteratable"
)

// Productive returns the set of non-terminals which derive a string of
// terminals (possibly the empty string) in a finite number of steps.
func (g *Grammar) Productive() *iteratable.Set {
	productive := iteratable.NewSet()
	isKnown := func(sym string) bool {
		return sym == cfgx.Epsilon || g.terminals.Contains(sym) || productive.Contains(sym)
	}
	return g.fixpoint("productive", productive, isKnown)
}

// EpsilonClosure returns the set of non-terminals which derive the empty
// string in zero or more steps.
func (g *Grammar) EpsilonClosure() *iteratable.Set {
	nullable := iteratable.NewSet()
	isKnown := func(sym string) bool {
		return sym == cfgx.Epsilon || nullable.Contains(sym)
	}
	return g.fixpoint("epsilon closure", nullable, isKnown)
}

// fixpoint grows set by every head of a production whose body consists of
// known symbols only, until no further head is added.
func (g *Grammar) fixpoint(name string, set *iteratable.Set, isKnown func(string) bool) *iteratable.Set {
	prods := g.Productions()
	for round, changed := 1, true; changed; round++ {
		changed = false
		for _, p := range prods {
			if set.Contains(p.Head) {
				continue
			}
			if allOf(p.Body, isKnown) {
				set.Add(p.Head)
				changed = true
			}
		}
		tracer().Debugf("%s, round %d: %v", name, round, set)
	}
	return set
}

func allOf(symbols []string, pred func(string) bool) bool {
	for _, sym := range symbols {
		if !pred(sym) {
			return false
		}
	}
	return true
}

// IsEmpty is a predicate: is the language generated by g empty?
func (g *Grammar) IsEmpty() bool {
	return !g.Productive().Contains(g.start)
}

// Reachable returns the set of symbols reachable from sym by expanding
// productions zero or more times. The result contains sym itself, but never
// contains epsilon.
func (g *Grammar) Reachable(sym string) *iteratable.Set {
	reachable := iteratable.NewSet(sym)
	prods := g.Productions()
	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			if !reachable.Contains(p.Head) {
				continue
			}
			for _, X := range p.Symbols() {
				if !reachable.Contains(X) {
					reachable.Add(X)
					changed = true
				}
			}
		}
	}
	return reachable
}

// --- Simple productions ----------------------------------------------------

// IsSimple is a predicate: is p a simple production, i.e. does p have a single
// non-terminal as its body?
func (g *Grammar) IsSimple(p Production) bool {
	return len(p.Body) == 1 && g.nonterminals.Contains(p.Body[0])
}

// SimpleClosure returns the set of non-terminals reachable from A by chains of
// simple productions, including A itself.
func (g *Grammar) SimpleClosure(A string) *iteratable.Set {
	closure := iteratable.NewSet(A)
	worklist := []string{A}
	for len(worklist) > 0 {
		B := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, p := range g.ProductionsFor(B) {
			if g.IsSimple(p) && !closure.Contains(p.Body[0]) {
				closure.Add(p.Body[0])
				worklist = append(worklist, p.Body[0])
			}
		}
	}
	return closure
}

// SimpleTable returns the simple closure for every non-terminal of g.
func (g *Grammar) SimpleTable() map[string]*iteratable.Set {
	table := make(map[string]*iteratable.Set, g.nonterminals.Size())
	g.nonterminals.Each(func(A string) {
		table[A] = g.SimpleClosure(A)
	})
	return table
}

package grammar

import (
	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar/iteratable"
)

// leadTable maps every symbol to the set of symbols which may start a
// derivation from it: terminals, non-terminals and epsilon. Terminals lead
// with themselves.
type leadTable map[string]*iteratable.Set

// leading computes the lead table of g as a fixed point.
func (g *Grammar) leading() leadTable {
	lead := make(leadTable, g.nonterminals.Size()+g.terminals.Size())
	g.terminals.Each(func(a string) {
		lead[a] = iteratable.NewSet(a)
	})
	g.nonterminals.Each(func(A string) {
		lead[A] = iteratable.NewSet()
	})
	prods := g.Productions()
	for round, changed := 1, true; changed; round++ {
		changed = false
		for _, p := range prods {
			set := lead[p.Head]
			size := set.Size()
			set.Union(g.leadOfSequence(lead, p.Symbols()))
			changed = changed || set.Size() != size
		}
		tracer().Debugf("FIRST, round %d", round)
	}
	return lead
}

// leadOfSequence returns the leading symbols of a sequence of symbols,
// propagating over nullable symbols from left to right. If every symbol of
// seq is nullable, the result contains epsilon.
func (g *Grammar) leadOfSequence(lead leadTable, seq []string) *iteratable.Set {
	result := iteratable.NewSet()
	for _, X := range seq {
		if X == cfgx.Epsilon {
			continue
		}
		if g.nonterminals.Contains(X) {
			result.Add(X)
		}
		L := lead[X]
		if L == nil { // undeclared symbol
			result.Add(X)
			return result
		}
		result.Union(L.Copy().Remove(cfgx.Epsilon))
		if !L.Contains(cfgx.Epsilon) {
			return result
		}
	}
	return result.Add(cfgx.Epsilon)
}

// terminalsOnly strips non-terminals from a set of symbols.
func (g *Grammar) terminalsOnly(set *iteratable.Set) *iteratable.Set {
	return set.Difference(g.nonterminals)
}

// FirstSets returns FIRST(X) for every terminal and non-terminal X of g.
// FIRST sets consist of terminals and possibly epsilon.
func (g *Grammar) FirstSets() map[string]*iteratable.Set {
	lead := g.leading()
	first := make(map[string]*iteratable.Set, len(lead))
	for X, L := range lead {
		first[X] = g.terminalsOnly(L.Copy())
	}
	return first
}

// FirstNT returns for every non-terminal A the set of non-terminals which
// may appear as the leftmost symbol of a derivation from A.
func (g *Grammar) FirstNT() map[string]*iteratable.Set {
	lead := g.leading()
	firstNT := make(map[string]*iteratable.Set, g.nonterminals.Size())
	g.nonterminals.Each(func(A string) {
		firstNT[A] = lead[A].Copy().Intersection(g.nonterminals)
	})
	return firstNT
}

// FirstOfSequence returns FIRST of a sequence of symbols. The result contains
// epsilon if every symbol of seq derives the empty string, in particular
// for an empty sequence.
func (g *Grammar) FirstOfSequence(seq []string) *iteratable.Set {
	return g.firstOfSequence(g.leading(), seq)
}

func (g *Grammar) firstOfSequence(lead leadTable, seq []string) *iteratable.Set {
	return g.terminalsOnly(g.leadOfSequence(lead, seq))
}

// FollowSets returns FOLLOW(A) for every non-terminal A of g. FOLLOW sets
// consist of terminals and end-of-input, they never contain epsilon.
func (g *Grammar) FollowSets() map[string]*iteratable.Set {
	lead := g.leading()
	follow := make(map[string]*iteratable.Set, g.nonterminals.Size())
	g.nonterminals.Each(func(A string) {
		follow[A] = iteratable.NewSet()
	})
	if f, ok := follow[g.start]; ok {
		f.Add(cfgx.EndOfInput)
	}
	prods := g.Productions()
	for round, changed := 1, true; changed; round++ {
		changed = false
		for _, p := range prods {
			body := p.Symbols()
			for i, B := range body {
				if !g.nonterminals.Contains(B) {
					continue
				}
				set := follow[B]
				size := set.Size()
				rest := g.firstOfSequence(lead, body[i+1:])
				if rest.Contains(cfgx.Epsilon) {
					set.Union(follow[p.Head])
				}
				set.Union(rest.Remove(cfgx.Epsilon))
				changed = changed || set.Size() != size
			}
		}
		tracer().Debugf("FOLLOW, round %d", round)
	}
	return follow
}

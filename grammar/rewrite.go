package grammar

import (
	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar/iteratable"
)

// RemoveNonTerminal removes non-terminal A from g, together with every
// production which has A as its head or contains A in its body.
func (g *Grammar) RemoveNonTerminal(A string) error {
	if !g.IsNonTerminal(A) {
		return misuse(ErrNotNonTerminal, "removing %q", A)
	}
	g.nonterminals.Remove(A)
	g.removeProductionsWith(A)
	return nil
}

// RemoveTerminal removes terminal a from g, together with every production
// containing a.
func (g *Grammar) RemoveTerminal(a string) error {
	if !g.IsTerminal(a) {
		return misuse(ErrNotTerminal, "removing %q", a)
	}
	g.terminals.Remove(a)
	g.removeProductionsWith(a)
	return nil
}

func (g *Grammar) removeProductionsWith(sym string) {
	for _, p := range g.Productions() {
		if p.Head == sym || p.Contains(sym) {
			g.remove(p)
		}
	}
}

// RemoveUnproductive removes every non-terminal which is not productive.
//
// If the start symbol turns out to be unproductive, it will be removed as
// well, and the (then empty) grammar will no longer contain its start
// symbol.
func (g *Grammar) RemoveUnproductive() *Grammar {
	unproductive := g.NonTerminals().Difference(g.Productive())
	unproductive.IterateOnce()
	for unproductive.Next() {
		g.RemoveNonTerminal(unproductive.Item())
	}
	tracer().Debugf("removed unproductive symbols %v", unproductive)
	return g
}

// RemoveUnreachable removes every terminal and non-terminal which is not
// reachable from the start symbol.
func (g *Grammar) RemoveUnreachable() *Grammar {
	reachable := g.Reachable(g.start)
	g.NonTerminals().Difference(reachable).Each(func(A string) {
		g.RemoveNonTerminal(A)
	})
	g.Terminals().Difference(reachable).Each(func(a string) {
		g.RemoveTerminal(a)
	})
	return g
}

// RemoveUseless removes unproductive symbols, then unreachable symbols.
func (g *Grammar) RemoveUseless() *Grammar {
	return g.RemoveUnproductive().RemoveUnreachable()
}

// RemoveEpsilon transforms g into an epsilon-free grammar, generating the same
// language. For every production, all variants with nullable symbols left
// out are added, and epsilon-productions are dropped.
//
// If the start symbol S is nullable, a fresh start symbol S' is introduced,
// with productions S' -> S | &. This is the only epsilon-production in the
// resulting grammar.
func (g *Grammar) RemoveEpsilon() *Grammar {
	nullable := g.EpsilonClosure()
	for _, p := range g.Productions() {
		g.remove(p)
		if p.IsEpsilon() {
			continue
		}
		for _, body := range omissions(p.Body, nullable) {
			g.add(Production{Head: p.Head, Body: body})
		}
	}
	if nullable.Contains(g.start) {
		S := g.freshName(g.start)
		g.nonterminals.Add(S)
		g.add(NewProduction(S, g.start))
		g.add(NewProduction(S, cfgx.Epsilon))
		tracer().Infof("start symbol %s is nullable, new start symbol is %s", g.start, S)
		g.start = S
	}
	return g
}

// omissions returns all non-empty variants of body with any subset of its
// nullable symbols left out, including body itself.
func omissions(body []string, nullable *iteratable.Set) [][]string {
	variants := [][]string{{}}
	for _, X := range body {
		n := len(variants)
		for i := 0; i < n; i++ {
			with := append(clone(variants[i]), X)
			if nullable.Contains(X) {
				variants = append(variants, with) // keep variants[i] without X
			} else {
				variants[i] = with
			}
		}
	}
	result := variants[:0]
	for _, v := range variants {
		if len(v) > 0 {
			result = append(result, v)
		}
	}
	return result
}

// RemoveSimple removes all simple productions A -> B. Every non-terminal A
// receives the non-simple productions of all non-terminals in its simple
// closure instead.
func (g *Grammar) RemoveSimple() *Grammar {
	table := g.SimpleTable()
	nonsimple := make(map[string][]Production)
	for _, p := range g.Productions() {
		if g.IsSimple(p) {
			g.remove(p)
		} else {
			nonsimple[p.Head] = append(nonsimple[p.Head], p)
		}
	}
	for A, closure := range table {
		closure.Each(func(B string) {
			if B == A {
				return
			}
			for _, p := range nonsimple[B] {
				g.add(Production{Head: A, Body: clone(p.Body)})
			}
		})
	}
	return g
}

// --- Proper grammars -------------------------------------------------------

// Variant is an intermediate grammar of a transformation pipeline.
type Variant struct {
	Suffix  string
	Grammar *Grammar
}

// ToProper derives a sequence of grammars from g, each one a copy of its
// predecessor with a further transformation applied: epsilon-productions
// removed, simple productions removed, unproductive symbols removed and
// unreachable symbols removed. The last variant is a proper grammar.
// g is not changed.
func (g *Grammar) ToProper() []Variant {
	steps := []struct {
		suffix    string
		transform func(*Grammar) *Grammar
	}{
		{"epsilon_free", (*Grammar).RemoveEpsilon},
		{"simple_free", (*Grammar).RemoveSimple},
		{"unproductive_free", (*Grammar).RemoveUnproductive},
		{"unreachable_free", (*Grammar).RemoveUnreachable},
	}
	variants := make([]Variant, 0, len(steps))
	h := g
	for _, step := range steps {
		h = step.transform(h.Copy())
		h.Name = g.Name + "_" + step.suffix
		variants = append(variants, Variant{Suffix: step.suffix, Grammar: h})
	}
	return variants
}

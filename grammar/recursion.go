package grammar

import (
	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar/iteratable"
)

// IsFinite is a predicate: does g generate a finite language?
//
// IsFinite works on a cleaned copy of g, with epsilon-productions, simple
// productions and useless symbols removed (in this order). The language of
// the cleaned grammar is infinite iff its dependency graph between
// non-terminals contains a cycle.
func (g *Grammar) IsFinite() bool {
	h := g.Copy().RemoveEpsilon().RemoveSimple().RemoveUseless()
	h.Dump()
	return !h.dependencies(iteratable.NewSet()).hasCycle()
}

// --- Left recursion checks -------------------------------------------------

// DirectLeftRecursion returns the set of non-terminals A with a production
// A -> A….
func (g *Grammar) DirectLeftRecursion() *iteratable.Set {
	direct := iteratable.NewSet()
	for _, p := range g.productions {
		if p.Body[0] == p.Head {
			direct.Add(p.Head)
		}
	}
	return direct
}

// IndirectLeftRecursion returns the set of non-terminals A which derive a
// string starting with A by a chain of leftmost derivation steps, apart from
// direct left recursion. Leftmost steps include symbols exposed by nullable
// prefixes, e.g. A -> B A with B nullable.
func (g *Grammar) IndirectLeftRecursion() *iteratable.Set {
	d := g.dependencies(g.EpsilonClosure())
	indirect := iteratable.NewSet()
	nonterms := g.NonTerminals().IterateOnce()
	for nonterms.Next() {
		if A := nonterms.Item(); d.leftRecursive(A) {
			indirect.Add(A)
		}
	}
	return indirect
}

// HasLeftRecursion is a predicate: is g left recursive, either directly or
// indirectly?
func (g *Grammar) HasLeftRecursion() bool {
	return !g.DirectLeftRecursion().Empty() || !g.IndirectLeftRecursion().Empty()
}

// --- Left recursion removal ------------------------------------------------

// RemoveDirectLeftRecursion replaces the productions of non-terminal A
//
//    A -> A β1 | … | A βn | γ1 | … | γm
//
// by
//
//    A  -> γ1 A' | … | γm A'
//    A' -> β1 A' | … | βn A' | &
//
// with A' a fresh non-terminal. Productions A -> A are dropped. If A has no
// left recursive productions, or no other productions, g is left unchanged.
func (g *Grammar) RemoveDirectLeftRecursion(A string) (*Grammar, error) {
	if !g.IsNonTerminal(A) {
		return g, misuse(ErrNotNonTerminal, "removing direct left recursion of %q", A)
	}
	var loops, recursive, other []Production
	for _, p := range g.ProductionsFor(A) {
		switch {
		case len(p.Body) == 1 && p.Body[0] == A:
			loops = append(loops, p)
		case p.Body[0] == A:
			recursive = append(recursive, p)
		default:
			other = append(other, p)
		}
	}
	if len(loops)+len(recursive) == 0 || len(other) == 0 {
		return g, nil
	}
	for _, p := range loops {
		g.remove(p)
	}
	if len(recursive) == 0 {
		return g, nil
	}
	A1 := g.freshName(A)
	g.nonterminals.Add(A1)
	for _, p := range other {
		g.remove(p)
		g.add(NewProduction(A, append(clone(p.Symbols()), A1)...))
	}
	for _, p := range recursive {
		g.remove(p)
		g.add(NewProduction(A1, append(clone(p.Body[1:]), A1)...))
	}
	g.add(NewProduction(A1, cfgx.Epsilon))
	tracer().Infof("removed direct left recursion of %s, introducing %s", A, A1)
	return g, nil
}

// RemoveAllDirectLeftRecursion removes direct left recursion for every
// non-terminal which has some.
func (g *Grammar) RemoveAllDirectLeftRecursion() *Grammar {
	for _, A := range g.DirectLeftRecursion().Values() {
		g.RemoveDirectLeftRecursion(A)
	}
	return g
}

// RemoveLeftRecursion removes direct and indirect left recursion, using the
// classical algorithm for an order A1, …, An of non-terminals:
//
//    for i = 1 … n
//        for j = 1 … i-1
//            replace every Ai -> Aj γ by Ai -> δ γ, for all Aj -> δ
//        remove direct left recursion of Ai
//
// order may name all or some of the non-terminals; the remaining ones are
// appended in the order of g.Heads(). A nil order processes non-terminals in
// the order of g.Heads(). Different orders result in different grammars,
// all of them generating the same language.
//
// The classical algorithm requires a grammar without epsilon-productions and
// without cycles A ⇒+ A. If g has either of them, epsilon-productions and
// simple productions are removed first. A non-terminal all of whose
// productions are left recursive derives no terminal string; its productions
// are dropped.
func (g *Grammar) RemoveLeftRecursion(order []string) (*Grammar, error) {
	order, err := g.completeOrder(order)
	if err != nil {
		return g, err
	}
	h := g.Copy()
	if h.hasEpsilonProductions() || h.hasSimpleCycle() {
		tracer().Infof("removing epsilon-productions and simple productions first")
		h.RemoveEpsilon().RemoveSimple()
		if order, err = h.completeOrder(order); err != nil {
			return g, err
		}
	}
	h.removeLeftRecursion(order)
	*g = *h
	return g, nil
}

func (g *Grammar) removeLeftRecursion(order []string) {
	position := make(map[string]int, len(order))
	for i, A := range order {
		position[A] = i
	}
	for i, Ai := range order {
		// substitute leading Aj, j < i, until none is left
		worklist := g.ProductionsFor(Ai)
		for len(worklist) > 0 {
			p := worklist[0]
			worklist = worklist[1:]
			j, ok := position[p.Body[0]]
			if !ok || j >= i || !g.HasProduction(p) {
				continue
			}
			g.remove(p)
			gamma := p.Body[1:]
			for _, q := range g.ProductionsFor(p.Body[0]) {
				r := NewProduction(Ai, append(clone(q.Symbols()), gamma...)...)
				if !g.HasProduction(r) {
					g.add(r)
					worklist = append(worklist, r)
				}
			}
		}
		g.RemoveDirectLeftRecursion(Ai)
		g.dropIfLeftRecursiveOnly(Ai)
	}
}

// dropIfLeftRecursiveOnly removes the productions of A if every one of them
// starts with A. Such an A is unproductive, and later substitutions of A
// would never terminate.
func (g *Grammar) dropIfLeftRecursiveOnly(A string) {
	prods := g.ProductionsFor(A)
	for _, p := range prods {
		if p.Body[0] != A {
			return
		}
	}
	for _, p := range prods {
		g.remove(p)
	}
	if len(prods) > 0 {
		tracer().Infof("%s derives no terminal string, dropped its productions", A)
	}
}

func (g *Grammar) hasEpsilonProductions() bool {
	for _, p := range g.productions {
		if p.IsEpsilon() {
			return true
		}
	}
	return false
}

// hasSimpleCycle is a predicate: is there a non-terminal A with A ⇒+ A by
// simple productions only?
func (g *Grammar) hasSimpleCycle() bool {
	for _, p := range g.productions {
		if g.IsSimple(p) && g.SimpleClosure(p.Body[0]).Contains(p.Head) {
			return true
		}
	}
	return false
}

// completeOrder checks a client supplied order of non-terminals and appends
// all non-terminals missing.
func (g *Grammar) completeOrder(order []string) ([]string, error) {
	seen := iteratable.NewSet()
	complete := make([]string, 0, g.nonterminals.Size())
	for _, A := range order {
		if !g.IsNonTerminal(A) {
			return nil, misuse(ErrInvalidOrder, "%q is not a non-terminal", A)
		}
		if seen.Contains(A) {
			return nil, misuse(ErrInvalidOrder, "%q named twice", A)
		}
		seen.Add(A)
		complete = append(complete, A)
	}
	for _, A := range g.Heads() {
		if !seen.Contains(A) {
			complete = append(complete, A)
		}
	}
	return complete, nil
}

func clone(symbols []string) []string {
	c := make([]string, len(symbols), len(symbols)+1)
	copy(c, symbols)
	return c
}

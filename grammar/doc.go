/*
Package grammar implements context-free grammars and transformations on them.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may contain
epsilon-productions. The first left hand side becomes the start symbol.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").T("b").End()          // S  ->  A b
    b.LHS("S").N("A").N("B").T("c").End()   // S  ->  A B c
    b.LHS("A").T("a").N("A").End()          // A  ->  a A
    b.LHS("A").Epsilon()                    // A  ->  &
    b.LHS("B").T("b").N("B").End()          // B  ->  b B
    b.LHS("B").N("A").T("d").End()          // B  ->  A d
    b.LHS("B").Epsilon()                    // B  ->  &
    g, err := b.Grammar()

Grammars are sets of productions: adding a production twice does not change
the grammar. Clients may as well create grammars with New and add symbols and
productions one at a time. Package textform reads grammars from text.

Static Grammar Analysis

Analyses do not modify a grammar. They compute productive and reachable
symbols, the epsilon closure, FIRST and FOLLOW sets, and check for
finiteness of the generated language and for left recursion.

    first := g.FirstSets()       // map from symbol to set of terminals
    follow := g.FollowSets()

    // Output for the grammar above:
    FIRST(S) = {a, b, c, d}      FOLLOW(S) = {$}
    FIRST(A) = {&, a}            FOLLOW(A) = {a, b, c, d}
    FIRST(B) = {&, a, b, d}      FOLLOW(B) = {$, c}

Grammar Rewrites

Rewrites modify the grammar they are called for. Clients wanting to keep the
original have to create a copy first:

    h := g.Copy().RemoveEpsilon().RemoveSimple().RemoveUseless()

Rewrites which have to introduce new non-terminals derive their names from an
existing non-terminal: its first letter plus the smallest numeric suffix not
yet in use (S → S0, S1, …).

Left recursion is removed with the classical ordered algorithm. The resulting
grammar depends on the order in which non-terminals are processed; clients
may pass an explicit order. Different orders produce different grammars, all
of them generating the same language.

Left factoring is bounded by a number of steps and reports failure if the
grammar could not be factored within the bound.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgx.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfgx.grammar")
}

package grammar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar/iteratable"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Productions -----------------------------------------------------------

// Production is a rewrite rule Head -> Body. The body of an epsilon-production
// consists of cfgx.Epsilon only, it is never empty.
type Production struct {
	Head string
	Body []string
}

// NewProduction creates a production. Epsilon symbols within the body are
// dropped; if nothing remains, the result is an epsilon-production.
func NewProduction(head string, body ...string) Production {
	b := make([]string, 0, len(body))
	for _, sym := range body {
		if sym != cfgx.Epsilon {
			b = append(b, sym)
		}
	}
	if len(b) == 0 {
		b = append(b, cfgx.Epsilon)
	}
	return Production{Head: head, Body: b}
}

// IsEpsilon is a predicate: is p an epsilon-production?
func (p Production) IsEpsilon() bool {
	return len(p.Body) == 1 && p.Body[0] == cfgx.Epsilon
}

// Len returns the number of symbols in p's body. Epsilon-productions have
// length 0.
func (p Production) Len() int {
	if p.IsEpsilon() {
		return 0
	}
	return len(p.Body)
}

// Symbols returns p's body as a sequence of symbols, with epsilon-productions
// returning an empty sequence.
func (p Production) Symbols() []string {
	if p.IsEpsilon() {
		return []string{}
	}
	return p.Body
}

// Contains is a predicate: does p's body contain symbol sym?
func (p Production) Contains(sym string) bool {
	return slices.Contains(p.Body, sym)
}

// Equals is a predicate: are p and q the same production?
func (p Production) Equals(q Production) bool {
	return p.Head == q.Head && slices.Equal(p.Body, q.Body)
}

func (p Production) String() string {
	return p.Head + " -> " + strings.Join(p.Body, " ")
}

// compareProductions orders productions by head, then by body symbols.
func compareProductions(p, q Production) int {
	if c := strings.Compare(p.Head, q.Head); c != 0 {
		return c
	}
	return compareBodies(p.Body, q.Body)
}

func compareBodies(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// --- Grammars --------------------------------------------------------------

// Grammar is a context-free grammar (N, T, P, S). Productions form a set, i.e.
// no production is contained twice.
//
// Terminals and non-terminals are disjoint, and every symbol occuring within
// a production is declared as either of them.
type Grammar struct {
	Name         string
	start        string
	nonterminals *iteratable.Set
	terminals    *iteratable.Set
	productions  map[string]Production
}

// New creates an empty grammar.
func New(name string) *Grammar {
	return &Grammar{
		Name:         name,
		nonterminals: iteratable.NewSet(),
		terminals:    iteratable.NewSet(),
		productions:  make(map[string]Production),
	}
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// SetStart sets the start symbol, declaring it as a non-terminal if necessary.
func (g *Grammar) SetStart(A string) error {
	if err := g.AddNonTerminal(A); err != nil {
		return err
	}
	g.start = A
	return nil
}

// AddNonTerminal declares symbols as non-terminals.
func (g *Grammar) AddNonTerminal(symbols ...string) error {
	for _, A := range symbols {
		if err := checkSymbol(A); err != nil {
			return err
		}
		if g.terminals.Contains(A) {
			return misuse(ErrSymbolClash, "declaring %q as non-terminal", A)
		}
		g.nonterminals.Add(A)
	}
	return nil
}

// AddTerminal declares symbols as terminals.
func (g *Grammar) AddTerminal(symbols ...string) error {
	for _, a := range symbols {
		if err := checkSymbol(a); err != nil {
			return err
		}
		if g.nonterminals.Contains(a) {
			return misuse(ErrSymbolClash, "declaring %q as terminal", a)
		}
		g.terminals.Add(a)
	}
	return nil
}

func checkSymbol(sym string) error {
	if sym == cfgx.Epsilon || sym == cfgx.EndOfInput {
		return misuse(ErrReservedSymbol, "declaring %q", sym)
	}
	if sym == "" || strings.ContainsAny(sym, " \t\r\n|") {
		return misuse(ErrUnknownSymbol, "declaring %q", sym)
	}
	return nil
}

// AddProduction adds a production head -> body. head has to be a non-terminal
// and every body symbol has to be declared. An empty body adds an
// epsilon-production. Adding a production already present is a no-op.
func (g *Grammar) AddProduction(head string, body ...string) error {
	if head == "" {
		return misuse(ErrEmptyProduction, "adding production")
	}
	if !g.nonterminals.Contains(head) {
		return misuse(ErrNotNonTerminal, "adding production for %q", head)
	}
	for _, sym := range body {
		if sym != cfgx.Epsilon && !g.IsSymbol(sym) {
			return misuse(ErrUnknownSymbol, "adding production for %q: %q", head, sym)
		}
	}
	g.add(NewProduction(head, body...))
	return nil
}

// add inserts p without any checks.
func (g *Grammar) add(p Production) {
	g.productions[p.String()] = p
}

func (g *Grammar) remove(p Production) {
	delete(g.productions, p.String())
}

// HasProduction is a predicate: is p contained in g?
func (g *Grammar) HasProduction(p Production) bool {
	_, ok := g.productions[p.String()]
	return ok
}

// IsNonTerminal is a predicate: is sym a non-terminal of g?
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonterminals.Contains(sym)
}

// IsTerminal is a predicate: is sym a terminal of g?
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Contains(sym)
}

// IsSymbol is a predicate: is sym declared in g?
func (g *Grammar) IsSymbol(sym string) bool {
	return g.IsNonTerminal(sym) || g.IsTerminal(sym)
}

// NonTerminals returns a copy of the set of non-terminals.
func (g *Grammar) NonTerminals() *iteratable.Set {
	return g.nonterminals.Copy()
}

// Terminals returns a copy of the set of terminals.
func (g *Grammar) Terminals() *iteratable.Set {
	return g.terminals.Copy()
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.productions)
}

// Productions returns all productions, ordered by head and body.
func (g *Grammar) Productions() []Production {
	prods := maps.Values(g.productions)
	slices.SortFunc(prods, compareProductions)
	return prods
}

// ProductionsFor returns the productions with head A, ordered by body.
func (g *Grammar) ProductionsFor(A string) []Production {
	var prods []Production
	for _, p := range g.productions {
		if p.Head == A {
			prods = append(prods, p)
		}
	}
	slices.SortFunc(prods, compareProductions)
	return prods
}

// Heads returns the non-terminals in presentation order: the start symbol
// first, followed by all other non-terminals in lexicographic order.
func (g *Grammar) Heads() []string {
	heads := make([]string, 0, g.nonterminals.Size())
	if g.nonterminals.Contains(g.start) {
		heads = append(heads, g.start)
	}
	g.nonterminals.Each(func(A string) {
		if A != g.start {
			heads = append(heads, A)
		}
	})
	return heads
}

// Copy creates a deep copy of g. The copy does not share any data with g.
func (g *Grammar) Copy() *Grammar {
	c := &Grammar{
		Name:         g.Name,
		start:        g.start,
		nonterminals: g.nonterminals.Copy(),
		terminals:    g.terminals.Copy(),
		productions:  make(map[string]Production, len(g.productions)),
	}
	for k, p := range g.productions {
		c.productions[k] = Production{Head: p.Head, Body: slices.Clone(p.Body)}
	}
	return c
}

// Equals is a predicate: do g and other have the same start symbol, the same
// non-terminals, terminals and productions? Grammar names are not compared.
func (g *Grammar) Equals(other *Grammar) bool {
	if other == nil || g.start != other.start || len(g.productions) != len(other.productions) {
		return false
	}
	if !g.nonterminals.Equals(other.nonterminals) || !g.terminals.Equals(other.terminals) {
		return false
	}
	for k := range g.productions {
		if _, ok := other.productions[k]; !ok {
			return false
		}
	}
	return true
}

// String returns g in text form, one line per non-terminal:
//
//    S -> a S | b
//    A -> &
//
func (g *Grammar) String() string {
	var b strings.Builder
	for _, A := range g.Heads() {
		prods := g.ProductionsFor(A)
		if len(prods) == 0 {
			continue
		}
		b.WriteString(A)
		b.WriteString(" ->")
		for i, p := range prods {
			if i > 0 {
				b.WriteString(" |")
			}
			b.WriteString(" " + strings.Join(p.Body, " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Dump is a debugging helper, tracing g to the grammar tracer at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("N = %v, T = %v, S = %s", g.nonterminals, g.terminals, g.start)
	for i, p := range g.Productions() {
		tracer().Debugf("%3d: %s", i, p)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// validate checks the structural invariants of g.
func (g *Grammar) validate() error {
	if g.start == "" {
		return ErrNoStart
	}
	if !g.nonterminals.Contains(g.start) {
		return fmt.Errorf("start symbol %q: %w", g.start, ErrNotNonTerminal)
	}
	if g.nonterminals.Intersects(g.terminals) {
		return ErrSymbolClash
	}
	for _, p := range g.productions {
		if !g.nonterminals.Contains(p.Head) {
			return fmt.Errorf("production %v: %w", p, ErrNotNonTerminal)
		}
		for _, sym := range p.Body {
			if sym == cfgx.Epsilon {
				if len(p.Body) > 1 {
					return fmt.Errorf("production %v: %w", p, ErrReservedSymbol)
				}
				continue
			}
			if !g.IsSymbol(sym) {
				return fmt.Errorf("production %v, symbol %q: %w", p, sym, ErrUnknownSymbol)
			}
		}
	}
	return nil
}

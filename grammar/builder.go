package grammar

import (
	"fmt"
)

// Builder is a DSL-like helper to construct grammars:
//
//    b := NewBuilder("G")
//    b.LHS("S").T("a").N("S").End()   // S -> a S
//    b.LHS("S").T("b").End()          // S -> b
//    b.LHS("A").Epsilon()             // A -> &
//    g, err := b.Grammar()
//
// The first left hand side is the start symbol. Symbols are declared as
// non-terminals (N) or terminals (T) on first use.
type Builder struct {
	g   *Grammar
	err error
}

// RuleBuilder collects the right hand side of a single production.
type RuleBuilder struct {
	b    *Builder
	head string
	body []string
}

// NewBuilder creates a builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{g: New(name)}
}

// LHS starts a new production with head A.
func (b *Builder) LHS(A string) *RuleBuilder {
	if b.g.start == "" {
		b.check(b.g.SetStart(A))
	} else {
		b.check(b.g.AddNonTerminal(A))
	}
	return &RuleBuilder{b: b, head: A}
}

// N appends a non-terminal to the production's body.
func (r *RuleBuilder) N(A string) *RuleBuilder {
	r.b.check(r.b.g.AddNonTerminal(A))
	r.body = append(r.body, A)
	return r
}

// T appends a terminal to the production's body.
func (r *RuleBuilder) T(a string) *RuleBuilder {
	r.b.check(r.b.g.AddTerminal(a))
	r.body = append(r.body, a)
	return r
}

// End closes the production and adds it to the grammar.
func (r *RuleBuilder) End() *Builder {
	if len(r.body) == 0 {
		r.b.check(fmt.Errorf("production for %q has an empty body, use Epsilon()", r.head))
		return r.b
	}
	r.b.check(r.b.g.AddProduction(r.head, r.body...))
	return r.b
}

// Epsilon closes the production as an epsilon-production. Symbols already
// appended are discarded.
func (r *RuleBuilder) Epsilon() *Builder {
	r.b.check(r.b.g.AddProduction(r.head))
	return r.b
}

func (b *Builder) check(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// Grammar returns the grammar built so far. If any production has been
// rejected, the first error encountered is returned.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.g.validate(); err != nil {
		return nil, err
	}
	return b.g.Copy(), nil
}

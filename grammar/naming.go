package grammar

import (
	"strconv"
)

// FreshName returns a non-terminal name not yet used in g, derived from
// non-terminal A: the first letter of A followed by the smallest non-negative
// number not yet in use for that letter.
//
//    S        → S0
//    S, S0    → S1
//    A1, A2   → A0
//
// FreshName does not declare the name. A has to be a non-empty symbol name.
func (g *Grammar) FreshName(A string) (string, error) {
	if A == "" {
		return "", misuse(ErrUnknownSymbol, "deriving a fresh name from %q", A)
	}
	return g.freshName(A), nil
}

func (g *Grammar) freshName(A string) string {
	prefix := A[:1]
	used := make(map[int]bool)
	g.nonterminals.Each(func(B string) {
		if len(B) > 1 && B[:1] == prefix {
			if n, ok := numericSuffix(B[1:]); ok {
				used[n] = true
			}
		}
	})
	n := 0
	for used[n] || g.IsSymbol(prefix+strconv.Itoa(n)) {
		n++
	}
	return prefix + strconv.Itoa(n)
}

func numericSuffix(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

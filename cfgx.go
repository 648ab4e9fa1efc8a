package cfgx

import "fmt"

// --- Symbol alphabet -------------------------------------------------------

// Epsilon denotes the empty string. A production body consisting of Epsilon
// only is an epsilon-production.
const Epsilon = "&"

// EndOfInput marks the end of input. It occurs only in FOLLOW sets and is
// never part of a grammar.
const EndOfInput = "$"

// SymKind is a category type for grammar symbols.
type SymKind int8

// Symbols fall into disjoint categories.
const (
	InvalidKind SymKind = iota
	NonTerminalKind
	TerminalKind
	EpsilonKind
	EndKind
)

func (k SymKind) String() string {
	switch k {
	case NonTerminalKind:
		return "non-terminal"
	case TerminalKind:
		return "terminal"
	case EpsilonKind:
		return "epsilon"
	case EndKind:
		return "end-of-input"
	}
	return fmt.Sprintf("invalid(%d)", int8(k))
}

// Punctuation lists the single characters which are accepted as terminals
// in addition to lowercase/digit words. This lets clients write the
// classical expression grammar
//
//    E -> E + T | T
//    T -> T * F | F
//    F -> ( E ) | id
//
const Punctuation = "+-*/()[]{}<>=!?,.;:^%#@~'\"_"

// IsNonTerminalName is a predicate: does name follow the naming convention for
// non-terminals, i.e. an uppercase letter optionally followed by digits?
func IsNonTerminalName(name string) bool {
	if len(name) == 0 || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isDigit(name[i]) {
			return false
		}
	}
	return true
}

// IsTerminalName is a predicate: does name follow the naming convention for
// terminals? Terminals are words of lowercase letters and digits, or a single
// punctuation character.
func IsTerminalName(name string) bool {
	if len(name) == 0 {
		return false
	}
	if len(name) == 1 && isPunct(name[0]) {
		return true
	}
	for i := 0; i < len(name); i++ {
		if !isDigit(name[i]) && (name[i] < 'a' || name[i] > 'z') {
			return false
		}
	}
	return true
}

// Classify returns the symbol category of name, judged by naming convention.
func Classify(name string) SymKind {
	switch {
	case name == Epsilon:
		return EpsilonKind
	case name == EndOfInput:
		return EndKind
	case IsNonTerminalName(name):
		return NonTerminalKind
	case IsTerminalName(name):
		return TerminalKind
	}
	return InvalidKind
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isPunct(c byte) bool {
	for i := 0; i < len(Punctuation); i++ {
		if Punctuation[i] == c {
			return true
		}
	}
	return false
}

package cfgx

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		kind SymKind
	}{
		{"S", NonTerminalKind},
		{"S0", NonTerminalKind},
		{"B1000", NonTerminalKind},
		{"a", TerminalKind},
		{"id", TerminalKind},
		{"a1", TerminalKind},
		{"42", TerminalKind},
		{"+", TerminalKind},
		{"(", TerminalKind},
		{"&", EpsilonKind},
		{"$", EndKind},
		{"Sa", InvalidKind},
		{"aS", InvalidKind},
		{"", InvalidKind},
		{"++", InvalidKind},
	}
	for _, test := range tests {
		if k := Classify(test.name); k != test.kind {
			t.Errorf("expected %q to be a %s, is %s", test.name, test.kind, k)
		}
	}
}

func TestNonTerminalsAndTerminalsDisjoint(t *testing.T) {
	for _, name := range []string{"S", "A1", "a", "b2", "*", "&", "$"} {
		if IsNonTerminalName(name) && IsTerminalName(name) {
			t.Errorf("%q classified as both terminal and non-terminal", name)
		}
	}
}

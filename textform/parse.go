package textform

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/cfgx"
	"github.com/npillmayer/cfgx/grammar"
)

// --- Syntax tree -----------------------------------------------------------

type grammarText struct {
	Rules []*ruleText `parser:"EOL* @@*"`
}

type ruleText struct {
	Pos          lexer.Position
	Head         string     `parser:"@NonTerminal Arrow"`
	Alternatives []*altText `parser:"@@ (Bar @@)* EOL*"`
}

type altText struct {
	Pos     lexer.Position
	Epsilon bool     `parser:"  @Epsilon"`
	Symbols []string `parser:"| @(NonTerminal | Terminal)+"`
}

var parser = participle.MustBuild[grammarText](participle.Lexer(Lexer))

// --- Errors ----------------------------------------------------------------

// SyntaxError is returned for malformed grammar text.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Pos, e.Msg)
}

// ErrEmpty is returned for grammar text without any rule.
var ErrEmpty = errors.New("grammar text contains no rules")

func syntaxError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &SyntaxError{Pos: perr.Position(), Msg: perr.Message()}
	}
	return err
}

// --- Parsing ---------------------------------------------------------------

// Parse reads a grammar from its text form. The grammar will be named name.
// Malformed text results in a *SyntaxError.
func Parse(name string, text string) (*grammar.Grammar, error) {
	tree, err := parser.ParseString(name, text)
	if err != nil {
		return nil, syntaxError(err)
	}
	return build(name, tree)
}

// ParseReader reads a grammar in text form from r. filename is used for
// error positions only.
func ParseReader(name string, filename string, r io.Reader) (*grammar.Grammar, error) {
	tree, err := parser.Parse(filename, r)
	if err != nil {
		return nil, syntaxError(err)
	}
	return build(name, tree)
}

func build(name string, tree *grammarText) (*grammar.Grammar, error) {
	if len(tree.Rules) == 0 {
		return nil, ErrEmpty
	}
	g := grammar.New(name)
	if err := g.SetStart(tree.Rules[0].Head); err != nil {
		return nil, err
	}
	for _, rule := range tree.Rules {
		if err := g.AddNonTerminal(rule.Head); err != nil {
			return nil, &SyntaxError{Pos: rule.Pos, Msg: err.Error()}
		}
	}
	for _, rule := range tree.Rules {
		for _, alt := range rule.Alternatives {
			if err := declare(g, alt.Symbols); err != nil {
				return nil, &SyntaxError{Pos: alt.Pos, Msg: err.Error()}
			}
			if err := g.AddProduction(rule.Head, alt.Symbols...); err != nil {
				return nil, &SyntaxError{Pos: alt.Pos, Msg: err.Error()}
			}
		}
	}
	tracer().Debugf("parsed grammar %s with %d productions", name, g.Size())
	return g, nil
}

func declare(g *grammar.Grammar, symbols []string) error {
	for _, sym := range symbols {
		var err error
		switch cfgx.Classify(sym) {
		case cfgx.NonTerminalKind:
			err = g.AddNonTerminal(sym)
		case cfgx.TerminalKind:
			err = g.AddTerminal(sym)
		default:
			err = fmt.Errorf("invalid symbol %q", sym)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

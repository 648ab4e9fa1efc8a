package textform

import (
	"fmt"
	"io"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/cfgx"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the text form.
const (
	EOL lexer.TokenType = iota + 1
	Arrow
	Bar
	Epsilon
	NonTerminal
	Terminal
)

var tokenNames = map[string]lexer.TokenType{
	"EOF":         lexer.EOF,
	"EOL":         EOL,
	"Arrow":       Arrow,
	"Bar":         Bar,
	"Epsilon":     Epsilon,
	"NonTerminal": NonTerminal,
	"Terminal":    Terminal,
}

// Definition is a participle lexer definition for the text form, backed by a
// lexmachine DFA. The DFA is compiled on first use.
type Definition struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

var _ lexer.Definition = (*Definition)(nil)

// Lexer is the lexer definition used by Parse.
var Lexer = &Definition{}

// Symbols is part of interface lexer.Definition.
func (def *Definition) Symbols() map[string]lexer.TokenType {
	return tokenNames
}

// Lex is part of interface lexer.Definition.
func (def *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return def.LexBytes(filename, input)
}

// LexString is part of interface lexer.StringDefinition.
func (def *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return def.LexBytes(filename, []byte(input))
}

// LexBytes is part of interface lexer.BytesDefinition.
func (def *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	def.once.Do(def.compile)
	if def.err != nil {
		return nil, def.err
	}
	s, err := def.lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &scanner{scanner: s, filename: filename, input: input}, nil
}

func (def *Definition) compile() {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`\-\>`), makeToken(Arrow))
	lx.Add([]byte(`\|`), makeToken(Bar))
	lx.Add([]byte(`\&`), makeToken(Epsilon))
	lx.Add([]byte(`[A-Z][0-9]*`), makeToken(NonTerminal))
	lx.Add([]byte(`[a-z0-9]+`), makeToken(Terminal))
	for _, c := range cfgx.Punctuation {
		lx.Add([]byte(`\`+string(c)), makeToken(Terminal))
	}
	lx.Add([]byte(`\n`), makeToken(EOL))
	lx.Add([]byte(`( |\t|\r)+`), skip)
	if def.err = lx.Compile(); def.err != nil {
		tracer().Errorf("error compiling DFA: %v", def.err)
		return
	}
	def.lexer = lx
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id lexer.TokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// scanner wraps a lexmachine scanner into a participle lexer.
type scanner struct {
	scanner  *lexmachine.Scanner
	filename string
	input    []byte
}

// Next is part of interface lexer.Lexer.
func (sc *scanner) Next() (lexer.Token, error) {
	tok, err, eos := sc.scanner.Next()
	if err != nil {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			pos := lexer.Position{
				Filename: sc.filename,
				Offset:   ui.StartTC,
				Line:     ui.StartLine,
				Column:   ui.StartColumn,
			}
			return lexer.Token{}, &lexer.Error{
				Msg: fmt.Sprintf("invalid symbol %q", sc.unconsumed(ui)),
				Pos: pos,
			}
		}
		return lexer.Token{}, err
	}
	if eos {
		return lexer.EOFToken(sc.endPosition()), nil
	}
	t := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %q", t.Type, t.Lexeme)
	return lexer.Token{
		Type:  lexer.TokenType(t.Type),
		Value: string(t.Lexeme),
		Pos: lexer.Position{
			Filename: sc.filename,
			Offset:   t.TC,
			Line:     t.StartLine,
			Column:   t.StartColumn,
		},
	}, nil
}

func (sc *scanner) unconsumed(ui *machines.UnconsumedInput) string {
	from, to := ui.StartTC, ui.FailTC
	if to <= from {
		to = from + 1
	}
	if to > len(sc.input) {
		to = len(sc.input)
	}
	if from >= to {
		return ""
	}
	return string(sc.input[from:to])
}

func (sc *scanner) endPosition() lexer.Position {
	pos := lexer.Position{Filename: sc.filename, Line: 1, Column: 1}
	pos.Advance(string(sc.input))
	return pos
}

package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/gconf"
)

// Errors signaling operational misuse of a grammar.
var (
	ErrUnknownSymbol   = errors.New("unknown symbol")
	ErrNotNonTerminal  = errors.New("not a non-terminal")
	ErrNotTerminal     = errors.New("not a terminal")
	ErrSymbolClash     = errors.New("symbol cannot be terminal and non-terminal")
	ErrReservedSymbol  = errors.New("reserved symbol")
	ErrInvalidOrder    = errors.New("invalid non-terminal order")
	ErrNoStart         = errors.New("grammar has no start symbol")
	ErrEmptyProduction = errors.New("production without head")
)

// misuse reports an error condition caused by a client. If configuration flag
// "panic-on-grammar-misuse" is set, misuse will panic.
func misuse(err error, format string, args ...interface{}) error {
	err = fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
	tracer().Errorf("%v", err)
	if gconf.GetBool("panic-on-grammar-misuse") {
		panic(err)
	}
	return err
}

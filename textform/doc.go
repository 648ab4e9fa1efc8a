/*
Package textform reads and writes grammars in their text form.

The text form has one rule per line, each rule consisting of a non-terminal,
an arrow and a list of alternatives, separated by bars:

    S -> a S | B
    B -> b B | &

The head of the first rule is the start symbol. '&' denotes the empty word.
Symbols are classified by naming convention: an upper-case letter, optionally
followed by digits, is a non-terminal; lower-case letters and digits, or a
single punctuation character, form a terminal. Symbols may be written
without separating whitespace, as long as the result is unambiguous:

    E -> E+T | T
    F -> (E) | id

Rules with the same head are merged. Non-terminals occuring only within
bodies are declared without productions.

Lexing is done by a lexmachine DFA, parsing by participle.

    g, err := textform.Parse("G", text)
    if err != nil {
        var synerr *textform.SyntaxError
        if errors.As(err, &synerr) {
            // report synerr.Pos
        }
    }
    fmt.Print(textform.Render(g))

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textform

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgx.textform'.
func tracer() tracing.Trace {
	return tracing.Select("cfgx.textform")
}

package textform

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cfgx/grammar"
)

// Format writes g in text form to w: one line per non-terminal with
// productions, the start symbol's line first. Arrows are aligned.
func Format(w io.Writer, g *grammar.Grammar) error {
	var heads []string
	width := 0
	for _, A := range g.Heads() {
		if len(g.ProductionsFor(A)) > 0 {
			heads = append(heads, A)
			if len(A) > width {
				width = len(A)
			}
		}
	}
	for _, A := range heads {
		var alts []string
		for _, p := range g.ProductionsFor(A) {
			alts = append(alts, strings.Join(p.Body, " "))
		}
		if _, err := fmt.Fprintf(w, "%-*s -> %s\n", width, A, strings.Join(alts, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// Render returns g in text form. Parsing the result yields a grammar equal
// to g, provided g's symbols follow the naming convention and every
// non-terminal and terminal occurs in some production.
func Render(g *grammar.Grammar) string {
	var b strings.Builder
	Format(&b, g)
	return b.String()
}

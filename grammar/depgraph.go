package grammar

import (
	"fmt"
	"io"

	"github.com/npillmayer/cfgx/grammar/iteratable"
	"github.com/npillmayer/cfgx/grammar/sparse"
)

// depGraph is the dependency graph between non-terminals: there is an edge
// A → B if B occurs in the body of some A-production. Every edge carries a
// pair of counts: the number of occurences of B in A-productions, and the
// number of leftmost occurences, i.e. those preceded by nullable symbols only.
type depGraph struct {
	names  []string       // non-terminals, sorted
	index  map[string]int // position of a non-terminal within names
	matrix *sparse.IntMatrix
	direct []int32 // number of productions A -> A…, per non-terminal
}

// dependencies creates the dependency graph of g. Leftmost occurences are
// determined with respect to the set of nullable non-terminals.
func (g *Grammar) dependencies(nullable *iteratable.Set) *depGraph {
	names := g.nonterminals.Values()
	d := &depGraph{
		names:  names,
		index:  make(map[string]int, len(names)),
		matrix: sparse.NewIntMatrix(len(names), len(names), 0),
		direct: make([]int32, len(names)),
	}
	for i, A := range names {
		d.index[A] = i
	}
	for _, p := range g.Productions() {
		i, ok := d.index[p.Head]
		if !ok {
			continue
		}
		leftmost := true
		for k, B := range p.Symbols() {
			j, isNT := d.index[B]
			if isNT {
				if leftmost {
					d.matrix.Inc(i, j, 1, 1)
				} else {
					d.matrix.Inc(i, j, 1, 0)
				}
				if k == 0 && i == j {
					d.direct[i]++
				}
			}
			leftmost = leftmost && nullable.Contains(B)
		}
	}
	tracer().Debugf("dependency matrix:\n%v", d.matrix)
	return d
}

// successors returns the indices of all non-terminals B with an edge A → B.
// If leftmost is set, only leftmost edges are considered.
func (d *depGraph) successors(i int, leftmost bool) []int {
	var succ []int
	d.matrix.EachInRow(i, func(j int, occ, left int32) {
		if occ > 0 && (!leftmost || left > 0) {
			succ = append(succ, j)
		}
	})
	return succ
}

// hasCycle is a predicate: is there a cycle reachable from any non-terminal?
func (d *depGraph) hasCycle() bool {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make([]int, len(d.names))
	var visit func(int) bool
	visit = func(i int) bool {
		state[i] = onPath
		for _, j := range d.successors(i, false) {
			if state[j] == onPath {
				tracer().Debugf("cycle detected at %s -> %s", d.names[i], d.names[j])
				return true
			}
			if state[j] == unvisited && visit(j) {
				return true
			}
		}
		state[i] = done
		return false
	}
	for i := range d.names {
		if state[i] == unvisited && visit(i) {
			return true
		}
	}
	return false
}

// leftRecursive is a predicate: does A derive a string starting with A via a
// chain of leftmost steps, other than the direct self-reference A -> A…?
func (d *depGraph) leftRecursive(A string) bool {
	i, ok := d.index[A]
	if !ok {
		return false
	}
	if _, left := d.matrix.Values(i, i); left > d.direct[i] {
		return true // A exposed behind nullable symbols
	}
	seen := make([]bool, len(d.names))
	var worklist []int
	for _, j := range d.successors(i, true) {
		if j != i {
			seen[j] = true
			worklist = append(worklist, j)
		}
	}
	for len(worklist) > 0 {
		k := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, j := range d.successors(k, true) {
			if j == i {
				return true
			}
			if !seen[j] {
				seen[j] = true
				worklist = append(worklist, j)
			}
		}
	}
	return false
}

// --- Graphviz export -------------------------------------------------------

// DependencyGraphViz exports the dependency graph between non-terminals to
// the Graphviz Dot format. Edges of leftmost occurences are drawn bold, and
// the start symbol is filled.
func (g *Grammar) DependencyGraphViz(w io.Writer) error {
	d := g.dependencies(g.EpsilonClosure())
	_, err := io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=ellipse, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	if err != nil {
		return err
	}
	for _, A := range d.names {
		fmt.Fprintf(w, "%s [fillcolor=%s]\n", A, g.nodecolor(A))
	}
	for i, A := range d.names {
		d.matrix.EachInRow(i, func(j int, occ, left int32) {
			style := "solid"
			if left > 0 {
				style = "bold"
			}
			fmt.Fprintf(w, "%s -> %s [label=\"%d\", style=%s]\n", A, d.names[j], occ, style)
		})
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

func (g *Grammar) nodecolor(A string) string {
	if A == g.start {
		return "lightgray"
	}
	return "white"
}

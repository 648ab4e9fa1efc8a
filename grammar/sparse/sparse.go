/*
Package sparse implements a simple type for sparse integer matrices.
It is mainly used for adjacency matrices of grammar symbols, e.g. the
dependency graph between non-terminals.
Every entry in the matrix is a pair (int32,int32).

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// IntMatrix is a type for a sparse matrix of integer pairs. Construct with
//
//     M := NewIntMatrix(10, 10, 0)   // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711, 1)           // set a pair of values
//     a, b := M.Values(2, 3)         // returns (4711, 1)
//     M.Inc(2, 3, 1, 0)              // (4712, 1)
//     M.Inc(1, 1, 1, 1)              // (1, 1), counting from the null-value
//     cnt := M.ValueCount()          // returns 2 (two positions set)
//     v := M.Value(9, 9)             // returns 0, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value. Space for
// null-values is not re-claimed.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    intPair
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the primary value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue)
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	if k, found := m.find(i, j); found {
		return m.values[k].value.a, m.values[k].value.b
	}
	return m.nullval, m.nullval
}

// Set a pair of values in the matrix at position (i,j).
func (m *IntMatrix) Set(i, j int, a, b int32) *IntMatrix {
	m.checkBounds(i, j)
	k, found := m.find(i, j)
	if !found {
		m.insertAt(k, triplet{row: i, col: j})
	}
	m.values[k].value = intPair{a, b}
	return m
}

// Inc adds da and db to the pair of values at position (i,j). Positions not yet
// set count from the null-value.
func (m *IntMatrix) Inc(i, j int, da, db int32) *IntMatrix {
	m.checkBounds(i, j)
	k, found := m.find(i, j)
	if !found {
		m.insertAt(k, triplet{row: i, col: j, value: intPair{m.nullval, m.nullval}})
	}
	v := &m.values[k].value
	v.a += da
	v.b += db
	return m
}

// EachInRow calls f for every position set in row i, in column order.
func (m *IntMatrix) EachInRow(i int, f func(j int, a, b int32)) {
	k, _ := m.find(i, 0)
	for ; k < len(m.values) && m.values[k].row == i; k++ {
		t := m.values[k]
		f(t.col, t.value.a, t.value.b)
	}
}

// find locates position (i,j) by binary search. If the position is not set,
// find returns the index where it would have to be inserted.
func (m *IntMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(n int) bool {
		return !m.values[n].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (m *IntMatrix) insertAt(k int, t triplet) {
	m.values = append(m.values, t)     // make room
	copy(m.values[k+1:], m.values[k:]) // shift remainder one index to the right
	m.values[k] = t
}

func (m *IntMatrix) checkBounds(i, j int) {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
}

// String returns the positions set, one row per line.
func (m *IntMatrix) String() string {
	var b strings.Builder
	row := -1
	for _, t := range m.values {
		if t.row != row {
			if row >= 0 {
				b.WriteString("\n")
			}
			row = t.row
			b.WriteString(fmt.Sprintf("%d:", row))
		}
		b.WriteString(fmt.Sprintf(" %d=%s", t.col, t.value))
	}
	return b.String()
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

// we will store 2 int32 in one position
type intPair struct {
	a int32
	b int32
}

func (pr intPair) String() string {
	return fmt.Sprintf("[%d,%d]", pr.a, pr.b)
}

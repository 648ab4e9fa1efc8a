/*
Package session keeps named grammar snapshots.

A Store is an ordered list of grammars, each stored under a unique name.
Grammars are copied on the way in and on the way out, so a stored snapshot
never changes. One grammar of a store may be selected as the current one;
transformations usually operate on the selected grammar and store their
result with a name derived from it:

    store := session.NewStore()
    store.Add("G", g)
    store.Select("G")
    _, h, _ := store.Selected()
    name, _ := store.Derive("G", "epsilon_free", h.RemoveEpsilon())
    // name == "G_epsilon_free"

Every snapshot carries a fingerprint of its structure (start symbol,
symbols and productions, but not its name), which is used to detect
duplicates.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/cfgx/grammar"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgx.session'.
func tracer() tracing.Trace {
	return tracing.Select("cfgx.session")
}

// ErrUnknownGrammar is returned when a grammar name is not present in a store.
var ErrUnknownGrammar = errors.New("unknown grammar")

// ErrNoName is returned when a grammar is to be stored without a name.
var ErrNoName = errors.New("grammar name must not be empty")

// Entry is a named grammar snapshot.
type Entry struct {
	Name        string
	Grammar     *grammar.Grammar
	Fingerprint string
}

// Store is an ordered collection of named grammar snapshots. It is safe for
// concurrent use.
type Store struct {
	mu       sync.RWMutex
	entries  *arraylist.List // of *Entry
	selected string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: arraylist.New()}
}

// Add stores a copy of g under name. If name is already present, its
// snapshot is replaced, keeping its position. The copy will be named name.
func (s *Store) Add(name string, g *grammar.Grammar) (*Entry, error) {
	if name == "" {
		return nil, ErrNoName
	}
	if g == nil {
		return nil, fmt.Errorf("storing grammar %q: grammar is nil", name)
	}
	snapshot := g.Copy()
	snapshot.Name = name
	fp, err := Fingerprint(snapshot)
	if err != nil {
		return nil, err
	}
	entry := &Entry{Name: name, Grammar: snapshot, Fingerprint: fp}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, _ := s.find(name); i >= 0 {
		s.entries.Set(i, entry)
		tracer().Debugf("replaced grammar %s [%s]", name, fp)
	} else {
		s.entries.Add(entry)
		tracer().Debugf("stored grammar %s [%s]", name, fp)
	}
	return entry.copy(), nil
}

// Derive stores g under the name base_suffix and returns that name.
func (s *Store) Derive(base, suffix string, g *grammar.Grammar) (string, error) {
	name := base + "_" + suffix
	if _, err := s.Add(name, g); err != nil {
		return "", err
	}
	return name, nil
}

// Get returns a copy of the grammar stored under name.
func (s *Store) Get(name string) (*grammar.Grammar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, entry := s.find(name)
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGrammar, name)
	}
	return entry.Grammar.Copy(), nil
}

// At returns a copy of the i-th entry, in order of insertion.
func (s *Store) At(i int) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries.Get(i)
	if !ok {
		return nil, false
	}
	return v.(*Entry).copy(), true
}

// Select makes the grammar stored under name the current grammar.
func (s *Store) Select(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, entry := s.find(name); entry == nil {
		return fmt.Errorf("%w: %s", ErrUnknownGrammar, name)
	}
	s.selected = name
	return nil
}

// Selected returns the name of the current grammar and a copy of it. If no
// grammar is selected, Selected returns false.
func (s *Store) Selected() (string, *grammar.Grammar, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, entry := s.find(s.selected)
	if entry == nil {
		return "", nil, false
	}
	return entry.Name, entry.Grammar.Copy(), true
}

// Names returns the names of all stored grammars, in order of insertion.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, s.entries.Size())
	s.entries.Each(func(_ int, v interface{}) {
		names = append(names, v.(*Entry).Name)
	})
	return names
}

// Len returns the number of stored grammars.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Size()
}

// FindDuplicate searches for a stored grammar structurally equal to g and
// returns its name.
func (s *Store) FindDuplicate(g *grammar.Grammar) (string, bool) {
	fp, err := Fingerprint(g)
	if err != nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, v := s.entries.Find(func(_ int, v interface{}) bool {
		e := v.(*Entry)
		return e.Fingerprint == fp && e.Grammar.Equals(g)
	})
	if v == nil {
		return "", false
	}
	return v.(*Entry).Name, true
}

// find returns the position and entry for name, or (-1, nil). The caller
// has to hold the lock.
func (s *Store) find(name string) (int, *Entry) {
	i, v := s.entries.Find(func(_ int, v interface{}) bool {
		return v.(*Entry).Name == name
	})
	if v == nil {
		return -1, nil
	}
	return i, v.(*Entry)
}

func (e *Entry) copy() *Entry {
	return &Entry{Name: e.Name, Grammar: e.Grammar.Copy(), Fingerprint: e.Fingerprint}
}

// --- Fingerprints ----------------------------------------------------------

// shape is the hashable structure of a grammar.
type shape struct {
	Start        string   `hash:"name:start"`
	NonTerminals []string `hash:"name:nonterminals"`
	Terminals    []string `hash:"name:terminals"`
	Productions  []string `hash:"name:productions"`
}

// Fingerprint computes a hash of g's structure. Grammars which are equal
// (see grammar.Grammar.Equals) have equal fingerprints, regardless of their
// names.
func Fingerprint(g *grammar.Grammar) (string, error) {
	sh := shape{
		Start:        g.Start(),
		NonTerminals: g.NonTerminals().Values(),
		Terminals:    g.Terminals().Values(),
	}
	for _, p := range g.Productions() {
		sh.Productions = append(sh.Productions, p.String())
	}
	return structhash.Hash(sh, 1)
}

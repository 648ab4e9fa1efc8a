package iteratable

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is a set of grammar symbols. The zero value is not usable, create sets
// with NewSet.
type Set struct {
	items    *treeset.Set
	iterator *treeset.Iterator
	current  string
}

// NewSet creates a set, optionally populated with symbols.
func NewSet(symbols ...string) *Set {
	s := &Set{items: treeset.NewWith(utils.StringComparator)}
	return s.Add(symbols...)
}

// Add symbols to s. Returns s.
func (s *Set) Add(symbols ...string) *Set {
	for _, sym := range symbols {
		s.items.Add(sym)
	}
	return s
}

// Remove symbols from s. Returns s.
func (s *Set) Remove(symbols ...string) *Set {
	for _, sym := range symbols {
		s.items.Remove(sym)
	}
	return s
}

// Contains is a predicate: is sym a member of s?
func (s *Set) Contains(sym string) bool {
	if s == nil {
		return false
	}
	return s.items.Contains(sym)
}

// Size returns the number of symbols in s.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return s.items.Size()
}

// Empty is a predicate: is s the empty set?
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Values returns the members of s in lexicographic order.
func (s *Set) Values() []string {
	if s == nil {
		return nil
	}
	vals := make([]string, 0, s.items.Size())
	s.items.Each(func(_ int, v interface{}) {
		vals = append(vals, v.(string))
	})
	return vals
}

// Each calls f for every member of s, in lexicographic order.
func (s *Set) Each(f func(sym string)) {
	if s == nil {
		return
	}
	for _, sym := range s.Values() {
		f(sym)
	}
}

// Copy returns an independent copy of s.
func (s *Set) Copy() *Set {
	c := NewSet()
	if s != nil {
		c.items.Add(s.items.Values()...)
	}
	return c
}

// Union adds all members of other to s. Returns s.
func (s *Set) Union(other *Set) *Set {
	if other != nil {
		s.items.Add(other.items.Values()...)
	}
	return s
}

// Difference removes all members of other from s. Returns s.
func (s *Set) Difference(other *Set) *Set {
	if other != nil {
		s.items.Remove(other.items.Values()...)
	}
	return s
}

// Intersection removes every member from s which is not contained in other.
// Returns s.
func (s *Set) Intersection(other *Set) *Set {
	for _, sym := range s.Values() {
		if !other.Contains(sym) {
			s.items.Remove(sym)
		}
	}
	return s
}

// Intersects is a predicate: do s and other share a member?
func (s *Set) Intersects(other *Set) bool {
	if s.Size() > other.Size() {
		s, other = other, s
	}
	for _, sym := range s.Values() {
		if other.Contains(sym) {
			return true
		}
	}
	return false
}

// Subset is a predicate: is every member of s also a member of other?
func (s *Set) Subset(other *Set) bool {
	if s.Size() > other.Size() {
		return false
	}
	for _, sym := range s.Values() {
		if !other.Contains(sym) {
			return false
		}
	}
	return true
}

// Equals is a predicate: do s and other have the same members?
func (s *Set) Equals(other *Set) bool {
	return s.Size() == other.Size() && s.Subset(other)
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts an iteration over the members of s. Use it like this:
//
//    S.IterateOnce()
//    for S.Next() {
//        sym := S.Item()
//        …
//    }
//
// Modifying s during an iteration results in undefined behaviour.
func (s *Set) IterateOnce() *Set {
	it := s.items.Iterator()
	s.iterator = &it
	s.current = ""
	return s
}

// Next advances the iteration started by IterateOnce. It returns false as soon
// as all members have been visited.
func (s *Set) Next() bool {
	if s.iterator == nil {
		return false
	}
	if !s.iterator.Next() {
		s.iterator = nil
		s.current = ""
		return false
	}
	s.current = s.iterator.Value().(string)
	return true
}

// Item returns the current member of an iteration.
func (s *Set) Item() string {
	return s.current
}

// ---------------------------------------------------------------------------

// String returns a set notation of s, e.g. "{a, b, c}".
func (s *Set) String() string {
	return "{" + strings.Join(s.Values(), ", ") + "}"
}

package formula

import (
	"github.com/tomggill/qbf-solver/internal/lit"
	"github.com/tomggill/qbf-solver/internal/tribool"
)

// ClauseStatus reports what AddClause actually did with the literals handed
// to it, since a clause is not always added verbatim: it may collapse to a
// tautology (dropped), a unit (added but never watched), or the empty
// clause (no literals at all; the assignment is not consulted).
type ClauseStatus uint8

const (
	StatusOK ClauseStatus = iota
	StatusUnit
	StatusEmpty
	StatusTautology
)

// Store owns the variable table, the quantifier prefix, and the clause
// database, including the per-literal watch lists that back two-watched-
// literal propagation (§4.1, §4.2).
type Store struct {
	Prefix *Prefix
	Assign []tribool.Tribool
	Vars   []Variable

	Clauses []*Clause
	watches map[lit.Lit][]ClauseID

	NumOriginal int

	// occur tracks how many live (non-removed) clauses contain each literal,
	// keyed the same way as watches. It backs Pure-Literal Elimination's
	// occurrence counts without requiring a full scan of the clause database.
	occur map[lit.Lit]int
}

// NewStore allocates a Store for the given prefix, one Variable and one
// Assign slot per 0-indexed variable named in it.
func NewStore(prefix *Prefix) *Store {
	n := len(prefix.blockOf)
	s := &Store{
		Prefix:  prefix,
		Assign:  make([]tribool.Tribool, n),
		Vars:    make([]Variable, n),
		Clauses: []*Clause{},
		watches: map[lit.Lit][]ClauseID{},
		occur:   map[lit.Lit]int{},
	}
	for v := 0; v < n; v++ {
		s.Vars[v] = Variable{
			Kind:       prefix.KindOf(v),
			Block:      prefix.BlockOf(v),
			Level:      -1,
			Antecedent: NoClause,
		}
	}
	return s
}

// NVars returns the number of variables in the formula.
func (s *Store) NVars() int { return len(s.Vars) }

// Value returns the current truth value of literal l under the store's
// assignment, accounting for its polarity.
func (s *Store) Value(l lit.Lit) tribool.Tribool {
	v := s.Assign[l.Index()]
	if l.Sign() {
		return v.Not()
	}
	return v
}

// IsExistential reports whether 0-indexed variable v is existentially
// quantified.
func (s *Store) IsExistential(v int) bool {
	return s.Vars[v].Kind == Existential
}

// Set records that l has become true, at the given decision level, forced by
// antecedent (NoClause for a decision).
func (s *Store) Set(l lit.Lit, level int, antecedent ClauseID) {
	v := l.Index()
	if l.Sign() {
		s.Assign[v] = tribool.False
	} else {
		s.Assign[v] = tribool.True
	}
	s.Vars[v].Level = level
	s.Vars[v].Antecedent = antecedent
}

// Unset reverts 0-indexed variable v to unassigned, for use during
// backtracking.
func (s *Store) Unset(v int) {
	s.Assign[v] = tribool.Unassigned
	s.Vars[v].Level = -1
	s.Vars[v].Antecedent = NoClause
}

// Watches returns the ids of clauses that must be inspected when l becomes
// true: those holding ¬l at one of their two watched positions.
func (s *Store) Watches(l lit.Lit) []ClauseID {
	return s.watches[l]
}

// ClearWatches empties and returns l's watch list, so the propagator can
// drain it and let each clause re-register itself at whatever literal it
// ends up watching.
func (s *Store) ClearWatches(l lit.Lit) []ClauseID {
	list := s.watches[l]
	delete(s.watches, l)
	return list
}

// AddWatch registers clause id to be visited when l becomes true, i.e. id
// holds ¬l at one of its two watched positions.
func (s *Store) AddWatch(l lit.Lit, id ClauseID) {
	s.watches[l] = append(s.watches[l], id)
}

// AddClause canonicalizes lits (deduplicating repeats, detecting
// complementary pairs) and, unless it collapses to a tautology, appends it
// to the clause database. Clauses of length two or more are registered under
// watches on their first two literals; the caller is responsible for
// queuing a length-one clause for propagation and for treating StatusEmpty
// as an immediate conflict.
func (s *Store) AddClause(lits []lit.Lit, learnt bool) (ClauseID, ClauseStatus) {
	uniq := make([]lit.Lit, 0, len(lits))
	seen := map[lit.Lit]bool{}
	for _, l := range lits {
		if seen[l] {
			continue
		}
		if seen[l.Not()] {
			return -1, StatusTautology
		}
		seen[l] = true
		uniq = append(uniq, l)
	}

	c := &Clause{Lits: uniq, Learnt: learnt}
	id := ClauseID(len(s.Clauses))
	s.Clauses = append(s.Clauses, c)
	if !learnt {
		s.NumOriginal++
	}
	for _, l := range uniq {
		s.occur[l]++
	}

	switch len(uniq) {
	case 0:
		return id, StatusEmpty
	case 1:
		return id, StatusUnit
	default:
		s.AddWatch(uniq[0].Not(), id)
		s.AddWatch(uniq[1].Not(), id)
		return id, StatusOK
	}
}

// Remove logically deletes a clause: it stays in place (ids must remain
// stable, since Variable.Antecedent references them) but is skipped by every
// consumer. Its watches are dropped so propagation stops visiting it.
func (s *Store) Remove(id ClauseID) {
	c := s.Clauses[id]
	if c.Removed {
		return
	}
	c.Removed = true
	if len(c.Lits) >= 2 {
		s.dropWatch(c.Lits[0].Not(), id)
		s.dropWatch(c.Lits[1].Not(), id)
	}
	for _, l := range c.Lits {
		s.occur[l]--
	}
}

// Occurrences returns how many live clauses currently contain literal l.
func (s *Store) Occurrences(l lit.Lit) int {
	return s.occur[l]
}

func (s *Store) dropWatch(l lit.Lit, id ClauseID) {
	list := s.watches[l]
	for i, cid := range list {
		if cid == id {
			list[i] = list[len(list)-1]
			s.watches[l] = list[:len(list)-1]
			return
		}
	}
}

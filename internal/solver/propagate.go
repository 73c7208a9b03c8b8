package solver

import (
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// propagate drains the propagation queue, running two-watched-literal BCP
// over every enqueued fact. It returns the id of the clause that conflicted,
// or formula.NoClause if the queue drained cleanly.
//
// A clause is satisfiable for the existential player only when one of its
// existential literals is True (§4.2): a universal literal assigned True
// never satisfies a clause, though a universal literal assigned False
// falsifies it exactly as an existential one would. Consequently a clause
// fully assigned with no existential literal True is a conflict, even when
// its last free literal is universal and even when an assigned-True
// universal literal is present - neither state is a clause satisfaction.
func (s *Solver) propagate() formula.ClauseID {
	store := s.store
	for s.propQ.Len() > 0 {
		p := s.propQ.Pop()
		s.stats.Propagations++

		pending := store.ClearWatches(p)
		for i := 0; i < len(pending); i++ {
			id := pending[i]
			if store.Clauses[id].Removed {
				continue
			}
			if !s.propagateClause(id, p) {
				// Conflict: put back whatever clauses we hadn't visited yet
				// and abandon the rest of the queue.
				for j := i + 1; j < len(pending); j++ {
					store.AddWatch(p, pending[j])
				}
				s.propQ.Clear()
				return id
			}
		}
	}
	return formula.NoClause
}

// propagateClause services clause id after literal p became true (so ¬p,
// one of id's two watched literals, just became false). It restores the
// watched-literal invariant, re-registering id wherever it ends up watching,
// and reports whether the clause remains consistent.
func (s *Solver) propagateClause(id formula.ClauseID, p lit.Lit) bool {
	store := s.store
	c := store.Clauses[id]

	if c.Lits[0] == p.Not() {
		c.Lits[0], c.Lits[1] = c.Lits[1], c.Lits[0]
	}
	// c.Lits[1] is now ¬p, the literal that just became false.

	if store.IsExistential(c.Lits[0].Index()) && store.Value(c.Lits[0]).IsTrue() {
		store.AddWatch(p, id)
		return true
	}

	// Look for a new home for the falsified watch, preferring - in order -
	// an existential literal that is True (the clause becomes satisfied), an
	// unassigned existential, then an unassigned universal. A False literal,
	// or a True universal literal, is never a valid watch target.
	best, bestPriority := -1, 3
	for i := 2; i < len(c.Lits); i++ {
		li := c.Lits[i]
		val := store.Value(li)
		existential := store.IsExistential(li.Index())

		var priority int
		switch {
		case val.IsTrue() && existential:
			priority = 0
		case val.IsUnassigned() && existential:
			priority = 1
		case val.IsUnassigned():
			priority = 2
		default:
			continue
		}
		if priority < bestPriority {
			best, bestPriority = i, priority
			if priority == 0 {
				break
			}
		}
	}
	if best != -1 {
		c.Lits[1], c.Lits[best] = c.Lits[best], c.Lits[1]
		store.AddWatch(c.Lits[1].Not(), id)
		return true
	}

	// No replacement: c.Lits[1] stays watched at p. Every literal but
	// possibly c.Lits[0] is now determined and contributes no existential
	// True. c.Lits[0] propagates only if it is the sole free existential;
	// every other case - False, unassigned universal, or already-True
	// universal - is a conflict, per the QBF-aware unit rule.
	store.AddWatch(p, id)

	if store.Value(c.Lits[0]).IsUnassigned() && store.IsExistential(c.Lits[0].Index()) {
		return s.enqueue(c.Lits[0], id)
	}
	return false
}

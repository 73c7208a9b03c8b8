package solver

import (
	"sort"

	"github.com/tomggill/qbf-solver/internal/formula"
)

// reduceDB discards the least active half of the learned-clause database
// (§4.3), skipping any clause that is locked (currently serving as some
// variable's antecedent - removing it would leave a dangling reference on
// the trail) or has length one or two, since unit and binary clauses are
// cheap enough to keep regardless of activity.
func (s *Solver) reduceDB() {
	locked := make(map[int]bool, len(s.learnts))
	for _, p := range s.trail {
		if a := s.store.Vars[p.Index()].Antecedent; a != formula.NoClause {
			locked[int(a)] = true
		}
	}

	sort.Slice(s.learnts, func(i, j int) bool {
		return s.store.Clauses[s.learnts[i]].Activity < s.store.Clauses[s.learnts[j]].Activity
	})

	kept := s.learnts[:0:0]
	removeBudget := len(s.learnts) / 2
	removed := 0
	for _, id := range s.learnts {
		c := s.store.Clauses[id]
		if removed < removeBudget && !locked[int(id)] && len(c.Lits) > 2 {
			s.store.Remove(id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.learnts = kept
}

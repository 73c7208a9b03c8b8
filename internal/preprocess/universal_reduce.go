package preprocess

import (
	"github.com/tomggill/qbf-solver/internal/formula"
)

// ReduceAll applies formula.UniversalReduce to every live clause, replacing
// each clause that shrinks with its reduced form (§4.4). A clause reduced to
// empty proves UNSAT immediately; one reduced to a single existential
// literal becomes a unit, recorded for the caller to enqueue.
func ReduceAll(store *formula.Store) (units []Unit, unsat bool) {
	n := len(store.Clauses)
	for id := 0; id < n; id++ {
		cid := formula.ClauseID(id)
		c := store.Clauses[cid]
		if c.Removed {
			continue
		}
		reduced := formula.UniversalReduce(c.Lits, store.Prefix)
		if len(reduced) == len(c.Lits) {
			continue
		}

		store.Remove(cid)
		newID, status := store.AddClause(reduced, false)
		switch status {
		case formula.StatusEmpty:
			return units, true
		case formula.StatusUnit:
			units = append(units, Unit{Lit: reduced[0], Antecedent: newID})
		}
	}
	return units, false
}

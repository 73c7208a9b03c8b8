package solver

import "github.com/tomggill/qbf-solver/internal/preprocess"

// SeedUnits enqueues every unit fact known before search begins - the
// input's unit clauses and the Preprocessor's derived units (§4.4) - at
// decision level 0. It returns false if two facts
// conflict - an immediate UNSAT the caller should report without entering
// propagate() at all.
func (s *Solver) SeedUnits(units []preprocess.Unit) bool {
	for _, u := range units {
		if !s.enqueue(u.Lit, u.Antecedent) {
			return false
		}
	}
	return true
}

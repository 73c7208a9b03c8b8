package solver

import (
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// analyze performs First-UIP conflict analysis (§4.3 steps 1-2): starting
// from the conflict clause, it resolves backward along the trail, one
// antecedent at a time, until the working clause contains exactly one
// literal assigned at the current decision level. That literal is the
// asserting (UIP) literal; its negation becomes out[0].
//
// Every non-UIP literal resolved into the clause is already False under the
// current assignment (that is what made it an antecedent literal in the
// first place), so it is carried into the learned clause as-is, not negated
// - this is the one place the analysis intentionally departs from a
// superficially similar but unsound reading of the resolution step.
func (s *Solver) analyze(conflict formula.ClauseID) []lit.Lit {
	level := s.decisionLevel()
	seen := make([]bool, s.store.NVars())
	counter := 0
	p := lit.Undef
	out := []lit.Lit{lit.Undef}

	confl := conflict
	for {
		c := s.store.Clauses[confl]
		if c.Learnt {
			s.claBumpActivity(confl)
		}
		start := 0
		if p != lit.Undef {
			start = 1
		}
		for i := start; i < len(c.Lits); i++ {
			q := c.Lits[i]
			v := q.Index()
			if seen[v] {
				continue
			}
			seen[v] = true
			s.varBumpActivity(q)
			s.litLastConflict[q] = s.stats.Conflicts

			qLevel := s.store.Vars[v].Level
			if qLevel == level {
				counter++
			} else if qLevel > 0 {
				out = append(out, q)
			}
		}

		for {
			p = s.trail[len(s.trail)-1]
			confl = s.store.Vars[p.Index()].Antecedent
			s.undoOne()
			if seen[p.Index()] {
				break
			}
		}
		counter--
		if counter == 0 {
			break
		}
	}
	out[0] = p.Not()
	return out
}

// reduceAndBackjump applies Universal Reduction to a freshly learned clause
// and computes the backjump level (§4.3 steps 3 and 5): the second-highest
// decision level among the reduced clause's literals, or 0 if it is unit.
// ok is false when the reduced clause is empty or purely universal, either
// of which proves the formula UNSAT outright.
func (s *Solver) reduceAndBackjump(learned []lit.Lit) (reduced []lit.Lit, backjump int, ok bool) {
	prefix := s.store.Prefix
	reduced = formula.UniversalReduce(learned, prefix)
	if len(reduced) == 0 {
		return reduced, 0, false
	}

	// analyze has already unwound the current level, so the UIP literal (the
	// clause's highest level) reads as unassigned here; the highest level
	// among the remaining literals is the clause's second-highest.
	hasExistential := false
	backjump = 0
	for _, l := range reduced {
		v := l.Index()
		if prefix.KindOf(v) == formula.Existential {
			hasExistential = true
		}
		if lvl := s.store.Vars[v].Level; lvl > backjump {
			backjump = lvl
		}
	}
	if !hasExistential {
		return reduced, 0, false
	}
	return reduced, backjump, true
}

package solver

import (
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// solveCDCL runs conflict-driven clause learning search to completion (§4.3):
// propagate, and on conflict analyze and backjump; on no conflict, restart if
// the Luby schedule says so, reduce the learned-clause database if it has
// grown past its soft ceiling, and otherwise make a new decision.
func (s *Solver) solveCDCL() Result {
	for {
		conflict := s.propagate()

		if conflict != formula.NoClause {
			s.stats.Conflicts++
			s.conflictsSinceRestart++
			if s.decisionLevel() == 0 {
				return UNSAT
			}

			learned := s.analyze(conflict)
			reduced, backjump, ok := s.reduceAndBackjump(learned)
			if !ok {
				return UNSAT
			}

			s.cancelUntil(backjump)
			s.decayActivities()

			id, status := s.store.AddClause(reduced, true)
			switch status {
			case formula.StatusEmpty:
				return UNSAT
			case formula.StatusUnit:
				if !s.enqueue(reduced[0], id) {
					return UNSAT
				}
			default:
				s.learnts = append(s.learnts, id)
				s.claBumpActivity(id)
				if !s.enqueue(reduced[0], id) {
					return UNSAT
				}
			}
			s.stats.LearnedClauses++

			s.maxLearntsCtr--
			if s.maxLearntsCtr == 0 {
				s.maxLearntsCtrInc *= s.maxLearntsCtrIncGrowth
				s.maxLearntsCtr = int(s.maxLearntsCtrInc)
				s.maxLearnts *= s.maxLearntsGrowth
			}
			continue
		}

		if s.restartDue() {
			s.lubyIndex++
			s.conflictsSinceRestart = 0
			s.stats.Restarts++
			s.cancelUntil(0)
			continue
		}

		if len(s.learnts) >= int(s.maxLearnts) {
			s.reduceDB()
		}

		if s.timedOut() {
			return Unknown
		}

		p := s.pickDecision()
		if p == lit.Undef {
			return SAT
		}
		s.stats.Decisions++
		if !s.assume(p) {
			return UNSAT
		}
	}
}

// restartDue reports whether the Luby-sequence restart schedule (§7) says
// the conflicts accumulated since the last restart warrant another one.
// Restarts are a CDCL-only device; DPLL search never calls this.
func (s *Solver) restartDue() bool {
	if !s.config.Restarts {
		return false
	}
	return float64(s.conflictsSinceRestart) >= lubyRestartBound(float64(s.config.RestartBase), s.lubyIndex)
}

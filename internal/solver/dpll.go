package solver

import (
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// dpllFrame records, per decision level, the level's decision and whether it
// has already been flipped to its opposite polarity once.
type dpllFrame struct {
	decision lit.Lit
	flipped  bool
}

// solveDPLL runs plain chronological-backtracking search (§4.3): on conflict,
// back up to the most recent decision that hasn't yet been tried on both
// sides, flip it, and continue; a conflict at level 0, or running out of
// levels to flip, is UNSAT. No learning, no activity, no restarts - the
// QBF-aware propagate() rule is what keeps this sound across quantifier
// kinds, so the backtracking itself stays symmetric between existential and
// universal decisions.
func (s *Solver) solveDPLL() Result {
	frames := []dpllFrame{}

	for {
		conflict := s.propagate()

		if conflict != formula.NoClause {
			for {
				if len(frames) == 0 {
					return UNSAT
				}
				top := &frames[len(frames)-1]
				s.cancelUntil(len(frames) - 1)
				if top.flipped {
					frames = frames[:len(frames)-1]
					continue
				}
				top.flipped = true
				flip := top.decision.Not()
				if !s.assume(flip) {
					continue
				}
				top.decision = flip
				break
			}
			continue
		}

		if s.timedOut() {
			return Unknown
		}

		p := s.pickDecision()
		if p == lit.Undef {
			return SAT
		}
		s.stats.Decisions++
		s.assume(p)
		frames = append(frames, dpllFrame{decision: p})
	}
}

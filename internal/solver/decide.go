package solver

import (
	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// pickDecision chooses the next decision literal: a variable from the
// outermost quantifier block with an unassigned variable (§4.3), together
// with a polarity. Variable selection and polarity are both
// config.LiteralSelection-dependent: Ordered always decides True first;
// VSS prefers whichever polarity's literal appeared in a more recent
// conflict, defaulting to True when neither has (or they're tied).
func (s *Solver) pickDecision() lit.Lit {
	if s.config.LiteralSelection == config.Ordered {
		v := s.firstUnassignedInOutermostBlock()
		if v == -1 {
			return lit.Undef
		}
		return lit.New(v, false)
	}

	v := s.order.Choose()
	if v == -1 {
		return lit.Undef
	}

	pos := lit.New(v, false)
	neg := lit.New(v, true)
	if s.litLastConflict[neg] > s.litLastConflict[pos] {
		return neg
	}
	return pos
}

// firstUnassignedInOutermostBlock implements the "Ordered" heuristic: the
// lowest-indexed unassigned variable in the outermost block that still has
// one, independent of activity.
func (s *Solver) firstUnassignedInOutermostBlock() int {
	for _, b := range s.store.Prefix.Blocks {
		for _, v := range b.Vars {
			if s.store.Assign[v].IsUnassigned() {
				return v
			}
		}
	}
	return -1
}

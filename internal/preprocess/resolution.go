package preprocess

import (
	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// BoundedQResolution runs up to cfg.Iterations passes of existential
// Q-resolution pre-saturation (§4.4). Each pass visits every still-live
// existential variable in variable-index order and resolves it against every
// opposing clause pair, subject to the three admission conditions in the
// design; a pass that adds resolvents outside [min_ratio, max_ratio] of the
// clause count it started with ends early or stops the whole run.
//
// repeat_above is interpreted here as a literal count on the resolvent
// itself (post Universal Reduction): a variable whose resolution produces
// any clause longer than repeat_above is resolved a second time within the
// same pass, on the theory that a pivot generating unusually large
// resolvents is worth revisiting once before moving on, not indefinitely.
func BoundedQResolution(store *formula.Store, cfg config.PreResolutionConfig) (units []Unit, unsat bool) {
	for iter := 0; iter < cfg.Iterations; iter++ {
		startCount := liveClauseCount(store)
		if startCount == 0 {
			break
		}
		added := 0
		stop := false

		for v := 0; v < store.NVars(); v++ {
			if !store.IsExistential(v) || !store.Assign[v].IsUnassigned() {
				continue
			}

			for pass := 0; pass < 2; pass++ {
				n, u, uns, exceeded := resolveVariable(store, v, cfg, startCount, &added)
				units = append(units, u...)
				if uns {
					return units, true
				}
				if float64(added)/float64(startCount) >= cfg.MaxRatio {
					stop = true
				}
				if stop || !exceeded || n == 0 {
					break
				}
			}
			if stop {
				break
			}
		}

		if stop {
			break
		}
		if float64(added)/float64(startCount) < cfg.MinRatio {
			break
		}
	}
	return units, false
}

// resolveVariable resolves every live clause containing v positively
// against every live clause containing it negatively, at the snapshot of
// the clause database taken before the call. It reports how many resolvents
// it admitted, whether any exceeded repeat_above, and appends any unit or
// empty result exactly as the rest of the preprocessor does.
func resolveVariable(store *formula.Store, v int, cfg config.PreResolutionConfig, startCount int, added *int) (n int, units []Unit, unsat bool, exceeded bool) {
	pos := lit.New(v, false)
	neg := lit.New(v, true)

	var posClauses, negClauses []formula.ClauseID
	for id, c := range store.Clauses {
		if c.Removed {
			continue
		}
		cid := formula.ClauseID(id)
		if contains(c.Lits, pos) {
			posClauses = append(posClauses, cid)
		} else if contains(c.Lits, neg) {
			negClauses = append(negClauses, cid)
		}
	}

	for _, c1 := range posClauses {
		for _, c2 := range negClauses {
			resolvent, blocked := resolve(store, c1, c2, v)
			if blocked {
				continue
			}
			reduced := formula.UniversalReduce(resolvent, store.Prefix)
			if len(reduced) > cfg.MaxClauseLength {
				continue
			}
			if len(reduced) > cfg.RepeatAbove {
				exceeded = true
			}

			id, status := store.AddClause(reduced, false)
			if status == formula.StatusTautology {
				continue
			}
			n++
			*added++

			switch status {
			case formula.StatusEmpty:
				return n, units, true, exceeded
			case formula.StatusUnit:
				units = append(units, Unit{Lit: reduced[0], Antecedent: id})
			}

			if float64(*added)/float64(startCount) >= cfg.MaxRatio {
				return n, units, false, exceeded
			}
		}
	}
	return n, units, false, exceeded
}

// resolve builds the Q-resolvent of clauses c1 (holding pivot positively)
// and c2 (holding it negatively) on 0-indexed variable v, and reports
// whether the resolution is blocked: some universal variable of higher
// block index than v occurs in both parents with opposite polarity.
func resolve(store *formula.Store, c1, c2 formula.ClauseID, v int) (resolvent []lit.Lit, blocked bool) {
	pivotBlock := store.Prefix.BlockOf(v)
	l1 := store.Clauses[c1].Lits
	l2 := store.Clauses[c2].Lits

	polarity := map[int]bool{} // variable -> negative?
	for _, l := range l1 {
		if l.Index() == v {
			continue
		}
		polarity[l.Index()] = l.Sign()
	}
	for _, l := range l2 {
		w := l.Index()
		if w == v {
			continue
		}
		if s, ok := polarity[w]; ok && s != l.Sign() {
			if store.Prefix.KindOf(w) == formula.Universal && store.Prefix.BlockOf(w) > pivotBlock {
				return nil, true
			}
		}
	}

	resolvent = make([]lit.Lit, 0, len(l1)+len(l2)-2)
	for _, l := range l1 {
		if l.Index() != v {
			resolvent = append(resolvent, l)
		}
	}
	for _, l := range l2 {
		if l.Index() != v {
			resolvent = append(resolvent, l)
		}
	}
	return resolvent, false
}

func liveClauseCount(store *formula.Store) int {
	n := 0
	for _, c := range store.Clauses {
		if !c.Removed {
			n++
		}
	}
	return n
}

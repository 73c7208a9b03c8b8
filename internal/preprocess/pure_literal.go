package preprocess

import (
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// EliminatePureLiterals repeatedly finds variables whose live occurrences
// are all one polarity and removes them, since each elimination can expose
// new pure literals (§4.4). An existential pure literal is satisfied - it is
// assigned True and every clause it satisfies is dropped. A universal pure
// literal is instead assigned the falsifying polarity and struck from every
// clause that holds it, since a True universal literal never satisfies a
// clause anyway.
func EliminatePureLiterals(store *formula.Store) (units []Unit, unsat bool) {
	for {
		progressed := false
		for v := 0; v < store.NVars(); v++ {
			if !store.Assign[v].IsUnassigned() {
				continue
			}
			pos := lit.New(v, false)
			neg := lit.New(v, true)
			posN, negN := store.Occurrences(pos), store.Occurrences(neg)
			if posN == 0 && negN == 0 {
				continue
			}
			if posN > 0 && negN > 0 {
				continue
			}

			pure := pos
			if negN > 0 {
				pure = neg
			}
			progressed = true

			if store.IsExistential(v) {
				n := len(store.Clauses)
				for id := 0; id < n; id++ {
					cid := formula.ClauseID(id)
					c := store.Clauses[cid]
					if c.Removed || !contains(c.Lits, pure) {
						continue
					}
					store.Remove(cid)
				}
				// pure may already be a reported unit (e.g. one left behind by
				// striking a universal); report each fact once.
				if !hasUnit(units, pure) {
					units = append(units, Unit{Lit: pure, Antecedent: formula.NoClause})
				}
				continue
			}

			falsify := pure.Not()
			n := len(store.Clauses)
			for id := 0; id < n; id++ {
				cid := formula.ClauseID(id)
				c := store.Clauses[cid]
				if c.Removed || !contains(c.Lits, pure) {
					continue
				}
				shrunk := without(c.Lits, pure)
				store.Remove(cid)
				newID, status := store.AddClause(shrunk, false)
				switch status {
				case formula.StatusEmpty:
					return units, true
				case formula.StatusUnit:
					units = append(units, Unit{Lit: shrunk[0], Antecedent: newID})
				}
			}
			units = append(units, Unit{Lit: falsify, Antecedent: formula.NoClause})
		}
		if !progressed {
			return units, false
		}
	}
}

func contains(lits []lit.Lit, l lit.Lit) bool {
	for _, x := range lits {
		if x == l {
			return true
		}
	}
	return false
}

func hasUnit(units []Unit, l lit.Lit) bool {
	for _, u := range units {
		if u.Lit == l {
			return true
		}
	}
	return false
}

func without(lits []lit.Lit, l lit.Lit) []lit.Lit {
	out := make([]lit.Lit, 0, len(lits)-1)
	for _, x := range lits {
		if x != l {
			out = append(out, x)
		}
	}
	return out
}

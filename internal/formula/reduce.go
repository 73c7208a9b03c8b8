package formula

import "github.com/tomggill/qbf-solver/internal/lit"

// UniversalReduce removes every universal literal for which no existential
// literal in the clause has an equal or greater block index, repeating until
// fixpoint (§4.4). It is purely structural - it looks only at quantifier
// blocks, never at the current assignment - so the same function serves both
// preprocessing and conflict analysis's reduction of a freshly learned
// clause (§4.3 step 3).
func UniversalReduce(lits []lit.Lit, prefix *Prefix) []lit.Lit {
	for {
		maxExistBlock := -1
		for _, l := range lits {
			if prefix.KindOf(l.Index()) == Existential {
				if b := prefix.BlockOf(l.Index()); b > maxExistBlock {
					maxExistBlock = b
				}
			}
		}

		kept := lits[:0:0]
		removed := false
		for _, l := range lits {
			if prefix.KindOf(l.Index()) == Universal && prefix.BlockOf(l.Index()) > maxExistBlock {
				removed = true
				continue
			}
			kept = append(kept, l)
		}
		lits = kept
		if !removed {
			return lits
		}
	}
}

// Package preprocess implements the one-shot rewrites the design calls the
// Preprocessor (§4.4): Universal Reduction, Pure-Literal Elimination, and
// bounded Q-resolution, applied to a formula.Store before search begins.
package preprocess

import (
	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// Unit is a level-0 fact the preprocessor derived - a literal forced true by
// a structural rewrite, together with the clause (if any) that forces it.
// The caller enqueues these with the Search Engine before running the first
// propagation pass, exactly as it would any other unit.
type Unit struct {
	Lit        lit.Lit
	Antecedent formula.ClauseID
}

// Run applies every preprocessing stage enabled in cfg, in the order given
// in §4.4, and reports whether any stage proved the formula UNSAT outright.
func Run(store *formula.Store, cfg *config.Config) (units []Unit, unsat bool) {
	if !cfg.Preprocess {
		return nil, false
	}

	if cfg.UniversalReduction {
		u, uns := ReduceAll(store)
		units = append(units, u...)
		if uns {
			return units, true
		}
	}

	if cfg.PureLiteralDeletion {
		u, uns := EliminatePureLiterals(store)
		units = append(units, u...)
		if uns {
			return units, true
		}
	}

	if cfg.PreResolution {
		u, uns := BoundedQResolution(store, cfg.PreResolutionConfig)
		units = append(units, u...)
		if uns {
			return units, true
		}
	}

	return units, false
}

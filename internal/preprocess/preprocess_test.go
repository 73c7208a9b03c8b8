package preprocess

import (
	"testing"

	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

func newStore(t *testing.T, blocks []formula.Block, nVars int) *formula.Store {
	t.Helper()
	return formula.NewStore(formula.NewPrefix(nVars, blocks))
}

func l(v int, neg bool) lit.Lit { return lit.New(v, neg) }

func TestReduceAllDropsTrailingUniversal(t *testing.T) {
	// exists 0; forall 1
	store := newStore(t, []formula.Block{
		{Kind: formula.Existential, Vars: []int{0}},
		{Kind: formula.Universal, Vars: []int{1}},
	}, 2)
	store.AddClause([]lit.Lit{l(0, false), l(1, false)}, false)

	units, unsat := ReduceAll(store)
	if unsat {
		t.Fatalf("ReduceAll() unsat = true, want false")
	}
	if len(units) != 1 || units[0].Lit != l(0, false) {
		t.Fatalf("ReduceAll() units = %v, want [x0]", units)
	}
}

func TestReduceAllEmptyClauseIsUnsat(t *testing.T) {
	store := newStore(t, []formula.Block{
		{Kind: formula.Universal, Vars: []int{0}},
	}, 1)
	store.AddClause([]lit.Lit{l(0, false)}, false)

	_, unsat := ReduceAll(store)
	if !unsat {
		t.Fatalf("ReduceAll() unsat = false, want true (clause is purely a trailing universal)")
	}
}

func TestEliminatePureLiteralsSatisfiesExistential(t *testing.T) {
	// exists 0, 1; x0 appears only positively across both clauses.
	store := newStore(t, []formula.Block{
		{Kind: formula.Existential, Vars: []int{0, 1}},
	}, 2)
	store.AddClause([]lit.Lit{l(0, false), l(1, false)}, false)
	store.AddClause([]lit.Lit{l(0, false), l(1, true)}, false)

	units, unsat := EliminatePureLiterals(store)
	if unsat {
		t.Fatalf("EliminatePureLiterals() unsat = true, want false")
	}
	if len(units) != 1 || units[0].Lit != l(0, false) {
		t.Fatalf("EliminatePureLiterals() units = %v, want [x0]", units)
	}
	for _, c := range store.Clauses {
		if !c.Removed {
			t.Fatalf("expected both clauses satisfied and removed, found live clause %v", c.Lits)
		}
	}
}

func TestEliminatePureLiteralsFalsifiesUniversal(t *testing.T) {
	// forall 0; exists 1; x0 appears only positively.
	store := newStore(t, []formula.Block{
		{Kind: formula.Universal, Vars: []int{0}},
		{Kind: formula.Existential, Vars: []int{1}},
	}, 2)
	store.AddClause([]lit.Lit{l(0, false), l(1, false)}, false)

	units, unsat := EliminatePureLiterals(store)
	if unsat {
		t.Fatalf("EliminatePureLiterals() unsat = true, want false")
	}
	// Striking x0 from its one clause leaves a unit on x1, plus the
	// falsifying fact about x0 itself.
	if len(units) != 2 {
		t.Fatalf("EliminatePureLiterals() units = %v, want 2 entries", units)
	}
}

func TestRunSkipsDisabledStages(t *testing.T) {
	store := newStore(t, []formula.Block{
		{Kind: formula.Existential, Vars: []int{0}},
	}, 1)
	store.AddClause([]lit.Lit{l(0, false)}, false)

	cfg := config.New()
	units, unsat := Run(store, cfg)
	if unsat || units != nil {
		t.Fatalf("Run() with Preprocess=false = (%v, %v), want (nil, false)", units, unsat)
	}
}

package solver

import (
	"testing"

	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

func newTestSolver(blocks []formula.Block, nVars int) (*Solver, *formula.Store) {
	prefix := formula.NewPrefix(nVars, blocks)
	store := formula.NewStore(prefix)
	cfg := config.New()
	cfg.LiteralSelection = config.VariableStateSum
	return New(cfg, store), store
}

// An unassigned universal literal never lets propagation defer: with the
// existential half of a clause already falsified, the clause is a conflict
// even though its remaining literal has no value yet, since a universal
// variable can never be "waited on" to satisfy anything (§4.2).
func TestPropagateUnassignedUniversalIsConflictNotWait(t *testing.T) {
	s, store := newTestSolver([]formula.Block{
		{Kind: formula.Universal, Vars: []int{0}},
		{Kind: formula.Existential, Vars: []int{1}},
	}, 2)
	x1, x2 := lit.New(0, false), lit.New(1, false)
	store.AddClause([]lit.Lit{x1, x2}, false)

	if !s.assume(x2.Not()) {
		t.Fatalf("assume(¬x2) reported conflict before propagation")
	}
	if conflict := s.propagate(); conflict == formula.NoClause {
		t.Fatalf("propagate() = no conflict, want conflict (x1 unassigned universal can't satisfy)")
	}
}

// A True universal literal never satisfies a clause: once the clause's
// existential literal is falsified as well, the clause is a conflict.
func TestPropagateTrueUniversalDoesNotSatisfy(t *testing.T) {
	s, store := newTestSolver([]formula.Block{
		{Kind: formula.Universal, Vars: []int{0}},
		{Kind: formula.Existential, Vars: []int{1}},
	}, 2)
	x1, x2 := lit.New(0, false), lit.New(1, true)
	store.AddClause([]lit.Lit{x1, x2}, false) // (x1 ∨ ¬x2)

	if !s.assume(x1) {
		t.Fatalf("assume(x1) reported conflict before propagation")
	}
	if !s.assume(x2.Not()) {
		t.Fatalf("assume(x2) reported conflict before propagation")
	}
	if conflict := s.propagate(); conflict == formula.NoClause {
		t.Fatalf("propagate() = no conflict, want conflict: x1=True is universal and doesn't satisfy, x2=True falsifies ¬x2")
	}
}

// Ordinary existential unit propagation still works exactly as in plain SAT.
func TestPropagateExistentialUnitPropagation(t *testing.T) {
	s, store := newTestSolver([]formula.Block{
		{Kind: formula.Existential, Vars: []int{0, 1}},
	}, 2)
	x1, x2 := lit.New(0, false), lit.New(1, false)
	store.AddClause([]lit.Lit{x1, x2}, false)

	if !s.assume(x1.Not()) {
		t.Fatalf("assume(¬x1) reported conflict before propagation")
	}
	if conflict := s.propagate(); conflict != formula.NoClause {
		t.Fatalf("propagate() = conflict %d, want none", conflict)
	}
	if !store.Value(x2).IsTrue() {
		t.Fatalf("x2 = %v, want True (forced by unit propagation)", store.Value(x2))
	}
}

// Watch relocation prefers an unassigned existential literal over an
// unassigned universal one when both are candidates (§4.2).
func TestPropagateRelocationPrefersExistentialOverUniversal(t *testing.T) {
	s, store := newTestSolver([]formula.Block{
		{Kind: formula.Universal, Vars: []int{0, 1, 2}},
		{Kind: formula.Existential, Vars: []int{3}},
	}, 4)
	x1 := lit.New(0, false)
	x3 := lit.New(2, false)
	x4 := lit.New(3, false)
	id, _ := store.AddClause([]lit.Lit{x1, lit.New(1, false), x3, x4}, false)

	if !s.assume(x1.Not()) {
		t.Fatalf("assume(¬x1) reported conflict before propagation")
	}
	if conflict := s.propagate(); conflict != formula.NoClause {
		t.Fatalf("propagate() = conflict %d, want none (relocation should succeed)", conflict)
	}

	foundExistentialWatch := false
	for _, cid := range store.Watches(x4.Not()) {
		if cid == id {
			foundExistentialWatch = true
		}
	}
	for _, cid := range store.Watches(x3.Not()) {
		if cid == id {
			t.Fatalf("clause relocated onto unassigned universal x3 instead of existential x4")
		}
	}
	if !foundExistentialWatch {
		t.Fatalf("clause did not relocate its watch onto the unassigned existential literal x4")
	}
}

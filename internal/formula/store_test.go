package formula

import (
	"testing"

	"github.com/tomggill/qbf-solver/internal/lit"
)

func newTestStore(nVars int) *Store {
	p := NewPrefix(nVars, []Block{{Kind: Existential, Vars: seq(nVars)}})
	return NewStore(p)
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestAddClauseOK(t *testing.T) {
	s := newTestStore(3)
	l0, l1, l2 := lit.New(0, false), lit.New(1, false), lit.New(2, true)

	id, status := s.AddClause([]lit.Lit{l0, l1, l2}, false)
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}
	// The clause watches l0 and l1, so it must be visited when their
	// negations become true.
	if len(s.Watches(l0.Not())) != 1 || s.Watches(l0.Not())[0] != id {
		t.Fatalf("¬l0 should trigger the clause")
	}
	if len(s.Watches(l1.Not())) != 1 {
		t.Fatalf("¬l1 should trigger the clause")
	}
	if len(s.Watches(l2.Not())) != 0 {
		t.Fatalf("only the first two literals should be watched")
	}
}

func TestAddClauseUnit(t *testing.T) {
	s := newTestStore(1)
	id, status := s.AddClause([]lit.Lit{lit.New(0, false)}, false)
	if status != StatusUnit {
		t.Fatalf("status = %v, want StatusUnit", status)
	}
	if s.Clauses[id].Len() != 1 {
		t.Fatalf("unit clause should keep its single literal")
	}
}

func TestAddClauseEmpty(t *testing.T) {
	s := newTestStore(1)
	_, status := s.AddClause([]lit.Lit{}, false)
	if status != StatusEmpty {
		t.Fatalf("status = %v, want StatusEmpty", status)
	}
}

func TestAddClauseTautologyDropped(t *testing.T) {
	s := newTestStore(2)
	before := len(s.Clauses)
	_, status := s.AddClause([]lit.Lit{lit.New(0, false), lit.New(0, true), lit.New(1, false)}, false)
	if status != StatusTautology {
		t.Fatalf("status = %v, want StatusTautology", status)
	}
	if len(s.Clauses) != before {
		t.Fatalf("tautology must not be added to the clause database")
	}
}

func TestAddClauseDedupesRepeatedLiteral(t *testing.T) {
	s := newTestStore(2)
	l0 := lit.New(0, false)
	id, status := s.AddClause([]lit.Lit{l0, l0, lit.New(1, false)}, false)
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}
	if s.Clauses[id].Len() != 2 {
		t.Fatalf("repeated literal should be deduplicated, got len %d", s.Clauses[id].Len())
	}
}

func TestSetAndValue(t *testing.T) {
	s := newTestStore(1)
	l0 := lit.New(0, false)
	s.Set(l0, 0, NoClause)
	if !s.Value(l0).IsTrue() {
		t.Fatalf("l0 should be true after Set")
	}
	if !s.Value(l0.Not()).IsFalse() {
		t.Fatalf("¬l0 should be false after Set")
	}
	s.Unset(0)
	if !s.Value(l0).IsUnassigned() {
		t.Fatalf("l0 should be unassigned after Unset")
	}
}

func TestClearWatchesDrainsList(t *testing.T) {
	s := newTestStore(3)
	l0, l1, l2 := lit.New(0, false), lit.New(1, false), lit.New(2, false)
	id, _ := s.AddClause([]lit.Lit{l0, l1, l2}, false)

	drained := s.ClearWatches(l0.Not())
	if len(drained) != 1 || drained[0] != id {
		t.Fatalf("ClearWatches(¬l0) = %v, want [%d]", drained, id)
	}
	if len(s.Watches(l0.Not())) != 0 {
		t.Fatalf("watch list should be empty after draining")
	}

	// The clause can re-register itself at a new literal.
	s.AddWatch(l2.Not(), id)
	if len(s.Watches(l2.Not())) != 1 {
		t.Fatalf("clause should now be watched via l2")
	}
}

func TestRemoveDropsWatches(t *testing.T) {
	s := newTestStore(2)
	l0, l1 := lit.New(0, false), lit.New(1, false)
	id, _ := s.AddClause([]lit.Lit{l0, l1}, false)

	s.Remove(id)
	if !s.Clauses[id].Removed {
		t.Fatalf("clause should be marked removed")
	}
	if len(s.Watches(l0.Not())) != 0 || len(s.Watches(l1.Not())) != 0 {
		t.Fatalf("removed clause's watches should be dropped")
	}
}

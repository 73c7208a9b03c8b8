package formula

import (
	"testing"

	"github.com/tomggill/qbf-solver/internal/lit"
)

func TestUniversalReduceDropsTrailingUniversal(t *testing.T) {
	// exists 0; forall 1; exists 2
	p := NewPrefix(3, []Block{
		{Kind: Existential, Vars: []int{0}},
		{Kind: Universal, Vars: []int{1}},
		{Kind: Existential, Vars: []int{2}},
	})
	// Clause: x0 ∨ x1 (no existential at or beyond block 1) -> drop x1.
	lits := []lit.Lit{lit.New(0, false), lit.New(1, false)}
	out := UniversalReduce(lits, p)
	if len(out) != 1 || out[0] != lit.New(0, false) {
		t.Fatalf("UniversalReduce = %v, want [x0]", out)
	}
}

func TestUniversalReduceKeepsUniversalBeforeDeeperExistential(t *testing.T) {
	p := NewPrefix(3, []Block{
		{Kind: Existential, Vars: []int{0}},
		{Kind: Universal, Vars: []int{1}},
		{Kind: Existential, Vars: []int{2}},
	})
	// Clause: x1 ∨ x2 -> x2 (block 2) is deeper than x1 (block 1), keep both.
	lits := []lit.Lit{lit.New(1, false), lit.New(2, false)}
	out := UniversalReduce(lits, p)
	if len(out) != 2 {
		t.Fatalf("UniversalReduce = %v, want both literals kept", out)
	}
}

func TestUniversalReduceToFixpoint(t *testing.T) {
	// exists 0; forall 1 2 (same block); exists 3
	p := NewPrefix(4, []Block{
		{Kind: Existential, Vars: []int{0}},
		{Kind: Universal, Vars: []int{1, 2}},
		{Kind: Existential, Vars: []int{3}},
	})
	// Clause: x0 ∨ x1 ∨ x2 -> both universals trail the only existential block, drop both.
	lits := []lit.Lit{lit.New(0, false), lit.New(1, false), lit.New(2, false)}
	out := UniversalReduce(lits, p)
	if len(out) != 1 {
		t.Fatalf("UniversalReduce = %v, want only x0 kept", out)
	}
}

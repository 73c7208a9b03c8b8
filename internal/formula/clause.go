package formula

import "github.com/tomggill/qbf-solver/internal/lit"

// Clause is a disjunction of literals. Original clauses come from the
// QDIMACS input (after preprocessing); learned clauses are produced by
// conflict analysis. Literals at index 0 and 1 are the two watched literals
// (§4.2); this invariant is established once at AddClause time and never
// touched again by anything except propagation's watch relocation.
type Clause struct {
	Lits    []lit.Lit
	Learnt  bool
	Removed bool

	// Activity is meaningful only for learned clauses; it drives reduceDB.
	Activity float64
}

// Len returns the number of literals remaining in the clause.
func (c *Clause) Len() int { return len(c.Lits) }

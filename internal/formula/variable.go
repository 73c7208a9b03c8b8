package formula

// ClauseID identifies a clause by its position in Store.Clauses.
type ClauseID int

// NoClause is the antecedent of a variable assigned by decision rather than
// propagation, or of one that is still unassigned.
const NoClause ClauseID = -1

// Variable holds the per-variable search state: its current assignment, the
// decision level it was set at, the clause that forced it (if any), and its
// place in the quantifier prefix. The Activity field is not read by the
// search: the solver keeps variable activity in its own slice, which it
// shares with the order package.
type Variable struct {
	Kind       QuantifierKind
	Block      int
	Level      int // decision level the assignment was made at, -1 if unassigned
	Antecedent ClauseID
	Activity   float64
}

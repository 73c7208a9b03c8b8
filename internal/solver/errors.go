package solver

import "fmt"

// InternalInvariantViolation reports that a debug build caught the engine in
// a state the design rules out entirely - e.g. backtracking to a negative
// decision level, or a conflict surfacing at level 0 after preprocessing
// already certified the formula satisfiable (§7). Release builds never
// construct this; they trust the engine and skip the checks that would.
type InternalInvariantViolation struct {
	Reason string
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("solver: internal invariant violated: %s", e.Reason)
}

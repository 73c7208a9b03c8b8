// Package report formats solver outcomes for both single-instance and
// benchmark-mode output (§6): the string printed to standard output, the
// process exit code, and the per-instance row written to a benchmark file.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/tomggill/qbf-solver/internal/solver"
)

// ExitCode maps a Result to the process exit code convention: 10 for SAT,
// 20 for UNSAT, 0 for unknown/timeout. A solver error (ParseError,
// ConfigError, InternalInvariantViolation) is reported separately as 1 by
// the caller, since it never reaches a Result at all.
func ExitCode(r solver.Result) int {
	switch r {
	case solver.SAT:
		return 10
	case solver.UNSAT:
		return 20
	default:
		return 0
	}
}

// Verdict returns the literal string printed to standard output in
// single-instance mode.
func Verdict(r solver.Result) string {
	switch r {
	case solver.SAT:
		return "SATISFIABLE"
	case solver.UNSAT:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Row is one benchmark-mode result line: an instance identifier, its
// verdict, elapsed time, and the running statistics the Search Engine
// tallied (§8).
type Row struct {
	Instance string
	Result   solver.Result
	Elapsed  time.Duration
	Stats    solver.Stats
}

// WriteRow appends one tab-separated benchmark row to w.
func WriteRow(w io.Writer, row Row) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
		row.Instance,
		Verdict(row.Result),
		row.Elapsed.Milliseconds(),
		row.Stats.Decisions,
		row.Stats.Propagations,
		row.Stats.Conflicts,
		row.Stats.LearnedClauses,
		row.Stats.Restarts,
	)
	return err
}

// WriteHeader writes the column header line a benchmark file starts with.
func WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, "instance\tresult\telapsed_ms\tdecisions\tpropagations\tconflicts\tlearned\trestarts")
	return err
}

// Package solver implements the Search Engine: QBF-aware two-watched-literal
// Boolean constraint propagation, plus DPLL and CDCL search over the
// quantifier prefix's block order. The CDCL path - conflict analysis,
// activity bumping, clause-database reduction, Luby restarts - is adapted
// from the teacher's MiniSat-style core and generalized to QBF's amended
// unit rule and Universal Reduction.
package solver

import (
	"log"
	"math"
	"time"

	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
	"github.com/tomggill/qbf-solver/internal/order"
)

// Result is the outcome of a solve.
type Result uint8

const (
	Unknown Result = iota
	SAT
	UNSAT
)

func (r Result) String() string {
	switch r {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Stats tallies search-level counters for reporting (§8).
type Stats struct {
	Decisions     int
	Propagations  int
	Conflicts     int
	Restarts      int
	LearnedClauses int
}

// Solver runs DPLL or CDCL search against a Store.
type Solver struct {
	config *config.Config
	logger *log.Logger
	store  *formula.Store

	order *order.PrefixOrder

	// activity is a heuristic measure of how often a variable has
	// participated in a conflict; it is shared by reference with order so
	// bumping it here is immediately visible to variable selection.
	activity []float64
	varInc   float64
	varDecay float64

	// litLastConflict records, per literal, the most recent conflict number
	// (stats.Conflicts at the time) it appeared in during analysis. The VSS
	// polarity heuristic (§4.3) picks whichever of a variable's two literals
	// has the higher value here, defaulting to the positive literal when
	// both are zero (never seen) or tied.
	litLastConflict []int

	// learnts holds the ids (into store.Clauses) of clauses learned during
	// CDCL search, in order of creation.
	learnts  []formula.ClauseID
	claInc   float64
	claDecay float64

	propQ *lit.Queue

	trail    []lit.Lit
	trailLim []int

	maxLearnts              float64
	maxLearntsGrowth        float64
	maxLearntsCtr           int
	maxLearntsCtrInc        float64
	maxLearntsCtrIncGrowth  float64

	// luby state for the restart schedule (§7).
	lubyIndex             int
	conflictsSinceRestart int

	// deadline is checked between decisions (§5); the zero Time means no
	// budget was set and the search runs to completion.
	deadline time.Time

	stats Stats
}

// SetDeadline bounds how long Solve may run: once exceeded, the next
// decision point returns Unknown instead of continuing the search. Passing
// the zero Time clears any previously set deadline.
func (s *Solver) SetDeadline(d time.Time) {
	s.deadline = d
}

// timedOut reports whether the configured wall-clock budget, if any, has
// elapsed. The Search Engine polls this between decisions, never mid-
// propagation (§5: no operation inside the core blocks or is interrupted
// partway).
func (s *Solver) timedOut() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// New builds a Solver over store, ready to run the search configured by cfg.
func New(cfg *config.Config, store *formula.Store) *Solver {
	s := &Solver{
		config:          cfg,
		logger:          cfg.Logger,
		store:           store,
		activity:        make([]float64, store.NVars()),
		litLastConflict: make([]int, 2*store.NVars()),
		propQ:           lit.NewQueue(),
		varDecay:        0.95,
		claDecay:        0.999,
	}
	s.order = order.NewPrefix(store.Prefix.NumBlocks(), &store.Assign, &s.activity)
	for _, b := range store.Prefix.Blocks {
		for _, v := range b.Vars {
			s.order.AddVar(v, store.Prefix.BlockOf(v))
		}
	}
	return s
}

// Stats returns a copy of the solver's running statistics.
func (s *Solver) Stats() Stats { return s.stats }

// decisionLevel returns the solver's current decision level. Level 0 is the
// pre-search state (units derived from preprocessing and top-level BCP).
func (s *Solver) decisionLevel() int {
	return len(s.trailLim)
}

// Solve runs the configured search engine to completion.
func (s *Solver) Solve() Result {
	s.varInc = 1.0
	s.claInc = 1.0
	s.maxLearnts = float64(len(s.store.Clauses)) / 3.0
	s.maxLearntsGrowth = 1.1
	s.maxLearntsCtrInc = 100.0
	s.maxLearntsCtr = int(s.maxLearntsCtrInc)
	s.maxLearntsCtrIncGrowth = 1.5

	if conflict := s.propagate(); conflict != formula.NoClause {
		return UNSAT
	}

	switch s.config.SolverType {
	case config.DPLL:
		return s.solveDPLL()
	default:
		return s.solveCDCL()
	}
}

// enqueue records that p has become true, forced by antecedent (NoClause for
// a decision). Returns false if p was already assigned to the opposite
// value - a conflict.
func (s *Solver) enqueue(p lit.Lit, antecedent formula.ClauseID) bool {
	switch v := s.store.Value(p); {
	case v.IsFalse():
		return false
	case v.IsTrue():
		return true
	}
	s.store.Set(p, s.decisionLevel(), antecedent)
	s.trail = append(s.trail, p)
	s.propQ.Push(p)
	return true
}

// assume pushes a new decision level and enqueues p as a decision.
func (s *Solver) assume(p lit.Lit) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	return s.enqueue(p, formula.NoClause)
}

// undoOne unwinds the most recently made assignment on the trail.
func (s *Solver) undoOne() {
	p := s.trail[len(s.trail)-1]
	s.store.Unset(p.Index())
	s.trail = s.trail[:len(s.trail)-1]
	s.order.Push(p.Index())
}

// cancelUntil unwinds the trail back to the given decision level.
func (s *Solver) cancelUntil(level int) {
	s.checkInvariant(level >= 0, "backtrack target below level 0")
	for s.decisionLevel() > level {
		lim := s.trailLim[len(s.trailLim)-1]
		for len(s.trail) > lim {
			s.undoOne()
		}
		s.trailLim = s.trailLim[:len(s.trailLim)-1]
	}
}

// varBumpActivity increases l's variable's activity, rescaling all
// activities if it grows too large to keep the float64 range comfortable.
func (s *Solver) varBumpActivity(l lit.Lit) {
	v := l.Index()
	s.activity[v] += s.varInc
	if s.activity[v] > 1e100 {
		for i := range s.activity {
			s.activity[i] *= 1e-100
		}
		s.varInc *= 1e-100
	}
	s.order.Fix(v)
}

func (s *Solver) varDecayActivity() {
	s.varInc *= 1 / s.varDecay
}

func (s *Solver) claBumpActivity(id formula.ClauseID) {
	c := s.store.Clauses[id]
	c.Activity += s.claInc
	if c.Activity > 1e20 {
		for _, lid := range s.learnts {
			s.store.Clauses[lid].Activity *= 1e-20
		}
		s.claInc *= 1e-20
	}
}

func (s *Solver) claDecayActivity() {
	s.claInc *= 1 / s.claDecay
}

func (s *Solver) decayActivities() {
	s.varDecayActivity()
	s.claDecayActivity()
}

// lubyRestartBound returns the conflict budget for restart index i (0-indexed)
// under the standard Luby sequence, scaled by the configured base (§7).
func lubyRestartBound(base float64, i int) float64 {
	return base * luby(i+1)
}

// luby computes the i-th (1-indexed) term of the Luby sequence
// 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,... via its standard recursion.
func luby(i int) float64 {
	k := 1
	for (1<<uint(k))-1 < i {
		k++
	}
	if i == (1<<uint(k))-1 {
		return math.Pow(2, float64(k-1))
	}
	return luby(i - (1<<uint(k-1) - 1))
}

// Package bench implements benchmark mode: walk a directory of QDIMACS
// instances, solve each, and accumulate result rows (§6 - the benchmark
// driver is an external collaborator of the core, but it is the thing that
// actually exercises every instance file end to end).
package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/preprocess"
	"github.com/tomggill/qbf-solver/internal/qdimacs"
	"github.com/tomggill/qbf-solver/internal/report"
	"github.com/tomggill/qbf-solver/internal/solver"
)

// Run walks cfg.BenchmarkPath for *.qdimacs and *.cnf instances, solves each
// with a fresh Store and Solver, and writes one report.Row per instance to
// out.
func Run(cfg *config.Config, out *os.File) error {
	if err := report.WriteHeader(out); err != nil {
		return err
	}

	return filepath.Walk(cfg.BenchmarkPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".qdimacs" && ext != ".cnf" {
			return nil
		}

		row, err := solveInstance(cfg, path)
		if err != nil {
			cfg.Logger.Printf("bench: %s: %v", path, err)
			return nil
		}
		return report.WriteRow(out, row)
	})
}

func solveInstance(cfg *config.Config, path string) (report.Row, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return report.Row{}, err
	}
	defer f.Close()

	doc, err := qdimacs.Parse(f)
	if err != nil {
		return report.Row{}, fmt.Errorf("parse: %w", err)
	}

	store := formula.NewStore(doc.Prefix)
	var units []preprocess.Unit
	for _, lits := range doc.Clauses {
		id, status := store.AddClause(lits, false)
		switch status {
		case formula.StatusEmpty:
			return report.Row{Instance: name, Result: solver.UNSAT}, nil
		case formula.StatusUnit:
			units = append(units, preprocess.Unit{Lit: store.Clauses[id].Lits[0], Antecedent: id})
		}
	}

	start := time.Now()
	preUnits, unsat := preprocess.Run(store, cfg)
	units = append(units, preUnits...)
	if unsat {
		return report.Row{Instance: name, Result: solver.UNSAT, Elapsed: time.Since(start)}, nil
	}

	sv := solver.New(cfg, store)
	result := solver.UNSAT
	if sv.SeedUnits(units) {
		result = sv.Solve()
	}
	return report.Row{
		Instance: name,
		Result:   result,
		Elapsed:  time.Since(start),
		Stats:    sv.Stats(),
	}, nil
}

// Command qbfsolver runs the QBF solver core against a single QDIMACS
// instance or a directory of them, per the configuration file's
// RunBenchmark flag (§6).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/tomggill/qbf-solver/internal/bench"
	"github.com/tomggill/qbf-solver/internal/config"
	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/preprocess"
	"github.com/tomggill/qbf-solver/internal/qdimacs"
	"github.com/tomggill/qbf-solver/internal/report"
	"github.com/tomggill/qbf-solver/internal/solver"
)

func main() {
	app := cli.NewApp()
	app.Name = "qbfsolver"
	app.Usage = "solve quantified boolean formulas in QDIMACS form"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "path to the run configuration JSON file",
			Value: "config.json",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "wall-clock search budget (0 disables the timeout)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "qbfsolver:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfgFile, err := os.Open(c.String("config"))
	if err != nil {
		return err
	}
	defer cfgFile.Close()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if cfg.RunBenchmark {
		out, err := os.Create(cfg.OutputFileName)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := bench.Run(cfg, out); err != nil {
			return err
		}
		return nil
	}

	result, stats, elapsed, err := solveSingle(cfg, c.Duration("timeout"))
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.OutputFileName)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := report.WriteHeader(out); err != nil {
		return err
	}
	if err := report.WriteRow(out, report.Row{
		Instance: cfg.InstancePath,
		Result:   result,
		Elapsed:  elapsed,
		Stats:    stats,
	}); err != nil {
		return err
	}

	fmt.Println(report.Verdict(result))
	os.Exit(report.ExitCode(result))
	return nil
}

func solveSingle(cfg *config.Config, timeout time.Duration) (solver.Result, solver.Stats, time.Duration, error) {
	f, err := os.Open(cfg.InstancePath)
	if err != nil {
		return solver.Unknown, solver.Stats{}, 0, err
	}
	defer f.Close()

	doc, err := qdimacs.Parse(f)
	if err != nil {
		return solver.Unknown, solver.Stats{}, 0, err
	}

	store := formula.NewStore(doc.Prefix)
	var units []preprocess.Unit
	for _, lits := range doc.Clauses {
		id, status := store.AddClause(lits, false)
		switch status {
		case formula.StatusEmpty:
			return solver.UNSAT, solver.Stats{}, 0, nil
		case formula.StatusUnit:
			units = append(units, preprocess.Unit{Lit: store.Clauses[id].Lits[0], Antecedent: id})
		}
	}

	start := time.Now()
	preUnits, unsat := preprocess.Run(store, cfg)
	units = append(units, preUnits...)
	if unsat {
		return solver.UNSAT, solver.Stats{}, time.Since(start), nil
	}

	sv := solver.New(cfg, store)
	if timeout > 0 {
		sv.SetDeadline(start.Add(timeout))
	}
	if !sv.SeedUnits(units) {
		return solver.UNSAT, sv.Stats(), time.Since(start), nil
	}
	result := sv.Solve()
	return result, sv.Stats(), time.Since(start), nil
}

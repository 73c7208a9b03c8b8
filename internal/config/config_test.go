package config

import (
	"strings"
	"testing"
)

func validDoc() string {
	return `{
		"RunBenchmark": false,
		"InstancePath": "instance.qdimacs",
		"OutputFileName": "out.csv",
		"SolverOptions": {
			"SolverType": "CDCL",
			"LiteralSelection": "VSS",
			"Preprocess": true,
			"UniversalReduction": true,
			"PureLiteralDeletion": true,
			"Restarts": true,
			"PreResolution": true,
			"PreResolutionConfig": {
				"min_ratio": 0.5,
				"max_ratio": "infinity",
				"max_clause_length": 100,
				"repeat_above": "infinity",
				"iterations": 3
			}
		}
	}`
}

func TestLoadValidConfig(t *testing.T) {
	c, err := Load(strings.NewReader(validDoc()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.SolverType != CDCL {
		t.Fatalf("SolverType = %v, want CDCL", c.SolverType)
	}
	if c.LiteralSelection != VariableStateSum {
		t.Fatalf("LiteralSelection = %v, want VSS", c.LiteralSelection)
	}
	if c.PreResolutionConfig.MaxClauseLength != 100 {
		t.Fatalf("MaxClauseLength = %d, want 100", c.PreResolutionConfig.MaxClauseLength)
	}
	if c.PreResolutionConfig.RepeatAbove <= 1_000_000 {
		t.Fatalf("RepeatAbove should resolve 'infinity' to a very large sentinel")
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	doc := strings.Replace(validDoc(), `"RunBenchmark": false,`, `"RunBenchmark": false, "Bogus": true,`, 1)
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatalf("Load() with unknown field should error")
	}
}

func TestLoadRejectsBadSolverType(t *testing.T) {
	doc := strings.Replace(validDoc(), `"SolverType": "CDCL"`, `"SolverType": "bogus"`, 1)
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatalf("Load() with invalid SolverType should error")
	}
}

func TestDPLLSilentlyDisablesRestarts(t *testing.T) {
	doc := strings.Replace(validDoc(), `"SolverType": "CDCL"`, `"SolverType": "DPLL"`, 1)
	c, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Restarts {
		t.Fatalf("Restarts should be forced false under DPLL")
	}
}

func TestValidateRequiresBenchmarkPath(t *testing.T) {
	doc := strings.Replace(validDoc(), `"RunBenchmark": false,`, `"RunBenchmark": true,`, 1)
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatalf("Load() should require BenchmarkPath when RunBenchmark is true")
	}
}

// Package config loads and validates the solver's run configuration from a
// JSON file, in the manner of the teacher's config package but extended with
// strict loading: unknown keys are rejected. A missing boolean option reads
// as false; SolverType, LiteralSelection and the PreResolutionConfig numbers
// must be present and valid.
package config

import (
	"encoding/json"
	"io"
	"log"
	"math"
	"os"
	"strings"
)

// SolverType selects the search engine.
type SolverType uint8

const (
	CDCL SolverType = iota
	DPLL
)

func (t SolverType) String() string {
	if t == DPLL {
		return "DPLL"
	}
	return "CDCL"
}

// LiteralSelection selects the decision heuristic used to pick the next
// variable within a quantifier block.
type LiteralSelection uint8

const (
	VariableStateSum LiteralSelection = iota
	Ordered
)

func (l LiteralSelection) String() string {
	if l == Ordered {
		return "Ordered"
	}
	return "VSS"
}

// PreResolutionConfig tunes bounded Q-resolution preprocessing (§7). Ratio
// and length fields accept the JSON sentinel "infinity", which maps to
// math.MaxFloat32 for ratios and math.MaxInt for lengths: an unbounded
// resolution pass, rather than a literal numeric overflow.
type PreResolutionConfig struct {
	MinRatio        float64 `json:"min_ratio"`
	MaxRatio        float64 `json:"max_ratio"`
	MaxClauseLength int     `json:"max_clause_length"`
	RepeatAbove     int     `json:"repeat_above"`
	Iterations      int     `json:"iterations"`
}

// solverOptions mirrors the "SolverOptions" object in config.json.
type solverOptions struct {
	SolverType          string              `json:"SolverType"`
	LiteralSelection    string              `json:"LiteralSelection"`
	Preprocess          bool                `json:"Preprocess"`
	UniversalReduction  bool                `json:"UniversalReduction"`
	PureLiteralDeletion bool                `json:"PureLiteralDeletion"`
	Restarts            bool                `json:"Restarts"`
	PreResolution       bool                `json:"PreResolution"`
	PreResolutionConfig rawPreResolution    `json:"PreResolutionConfig"`
}

// rawPreResolution accepts either a JSON number or the string "infinity" per
// field, matching read_number_json_f32/usize in the original implementation.
type rawPreResolution struct {
	MinRatio        json.RawMessage `json:"min_ratio"`
	MaxRatio        json.RawMessage `json:"max_ratio"`
	MaxClauseLength json.RawMessage `json:"max_clause_length"`
	RepeatAbove     json.RawMessage `json:"repeat_above"`
	Iterations      json.RawMessage `json:"iterations"`
}

// rawNumber strips the quotes from a JSON string value so that both 3 and
// "infinity" reach the parse helpers as a json.Number.
func rawNumber(m json.RawMessage) json.Number {
	return json.Number(strings.Trim(string(m), `"`))
}

// document mirrors the top-level config.json object.
type document struct {
	RunBenchmark   bool          `json:"RunBenchmark"`
	BenchmarkPath  string        `json:"BenchmarkPath"`
	InstancePath   string        `json:"InstancePath"`
	OutputFileName string        `json:"OutputFileName"`
	SolverOptions  solverOptions `json:"SolverOptions"`
}

// Config is the fully parsed and validated run configuration.
type Config struct {
	Logger *log.Logger

	RunBenchmark   bool
	BenchmarkPath  string
	InstancePath   string
	OutputFileName string

	SolverType          SolverType
	LiteralSelection    LiteralSelection
	Preprocess          bool
	UniversalReduction  bool
	PureLiteralDeletion bool
	Restarts            bool
	PreResolution       bool
	PreResolutionConfig PreResolutionConfig

	// RestartBase is the base conflict count of the Luby restart sequence
	// (§7). It has no JSON field: the original leaves restart pacing
	// unconfigurable, so a sensible default (100) is used unconditionally.
	RestartBase int
}

// New returns a Config with its logger wired up, as config.New does in the
// teacher, ready to be filled in by Load.
func New() *Config {
	return &Config{
		Logger:      log.New(os.Stdout, "", log.Ldate|log.Ltime),
		RestartBase: 100,
	}
}

// Load reads and validates a config.json document from r.
func Load(r io.Reader) (*Config, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, &ConfigError{Reason: "invalid JSON: " + err.Error()}
	}

	c := New()
	c.RunBenchmark = doc.RunBenchmark
	c.BenchmarkPath = doc.BenchmarkPath
	c.InstancePath = doc.InstancePath
	c.OutputFileName = doc.OutputFileName

	if err := c.loadSolverOptions(doc.SolverOptions); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadSolverOptions(o solverOptions) error {
	switch strings.ToLower(o.SolverType) {
	case "cdcl":
		c.SolverType = CDCL
	case "dpll":
		c.SolverType = DPLL
	default:
		return &ConfigError{Reason: "SolverType should be a valid solver: CDCL or DPLL"}
	}

	switch strings.ToLower(o.LiteralSelection) {
	case "vss":
		c.LiteralSelection = VariableStateSum
	case "ordered":
		c.LiteralSelection = Ordered
	default:
		return &ConfigError{Reason: "LiteralSelection should be a valid type: VSS or Ordered"}
	}

	c.Preprocess = o.Preprocess
	c.UniversalReduction = o.UniversalReduction
	c.PureLiteralDeletion = o.PureLiteralDeletion
	c.Restarts = o.Restarts
	c.PreResolution = o.PreResolution

	pr, err := parsePreResolution(o.PreResolutionConfig)
	if err != nil {
		return err
	}
	c.PreResolutionConfig = pr

	// DPLL never restarts: it has no learned-clause activity to drive the
	// Luby sequence against, so Restarts is silently disabled rather than
	// rejected.
	if c.SolverType == DPLL {
		c.Restarts = false
	}
	return nil
}

func parsePreResolution(r rawPreResolution) (PreResolutionConfig, error) {
	minRatio, err := parseRatio(rawNumber(r.MinRatio))
	if err != nil {
		return PreResolutionConfig{}, &ConfigError{Reason: "min_ratio value must be a valid number or 'infinity'"}
	}
	maxRatio, err := parseRatio(rawNumber(r.MaxRatio))
	if err != nil {
		return PreResolutionConfig{}, &ConfigError{Reason: "max_ratio value must be a valid number or 'infinity'"}
	}
	maxLen, err := parseLength(rawNumber(r.MaxClauseLength))
	if err != nil {
		return PreResolutionConfig{}, &ConfigError{Reason: "max_clause_length value must be a valid number or 'infinity'"}
	}
	repeatAbove, err := parseLength(rawNumber(r.RepeatAbove))
	if err != nil {
		return PreResolutionConfig{}, &ConfigError{Reason: "repeat_above value must be a valid number or 'infinity'"}
	}
	iterations, err := rawNumber(r.Iterations).Int64()
	if err != nil {
		return PreResolutionConfig{}, &ConfigError{Reason: "iterations value must be a valid number"}
	}

	return PreResolutionConfig{
		MinRatio:        minRatio,
		MaxRatio:        maxRatio,
		MaxClauseLength: maxLen,
		RepeatAbove:     repeatAbove,
		Iterations:      int(iterations),
	}, nil
}

func parseRatio(n json.Number) (float64, error) {
	if strings.EqualFold(n.String(), "infinity") {
		return math.MaxFloat32, nil
	}
	return n.Float64()
}

func parseLength(n json.Number) (int, error) {
	if strings.EqualFold(n.String(), "infinity") {
		return math.MaxInt, nil
	}
	v, err := n.Int64()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Validate checks the configuration is internally consistent, beyond what
// JSON decoding alone can catch.
func (c *Config) Validate() error {
	if c.RunBenchmark && c.BenchmarkPath == "" {
		return &ConfigError{Reason: "BenchmarkPath is required when RunBenchmark is true"}
	}
	if !c.RunBenchmark && c.InstancePath == "" {
		return &ConfigError{Reason: "InstancePath is required when RunBenchmark is false"}
	}
	if c.OutputFileName == "" {
		return &ConfigError{Reason: "OutputFileName is required"}
	}
	if c.PreResolution {
		pr := c.PreResolutionConfig
		if pr.MinRatio > pr.MaxRatio {
			return &ConfigError{Reason: "PreResolutionConfig.min_ratio must not exceed max_ratio"}
		}
		if pr.Iterations < 0 {
			return &ConfigError{Reason: "PreResolutionConfig.iterations must not be negative"}
		}
	}
	return nil
}

// Package qdimacs parses the QDIMACS format (QBF's counterpart to DIMACS
// CNF): a "p cnf" header, a quantifier prefix of "e"/"a" lines, and clause
// lines terminated by 0.
package qdimacs

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/tomggill/qbf-solver/internal/formula"
	"github.com/tomggill/qbf-solver/internal/lit"
)

// Document is a parsed QDIMACS instance: a quantifier prefix and the list of
// clauses (each clause a list of lit.Lit values, converted from the
// 1-indexed DIMACS integers with lit.FromInt).
type Document struct {
	NVars   int
	NClauses int
	Prefix  *formula.Prefix
	Clauses [][]lit.Lit
}

// Parse reads a QDIMACS document from r.
func Parse(in io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var nVars, nClauses int
	var haveHeader bool
	blocks := []formula.Block{}
	clauses := [][]lit.Lit{}

	line := 0
	for scanner.Scan() {
		line++
		fields := bytes.Fields(scanner.Bytes())
		if len(fields) == 0 {
			continue
		}
		switch string(fields[0]) {
		case "c":
			continue
		case "p":
			n, nc, err := parseHeader(fields, line)
			if err != nil {
				return nil, err
			}
			nVars, nClauses = n, nc
			haveHeader = true
		case "e", "a":
			if !haveHeader {
				return nil, &ParseError{Line: line, Reason: "quantifier line before 'p cnf' header"}
			}
			kind := formula.Existential
			if fields[0][0] == 'a' {
				kind = formula.Universal
			}
			vars, err := parseQuantifierLine(fields, line, nVars)
			if err != nil {
				return nil, err
			}
			blocks = appendBlock(blocks, kind, vars)
		default:
			if !haveHeader {
				return nil, &ParseError{Line: line, Reason: "clause line before 'p cnf' header"}
			}
			clause, err := parseClauseLine(fields, line, nVars)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: line, Reason: err.Error()}
	}
	if !haveHeader {
		return nil, &ParseError{Line: line, Reason: "missing 'p cnf' header"}
	}

	return &Document{
		NVars:    nVars,
		NClauses: nClauses,
		Prefix:   formula.NewPrefix(nVars, blocks),
		Clauses:  clauses,
	}, nil
}

// appendBlock merges consecutive quantifier lines of the same kind into a
// single block, per the convention that "e 1 0" followed by "e 2 0" is
// equivalent to one line "e 1 2 0" (§6).
func appendBlock(blocks []formula.Block, kind formula.QuantifierKind, vars []int) []formula.Block {
	if n := len(blocks); n > 0 && blocks[n-1].Kind == kind {
		blocks[n-1].Vars = append(blocks[n-1].Vars, vars...)
		return blocks
	}
	return append(blocks, formula.Block{Kind: kind, Vars: vars})
}

func parseHeader(fields [][]byte, line int) (nVars, nClauses int, err error) {
	if len(fields) != 4 || string(fields[1]) != "cnf" {
		return 0, 0, &ParseError{Line: line, Reason: "malformed header, expected 'p cnf <vars> <clauses>'"}
	}
	nVars, err = strconv.Atoi(string(fields[2]))
	if err != nil {
		return 0, 0, &ParseError{Line: line, Reason: "variable count is not an integer: " + err.Error()}
	}
	nClauses, err = strconv.Atoi(string(fields[3]))
	if err != nil {
		return 0, 0, &ParseError{Line: line, Reason: "clause count is not an integer: " + err.Error()}
	}
	return nVars, nClauses, nil
}

func parseQuantifierLine(fields [][]byte, line, nVars int) ([]int, error) {
	if len(fields) < 2 {
		return nil, &ParseError{Line: line, Reason: "empty quantifier line"}
	}
	rest := fields[1:]
	if len(rest) == 0 || string(rest[len(rest)-1]) != "0" {
		return nil, &ParseError{Line: line, Reason: "quantifier line must be terminated with 0"}
	}
	rest = rest[:len(rest)-1]

	vars := make([]int, 0, len(rest))
	for _, f := range rest {
		v, err := strconv.Atoi(string(f))
		if err != nil || v <= 0 {
			return nil, &ParseError{Line: line, Reason: "quantifier line must list positive variable indices"}
		}
		if v > nVars {
			return nil, &ParseError{Line: line, Reason: "variable exceeds declared count"}
		}
		vars = append(vars, v-1)
	}
	return vars, nil
}

func parseClauseLine(fields [][]byte, line, nVars int) ([]lit.Lit, error) {
	if len(fields) == 0 || string(fields[len(fields)-1]) != "0" {
		return nil, &ParseError{Line: line, Reason: "clause must be terminated with 0"}
	}
	fields = fields[:len(fields)-1]

	clause := make([]lit.Lit, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.Atoi(string(f))
		if err != nil {
			return nil, &ParseError{Line: line, Reason: "literal is not an integer: " + err.Error()}
		}
		if p == 0 {
			return nil, &ParseError{Line: line, Reason: "literal 0 may only terminate a clause"}
		}
		if abs(p) > nVars {
			return nil, &ParseError{Line: line, Reason: "variable exceeds declared count"}
		}
		clause = append(clause, lit.FromInt(p))
	}
	return clause, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

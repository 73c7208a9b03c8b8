// Package lit implements the signed-literal encoding shared by the Formula
// Store, Propagator, and Search Engine.
package lit

import "fmt"

// Undef represents the absence of a literal (e.g. no antecedent literal).
const Undef = Lit(-1)

// Lit is a literal: a variable together with its polarity. Variables are
// stored 0-indexed internally (New's v parameter); QDIMACS variables are
// 1-indexed and are converted at the boundary via FromInt/Int.
//
// The polarity occupies the least significant bit so that a literal and its
// negation are adjacent when sorted or used as a map/slice index.
type Lit int

// New returns the literal for 0-indexed variable v with the given polarity
// (neg true means the negative literal).
func New(v int, neg bool) Lit {
	if neg {
		return Lit(v + v + 1)
	}
	return Lit(v + v)
}

// FromInt returns the literal corresponding to a signed 1-indexed DIMACS
// integer (e.g. -3 is the negative literal of variable 3).
func FromInt(i int) Lit {
	if i < 0 {
		return New(-i-1, true)
	}
	return New(i-1, false)
}

// Not returns the negation of l.
func (l Lit) Not() Lit {
	return l ^ 1
}

// Sign reports whether l is a negative literal.
func (l Lit) Sign() bool {
	return l&1 == 1
}

// Index returns l's 0-indexed variable, suitable for slice indexing.
func (l Lit) Index() int {
	return int(l >> 1)
}

// Var returns l's 1-indexed DIMACS variable number.
func (l Lit) Var() int {
	return int(l>>1) + 1
}

// Int returns l as a signed DIMACS integer.
func (l Lit) Int() int {
	if l.Sign() {
		return -l.Var()
	}
	return l.Var()
}

// String implements fmt.Stringer.
func (l Lit) String() string {
	if l == Undef {
		return "undef"
	}
	if l.Sign() {
		return fmt.Sprintf("-%d", l.Var())
	}
	return fmt.Sprintf("%d", l.Var())
}

// Package formula implements the Formula Store: the owner of clauses,
// literal occurrence indices (watch lists), the variable table, and the
// quantifier prefix (§4.1).
package formula

// QuantifierKind distinguishes existential from universal quantification.
type QuantifierKind uint8

const (
	Existential QuantifierKind = iota
	Universal
)

func (k QuantifierKind) String() string {
	if k == Universal {
		return "universal"
	}
	return "existential"
}

// Block is one quantifier block: a contiguous run of same-kind variables in
// the prefix. Blocks are indexed 0..k-1 from outermost to innermost.
type Block struct {
	Kind QuantifierKind
	Vars []int // 0-indexed variables, in prefix order
}

// Prefix is the frozen, ordered sequence of quantifier blocks produced by
// parsing. Pure-Literal Elimination may empty a block; empty blocks are
// retained positionally so block indices stay stable (§3).
type Prefix struct {
	Blocks  []Block
	blockOf []int // 0-indexed var -> block index
	kindOf  []int8
}

// NewPrefix builds a Prefix for nVars variables (0-indexed 0..nVars-1) from
// the given blocks. Any variable not covered by a block becomes existential
// in the innermost block. If the last given block is universal (or there
// are none), an existential block is appended to hold them; it is appended
// even when every variable is already covered, and then stays empty.
func NewPrefix(nVars int, blocks []Block) *Prefix {
	p := &Prefix{
		Blocks:  blocks,
		blockOf: make([]int, nVars),
		kindOf:  make([]int8, nVars),
	}
	for i := range p.blockOf {
		p.blockOf[i] = -1
	}
	for bi, b := range blocks {
		for _, v := range b.Vars {
			p.blockOf[v] = bi
			p.kindOf[v] = int8(b.Kind)
		}
	}
	innermost := len(p.Blocks) - 1
	if innermost < 0 || p.Blocks[innermost].Kind != Existential {
		p.Blocks = append(p.Blocks, Block{Kind: Existential})
		innermost = len(p.Blocks) - 1
	}
	for v := range p.blockOf {
		if p.blockOf[v] == -1 {
			p.blockOf[v] = innermost
			p.kindOf[v] = int8(Existential)
			p.Blocks[innermost].Vars = append(p.Blocks[innermost].Vars, v)
		}
	}
	return p
}

// BlockOf returns the block index of 0-indexed variable v.
func (p *Prefix) BlockOf(v int) int { return p.blockOf[v] }

// KindOf returns the quantifier kind of 0-indexed variable v.
func (p *Prefix) KindOf(v int) QuantifierKind { return QuantifierKind(p.kindOf[v]) }

// NumBlocks returns the number of quantifier blocks.
func (p *Prefix) NumBlocks() int { return len(p.Blocks) }

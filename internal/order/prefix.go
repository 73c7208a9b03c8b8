package order

import "github.com/tomggill/qbf-solver/internal/tribool"

// PrefixOrder holds one activity Heap per quantifier block and enforces the
// prefix discipline: a decision must always come from the outermost block
// that still has unassigned variables (§4.3). Rather than filtering a single
// heap on every selection, it keeps one heap per block so a selection is a
// direct pop from the right block's heap (see design note in §9).
type PrefixOrder struct {
	blocks    []*Heap
	varBlock  []int // 0-indexed var -> block index
	assigns   *[]tribool.Tribool
	activity  *[]float64
	nextBlock int // lowest block index that might still have live vars
}

// NewPrefix returns a PrefixOrder with nBlocks empty per-block heaps.
func NewPrefix(nBlocks int, assigns *[]tribool.Tribool, activity *[]float64) *PrefixOrder {
	p := &PrefixOrder{
		blocks:   make([]*Heap, nBlocks),
		varBlock: []int{},
		assigns:  assigns,
		activity: activity,
	}
	for i := range p.blocks {
		p.blocks[i] = New(assigns, activity)
	}
	return p
}

// AddVar registers 0-indexed variable v as belonging to the given block.
func (p *PrefixOrder) AddVar(v, block int) {
	for len(p.varBlock) <= v {
		p.varBlock = append(p.varBlock, -1)
	}
	p.varBlock[v] = block
	p.blocks[block].AddVar(v)
}

// Fix restores heap order for v after its activity changes.
func (p *PrefixOrder) Fix(v int) {
	if b := p.varBlock[v]; b >= 0 {
		p.blocks[b].Fix(v)
	}
}

// Push reinserts a variable freed by backtracking into its block's heap.
func (p *PrefixOrder) Push(v int) {
	if b := p.varBlock[v]; b >= 0 {
		p.blocks[b].Push(v)
		if b < p.nextBlock {
			p.nextBlock = b
		}
	}
}

// Choose returns the 0-indexed variable with the highest activity in the
// outermost quantifier block that still has an unassigned variable, or -1 if
// every variable is assigned.
func (p *PrefixOrder) Choose() int {
	for p.nextBlock < len(p.blocks) {
		if v := p.blocks[p.nextBlock].ChooseUnassigned(); v != -1 {
			return v
		}
		p.nextBlock++
	}
	return -1
}

// BlockOf returns the block index of 0-indexed variable v.
func (p *PrefixOrder) BlockOf(v int) int {
	return p.varBlock[v]
}

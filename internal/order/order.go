// Package order implements the activity-ordered variable heap used by the
// VSS (Variable State Sum) decision heuristic, and the block-aware wrapper
// that enforces the quantifier-prefix discipline required of every
// decision (§4.3 of the design: the chosen variable must belong to the
// outermost quantifier block that still has unassigned variables).
package order

import "github.com/tomggill/qbf-solver/internal/tribool"

// Heap is a binary max-heap of 0-indexed variables ordered by activity. It
// may still hold variables that have since been assigned, which
// ChooseUnassigned discards; Pop removes the highest-activity variable, and
// Push reinserts one freed by backtracking.
type Heap struct {
	vars     []int
	indices  map[int]int // var -> index in vars, or -1 if not present
	assigns  *[]tribool.Tribool
	activity *[]float64
}

// New returns a new, empty Heap backed by the given assignment and activity
// slices (owned by the caller; the heap only reads them).
func New(assigns *[]tribool.Tribool, activity *[]float64) *Heap {
	return &Heap{
		vars:     []int{},
		indices:  map[int]int{},
		assigns:  assigns,
		activity: activity,
	}
}

// AddVar registers a new 0-indexed variable with the heap.
func (h *Heap) AddVar(v int) {
	h.indices[v] = len(h.vars)
	h.vars = append(h.vars, v)
	h.up(len(h.vars) - 1)
}

// Len returns the number of variables currently in the heap.
func (h *Heap) Len() int {
	return len(h.vars)
}

// Peek returns the highest-activity variable without removing it, or -1 if
// the heap is empty.
func (h *Heap) Peek() int {
	if len(h.vars) == 0 {
		return -1
	}
	return h.vars[0]
}

// Pop removes and returns the highest-activity variable, or -1 if empty.
func (h *Heap) Pop() int {
	if len(h.vars) == 0 {
		return -1
	}
	n := len(h.vars) - 1
	h.swap(0, n)
	v := h.vars[n]
	h.vars = h.vars[:n]
	h.indices[v] = -1
	if n > 0 {
		h.down(0, n)
	}
	return v
}

// Push reinserts a variable freed by backtracking, if it isn't already
// present.
func (h *Heap) Push(v int) {
	if idx, ok := h.indices[v]; ok && idx != -1 {
		return
	}
	h.indices[v] = len(h.vars)
	h.vars = append(h.vars, v)
	h.up(len(h.vars) - 1)
}

// Fix restores heap order around v after its activity changes.
func (h *Heap) Fix(v int) {
	idx, ok := h.indices[v]
	if !ok || idx == -1 {
		return
	}
	h.down(idx, len(h.vars))
	h.up(idx)
}

// ChooseUnassigned pops variables until it finds one that is still
// unassigned, discarding stale entries along the way, and returns its
// 0-indexed id, or -1 if none remain.
func (h *Heap) ChooseUnassigned() int {
	a := *h.assigns
	for {
		v := h.Pop()
		if v == -1 {
			return -1
		}
		if a[v].IsUnassigned() {
			return v
		}
	}
}

// less reports whether the variable at heap position i has strictly higher
// activity than the one at j, i.e. i belongs closer to the root: this is a
// max-heap on activity, so Pop always yields the most active variable.
func (h *Heap) less(i, j int) bool {
	return (*h.activity)[h.vars[i]] > (*h.activity)[h.vars[j]]
}

func (h *Heap) swap(i, j int) {
	vi, vj := h.vars[i], h.vars[j]
	h.vars[i], h.vars[j] = vj, vi
	h.indices[vi], h.indices[vj] = j, i
}

// up and down are adapted from Go's container/heap sift routines, generalized
// over the less() predicate above.
func (h *Heap) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

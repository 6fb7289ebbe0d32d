package combinatorics

import (
	"cmp"
	"slices"
)

// Permutation — lazy cursor over the distinct orderings of a bag of items.
//
// Description:
//
//	The cursor starts at the ascending ordering and advances in strict
//	lexicographic order. Equal items collapse: a bag of n items with
//	multiplicities m₁..m_d yields n!/∏mᵢ! orderings, each exactly once.
//
// Complexity:
//
//	Next: O(n) time, zero allocations.
//	Current: O(n) time and one allocation.
//
// Errors:
//   - ErrNoItems — empty input bag.
type Permutation[T cmp.Ordered] struct {
	seq  []T
	done bool
}

// NewPermutation returns a cursor primed on the ascending ordering of items.
func NewPermutation[T cmp.Ordered](items []T) (*Permutation[T], error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	seq := slices.Clone(items)
	slices.Sort(seq)
	return &Permutation[T]{seq: seq}, nil
}

// Current returns the current ordering as a fresh slice.
func (p *Permutation[T]) Current() []T {
	return slices.Clone(p.seq)
}

// Next advances to the lexicographically next distinct ordering and reports
// whether one exists. Once it returns false it keeps returning false, and
// Current keeps yielding the final (descending) ordering.
func (p *Permutation[T]) Next() bool {
	if p.done {
		return false
	}
	// rightmost ascent; none means the sequence is fully descending
	i := len(p.seq) - 2
	for i >= 0 && p.seq[i] >= p.seq[i+1] {
		i--
	}
	if i < 0 {
		p.done = true
		return false
	}
	// smallest element right of i that still exceeds seq[i]
	j := len(p.seq) - 1
	for p.seq[j] <= p.seq[i] {
		j--
	}
	p.seq[i], p.seq[j] = p.seq[j], p.seq[i]
	slices.Reverse(p.seq[i+1:])
	return true
}

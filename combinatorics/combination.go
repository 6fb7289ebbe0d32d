package combinatorics

import (
	"cmp"
	"slices"
)

// Combination — lazy cursor over the distinct sub-multisets of a bag of items.
//
// Description:
//
//	Items may repeat; repeats are multiplicity, not error. Two draws are
//	the same combination when they pick the same items the same number of
//	times, regardless of positions in the input. The cursor walks every
//	distinct combination exactly once, smallest sizes first, and within
//	one size in ascending lexicographic order of the sorted draw.
//
// Representation:
//
//	The bag collapses into distinct sorted elements plus a multiplicity
//	vector. A combination is a take-vector take[i] ∈ [0, avail[i]] with a
//	fixed sum: duplicate suppression and availability limits hold by
//	construction, so advancing never generates and discards candidates.
//
// Complexity:
//
//	Next: O(d) time, zero allocations (d = number of distinct items).
//	Current: O(k) time and one allocation (k = current draw size).
//	Memory: O(d) for the cursor itself.
//
// Errors:
//   - ErrNoItems      — empty input bag.
//   - ErrNegativeSize — negative draw size.
//   - ErrUnknownMode  — mode outside ExactSize/MinSize/MaxSize.
type Combination[T cmp.Ordered] struct {
	elems []T   // distinct items, ascending
	avail []int // multiplicity per distinct item
	room  []int // room[i] = sum(avail[i+1:]), capacity right of i
	take  []int // current draw: take[i] items of elems[i]
	size  int   // active draw size
	hi    int   // final draw size for the mode
	done  bool  // sticky once the last combination is reached
}

// NewCombination returns a cursor primed on the first combination of items
// under the given draw size and mode.
//
// A size larger than the bag silently clamps to the bag size. Size 0 yields
// the single empty combination under ExactSize and MaxSize, and every
// combination from empty to full bag under MinSize.
func NewCombination[T cmp.Ordered](items []T, size int, mode Mode) (*Combination[T], error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if size < 0 {
		return nil, ErrNegativeSize
	}
	total := len(items)
	if size > total {
		size = total
	}

	var lo, hi int
	switch mode {
	case ExactSize:
		lo, hi = size, size
	case MinSize:
		lo, hi = size, total
	case MaxSize:
		lo, hi = 1, size
		if size == 0 {
			lo = 0
		}
	default:
		return nil, ErrUnknownMode
	}

	c := &Combination[T]{hi: hi}
	c.tally(items)
	c.size = lo
	c.fill(lo)
	return c, nil
}

// tally collapses items into distinct sorted elements with multiplicities
// and precomputes the suffix capacities used by advance.
func (c *Combination[T]) tally(items []T) {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		c.elems = append(c.elems, sorted[i])
		c.avail = append(c.avail, j-i)
		i = j
	}
	d := len(c.elems)
	c.room = make([]int, d)
	for i := d - 2; i >= 0; i-- {
		c.room[i] = c.room[i+1] + c.avail[i+1]
	}
	c.take = make([]int, d)
}

// fill loads the first draw of size k: as many of the smallest element as
// available, then the next, left to right.
func (c *Combination[T]) fill(k int) {
	for i := range c.take {
		n := min(c.avail[i], k)
		c.take[i] = n
		k -= n
	}
}

// advance steps take to the next draw of the same size. It finds the
// rightmost position whose unit can shift into the remaining capacity on
// its right, then refills that suffix from the left. Reports false when
// the active size is exhausted.
func (c *Combination[T]) advance() bool {
	tail := 0 // sum of take right of p
	for p := len(c.take) - 1; p >= 0; p-- {
		if c.take[p] > 0 && tail+1 <= c.room[p] {
			c.take[p]--
			k := tail + 1
			for i := p + 1; i < len(c.take); i++ {
				n := min(c.avail[i], k)
				c.take[i] = n
				k -= n
			}
			return true
		}
		tail += c.take[p]
	}
	return false
}

// Current returns the current combination as a fresh ascending slice.
// It never mutates the cursor; calling it repeatedly yields equal slices.
func (c *Combination[T]) Current() []T {
	draw := make([]T, 0, c.size)
	for i, n := range c.take {
		for ; n > 0; n-- {
			draw = append(draw, c.elems[i])
		}
	}
	return draw
}

// Next advances the cursor and reports whether a further combination
// exists. Once it returns false it keeps returning false, and Current
// keeps yielding the final combination.
func (c *Combination[T]) Next() bool {
	if c.done {
		return false
	}
	if c.advance() {
		return true
	}
	if c.size < c.hi {
		c.size++
		c.fill(c.size)
		return true
	}
	c.done = true
	return false
}

// Size returns the number of items in the current combination.
func (c *Combination[T]) Size() int { return c.size }

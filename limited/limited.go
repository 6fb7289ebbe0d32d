package limited

import (
	"cmp"
	"math/big"
	"slices"

	"github.com/Brazilian-Institute-of-Robotics/base-numeric/combinatorics"
	"github.com/Brazilian-Institute-of-Robotics/base-numeric/multiset"
)

// Combination walks the distinct draws of typed atoms from a bounded
// availability map. See the package documentation for the full contract.
type Combination[T cmp.Ordered] struct {
	atoms  []T   // code → atom, ascending atom order
	counts []int // code → positive multiplicity
	size   int   // draw size after clamping
	mode   combinatorics.Mode
	walker *combinatorics.Combination[uint32]
}

// New builds a generator over avail, primed on its first draw.
//
// Validation happens in stages: an availability total of zero is
// ErrNoAtoms; a negative size or unknown mode surfaces from the
// enumeration core. A size above the total silently clamps to it.
//
// Complexity: O(n log n), n = TotalAtoms(avail).
func New[T cmp.Ordered](avail multiset.Multiset[T], size int, mode combinatorics.Mode) (*Combination[T], error) {
	total := avail.Cardinality()
	if total == 0 {
		return nil, ErrNoAtoms
	}
	if size > total {
		size = total
	}

	// codes 0,1,2,… follow ascending atom order, so equal maps always
	// encode and enumerate identically
	atoms := avail.Elements()
	counts := make([]int, len(atoms))
	encoded := make([]uint32, 0, total)
	for code, atom := range atoms {
		n := avail.Count(atom)
		counts[code] = n
		for i := 0; i < n; i++ {
			encoded = append(encoded, uint32(code))
		}
	}

	walker, err := combinatorics.NewCombination(encoded, size, mode)
	if err != nil {
		return nil, err
	}
	return &Combination[T]{
		atoms:  atoms,
		counts: counts,
		size:   size,
		mode:   mode,
		walker: walker,
	}, nil
}

// Current returns the active draw as a fresh slice of atoms in ascending
// order. Idempotent; the caller may keep or mutate the result.
func (lc *Combination[T]) Current() []T {
	codes := lc.walker.Current()
	draw := make([]T, len(codes))
	for i, code := range codes {
		draw[i] = lc.atoms[code]
	}
	slices.Sort(draw)
	return draw
}

// Next advances to the next draw and reports whether one exists.
// Once false, it stays false and Current keeps the final draw.
func (lc *Combination[T]) Next() bool { return lc.walker.Next() }

// Size returns the draw size the generator runs with, after clamping.
func (lc *Combination[T]) Size() int { return lc.size }

// Mode returns the draw-size rule the generator runs with.
func (lc *Combination[T]) Mode() combinatorics.Mode { return lc.mode }

// Count returns the total number of draws this generator enumerates,
// first draw included. It never consumes the generator.
func (lc *Combination[T]) Count() *big.Int {
	return combinatorics.CountCombinations(lc.counts, lc.size, lc.mode)
}

// TotalAtoms returns the summed availability of the map: the number of
// atoms a draw could use at most. Nil and empty maps total 0, entries
// without positive multiplicity contribute nothing.
func TotalAtoms[T cmp.Ordered](avail multiset.Multiset[T]) int {
	return avail.Cardinality()
}

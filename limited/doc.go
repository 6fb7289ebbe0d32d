// Package limited enumerates combinations of typed atoms drawn from a
// bounded availability map, lazily and in a canonical order.
//
// What:
//
//   - Combination[T] walks every distinct way to draw atoms from a
//     multiset.Multiset[T] availability map, honoring each atom's
//     multiplicity and a draw-size rule (ExactSize, MinSize, MaxSize
//     from package combinatorics).
//   - TotalAtoms reports the summed availability, the same quantity the
//     constructor validates and clamps against.
//   - Count predicts the length of the enumeration without running it.
//
// How:
//
//	Atoms are mapped once onto compact integer codes in ascending key
//	order, so the enumeration core compares small integers instead of
//	arbitrary keys. Every Current call decodes the active draw back into
//	atoms and sorts it, which makes results canonical: deterministic
//	across runs, ascending within each draw.
//
// Contract:
//
//	New returns a generator already primed on its first draw, or
//	ErrNoAtoms when the map holds nothing drawable. Current is
//	idempotent and yields a fresh slice. Next advances and reports
//	whether more draws remain; after false it stays false. A draw size
//	beyond the total availability silently clamps to the total.
//
// Example:
//
//	avail := multiset.Multiset[string]{"A": 2, "B": 1, "C": 1}
//	lc, err := limited.New(avail, 2, combinatorics.MaxSize)
//	if err != nil { ... }
//	for {
//	    fmt.Println(lc.Current()) // [A] [B] [C] [A A] [A B] [A C] [B C]
//	    if !lc.Next() {
//	        break
//	    }
//	}
//
// Complexity:
//
//   - New: O(n log n) over n total atoms (key sort + encoding).
//   - Next: O(d) over d distinct atoms, zero allocations.
//   - Current: O(k log k) over draw size k (decode + sort).
//
// Errors:
//
//   - ErrNoAtoms: nil/empty availability, or no positive multiplicity.
//   - combinatorics.ErrNegativeSize: negative draw size.
//   - combinatorics.ErrUnknownMode: mode outside the three constants.
//
// Generators are not safe for concurrent use; give each goroutine its own.
package limited

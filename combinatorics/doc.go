// Package combinatorics enumerates combinations and permutations of item
// multisets lazily, through small cursors with a Current/Next contract.
//
// What:
//
//   - Combination[T] walks the distinct sub-multisets of a bag of items
//     under a draw-size Mode: ExactSize (length == size), MinSize
//     (length ≥ size) or MaxSize (length ≤ size). Repeated items are
//     multiplicity, and no draw ever takes more copies of an item than
//     the bag holds.
//   - Permutation[T] walks the distinct orderings of a bag in
//     lexicographic order, duplicates collapsed.
//   - Binomial, CountCombinations and CountPermutations give the closed
//     forms the cursors obey, draw for draw.
//
// Why:
//
//   - Bounded stock: enumerate candidate bundles subject to per-item
//     availability without generating and discarding duplicates.
//   - Large spaces: a cursor holds O(distinct items) state, so spaces far
//     beyond memory can still be walked or partially walked.
//   - Verification: counting functions cross-check that an enumeration
//     was total.
//
// Contract:
//
//	Construction primes the cursor on its first element. Current() is
//	idempotent and returns a fresh slice the caller may keep or mutate.
//	Next() advances and reports whether a further element exists; once
//	false it stays false. Enumerating everything is the do-while shape:
//
//	  for {
//	      use(c.Current())
//	      if !c.Next() {
//	          break
//	      }
//	  }
//
// Complexity:
//
//   - Combination: Next O(d), Current O(k)   (d = distinct items, k = draw size).
//   - Permutation: Next O(n), Current O(n)   (n = bag size).
//   - CountCombinations: O(d·n²) big-integer steps.
//
// Errors:
//
//   - ErrNoItems: the bag to draw from is empty.
//   - ErrNegativeSize: the draw size is negative.
//   - ErrUnknownMode: the Mode is not ExactSize, MinSize or MaxSize.
//
// Cursors are not safe for concurrent use; wrap access in a mutex or give
// each goroutine its own cursor.
package combinatorics

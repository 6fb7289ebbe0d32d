// Package basenumeric is a small toolbox for enumerating and counting
// combinations of limited resources: typed atoms with per-type
// availability, walked lazily through cursor generators.
//
// 🚀 What is base-numeric?
//
//	A focused library for bounded multiset combinatorics:
//		• Typed drawing: enumerate combinations of atoms (strings, ints,
//		  anything ordered) from an availability map, duplicates collapsed
//		• Size modes: draws of exactly, at least, or at most a given size
//		• Lazy cursors: Current/Next generators holding O(distinct) state,
//		  so huge spaces stream instead of materializing
//		• Counting: closed-form totals matching every enumeration draw
//		  for draw
//		• Permutations: distinct orderings of a multiset in lexicographic
//		  order
//
// ✨ Why choose base-numeric?
//
//   - Canonical results – deterministic order across runs, sorted draws
//   - Honest limits – no draw ever exceeds an atom's availability
//   - Predictable exhaustion – Next reports false once, then stays false
//   - Verified totality – counting functions double as test oracles
//
// Everything is organized under three subpackages plus a CLI:
//
//	multiset/       — the availability map model (Multiset[T], cardinality, subset checks)
//	combinatorics/  — plain combination & permutation cursors, modes, counting
//	limited/        — typed layer: atoms ↔ compact codes, clamping, canonical draws
//	cmd/combinate/  — enumerate or count from a YAML spec, with progress and reports
//
// Quick taste:
//
//	avail := multiset.Multiset[string]{"A": 2, "B": 1, "C": 1}
//	lc, _ := limited.New(avail, 2, combinatorics.MaxSize)
//	// [A] [B] [C] [A A] [A B] [A C] [B C]
//
//	go get github.com/Brazilian-Institute-of-Robotics/base-numeric
package basenumeric

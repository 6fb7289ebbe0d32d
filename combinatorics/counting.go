package combinatorics

import (
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

// Binomial returns C(n, k), the number of k-element subsets of an n-element
// set. Out-of-range arguments (negative, or k > n) count as 0 rather than
// panicking, so the function is total.
func Binomial(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return combin.Binomial(n, k)
}

// CountCombinations returns the number of combinations a Combination cursor
// built from the same per-element multiplicities, draw size and mode will
// emit. It is the closed-form counterpart of enumeration: the coefficients
// of ∏ᵢ(1+x+…+x^cᵢ) summed over the size range the mode selects, with the
// same clamping rules the cursor applies.
//
// The function is total: negative multiplicities count as 0, a bag with no
// items counts 0 for every mode, negative sizes and unknown modes count 0.
//
// Complexity: O(d·n²) time, O(n) big.Int coefficients
// (d = distinct elements, n = total multiplicity).
func CountCombinations(counts []int, size int, mode Mode) *big.Int {
	total := 0
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	out := new(big.Int)
	if total == 0 || size < 0 {
		return out
	}
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
		return out
	}

	coeffs := drawPolynomial(counts, total)
	for k := lo; k <= hi; k++ {
		out.Add(out, coeffs[k])
	}
	return out
}

// drawPolynomial expands ∏ᵢ(1+x+…+x^cᵢ) over the positive multiplicities;
// coefficient k is the number of distinct draws of size k.
func drawPolynomial(counts []int, total int) []*big.Int {
	coeffs := make([]*big.Int, total+1)
	coeffs[0] = big.NewInt(1)
	for i := 1; i <= total; i++ {
		coeffs[i] = new(big.Int)
	}
	degree := 0
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		degree += c
		// multiply in place, highest coefficient first
		for d := degree; d >= 0; d-- {
			sum := new(big.Int)
			for t := 0; t <= c && t <= d; t++ {
				sum.Add(sum, coeffs[d-t])
			}
			coeffs[d] = sum
		}
	}
	return coeffs
}

// CountPermutations returns the number of distinct orderings of the full
// bag: n!/∏cᵢ! over the positive multiplicities, computed as a product of
// binomials to stay in integers at every step. An empty bag counts 0.
func CountPermutations(counts []int) *big.Int {
	out := new(big.Int)
	n := int64(0)
	first := true
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		n += int64(c)
		choose := new(big.Int).Binomial(n, int64(c))
		if first {
			out.Set(choose)
			first = false
		} else {
			out.Mul(out, choose)
		}
	}
	return out
}

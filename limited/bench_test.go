package limited_test

import (
	"fmt"
	"testing"

	"github.com/Brazilian-Institute-of-Robotics/base-numeric/combinatorics"
	"github.com/Brazilian-Institute-of-Robotics/base-numeric/limited"
	"github.com/Brazilian-Institute-of-Robotics/base-numeric/multiset"
)

// stock builds an availability map of d distinct string atoms, each with
// multiplicity m.
func stock(d, m int) multiset.Multiset[string] {
	avail := make(multiset.Multiset[string], d)
	for i := 0; i < d; i++ {
		avail[fmt.Sprintf("atom%02d", i)] = m
	}
	return avail
}

// BenchmarkNew measures construction: key sort, code assignment and
// priming of the first draw.
func BenchmarkNew(b *testing.B) {
	avail := stock(64, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := limited.New(avail, 8, combinatorics.ExactSize); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCombination_FullWalk drains a 6-kind × 3-copy depot across all
// draw sizes, decoding every draw.
func BenchmarkCombination_FullWalk(b *testing.B) {
	avail := stock(6, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lc, err := limited.New(avail, 0, combinatorics.MinSize)
		if err != nil {
			b.Fatal(err)
		}
		for {
			_ = lc.Current()
			if !lc.Next() {
				break
			}
		}
	}
}

// BenchmarkCombination_Current isolates decode + sort of the active draw.
func BenchmarkCombination_Current(b *testing.B) {
	lc, err := limited.New(stock(8, 4), 16, combinatorics.ExactSize)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lc.Current()
	}
}

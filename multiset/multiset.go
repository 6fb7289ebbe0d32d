package multiset

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Multiset is a named map type: element → multiplicity.
//
// Multiplicities at or below zero mean "absent". Methods never produce such
// entries themselves; Normalize removes ones introduced by direct map writes.
type Multiset[T cmp.Ordered] map[T]int

// FromSlice tallies items into a fresh Multiset.
func FromSlice[T cmp.Ordered](items []T) Multiset[T] {
	m := make(Multiset[T], len(items))
	for _, e := range items {
		m[e]++
	}
	return m
}

// Cardinality returns the sum of all positive multiplicities.
// A nil or empty Multiset has cardinality 0.
func (m Multiset[T]) Cardinality() int {
	total := 0
	for _, n := range m {
		if n > 0 {
			total += n
		}
	}
	return total
}

// Count returns the multiplicity of e, clamped at 0.
func (m Multiset[T]) Count(e T) int {
	if n := m[e]; n > 0 {
		return n
	}
	return 0
}

// Contains reports whether e has positive multiplicity.
func (m Multiset[T]) Contains(e T) bool { return m[e] > 0 }

// Add raises the multiplicity of e by one.
func (m Multiset[T]) Add(e T) { m.AddN(e, 1) }

// AddN raises the multiplicity of e by n. Negative n lowers it;
// the entry is deleted once the multiplicity drops to zero or below.
func (m Multiset[T]) AddN(e T, n int) {
	if c := m[e] + n; c > 0 {
		m[e] = c
	} else {
		delete(m, e)
	}
}

// Remove lowers the multiplicity of e by one, deleting the entry at zero.
func (m Multiset[T]) Remove(e T) { m.AddN(e, -1) }

// SubsetOf reports whether every multiplicity in m is covered by other.
func (m Multiset[T]) SubsetOf(other Multiset[T]) bool {
	for e, n := range m {
		if n > 0 && n > other[e] {
			return false
		}
	}
	return true
}

// Equal reports whether m and other hold the same elements with the same
// positive multiplicities. Absent entries compare equal to zero ones.
func (m Multiset[T]) Equal(other Multiset[T]) bool {
	return m.SubsetOf(other) && other.SubsetOf(m)
}

// Elements returns the distinct elements with positive multiplicity,
// in ascending order.
func (m Multiset[T]) Elements() []T {
	es := make([]T, 0, len(m))
	for e, n := range m {
		if n > 0 {
			es = append(es, e)
		}
	}
	slices.Sort(es)
	return es
}

// Expand returns every element repeated by its multiplicity, in ascending
// element order. len(Expand()) == Cardinality().
func (m Multiset[T]) Expand() []T {
	xs := make([]T, 0, m.Cardinality())
	for _, e := range m.Elements() {
		for i := 0; i < m[e]; i++ {
			xs = append(xs, e)
		}
	}
	return xs
}

// Clone returns a fresh Multiset holding only the positive entries of m.
func (m Multiset[T]) Clone() Multiset[T] {
	c := make(Multiset[T], len(m))
	for e, n := range m {
		if n > 0 {
			c[e] = n
		}
	}
	return c
}

// Normalize deletes entries with zero or negative multiplicity in place.
func (m Multiset[T]) Normalize() {
	for e, n := range m {
		if n <= 0 {
			delete(m, e)
		}
	}
}

// String renders the Multiset as "{A:2, B:1}" with elements sorted.
func (m Multiset[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.Elements() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%d", e, m[e])
	}
	b.WriteByte('}')
	return b.String()
}

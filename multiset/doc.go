// Package multiset provides a map-based multiset, the availability model
// shared by the enumeration packages of this module.
//
// A Multiset is an unordered collection of distinct elements, each carrying
// a multiplicity. It is a thin, typed layer over a Go map: construct one
// with a literal, FromSlice, or make, and manipulate it like any other map.
// Entries with zero or negative multiplicity are treated as absent; call
// Normalize to drop them physically after direct map writes.
//
// Reading operations (Cardinality, Count, Contains, SubsetOf, Equal,
// Elements, Expand, Clone, String) are safe on a nil Multiset.
//
// Elements and Expand report contents in ascending element order, which is
// what makes enumeration results over a Multiset reproducible.
package multiset

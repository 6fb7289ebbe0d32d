// Package combinatorics defines modes and sentinel errors for the
// combination and permutation walkers.
package combinatorics

import (
	"errors"
	"fmt"
	"strings"
)

// Mode controls how a draw size bounds the combinations a walker emits.
//
//   - ExactSize — combinations of exactly size items.
//   - MinSize   — combinations of size items or more, up to the whole bag.
//   - MaxSize   — combinations of up to size items (the empty draw excluded).
type Mode int

const (
	// ExactSize emits combinations whose length equals the draw size.
	ExactSize Mode = iota

	// MinSize emits combinations whose length is at least the draw size.
	MinSize

	// MaxSize emits combinations whose length is 1..size.
	MaxSize
)

// String returns the canonical spelling: EXACT, MIN or MAX.
func (m Mode) String() string {
	switch m {
	case ExactSize:
		return "EXACT"
	case MinSize:
		return "MIN"
	case MaxSize:
		return "MAX"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive spelling (EXACT, MIN, MAX) onto its Mode.
// Unknown spellings return ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EXACT":
		return ExactSize, nil
	case "MIN":
		return MinSize, nil
	case "MAX":
		return MaxSize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

var (
	// ErrNoItems indicates the item multiset to draw from is empty.
	ErrNoItems = errors.New("combinatorics: item multiset is empty")

	// ErrNegativeSize indicates a negative draw size.
	ErrNegativeSize = errors.New("combinatorics: draw size must be non-negative")

	// ErrUnknownMode indicates a Mode outside ExactSize, MinSize and MaxSize.
	ErrUnknownMode = errors.New("combinatorics: unknown size mode")
)

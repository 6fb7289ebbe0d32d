// Package limited defines the error values for bounded-availability drawing.
package limited

import "errors"

// ErrNoAtoms indicates an availability map with nothing to draw from:
// nil, empty, or holding no positive multiplicity.
var ErrNoAtoms = errors.New("limited: availability map has no atoms to draw from")

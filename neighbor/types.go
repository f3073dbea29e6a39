// SPDX-License-Identifier: MIT

package neighbor

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wcsro/geom"
)

// Sentinel errors for neighbor enumeration. Match with errors.Is.
var (
	// ErrNoPositions indicates an empty position slice.
	ErrNoPositions = errors.New("neighbor: no positions")
	// ErrInvalidCutoff indicates cutoff ≤ 0 or a non-finite cutoff.
	ErrInvalidCutoff = errors.New("neighbor: cutoff must be finite and > 0")
	// ErrInvalidPosition indicates a NaN or Inf coordinate.
	ErrInvalidPosition = errors.New("neighbor: non-finite position")
	// ErrDegenerateCell indicates a periodic cell without usable volume.
	ErrDegenerateCell = errors.New("neighbor: degenerate cell")
	// ErrIndexOutOfRange indicates a query index outside [0, N).
	ErrIndexOutOfRange = errors.New("neighbor: atom index out of range")
)

// Neighbor is one entry of a query result.
//
// Delta points from the query atom to the neighbor image, so
// Distance == Delta.Norm().
type Neighbor struct {
	Index    int
	Distance float64
	Delta    geom.Vec3
}

// binKey addresses one cubic bin of edge length cutoff.
type binKey [3]int

// stencil lists the 27 bin offsets around (and including) a bin.
var stencil = func() []binKey {
	out := make([]binKey, 0, 27)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				out = append(out, binKey{dx, dy, dz})
			}
		}
	}
	return out
}()

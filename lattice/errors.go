// SPDX-License-Identifier: MIT
// Package: wcsro/lattice
//
// errors.go — sentinel errors for the lattice package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Build attaches method context by wrapping; sentinel text never changes.
//   • Option constructors panic on programmer error instead of returning these.

package lattice

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrBadSize indicates a supercell repeat count below 1.
var ErrBadSize = errors.New("lattice: repeat counts must be ≥ 1")

// ErrBadLatticeConstant indicates a lattice constant ≤ 0 or non-finite.
var ErrBadLatticeConstant = errors.New("lattice: lattice constant must be finite and > 0")

// ErrUnknownKind indicates an unsupported Bravais lattice.
var ErrUnknownKind = errors.New("lattice: unknown lattice kind")

// ErrBadComposition indicates fractions that are negative, do not sum to 1,
// reference undeclared species, or are combined with WithSublattices.
var ErrBadComposition = errors.New("lattice: invalid composition")

// ErrNeedRandSource indicates WithComposition without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("lattice: rng is required")

// latticeErrorf prefixes a wrapped sentinel with the method name.
func latticeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, "%s: %s", method, fmt.Sprintf(format, args...))
}

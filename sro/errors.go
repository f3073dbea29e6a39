// SPDX-License-Identifier: MIT
// Package sro: sentinel error set.
//
// Fatal errors (Compute returns nil, err) are all marked ErrInvalidInput so a
// caller can branch on the class first and the precise cause second.
// ErrZeroConcentration is never returned by Compute; it is recorded on the
// affected PairResult and surfaced through Result.Err.

package sro

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wcsro/structure"
)

var (
	// ErrInvalidInput classifies every fatal input problem, including cell
	// degeneracy surfaced by the neighbor enumerator.
	ErrInvalidInput = errors.New("sro: invalid input")

	// ErrInvalidCutoff indicates minCutoff < 0, maxCutoff ≤ 0,
	// minCutoff ≥ maxCutoff or a non-finite cutoff.
	ErrInvalidCutoff = errors.New("sro: invalid cutoff")

	// ErrZeroConcentration indicates the second species of a pair has no
	// atoms, leaving α undefined for the whole pair.
	ErrZeroConcentration = errors.New("sro: zero concentration")

	// ErrSink indicates the configured Sink rejected a write.
	ErrSink = errors.New("sro: sink rejected result")
)

// Structure-level sentinels re-exported for callers that only import sro.
var (
	// ErrEmptyStructure aliases structure.ErrEmptyStructure.
	ErrEmptyStructure = structure.ErrEmptyStructure
	// ErrMissingSpecies aliases structure.ErrMissingSpecies.
	ErrMissingSpecies = structure.ErrMissingSpecies
	// ErrDuplicateLabel aliases structure.ErrDuplicateLabel.
	ErrDuplicateLabel = structure.ErrDuplicateLabel
)

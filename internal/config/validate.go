package config

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wcsro/internal/logger"
	"github.com/katalvlaran/wcsro/lattice"
)

// ErrInvalidConfig marks every validation failure
var ErrInvalidConfig = errors.New("config: invalid configuration")

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}

// Validate checks that the configuration is usable. Physics-level checks
// (composition sums, cutoff ordering) are repeated by lattice.Build and
// sro.Compute; this pass only rejects values no run could accept.
func (c *Config) Validate() error {
	// Lattice
	if _, err := lattice.ParseKind(c.Lattice.Kind); err != nil {
		return invalid("lattice.kind %q must be sc, bcc or fcc", c.Lattice.Kind)
	}
	if !(c.Lattice.Constant > 0) || math.IsInf(c.Lattice.Constant, 0) {
		return invalid("lattice.constant must be > 0, got %g", c.Lattice.Constant)
	}
	if len(c.Lattice.Repeats) != 3 {
		return invalid("lattice.repeats needs 3 entries, got %d", len(c.Lattice.Repeats))
	}
	for k, n := range c.Lattice.Repeats {
		if n < 1 {
			return invalid("lattice.repeats[%d] must be >= 1, got %d", k, n)
		}
	}
	if len(c.Lattice.Species) == 0 {
		return invalid("lattice.species cannot be empty")
	}
	if len(c.Lattice.Composition) > 0 && len(c.Lattice.Sublattices) > 0 {
		return invalid("lattice.composition and lattice.sublattices are exclusive")
	}
	for k, id := range c.Lattice.Sublattices {
		if id < 0 || id >= len(c.Lattice.Species) {
			return invalid("lattice.sublattices[%d]=%d is not a declared species", k, id)
		}
	}
	if len(c.Lattice.PBC) != 3 {
		return invalid("lattice.pbc needs 3 entries, got %d", len(c.Lattice.PBC))
	}

	// SRO: zero means zero for min_cutoff and workers (GOMAXPROCS)
	if c.SRO.MinCutoff < 0 {
		return invalid("sro.min_cutoff must be >= 0, got %g", c.SRO.MinCutoff)
	}
	if c.SRO.MaxCutoff <= 0 {
		return invalid("sro.max_cutoff must be > 0, got %g", c.SRO.MaxCutoff)
	}
	if c.SRO.Shell < 1 {
		return invalid("sro.shell must be >= 1, got %d", c.SRO.Shell)
	}
	if c.SRO.Workers < 0 {
		return invalid("sro.workers must be >= 0, got %d", c.SRO.Workers)
	}
	if !(c.SRO.CellEpsilon >= 0) || math.IsInf(c.SRO.CellEpsilon, 0) {
		return invalid("sro.cell_epsilon must be finite and >= 0, got %g", c.SRO.CellEpsilon)
	}

	// Output
	switch strings.ToLower(c.Output.Format) {
	case FormatYAML, FormatJSON:
	default:
		return invalid("output.format must be yaml or json, got %q", c.Output.Format)
	}

	// Logging
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level %q", c.Log.Level)
	}

	return nil
}

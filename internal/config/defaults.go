package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/wcsro/geom"
)

// EnvPrefix is prepended to every environment override, e.g.
// WCSRO_SRO_MAX_CUTOFF for sro.max_cutoff.
const EnvPrefix = "WCSRO"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Lattice defaults: equiatomic binary FCC, 256 sites
	v.SetDefault("lattice.kind", "fcc")
	v.SetDefault("lattice.constant", 3.6)
	v.SetDefault("lattice.repeats", []int{4, 4, 4})
	v.SetDefault("lattice.species", []string{"A", "B"})
	v.SetDefault("lattice.composition", []float64{}) // empty with no sublattices = equiatomic
	v.SetDefault("lattice.sublattices", []int{})
	v.SetDefault("lattice.seed", 1)
	v.SetDefault("lattice.pbc", []bool{true, true, true})

	// SRO defaults: first FCC shell for a = 3.6 (2.55 < 3.0 < 3.6)
	v.SetDefault("sro.min_cutoff", 0.0)
	v.SetDefault("sro.max_cutoff", 3.0)
	v.SetDefault("sro.shell", 1)
	v.SetDefault("sro.workers", 0)
	v.SetDefault("sro.cell_epsilon", geom.DefaultEpsilon)

	// Output defaults
	v.SetDefault("output.format", FormatYAML)
	v.SetDefault("output.path", "")
	v.SetDefault("output.per_atom", false)

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

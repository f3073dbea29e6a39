// Package config loads the run configuration of the wcsro command from
// defaults, an optional TOML or YAML file and WCSRO_* environment variables.
package config

// Config represents one SRO run
type Config struct {
	Lattice LatticeConfig `mapstructure:"lattice"`
	SRO     SROConfig     `mapstructure:"sro"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
}

// LatticeConfig describes the generated supercell
type LatticeConfig struct {
	Kind        string    `mapstructure:"kind"`        // sc, bcc or fcc
	Constant    float64   `mapstructure:"constant"`    // lattice constant a
	Repeats     []int     `mapstructure:"repeats"`     // nx, ny, nz
	Species     []string  `mapstructure:"species"`     // names in ID order
	Composition []float64 `mapstructure:"composition"` // random solid solution fractions
	Sublattices []int     `mapstructure:"sublattices"` // species per basis site (ordered phases)
	Seed        int64     `mapstructure:"seed"`        // shuffle seed for composition
	PBC         []bool    `mapstructure:"pbc"`         // periodicity per axis
}

// SROConfig configures the neighbor shell
type SROConfig struct {
	MinCutoff float64 `mapstructure:"min_cutoff"`
	MaxCutoff float64 `mapstructure:"max_cutoff"`
	Shell     int     `mapstructure:"shell"`   // label index only
	Workers   int     `mapstructure:"workers"` // 0 = GOMAXPROCS

	// CellEpsilon is the relative volume tolerance below which a periodic
	// cell is rejected as degenerate
	CellEpsilon float64 `mapstructure:"cell_epsilon"`
}

// OutputConfig controls the report
type OutputConfig struct {
	Format  string `mapstructure:"format"`   // yaml or json
	Path    string `mapstructure:"path"`     // empty = stdout
	PerAtom bool   `mapstructure:"per_atom"` // include per-atom values
}

// LogConfig controls the CLI logger
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Output formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// SPDX-License-Identifier: MIT
// Package: wcsro/lattice
//
// options.go — functional options and the resolved build configuration.
//
// Deterministic defaults:
//   • species     = one species, ID 0, name "A"
//   • sublattices = nil (uniform species 0)
//   • composition = nil
//   • rng         = nil (no randomness unless seeded)
//   • pbc         = periodic on all three axes

package lattice

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/wcsro/structure"
)

const defaultSpeciesName = "A"

// Option customizes Build by mutating the config before construction.
type Option func(*config)

type config struct {
	species     []structure.Species
	sublattices []structure.SpeciesID
	composition []float64
	rng         *rand.Rand
	pbc         [3]bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		species: []structure.Species{{ID: 0, Name: defaultSpeciesName}},
		pbc:     [3]bool{true, true, true},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSpecies declares the species registry: names[k] gets ID k.
// Panics when called without names.
func WithSpecies(names ...string) Option {
	if len(names) == 0 {
		panic("lattice: WithSpecies()")
	}
	sp := make([]structure.Species, len(names))
	for k, n := range names {
		sp[k] = structure.Species{ID: structure.SpeciesID(k), Name: n}
	}
	return func(c *config) { c.species = sp }
}

// WithSublattices assigns basis site b the species ids[b mod len(ids)].
// Panics on an empty list or a negative ID.
func WithSublattices(ids ...structure.SpeciesID) Option {
	if len(ids) == 0 {
		panic("lattice: WithSublattices()")
	}
	for _, id := range ids {
		if id < 0 {
			panic("lattice: WithSublattices(id<0)")
		}
	}
	cp := append([]structure.SpeciesID(nil), ids...)
	return func(c *config) { c.sublattices = cp }
}

// WithComposition requests a random solid solution where species k takes
// fractions[k] of the sites. Panics on an empty list or NaN/Inf entries;
// range and sum are checked by Build.
func WithComposition(fractions ...float64) Option {
	if len(fractions) == 0 {
		panic("lattice: WithComposition()")
	}
	for _, f := range fractions {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			panic("lattice: WithComposition(non-finite)")
		}
	}
	cp := append([]float64(nil), fractions...)
	return func(c *config) { c.composition = cp }
}

// WithSeed attaches a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("lattice: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithPBC sets periodic boundaries per axis.
func WithPBC(x, y, z bool) Option {
	return func(c *config) { c.pbc = [3]bool{x, y, z} }
}

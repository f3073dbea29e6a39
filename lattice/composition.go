// SPDX-License-Identifier: MIT
// Package: wcsro/lattice
//
// composition.go — species assignment strategies.

package lattice

import (
	"math"
	"sort"

	"github.com/katalvlaran/wcsro/structure"
)

// compositionTol bounds |Σ fractions − 1|.
const compositionTol = 1e-9

// assignSpecies resolves the species of every site from cfg.
// sites[k] is the basis index of site k.
func assignSpecies(cfg config, sites []int) ([]structure.SpeciesID, error) {
	out := make([]structure.SpeciesID, len(sites))

	switch {
	case cfg.composition != nil && cfg.sublattices != nil:
		return nil, latticeErrorf(methodBuild, ErrBadComposition, "WithComposition and WithSublattices are exclusive")

	case cfg.sublattices != nil:
		for k, b := range sites {
			out[k] = cfg.sublattices[b%len(cfg.sublattices)]
		}

	case cfg.composition != nil:
		if cfg.rng == nil {
			return nil, latticeErrorf(methodBuild, ErrNeedRandSource, "WithComposition needs WithSeed or WithRand")
		}
		counts, err := exactCounts(cfg.composition, len(cfg.species), len(sites))
		if err != nil {
			return nil, err
		}
		k := 0
		for id, c := range counts {
			for ; c > 0; c-- {
				out[k] = structure.SpeciesID(id)
				k++
			}
		}
		cfg.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}

	return out, nil
}

// exactCounts turns fractions into integer counts summing to n using
// largest-remainder rounding; ties go to the lower species ID.
func exactCounts(fractions []float64, declared, n int) ([]int, error) {
	if len(fractions) > declared {
		return nil, latticeErrorf(methodBuild, ErrBadComposition,
			"%d fractions for %d declared species", len(fractions), declared)
	}
	sum := 0.0
	for id, f := range fractions {
		if f < 0 {
			return nil, latticeErrorf(methodBuild, ErrBadComposition, "fraction[%d]=%g < 0", id, f)
		}
		sum += f
	}
	if math.Abs(sum-1) > compositionTol {
		return nil, latticeErrorf(methodBuild, ErrBadComposition, "fractions sum to %g", sum)
	}

	counts := make([]int, len(fractions))
	type rem struct {
		id int
		r  float64
	}
	rems := make([]rem, len(fractions))
	assigned := 0
	for id, f := range fractions {
		exact := f * float64(n)
		counts[id] = int(math.Floor(exact))
		assigned += counts[id]
		rems[id] = rem{id: id, r: exact - float64(counts[id])}
	}
	sort.SliceStable(rems, func(i, j int) bool { return rems[i].r > rems[j].r })
	for k := 0; assigned < n; k++ {
		counts[rems[k%len(rems)].id]++
		assigned++
	}

	return counts, nil
}

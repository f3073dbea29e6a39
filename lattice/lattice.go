// SPDX-License-Identifier: MIT
// Package: wcsro/lattice
//
// lattice.go — Build(kind, a, nx, ny, nz) supercell constructor.
//
// Contract:
//   • nx, ny, nz ≥ 1 (else ErrBadSize); a finite and > 0 (else ErrBadLatticeConstant).
//   • Sites are emitted cell by cell (z, y, x ascending), basis order inside.
//   • The cell is orthorhombic with edges nx·a, ny·a, nz·a at the origin.
//   • Species follow the strategy described in doc.go.
//
// Complexity:
//   • Time O(nx·ny·nz·|basis|), Space O(same) for the returned atoms.

package lattice

import (
	"math"
	"strings"

	"github.com/katalvlaran/wcsro/geom"
	"github.com/katalvlaran/wcsro/structure"
)

const methodBuild = "Build"

// Kind selects a cubic Bravais lattice.
type Kind int

const (
	// SC is simple cubic: 1 site per cell.
	SC Kind = iota
	// BCC is body-centred cubic: 2 sites per cell.
	BCC
	// FCC is face-centred cubic: 4 sites per cell.
	FCC
)

// String returns the lower-case name used by ParseKind.
func (k Kind) String() string {
	switch k {
	case SC:
		return "sc"
	case BCC:
		return "bcc"
	case FCC:
		return "fcc"
	}
	return "unknown"
}

// ParseKind maps "sc", "bcc" or "fcc" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sc":
		return SC, nil
	case "bcc":
		return BCC, nil
	case "fcc":
		return FCC, nil
	}
	return 0, latticeErrorf("ParseKind", ErrUnknownKind, "%q", s)
}

// Basis returns the fractional basis of k, or nil for an unknown kind.
func (k Kind) Basis() []geom.Vec3 {
	switch k {
	case SC:
		return []geom.Vec3{{}}
	case BCC:
		return []geom.Vec3{{}, {X: 0.5, Y: 0.5, Z: 0.5}}
	case FCC:
		return []geom.Vec3{{}, {Y: 0.5, Z: 0.5}, {X: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5}}
	}
	return nil
}

// NearestNeighborDistance returns the first-shell distance for lattice
// constant a: a (SC), a·√3/2 (BCC), a/√2 (FCC).
func (k Kind) NearestNeighborDistance(a float64) float64 {
	switch k {
	case BCC:
		return a * math.Sqrt(3) / 2
	case FCC:
		return a / math.Sqrt2
	}
	return a
}

// Build returns an nx×ny×nz supercell of kind with lattice constant a.
func Build(kind Kind, a float64, nx, ny, nz int, opts ...Option) (*structure.Structure, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters early; no partial work.
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, latticeErrorf(methodBuild, ErrBadSize, "nx=%d, ny=%d, nz=%d", nx, ny, nz)
	}
	if !(a > 0) || math.IsInf(a, 0) {
		return nil, latticeErrorf(methodBuild, ErrBadLatticeConstant, "a=%g", a)
	}
	basis := kind.Basis()
	if basis == nil {
		return nil, latticeErrorf(methodBuild, ErrUnknownKind, "kind=%d", int(kind))
	}

	// 2) Emit sites in deterministic order.
	n := nx * ny * nz * len(basis)
	positions := make([]geom.Vec3, 0, n)
	sites := make([]int, 0, n) // basis index per site
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				for b, f := range basis {
					positions = append(positions, geom.Vec3{
						X: (float64(x) + f.X) * a,
						Y: (float64(y) + f.Y) * a,
						Z: (float64(z) + f.Z) * a,
					})
					sites = append(sites, b)
				}
			}
		}
	}

	// 3) Assign species.
	species, err := assignSpecies(cfg, sites)
	if err != nil {
		return nil, err
	}

	cell := geom.NewOrthorhombic(float64(nx)*a, float64(ny)*a, float64(nz)*a, cfg.pbc)
	registry := append([]structure.Species(nil), cfg.species...)

	return structure.New(cell, positions, species, registry...), nil
}

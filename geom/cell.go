// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrDegenerateCell indicates cell vectors that span (nearly) zero volume or
// carry NaN/Inf components. Wrapping callers keep errors.Is working.
var ErrDegenerateCell = errors.New("geom: degenerate cell")

// DefaultEpsilon is the relative volume tolerance used by Validate:
// a cell is degenerate when |det| ≤ eps·|A|·|B|·|C|.
const DefaultEpsilon = 1e-9

// Cell is a parallelepiped spanned by A, B and C, anchored at Origin.
// PBC[k] enables periodic wraparound along the k-th cell vector.
// Cell is treated as immutable once handed to a consumer.
type Cell struct {
	A, B, C Vec3
	Origin  Vec3
	PBC     [3]bool
}

// NewOrthorhombic returns an axis-aligned box of edge lengths lx, ly, lz
// anchored at the origin, periodic along every axis flagged in pbc.
func NewOrthorhombic(lx, ly, lz float64, pbc [3]bool) *Cell {
	return &Cell{
		A:   Vec3{X: lx},
		B:   Vec3{Y: ly},
		C:   Vec3{Z: lz},
		PBC: pbc,
	}
}

// NewTriclinic returns a general cell from three spanning vectors.
func NewTriclinic(a, b, c, origin Vec3, pbc [3]bool) *Cell {
	return &Cell{A: a, B: b, C: c, Origin: origin, PBC: pbc}
}

// Vector returns the k-th cell vector (0→A, 1→B, 2→C).
func (c *Cell) Vector(k int) Vec3 {
	switch k {
	case 0:
		return c.A
	case 1:
		return c.B
	default:
		return c.C
	}
}

// Periodic reports whether any axis is periodic.
func (c *Cell) Periodic() bool {
	return c.PBC[0] || c.PBC[1] || c.PBC[2]
}

// Volume returns the signed volume A·(B×C).
func (c *Cell) Volume() float64 {
	return c.A.Dot(c.B.Cross(c.C))
}

// Validate checks that the cell spans a non-degenerate volume under the
// relative tolerance eps. Negative eps is treated as DefaultEpsilon.
// Complexity: O(1).
func (c *Cell) Validate(eps float64) error {
	if eps < 0 {
		eps = DefaultEpsilon
	}
	if !c.A.IsFinite() || !c.B.IsFinite() || !c.C.IsFinite() || !c.Origin.IsFinite() {
		return errors.Wrap(ErrDegenerateCell, "non-finite cell vector")
	}
	scale := c.A.Norm() * c.B.Norm() * c.C.Norm()
	vol := math.Abs(c.Volume())
	if scale == 0 || vol <= eps*scale {
		return errors.Wrapf(ErrDegenerateCell, "volume %g", vol)
	}

	return nil
}

// ToFractional converts a Cartesian position to fractional coordinates.
// The caller must have validated the cell; a zero volume yields Inf/NaN.
func (c *Cell) ToFractional(r Vec3) Vec3 {
	d := r.Sub(c.Origin)
	inv := 1 / c.Volume()
	return Vec3{
		X: d.Dot(c.B.Cross(c.C)) * inv,
		Y: d.Dot(c.C.Cross(c.A)) * inv,
		Z: d.Dot(c.A.Cross(c.B)) * inv,
	}
}

// ToCartesian converts fractional coordinates back to a Cartesian position.
func (c *Cell) ToCartesian(f Vec3) Vec3 {
	return c.Origin.
		Add(c.A.Scale(f.X)).
		Add(c.B.Scale(f.Y)).
		Add(c.C.Scale(f.Z))
}

// Translation returns the Cartesian shift of the periodic image (i, j, k).
func (c *Cell) Translation(i, j, k int) Vec3 {
	return c.A.Scale(float64(i)).
		Add(c.B.Scale(float64(j))).
		Add(c.C.Scale(float64(k)))
}

// Wrap maps r into the primary image along periodic axes. Fractional
// coordinates on periodic axes end up in [0, 1).
func (c *Cell) Wrap(r Vec3) Vec3 {
	if !c.Periodic() {
		return r
	}
	f := c.ToFractional(r)
	f.X = wrapUnit(f.X, c.PBC[0])
	f.Y = wrapUnit(f.Y, c.PBC[1])
	f.Z = wrapUnit(f.Z, c.PBC[2])

	return c.ToCartesian(f)
}

// PerpendicularWidths returns the distances between opposite faces,
// i.e. V/|B×C|, V/|C×A| and V/|A×B|.
func (c *Cell) PerpendicularWidths() [3]float64 {
	vol := math.Abs(c.Volume())
	var w [3]float64
	for k := range w {
		w[k] = vol / c.Vector((k+1)%3).Cross(c.Vector((k+2)%3)).Norm()
	}
	return w
}

// wrapUnit folds x into [0,1) when periodic.
func wrapUnit(x float64, periodic bool) float64 {
	if !periodic {
		return x
	}
	x -= math.Floor(x)
	// floor(-tiny) == -1 leaves x == 1 after rounding
	if x >= 1 {
		x = 0
	}
	return x
}

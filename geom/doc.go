// Package geom holds the small amount of 3D geometry the SRO engine needs:
// a Vec3 value type and a Cell describing the simulation box.
//
// What:
//
//   - Vec3: value-semantics 3-vector with the usual algebra (Add, Sub, Scale,
//     Dot, Cross, Norm, Norm2).
//   - Cell: three cell vectors spanning a parallelepiped, an origin and
//     per-axis periodic boundary flags.
//
// Cell conventions:
//
//   - Fractional coordinates f satisfy r = Origin + f.X·A + f.Y·B + f.Z·C.
//   - Wrap maps a position into the primary image along periodic axes only;
//     aperiodic axes are left untouched.
//   - PerpendicularWidths returns the distance between opposite faces of the
//     cell. It bounds how many periodic images a cutoff sphere can reach.
//
// A nil *Cell is accepted by consumers as "no cell": fully aperiodic space.
//
// Errors:
//
//   - ErrDegenerateCell: cell vectors are (nearly) coplanar or non-finite.
//
// Complexity: every operation here is O(1).
package geom

// Package lattice builds deterministic crystalline configurations for the
// SRO engine: fixtures for tests and examples, and the structure source of
// the wcsro command.
//
// The package offers the following key components:
//
//   - Build(kind, a, nx, ny, nz, opts...): an nx×ny×nz supercell of a cubic
//     Bravais lattice (SC, BCC, FCC) with lattice constant a, wrapped in an
//     orthorhombic cell (periodic by default).
//   - Species assignment strategies:
//     – default:            every site gets species 0.
//     – WithSublattices:    basis site b gets ids[b mod len(ids)]; B2 and
//     L1_2 orderings in one line.
//     – WithComposition:    random solid solution with exact counts drawn
//     from the fractions (largest-remainder rounding) and
//     a seeded shuffle; requires WithSeed or WithRand.
//   - WithSpecies(names...): species registry, IDs 0..len(names)-1.
//
// Guarantees:
//
//   - Deterministic site order: cells z, y, x ascending, then basis order.
//   - Same options and seed ⇒ identical structure.
//   - Option constructors panic on meaningless values; Build returns
//     sentinel errors wrapped with the method context.
//
// Errors:
//
//   - ErrBadSize, ErrBadLatticeConstant, ErrUnknownKind, ErrBadComposition,
//     ErrNeedRandSource.
package lattice

// Package structure defines the typed atomic configuration consumed by the
// neighbor and sro packages.
//
// A Structure is a flat list of Atom records (index, species, position), a
// registry of declared Species and an optional periodic Cell. Species may be
// declared without being present; they still take part in the species set so
// that downstream consumers can report them.
//
// Errors:
//
//   - ErrEmptyStructure:   no atoms.
//   - ErrMissingSpecies:   an atom carries NoSpecies or a negative label.
//   - ErrIndexMismatch:    Atoms[k].Index != k.
//   - ErrDuplicateSpecies: the registry declares an ID twice.
package structure

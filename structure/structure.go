package structure

import (
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/wcsro/geom"
)

// Sentinel errors for structure validation.
var (
	// ErrEmptyStructure indicates a nil structure or one without atoms.
	ErrEmptyStructure = errors.New("structure: no atoms")
	// ErrMissingSpecies indicates an atom without a species label.
	ErrMissingSpecies = errors.New("structure: atom has no species")
	// ErrIndexMismatch indicates Atoms[k].Index differs from k.
	ErrIndexMismatch = errors.New("structure: atom index does not match its position")
	// ErrDuplicateSpecies indicates two registry entries share an ID.
	ErrDuplicateSpecies = errors.New("structure: duplicate species id")
	// ErrDuplicateLabel indicates two species of the species set render the
	// same Label, e.g. two IDs named "Fe", or a name equal to another
	// species' numeric ID.
	ErrDuplicateLabel = errors.New("structure: duplicate species label")
)

// SpeciesID is a numeric species label. Valid labels are ≥ 0.
type SpeciesID int

// NoSpecies marks an atom whose species is unknown.
const NoSpecies SpeciesID = -1

// Species couples a numeric ID with an optional human-readable name.
type Species struct {
	ID   SpeciesID
	Name string
}

// Label returns Name, or the decimal ID when Name is empty.
func (s Species) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return strconv.Itoa(int(s.ID))
}

// Atom is one particle of the configuration.
type Atom struct {
	Index    int
	Species  SpeciesID
	Position geom.Vec3
}

// Structure is an immutable-by-convention atomic configuration.
// Cell may be nil for an aperiodic cluster.
type Structure struct {
	Cell    *geom.Cell
	Atoms   []Atom
	Species []Species
}

// New assembles a Structure from parallel position/species slices, assigning
// Index in order. It does not validate; call Validate before use.
func New(cell *geom.Cell, positions []geom.Vec3, species []SpeciesID, registry ...Species) *Structure {
	atoms := make([]Atom, len(positions))
	for i, p := range positions {
		id := NoSpecies
		if i < len(species) {
			id = species[i]
		}
		atoms[i] = Atom{Index: i, Species: id, Position: p}
	}

	return &Structure{Cell: cell, Atoms: atoms, Species: registry}
}

// Len returns the number of atoms.
func (s *Structure) Len() int {
	return len(s.Atoms)
}

// Validate checks the invariants every consumer relies on.
// Complexity: O(N + S log S).
func (s *Structure) Validate() error {
	if s == nil || len(s.Atoms) == 0 {
		return ErrEmptyStructure
	}
	for k, a := range s.Atoms {
		if a.Index != k {
			return errors.Wrapf(ErrIndexMismatch, "atom %d has index %d", k, a.Index)
		}
		if a.Species < 0 {
			return errors.Wrapf(ErrMissingSpecies, "atom %d", k)
		}
	}
	seen := make(map[SpeciesID]struct{}, len(s.Species))
	for _, sp := range s.Species {
		if _, dup := seen[sp.ID]; dup {
			return errors.Wrapf(ErrDuplicateSpecies, "id %d", sp.ID)
		}
		seen[sp.ID] = struct{}{}
	}
	labels := make(map[string]SpeciesID, len(seen))
	for _, sp := range s.SpeciesSet() {
		if other, dup := labels[sp.Label()]; dup {
			return errors.Wrapf(ErrDuplicateLabel, "ids %d and %d are both %q", other, sp.ID, sp.Label())
		}
		labels[sp.Label()] = sp.ID
	}

	return nil
}

// Positions returns a fresh slice of atom positions in index order.
func (s *Structure) Positions() []geom.Vec3 {
	out := make([]geom.Vec3, len(s.Atoms))
	for i, a := range s.Atoms {
		out[i] = a.Position
	}
	return out
}

// Count returns the number of atoms labelled id.
func (s *Structure) Count(id SpeciesID) int {
	n := 0
	for _, a := range s.Atoms {
		if a.Species == id {
			n++
		}
	}
	return n
}

// Counts returns the per-species atom counts in one pass.
func (s *Structure) Counts() map[SpeciesID]int {
	out := make(map[SpeciesID]int)
	for _, a := range s.Atoms {
		out[a.Species]++
	}
	return out
}

// Concentration returns the fraction of all atoms labelled id.
// An empty structure yields 0.
func (s *Structure) Concentration(id SpeciesID) float64 {
	if len(s.Atoms) == 0 {
		return 0
	}
	return float64(s.Count(id)) / float64(len(s.Atoms))
}

// Lookup returns the registry entry for id. Undeclared IDs come back with an
// empty Name so that Label falls back to the number.
func (s *Structure) Lookup(id SpeciesID) Species {
	for _, sp := range s.Species {
		if sp.ID == id {
			return sp
		}
	}
	return Species{ID: id}
}

// SpeciesSet returns the union of declared and present species sorted by ID.
// The order is stable for a given structure, which keeps pair labels and
// table rows reproducible.
// Complexity: O(N + S log S).
func (s *Structure) SpeciesSet() []Species {
	ids := make(map[SpeciesID]struct{}, len(s.Species))
	for _, sp := range s.Species {
		ids[sp.ID] = struct{}{}
	}
	for _, a := range s.Atoms {
		if a.Species >= 0 {
			ids[a.Species] = struct{}{}
		}
	}

	out := make([]Species, 0, len(ids))
	for id := range ids {
		out = append(out, s.Lookup(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

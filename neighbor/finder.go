package neighbor

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wcsro/geom"
)

// Finder answers fixed-cutoff neighbor queries over an immutable set of
// positions. Build one with NewFinder.
type Finder struct {
	cutoff  float64
	cutoff2 float64
	workers int

	wrapped []geom.Vec3      // positions folded into the primary image
	bins    map[binKey][]int // bin → atom indices, ascending
	shifts  []geom.Vec3      // image translations; shifts[0] is the zero shift
}

// NewFinder validates the inputs, wraps positions along periodic axes and
// builds the spatial hash. A nil cell, or a cell without periodic axes,
// means open boundaries; only periodic cells are checked for degeneracy.
//
// Algorithm:
//  1. Validate cutoff, positions and (periodic) cell.
//  2. Wrap every position into the primary image.
//  3. Hash positions into bins of edge length cutoff.
//  4. Enumerate image shifts: |s_k| ≤ ceil(cutoff / width_k) on periodic
//     axes, 0 elsewhere. Zero shift first.
//
// Complexity: O(N + I) time and memory, I = number of image shifts.
func NewFinder(positions []geom.Vec3, cell *geom.Cell, cutoff float64, opts ...Option) (*Finder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		return nil, errors.Wrapf(ErrInvalidCutoff, "cutoff=%g", cutoff)
	}
	for i, p := range positions {
		if !p.IsFinite() {
			return nil, errors.Wrapf(ErrInvalidPosition, "atom %d", i)
		}
	}

	periodic := cell != nil && cell.Periodic()
	if periodic {
		if err := cell.Validate(cfg.eps); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "neighbor"), ErrDegenerateCell)
		}
	}

	f := &Finder{
		cutoff:  cutoff,
		cutoff2: cutoff * cutoff,
		workers: cfg.workers,
		wrapped: make([]geom.Vec3, len(positions)),
		bins:    make(map[binKey][]int),
	}
	for i, p := range positions {
		if periodic {
			p = cell.Wrap(p)
		}
		f.wrapped[i] = p
		k := f.key(p)
		f.bins[k] = append(f.bins[k], i)
	}
	f.shifts = imageShifts(cell, periodic, cutoff)

	return f, nil
}

// Count returns the number of indexed atoms.
func (f *Finder) Count() int {
	return len(f.wrapped)
}

// Cutoff returns the query radius.
func (f *Finder) Cutoff() float64 {
	return f.cutoff
}

// Find returns every neighbor of atom i within the cutoff.
// Returns ErrIndexOutOfRange when i ∉ [0, Count()).
func (f *Finder) Find(i int) ([]Neighbor, error) {
	if i < 0 || i >= len(f.wrapped) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, count %d", i, len(f.wrapped))
	}
	return f.query(i), nil
}

// FindAll runs Find for every atom and returns the lists in index order.
// Queries are split into contiguous chunks processed by at most WithWorkers
// goroutines; each chunk writes only its own slots.
func (f *Finder) FindAll() ([][]Neighbor, error) {
	n := len(f.wrapped)
	out := make([][]Neighbor, n)

	chunk := (n + f.workers - 1) / f.workers
	var g errgroup.Group
	g.SetLimit(f.workers)
	for start := 0; start < n; start += chunk {
		lo, hi := start, min(start+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = f.query(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// query scans the 27-bin stencil around p - t for every image shift t.
// A candidate j at image t sits at wrapped[j] + t.
func (f *Finder) query(i int) []Neighbor {
	p := f.wrapped[i]
	var out []Neighbor
	for s, t := range f.shifts {
		center := f.key(p.Sub(t))
		for _, off := range stencil {
			k := binKey{center[0] + off[0], center[1] + off[1], center[2] + off[2]}
			for _, j := range f.bins[k] {
				if s == 0 && j == i {
					continue
				}
				d := f.wrapped[j].Add(t).Sub(p)
				d2 := d.Norm2()
				if d2 > f.cutoff2 {
					continue
				}
				out = append(out, Neighbor{Index: j, Distance: math.Sqrt(d2), Delta: d})
			}
		}
	}

	return out
}

func (f *Finder) key(p geom.Vec3) binKey {
	return binKey{
		int(math.Floor(p.X / f.cutoff)),
		int(math.Floor(p.Y / f.cutoff)),
		int(math.Floor(p.Z / f.cutoff)),
	}
}

// imageShifts returns the zero shift followed by every periodic image
// translation a cutoff sphere can reach.
func imageShifts(cell *geom.Cell, periodic bool, cutoff float64) []geom.Vec3 {
	shifts := []geom.Vec3{{}}
	if !periodic {
		return shifts
	}

	var reach [3]int
	widths := cell.PerpendicularWidths()
	for k := 0; k < 3; k++ {
		if cell.PBC[k] {
			reach[k] = int(math.Ceil(cutoff / widths[k]))
		}
	}
	for a := -reach[0]; a <= reach[0]; a++ {
		for b := -reach[1]; b <= reach[1]; b++ {
			for c := -reach[2]; c <= reach[2]; c++ {
				if a == 0 && b == 0 && c == 0 {
					continue
				}
				shifts = append(shifts, cell.Translation(a, b, c))
			}
		}
	}

	return shifts
}

package sro

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wcsro/neighbor"
	"github.com/katalvlaran/wcsro/structure"
)

// PairLabel formats the output name of pair (i, j) at the given shell:
// "a_<shell>_<name_i>-<name_j>", numeric IDs standing in for empty names.
func PairLabel(shell int, i, j structure.Species) string {
	return fmt.Sprintf("a_%d_%s-%s", shell, i.Label(), j.Label())
}

// shellCount is the per-atom neighbor histogram inside [minCutoff, maxCutoff].
// bySpecies is indexed by position in the species set.
type shellCount struct {
	total     int
	bySpecies []int
}

// Compute returns α_ij for every ordered pair of s.SpeciesSet().
//
// Algorithm:
//  1. Validate structure and cutoffs (fatal, nothing returned on failure).
//  2. One batched neighbor query at maxCutoff.
//  3. Per atom (parallel, disjoint slots): drop neighbors with
//     distance < minCutoff, count the rest overall and per species.
//     The upper bound is the query's own; it is not filtered again.
//  4. Per pair (i, j): c_j = N_j/N. c_j == 0 records ErrZeroConcentration on
//     the pair and leaves it undefined. Otherwise every atom a of species i
//     gets 1 − (n_j/n)/c_j, or undefined when n == 0.
//  5. Average each pair over its defined slots.
//  6. Publish to the Sink, if any.
//
// Errors (all marked ErrInvalidInput):
//   - ErrEmptyStructure, ErrMissingSpecies, ErrDuplicateLabel: structure problems.
//   - ErrInvalidCutoff: minCutoff < 0, maxCutoff ≤ 0, minCutoff ≥ maxCutoff, NaN/Inf.
//   - neighbor.ErrDegenerateCell: unusable periodic cell.
//
// ErrSink is returned, unmarked, when the Sink rejects a write.
//
// Complexity: O(N·k + S²·N) time, O(N·(k + S) + S²·N) memory, where k is
// the mean neighbor count and S the number of species.
func Compute(s *structure.Structure, minCutoff, maxCutoff float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	log := cfg.logger

	// Stage 1: validation.
	if err := validateInput(s, minCutoff, maxCutoff); err != nil {
		return nil, err
	}
	species := s.SpeciesSet()
	slot := make(map[structure.SpeciesID]int, len(species))
	for k, sp := range species {
		slot[sp.ID] = k
	}

	// Stage 2: neighbor lists.
	finderOpts := append(append([]neighbor.Option{}, cfg.finderOp...), neighbor.WithWorkers(cfg.workers))
	finder, err := neighbor.NewFinder(s.Positions(), s.Cell, maxCutoff, finderOpts...)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "sro: neighbor finder"), ErrInvalidInput)
	}
	lists, err := finder.FindAll()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "sro: neighbor query"), ErrInvalidInput)
	}
	log.Debug("neighbor lists built",
		zap.Int("atoms", s.Len()),
		zap.Int("species", len(species)),
		zap.Float64("max_cutoff", maxCutoff))

	// Stage 3: shell histograms.
	shells, err := shellHistograms(s, lists, minCutoff, slot, cfg.workers)
	if err != nil {
		return nil, err
	}

	// Stage 4 + 5: pairs.
	counts := s.Counts()
	res := &Result{
		Shell:        cfg.shell,
		MinCutoff:    minCutoff,
		MaxCutoff:    maxCutoff,
		Species:      species,
		Pairs:        make([]PairResult, 0, len(species)*len(species)),
		Coordination: make([]int, s.Len()),
		byLabel:      make(map[string]int, len(species)*len(species)),
	}
	for a, sh := range shells {
		res.Coordination[a] = sh.total
	}
	for _, si := range species {
		for _, sj := range species {
			cj := float64(counts[sj.ID]) / float64(s.Len())
			p := computePair(s, shells, si, sj, slot[sj.ID], cj, cfg.shell)
			if p.Err != nil {
				log.Warn("pair left undefined",
					zap.String("pair", p.Label),
					zap.Error(p.Err))
			} else {
				log.Debug("pair computed",
					zap.String("pair", p.Label),
					zap.Stringer("average", p.Average),
					zap.Int("defined", p.Defined))
			}
			res.byLabel[p.Label] = len(res.Pairs)
			res.Pairs = append(res.Pairs, p)
		}
	}

	// Stage 6: side effects.
	if cfg.sink != nil {
		if err := publish(res, cfg.sink); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "sro"), ErrSink)
		}
	}

	return res, nil
}

// validateInput enforces the Invalid Input class of errors.
func validateInput(s *structure.Structure, minCutoff, maxCutoff float64) error {
	if err := s.Validate(); err != nil {
		return errors.Mark(errors.Wrap(err, "sro"), ErrInvalidInput)
	}

	var cause error
	switch {
	case math.IsNaN(minCutoff) || math.IsInf(minCutoff, 0) || minCutoff < 0:
		cause = errors.Wrapf(ErrInvalidCutoff, "min_cutoff=%g must be finite and ≥ 0", minCutoff)
	case math.IsNaN(maxCutoff) || math.IsInf(maxCutoff, 0) || maxCutoff <= 0:
		cause = errors.Wrapf(ErrInvalidCutoff, "max_cutoff=%g must be finite and > 0", maxCutoff)
	case minCutoff >= maxCutoff:
		cause = errors.WithHint(
			errors.Wrapf(ErrInvalidCutoff, "min_cutoff=%g ≥ max_cutoff=%g", minCutoff, maxCutoff),
			"min_cutoff is the inner radius of the neighbor shell and must stay below max_cutoff")
	}
	if cause != nil {
		return errors.Mark(cause, ErrInvalidInput)
	}

	return nil
}

// shellHistograms filters every neighbor list by minCutoff and counts the
// survivors per species. Atoms are split into contiguous chunks; each
// goroutine writes only its own slots.
func shellHistograms(
	s *structure.Structure,
	lists [][]neighbor.Neighbor,
	minCutoff float64,
	slot map[structure.SpeciesID]int,
	workers int,
) ([]shellCount, error) {
	n := s.Len()
	out := make([]shellCount, n)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		lo, hi := start, min(start+chunk, n)
		g.Go(func() error {
			for a := lo; a < hi; a++ {
				sc := shellCount{bySpecies: make([]int, len(slot))}
				for _, nb := range lists[a] {
					if nb.Distance < minCutoff {
						continue
					}
					sc.total++
					sc.bySpecies[slot[s.Atoms[nb.Index].Species]]++
				}
				out[a] = sc
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// computePair fills the per-atom slots and the average of pair (i, j).
// jSlot is the position of j in the species set; cj its bulk concentration.
func computePair(
	s *structure.Structure,
	shells []shellCount,
	i, j structure.Species,
	jSlot int,
	cj float64,
	shell int,
) PairResult {
	p := PairResult{
		Label:         PairLabel(shell, i, j),
		I:             i,
		J:             j,
		Concentration: cj,
		PerAtom:       make([]Value, s.Len()),
	}
	if cj == 0 {
		p.Err = errors.Wrapf(ErrZeroConcentration, "pair %s: species %s has no atoms", p.Label, j.Label())
		return p
	}

	for a, atom := range s.Atoms {
		if atom.Species != i.ID {
			continue
		}
		sh := shells[a]
		if sh.total == 0 {
			continue
		}
		frac := float64(sh.bySpecies[jSlot]) / float64(sh.total)
		p.PerAtom[a] = Defined(1 - frac/cj)
	}
	p.Average, p.Defined = mean(p.PerAtom)

	return p
}

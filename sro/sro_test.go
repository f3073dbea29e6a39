package sro_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wcsro/geom"
	"github.com/katalvlaran/wcsro/lattice"
	"github.com/katalvlaran/wcsro/neighbor"
	"github.com/katalvlaran/wcsro/sro"
	"github.com/katalvlaran/wcsro/structure"
)

const (
	speciesA structure.SpeciesID = 0
	speciesB structure.SpeciesID = 1
)

var registryAB = []structure.Species{{ID: speciesA, Name: "A"}, {ID: speciesB, Name: "B"}}

// dimers places two A–B pairs far apart: every atom's only neighbor
// within 1.5 is of the opposite species.
func dimers() *structure.Structure {
	return structure.New(nil,
		[]geom.Vec3{{X: 0}, {X: 10}, {X: 1}, {X: 11}},
		[]structure.SpeciesID{speciesA, speciesA, speciesB, speciesB},
		registryAB...)
}

func mustPair(t *testing.T, r *sro.Result, label string) *sro.PairResult {
	t.Helper()
	p, ok := r.Lookup(label)
	require.True(t, ok, "missing pair %s", label)
	return p
}

func mustValue(t *testing.T, v sro.Value) float64 {
	t.Helper()
	x, ok := v.Get()
	require.True(t, ok, "value is undefined")
	return x
}

// ComputeSuite covers the documented scenarios and invariants.
type ComputeSuite struct {
	suite.Suite
}

// TestOppositeNeighbors: each atom's only neighbor is of the other species.
func (s *ComputeSuite) TestOppositeNeighbors() {
	t := s.T()
	res, err := sro.Compute(dimers(), 0, 1.5)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	require.Len(t, res.Pairs, 4)

	ab := mustPair(t, res, "a_1_A-B")
	require.Equal(t, -1.0, mustValue(t, ab.Average))
	require.Equal(t, 0.5, ab.Concentration)
	require.Equal(t, 2, ab.Defined)
	require.Equal(t, -1.0, mustValue(t, ab.PerAtom[0]))
	require.Equal(t, -1.0, mustValue(t, ab.PerAtom[1]))
	require.False(t, ab.PerAtom[2].IsDefined(), "B atoms have no slot in an A-row pair")

	require.Equal(t, 1.0, mustValue(t, mustPair(t, res, "a_1_A-A").Average))
	require.Equal(t, -1.0, mustValue(t, mustPair(t, res, "a_1_B-A").Average))
	require.Equal(t, 1.0, mustValue(t, mustPair(t, res, "a_1_B-B").Average))
	require.Equal(t, []int{1, 1, 1, 1}, res.Coordination)
}

// TestSingleSpeciesIsZero: c_i = 1 and n_i/n = 1 give α = 0 everywhere.
func (s *ComputeSuite) TestSingleSpeciesIsZero() {
	t := s.T()
	st := structure.New(nil,
		[]geom.Vec3{{}, {X: 1}, {Y: 1}, {Z: 1}},
		[]structure.SpeciesID{3, 3, 3, 3})
	res, err := sro.Compute(st, 0, 5)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)

	p := res.Pairs[0]
	require.Equal(t, "a_1_3-3", p.Label)
	for a, v := range p.PerAtom {
		require.Equal(t, 0.0, mustValue(t, v), "atom %d", a)
	}
	require.Equal(t, 0.0, mustValue(t, p.Average))
}

// TestAbsentSpecies: pairs ending in an absent species are flagged,
// the others still compute.
func (s *ComputeSuite) TestAbsentSpecies() {
	t := s.T()
	st := structure.New(nil,
		[]geom.Vec3{{}, {X: 1}, {X: 2}},
		[]structure.SpeciesID{speciesA, speciesA, speciesA},
		registryAB...)

	core, logs := observer.New(zapcore.WarnLevel)
	res, err := sro.Compute(st, 0, 1.5, sro.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Len(t, res.Pairs, 4)

	aa := mustPair(t, res, "a_1_A-A")
	require.NoError(t, aa.Err)
	require.Equal(t, 0.0, mustValue(t, aa.Average))

	for _, label := range []string{"a_1_A-B", "a_1_B-B"} {
		p := mustPair(t, res, label)
		require.True(t, errors.Is(p.Err, sro.ErrZeroConcentration), "%s: %v", label, p.Err)
		require.False(t, p.Average.IsDefined())
		require.Zero(t, p.Defined)
		for _, v := range p.PerAtom {
			require.False(t, v.IsDefined())
		}
	}

	// no B atoms: nothing to average, but nothing wrong either
	ba := mustPair(t, res, "a_1_B-A")
	require.NoError(t, ba.Err)
	require.False(t, ba.Average.IsDefined())

	require.True(t, errors.Is(res.Err(), sro.ErrZeroConcentration))
	require.Equal(t, 2, logs.FilterMessage("pair left undefined").Len())
}

// TestEmptyShell: min cutoff beyond every neighbor leaves all values undefined.
func (s *ComputeSuite) TestEmptyShell() {
	t := s.T()
	res, err := sro.Compute(dimers(), 1.2, 1.5)
	require.NoError(t, err)
	require.NoError(t, res.Err())
	for _, p := range res.Pairs {
		require.False(t, p.Average.IsDefined(), p.Label)
		require.Zero(t, p.Defined, p.Label)
		for _, v := range p.PerAtom {
			require.False(t, v.IsDefined(), p.Label)
		}
	}
	require.Equal(t, []int{0, 0, 0, 0}, res.Coordination)
	for _, row := range res.Table().Rows {
		require.False(t, row.Value.IsDefined())
	}
}

// TestMinCutoffIsInclusive keeps neighbors sitting exactly at minCutoff.
func (s *ComputeSuite) TestMinCutoffIsInclusive() {
	t := s.T()
	res, err := sro.Compute(dimers(), 1, 1.5)
	require.NoError(t, err)
	require.Equal(t, -1.0, mustValue(t, mustPair(t, res, "a_1_A-B").Average))
}

// TestNeighborFractionsPartition: Σ_j n_j/n = 1 for every atom, and Σ_j c_j = 1.
func (s *ComputeSuite) TestNeighborFractionsPartition() {
	t := s.T()
	st, err := lattice.Build(lattice.FCC, 3.6, 4, 4, 4,
		lattice.WithSpecies("Co", "Cr", "Fe", "Ni"),
		lattice.WithComposition(0.25, 0.25, 0.3, 0.2),
		lattice.WithSeed(5))
	require.NoError(t, err)

	res, err := sro.Compute(st, 0, 3.0)
	require.NoError(t, err)
	require.NoError(t, res.Err())

	csum := 0.0
	for _, sj := range res.Species {
		p, ok := res.Pair(res.Species[0].ID, sj.ID)
		require.True(t, ok)
		csum += p.Concentration
	}
	require.InDelta(t, 1.0, csum, 1e-12)

	for a, atom := range st.Atoms {
		require.Equal(t, 12, res.Coordination[a])
		frac := 0.0
		for _, sj := range res.Species {
			p, ok := res.Pair(atom.Species, sj.ID)
			require.True(t, ok)
			// n_j/n = c_j·(1 − α_ij)
			frac += p.Concentration * (1 - mustValue(t, p.PerAtom[a]))
		}
		require.InDelta(t, 1.0, frac, 1e-12, "atom %d", a)
	}
}

// TestOrderedB2: a perfect B2 crystal is fully ordered at the first shell.
func (s *ComputeSuite) TestOrderedB2() {
	t := s.T()
	a := 2.87
	st, err := lattice.Build(lattice.BCC, a, 3, 3, 3,
		lattice.WithSpecies("Fe", "Al"), lattice.WithSublattices(0, 1))
	require.NoError(t, err)

	first := lattice.BCC.NearestNeighborDistance(a)
	res, err := sro.Compute(st, 0, (first+a)/2)
	require.NoError(t, err)

	require.InDelta(t, -1.0, mustValue(t, mustPair(t, res, "a_1_Fe-Al").Average), 1e-12)
	require.InDelta(t, 1.0, mustValue(t, mustPair(t, res, "a_1_Fe-Fe").Average), 1e-12)
	for _, c := range res.Coordination {
		require.Equal(t, 8, c)
	}

	// second shell (6 neighbors at a) is all like species
	res, err = sro.Compute(st, (first+a)/2, a*1.1, sro.WithShell(2))
	require.NoError(t, err)
	require.InDelta(t, 1.0, mustValue(t, mustPair(t, res, "a_2_Fe-Al").Average), 1e-12)
	require.InDelta(t, -1.0, mustValue(t, mustPair(t, res, "a_2_Al-Al").Average), 1e-12)
	for _, c := range res.Coordination {
		require.Equal(t, 6, c)
	}
}

// TestIdempotent: repeated calls and different worker counts agree exactly.
func (s *ComputeSuite) TestIdempotent() {
	t := s.T()
	st, err := lattice.Build(lattice.FCC, 3.5, 3, 3, 3,
		lattice.WithSpecies("Cu", "Au"), lattice.WithComposition(0.75, 0.25), lattice.WithSeed(9))
	require.NoError(t, err)

	first, err := sro.Compute(st, 0, 3.0)
	require.NoError(t, err)
	for _, w := range []int{1, 3, 16} {
		again, err := sro.Compute(st, 0, 3.0, sro.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, first.Pairs, again.Pairs)
		require.Equal(t, first.Coordination, again.Coordination)
	}
}

// TestPairOrderAndLookup: row-major over the species set sorted by ID.
func (s *ComputeSuite) TestPairOrderAndLookup() {
	t := s.T()
	st := structure.New(nil,
		[]geom.Vec3{{}, {X: 1}, {X: 2}},
		[]structure.SpeciesID{2, 0, 2},
		structure.Species{ID: 2, Name: "Ni"})
	res, err := sro.Compute(st, 0, 1.1, sro.WithShell(3))
	require.NoError(t, err)

	labels := make([]string, len(res.Pairs))
	for k, p := range res.Pairs {
		labels[k] = p.Label
	}
	require.Equal(t, []string{"a_3_0-0", "a_3_0-Ni", "a_3_Ni-0", "a_3_Ni-Ni"}, labels)

	p, ok := res.Pair(2, 0)
	require.True(t, ok)
	require.Equal(t, "a_3_Ni-0", p.Label)
	_, ok = res.Pair(5, 0)
	require.False(t, ok)
	_, ok = res.Lookup("a_1_0-0")
	require.False(t, ok)
}

func TestComputeSuite(t *testing.T) {
	suite.Run(t, new(ComputeSuite))
}

// TestCompute_InvalidInput checks every fatal class is an ErrInvalidInput.
func TestCompute_InvalidInput(t *testing.T) {
	flat := structure.New(geom.NewOrthorhombic(1, 1, 0, [3]bool{true, true, true}),
		[]geom.Vec3{{}, {X: 0.5}}, []structure.SpeciesID{0, 0})

	cases := []struct {
		name     string
		s        *structure.Structure
		min, max float64
		err      error
	}{
		{"Nil", nil, 0, 1, sro.ErrEmptyStructure},
		{"Empty", structure.New(nil, nil, nil), 0, 1, sro.ErrEmptyStructure},
		{"MissingSpecies", structure.New(nil, []geom.Vec3{{}, {X: 1}}, []structure.SpeciesID{0}), 0, 1, sro.ErrMissingSpecies},
		{"NegativeMin", dimers(), -0.1, 1, sro.ErrInvalidCutoff},
		{"ZeroMax", dimers(), 0, 0, sro.ErrInvalidCutoff},
		{"MinEqualsMax", dimers(), 1, 1, sro.ErrInvalidCutoff},
		{"MinAboveMax", dimers(), 2, 1, sro.ErrInvalidCutoff},
		{"NaNMax", dimers(), 0, math.NaN(), sro.ErrInvalidCutoff},
		{"InfMax", dimers(), 0, math.Inf(1), sro.ErrInvalidCutoff},
		{"DegenerateCell", flat, 0, 1, neighbor.ErrDegenerateCell},
		{"DuplicateName", structure.New(nil,
			[]geom.Vec3{{}, {X: 1}, {X: 2}, {X: 3}},
			[]structure.SpeciesID{0, 1, 0, 1},
			structure.Species{ID: 0, Name: "Fe"}, structure.Species{ID: 1, Name: "Fe"}), 0, 1.1, sro.ErrDuplicateLabel},
		{"NameShadowsNumericLabel", structure.New(nil,
			[]geom.Vec3{{}, {X: 1}},
			[]structure.SpeciesID{1, 5},
			structure.Species{ID: 5, Name: "1"}), 0, 1.1, sro.ErrDuplicateLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := sro.Compute(tc.s, tc.min, tc.max)
			require.Nil(t, res)
			require.True(t, errors.Is(err, tc.err), "Compute() error = %v; want %v", err, tc.err)
			require.True(t, errors.Is(err, sro.ErrInvalidInput), "Compute() error = %v; want class ErrInvalidInput", err)
		})
	}

	_, err := sro.Compute(dimers(), 2, 1)
	require.NotEmpty(t, errors.GetAllHints(err))
}

// TestOptionPanics checks option constructors fail fast.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { sro.WithShell(0) })
	require.Panics(t, func() { sro.WithWorkers(0) })
	require.Panics(t, func() { sro.WithSink(nil) })
	require.Panics(t, func() { sro.WithLogger(nil) })
}

// TestNeighborOptionsForwarded: the cell tolerance reaches the neighbor finder.
func TestNeighborOptionsForwarded(t *testing.T) {
	// C nearly parallel to B: |A·(B×C)| / (|A||B||C|) ≈ 1e-4
	cell := geom.NewTriclinic(
		geom.Vec3{X: 4}, geom.Vec3{Y: 1}, geom.Vec3{Y: 1, Z: 1e-4},
		geom.Vec3{}, [3]bool{true, false, false})
	st := structure.New(cell,
		[]geom.Vec3{{}, {X: 1}, {X: 2}, {X: 3}},
		[]structure.SpeciesID{speciesA, speciesB, speciesA, speciesB},
		registryAB...)

	res, err := sro.Compute(st, 0, 1.1)
	require.NoError(t, err)
	require.Equal(t, -1.0, mustValue(t, mustPair(t, res, "a_1_A-B").Average))

	_, err = sro.Compute(st, 0, 1.1, sro.WithNeighborOptions(neighbor.WithEpsilon(1e-3)))
	require.True(t, errors.Is(err, neighbor.ErrDegenerateCell), "error = %v", err)
	require.True(t, errors.Is(err, sro.ErrInvalidInput))

	// an explicit worker count in the forwarded options is superseded by WithWorkers
	res2, err := sro.Compute(st, 0, 1.1,
		sro.WithNeighborOptions(neighbor.WithWorkers(7)), sro.WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, res.Pairs, res2.Pairs)
}

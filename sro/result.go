package sro

import (
	"go.uber.org/multierr"

	"github.com/katalvlaran/wcsro/structure"
)

// PairResult holds α_ij for one ordered species pair.
//
// PerAtom has one slot per atom of the structure; slots of atoms whose
// species is not I, or whose shell is empty, are undefined. Average is the
// mean over the Defined slots only. Err is non-nil when the pair could not be
// computed at all (ErrZeroConcentration).
type PairResult struct {
	Label         string            `json:"label" yaml:"label"`
	I             structure.Species `json:"-" yaml:"-"`
	J             structure.Species `json:"-" yaml:"-"`
	Concentration float64           `json:"concentration" yaml:"concentration"`
	PerAtom       []Value           `json:"-" yaml:"-"`
	Average       Value             `json:"average" yaml:"average"`
	Defined       int               `json:"defined" yaml:"defined"`
	Err           error             `json:"-" yaml:"-"`
}

// Result is the full table produced by one Compute call. Nothing in it is
// shared with the input structure or with other calls.
type Result struct {
	Shell     int                 `json:"shell" yaml:"shell"`
	MinCutoff float64             `json:"min_cutoff" yaml:"min_cutoff"`
	MaxCutoff float64             `json:"max_cutoff" yaml:"max_cutoff"`
	Species   []structure.Species `json:"-" yaml:"-"`
	Pairs     []PairResult        `json:"pairs" yaml:"pairs"`

	// Coordination[a] is the number of neighbors of atom a inside the shell.
	Coordination []int `json:"-" yaml:"-"`

	byLabel map[string]int
}

// Pair returns the result for (i, j).
func (r *Result) Pair(i, j structure.SpeciesID) (*PairResult, bool) {
	for k := range r.Pairs {
		if r.Pairs[k].I.ID == i && r.Pairs[k].J.ID == j {
			return &r.Pairs[k], true
		}
	}
	return nil, false
}

// Lookup returns the result with the given label, e.g. "a_1_Fe-Ni".
func (r *Result) Lookup(label string) (*PairResult, bool) {
	k, ok := r.byLabel[label]
	if !ok {
		return nil, false
	}
	return &r.Pairs[k], true
}

// Err joins the per-pair errors; nil when every pair computed.
func (r *Result) Err() error {
	var err error
	for _, p := range r.Pairs {
		err = multierr.Append(err, p.Err)
	}
	return err
}

// Row is one bar of the summary chart.
type Row struct {
	Label string `json:"label" yaml:"label"`
	Value Value  `json:"value" yaml:"value"`
}

// Table is the categorical summary: one row per species pair in pair order.
type Table struct {
	Title  string `json:"title" yaml:"title"`
	XLabel string `json:"x_label" yaml:"x_label"`
	YLabel string `json:"y_label" yaml:"y_label"`
	Rows   []Row  `json:"rows" yaml:"rows"`
}

// Table builds the summary table from the pair averages.
func (r *Result) Table() Table {
	t := Table{
		Title:  TableTitle,
		XLabel: TableXLabel,
		YLabel: TableYLabel,
		Rows:   make([]Row, len(r.Pairs)),
	}
	for k, p := range r.Pairs {
		t.Rows[k] = Row{Label: p.Label, Value: p.Average}
	}
	return t
}

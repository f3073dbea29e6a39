package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wcsro/internal/config"
	"github.com/katalvlaran/wcsro/internal/version"
	"github.com/katalvlaran/wcsro/sro"
	"github.com/katalvlaran/wcsro/structure"
)

// Report is the document written by compute
type Report struct {
	RunID   string        `json:"run_id" yaml:"run_id"`
	Version string        `json:"version" yaml:"version"`
	Lattice LatticeReport `json:"lattice" yaml:"lattice"`

	Shell            int         `json:"shell" yaml:"shell"`
	MinCutoff        float64     `json:"min_cutoff" yaml:"min_cutoff"`
	MaxCutoff        float64     `json:"max_cutoff" yaml:"max_cutoff"`
	MeanCoordination float64     `json:"mean_coordination" yaml:"mean_coordination"`
	Pairs            []PairEntry `json:"pairs" yaml:"pairs"`
	Table            sro.Table   `json:"table" yaml:"table"`
}

// LatticeReport summarizes the generated structure
type LatticeReport struct {
	Kind     string          `json:"kind" yaml:"kind"`
	Constant float64         `json:"constant" yaml:"constant"`
	Repeats  []int           `json:"repeats" yaml:"repeats"`
	Atoms    int             `json:"atoms" yaml:"atoms"`
	Species  []SpeciesReport `json:"species" yaml:"species"`
}

// SpeciesReport is one entry of the species set
type SpeciesReport struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Count         int     `json:"count" yaml:"count"`
	Concentration float64 `json:"concentration" yaml:"concentration"`
}

// PairEntry is one ordered pair; Average is null when undefined
type PairEntry struct {
	Label     string      `json:"label" yaml:"label"`
	Attribute string      `json:"attribute" yaml:"attribute"`
	Average   sro.Value   `json:"average" yaml:"average"`
	Defined   int         `json:"defined" yaml:"defined"`
	Error     string      `json:"error,omitempty" yaml:"error,omitempty"`
	PerAtom   []sro.Value `json:"per_atom,omitempty" yaml:"per_atom,omitempty"`
}

// newReport assembles the report from what the sink received.
func newReport(runID string, cfg *config.Config, s *structure.Structure, res *sro.Result, sink *sro.MemorySink) Report {
	rep := Report{
		RunID:   runID,
		Version: version.Get().Version,
		Lattice: LatticeReport{
			Kind:     strings.ToLower(cfg.Lattice.Kind),
			Constant: cfg.Lattice.Constant,
			Repeats:  cfg.Lattice.Repeats,
			Atoms:    s.Len(),
		},
		Shell:     res.Shell,
		MinCutoff: res.MinCutoff,
		MaxCutoff: res.MaxCutoff,
		Pairs:     make([]PairEntry, 0, len(res.Pairs)),
	}

	for _, sp := range res.Species {
		rep.Lattice.Species = append(rep.Lattice.Species, SpeciesReport{
			ID:            int(sp.ID),
			Name:          sp.Label(),
			Count:         s.Count(sp.ID),
			Concentration: s.Concentration(sp.ID),
		})
	}

	total := 0
	for _, c := range res.Coordination {
		total += c
	}
	if len(res.Coordination) > 0 {
		rep.MeanCoordination = float64(total) / float64(len(res.Coordination))
	}

	for _, p := range res.Pairs {
		attr := sro.AttributeName(p.Label)
		e := PairEntry{Label: p.Label, Attribute: attr, Average: p.Average, Defined: p.Defined}
		if v, ok := sink.Attribute(attr); ok {
			e.Average = v
		}
		if p.Err != nil {
			e.Error = p.Err.Error()
		}
		if cfg.Output.PerAtom {
			e.PerAtom, _ = sink.Property(p.Label)
		}
		rep.Pairs = append(rep.Pairs, e)
	}

	if tables := sink.Tables(); len(tables) > 0 {
		rep.Table = tables[len(tables)-1]
	} else {
		rep.Table = res.Table()
	}

	return rep
}

// writeReport encodes rep as YAML or JSON.
func writeReport(w io.Writer, format string, rep Report) error {
	return errors.Wrap(encode(w, format, rep), "failed to write report")
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.Newf("unknown format %q", format)
}

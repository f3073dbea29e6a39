package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wcsro/geom"
	"github.com/katalvlaran/wcsro/internal/config"
	"github.com/katalvlaran/wcsro/internal/logger"
	"github.com/katalvlaran/wcsro/lattice"
	"github.com/katalvlaran/wcsro/neighbor"
	"github.com/katalvlaran/wcsro/sro"
	"github.com/katalvlaran/wcsro/structure"
)

func newComputeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Build the configured lattice and report α_ij for every species pair",
		Long: `Build the configured supercell, enumerate neighbors within max_cutoff,
keep those at or beyond min_cutoff and report the Warren-Cowley parameters
α_ij = 1 - (n_j/n)/c_j for every ordered species pair.

Pairs that cannot be computed (a species with no atoms) are reported with an
error and a null average; the run itself still succeeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, closeOut, err := openOutput(cmd, cfg.Output.Path)
			if err != nil {
				return err
			}
			defer closeOut()
			return runCompute(cmd.Context(), cfg, out)
		},
	}

	f := cmd.Flags()
	f.Float64("min-cutoff", 0, "Inner radius of the neighbor shell")
	f.Float64("max-cutoff", 3.0, "Outer radius of the neighbor shell")
	f.Int("shell", 1, "Shell index used in pair labels")
	f.Int("workers", 0, "Worker goroutines (0 = GOMAXPROCS)")
	f.Float64("cell-epsilon", geom.DefaultEpsilon, "Relative volume below which a periodic cell is degenerate")
	f.StringP("format", "f", config.FormatYAML, "Report format: yaml or json")
	f.StringP("output", "o", "", "Report file (default stdout)")
	f.Bool("per-atom", false, "Include per-atom values in the report")
	mustBind(v, "sro.min_cutoff", f.Lookup("min-cutoff"))
	mustBind(v, "sro.max_cutoff", f.Lookup("max-cutoff"))
	mustBind(v, "sro.shell", f.Lookup("shell"))
	mustBind(v, "sro.workers", f.Lookup("workers"))
	mustBind(v, "sro.cell_epsilon", f.Lookup("cell-epsilon"))
	mustBind(v, "output.format", f.Lookup("format"))
	mustBind(v, "output.path", f.Lookup("output"))
	mustBind(v, "output.per_atom", f.Lookup("per-atom"))

	return cmd
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// openOutput returns the report destination and its closer.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create report %s", path)
	}
	return f, func() { _ = f.Close() }, nil
}

// runCompute executes one run and writes the report to w.
func runCompute(ctx context.Context, cfg *config.Config, w io.Writer) error {
	runID := uuid.NewString()
	ctx = logger.WithComponent(logger.WithRunID(ctx, runID), "compute")
	log := logger.LoggerFromContext(ctx)

	s, err := buildStructure(cfg.Lattice)
	if err != nil {
		return errors.Wrap(err, "failed to build lattice")
	}
	log.Infow("lattice built",
		logger.FieldLattice, cfg.Lattice.Kind,
		logger.FieldAtoms, s.Len(),
		logger.FieldSpecies, len(s.SpeciesSet()))

	sink := sro.NewMemorySink()
	opts := []sro.Option{
		sro.WithShell(cfg.SRO.Shell),
		sro.WithSink(sink),
		sro.WithLogger(log.Desugar().Named("sro")),
		sro.WithNeighborOptions(neighbor.WithEpsilon(cfg.SRO.CellEpsilon)),
	}
	if cfg.SRO.Workers > 0 {
		opts = append(opts, sro.WithWorkers(cfg.SRO.Workers))
	}

	log.Infow("computing sro",
		logger.FieldMinCutoff, cfg.SRO.MinCutoff,
		logger.FieldMaxCutoff, cfg.SRO.MaxCutoff,
		logger.FieldWorkers, cfg.SRO.Workers)

	start := time.Now()
	res, err := sro.Compute(s, cfg.SRO.MinCutoff, cfg.SRO.MaxCutoff, opts...)
	if err != nil {
		return err
	}
	log.Infow("sro computed",
		logger.FieldShell, res.Shell,
		logger.FieldPairs, len(res.Pairs),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	if perr := res.Err(); perr != nil {
		log.Warnw("some pairs are undefined", logger.FieldError, perr)
	}

	return writeReport(w, cfg.Output.Format, newReport(runID, cfg, s, res, sink))
}

// buildStructure translates the lattice section into lattice.Build options.
// With neither composition nor sublattices the species are equiatomic.
func buildStructure(lc config.LatticeConfig) (*structure.Structure, error) {
	kind, err := lattice.ParseKind(lc.Kind)
	if err != nil {
		return nil, err
	}

	opts := []lattice.Option{
		lattice.WithSpecies(lc.Species...),
		lattice.WithPBC(lc.PBC[0], lc.PBC[1], lc.PBC[2]),
	}
	switch {
	case len(lc.Sublattices) > 0:
		ids := make([]structure.SpeciesID, len(lc.Sublattices))
		for k, id := range lc.Sublattices {
			ids[k] = structure.SpeciesID(id)
		}
		opts = append(opts, lattice.WithSublattices(ids...))
	case len(lc.Composition) > 0:
		opts = append(opts, lattice.WithComposition(lc.Composition...), lattice.WithSeed(lc.Seed))
	default:
		equal := make([]float64, len(lc.Species))
		for k := range equal {
			equal[k] = 1 / float64(len(equal))
		}
		opts = append(opts, lattice.WithComposition(equal...), lattice.WithSeed(lc.Seed))
	}

	return lattice.Build(kind, lc.Constant, lc.Repeats[0], lc.Repeats[1], lc.Repeats[2], opts...)
}

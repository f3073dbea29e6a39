// SPDX-License-Identifier: MIT

// Package sro: functional options for Compute.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (programmer error). Compute itself never panics on user data.
//   - Defaults are deterministic and documented below; no globals.

package sro

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/wcsro/neighbor"
)

// Defaults.
const (
	// DefaultShell is the neighbor-shell index used in pair labels.
	DefaultShell = 1

	// TableTitle, TableXLabel and TableYLabel name the summary table.
	TableTitle  = "Warren Cowley SRO Parameters"
	TableXLabel = "WC-SRO parameters"
	TableYLabel = "Value"
)

// Option customizes Compute.
type Option func(*config)

type config struct {
	shell    int
	workers  int
	sink     Sink
	logger   *zap.Logger
	finderOp []neighbor.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		shell:   DefaultShell,
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithShell sets the shell index written into pair labels
// ("a_<shell>_<i>-<j>"). It carries no filtering logic of its own.
// Panics if n < 1.
func WithShell(n int) Option {
	if n < 1 {
		panic("sro: WithShell(n<1)")
	}
	return func(c *config) { c.shell = n }
}

// WithWorkers bounds the goroutines used for neighbor queries and shell
// histograms. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sro: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithSink publishes per-atom properties, per-pair attributes and the
// summary table to s once every pair is computed. Panics on nil.
//
// Writes are not transactional: when s rejects a write, Compute returns
// ErrSink and whatever s accepted before the failure stays in s.
func WithSink(s Sink) Option {
	if s == nil {
		panic("sro: WithSink(nil)")
	}
	return func(c *config) { c.sink = s }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("sro: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithNeighborOptions forwards options to the neighbor.Finder
// (e.g. neighbor.WithEpsilon). Worker count is taken from WithWorkers.
func WithNeighborOptions(opts ...neighbor.Option) Option {
	return func(c *config) { c.finderOp = append(c.finderOp, opts...) }
}

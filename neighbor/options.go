// SPDX-License-Identifier: MIT

package neighbor

import (
	"math"
	"runtime"

	"github.com/katalvlaran/wcsro/geom"
)

// Option configures a Finder. Constructors panic on nonsensical values;
// the Finder itself never panics on user input.
type Option func(*config)

type config struct {
	workers int     // ≥ 1; default GOMAXPROCS
	eps     float64 // ≥ 0; relative volume tolerance
}

func defaultConfig() config {
	return config{
		workers: runtime.GOMAXPROCS(0),
		eps:     geom.DefaultEpsilon,
	}
}

// WithWorkers bounds the number of goroutines used by FindAll.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("neighbor: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithEpsilon sets the relative tolerance used to reject degenerate cells.
// Panics if eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("neighbor: WithEpsilon: eps must be finite, non-negative")
	}
	return func(c *config) { c.eps = eps }
}

// SPDX-License-Identifier: MIT
// Package batch: functional options for Solve.

package batch

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Defaults.
const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// DefaultMinBlocksPerWorker is the smallest share of blocks worth a
	// goroutine of its own.
	DefaultMinBlocksPerWorker = 64
)

const (
	panicWorkersInvalid   = "batch: WithWorkers: n must be >= 0"
	panicMinBlocksInvalid = "batch: WithMinBlocksPerWorker: n must be >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective configuration of a Solve call. Fields are
// unexported; callers use the WithX constructors.
type Options struct {
	workers   int // 0 ⇒ GOMAXPROCS
	minBlocks int // ≥ 1
	logger    zerolog.Logger
	metrics   *Metrics // nil ⇒ no metrics
}

// WithWorkers caps the number of goroutines used by Solve.
// n == 0 selects runtime.GOMAXPROCS(0); n == 1 forces inline execution.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithMinBlocksPerWorker sets how many blocks each worker must at least
// receive before another worker is added. Panics if n < 1.
func WithMinBlocksPerWorker(n int) Option {
	if n < 1 {
		panic(panicMinBlocksInvalid)
	}
	return func(o *Options) { o.minBlocks = n }
}

// WithLogger routes debug output of Solve to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics records every Solve call in m. A nil m disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		minBlocks: DefaultMinBlocksPerWorker,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// workersFor returns how many goroutines a batch of n blocks gets: the
// configured worker count, capped so that each receives at least minBlocks
// blocks, and never below 1.
func (o Options) workersFor(n int) int {
	w := o.workers
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	w = min(w, n/o.minBlocks)
	return max(w, 1)
}

// SPDX-License-Identifier: MIT

package reduction

import (
	"runtime"

	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/internal/logger"
)

// Option configures a Reducer.
type Option func(*config)

type config struct {
	table   *diffs.Table
	workers int
	log     logger.Logger
}

const panicWorkersInvalid = "reduction: WithWorkers: n must be >= 1"

// tasksPerWorker is how many subtrees ReduceParallel aims to hand each worker.
const tasksPerWorker = 8

func newConfig(opts ...Option) config {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
		log:     logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.table == nil {
		cfg.table = diffs.New(diffs.WithLogger(cfg.log))
	}

	return cfg
}

// WithTable shares an existing lowering-step table instead of building one.
func WithTable(t *diffs.Table) Option {
	return func(c *config) { c.table = t }
}

// WithWorkers bounds the goroutines used by ReduceParallel. Defaults to
// GOMAXPROCS. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = n }
}

// WithLogger sets the logger for reduction diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

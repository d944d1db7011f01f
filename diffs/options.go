// SPDX-License-Identifier: MIT

package diffs

import "github.com/katalvlaran/untou3/internal/logger"

// Option configures table construction.
type Option func(*config)

type config struct {
	workers int
	log     logger.Logger
}

// defaultWorkers keeps construction sequential unless asked otherwise.
const defaultWorkers = 1

const panicWorkersInvalid = "diffs: WithWorkers: n must be >= 1"

func newConfig(opts ...Option) config {
	cfg := config{
		workers: defaultWorkers,
		log:     logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers builds masks on up to n goroutines. The resulting table is
// identical to the sequential one. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = n }
}

// WithLogger sets the logger that receives construction statistics.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

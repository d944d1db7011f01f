// SPDX-License-Identifier: MIT

package reduction

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/untou3/gelfand"
)

// subtree is a partially descended node handed to one goroutine.
type subtree struct {
	pattern   gelfand.Pattern
	remaining int
	acc       Weight
}

// ReduceParallel computes the same result as Reduce on up to the configured
// number of workers.
//
// The top levels of the descent tree are expanded breadth-first until there
// are about tasksPerWorker subtrees per worker. Each subtree is walked into
// a private Multiplicities; the tallies are merged once all goroutines have
// finished. Cancelling ctx stops subtrees that have not started yet and
// returns ctx.Err().
func (r *Reducer) ReduceParallel(ctx context.Context, p gelfand.Pattern, count int) (*Multiplicities, error) {
	if err := r.check(p, count); err != nil {
		return nil, err
	}

	start := time.Now()
	frontier := r.split(p, count, r.workers*tasksPerWorker)
	parts := make([]*Multiplicities, len(frontier))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, node := range frontier {
		i, node := i, node
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w := r.newWalker()
			w.walk(node.pattern, node.remaining, node.acc)
			parts[i] = w.mult

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mult := newMultiplicities()
	for _, part := range parts {
		mult.Merge(part)
	}

	r.log.Debug("parallel reduction finished",
		zap.Stringer("pattern", p),
		zap.Int("particles", count),
		zap.Int("subtrees", len(frontier)),
		zap.Int("workers", r.workers),
		zap.Int("weights", mult.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return mult, nil
}

// split expands the tree level by level until the frontier holds at least
// want nodes or consists of leaves only. Leaves are carried along unchanged;
// walking a leaf records its weight.
func (r *Reducer) split(p gelfand.Pattern, count, want int) []subtree {
	frontier := []subtree{{pattern: p, remaining: count}}
	for len(frontier) < want {
		next := make([]subtree, 0, len(frontier)*2)
		expanded := false
		for _, node := range frontier {
			steps := r.table.ByPattern(node.pattern)
			if len(steps) == 0 {
				next = append(next, node)

				continue
			}
			expanded = true
			nz, nx, ny := r.quanta.At(node.remaining - 1)
			for _, s := range steps {
				next = append(next, subtree{
					pattern:   gelfand.Add(node.pattern, s.Delta),
					remaining: node.remaining - 1,
					acc:       node.acc.Add(Weight{s.Index * nz, s.Index * nx, s.Index * ny}),
				})
			}
		}
		if !expanded {
			break
		}
		frontier = next
	}

	return frontier
}

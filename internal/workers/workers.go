// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many jobs run at once.
type Pool struct {
	limit int
}

// NewPool returns a Pool running at most limit jobs concurrently. A limit
// below 1 is treated as 1.
func NewPool(limit int) *Pool {
	if limit < 1 {
		limit = 1
	}
	return &Pool{limit: limit}
}

// Limit returns the concurrency bound.
func (p *Pool) Limit() int {
	return p.limit
}

// Run calls job for every index in [0, n). Once a job fails or ctx is done
// no new jobs are started; Run waits for the running ones and returns the
// first error.
func (p *Pool) Run(ctx context.Context, n int, job Job) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return job(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs independent jobs on a bounded number of goroutines.
package workers

import "context"

// Job processes the i-th item of a batch. Jobs of one batch run
// concurrently and must only touch their own index.
//
// Example:
//
//	out := make([]string, len(in))
//	err := pool.Run(ctx, len(in), func(ctx context.Context, i int) error {
//	    out[i] = strings.ToUpper(in[i])
//	    return nil
//	})
type Job func(ctx context.Context, i int) error

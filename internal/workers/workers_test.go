// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Run_AllJobsAreCalled(t *testing.T) {
	const n = 50
	var calls [n]atomic.Int32

	err := NewPool(4).Run(context.Background(), n, func(_ context.Context, i int) error {
		calls[i].Add(1)
		return nil
	})
	require.NoError(t, err)

	for i := range calls {
		assert.Equal(t, int32(1), calls[i].Load(), "job %d", i)
	}
}

func TestPool_Run_Empty(t *testing.T) {
	err := NewPool(2).Run(context.Background(), 0, func(context.Context, int) error {
		t.Fatal("job must not run")
		return nil
	})
	assert.NoError(t, err)
}

func TestPool_Run_RespectsLimit(t *testing.T) {
	const limit = 3
	var running, peak atomic.Int32

	err := NewPool(limit).Run(context.Background(), 30, func(context.Context, int) error {
		cur := running.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Positive(t, peak.Load())
}

func TestPool_Run_FirstErrorStopsNewJobs(t *testing.T) {
	boom := errors.New("boom")
	var started atomic.Int32

	err := NewPool(1).Run(context.Background(), 100, func(_ context.Context, i int) error {
		started.Add(1)
		if i == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Less(t, started.Load(), int32(100))
}

func TestPool_Run_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var started atomic.Int32
	err := NewPool(2).Run(ctx, 10, func(context.Context, int) error {
		started.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, started.Load())
}

func TestNewPool_Limit(t *testing.T) {
	assert.Equal(t, 1, NewPool(0).Limit())
	assert.Equal(t, 1, NewPool(-5).Limit())
	assert.Equal(t, 8, NewPool(8).Limit())
}

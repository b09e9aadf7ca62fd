package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnceExecutesAllJobs(t *testing.T) {
	s := NewScheduler()

	var first, second atomic.Int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return nil
	})

	err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestRunOnceReturnsFirstErrorButRunsAll(t *testing.T) {
	s := NewScheduler()

	wantErr := errors.New("boom")
	var ran atomic.Int32
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return wantErr
	})
	s.AddJob("after", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, int32(1), ran.Load())
}

func TestStartRunsJobImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	var runs atomic.Int32
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		if runs.Add(1) == 1 {
			close(done)
		}
		return nil
	})

	s.Start()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()

	assert.GreaterOrEqual(t, runs.Load(), int32(1))
}

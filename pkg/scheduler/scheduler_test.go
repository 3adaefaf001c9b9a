package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/podscope/pkg/processor"
	"github.com/umputun/podscope/pkg/scheduler/mocks"
)

func TestScheduler_RunImmediateAndPeriodic(t *testing.T) {
	var runs int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*processor.RunStats, error) {
			atomic.AddInt32(&runs, 1)
			return &processor.RunStats{}, nil
		},
	}

	s := New(runner, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// one immediate run plus several ticks
	got := atomic.LoadInt32(&runs)
	assert.GreaterOrEqual(t, got, int32(3))
}

func TestScheduler_RunSurvivesFailures(t *testing.T) {
	var runs int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*processor.RunStats, error) {
			atomic.AddInt32(&runs, 1)
			return nil, fmt.Errorf("run failed")
		},
	}

	s := New(runner, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(2), "failures never stop the loop")
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*processor.RunStats, error) {
			return &processor.RunStats{}, nil
		},
	}

	s := New(runner, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}

	assert.Len(t, runner.RunCalls(), 1, "only the immediate run before cancel")
}

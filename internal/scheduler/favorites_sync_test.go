package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSyncer struct {
	calls atomic.Int32
}

func (c *countingSyncer) Synchronize(context.Context) error {
	c.calls.Add(1)
	return nil
}

func TestSchedulerDisabled(t *testing.T) {
	s := NewFavoritesSyncScheduler(&countingSyncer{}, Config{Enabled: false})

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.GetNextRunTime())
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewFavoritesSyncScheduler(&countingSyncer{}, Config{Enabled: true, Schedule: "*/30 * * * *"})

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.GetNextRunTime()
	require.NotNil(t, next)
	assert.True(t, next.After(time.Now()))

	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	s := NewFavoritesSyncScheduler(&countingSyncer{}, Config{Enabled: true, Schedule: "not a schedule"})

	err := s.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestSchedulerRunNow(t *testing.T) {
	syncer := &countingSyncer{}
	s := NewFavoritesSyncScheduler(syncer, Config{Enabled: true, Schedule: "*/30 * * * *"})

	require.NoError(t, s.RunNow())

	deadline := time.Now().Add(2 * time.Second)
	for syncer.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, int32(1), syncer.calls.Load())
}

func TestSchedulerStopsOnContextCancel(t *testing.T) {
	s := NewFavoritesSyncScheduler(&countingSyncer{}, Config{Enabled: true, Schedule: "*/30 * * * *"})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	require.True(t, s.IsRunning())

	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for s.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.False(t, s.IsRunning())
}

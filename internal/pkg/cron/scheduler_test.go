package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunOnceExecutesAllJobs(t *testing.T) {
	s := NewScheduler()

	var order []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSchedulerRunOnceContinuesPastFailingJob(t *testing.T) {
	s := NewScheduler()

	var ran bool
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("upstream unavailable")
	})
	s.AddJob("following", time.Hour, func(ctx context.Context) error {
		ran = true
		return nil
	})

	s.RunOnce(context.Background())

	assert.True(t, ran)
}

func TestSchedulerStartRunsJobImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		close(done)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

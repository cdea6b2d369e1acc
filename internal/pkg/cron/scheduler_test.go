package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunOnceExecutesEveryJob(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.AddJob("first", time.Hour, func(ctx context.Context) error { ran++; return nil })
	s.AddJob("failing", time.Hour, func(ctx context.Context) error { return errors.New("boom") })
	s.AddJob("last", time.Hour, func(ctx context.Context) error { ran++; return nil })

	s.RunOnce(context.Background())

	if ran != 2 {
		t.Errorf("expected both healthy jobs to run despite the failing one, got %d", ran)
	}
}

func TestStartRunsJobsImmediately(t *testing.T) {
	s := NewScheduler()
	done := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case done <- struct{}{}:
		default:
		}
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

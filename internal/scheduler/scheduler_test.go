package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"SmartInvest/internal/usecase"
	applogger "SmartInvest/pkg/logger"
)

type countingSweeper struct {
	n atomic.Int32
}

func (c *countingSweeper) Sweep(context.Context) (usecase.SweepResult, error) {
	c.n.Add(1)
	return usecase.SweepResult{}, nil
}

func TestRegisterAlertSweepRejectsBadSpec(t *testing.T) {
	s := New(&countingSweeper{}, applogger.NewNop())
	if err := s.RegisterAlertSweep("every minute"); err == nil {
		t.Fatal("expected parse error")
	}
	// five-field specs are rejected when seconds are enabled
	if err := s.RegisterAlertSweep("*/15 * * * *"); err == nil {
		t.Fatal("expected error for five-field spec")
	}
	if err := s.RegisterAlertSweep("0 */15 * * * *"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if s.Entries() != 1 {
		t.Fatalf("entries = %d", s.Entries())
	}
}

func TestSchedulerRunsSweep(t *testing.T) {
	sw := &countingSweeper{}
	s := New(sw, applogger.NewNop())
	if err := s.RegisterAlertSweep("* * * * * *"); err != nil {
		t.Fatalf("register: %v", err)
	}
	s.Start()

	deadline := time.Now().Add(3 * time.Second)
	for sw.n.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if sw.n.Load() == 0 {
		t.Fatal("sweep never ran")
	}
}

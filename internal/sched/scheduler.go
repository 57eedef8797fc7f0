// Package sched runs the recurring timers that drive the simulation:
// customer spawns, the abandonment sweep, passive auto-service, the rush
// cycle and the periodic audit trigger. Each timer is its own goroutine,
// but every effect lands through a shop.Service action, which serializes
// all state mutation behind one mutex.
package sched

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"blockparty/internal/shop"
)

type Scheduler struct {
	svc *shop.Service
	log *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func New(svc *shop.Service, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{svc: svc, log: logger}
}

// Start launches the five timer loops. Calling Start on a running
// scheduler is a no-op. The loops stop when ctx is cancelled or Stop is
// called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	bal := s.svc.Balance()

	s.wg.Add(5)
	go s.spawnLoop(ctx)
	go s.fixedLoop(ctx, bal.SweepEvery(), s.svc.SweepAbandonment)
	go s.autoServeLoop(ctx)
	go s.rushLoop(ctx)
	go s.fixedLoop(ctx, bal.AuditEvery(), func() {
		if s.svc.MaybeOpenAudit() {
			s.log.Info("audit opened")
		}
	})

	s.log.Info("scheduler started")
}

// Stop cancels every loop and waits for them to exit; no callback fires
// afterwards. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.started = false
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

// spawnLoop re-reads the spawn period each cycle so fixture upgrades and
// rush windows take effect on the next schedule, never retroactively.
func (s *Scheduler) spawnLoop(ctx context.Context) {
	defer s.wg.Done()
	timer := time.NewTimer(s.svc.SpawnPeriod())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.svc.SpawnCustomer()
			timer.Reset(s.svc.SpawnPeriod())
		}
	}
}

func (s *Scheduler) autoServeLoop(ctx context.Context) {
	defer s.wg.Done()
	timer := time.NewTimer(s.svc.AutoServePeriod())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if s.svc.AutoStaffEnabled() {
				s.svc.AutoServe()
			}
			timer.Reset(s.svc.AutoServePeriod())
		}
	}
}

// rushLoop alternates the rush flag, sleeping for whichever window the
// flip opened (active vs. incoming).
func (s *Scheduler) rushLoop(ctx context.Context) {
	defer s.wg.Done()
	timer := time.NewTimer(s.svc.Balance().RushIncomingFor())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			active, next := s.svc.AdvanceRush()
			s.log.Debug("rush flip", "active", active, "next", next.String())
			timer.Reset(next)
		}
	}
}

func (s *Scheduler) fixedLoop(ctx context.Context, every time.Duration, fn func()) {
	defer s.wg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}

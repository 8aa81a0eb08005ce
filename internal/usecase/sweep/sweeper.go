// Package sweep releases cars whose bookings have ended.
//
// The sweep is a drift correction pass. It never undoes a live confirmation:
// a car is only made available when no confirmed booking still covers it.
package sweep

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/shared"
)

const (
	ResultOK      = "ok"
	ResultPartial = "partial"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

type Result struct {
	ExpiredCars int
	Released    int
	Skipped     bool
}

type Observer interface {
	ObserveSweep(result string, duration time.Duration, released int)
}

type Sweeper struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	interval time.Duration
	observer Observer
	logger   *slog.Logger

	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(uow shared.UnitOfWork, clk clock.Clock, interval time.Duration, observer Observer, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		uow:      uow,
		clock:    clk,
		interval: interval,
		observer: observer,
		logger:   logger,
	}
}

// Start launches the ticker loop. Calling Start on a running sweeper is a no-op.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx)
	s.logger.Info("availability sweep started", "interval", s.interval.String())
}

// Stop cancels the loop and waits for an in-flight run to return.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
	s.logger.Info("availability sweep stopped")
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Each tick runs on its own goroutine so a slow run meets the overlap policy in RunOnce.
			s.wg.Add(1)
			go s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("availability sweep panicked", "panic", r)
		}
	}()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("availability sweep failed", "error", err.Error())
	}
}

// RunOnce performs one pass. A pass that starts while another is running is skipped.
// Per-car failures do not stop the pass; they are joined into the returned error.
func (s *Sweeper) RunOnce(ctx context.Context) (Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		s.observer.ObserveSweep(ResultSkipped, 0, 0)
		s.logger.Warn("availability sweep skipped, previous run still in progress")
		return Result{Skipped: true}, nil
	}
	defer s.running.Store(false)

	started := time.Now()
	res, err := s.sweep(ctx, s.clock.Now())

	label := ResultOK
	switch {
	case err != nil && res.ExpiredCars == 0:
		label = ResultFailed
	case err != nil:
		label = ResultPartial
	}
	s.observer.ObserveSweep(label, time.Since(started), res.Released)

	if res.Released > 0 {
		s.logger.Info("availability sweep released cars",
			"released", res.Released,
			"expired_cars", res.ExpiredCars)
	}
	return res, err
}

func (s *Sweeper) sweep(ctx context.Context, now time.Time) (Result, error) {
	var res Result
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		carIDs, err := tx.Bookings().ExpiredCarIDs(ctx, now)
		if err != nil {
			return errs.Wrap(err, "find expired bookings")
		}
		res.ExpiredCars = len(carIDs)

		var failures []error
		for _, carID := range carIDs {
			if ctx.Err() != nil {
				failures = append(failures, ctx.Err())
				break
			}
			released, err := tx.Cars().ReleaseIfIdle(ctx, carID, now)
			if err != nil {
				s.logger.Warn("failed to release car", "car_id", carID, "error", err.Error())
				failures = append(failures, errs.Wrapf(err, "release car %d", carID))
				continue
			}
			if released {
				res.Released++
			}
		}
		if len(failures) > 0 {
			return errs.Join(failures...)
		}
		return nil
	})
	return res, err
}

package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"reminder-scheduler/internal/domain/reminder"
	"reminder-scheduler/internal/pkg/clock"
	"reminder-scheduler/internal/pkg/errs"
)

var ErrTickInProgress = errs.New("scheduler tick already in progress")

// TickResult counts what one pass over due reminders did.
type TickResult struct {
	Scanned   int // due entries found
	Delivered int // notifier accepted the message
	Failed    int // notifier returned an error; the reminder is dropped anyway
	Orphans   int // time entries without a reminder, removed
	Errors    int // store failures; those entries are retried next tick
}

// Scheduler polls the time index and fires due reminders. Delivery is a
// single attempt: a reminder is removed after the notifier is called,
// whatever the outcome.
type Scheduler struct {
	repo     DueReminderStore
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger

	busy atomic.Bool

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler(repo DueReminderStore, notifier Notifier, clk clock.Clock, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Start runs Tick every interval in a background goroutine until Stop. Only
// values are taken from ctx; its cancellation does not stop the loop. Calling
// Start on a running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.stopCh = make(chan struct{})

	s.wg.Add(1)
	go s.loop(runCtx, interval, s.stopCh)

	s.logger.Info("reminder scheduler started", slog.Duration("interval", interval))
}

// Stop ends the loop and waits for a tick in flight to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	cancel := s.cancel
	s.mu.Unlock()

	s.wg.Wait()
	cancel()

	s.logger.Info("reminder scheduler stopped")
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) loop(ctx context.Context, interval time.Duration, stop <-chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	res, err := s.Tick(ctx)
	switch {
	case errs.Is(err, ErrTickInProgress):
		s.logger.Debug("previous tick still running, skipping")
	case err != nil:
		s.logger.Error("scheduler tick failed", slog.String("error", err.Error()))
	case res.Scanned > 0:
		s.logger.Info("scheduler tick", resultAttrs(res)...)
	}
}

// Tick dispatches every reminder due at or before now, earliest first. A
// failure on one entry is logged and does not stop the others.
func (s *Scheduler) Tick(ctx context.Context) (TickResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return TickResult{}, ErrTickInProgress
	}
	defer s.busy.Store(false)

	now := s.clock.Now()
	entries, err := s.repo.FindDue(ctx, now)
	if err != nil {
		return TickResult{}, err
	}

	res := TickResult{Scanned: len(entries)}
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}
		s.dispatchEntry(ctx, entry, &res)
	}
	return res, nil
}

// Reconcile fires reminders that fell due while the process was down. It
// walks the primary index so reminders are found even when their time entry
// was lost.
func (s *Scheduler) Reconcile(ctx context.Context) (TickResult, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return TickResult{}, ErrTickInProgress
	}
	defer s.busy.Store(false)

	now := s.clock.Now()
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return TickResult{}, err
	}

	overdue := slices.DeleteFunc(all, func(rem *reminder.Reminder) bool {
		return !rem.IsDue(now)
	})
	slices.SortFunc(overdue, func(a, b *reminder.Reminder) int {
		return a.DueAt().Compare(b.DueAt())
	})

	res := TickResult{Scanned: len(overdue)}
	for _, rem := range overdue {
		if ctx.Err() != nil {
			break
		}
		s.deliver(ctx, rem, &res)
	}

	s.logger.Info("startup reconciliation finished", resultAttrs(res)...)
	return res, nil
}

func (s *Scheduler) dispatchEntry(ctx context.Context, entry reminder.DueEntry, res *TickResult) {
	if entry.Dangling {
		s.dropOrphan(ctx, entry, res)
		return
	}

	rem, err := s.repo.FindByID(ctx, entry.OwnerID, entry.ID)
	if err != nil {
		res.Errors++
		s.logger.Error("failed to load due reminder",
			slog.String("reminder_id", entry.ID.String()),
			slog.String("owner_id", entry.OwnerID.String()),
			slog.String("error", err.Error()))
		return
	}
	if rem == nil {
		s.dropOrphan(ctx, entry, res)
		return
	}

	s.deliver(ctx, rem, res)
}

func (s *Scheduler) dropOrphan(ctx context.Context, entry reminder.DueEntry, res *TickResult) {
	s.logger.Warn("removing orphaned time index entry",
		slog.String("reminder_id", entry.ID.String()),
		slog.Time("due_at", entry.DueAt))

	if err := s.repo.DeleteTimeEntry(ctx, entry); err != nil {
		res.Errors++
		s.logger.Error("failed to remove orphaned time index entry",
			slog.String("reminder_id", entry.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	res.Orphans++
}

func (s *Scheduler) deliver(ctx context.Context, rem *reminder.Reminder, res *TickResult) {
	attrs := []any{
		slog.String("reminder_id", rem.ID().String()),
		slog.String("owner_id", rem.OwnerID().String()),
	}

	if err := s.notifier.Send(ctx, rem.OwnerID(), rem.NotificationMessage()); err != nil {
		res.Failed++
		s.logger.Error("failed to deliver reminder", append(attrs, slog.String("error", err.Error()))...)
	} else {
		res.Delivered++
		s.logger.Info("reminder delivered", attrs...)
	}

	if err := s.repo.Remove(ctx, rem); err != nil {
		res.Errors++
		s.logger.Error("failed to remove fired reminder", append(attrs, slog.String("error", err.Error()))...)
	}
}

func resultAttrs(res TickResult) []any {
	return []any{
		slog.Int("scanned", res.Scanned),
		slog.Int("delivered", res.Delivered),
		slog.Int("failed", res.Failed),
		slog.Int("orphans", res.Orphans),
		slog.Int("errors", res.Errors),
	}
}

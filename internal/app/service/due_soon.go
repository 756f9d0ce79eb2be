package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

// DueSoonScanner periodically reminds assignees of open tasks due within the
// next day. There is no "already notified" marker: a task still inside the
// window on the next run is notified again. Known limitation, kept on
// purpose.
type DueSoonScanner struct {
	tasks           ports.TaskRepository
	notifier        ports.NotificationService
	interval        time.Duration
	runTimeout      time.Duration
	dispatchTimeout time.Duration
	now             func() time.Time
}

func NewDueSoonScanner(
	tasks ports.TaskRepository,
	notifier ports.NotificationService,
	interval time.Duration,
) *DueSoonScanner {
	if interval <= 0 {
		interval = 20 * time.Minute
	}
	return &DueSoonScanner{
		tasks:           tasks,
		notifier:        notifier,
		interval:        interval,
		runTimeout:      time.Minute,
		dispatchTimeout: 10 * time.Second,
		now:             time.Now,
	}
}

// Run blocks until ctx is cancelled. Each cycle is time-bounded so a slow
// sink cannot delay the next one past its tick.
func (s *DueSoonScanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	zap.L().Info("due-soon scanner started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("due-soon scanner stopped")
			return
		case <-ticker.C:
			s.ScanOnce(ctx)
		}
	}
}

// ScanOnce selects open tasks due between today and tomorrow inclusive and
// dispatches a reminder per task, each with its own deadline.
func (s *DueSoonScanner) ScanOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	today := truncateToDay(s.now())
	tomorrow := today.AddDate(0, 0, 1)

	tasks, err := s.tasks.ListDueBetween(runCtx, today, tomorrow, domain.TaskStatusDone)
	if err != nil {
		zap.L().Error("due-soon scan failed", zap.Error(err))
		return
	}

	for _, task := range tasks {
		message := "Reminder: The task \"" + task.Title + "\" is due tomorrow!"

		dispatchCtx, cancelDispatch := context.WithTimeout(runCtx, s.dispatchTimeout)
		notifyBestEffort(dispatchCtx, s.notifier, task.AssignedToID, message, domain.NotificationTypeTaskDueSoon)
		cancelDispatch()
	}

	if len(tasks) > 0 {
		zap.L().Info("due-soon scan dispatched reminders", zap.Int("count", len(tasks)))
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

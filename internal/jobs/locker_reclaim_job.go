package jobs

import (
	"context"
	"log/slog"

	"github.com/kikis202/spot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LockerReclaimJob manages the scheduled reclaim of orphaned lockers.
// Runs every minute to free lockers whose parcel already left the machine.
type LockerReclaimJob struct {
	handler commands.ReclaimLockersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLockerReclaimJob creates a new job for reclaiming lockers.
// Uses ReclaimLockersCommandHandler to run the sweep every minute.
func NewLockerReclaimJob(handler commands.ReclaimLockersCommandHandler, logger *slog.Logger) *LockerReclaimJob {
	return &LockerReclaimJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "locker_reclaim_job"),
	}
}

// Start begins the locker reclaim job to run every minute.
func (j *LockerReclaimJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReclaimLockersCommand()

		freed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Locker reclaim job failed", "error", err)
			return
		}
		if freed > 0 {
			j.logger.InfoContext(ctx, "Reclaimed orphaned lockers", "count", freed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Locker reclaim job started (running every minute)")
	return nil
}

// Stop stops the locker reclaim job.
func (j *LockerReclaimJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Locker reclaim job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"commerce/internal/core/ports"
)

// ResetTokenCleanupJob clears expired password-reset tokens on a schedule.
// Expired tokens already fail the reset flow; the cleanup keeps them from
// accumulating in the store.
type ResetTokenCleanupJob struct {
	userRepo ports.UserRepository
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewResetTokenCleanupJob creates the cleanup job. The schedule is a
// six-field cron expression (with seconds).
func NewResetTokenCleanupJob(userRepo ports.UserRepository, schedule string, logger *slog.Logger) *ResetTokenCleanupJob {
	return &ResetTokenCleanupJob{
		userRepo: userRepo,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reset_token_cleanup_job"),
	}
}

// Start schedules the cleanup.
func (j *ResetTokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		purged, err := j.userRepo.PurgeExpiredResetTokens(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Reset token cleanup failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged expired reset tokens", "count", purged)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reset token cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the cleanup job.
func (j *ResetTokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reset token cleanup job stopped")
}

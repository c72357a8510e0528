package jobs

import (
	"fmt"
	"log/slog"

	"commerce/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	resetTokenCleanupJob *ResetTokenCleanupJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(userRepo ports.UserRepository, cleanupSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		resetTokenCleanupJob: NewResetTokenCleanupJob(userRepo, cleanupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.resetTokenCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start reset token cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.resetTokenCleanupJob.Stop()
}

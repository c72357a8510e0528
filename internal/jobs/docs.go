// Package jobs provides scheduled background tasks, implemented with
// github.com/robfig/cron/v3.
//
// ResetTokenCleanupJob periodically clears expired password-reset tokens so
// stale tokens do not linger in the user store. Jobs are managed through
// JobManager, which starts and stops them together:
//
//	jobManager := jobs.NewJobManager(userRepo, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

package cmd

import "time"

// Config carries the environment-driven settings for the service.
type Config struct {
	HTTPPort string

	MongoURI    string
	MongoDBName string

	NatsURL string

	JWTSecret string
	JWTTTL    time.Duration

	// ResetCleanupSchedule is a six-field cron expression for the expired
	// reset token cleanup job.
	ResetCleanupSchedule string
}

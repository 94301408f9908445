// Package jobs provides scheduled background tasks for the shipping service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. LockerReclaimJob - Runs every minute to free occupied lockers that no
// awaiting-pickup parcel references anymore
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reclaimLockersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reclaim job uses the cron expression "0 * * * * *" which fires at the
// start of every minute. Lockers only become orphaned when a pickup or return
// transition committed but the release was lost, so a minute of lag is
// acceptable.
//
// # Error Handling
//
// - Reclaim job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs

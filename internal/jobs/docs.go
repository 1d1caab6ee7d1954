// Package jobs provides scheduled background tasks for the commerce system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order workflow.
//
// # Available Jobs
//
// 1. AbandonedOrderJob - Runs every minute to cancel pending orders that were
// never paid within the configured abandonment window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelAbandonedOrdersHandler, abandonAfter, logger)
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
// The sweep uses the cron expression "0 * * * * *", firing at the top of
// every minute. Each run cancels every pending order created before
// now minus the abandonment window, so a missed run is caught up by the next.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failing run
// never stops the schedule.
package jobs

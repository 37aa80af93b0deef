// Package jobs provides scheduled background tasks for the ordering engine.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with second-level
// resolution.
//
// # Available Jobs
//
// 1. DeliveryTrackingJob - Advances every in-flight order one delivery step
// per tick (default every 2 seconds).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceDeliveriesHandler, tickSeconds, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed tick is logged and the schedule keeps running; the next tick
// retries from the committed state, so a transient database error delays
// deliveries rather than losing them.
package jobs

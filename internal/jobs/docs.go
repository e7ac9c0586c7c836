// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. PaymentReminderJob - Runs hourly to send payment reminders for orders
// that were created but never paid
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(remindUnpaidOrdersHandler, reminderAge, logger)
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
// The reminder job uses the cron expression "0 0 * * * *" which means it
// runs at the top of every hour. Reminder delivery is fire and forget, so a
// missed run simply defers reminders to the next hour.
//
// # Error Handling
//
// - Individual notification failures are logged and skipped inside the handler
// - Sweep-level failures are logged by the job and retried on the next run
// - Failed job starts will stop any already running jobs
package jobs

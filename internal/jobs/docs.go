// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DelayScanJob - Runs every minute to flag in-transit orders whose
// delivery deadline has passed as delayed, writing one status_changed audit
// event per flagged order.
//
// # Usage
//
//	job := jobs.NewDelayScanJob(markOverdueHandler, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start delay scan:", err)
//	}
//	defer job.Stop()
//
// The job is opt-in: the application only starts it when DELAY_SCAN_ENABLED
// is set, because flagging orders mutates state and emits audit events.
package jobs

// Package workers runs the application's scheduled background jobs on a
// cron scheduler.
package workers

import "time"

// Worker is a single job run. It matches [cron.Job], so every worker can be
// scheduled directly.
//
// Implementations are expected to block for the duration of one run.
type Worker interface {
	Run()
}

// JobRecorder receives the outcome of job runs.
type JobRecorder interface {
	RecordJob(job string, duration time.Duration, success bool)
	AddRemovedUsers(n int)
}

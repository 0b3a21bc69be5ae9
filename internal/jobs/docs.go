// Package jobs provides scheduled background tasks for the parcel routing
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ContainerStatusJob runs RefreshContainerStatuses on a schedule. Each run
// derives a status suggestion for every container from its parcels and
// applies it when it is a legal forward transition.
//
// # Usage
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(&refreshHandler, "*/5 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with a leading seconds field.
// The default "*/5 * * * * *" refreshes every five seconds.
//
// # Error Handling
//
// A failed refresh is logged and retried on the next tick. An invalid
// schedule fails StartAll.
package jobs

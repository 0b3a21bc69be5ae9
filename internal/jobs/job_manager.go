package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	containerStatusJob *ContainerStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refreshHandler ContainerStatusRefresher,
	containerStatusSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		containerStatusJob: NewContainerStatusJob(refreshHandler, containerStatusSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.containerStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start container status job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.containerStatusJob.Stop()
}

package jobs

import (
	"context"

	"parcelrouting/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultContainerStatusSchedule runs the refresh every five seconds.
const DefaultContainerStatusSchedule = "*/5 * * * * *"

// ContainerStatusRefresher is satisfied by
// *commands.RefreshContainerStatusesCommandHandler.
type ContainerStatusRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshContainerStatusesCommand) error
}

// ContainerStatusJob periodically moves containers forward to the status
// their parcels suggest.
type ContainerStatusJob struct {
	handler  ContainerStatusRefresher
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewContainerStatusJob creates the job. An empty schedule falls back to
// DefaultContainerStatusSchedule. Schedules use the six-field cron syntax
// with seconds.
func NewContainerStatusJob(handler ContainerStatusRefresher, schedule string, logger *zap.Logger) *ContainerStatusJob {
	if schedule == "" {
		schedule = DefaultContainerStatusSchedule
	}
	return &ContainerStatusJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.Named("container_status_job"),
	}
}

// Start registers the refresh on the schedule and starts the scheduler.
func (j *ContainerStatusJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.handler.Handle(context.Background(), commands.NewRefreshContainerStatusesCommand()); err != nil {
			j.logger.Error("container status refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("container status job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *ContainerStatusJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("container status job stopped")
}

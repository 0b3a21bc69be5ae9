package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// AdvanceContainerCommandHandler applies a strict status transition to a container.
type AdvanceContainerCommandHandler struct {
	containers ports.ContainerRepository
	logger     *zap.Logger
}

// NewAdvanceContainerCommandHandler creates the handler.
func NewAdvanceContainerCommandHandler(containers ports.ContainerRepository, logger *zap.Logger) AdvanceContainerCommandHandler {
	return AdvanceContainerCommandHandler{
		containers: containers,
		logger:     logger.Named("advance_container"),
	}
}

// Handle transitions the container.
func (h *AdvanceContainerCommandHandler) Handle(_ context.Context, cmd AdvanceContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var from container.Status
	c, err := h.containers.Modify(cmd.ID(), func(c *container.ShippingContainer) (*container.ShippingContainer, error) {
		from = c.Status()
		if err := c.TransitionTo(cmd.Status()); err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		return err
	}

	h.logger.Info("container advanced",
		zap.String("container_id", c.ContainerID()),
		zap.Stringer("from", from),
		zap.Stringer("to", c.Status()),
	)
	return nil
}

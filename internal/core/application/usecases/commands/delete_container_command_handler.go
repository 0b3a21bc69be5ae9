package commands

import (
	"context"

	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// DeleteContainerCommandHandler removes containers without touching their parcels.
type DeleteContainerCommandHandler struct {
	containers ports.ContainerRepository
	logger     *zap.Logger
}

// NewDeleteContainerCommandHandler creates the handler.
func NewDeleteContainerCommandHandler(containers ports.ContainerRepository, logger *zap.Logger) DeleteContainerCommandHandler {
	return DeleteContainerCommandHandler{
		containers: containers,
		logger:     logger.Named("delete_container"),
	}
}

// Handle deletes the container.
func (h *DeleteContainerCommandHandler) Handle(_ context.Context, cmd DeleteContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.containers.Delete(cmd.ID()); err != nil {
		return err
	}

	h.logger.Info("container deleted", zap.Stringer("container_uuid", cmd.ID()))
	return nil
}

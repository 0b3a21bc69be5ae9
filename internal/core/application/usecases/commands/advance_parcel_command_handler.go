package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// AdvanceParcelCommandHandler applies a strict status transition to a parcel.
type AdvanceParcelCommandHandler struct {
	parcels    ports.ParcelRepository
	containers ports.ContainerRepository
	logger     *zap.Logger
}

// NewAdvanceParcelCommandHandler creates a handler for parcel status changes.
func NewAdvanceParcelCommandHandler(
	parcels ports.ParcelRepository,
	containers ports.ContainerRepository,
	logger *zap.Logger,
) AdvanceParcelCommandHandler {
	return AdvanceParcelCommandHandler{
		parcels:    parcels,
		containers: containers,
		logger:     logger.Named("advance_parcel"),
	}
}

// Handle transitions the parcel. Transitions outside the state graph fail
// with errs.StatusTransitionIsInvalidError.
func (h *AdvanceParcelCommandHandler) Handle(_ context.Context, cmd AdvanceParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var from parcel.Status
	p, err := modifyParcel(h.parcels, h.containers, cmd.ParcelID(), func(p *parcel.Parcel) error {
		from = p.Status()
		return p.TransitionTo(cmd.Status())
	})
	if err != nil {
		return err
	}

	h.logger.Info("parcel advanced",
		zap.Stringer("parcel_id", p.ID()),
		zap.Stringer("from", from),
		zap.Stringer("to", p.Status()),
	)
	return nil
}

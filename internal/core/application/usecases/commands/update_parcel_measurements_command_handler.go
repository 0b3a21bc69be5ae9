package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateParcelMeasurementsCommandHandler corrects the weight and value of a
// parcel that has not been processed yet.
type UpdateParcelMeasurementsCommandHandler struct {
	parcels    ports.ParcelRepository
	containers ports.ContainerRepository
	logger     *zap.Logger
}

// NewUpdateParcelMeasurementsCommandHandler creates the handler.
func NewUpdateParcelMeasurementsCommandHandler(
	parcels ports.ParcelRepository,
	containers ports.ContainerRepository,
	logger *zap.Logger,
) UpdateParcelMeasurementsCommandHandler {
	return UpdateParcelMeasurementsCommandHandler{
		parcels:    parcels,
		containers: containers,
		logger:     logger.Named("update_parcel_measurements"),
	}
}

// Handle replaces both measurements or neither.
func (h *UpdateParcelMeasurementsCommandHandler) Handle(_ context.Context, cmd UpdateParcelMeasurementsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := modifyParcel(h.parcels, h.containers, cmd.ParcelID(), func(p *parcel.Parcel) error {
		return p.Update(cmd.Weight(), cmd.Value())
	})
	if err != nil {
		return err
	}

	h.logger.Info("parcel measurements updated",
		zap.Stringer("parcel_id", p.ID()),
		zap.Stringer("weight", p.Weight()),
		zap.Stringer("value", p.Value()),
	)
	return nil
}

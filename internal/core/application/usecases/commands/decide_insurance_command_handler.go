package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/services"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// DecideInsuranceCommandHandler applies an insurance decision. Approved
// parcels are assigned their weight department; rejected parcels stop.
type DecideInsuranceCommandHandler struct {
	parcels    ports.ParcelRepository
	containers ports.ContainerRepository
	router     *services.ParcelRouter
	logger     *zap.Logger
}

// NewDecideInsuranceCommandHandler creates a handler for insurance decisions.
func NewDecideInsuranceCommandHandler(
	parcels ports.ParcelRepository,
	containers ports.ContainerRepository,
	router *services.ParcelRouter,
	logger *zap.Logger,
) DecideInsuranceCommandHandler {
	return DecideInsuranceCommandHandler{
		parcels:    parcels,
		containers: containers,
		router:     router,
		logger:     logger.Named("decide_insurance"),
	}
}

// Handle applies the decision to the parcel.
func (h *DecideInsuranceCommandHandler) Handle(_ context.Context, cmd DecideInsuranceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var decision services.RoutingDecision
	p, err := modifyParcel(h.parcels, h.containers, cmd.ParcelID(), func(p *parcel.Parcel) error {
		var routeErr error
		decision, routeErr = h.router.DecideInsurance(p, cmd.Approved())
		return routeErr
	})
	if err != nil {
		return err
	}

	logDecision(h.logger, p, decision)
	return nil
}

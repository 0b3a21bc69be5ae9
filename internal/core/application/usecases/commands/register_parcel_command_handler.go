package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// RegisterParcelCommandHandler creates parcels in Pending status.
type RegisterParcelCommandHandler struct {
	parcels ports.ParcelRepository
	logger  *zap.Logger
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
func NewRegisterParcelCommandHandler(parcels ports.ParcelRepository, logger *zap.Logger) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		parcels: parcels,
		logger:  logger.Named("register_parcel"),
	}
}

// Handle builds the recipient and the parcel and stores the parcel.
func (h *RegisterParcelCommandHandler) Handle(_ context.Context, cmd RegisterParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	address, err := customer.NewAddress(cmd.Address())
	if err != nil {
		return err
	}

	recipient, err := customer.NewCustomer(cmd.RecipientName(), address)
	if err != nil {
		return err
	}

	p, err := parcel.NewParcel(cmd.ParcelID(), recipient, cmd.Weight(), cmd.Value())
	if err != nil {
		return err
	}

	if _, err = h.parcels.Add(p); err != nil {
		return err
	}

	h.logger.Info("parcel registered",
		zap.Stringer("parcel_id", p.ID()),
		zap.Stringer("weight", p.Weight()),
		zap.Stringer("value", p.Value()),
		zap.Bool("requires_insurance", p.RequiresInsuranceApproval()),
	)
	return nil
}

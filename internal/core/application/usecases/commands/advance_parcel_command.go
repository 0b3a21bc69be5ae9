package commands

import (
	"errors"
	"fmt"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var ErrAdvanceParcelCommandIsNotConstructed = errors.New(
	"AdvanceParcelCommand must be created via NewAdvanceParcelCommand constructor",
)

// AdvanceParcelCommand moves a routed parcel further along its lifecycle.
// Routing statuses are reached through ProcessParcel and DecideInsurance only.
type AdvanceParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status

	guard guard.ConstructorGuard
}

// NewAdvanceParcelCommand creates a command targeting Processed, Shipped,
// Delivered or Failed.
func NewAdvanceParcelCommand(parcelID kernel.UUID, status parcel.Status) (AdvanceParcelCommand, error) {
	cmd := AdvanceParcelCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceParcelCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to advance.
func (c AdvanceParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Status returns the requested parcel status.
func (c AdvanceParcelCommand) Status() parcel.Status {
	return c.status
}

func (c *AdvanceParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *AdvanceParcelCommand) setStatus(status parcel.Status) error {
	switch status { //nolint:exhaustive // only post-routing statuses are accepted
	case parcel.Processed, parcel.Shipped, parcel.Delivered, parcel.Failed:
		c.status = status
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot be set directly", status),
		)
	}
}

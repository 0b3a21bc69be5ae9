package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrDecideInsuranceCommandIsNotConstructed = errors.New(
	"DecideInsuranceCommand must be created via NewDecideInsuranceCommand constructor",
)

// DecideInsuranceCommand records the insurance outcome of a parcel waiting for approval.
type DecideInsuranceCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	approved bool

	guard guard.ConstructorGuard
}

// NewDecideInsuranceCommand creates a command approving or rejecting a parcel.
func NewDecideInsuranceCommand(parcelID kernel.UUID, approved bool) (DecideInsuranceCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return DecideInsuranceCommand{}, err
	}

	return DecideInsuranceCommand{
		parcelID: parcelID,
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideInsuranceCommand) Validate() error {
	return c.guard.Validate(ErrDecideInsuranceCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel awaiting insurance.
func (c DecideInsuranceCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Approved reports whether insurance accepted the parcel.
func (c DecideInsuranceCommand) Approved() bool {
	return c.approved
}

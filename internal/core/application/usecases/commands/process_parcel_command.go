package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrProcessParcelCommandIsNotConstructed = errors.New(
	"ProcessParcelCommand must be created via NewProcessParcelCommand constructor",
)

// ProcessParcelCommand represents a request to classify a Pending parcel and
// assign it to its departments.
type ProcessParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessParcelCommand creates a command to process the parcel with parcelID.
func NewProcessParcelCommand(parcelID kernel.UUID) (ProcessParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return ProcessParcelCommand{}, err
	}

	return ProcessParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessParcelCommand) Validate() error {
	return c.guard.Validate(ErrProcessParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to process.
func (c ProcessParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

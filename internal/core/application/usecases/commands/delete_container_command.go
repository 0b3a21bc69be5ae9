package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrDeleteContainerCommandIsNotConstructed = errors.New(
	"DeleteContainerCommand must be created via NewDeleteContainerCommand constructor",
)

// DeleteContainerCommand removes a container. Its parcels stay in the parcel store.
type DeleteContainerCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteContainerCommand creates the command.
func NewDeleteContainerCommand(id kernel.UUID) (DeleteContainerCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteContainerCommand{}, err
	}
	return DeleteContainerCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteContainerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteContainerCommandIsNotConstructed)
}

// ID returns the container identifier.
func (c DeleteContainerCommand) ID() kernel.UUID {
	return c.id
}

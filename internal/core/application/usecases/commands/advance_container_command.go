package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrAdvanceContainerCommandIsNotConstructed = errors.New(
	"AdvanceContainerCommand must be created via NewAdvanceContainerCommand constructor",
)

// AdvanceContainerCommand moves a container to the given status.
type AdvanceContainerCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	status container.Status

	guard guard.ConstructorGuard
}

// NewAdvanceContainerCommand creates the command.
func NewAdvanceContainerCommand(id kernel.UUID, status container.Status) (AdvanceContainerCommand, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return AdvanceContainerCommand{}, err
	}

	return AdvanceContainerCommand{
		id:     id,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceContainerCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceContainerCommandIsNotConstructed)
}

// ID returns the identifier of the container to advance.
func (c AdvanceContainerCommand) ID() kernel.UUID {
	return c.id
}

// Status returns the requested container status.
func (c AdvanceContainerCommand) Status() container.Status {
	return c.status
}

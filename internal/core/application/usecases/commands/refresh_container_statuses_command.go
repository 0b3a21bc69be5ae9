package commands

import (
	"errors"

	"parcelrouting/internal/pkg/guard"
)

var ErrRefreshContainerStatusesCommandIsNotConstructed = errors.New(
	"RefreshContainerStatusesCommand must be created via NewRefreshContainerStatusesCommand constructor",
)

// RefreshContainerStatusesCommand asks for every open container to catch up
// with the state of its parcels.
type RefreshContainerStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshContainerStatusesCommand creates the command.
func NewRefreshContainerStatusesCommand() RefreshContainerStatusesCommand {
	return RefreshContainerStatusesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshContainerStatusesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshContainerStatusesCommandIsNotConstructed)
}

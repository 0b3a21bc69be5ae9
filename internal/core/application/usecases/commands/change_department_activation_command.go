package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrChangeDepartmentActivationCommandIsNotConstructed = errors.New(
	"ChangeDepartmentActivationCommand must be created via NewChangeDepartmentActivationCommand constructor",
)

// ChangeDepartmentActivationCommand activates or deactivates a department.
type ChangeDepartmentActivationCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewChangeDepartmentActivationCommand creates the command.
func NewChangeDepartmentActivationCommand(id kernel.UUID, active bool) (ChangeDepartmentActivationCommand, error) {
	if err := id.Validate(); err != nil {
		return ChangeDepartmentActivationCommand{}, err
	}
	return ChangeDepartmentActivationCommand{id: id, active: active, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDepartmentActivationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDepartmentActivationCommandIsNotConstructed)
}

// ID returns the identifier of the department.
func (c ChangeDepartmentActivationCommand) ID() kernel.UUID {
	return c.id
}

// Active reports whether the department should be active.
func (c ChangeDepartmentActivationCommand) Active() bool {
	return c.active
}

package commands

import (
	"errors"

	"parcelrouting/internal/pkg/guard"
)

var ErrSeedDepartmentsCommandIsNotConstructed = errors.New(
	"SeedDepartmentsCommand must be created via NewSeedDepartmentsCommand constructor",
)

// SeedDepartmentsCommand makes sure the default departments exist.
type SeedDepartmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedDepartmentsCommand creates the command.
func NewSeedDepartmentsCommand() SeedDepartmentsCommand {
	return SeedDepartmentsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SeedDepartmentsCommand) Validate() error {
	return c.guard.Validate(ErrSeedDepartmentsCommandIsNotConstructed)
}

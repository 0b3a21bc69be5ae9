package commands

import (
	"errors"
	"strings"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var (
	ErrCreateDepartmentCommandIsNotConstructed = errors.New(
		"CreateDepartmentCommand must be created via NewCreateDepartmentCommand constructor",
	)
	ErrDepartmentNameIsRequired = errs.NewValueIsInvalidErrorWithCause(
		"department name", errors.New("department name is required"))
)

// CreateDepartmentCommand adds a department to the directory.
type CreateDepartmentCommand struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateDepartmentCommand creates the command.
func NewCreateDepartmentCommand(id kernel.UUID, name, description string) (CreateDepartmentCommand, error) {
	cmd := CreateDepartmentCommand{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
	); err != nil {
		return CreateDepartmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDepartmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateDepartmentCommandIsNotConstructed)
}

// ID returns the identifier for the new department.
func (c CreateDepartmentCommand) ID() kernel.UUID {
	return c.id
}

// Name returns the department name.
func (c CreateDepartmentCommand) Name() string {
	return c.name
}

// Description returns the department description.
func (c CreateDepartmentCommand) Description() string {
	return c.description
}

func (c *CreateDepartmentCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CreateDepartmentCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDepartmentNameIsRequired
	}
	c.name = name
	return nil
}

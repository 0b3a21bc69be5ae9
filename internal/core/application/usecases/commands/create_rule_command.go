package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/pkg/guard"
)

var ErrCreateRuleCommandIsNotConstructed = errors.New(
	"CreateRuleCommand must be created via NewCreateRuleCommand constructor",
)

// CreateRuleCommand adds a business rule. The definition is checked by the rule itself.
//
// Example:
//
//	maxWeight := decimal.NewFromInt(2)
//	cmd, err := NewCreateRuleCommand(kernel.NewUUID(), rule.Definition{
//	    Name:             "small parcels",
//	    Type:             rule.Weight,
//	    Minimum:          decimal.Zero,
//	    Maximum:          &maxWeight,
//	    TargetDepartment: "Mail",
//	})
type CreateRuleCommand struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	definition rule.Definition

	guard guard.ConstructorGuard
}

// NewCreateRuleCommand creates the command.
func NewCreateRuleCommand(id kernel.UUID, definition rule.Definition) (CreateRuleCommand, error) {
	if err := id.Validate(); err != nil {
		return CreateRuleCommand{}, err
	}
	return CreateRuleCommand{id: id, definition: definition, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreateRuleCommandIsNotConstructed)
}

// ID returns the identifier for the new rule.
func (c CreateRuleCommand) ID() kernel.UUID {
	return c.id
}

// Definition returns the rule definition.
func (c CreateRuleCommand) Definition() rule.Definition {
	return c.definition
}

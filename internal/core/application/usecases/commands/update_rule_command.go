package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/pkg/guard"
)

var ErrUpdateRuleCommandIsNotConstructed = errors.New(
	"UpdateRuleCommand must be created via NewUpdateRuleCommand constructor",
)

// UpdateRuleCommand replaces every editable field of a rule.
type UpdateRuleCommand struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	definition rule.Definition

	guard guard.ConstructorGuard
}

// NewUpdateRuleCommand creates the command.
func NewUpdateRuleCommand(id kernel.UUID, definition rule.Definition) (UpdateRuleCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateRuleCommand{}, err
	}
	return UpdateRuleCommand{id: id, definition: definition, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRuleCommandIsNotConstructed)
}

// ID returns the identifier of the rule to update.
func (c UpdateRuleCommand) ID() kernel.UUID {
	return c.id
}

// Definition returns the replacement rule definition.
func (c UpdateRuleCommand) Definition() rule.Definition {
	return c.definition
}

package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrDeleteRuleCommandIsNotConstructed = errors.New(
	"DeleteRuleCommand must be created via NewDeleteRuleCommand constructor",
)

// DeleteRuleCommand removes a business rule.
type DeleteRuleCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRuleCommand creates the command.
func NewDeleteRuleCommand(id kernel.UUID) (DeleteRuleCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteRuleCommand{}, err
	}
	return DeleteRuleCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRuleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRuleCommandIsNotConstructed)
}

// ID returns the rule identifier.
func (c DeleteRuleCommand) ID() kernel.UUID {
	return c.id
}

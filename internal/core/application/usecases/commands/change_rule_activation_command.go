package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrChangeRuleActivationCommandIsNotConstructed = errors.New(
	"ChangeRuleActivationCommand must be created via NewChangeRuleActivationCommand constructor",
)

// ChangeRuleActivationCommand activates or deactivates a rule.
type ChangeRuleActivationCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewChangeRuleActivationCommand creates the command.
func NewChangeRuleActivationCommand(id kernel.UUID, active bool) (ChangeRuleActivationCommand, error) {
	if err := id.Validate(); err != nil {
		return ChangeRuleActivationCommand{}, err
	}
	return ChangeRuleActivationCommand{id: id, active: active, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeRuleActivationCommand) Validate() error {
	return c.guard.Validate(ErrChangeRuleActivationCommandIsNotConstructed)
}

// ID returns the identifier of the rule.
func (c ChangeRuleActivationCommand) ID() kernel.UUID {
	return c.id
}

// Active reports whether the rule should be active.
func (c ChangeRuleActivationCommand) Active() bool {
	return c.active
}

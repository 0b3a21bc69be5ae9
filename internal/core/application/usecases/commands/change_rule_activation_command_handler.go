package commands

import (
	"context"

	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// ChangeRuleActivationCommandHandler toggles whether a rule takes part in resolution.
type ChangeRuleActivationCommandHandler struct {
	rules  ports.RuleRepository
	logger *zap.Logger
}

// NewChangeRuleActivationCommandHandler creates the handler.
func NewChangeRuleActivationCommandHandler(rules ports.RuleRepository, logger *zap.Logger) ChangeRuleActivationCommandHandler {
	return ChangeRuleActivationCommandHandler{
		rules:  rules,
		logger: logger.Named("change_rule_activation"),
	}
}

// Handle activates or deactivates the rule.
func (h *ChangeRuleActivationCommandHandler) Handle(_ context.Context, cmd ChangeRuleActivationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := loadRule(h.rules, cmd.ID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		r.Activate()
	} else {
		r.Deactivate()
	}

	if _, err = h.rules.Update(r); err != nil {
		return err
	}

	h.logger.Info("rule activation changed", zap.String("name", r.Name()), zap.Bool("active", r.IsActive()))
	return nil
}

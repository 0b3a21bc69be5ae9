package commands

import (
	"context"

	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// DeleteRuleCommandHandler removes business rules.
type DeleteRuleCommandHandler struct {
	rules  ports.RuleRepository
	logger *zap.Logger
}

// NewDeleteRuleCommandHandler creates the handler.
func NewDeleteRuleCommandHandler(rules ports.RuleRepository, logger *zap.Logger) DeleteRuleCommandHandler {
	return DeleteRuleCommandHandler{
		rules:  rules,
		logger: logger.Named("delete_rule"),
	}
}

// Handle deletes the rule.
func (h *DeleteRuleCommandHandler) Handle(_ context.Context, cmd DeleteRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.rules.Delete(cmd.ID()); err != nil {
		return err
	}

	h.logger.Info("rule deleted", zap.Stringer("rule_id", cmd.ID()))
	return nil
}

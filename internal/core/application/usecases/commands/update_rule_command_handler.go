package commands

import (
	"context"

	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateRuleCommandHandler edits business rules.
type UpdateRuleCommandHandler struct {
	rules       ports.RuleRepository
	departments ports.DepartmentRepository
	logger      *zap.Logger
}

// NewUpdateRuleCommandHandler creates the handler.
func NewUpdateRuleCommandHandler(
	rules ports.RuleRepository,
	departments ports.DepartmentRepository,
	logger *zap.Logger,
) UpdateRuleCommandHandler {
	return UpdateRuleCommandHandler{
		rules:       rules,
		departments: departments,
		logger:      logger.Named("update_rule"),
	}
}

// Handle updates the rule. The stored rule is unchanged on any error.
func (h *UpdateRuleCommandHandler) Handle(_ context.Context, cmd UpdateRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := loadRule(h.rules, cmd.ID())
	if err != nil {
		return err
	}

	if err = r.Update(cmd.Definition()); err != nil {
		return err
	}

	if err = ensureDepartmentExists(h.departments, r.TargetDepartment()); err != nil {
		return err
	}

	if _, err = h.rules.Update(r); err != nil {
		return err
	}

	h.logger.Info("rule updated",
		zap.Stringer("rule_id", r.ID()),
		zap.String("name", r.Name()),
		zap.Stringer("thresholds", r.Thresholds()),
		zap.String("target", r.TargetDepartment()),
	)
	return nil
}

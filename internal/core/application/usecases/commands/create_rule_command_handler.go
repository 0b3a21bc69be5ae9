package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// CreateRuleCommandHandler adds active business rules.
type CreateRuleCommandHandler struct {
	rules       ports.RuleRepository
	departments ports.DepartmentRepository
	logger      *zap.Logger
}

// NewCreateRuleCommandHandler creates the handler.
func NewCreateRuleCommandHandler(
	rules ports.RuleRepository,
	departments ports.DepartmentRepository,
	logger *zap.Logger,
) CreateRuleCommandHandler {
	return CreateRuleCommandHandler{
		rules:       rules,
		departments: departments,
		logger:      logger.Named("create_rule"),
	}
}

// Handle creates the rule.
//
// Returns:
//   - errs.ReferenceIsUnresolvableError when the target department does not exist
//   - errs.ObjectAlreadyExistsError when the name is taken
func (h *CreateRuleCommandHandler) Handle(_ context.Context, cmd CreateRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := rule.NewBusinessRule(cmd.ID(), cmd.Definition())
	if err != nil {
		return err
	}

	if err = ensureDepartmentExists(h.departments, r.TargetDepartment()); err != nil {
		return err
	}

	if _, err = h.rules.Add(r); err != nil {
		return err
	}

	h.logger.Info("rule created",
		zap.Stringer("rule_id", r.ID()),
		zap.String("name", r.Name()),
		zap.Stringer("type", r.Type()),
		zap.Stringer("thresholds", r.Thresholds()),
		zap.String("target", r.TargetDepartment()),
	)
	return nil
}

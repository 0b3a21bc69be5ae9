package queries

import (
	"context"

	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/ports"
	"parcelrouting/internal/pkg/errs"
)

// GetRuleQueryHandler reads a single rule by id or name.
type GetRuleQueryHandler struct {
	rules ports.RuleRepository
}

// NewGetRuleQueryHandler creates the handler.
func NewGetRuleQueryHandler(rules ports.RuleRepository) GetRuleQueryHandler {
	return GetRuleQueryHandler{rules: rules}
}

// Handle returns the rule, or errs.ObjectNotFoundError.
func (h GetRuleQueryHandler) Handle(_ context.Context, query GetRuleQuery) (RuleView, error) {
	if err := query.Validate(); err != nil {
		return RuleView{}, err
	}

	var (
		r   *rule.BusinessRule
		ok  bool
		key string
	)
	if query.Name() != "" {
		key = query.Name()
		r, ok = h.rules.GetByName(key)
	} else {
		key = query.ID().String()
		r, ok = h.rules.Get(query.ID())
	}
	if !ok {
		return RuleView{}, errs.NewObjectNotFoundError("rule", key)
	}
	return newRuleView(r), nil
}

package queries

import (
	"context"

	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/ports"
)

// ListRulesQueryHandler lists business rules.
type ListRulesQueryHandler struct {
	rules ports.RuleRepository
}

// NewListRulesQueryHandler creates the handler.
func NewListRulesQueryHandler(rules ports.RuleRepository) ListRulesQueryHandler {
	return ListRulesQueryHandler{rules: rules}
}

// Handle returns the matching rules. The result is never nil.
func (h ListRulesQueryHandler) Handle(_ context.Context, query ListRulesQuery) ([]RuleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	typed := filter.Type != rule.UnknownType

	var rules []*rule.BusinessRule
	switch {
	case filter.ActiveOnly && typed:
		rules = h.rules.GetActiveByType(filter.Type)
	case filter.ActiveOnly:
		rules = h.rules.GetActive()
	default:
		rules = h.rules.GetAll()
	}

	if typed && !filter.ActiveOnly {
		kept := rules[:0]
		for _, r := range rules {
			if r.Type() == filter.Type {
				kept = append(kept, r)
			}
		}
		rules = kept
	}
	return newRuleViews(rules), nil
}

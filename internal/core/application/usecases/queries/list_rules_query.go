package queries

import (
	"errors"

	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/pkg/guard"
)

var ErrListRulesQueryIsNotConstructed = errors.New(
	"ListRulesQuery must be created via NewListRulesQuery constructor",
)

// RuleFilter narrows a rule listing. rule.UnknownType keeps every type.
type RuleFilter struct {
	ActiveOnly bool
	Type       rule.Type
}

// ListRulesQuery lists business rules in creation order.
type ListRulesQuery struct {
	filter RuleFilter
	guard  guard.ConstructorGuard
}

// NewListRulesQuery creates the query.
func NewListRulesQuery(filter RuleFilter) (ListRulesQuery, error) {
	if filter.Type != rule.UnknownType {
		if err := filter.Type.Validate(); err != nil {
			return ListRulesQuery{}, err
		}
	}
	return ListRulesQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRulesQuery) Validate() error {
	return q.guard.Validate(ErrListRulesQueryIsNotConstructed)
}

// Filter returns the rule filter.
func (q ListRulesQuery) Filter() RuleFilter {
	return q.filter
}

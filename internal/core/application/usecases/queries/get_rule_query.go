package queries

import (
	"errors"
	"strings"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var ErrGetRuleQueryIsNotConstructed = errors.New(
	"GetRuleQuery must be created via NewGetRuleQuery or NewGetRuleByNameQuery constructor",
)

// GetRuleQuery retrieves one rule by identifier or by name.
type GetRuleQuery struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewGetRuleQuery creates a lookup by rule id.
func NewGetRuleQuery(id kernel.UUID) (GetRuleQuery, error) {
	if err := id.Validate(); err != nil {
		return GetRuleQuery{}, err
	}
	return GetRuleQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetRuleByNameQuery looks the rule up by name, ignoring case.
func NewGetRuleByNameQuery(name string) (GetRuleQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GetRuleQuery{}, errs.NewValueIsRequiredError("name")
	}
	return GetRuleQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetRuleQuery) Validate() error {
	return q.guard.Validate(ErrGetRuleQueryIsNotConstructed)
}

// ID returns the rule identifier to look up.
func (q GetRuleQuery) ID() kernel.UUID {
	return q.id
}

// Name returns the rule name to look up.
func (q GetRuleQuery) Name() string {
	return q.name
}

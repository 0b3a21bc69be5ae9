package ports

import (
	"parcelrouting/internal/core/domain/model/rule"
)

// RuleRepository stores business rules, uniquely indexed by name.
type RuleRepository interface {
	Repository[*rule.BusinessRule]

	// GetActive returns the active rules of every type.
	GetActive() []*rule.BusinessRule

	// GetActiveByType returns the active rules of ruleType.
	GetActiveByType(ruleType rule.Type) []*rule.BusinessRule

	// GetByName looks a rule up by its unique name.
	GetByName(name string) (*rule.BusinessRule, bool)
}

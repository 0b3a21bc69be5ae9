// Package rulerepo implements ports.RuleRepository on the in-memory store.
// Rule names are unique regardless of case.
package rulerepo

import (
	"strings"

	"parcelrouting/internal/adapters/out/memory"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/ports"
)

const nameIndex = "name"

var _ ports.RuleRepository = (*Repository)(nil)

// Repository stores business rules by id and by name.
type Repository struct {
	*memory.Store[*rule.BusinessRule]
}

// NewRepository creates an empty rule repository.
func NewRepository() *Repository {
	return &Repository{
		Store: memory.NewStore("rule",
			(*rule.BusinessRule).ID,
			memory.WithClone((*rule.BusinessRule).Clone),
			memory.WithValidator((*rule.BusinessRule).Validate),
			memory.WithUniqueIndex(nameIndex, func(r *rule.BusinessRule) string {
				return nameKey(r.Name())
			}),
		),
	}
}

// GetActive returns the active rules of every type.
func (r *Repository) GetActive() []*rule.BusinessRule {
	return r.Find((*rule.BusinessRule).IsActive)
}

// GetActiveByType returns the active rules of ruleType.
func (r *Repository) GetActiveByType(ruleType rule.Type) []*rule.BusinessRule {
	return r.Find(func(br *rule.BusinessRule) bool {
		return br.IsActive() && br.Type() == ruleType
	})
}

// GetByName looks a rule up by name, ignoring case.
func (r *Repository) GetByName(name string) (*rule.BusinessRule, bool) {
	return r.GetBy(nameIndex, nameKey(name))
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

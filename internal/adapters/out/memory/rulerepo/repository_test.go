package rulerepo_test

import (
	"testing"

	"parcelrouting/internal/adapters/out/memory/rulerepo"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRule(t *testing.T, name string, ruleType rule.Type) *rule.BusinessRule {
	t.Helper()
	r, err := rule.NewBusinessRule(kernel.NewUUID(), rule.Definition{
		Name:             name,
		Type:             ruleType,
		Minimum:          decimal.Zero,
		TargetDepartment: "Mail",
	})
	require.NoError(t, err)
	return r
}

func TestRepository_Queries(t *testing.T) {
	repo := rulerepo.NewRepository()
	weight := newRule(t, "weight", rule.Weight)
	value := newRule(t, "value", rule.Value)
	inactive := newRule(t, "inactive", rule.Weight)
	inactive.Deactivate()
	for _, r := range []*rule.BusinessRule{weight, value, inactive} {
		_, err := repo.Add(r)
		require.NoError(t, err)
	}

	assert.Len(t, repo.GetAll(), 3)
	assert.Len(t, repo.GetActive(), 2)

	byType := repo.GetActiveByType(rule.Weight)
	require.Len(t, byType, 1)
	assert.Equal(t, "weight", byType[0].Name())

	got, ok := repo.GetByName("VALUE")
	require.True(t, ok)
	assert.True(t, got.ID().IsEqual(value.ID()))
}

func TestRepository_UniqueName(t *testing.T) {
	repo := rulerepo.NewRepository()
	_, err := repo.Add(newRule(t, "small", rule.Weight))
	require.NoError(t, err)

	_, err = repo.Add(newRule(t, "Small", rule.Value))

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestRepository_UpdateRename(t *testing.T) {
	repo := rulerepo.NewRepository()
	r := newRule(t, "small", rule.Weight)
	_, _ = repo.Add(r)

	require.NoError(t, r.Update(rule.Definition{
		Name:             "tiny",
		Type:             rule.Weight,
		Minimum:          decimal.Zero,
		TargetDepartment: "Mail",
	}))
	_, err := repo.Update(r)
	require.NoError(t, err)

	_, ok := repo.GetByName("small")
	assert.False(t, ok)
	_, ok = repo.GetByName("tiny")
	assert.True(t, ok)
}

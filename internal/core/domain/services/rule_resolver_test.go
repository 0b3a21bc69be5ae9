package services_test

import (
	"testing"

	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/domain/services"
	"parcelrouting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleResolver_DefaultBands(t *testing.T) {
	resolver := services.NewRuleResolver(ruleSource{})

	tests := []struct {
		name     string
		ruleType rule.Type
		m        string
		want     string
		source   services.ResolutionSource
	}{
		{"light parcel", rule.Weight, "0.2", "Mail", services.SourceDefaultBand},
		{"mail boundary", rule.Weight, "1", "Mail", services.SourceDefaultBand},
		{"just above mail", rule.Weight, "1.5", "Regular", services.SourceDefaultBand},
		{"regular boundary", rule.Weight, "10", "Regular", services.SourceDefaultBand},
		{"heavy parcel", rule.Weight, "12", "Heavy", services.SourceDefaultBand},
		{"insured value", rule.Value, "1000.01", "Insurance", services.SourceDefaultBand},
		{"insurance boundary", rule.Value, "1000", "", services.SourceNone},
		{"cheap parcel", rule.Value, "15", "", services.SourceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := resolver.Resolve(tt.ruleType, dec(tt.m))

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Department)
			assert.Equal(t, tt.source, res.Source)
			assert.Nil(t, res.RuleID)
			assert.False(t, res.Ambiguous)
		})
	}
}

func TestRuleResolver_CustomRules(t *testing.T) {
	t.Run("should prefer matching custom rule", func(t *testing.T) {
		mail := newRule(t, rule.Weight, "0", ptr(dec("2")), "Mail")
		resolver := services.NewRuleResolver(ruleSource{mail})

		res, err := resolver.Resolve(rule.Weight, dec("1.5"))

		require.NoError(t, err)
		assert.Equal(t, "Mail", res.Department)
		assert.Equal(t, services.SourceCustomRule, res.Source)
		require.NotNil(t, res.RuleID)
		assert.True(t, res.RuleID.IsEqual(mail.ID()))
		assert.True(t, res.Found())
	})

	t.Run("should fall back when no rule matches", func(t *testing.T) {
		resolver := services.NewRuleResolver(ruleSource{newRule(t, rule.Weight, "0", ptr(dec("2")), "Mail")})

		res, err := resolver.Resolve(rule.Weight, dec("12"))

		require.NoError(t, err)
		assert.Equal(t, "Heavy", res.Department)
		assert.Equal(t, services.SourceDefaultBand, res.Source)
	})

	t.Run("should ignore inactive rules and other types", func(t *testing.T) {
		inactive := newRule(t, rule.Weight, "0", nil, "Oversize")
		inactive.Deactivate()
		value := newRule(t, rule.Value, "0", nil, "Valuables")
		resolver := services.NewRuleResolver(ruleSource{inactive, value})

		res, err := resolver.Resolve(rule.Weight, dec("3"))

		require.NoError(t, err)
		assert.Equal(t, "Regular", res.Department)
	})

	t.Run("should allow custom value routing below the insurance threshold", func(t *testing.T) {
		resolver := services.NewRuleResolver(ruleSource{newRule(t, rule.Value, "500", nil, "Valuables")})

		res, err := resolver.Resolve(rule.Value, dec("600"))

		require.NoError(t, err)
		assert.Equal(t, "Valuables", res.Department)
	})
}

func TestRuleResolver_TieBreak(t *testing.T) {
	t.Run("should pick the narrowest range", func(t *testing.T) {
		wide := newRule(t, rule.Weight, "0", ptr(dec("50")), "Regular")
		unbounded := newRule(t, rule.Weight, "0", nil, "Heavy")
		narrow := newRule(t, rule.Weight, "1", ptr(dec("3")), "Mail")
		resolver := services.NewRuleResolver(ruleSource{unbounded, wide, narrow})

		res, err := resolver.Resolve(rule.Weight, dec("2"))

		require.NoError(t, err)
		assert.Equal(t, "Mail", res.Department)
		assert.True(t, res.Ambiguous)
		assert.Equal(t, 3, res.Candidates)
	})

	t.Run("should pick the earliest rule among equal ranges", func(t *testing.T) {
		first := newRule(t, rule.Weight, "0", ptr(dec("5")), "Regular")
		second := newRule(t, rule.Weight, "0", ptr(dec("5")), "Mail")
		resolver := services.NewRuleResolver(ruleSource{second, first})

		res, err := resolver.Resolve(rule.Weight, dec("2"))

		require.NoError(t, err)
		assert.Equal(t, "Regular", res.Department)
		assert.True(t, res.RuleID.IsEqual(first.ID()))
		assert.True(t, res.Ambiguous)
	})

	t.Run("should be independent of source order", func(t *testing.T) {
		a := newRule(t, rule.Value, "100", ptr(dec("200")), "A")
		b := newRule(t, rule.Value, "150", ptr(dec("400")), "B")

		forward, _ := services.NewRuleResolver(ruleSource{a, b}).Resolve(rule.Value, dec("175"))
		backward, _ := services.NewRuleResolver(ruleSource{b, a}).Resolve(rule.Value, dec("175"))

		assert.Equal(t, forward.Department, backward.Department)
		assert.Equal(t, "A", forward.Department)
	})
}

func TestRuleResolver_InvalidType(t *testing.T) {
	_, err := services.NewRuleResolver(nil).Resolve(rule.UnknownType, dec("1"))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRuleResolver_NilSource(t *testing.T) {
	res, err := services.NewRuleResolver(nil).Resolve(rule.Weight, dec("1.5"))

	require.NoError(t, err)
	assert.Equal(t, "Regular", res.Department)
}

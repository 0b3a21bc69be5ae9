package services_test

import (
	"testing"

	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/domain/services"
	"parcelrouting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParcelRouter_Process(t *testing.T) {
	t.Run("should assign weight department to uninsured parcel", func(t *testing.T) {
		router := services.NewParcelRouter(services.NewRuleResolver(ruleSource{}), defaultDepartments(t))
		p := newParcel(t, "4", "25")

		decision, err := router.Process(p)

		require.NoError(t, err)
		assert.Equal(t, parcel.AssignedToDepartment, p.Status())
		assert.Equal(t, parcel.AssignedToDepartment, decision.Status)
		assert.Equal(t, []string{"Regular"}, decision.Assigned)
		assert.Equal(t, []string{"Regular"}, p.DepartmentNames())
		require.Len(t, decision.Resolutions, 2)
		assert.Equal(t, services.SourceNone, decision.Resolutions[0].Source)
	})

	t.Run("should hold insured parcel for approval", func(t *testing.T) {
		router := services.NewParcelRouter(services.NewRuleResolver(ruleSource{}), defaultDepartments(t))
		p := newParcel(t, "12", "1500")

		decision, err := router.Process(p)

		require.NoError(t, err)
		assert.Equal(t, parcel.InsuranceApprovalRequired, p.Status())
		assert.Equal(t, []string{"Insurance"}, decision.Assigned)
		assert.Equal(t, []string{"Insurance"}, p.DepartmentNames())
	})

	t.Run("should fail on unknown department", func(t *testing.T) {
		resolver := services.NewRuleResolver(ruleSource{newRule(t, rule.Weight, "0", nil, "Oversize")})
		router := services.NewParcelRouter(resolver, defaultDepartments(t))

		_, err := router.Process(newParcel(t, "4", "25"))

		require.ErrorIs(t, err, errs.ErrReferenceIsUnresolvable)
		var unresolvable *errs.ReferenceIsUnresolvableError
		require.ErrorAs(t, err, &unresolvable)
		assert.Equal(t, "Oversize", unresolvable.Reference)
	})

	t.Run("should fail on inactive department", func(t *testing.T) {
		departments := defaultDepartments(t)
		departments["Mail"].Deactivate()
		router := services.NewParcelRouter(services.NewRuleResolver(nil), departments)

		_, err := router.Process(newParcel(t, "0.4", "1"))

		require.ErrorIs(t, err, department.ErrDepartmentIsInactive)
	})

	t.Run("should reject parcel that is not pending", func(t *testing.T) {
		router := services.NewParcelRouter(services.NewRuleResolver(nil), defaultDepartments(t))
		p := newParcel(t, "4", "25")
		require.NoError(t, p.UpdateStatus(parcel.Shipped))

		_, err := router.Process(p)

		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
		assert.Equal(t, parcel.Shipped, p.Status())
	})
}

func TestParcelRouter_DecideInsurance(t *testing.T) {
	t.Run("should assign weight department after approval", func(t *testing.T) {
		router := services.NewParcelRouter(services.NewRuleResolver(nil), defaultDepartments(t))
		p := newParcel(t, "12", "1500")
		_, err := router.Process(p)
		require.NoError(t, err)

		decision, err := router.DecideInsurance(p, true)

		require.NoError(t, err)
		assert.Equal(t, parcel.AssignedToDepartment, p.Status())
		assert.Equal(t, []string{"Heavy"}, decision.Assigned)
		assert.Equal(t, []string{"Heavy", "Insurance"}, p.DepartmentNames())
	})

	t.Run("should halt rejected parcel", func(t *testing.T) {
		router := services.NewParcelRouter(services.NewRuleResolver(nil), defaultDepartments(t))
		p := newParcel(t, "12", "1500")
		_, err := router.Process(p)
		require.NoError(t, err)

		decision, err := router.DecideInsurance(p, false)

		require.NoError(t, err)
		assert.Equal(t, parcel.InsuranceRejected, p.Status())
		assert.Empty(t, decision.Assigned)
		assert.Equal(t, []string{"Insurance"}, p.DepartmentNames())
	})

	t.Run("should reject decision for parcel not awaiting approval", func(t *testing.T) {
		router := services.NewParcelRouter(services.NewRuleResolver(nil), defaultDepartments(t))
		p := newParcel(t, "2", "10")

		_, err := router.DecideInsurance(p, true)

		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	})
}

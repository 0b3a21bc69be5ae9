package services_test

import (
	"testing"
	"time"

	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/model/rule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

type ruleSource []*rule.BusinessRule

func (s ruleSource) GetActiveByType(ruleType rule.Type) []*rule.BusinessRule {
	var out []*rule.BusinessRule
	for _, r := range s {
		if r.IsActive() && r.Type() == ruleType {
			out = append(out, r)
		}
	}
	return out
}

type departmentLookup map[string]*department.Department

func (l departmentLookup) GetByName(name string) (*department.Department, bool) {
	d, ok := l[name]
	return d, ok
}

func defaultDepartments(t *testing.T) departmentLookup {
	t.Helper()
	l := departmentLookup{}
	for _, pair := range department.DefaultNames() {
		d, err := department.NewDepartment(kernel.NewUUID(), pair[0], pair[1])
		require.NoError(t, err)
		l[d.Name()] = d
	}
	return l
}

func newRule(t *testing.T, ruleType rule.Type, minValue string, maxValue *decimal.Decimal, target string) *rule.BusinessRule {
	t.Helper()
	r, err := rule.NewBusinessRule(kernel.NewUUID(), rule.Definition{
		Name:             target + " " + minValue,
		Type:             ruleType,
		Minimum:          dec(minValue),
		Maximum:          maxValue,
		TargetDepartment: target,
	})
	require.NoError(t, err)
	// creation order must be observable by the tie-break
	time.Sleep(time.Millisecond)
	return r
}

func newParcel(t *testing.T, weight, value string) *parcel.Parcel {
	t.Helper()
	address, err := customer.NewAddress(customer.AddressFields{Street: "Markt", Number: "3", PostalCode: "5911AA"})
	require.NoError(t, err)
	recipient, err := customer.NewCustomer("Piet Peters", address)
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), recipient, dec(weight), dec(value))
	require.NoError(t, err)
	return p
}

// Package queries contains read operations for retrieving system state.
// Handlers read through the ports and return read models detached from the
// domain objects, so callers cannot mutate stored state through them.
package queries

import (
	"time"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/model/rule"

	"github.com/shopspring/decimal"
)

// ParcelView is the read model of a parcel.
type ParcelView struct {
	ID                kernel.UUID
	RecipientName     string
	Address           customer.AddressFields
	Weight            decimal.Decimal
	Value             decimal.Decimal
	Status            parcel.Status
	RequiresInsurance bool
	Departments       []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ContainerView is the read model of a shipping container and its parcels.
type ContainerView struct {
	ID           kernel.UUID
	ContainerID  string
	ShippingDate time.Time
	Status       container.Status
	Parcels      []ParcelView
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DepartmentView is the read model of a department.
type DepartmentView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
}

// RuleView is the read model of a business rule. Maximum is nil for rules
// unbounded above.
type RuleView struct {
	ID               kernel.UUID
	Name             string
	Description      string
	Type             rule.Type
	Minimum          decimal.Decimal
	Maximum          *decimal.Decimal
	TargetDepartment string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func newParcelView(p *parcel.Parcel) ParcelView {
	return ParcelView{
		ID:                p.ID(),
		RecipientName:     p.Recipient().Name(),
		Address:           p.Recipient().Address().Fields(),
		Weight:            p.Weight(),
		Value:             p.Value(),
		Status:            p.Status(),
		RequiresInsurance: p.RequiresInsuranceApproval(),
		Departments:       p.DepartmentNames(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func newParcelViews(parcels []*parcel.Parcel) []ParcelView {
	views := make([]ParcelView, len(parcels))
	for i, p := range parcels {
		views[i] = newParcelView(p)
	}
	return views
}

func newContainerView(c *container.ShippingContainer) ContainerView {
	return ContainerView{
		ID:           c.ID(),
		ContainerID:  c.ContainerID(),
		ShippingDate: c.ShippingDate(),
		Status:       c.Status(),
		Parcels:      newParcelViews(c.Parcels()),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func newContainerViews(containers []*container.ShippingContainer) []ContainerView {
	views := make([]ContainerView, len(containers))
	for i, c := range containers {
		views[i] = newContainerView(c)
	}
	return views
}

func newDepartmentView(d *department.Department) DepartmentView {
	return DepartmentView{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Active:      d.IsActive(),
		CreatedAt:   d.CreatedAt(),
	}
}

func newRuleView(r *rule.BusinessRule) RuleView {
	return RuleView{
		ID:               r.ID(),
		Name:             r.Name(),
		Description:      r.Description(),
		Type:             r.Type(),
		Minimum:          r.Minimum(),
		Maximum:          r.Maximum(),
		TargetDepartment: r.TargetDepartment(),
		Active:           r.IsActive(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
}

func newRuleViews(rules []*rule.BusinessRule) []RuleView {
	views := make([]RuleView, len(rules))
	for i, r := range rules {
		views[i] = newRuleView(r)
	}
	return views
}

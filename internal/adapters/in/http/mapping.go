package http

import (
	"parcelrouting/internal/adapters/in/http/api"
	"parcelrouting/internal/core/application/usecases/queries"
	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func toAddress(f customer.AddressFields) api.Address {
	return api.Address{
		Street:       f.Street,
		Number:       f.Number,
		Complement:   f.Complement,
		Neighborhood: f.Neighborhood,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
		Country:      f.Country,
	}
}

func fromAddress(a *api.Address) customer.AddressFields {
	if a == nil {
		return customer.AddressFields{}
	}
	return customer.AddressFields{
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
	}
}

func toParcel(v queries.ParcelView) api.Parcel {
	return api.Parcel{
		ID:                v.ID.Google(),
		RecipientName:     v.RecipientName,
		Address:           toAddress(v.Address),
		Weight:            v.Weight.InexactFloat64(),
		Value:             v.Value.InexactFloat64(),
		Status:            v.Status.String(),
		RequiresInsurance: v.RequiresInsurance,
		Departments:       v.Departments,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toParcels(views []queries.ParcelView) []api.Parcel {
	out := make([]api.Parcel, len(views))
	for i, v := range views {
		out[i] = toParcel(v)
	}
	return out
}

func toContainer(v queries.ContainerView) api.Container {
	return api.Container{
		ID:           v.ID.Google(),
		ContainerID:  v.ContainerID,
		ShippingDate: openapi_types.Date{Time: v.ShippingDate},
		Status:       v.Status.String(),
		Parcels:      toParcels(v.Parcels),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toContainers(views []queries.ContainerView) []api.Container {
	out := make([]api.Container, len(views))
	for i, v := range views {
		out[i] = toContainer(v)
	}
	return out
}

func toDepartment(v queries.DepartmentView) api.Department {
	return api.Department{
		ID:          v.ID.Google(),
		Name:        v.Name,
		Description: v.Description,
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
	}
}

func toRule(v queries.RuleView) api.Rule {
	out := api.Rule{
		ID:               v.ID.Google(),
		Name:             v.Name,
		Description:      v.Description,
		Type:             v.Type.String(),
		Minimum:          v.Minimum.InexactFloat64(),
		TargetDepartment: v.TargetDepartment,
		Active:           v.Active,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.Maximum != nil {
		maximum := v.Maximum.InexactFloat64()
		out.Maximum = &maximum
	}
	return out
}

func toRules(views []queries.RuleView) []api.Rule {
	out := make([]api.Rule, len(views))
	for i, v := range views {
		out[i] = toRule(v)
	}
	return out
}

func toResolution(r services.Resolution) api.Resolution {
	out := api.Resolution{
		Measurement: r.Measurement.InexactFloat64(),
		Source:      string(r.Source),
		Ambiguous:   r.Ambiguous,
		Candidates:  r.Candidates,
	}
	if r.Found() {
		department := r.Department
		out.Department = &department
	}
	if r.RuleID != nil {
		id := r.RuleID.Google()
		out.RuleID = &id
	}
	return out
}

func toClassification(v queries.ClassificationView) api.Classification {
	return api.Classification{
		Weight:            toResolution(v.Weight),
		Value:             toResolution(v.Value),
		RequiresInsurance: v.RequiresInsurance,
		Departments:       v.Departments,
	}
}

func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func toDecimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

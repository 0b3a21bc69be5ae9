package queries

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ParcelFilter narrows a parcel listing. Zero fields do not filter;
// set fields are combined with AND.
type ParcelFilter struct {
	// Status keeps parcels in this status. parcel.Unknown keeps all.
	Status parcel.Status
	// Weight keeps parcels whose weight lies within the range.
	Weight *kernel.Range
	// Value keeps parcels whose value lies within the range.
	Value *kernel.Range
	// RequiringInsurance keeps parcels valued over the insurance threshold.
	RequiringInsurance bool
}

func (f ParcelFilter) matches(p *parcel.Parcel) bool {
	if f.Status != parcel.Unknown && p.Status() != f.Status {
		return false
	}
	if f.Weight != nil && !f.Weight.Contains(p.Weight()) {
		return false
	}
	if f.Value != nil && !f.Value.Contains(p.Value()) {
		return false
	}
	if f.RequiringInsurance && !p.RequiresInsuranceApproval() {
		return false
	}
	return true
}

// ListParcelsQuery lists parcels matching a filter, in registration order.
//
// Example:
//
//	weight := kernel.MustNewRange(decimal.NewFromInt(1), nil)
//	query, err := NewListParcelsQuery(ParcelFilter{Status: parcel.Pending, Weight: &weight})
type ListParcelsQuery struct {
	filter ParcelFilter
	guard  guard.ConstructorGuard
}

// NewListParcelsQuery creates the query.
func NewListParcelsQuery(filter ParcelFilter) (ListParcelsQuery, error) {
	var errList []error
	if filter.Status != parcel.Unknown {
		errList = append(errList, filter.Status.Validate())
	}
	if filter.Weight != nil {
		errList = append(errList, filter.Weight.Validate())
	}
	if filter.Value != nil {
		errList = append(errList, filter.Value.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListParcelsQuery{}, err
	}

	return ListParcelsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

// Filter returns the parcel filter.
func (q ListParcelsQuery) Filter() ParcelFilter {
	return q.filter
}

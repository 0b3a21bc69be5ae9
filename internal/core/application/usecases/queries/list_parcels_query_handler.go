package queries

import (
	"context"

	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/ports"
)

// ListParcelsQueryHandler lists parcels through the repository index that
// narrows the result most, then applies the remaining filter fields.
type ListParcelsQueryHandler struct {
	parcels ports.ParcelRepository
}

// NewListParcelsQueryHandler creates the handler.
func NewListParcelsQueryHandler(parcels ports.ParcelRepository) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{parcels: parcels}
}

// Handle returns the matching parcels. The result is never nil.
func (h ListParcelsQueryHandler) Handle(_ context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()

	var candidates []*parcel.Parcel
	switch {
	case filter.Status != parcel.Unknown:
		candidates = h.parcels.GetByStatus(filter.Status)
	case filter.RequiringInsurance:
		candidates = h.parcels.GetRequiringInsurance()
	case filter.Weight != nil:
		candidates = h.parcels.GetByWeightRange(*filter.Weight)
	case filter.Value != nil:
		candidates = h.parcels.GetByValueRange(*filter.Value)
	default:
		candidates = h.parcels.GetAll()
	}

	views := make([]ParcelView, 0, len(candidates))
	for _, p := range candidates {
		if filter.matches(p) {
			views = append(views, newParcelView(p))
		}
	}
	return views, nil
}

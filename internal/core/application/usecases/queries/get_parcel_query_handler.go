package queries

import (
	"context"

	"parcelrouting/internal/core/ports"
	"parcelrouting/internal/pkg/errs"
)

// GetParcelQueryHandler reads a single parcel.
type GetParcelQueryHandler struct {
	parcels ports.ParcelRepository
}

// NewGetParcelQueryHandler creates the handler.
func NewGetParcelQueryHandler(parcels ports.ParcelRepository) GetParcelQueryHandler {
	return GetParcelQueryHandler{parcels: parcels}
}

// Handle returns the parcel, or errs.ObjectNotFoundError.
func (h GetParcelQueryHandler) Handle(_ context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	p, ok := h.parcels.Get(query.ID())
	if !ok {
		return ParcelView{}, errs.NewObjectNotFoundError("parcel", query.ID().String())
	}
	return newParcelView(p), nil
}

package ports

import (
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
)

// ParcelRepository stores parcels independently of the containers owning them.
type ParcelRepository interface {
	Repository[*parcel.Parcel]

	// GetByStatus returns the parcels currently in status.
	GetByStatus(status parcel.Status) []*parcel.Parcel

	// GetByWeightRange returns the parcels whose weight lies within r.
	GetByWeightRange(r kernel.Range) []*parcel.Parcel

	// GetByValueRange returns the parcels whose value lies within r.
	GetByValueRange(r kernel.Range) []*parcel.Parcel

	// GetRequiringInsurance returns the parcels valued over the insurance threshold.
	GetRequiringInsurance() []*parcel.Parcel
}

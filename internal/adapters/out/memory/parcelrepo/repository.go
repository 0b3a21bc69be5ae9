// Package parcelrepo implements ports.ParcelRepository on the in-memory store.
package parcelrepo

import (
	"parcelrouting/internal/adapters/out/memory"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/ports"
)

var _ ports.ParcelRepository = (*Repository)(nil)

// Repository stores parcels by id.
type Repository struct {
	*memory.Store[*parcel.Parcel]
}

// NewRepository creates an empty parcel repository.
func NewRepository() *Repository {
	return &Repository{
		Store: memory.NewStore("parcel",
			(*parcel.Parcel).ID,
			memory.WithClone((*parcel.Parcel).Clone),
			memory.WithValidator((*parcel.Parcel).Validate),
		),
	}
}

// GetByStatus returns the parcels currently in status.
func (r *Repository) GetByStatus(status parcel.Status) []*parcel.Parcel {
	return r.Find(func(p *parcel.Parcel) bool {
		return p.Status() == status
	})
}

// GetByWeightRange returns the parcels whose weight lies within rng.
func (r *Repository) GetByWeightRange(rng kernel.Range) []*parcel.Parcel {
	return r.Find(func(p *parcel.Parcel) bool {
		return rng.Contains(p.Weight())
	})
}

// GetByValueRange returns the parcels whose value lies within rng.
func (r *Repository) GetByValueRange(rng kernel.Range) []*parcel.Parcel {
	return r.Find(func(p *parcel.Parcel) bool {
		return rng.Contains(p.Value())
	})
}

// GetRequiringInsurance returns the parcels valued over the insurance threshold.
func (r *Repository) GetRequiringInsurance() []*parcel.Parcel {
	return r.Find((*parcel.Parcel).RequiresInsuranceApproval)
}

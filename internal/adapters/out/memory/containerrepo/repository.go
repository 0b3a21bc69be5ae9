// Package containerrepo implements ports.ContainerRepository on the in-memory
// store, with a unique index on the human-facing container id.
package containerrepo

import (
	"time"

	"parcelrouting/internal/adapters/out/memory"
	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/ports"
)

const containerIDIndex = "container id"

var _ ports.ContainerRepository = (*Repository)(nil)

// Repository stores shipping containers by id and by container id.
type Repository struct {
	*memory.Store[*container.ShippingContainer]
}

// NewRepository creates an empty container repository.
func NewRepository() *Repository {
	return &Repository{
		Store: memory.NewStore("container",
			(*container.ShippingContainer).ID,
			memory.WithClone((*container.ShippingContainer).Clone),
			memory.WithValidator((*container.ShippingContainer).Validate),
			memory.WithUniqueIndex(containerIDIndex, (*container.ShippingContainer).ContainerID),
		),
	}
}

// GetByContainerID looks a container up by its human-facing id.
func (r *Repository) GetByContainerID(containerID string) (*container.ShippingContainer, bool) {
	return r.GetBy(containerIDIndex, containerID)
}

// GetByStatus returns the containers currently in status.
func (r *Repository) GetByStatus(status container.Status) []*container.ShippingContainer {
	return r.Find(func(c *container.ShippingContainer) bool {
		return c.Status() == status
	})
}

// GetByDateRange returns the containers shipping within [from, to].
func (r *Repository) GetByDateRange(from, to time.Time) []*container.ShippingContainer {
	return r.Find(func(c *container.ShippingContainer) bool {
		d := c.ShippingDate()
		return !d.Before(from) && !d.After(to)
	})
}

// GetByParcel returns the container owning the parcel with parcelID.
func (r *Repository) GetByParcel(parcelID kernel.UUID) (*container.ShippingContainer, bool) {
	found := r.Find(func(c *container.ShippingContainer) bool {
		return c.ContainsParcel(parcelID)
	})
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

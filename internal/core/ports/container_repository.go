package ports

import (
	"time"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/kernel"
)

// ContainerRepository stores shipping containers, uniquely indexed by their
// human-facing container id.
type ContainerRepository interface {
	Repository[*container.ShippingContainer]

	// GetByContainerID looks a container up by its human-facing id.
	GetByContainerID(containerID string) (*container.ShippingContainer, bool)

	// GetByStatus returns the containers currently in status.
	GetByStatus(status container.Status) []*container.ShippingContainer

	// GetByDateRange returns the containers shipping within [from, to], both inclusive.
	GetByDateRange(from, to time.Time) []*container.ShippingContainer

	// GetByParcel returns the container owning the parcel with id.
	GetByParcel(parcelID kernel.UUID) (*container.ShippingContainer, bool)
}

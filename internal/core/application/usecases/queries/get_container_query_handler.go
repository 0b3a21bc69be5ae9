package queries

import (
	"context"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/ports"
	"parcelrouting/internal/pkg/errs"
)

// GetContainerQueryHandler reads a single container by id or container id.
type GetContainerQueryHandler struct {
	containers ports.ContainerRepository
}

// NewGetContainerQueryHandler creates the handler.
func NewGetContainerQueryHandler(containers ports.ContainerRepository) GetContainerQueryHandler {
	return GetContainerQueryHandler{containers: containers}
}

// Handle returns the container with its parcels, or errs.ObjectNotFoundError.
func (h GetContainerQueryHandler) Handle(_ context.Context, query GetContainerQuery) (ContainerView, error) {
	if err := query.Validate(); err != nil {
		return ContainerView{}, err
	}

	var (
		c   *container.ShippingContainer
		ok  bool
		key string
	)
	if query.ByContainerID() {
		key = query.ContainerID()
		c, ok = h.containers.GetByContainerID(key)
	} else {
		key = query.ID().String()
		c, ok = h.containers.Get(query.ID())
	}
	if !ok {
		return ContainerView{}, errs.NewObjectNotFoundError("container", key)
	}
	return newContainerView(c), nil
}

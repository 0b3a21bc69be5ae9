package queries

import (
	"context"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/ports"
)

// ListContainersQueryHandler lists containers by status and shipping date.
type ListContainersQueryHandler struct {
	containers ports.ContainerRepository
}

// NewListContainersQueryHandler creates the handler.
func NewListContainersQueryHandler(containers ports.ContainerRepository) ListContainersQueryHandler {
	return ListContainersQueryHandler{containers: containers}
}

// Handle returns the matching containers. The result is never nil.
func (h ListContainersQueryHandler) Handle(_ context.Context, query ListContainersQuery) ([]ContainerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()

	var candidates []*container.ShippingContainer
	switch {
	case filter.Status != container.Unknown:
		candidates = h.containers.GetByStatus(filter.Status)
	case !filter.From.IsZero() && !filter.To.IsZero():
		candidates = h.containers.GetByDateRange(filter.From, filter.To)
	default:
		candidates = h.containers.GetAll()
	}

	views := make([]ContainerView, 0, len(candidates))
	for _, c := range candidates {
		if filter.matches(c) {
			views = append(views, newContainerView(c))
		}
	}
	return views, nil
}

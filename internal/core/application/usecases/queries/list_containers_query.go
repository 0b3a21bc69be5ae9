package queries

import (
	"errors"
	"fmt"
	"time"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var ErrListContainersQueryIsNotConstructed = errors.New(
	"ListContainersQuery must be created via NewListContainersQuery constructor",
)

// ContainerFilter narrows a container listing. Zero fields do not filter.
// From and To bound the shipping date, both inclusive.
type ContainerFilter struct {
	Status container.Status
	From   time.Time
	To     time.Time
}

func (f ContainerFilter) matches(c *container.ShippingContainer) bool {
	if f.Status != container.Unknown && c.Status() != f.Status {
		return false
	}
	if !f.From.IsZero() && c.ShippingDate().Before(f.From) {
		return false
	}
	if !f.To.IsZero() && c.ShippingDate().After(f.To) {
		return false
	}
	return true
}

// ListContainersQuery lists containers matching a filter, in import order.
type ListContainersQuery struct {
	filter ContainerFilter
	guard  guard.ConstructorGuard
}

// NewListContainersQuery creates the query.
//
// Returns:
//   - errs.ValueIsInvalidError when the status is unknown or To precedes From
func NewListContainersQuery(filter ContainerFilter) (ListContainersQuery, error) {
	if filter.Status != container.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return ListContainersQuery{}, err
		}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return ListContainersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"shipping date range",
			fmt.Errorf("%s is before %s", filter.To.Format(time.DateOnly), filter.From.Format(time.DateOnly)),
		)
	}

	return ListContainersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListContainersQuery) Validate() error {
	return q.guard.Validate(ErrListContainersQueryIsNotConstructed)
}

// Filter returns the container filter.
func (q ListContainersQuery) Filter() ContainerFilter {
	return q.filter
}

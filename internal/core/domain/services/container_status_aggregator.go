package services

import (
	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/parcel"
)

// ContainerStatusAggregator derives a container status from its parcels.
//
// Aggregation rules, first match wins:
//   - no parcels: Pending
//   - every parcel Delivered: Delivered
//   - every parcel Shipped or Delivered: Shipped
//   - every parcel Processed or later, or halted (Failed, InsuranceRejected): Processed
//   - any parcel past Pending: Processing
//   - otherwise: Pending
type ContainerStatusAggregator struct{}

// NewContainerStatusAggregator creates a ContainerStatusAggregator.
func NewContainerStatusAggregator() ContainerStatusAggregator {
	return ContainerStatusAggregator{}
}

// Suggest returns the status the container should have given its parcels.
func (ContainerStatusAggregator) Suggest(parcels []*parcel.Parcel) container.Status {
	if len(parcels) == 0 {
		return container.Pending
	}

	allDelivered, allShipped, allSettled, anyProgressed := true, true, true, false
	for _, p := range parcels {
		s := p.Status()
		allDelivered = allDelivered && s == parcel.Delivered
		allShipped = allShipped && s.HasReached(parcel.Shipped)
		allSettled = allSettled && (isHalted(s) || s.HasReached(parcel.Processed))
		anyProgressed = anyProgressed || s != parcel.Pending
	}

	switch {
	case allDelivered:
		return container.Delivered
	case allShipped:
		return container.Shipped
	case allSettled:
		return container.Processed
	case anyProgressed:
		return container.Processing
	default:
		return container.Pending
	}
}

// Advance moves c forward one legal step at a time until it reaches the
// suggested status. It never moves a container backwards or into Failed.
//
// Returns:
//   - bool: whether the status changed
//   - error: when a transition fails
func (a ContainerStatusAggregator) Advance(c *container.ShippingContainer, parcels []*parcel.Parcel) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	target := a.Suggest(parcels)
	changed := false
	for c.Status() < target && c.Status() != container.Failed {
		next := c.Status() + 1
		if !c.Status().CanTransitionTo(next) {
			break
		}
		if err := c.TransitionTo(next); err != nil {
			return changed, err
		}
		changed = true
	}
	return changed, nil
}

// isHalted reports whether a parcel in s will never move again.
func isHalted(s parcel.Status) bool {
	return s == parcel.Failed || s == parcel.InsuranceRejected
}

package container

import (
	"errors"
	"strings"
	"time"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/pkg/clock"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var (
	// ErrShippingContainerIsNotConstructed is returned when using a zero-value ShippingContainer.
	ErrShippingContainerIsNotConstructed = errors.New(
		"ShippingContainer must be created via NewShippingContainer constructor")
	// ErrContainerIDIsRequired is returned when the human-facing container id is blank.
	ErrContainerIDIsRequired = errs.NewValueIsInvalidErrorWithCause(
		"container id", errors.New("container id is required"))
	// ErrShippingDateIsRequired is returned when the shipping date is the zero time.
	ErrShippingDateIsRequired = errs.NewValueIsRequiredError("shipping date")
	// ErrParcelIsRequired is returned when adding a nil parcel.
	ErrParcelIsRequired = errs.NewValueIsRequiredError("parcel")
)

// ShippingContainer groups parcels shipped together.
type ShippingContainer struct {
	id           kernel.UUID
	containerID  string
	shippingDate time.Time
	status       Status
	parcels      []*parcel.Parcel
	createdAt    time.Time
	updatedAt    time.Time
	guard        guard.ConstructorGuard
}

// NewShippingContainer creates a Pending container holding parcels in the given order.
//
// Example:
//
//	c, err := container.NewShippingContainer(kernel.NewUUID(), "CONT-2024-001", shippingDate, parcels)
func NewShippingContainer(
	id kernel.UUID,
	containerID string,
	shippingDate time.Time,
	parcels []*parcel.Parcel,
) (*ShippingContainer, error) {
	now := clock.Now()
	c := &ShippingContainer{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setContainerID(containerID),
		c.setShippingDate(shippingDate),
		c.setParcels(parcels),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the container was created through NewShippingContainer.
func (c *ShippingContainer) Validate() error {
	if c == nil {
		return ErrShippingContainerIsNotConstructed
	}
	return c.guard.Validate(ErrShippingContainerIsNotConstructed)
}

// ID returns the container's unique identifier.
func (c *ShippingContainer) ID() kernel.UUID {
	return c.id
}

// ContainerID returns the human-facing container identifier.
func (c *ShippingContainer) ContainerID() string {
	return c.containerID
}

// ShippingDate returns the planned shipping date.
func (c *ShippingContainer) ShippingDate() time.Time {
	return c.shippingDate
}

// Status returns the current lifecycle status.
func (c *ShippingContainer) Status() Status {
	return c.status
}

// CreatedAt returns when the container was imported.
func (c *ShippingContainer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the container last changed.
func (c *ShippingContainer) UpdatedAt() time.Time {
	return c.updatedAt
}

// Parcels returns copies of the owned parcels in container order.
func (c *ShippingContainer) Parcels() []*parcel.Parcel {
	out := make([]*parcel.Parcel, len(c.parcels))
	for i, p := range c.parcels {
		out[i] = p.Clone()
	}
	return out
}

// ParcelIDs returns the identifiers of the owned parcels in container order.
func (c *ShippingContainer) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.parcels))
	for i, p := range c.parcels {
		ids[i] = p.ID()
	}
	return ids
}

// ParcelCount returns the number of owned parcels.
func (c *ShippingContainer) ParcelCount() int {
	return len(c.parcels)
}

// ContainsParcel reports whether a parcel with id is owned by the container.
func (c *ShippingContainer) ContainsParcel(id kernel.UUID) bool {
	return c.indexOf(id) >= 0
}

// AddParcel appends p. Adding a parcel already owned by the container does nothing.
func (c *ShippingContainer) AddParcel(p *parcel.Parcel) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if p == nil {
		return ErrParcelIsRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if c.ContainsParcel(p.ID()) {
		return nil
	}

	c.parcels = append(c.parcels, p.Clone())
	c.touch()
	return nil
}

// ReplaceParcel swaps the owned copy of p for p, keeping its position.
//
// Returns:
//   - errs.ObjectNotFoundError when the container does not own p
func (c *ShippingContainer) ReplaceParcel(p *parcel.Parcel) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if p == nil {
		return ErrParcelIsRequired
	}

	i := c.indexOf(p.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("parcel", p.ID().String())
	}

	c.parcels[i] = p.Clone()
	c.touch()
	return nil
}

// UpdateStatus sets status without checking the state graph.
func (c *ShippingContainer) UpdateStatus(status Status) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	c.touch()
	return nil
}

// TransitionTo moves the container to next when the state graph allows it.
func (c *ShippingContainer) TransitionTo(next Status) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if !c.status.CanTransitionTo(next) {
		return errs.NewStatusTransitionIsInvalidError("container", c.status, next)
	}

	c.status = next
	c.touch()
	return nil
}

// Clone returns a deep copy sharing no mutable state with c.
func (c *ShippingContainer) Clone() *ShippingContainer {
	if c == nil {
		return nil
	}
	cp := *c
	cp.parcels = make([]*parcel.Parcel, len(c.parcels))
	for i, p := range c.parcels {
		cp.parcels[i] = p.Clone()
	}
	return &cp
}

func (c *ShippingContainer) indexOf(id kernel.UUID) int {
	for i, p := range c.parcels {
		if p.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

func (c *ShippingContainer) touch() {
	c.updatedAt = clock.Now()
}

func (c *ShippingContainer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *ShippingContainer) setContainerID(containerID string) error {
	containerID = strings.TrimSpace(containerID)
	if containerID == "" {
		return ErrContainerIDIsRequired
	}
	c.containerID = containerID
	return nil
}

func (c *ShippingContainer) setShippingDate(shippingDate time.Time) error {
	if shippingDate.IsZero() {
		return ErrShippingDateIsRequired
	}
	c.shippingDate = shippingDate.UTC()
	return nil
}

func (c *ShippingContainer) setParcels(parcels []*parcel.Parcel) error {
	c.parcels = make([]*parcel.Parcel, 0, len(parcels))
	seen := make(map[kernel.UUID]struct{}, len(parcels))

	var errList []error
	for _, p := range parcels {
		if p == nil {
			errList = append(errList, ErrParcelIsRequired)
			continue
		}
		if err := p.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if _, dup := seen[p.ID()]; dup {
			errList = append(errList, errs.NewObjectAlreadyExistsError("parcel", p.ID().String()))
			continue
		}
		seen[p.ID()] = struct{}{}
		c.parcels = append(c.parcels, p.Clone())
	}
	return errors.Join(errList...)
}

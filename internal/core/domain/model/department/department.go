package department

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/clock"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var (
	// ErrDepartmentIsNotConstructed is returned when using a zero-value Department.
	ErrDepartmentIsNotConstructed = errors.New("Department must be created via NewDepartment constructor")
	// ErrNameIsRequired is returned when the department name is blank.
	ErrNameIsRequired = errs.NewValueIsInvalidErrorWithCause("name", errors.New("name is required"))
	// ErrDepartmentIsInactive is returned when an inactive department is used
	// for a new assignment.
	ErrDepartmentIsInactive = errors.New("department is inactive")
)

// Department is a named handling unit (e.g. "Mail", "Heavy", "Insurance").
type Department struct {
	id          kernel.UUID
	name        string
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewDepartment creates an active department.
//
// Example:
//
//	d, err := department.NewDepartment(kernel.NewUUID(), "Heavy", "Parcels over 10 kg")
func NewDepartment(id kernel.UUID, name, description string) (*Department, error) {
	now := clock.Now()
	d := &Department{
		active:    true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	d.description = strings.TrimSpace(description)
	return d, nil
}

// Validate ensures the department was created through NewDepartment.
func (d *Department) Validate() error {
	if d == nil {
		return ErrDepartmentIsNotConstructed
	}
	return d.guard.Validate(ErrDepartmentIsNotConstructed)
}

// IsEqual compares departments by identifier.
func (d *Department) IsEqual(other *Department) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the department's unique identifier.
func (d *Department) ID() kernel.UUID {
	return d.id
}

// Name returns the unique department name.
func (d *Department) Name() string {
	return d.name
}

// Description returns the free-text description.
func (d *Department) Description() string {
	return d.description
}

// IsActive reports whether the department receives new parcels.
func (d *Department) IsActive() bool {
	return d.active
}

// CreatedAt returns when the department was created.
func (d *Department) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns when the department last changed.
func (d *Department) UpdatedAt() time.Time {
	return d.updatedAt
}

// Activate marks the department active and stamps updated-at.
func (d *Department) Activate() {
	d.active = true
	d.touch()
}

// Deactivate marks the department inactive and stamps updated-at. An inactive
// department can still be looked up but must not receive new assignments.
func (d *Department) Deactivate() {
	d.active = false
	d.touch()
}

// UpdateDescription replaces the free-text description.
func (d *Department) UpdateDescription(description string) {
	d.description = strings.TrimSpace(description)
	d.touch()
}

// EnsureAssignable fails with ErrDepartmentIsInactive when the department
// cannot take new parcels.
func (d *Department) EnsureAssignable() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.active {
		return errs.NewValueIsInvalidErrorWithCause("department", fmt.Errorf("%q: %w", d.name, ErrDepartmentIsInactive))
	}
	return nil
}

// Clone returns an independent copy.
func (d *Department) Clone() *Department {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

func (d *Department) touch() {
	d.updatedAt = clock.Now()
}

func (d *Department) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Department) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

// Names of the departments every deployment is seeded with. They are the
// targets of the fixed default classification bands.
const (
	Mail      = "Mail"
	Regular   = "Regular"
	Heavy     = "Heavy"
	Insurance = "Insurance"
)

// DefaultNames lists the seeded departments with their descriptions, in seeding order.
func DefaultNames() [][2]string {
	return [][2]string{
		{Mail, "Parcels up to 1 kg"},
		{Regular, "Parcels over 1 kg up to 10 kg"},
		{Heavy, "Parcels over 10 kg"},
		{Insurance, "Parcels valued over 1000 that need insurance approval"},
	}
}

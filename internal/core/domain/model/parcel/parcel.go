package parcel

import (
	"errors"
	"sort"
	"time"

	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/clock"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Classification limits. Weights are in kilograms.
const (
	mailWeightLimitKg       = 1
	regularWeightLimitKg    = 10
	insuranceValueThreshold = 1000
)

var (
	// ErrParcelIsNotConstructed is returned when using a zero-value Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
	// ErrRecipientIsRequired is returned when a parcel has no recipient.
	ErrRecipientIsRequired = errs.NewValueIsRequiredError("recipient")
	// ErrDepartmentIsRequired is returned when assigning or removing a nil department.
	ErrDepartmentIsRequired = errs.NewValueIsRequiredError("department")
	// ErrMeasurementsAreLocked is the cause reported when updating a parcel that left Pending.
	ErrMeasurementsAreLocked = errors.New("measurements can only change while the parcel is Pending")
)

// MailWeightLimit is the heaviest weight handled as mail.
func MailWeightLimit() decimal.Decimal { return decimal.NewFromInt(mailWeightLimitKg) }

// RegularWeightLimit is the heaviest weight handled as a regular parcel.
func RegularWeightLimit() decimal.Decimal { return decimal.NewFromInt(regularWeightLimitKg) }

// InsuranceValueThreshold is the value above which insurance approval is required.
func InsuranceValueThreshold() decimal.Decimal { return decimal.NewFromInt(insuranceValueThreshold) }

// Parcel is the aggregate root of the routing workflow.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and a recipient
//   - Weight is greater than 0 and value is at least 0
//   - Assigned departments hold no duplicates
//   - Can only be created through NewParcel
type Parcel struct {
	id          kernel.UUID
	recipient   *customer.Customer
	weight      decimal.Decimal
	value       decimal.Decimal
	status      Status
	departments map[kernel.UUID]*department.Department
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewParcel creates a Pending parcel.
//
// Parameters:
//   - id: unique identifier of the parcel
//   - recipient: customer the parcel is addressed to (required)
//   - weight: kilograms, must be greater than 0
//   - value: declared value, must not be negative
//
// Returns:
//   - *Parcel: the created parcel if all validations pass
//   - error: every validation failure joined together
//
// Example:
//
//	p, err := parcel.NewParcel(kernel.NewUUID(), recipient, decimal.NewFromFloat(2.5), decimal.NewFromInt(80))
func NewParcel(
	id kernel.UUID,
	recipient *customer.Customer,
	weight, value decimal.Decimal,
) (*Parcel, error) {
	now := clock.Now()
	p := &Parcel{
		status:      Pending,
		departments: make(map[kernel.UUID]*department.Department),
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setRecipient(recipient),
		validateMeasurements(weight, value),
	); err != nil {
		return nil, err
	}

	p.weight = weight
	p.value = value
	return p, nil
}

// Validate ensures the Parcel was created through NewParcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Recipient returns the customer the parcel is addressed to.
func (p *Parcel) Recipient() *customer.Customer {
	return p.recipient
}

// Weight returns the weight in kilograms.
func (p *Parcel) Weight() decimal.Decimal {
	return p.weight
}

// Value returns the declared value.
func (p *Parcel) Value() decimal.Decimal {
	return p.value
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns when the parcel was registered.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the parcel last changed.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// Departments returns copies of the assigned departments ordered by name.
func (p *Parcel) Departments() []*department.Department {
	out := make([]*department.Department, 0, len(p.departments))
	for _, d := range p.departments {
		out = append(out, d.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// DepartmentNames returns the names of the assigned departments ordered by name.
func (p *Parcel) DepartmentNames() []string {
	depts := p.Departments()
	names := make([]string, len(depts))
	for i, d := range depts {
		names[i] = d.Name()
	}
	return names
}

// HasDepartment reports whether a department with the given id is assigned.
func (p *Parcel) HasDepartment(id kernel.UUID) bool {
	_, ok := p.departments[id]
	return ok
}

// RequiresInsuranceApproval reports whether the value exceeds the insurance threshold.
func (p *Parcel) RequiresInsuranceApproval() bool {
	return p.value.GreaterThan(InsuranceValueThreshold())
}

// IsMailParcel reports whether the parcel weighs at most 1 kg.
func (p *Parcel) IsMailParcel() bool {
	return p.weight.LessThanOrEqual(MailWeightLimit())
}

// IsRegularParcel reports whether the parcel weighs over 1 kg and at most 10 kg.
func (p *Parcel) IsRegularParcel() bool {
	return p.weight.GreaterThan(MailWeightLimit()) && p.weight.LessThanOrEqual(RegularWeightLimit())
}

// IsHeavyParcel reports whether the parcel weighs over 10 kg.
func (p *Parcel) IsHeavyParcel() bool {
	return p.weight.GreaterThan(RegularWeightLimit())
}

// AssignDepartment adds d to the assigned departments. Assigning a department
// that is already assigned does nothing. A department can only be newly
// assigned while it is active.
//
// Returns:
//   - ErrDepartmentIsRequired when d is nil
//   - department.ErrDepartmentIsInactive (wrapped) when d is inactive
func (p *Parcel) AssignDepartment(d *department.Department) error {
	if d == nil {
		return ErrDepartmentIsRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.HasDepartment(d.ID()) {
		return nil
	}
	if err := d.EnsureAssignable(); err != nil {
		return err
	}

	p.departments[d.ID()] = d.Clone()
	p.touch()
	return nil
}

// RemoveDepartment removes d from the assigned departments. Removing a
// department that is not assigned does nothing.
func (p *Parcel) RemoveDepartment(d *department.Department) error {
	if d == nil {
		return ErrDepartmentIsRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.HasDepartment(d.ID()) {
		return nil
	}

	delete(p.departments, d.ID())
	p.touch()
	return nil
}

// UpdateStatus sets status without checking the state graph. Only the
// status value itself is validated.
func (p *Parcel) UpdateStatus(status Status) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	p.touch()
	return nil
}

// TransitionTo moves the parcel to next when the state graph allows it.
//
// Returns:
//   - errs.StatusTransitionIsInvalidError when the transition is not allowed
func (p *Parcel) TransitionTo(next Status) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	if !p.status.CanTransitionTo(next, p.RequiresInsuranceApproval()) {
		return errs.NewStatusTransitionIsInvalidError("parcel", p.status, next)
	}

	p.status = next
	p.touch()
	return nil
}

// Update replaces weight and value. Only a Pending parcel accepts new
// measurements, since routing already used the old ones.
// Nothing changes when either is invalid.
func (p *Parcel) Update(weight, value decimal.Decimal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status", ErrMeasurementsAreLocked)
	}
	if err := validateMeasurements(weight, value); err != nil {
		return err
	}

	p.weight = weight
	p.value = value
	p.touch()
	return nil
}

// Clone returns a deep copy sharing no mutable state with p.
func (p *Parcel) Clone() *Parcel {
	if p == nil {
		return nil
	}
	cp := *p
	cp.recipient = p.recipient.Clone()
	cp.departments = make(map[kernel.UUID]*department.Department, len(p.departments))
	for id, d := range p.departments {
		cp.departments[id] = d.Clone()
	}
	return &cp
}

func (p *Parcel) touch() {
	p.updatedAt = clock.Now()
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setRecipient(recipient *customer.Customer) error {
	if recipient == nil {
		return ErrRecipientIsRequired
	}
	if err := recipient.Validate(); err != nil {
		return err
	}
	p.recipient = recipient
	return nil
}

func validateMeasurements(weight, value decimal.Decimal) error {
	var errList []error
	if !weight.IsPositive() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weight", weight, "greater than 0", "unbounded"))
	}
	if value.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("value", value, decimal.Zero, "unbounded"))
	}
	return errors.Join(errList...)
}

package rule

import (
	"errors"
	"strings"
	"time"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/clock"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrBusinessRuleIsNotConstructed is returned when using a zero-value BusinessRule.
	ErrBusinessRuleIsNotConstructed = errors.New("BusinessRule must be created via NewBusinessRule constructor")
	// ErrNameIsRequired is returned when the rule name is blank.
	ErrNameIsRequired = errs.NewValueIsInvalidErrorWithCause("name", errors.New("name is required"))
	// ErrTargetDepartmentIsRequired is returned when the target department name is blank.
	ErrTargetDepartmentIsRequired = errs.NewValueIsInvalidErrorWithCause(
		"target department", errors.New("target department is required"))
)

// Definition carries the editable fields of a rule.
type Definition struct {
	Name             string
	Description      string
	Type             Type
	Minimum          decimal.Decimal
	Maximum          *decimal.Decimal
	TargetDepartment string
}

// BusinessRule routes measurements within its thresholds to a department.
type BusinessRule struct {
	id               kernel.UUID
	name             string
	description      string
	ruleType         Type
	thresholds       kernel.Range
	targetDepartment string
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
	guard            guard.ConstructorGuard
}

// NewBusinessRule creates an active rule from def.
//
// Example:
//
//	maxWeight := decimal.NewFromInt(2)
//	r, err := rule.NewBusinessRule(kernel.NewUUID(), rule.Definition{
//	    Name:             "small parcels",
//	    Type:             rule.Weight,
//	    Minimum:          decimal.Zero,
//	    Maximum:          &maxWeight,
//	    TargetDepartment: "Mail",
//	})
func NewBusinessRule(id kernel.UUID, def Definition) (*BusinessRule, error) {
	now := clock.Now()
	r := &BusinessRule{
		active:    true,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	r.id = id

	if err := r.apply(def); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate ensures the rule was created through NewBusinessRule.
func (r *BusinessRule) Validate() error {
	if r == nil {
		return ErrBusinessRuleIsNotConstructed
	}
	return r.guard.Validate(ErrBusinessRuleIsNotConstructed)
}

// ID returns the rule's unique identifier.
func (r *BusinessRule) ID() kernel.UUID {
	return r.id
}

// Name returns the unique rule name.
func (r *BusinessRule) Name() string {
	return r.name
}

// Description returns the free-text description.
func (r *BusinessRule) Description() string {
	return r.description
}

// Type returns the measurement the rule applies to.
func (r *BusinessRule) Type() Type {
	return r.ruleType
}

// Thresholds returns the inclusive threshold range.
func (r *BusinessRule) Thresholds() kernel.Range {
	return r.thresholds
}

// Minimum returns the inclusive lower threshold.
func (r *BusinessRule) Minimum() decimal.Decimal {
	return r.thresholds.Min()
}

// Maximum returns the inclusive upper threshold, or nil when unbounded.
func (r *BusinessRule) Maximum() *decimal.Decimal {
	return r.thresholds.Max()
}

// TargetDepartment returns the name of the department matching parcels go to.
func (r *BusinessRule) TargetDepartment() string {
	return r.targetDepartment
}

// IsActive reports whether the rule takes part in resolution.
func (r *BusinessRule) IsActive() bool {
	return r.active
}

// CreatedAt returns when the rule was created.
func (r *BusinessRule) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the rule last changed.
func (r *BusinessRule) UpdatedAt() time.Time {
	return r.updatedAt
}

// Matches reports whether the rule is active, of type t, and its thresholds
// contain m.
func (r *BusinessRule) Matches(t Type, m decimal.Decimal) bool {
	return r.active && r.ruleType == t && r.thresholds.Contains(m)
}

// Update replaces every editable field. Nothing changes when def is invalid.
func (r *BusinessRule) Update(def Definition) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := r.apply(def); err != nil {
		return err
	}
	r.updatedAt = clock.Now()
	return nil
}

// Activate makes the rule take part in resolution.
func (r *BusinessRule) Activate() {
	r.active = true
	r.updatedAt = clock.Now()
}

// Deactivate excludes the rule from resolution without deleting it.
func (r *BusinessRule) Deactivate() {
	r.active = false
	r.updatedAt = clock.Now()
}

// Clone returns an independent copy.
func (r *BusinessRule) Clone() *BusinessRule {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

func (r *BusinessRule) apply(def Definition) error {
	name := strings.TrimSpace(def.Name)
	target := strings.TrimSpace(def.TargetDepartment)

	var errList []error
	if name == "" {
		errList = append(errList, ErrNameIsRequired)
	}
	if err := def.Type.Validate(); err != nil {
		errList = append(errList, err)
	}
	if target == "" {
		errList = append(errList, ErrTargetDepartmentIsRequired)
	}
	thresholds, err := kernel.NewRange(def.Minimum, def.Maximum)
	if err != nil {
		errList = append(errList, err)
	}

	if err = errors.Join(errList...); err != nil {
		return err
	}

	r.name = name
	r.description = strings.TrimSpace(def.Description)
	r.ruleType = def.Type
	r.thresholds = thresholds
	r.targetDepartment = target
	return nil
}

package kernel

import (
	"fmt"

	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrRangeIsNotConstructed is returned when validating a zero-value Range.
var ErrRangeIsNotConstructed = errs.NewValueIsRequiredError("range must be created via NewRange")

// Range is an interval over a measurement (kilograms or currency units).
// The lower bound is always present and inclusive; the upper bound is
// inclusive when present and unbounded otherwise.
//
// Invariants:
//   - min >= 0
//   - min <= max when max is present
type Range struct {
	min   decimal.Decimal
	max   *decimal.Decimal
	guard guard.ConstructorGuard
}

// NewRange creates a Range. Pass a nil max for an interval unbounded above.
//
// Returns:
//   - errs.ValueIsOutOfRangeError when min is negative
//   - errs.ValueIsInvalidError when max is lower than min
func NewRange(minValue decimal.Decimal, maxValue *decimal.Decimal) (Range, error) {
	if minValue.IsNegative() {
		return Range{}, errs.NewValueIsOutOfRangeError("minimum", minValue, decimal.Zero, "unbounded")
	}

	if maxValue != nil && maxValue.LessThan(minValue) {
		return Range{}, errs.NewValueIsInvalidErrorWithCause(
			"maximum",
			fmt.Errorf("maximum %s is lower than minimum %s", maxValue, minValue),
		)
	}

	r := Range{min: minValue, guard: guard.NewConstructorGuard()}
	if maxValue != nil {
		upper := *maxValue
		r.max = &upper
	}
	return r, nil
}

// MustNewRange is NewRange for literals known to be valid. It panics on error.
func MustNewRange(minValue decimal.Decimal, maxValue *decimal.Decimal) Range {
	r, err := NewRange(minValue, maxValue)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the inclusive lower bound.
func (r Range) Min() decimal.Decimal {
	return r.min
}

// Max returns the inclusive upper bound, or nil when unbounded.
func (r Range) Max() *decimal.Decimal {
	if r.max == nil {
		return nil
	}
	upper := *r.max
	return &upper
}

// IsBounded reports whether the range has an upper bound.
func (r Range) IsBounded() bool {
	return r.max != nil
}

// Contains reports whether m >= min and (max is absent or m <= max).
func (r Range) Contains(m decimal.Decimal) bool {
	if m.LessThan(r.min) {
		return false
	}
	return r.max == nil || m.LessThanOrEqual(*r.max)
}

// IsNarrowerThan orders ranges by width. Any bounded range is narrower than an
// unbounded one; two unbounded ranges are narrower when they start later.
func (r Range) IsNarrowerThan(other Range) bool {
	switch {
	case r.max != nil && other.max == nil:
		return true
	case r.max == nil && other.max != nil:
		return false
	case r.max == nil && other.max == nil:
		return r.min.GreaterThan(other.min)
	default:
		return r.max.Sub(r.min).LessThan(other.max.Sub(other.min))
	}
}

// IsEqual compares bounds.
func (r Range) IsEqual(other Range) bool {
	if !r.min.Equal(other.min) {
		return false
	}
	if r.max == nil || other.max == nil {
		return r.max == nil && other.max == nil
	}
	return r.max.Equal(*other.max)
}

// Validate fails for a zero-value Range.
func (r Range) Validate() error {
	return r.guard.Validate(ErrRangeIsNotConstructed)
}

// String renders the interval, e.g. "[0, 2]" or "[10, +inf)".
func (r Range) String() string {
	if r.max == nil {
		return fmt.Sprintf("[%s, +inf)", r.min)
	}
	return fmt.Sprintf("[%s, %s]", r.min, r.max)
}

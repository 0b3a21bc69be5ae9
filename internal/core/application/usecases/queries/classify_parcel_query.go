package queries

import (
	"errors"

	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrClassifyParcelQueryIsNotConstructed = errors.New(
	"ClassifyParcelQuery must be created via NewClassifyParcelQuery constructor",
)

// ClassifyParcelQuery resolves the departments a parcel with the given
// measurements would be routed to, without registering anything.
//
// Example:
//
//	query, err := NewClassifyParcelQuery(decimal.NewFromFloat(12.5), decimal.NewFromInt(1500))
//	result, err := NewClassifyParcelQueryHandler(resolver).Handle(ctx, query)
//	// result.Departments == []string{"Heavy", "Insurance"}
type ClassifyParcelQuery struct {
	weight decimal.Decimal
	value  decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewClassifyParcelQuery creates the query.
//
// Returns:
//   - errs.ValueIsOutOfRangeError when the weight is not positive or the value is negative
func NewClassifyParcelQuery(weight, value decimal.Decimal) (ClassifyParcelQuery, error) {
	var errList []error
	if !weight.IsPositive() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weight", weight, "greater than 0", "unbounded"))
	}
	if value.IsNegative() {
		errList = append(errList, errs.NewValueIsOutOfRangeError("value", value, decimal.Zero, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return ClassifyParcelQuery{}, err
	}
	return ClassifyParcelQuery{weight: weight, value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ClassifyParcelQuery) Validate() error {
	return q.guard.Validate(ErrClassifyParcelQueryIsNotConstructed)
}

// Weight returns the weight to classify.
func (q ClassifyParcelQuery) Weight() decimal.Decimal {
	return q.weight
}

// Value returns the value to classify.
func (q ClassifyParcelQuery) Value() decimal.Decimal {
	return q.value
}

// RequiresInsurance reports whether the value crosses the insurance threshold.
func (q ClassifyParcelQuery) RequiresInsurance() bool {
	return q.value.GreaterThan(parcel.InsuranceValueThreshold())
}

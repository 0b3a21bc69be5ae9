package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateParcelMeasurementsCommandIsNotConstructed = errors.New(
	"UpdateParcelMeasurementsCommand must be created via NewUpdateParcelMeasurementsCommand constructor",
)

// UpdateParcelMeasurementsCommand replaces the weight and value of a parcel.
type UpdateParcelMeasurementsCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	weight   decimal.Decimal
	value    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateParcelMeasurementsCommand creates the command. The parcel checks
// the measurements themselves.
func NewUpdateParcelMeasurementsCommand(
	parcelID kernel.UUID,
	weight, value decimal.Decimal,
) (UpdateParcelMeasurementsCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return UpdateParcelMeasurementsCommand{}, err
	}

	return UpdateParcelMeasurementsCommand{
		parcelID: parcelID,
		weight:   weight,
		value:    value,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelMeasurementsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelMeasurementsCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to correct.
func (c UpdateParcelMeasurementsCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Weight returns the corrected weight in kilograms.
func (c UpdateParcelMeasurementsCommand) Weight() decimal.Decimal {
	return c.weight
}

// Value returns the corrected declared value.
func (c UpdateParcelMeasurementsCommand) Value() decimal.Decimal {
	return c.value
}

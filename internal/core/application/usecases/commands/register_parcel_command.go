package commands

import (
	"errors"
	"strings"

	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
	ErrRecipientNameIsRequired = errs.NewValueIsInvalidErrorWithCause(
		"recipient name", errors.New("recipient name is required"))
)

// RegisterParcelCommand represents a request to register a parcel for a recipient.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewRegisterParcelCommand(parcelID, "Jan de Vries", customer.AddressFields{
//	    Street: "Kerkstraat", Number: "12", City: "Venlo", PostalCode: "5911AB",
//	}, decimal.NewFromFloat(2.5), decimal.NewFromInt(80))
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewRegisterParcelCommandHandler(parcelRepo, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	recipientName string
	address       customer.AddressFields
	weight        decimal.Decimal
	value         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a Pending parcel.
// Weight and value are checked by the parcel itself.
func NewRegisterParcelCommand(
	parcelID kernel.UUID,
	recipientName string,
	address customer.AddressFields,
	weight, value decimal.Decimal,
) (RegisterParcelCommand, error) {
	cmd := RegisterParcelCommand{
		address: address,
		weight:  weight,
		value:   value,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setRecipientName(recipientName),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c RegisterParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// RecipientName returns the recipient's full name.
func (c RegisterParcelCommand) RecipientName() string {
	return c.recipientName
}

// Address returns the recipient's address fields.
func (c RegisterParcelCommand) Address() customer.AddressFields {
	return c.address
}

// Weight returns the parcel weight in kilograms.
func (c RegisterParcelCommand) Weight() decimal.Decimal {
	return c.weight
}

// Value returns the declared parcel value.
func (c RegisterParcelCommand) Value() decimal.Decimal {
	return c.value
}

func (c *RegisterParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *RegisterParcelCommand) setRecipientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrRecipientNameIsRequired
	}
	c.recipientName = name
	return nil
}

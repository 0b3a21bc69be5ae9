package customer

import (
	"errors"
	"strings"

	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using a zero-value Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNameIsRequired is returned when the customer name is blank.
	ErrNameIsRequired = errs.NewValueIsInvalidErrorWithCause("name", errors.New("name is required"))
	// ErrAddressIsRequired is returned when no address is supplied.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Customer is the recipient of a parcel. Its name never changes; its address
// can only change through Address.Update.
type Customer struct {
	name    string
	address *Address
	guard   guard.ConstructorGuard
}

// NewCustomer creates a Customer that owns address.
func NewCustomer(name string, address *Address) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	name = strings.TrimSpace(name)
	var errList []error
	if name == "" {
		errList = append(errList, ErrNameIsRequired)
	}
	if address == nil {
		errList = append(errList, ErrAddressIsRequired)
	} else if err := address.Validate(); err != nil {
		errList = append(errList, err)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	c.name = name
	c.address = address
	return c, nil
}

// Validate ensures the customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the recipient name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns the owned address. Mutations through Address.Update are
// reflected in the customer.
func (c *Customer) Address() *Address {
	return c.address
}

// Clone returns a deep copy of the customer.
func (c *Customer) Clone() *Customer {
	if c == nil {
		return nil
	}
	return &Customer{
		name:    c.name,
		address: c.address.clone(),
		guard:   c.guard,
	}
}

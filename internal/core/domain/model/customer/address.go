package customer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"parcelrouting/internal/pkg/clock"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var (
	// ErrAddressIsNotConstructed is returned when using a zero-value Address.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
	// ErrStreetIsRequired is returned when the street is blank.
	ErrStreetIsRequired = errs.NewValueIsInvalidErrorWithCause("street", errors.New("street is required"))
	// ErrNumberIsRequired is returned when the house number is blank.
	ErrNumberIsRequired = errs.NewValueIsInvalidErrorWithCause("number", errors.New("number is required"))
)

var postalCodePattern = regexp.MustCompile(`^[0-9]{4}[A-Z]{2}$`)

// AddressFields carries every field of an address. It is the input of both
// NewAddress and Address.Update.
type AddressFields struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// Address is the delivery address owned by a Customer.
type Address struct {
	street       string
	number       string
	complement   string
	neighborhood string
	city         string
	state        string
	postalCode   string
	country      string
	createdAt    time.Time
	updatedAt    *time.Time
	guard        guard.ConstructorGuard
}

// NewAddress validates and normalizes fields into a new Address.
//
// Returns:
//   - *Address: the created address
//   - error: every field violation, joined
//
// Example:
//
//	addr, err := customer.NewAddress(customer.AddressFields{
//	    Street: "Kerkstraat", Number: "12", City: "Breda", PostalCode: "4811at",
//	})
//	// addr.PostalCode() == "4811AT"
func NewAddress(fields AddressFields) (*Address, error) {
	normalized, err := normalize(fields)
	if err != nil {
		return nil, err
	}

	a := &Address{
		createdAt: clock.Now(),
		guard:     guard.NewConstructorGuard(),
	}
	a.apply(normalized)
	return a, nil
}

// Update replaces every field of the address. Nothing changes when any field
// is invalid. The creation time is kept and the update time is stamped.
func (a *Address) Update(fields AddressFields) error {
	if err := a.Validate(); err != nil {
		return err
	}

	normalized, err := normalize(fields)
	if err != nil {
		return err
	}

	a.apply(normalized)
	now := clock.Now()
	a.updatedAt = &now
	return nil
}

// Validate ensures the address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Fields returns a copy of the current field values.
func (a *Address) Fields() AddressFields {
	return AddressFields{
		Street:       a.street,
		Number:       a.number,
		Complement:   a.complement,
		Neighborhood: a.neighborhood,
		City:         a.city,
		State:        a.state,
		PostalCode:   a.postalCode,
		Country:      a.country,
	}
}

// Street returns the street name.
func (a *Address) Street() string {
	return a.street
}

// Number returns the house number.
func (a *Address) Number() string {
	return a.number
}

// Complement returns the optional address complement.
func (a *Address) Complement() string {
	return a.complement
}

// Neighborhood returns the optional neighborhood.
func (a *Address) Neighborhood() string {
	return a.neighborhood
}

// City returns the city.
func (a *Address) City() string {
	return a.city
}

// State returns the optional state or province.
func (a *Address) State() string {
	return a.state
}

// PostalCode returns the normalized postal code.
func (a *Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a *Address) Country() string {
	return a.country
}

// CreatedAt returns when the address was first recorded.
func (a *Address) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns nil until the first Update.
func (a *Address) UpdatedAt() *time.Time {
	if a.updatedAt == nil {
		return nil
	}
	t := *a.updatedAt
	return &t
}

// String formats the address on one line.
func (a *Address) String() string {
	parts := []string{strings.TrimSpace(a.street + " " + a.number)}
	if a.complement != "" {
		parts = append(parts, a.complement)
	}
	parts = append(parts, strings.TrimSpace(a.postalCode+" "+a.city))
	return strings.Join(parts, ", ")
}

func (a *Address) clone() *Address {
	if a == nil {
		return nil
	}
	cp := *a
	cp.updatedAt = a.UpdatedAt()
	return &cp
}

func (a *Address) apply(f AddressFields) {
	a.street = f.Street
	a.number = f.Number
	a.complement = f.Complement
	a.neighborhood = f.Neighborhood
	a.city = f.City
	a.state = f.State
	a.postalCode = f.PostalCode
	a.country = f.Country
}

// NormalizePostalCode upper-cases a postal code and strips whitespace, then
// checks the NNNNAA format.
func NormalizePostalCode(postalCode string) (string, error) {
	code := strings.ToUpper(strings.Join(strings.Fields(postalCode), ""))
	if !postalCodePattern.MatchString(code) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"postal code",
			fmt.Errorf("%q does not match the NNNNAA format", postalCode),
		)
	}
	return code, nil
}

func normalize(f AddressFields) (AddressFields, error) {
	out := AddressFields{
		Street:       strings.TrimSpace(f.Street),
		Number:       strings.TrimSpace(f.Number),
		Complement:   strings.TrimSpace(f.Complement),
		Neighborhood: strings.TrimSpace(f.Neighborhood),
		City:         strings.TrimSpace(f.City),
		State:        strings.TrimSpace(f.State),
		Country:      strings.TrimSpace(f.Country),
	}

	var errList []error
	if out.Street == "" {
		errList = append(errList, ErrStreetIsRequired)
	}
	if out.Number == "" {
		errList = append(errList, ErrNumberIsRequired)
	}

	code, err := NormalizePostalCode(f.PostalCode)
	if err != nil {
		errList = append(errList, err)
	}
	out.PostalCode = code

	if err = errors.Join(errList...); err != nil {
		return AddressFields{}, err
	}
	return out, nil
}

// Package manifest decodes XML container manifests into import commands.
//
// A manifest looks like:
//
//	<Container>
//	  <Id>68465468</Id>
//	  <ShippingDate>2016-07-22T00:00:00+02:00</ShippingDate>
//	  <parcels>
//	    <Parcel>
//	      <Recipient>
//	        <Name>Vinny Gankema</Name>
//	        <Address>
//	          <Street>Marijkestraat</Street>
//	          <HouseNumber>28</HouseNumber>
//	          <PostalCode>4744AT</PostalCode>
//	          <City>Bosschenhoofd</City>
//	        </Address>
//	      </Recipient>
//	      <Weight>0.02</Weight>
//	      <Value>0.0</Value>
//	    </Parcel>
//	  </parcels>
//	</Container>
//
// Shipping dates are accepted as RFC 3339 timestamps or plain dates.
package manifest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrManifestIsMalformed = errors.New("manifest is malformed")

type containerElement struct {
	XMLName      xml.Name        `xml:"Container"`
	ID           string          `xml:"Id"`
	ShippingDate string          `xml:"ShippingDate"`
	Parcels      []parcelElement `xml:"parcels>Parcel"`
}

type parcelElement struct {
	Recipient recipientElement `xml:"Recipient"`
	Weight    string           `xml:"Weight"`
	Value     string           `xml:"Value"`
}

type recipientElement struct {
	Name    string         `xml:"Name"`
	Address addressElement `xml:"Address"`
}

type addressElement struct {
	Street      string `xml:"Street"`
	HouseNumber string `xml:"HouseNumber"`
	Complement  string `xml:"Complement"`
	PostalCode  string `xml:"PostalCode"`
	City        string `xml:"City"`
	Country     string `xml:"Country"`
}

// Manifest is a decoded container manifest.
type Manifest struct {
	ContainerID  string
	ShippingDate time.Time
	Parcels      []commands.ManifestParcel
}

// Decode reads one manifest from r.
//
// Returns:
//   - ErrManifestIsMalformed (wrapped) when the document is not a manifest
//   - errs.ValueIsInvalidError when a date or measurement cannot be parsed
func Decode(r io.Reader) (Manifest, error) {
	var doc containerElement
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", ErrManifestIsMalformed, err)
	}

	shippingDate, dateErr := parseDate(doc.ShippingDate)

	errList := []error{dateErr}
	lines := make([]commands.ManifestParcel, 0, len(doc.Parcels))
	for i, p := range doc.Parcels {
		line, err := p.toLine()
		if err != nil {
			errList = append(errList, fmt.Errorf("parcel %d: %w", i+1, err))
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(errList...); err != nil {
		return Manifest{}, err
	}

	return Manifest{
		ContainerID:  strings.TrimSpace(doc.ID),
		ShippingDate: shippingDate,
		Parcels:      lines,
	}, nil
}

// Command builds the import command for the manifest.
func (m Manifest) Command(id kernel.UUID) (commands.ImportContainerManifestCommand, error) {
	return commands.NewImportContainerManifestCommand(id, m.ContainerID, m.ShippingDate, m.Parcels)
}

func (p parcelElement) toLine() (commands.ManifestParcel, error) {
	weight, weightErr := parseDecimal("weight", p.Weight)
	value, valueErr := parseDecimal("value", p.Value)
	if err := errors.Join(weightErr, valueErr); err != nil {
		return commands.ManifestParcel{}, err
	}

	return commands.ManifestParcel{
		RecipientName: strings.TrimSpace(p.Recipient.Name),
		Address: customer.AddressFields{
			Street:     p.Recipient.Address.Street,
			Number:     p.Recipient.Address.HouseNumber,
			Complement: p.Recipient.Address.Complement,
			City:       p.Recipient.Address.City,
			PostalCode: p.Recipient.Address.PostalCode,
			Country:    p.Recipient.Address.Country,
		},
		Weight: weight,
		Value:  value,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.NewValueIsRequiredError("shipping date")
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"shipping date",
		fmt.Errorf("%q is neither an RFC 3339 timestamp nor a date", s),
	)
}

func parseDecimal(name, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errs.NewValueIsRequiredError(name)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return d, nil
}

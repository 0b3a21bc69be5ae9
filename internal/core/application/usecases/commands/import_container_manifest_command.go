package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrImportContainerManifestCommandIsNotConstructed = errors.New(
		"ImportContainerManifestCommand must be created via NewImportContainerManifestCommand constructor",
	)
	ErrContainerIDIsRequired = errs.NewValueIsInvalidErrorWithCause(
		"container id", errors.New("container id is required"))
	ErrShippingDateIsRequired = errs.NewValueIsRequiredError("shipping date")
)

// ManifestParcel is one parcel line of a container manifest.
type ManifestParcel struct {
	RecipientName string
	Address       customer.AddressFields
	Weight        decimal.Decimal
	Value         decimal.Decimal
}

// ImportContainerManifestCommand represents an incoming shipping container
// and the parcels it carries.
//
// Example:
//
//	cmd, err := NewImportContainerManifestCommand(kernel.NewUUID(), "CONT-2024-001", shippingDate, []ManifestParcel{
//	    {RecipientName: "Jan de Vries", Address: address, Weight: decimal.NewFromInt(2), Value: decimal.NewFromInt(40)},
//	})
type ImportContainerManifestCommand struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	containerID  string
	shippingDate time.Time
	parcels      []ManifestParcel

	guard guard.ConstructorGuard
}

// NewImportContainerManifestCommand creates the import command.
func NewImportContainerManifestCommand(
	id kernel.UUID,
	containerID string,
	shippingDate time.Time,
	parcels []ManifestParcel,
) (ImportContainerManifestCommand, error) {
	cmd := ImportContainerManifestCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setContainerID(containerID),
		cmd.setShippingDate(shippingDate),
		cmd.setParcels(parcels),
	); err != nil {
		return ImportContainerManifestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportContainerManifestCommand) Validate() error {
	return c.guard.Validate(ErrImportContainerManifestCommandIsNotConstructed)
}

// ID returns the identifier for the new container.
func (c ImportContainerManifestCommand) ID() kernel.UUID {
	return c.id
}

// ContainerID returns the human-facing container identifier.
func (c ImportContainerManifestCommand) ContainerID() string {
	return c.containerID
}

// ShippingDate returns the planned shipping date.
func (c ImportContainerManifestCommand) ShippingDate() time.Time {
	return c.shippingDate
}

// Parcels returns the manifest lines in manifest order.
func (c ImportContainerManifestCommand) Parcels() []ManifestParcel {
	return append([]ManifestParcel(nil), c.parcels...)
}

func (c *ImportContainerManifestCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *ImportContainerManifestCommand) setContainerID(containerID string) error {
	containerID = strings.TrimSpace(containerID)
	if containerID == "" {
		return ErrContainerIDIsRequired
	}
	c.containerID = containerID
	return nil
}

func (c *ImportContainerManifestCommand) setShippingDate(shippingDate time.Time) error {
	if shippingDate.IsZero() {
		return ErrShippingDateIsRequired
	}
	c.shippingDate = shippingDate
	return nil
}

func (c *ImportContainerManifestCommand) setParcels(parcels []ManifestParcel) error {
	var errList []error
	for i, p := range parcels {
		if strings.TrimSpace(p.RecipientName) == "" {
			errList = append(errList, fmt.Errorf("parcel %d: %w", i+1, ErrRecipientNameIsRequired))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.parcels = append([]ManifestParcel(nil), parcels...)
	return nil
}

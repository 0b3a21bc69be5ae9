package container_test

import (
	"testing"
	"time"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shippingDate = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

func newParcel(t *testing.T, weight string) *parcel.Parcel {
	t.Helper()
	address, err := customer.NewAddress(customer.AddressFields{
		Street:     "Dorpsstraat",
		Number:     "1",
		City:       "Tegelen",
		PostalCode: "5931AA",
	})
	require.NoError(t, err)
	recipient, err := customer.NewCustomer("Anna Jansen", address)
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), recipient, decimal.RequireFromString(weight), decimal.Zero)
	require.NoError(t, err)
	return p
}

func TestNewShippingContainer(t *testing.T) {
	t.Run("should create pending container keeping parcel order", func(t *testing.T) {
		first, second := newParcel(t, "1"), newParcel(t, "20")

		c, err := container.NewShippingContainer(kernel.NewUUID(), " CONT-001 ", shippingDate, []*parcel.Parcel{first, second})

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "CONT-001", c.ContainerID())
		assert.Equal(t, shippingDate, c.ShippingDate())
		assert.Equal(t, container.Pending, c.Status())
		assert.Equal(t, []kernel.UUID{first.ID(), second.ID()}, c.ParcelIDs())
		assert.Equal(t, 2, c.ParcelCount())
	})

	t.Run("should allow empty container", func(t *testing.T) {
		c, err := container.NewShippingContainer(kernel.NewUUID(), "CONT-002", shippingDate, nil)

		require.NoError(t, err)
		assert.Empty(t, c.Parcels())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		p := newParcel(t, "1")

		c, err := container.NewShippingContainer(kernel.UUID{}, "", time.Time{}, []*parcel.Parcel{p, p, nil})

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, container.ErrContainerIDIsRequired)
		require.ErrorIs(t, err, container.ErrShippingDateIsRequired)
		require.ErrorIs(t, err, container.ErrParcelIsRequired)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	})
}

func TestShippingContainer_Parcels(t *testing.T) {
	p := newParcel(t, "1")
	c, _ := container.NewShippingContainer(kernel.NewUUID(), "CONT-003", shippingDate, []*parcel.Parcel{p})

	t.Run("should not leak owned parcels", func(t *testing.T) {
		got := c.Parcels()
		require.NoError(t, got[0].UpdateStatus(parcel.Failed))

		assert.Equal(t, parcel.Pending, c.Parcels()[0].Status())
	})

	t.Run("should replace parcel in place", func(t *testing.T) {
		updated := p.Clone()
		require.NoError(t, updated.TransitionTo(parcel.Processing))

		require.NoError(t, c.ReplaceParcel(updated))

		assert.Equal(t, parcel.Processing, c.Parcels()[0].Status())
	})

	t.Run("should fail to replace unknown parcel", func(t *testing.T) {
		err := c.ReplaceParcel(newParcel(t, "2"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, c.ReplaceParcel(nil), errs.ErrValueIsRequired)
	})

	t.Run("should add parcel once", func(t *testing.T) {
		extra := newParcel(t, "4")

		require.NoError(t, c.AddParcel(extra))
		require.NoError(t, c.AddParcel(extra))

		assert.Equal(t, 2, c.ParcelCount())
		assert.True(t, c.ContainsParcel(extra.ID()))
	})
}

func TestShippingContainer_Status(t *testing.T) {
	t.Run("should advance strictly", func(t *testing.T) {
		c, _ := container.NewShippingContainer(kernel.NewUUID(), "CONT-004", shippingDate, nil)

		err := c.TransitionTo(container.Shipped)
		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)

		require.NoError(t, c.TransitionTo(container.Processing))
		require.NoError(t, c.TransitionTo(container.Failed))
		require.ErrorIs(t, c.TransitionTo(container.Processed), errs.ErrStatusTransitionIsInvalid)
	})

	t.Run("should set any valid status when permissive", func(t *testing.T) {
		c, _ := container.NewShippingContainer(kernel.NewUUID(), "CONT-005", shippingDate, nil)

		require.NoError(t, c.UpdateStatus(container.Delivered))
		assert.Equal(t, container.Delivered, c.Status())
		require.ErrorIs(t, c.UpdateStatus(container.Unknown), errs.ErrValueIsInvalid)
	})
}

func TestShippingContainer_Clone(t *testing.T) {
	c, _ := container.NewShippingContainer(kernel.NewUUID(), "CONT-006", shippingDate, []*parcel.Parcel{newParcel(t, "1")})

	cp := c.Clone()
	require.NoError(t, cp.UpdateStatus(container.Shipped))
	require.NoError(t, cp.AddParcel(newParcel(t, "2")))

	assert.Equal(t, container.Pending, c.Status())
	assert.Equal(t, 1, c.ParcelCount())
	assert.Equal(t, c.ContainerID(), cp.ContainerID())
}

func TestShippingContainer_ZeroValue(t *testing.T) {
	zero := &container.ShippingContainer{}

	require.ErrorIs(t, zero.Validate(), container.ErrShippingContainerIsNotConstructed)
	require.ErrorIs(t, zero.TransitionTo(container.Processing), container.ErrShippingContainerIsNotConstructed)
}

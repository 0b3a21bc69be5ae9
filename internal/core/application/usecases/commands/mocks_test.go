package commands_test

import (
	"time"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Get(id kernel.UUID) (*parcel.Parcel, bool) {
	args := m.Called(id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Bool(1)
}

func (m *MockParcelRepository) GetAll() []*parcel.Parcel {
	args := m.Called()
	out, _ := args.Get(0).([]*parcel.Parcel)
	return out
}

func (m *MockParcelRepository) Add(p *parcel.Parcel) (*parcel.Parcel, error) {
	args := m.Called(p)
	return p, args.Error(0)
}

func (m *MockParcelRepository) Update(p *parcel.Parcel) (*parcel.Parcel, error) {
	args := m.Called(p)
	return p, args.Error(0)
}

func (m *MockParcelRepository) Modify(
	id kernel.UUID,
	mutate func(*parcel.Parcel) (*parcel.Parcel, error),
) (*parcel.Parcel, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*parcel.Parcel)
	if p == nil {
		return nil, args.Error(1)
	}
	return mutate(p)
}

func (m *MockParcelRepository) Delete(id kernel.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockParcelRepository) Exists(id kernel.UUID) bool {
	return m.Called(id).Bool(0)
}

func (m *MockParcelRepository) GetByStatus(parcel.Status) []*parcel.Parcel      { return nil }
func (m *MockParcelRepository) GetByWeightRange(kernel.Range) []*parcel.Parcel { return nil }
func (m *MockParcelRepository) GetByValueRange(kernel.Range) []*parcel.Parcel  { return nil }
func (m *MockParcelRepository) GetRequiringInsurance() []*parcel.Parcel        { return nil }

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Get(id kernel.UUID) (*container.ShippingContainer, bool) {
	args := m.Called(id)
	c, _ := args.Get(0).(*container.ShippingContainer)
	return c, args.Bool(1)
}

func (m *MockContainerRepository) GetAll() []*container.ShippingContainer {
	args := m.Called()
	out, _ := args.Get(0).([]*container.ShippingContainer)
	return out
}

func (m *MockContainerRepository) Add(c *container.ShippingContainer) (*container.ShippingContainer, error) {
	args := m.Called(c)
	return c, args.Error(0)
}

func (m *MockContainerRepository) Update(c *container.ShippingContainer) (*container.ShippingContainer, error) {
	args := m.Called(c)
	return c, args.Error(0)
}

func (m *MockContainerRepository) Modify(
	id kernel.UUID,
	mutate func(*container.ShippingContainer) (*container.ShippingContainer, error),
) (*container.ShippingContainer, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*container.ShippingContainer)
	if c == nil {
		return nil, args.Error(1)
	}
	return mutate(c)
}

func (m *MockContainerRepository) Delete(id kernel.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockContainerRepository) Exists(id kernel.UUID) bool {
	return m.Called(id).Bool(0)
}

func (m *MockContainerRepository) GetByContainerID(containerID string) (*container.ShippingContainer, bool) {
	args := m.Called(containerID)
	c, _ := args.Get(0).(*container.ShippingContainer)
	return c, args.Bool(1)
}

func (m *MockContainerRepository) GetByStatus(container.Status) []*container.ShippingContainer {
	return nil
}

func (m *MockContainerRepository) GetByDateRange(time.Time, time.Time) []*container.ShippingContainer {
	return nil
}

func (m *MockContainerRepository) GetByParcel(parcelID kernel.UUID) (*container.ShippingContainer, bool) {
	args := m.Called(parcelID)
	c, _ := args.Get(0).(*container.ShippingContainer)
	return c, args.Bool(1)
}

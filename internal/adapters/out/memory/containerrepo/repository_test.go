package containerrepo_test

import (
	"testing"
	"time"

	"parcelrouting/internal/adapters/out/memory/containerrepo"
	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ContainerRepositoryTestSuite struct {
	suite.Suite
	repository *containerrepo.Repository
}

func (suite *ContainerRepositoryTestSuite) SetupTest() {
	suite.repository = containerrepo.NewRepository()
}

func (suite *ContainerRepositoryTestSuite) newContainer(containerID string, date time.Time, parcels ...*parcel.Parcel) *container.ShippingContainer {
	c, err := container.NewShippingContainer(kernel.NewUUID(), containerID, date, parcels)
	suite.Require().NoError(err)
	return c
}

func (suite *ContainerRepositoryTestSuite) newParcel() *parcel.Parcel {
	address, err := customer.NewAddress(customer.AddressFields{Street: "Parade", Number: "5", PostalCode: "5911CA"})
	suite.Require().NoError(err)
	recipient, err := customer.NewCustomer("Els Smits", address)
	suite.Require().NoError(err)
	p, err := parcel.NewParcel(kernel.NewUUID(), recipient, decimal.NewFromInt(1), decimal.Zero)
	suite.Require().NoError(err)
	return p
}

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func (suite *ContainerRepositoryTestSuite) TestGetByContainerID() {
	c := suite.newContainer("CONT-1", day(1))
	_, err := suite.repository.Add(c)
	suite.Require().NoError(err)

	got, ok := suite.repository.GetByContainerID("CONT-1")
	suite.Require().True(ok)
	suite.Equal(c.ID(), got.ID())

	_, ok = suite.repository.GetByContainerID("CONT-2")
	suite.False(ok)
}

func (suite *ContainerRepositoryTestSuite) TestDuplicateContainerID() {
	_, err := suite.repository.Add(suite.newContainer("CONT-1", day(1)))
	suite.Require().NoError(err)

	_, err = suite.repository.Add(suite.newContainer("CONT-1", day(2)))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Len(suite.repository.GetAll(), 1)
}

func (suite *ContainerRepositoryTestSuite) TestDeleteReleasesContainerID() {
	c := suite.newContainer("CONT-1", day(1))
	_, _ = suite.repository.Add(c)

	suite.Require().NoError(suite.repository.Delete(c.ID()))

	_, ok := suite.repository.GetByContainerID("CONT-1")
	suite.False(ok)
	_, err := suite.repository.Add(suite.newContainer("CONT-1", day(1)))
	suite.NoError(err)
}

func (suite *ContainerRepositoryTestSuite) TestSecondaryQueries() {
	p := suite.newParcel()
	first := suite.newContainer("CONT-1", day(1), p)
	second := suite.newContainer("CONT-2", day(5))
	third := suite.newContainer("CONT-3", day(9))
	suite.Require().NoError(third.UpdateStatus(container.Shipped))
	for _, c := range []*container.ShippingContainer{first, second, third} {
		_, err := suite.repository.Add(c)
		suite.Require().NoError(err)
	}

	suite.Len(suite.repository.GetByStatus(container.Pending), 2)
	suite.Len(suite.repository.GetByStatus(container.Shipped), 1)

	inRange := suite.repository.GetByDateRange(day(1), day(5))
	suite.Require().Len(inRange, 2)
	suite.Equal("CONT-1", inRange[0].ContainerID())
	suite.Equal("CONT-2", inRange[1].ContainerID())

	owner, ok := suite.repository.GetByParcel(p.ID())
	suite.Require().True(ok)
	suite.Equal("CONT-1", owner.ContainerID())

	_, ok = suite.repository.GetByParcel(kernel.NewUUID())
	suite.False(ok)
}

func TestContainerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ContainerRepositoryTestSuite))
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"parcelrouting/internal/adapters/out/memory/containerrepo"
	"parcelrouting/internal/adapters/out/memory/departmentrepo"
	"parcelrouting/internal/adapters/out/memory/parcelrepo"
	"parcelrouting/internal/adapters/out/memory/rulerepo"
	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func address() customer.AddressFields {
	return customer.AddressFields{
		Street:     "Kerkstraat",
		Number:     "12",
		City:       "Venlo",
		PostalCode: "5911ab",
		Country:    "NL",
	}
}

var shippingDate = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

// env wires every handler to fresh in-memory repositories.
type env struct {
	parcels     *parcelrepo.Repository
	containers  *containerrepo.Repository
	departments *departmentrepo.Repository
	rules       *rulerepo.Repository
	router      *services.ParcelRouter
	logger      *zap.Logger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		parcels:     parcelrepo.NewRepository(),
		containers:  containerrepo.NewRepository(),
		departments: departmentrepo.NewRepository(),
		rules:       rulerepo.NewRepository(),
		logger:      zap.NewNop(),
	}
	e.router = services.NewParcelRouter(services.NewRuleResolver(e.rules), e.departments)

	seed := commands.NewSeedDepartmentsCommandHandler(e.departments, e.logger)
	require.NoError(t, seed.Handle(context.Background(), commands.NewSeedDepartmentsCommand()))
	return e
}

func (e *env) register(t *testing.T, weight, value string) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterParcelCommand(id, "Jan de Vries", address(), dec(weight), dec(value))
	require.NoError(t, err)
	h := commands.NewRegisterParcelCommandHandler(e.parcels, e.logger)
	require.NoError(t, h.Handle(t.Context(), cmd))
	return id
}

func (e *env) process(t *testing.T, id kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewProcessParcelCommand(id)
	require.NoError(t, err)
	h := commands.NewProcessParcelCommandHandler(e.parcels, e.containers, e.router, e.logger)
	return h.Handle(t.Context(), cmd)
}

func (e *env) decide(t *testing.T, id kernel.UUID, approved bool) error {
	t.Helper()
	cmd, err := commands.NewDecideInsuranceCommand(id, approved)
	require.NoError(t, err)
	h := commands.NewDecideInsuranceCommandHandler(e.parcels, e.containers, e.router, e.logger)
	return h.Handle(t.Context(), cmd)
}

func (e *env) importManifest(t *testing.T, containerID string, lines ...commands.ManifestParcel) (kernel.UUID, error) {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewImportContainerManifestCommand(id, containerID, shippingDate, lines)
	require.NoError(t, err)
	h := commands.NewImportContainerManifestCommandHandler(e.parcels, e.containers, e.logger)
	return id, h.Handle(t.Context(), cmd)
}

func line(weight, value string) commands.ManifestParcel {
	return commands.ManifestParcel{
		RecipientName: "Anna Jansen",
		Address:       address(),
		Weight:        dec(weight),
		Value:         dec(value),
	}
}

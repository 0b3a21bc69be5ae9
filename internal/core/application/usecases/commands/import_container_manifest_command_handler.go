package commands

import (
	"context"
	"errors"
	"fmt"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/customer"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/ports"
	"parcelrouting/internal/pkg/errs"

	"go.uber.org/zap"
)

// ImportContainerManifestCommandHandler stores an incoming container and its parcels.
//
// Parcels are stored first so each is reachable by id, then the container.
// When the container cannot be stored the parcels stored for it are removed
// again. The container id index rejects a second import of the same container.
type ImportContainerManifestCommandHandler struct {
	parcels    ports.ParcelRepository
	containers ports.ContainerRepository
	logger     *zap.Logger
}

// NewImportContainerManifestCommandHandler creates the handler.
func NewImportContainerManifestCommandHandler(
	parcels ports.ParcelRepository,
	containers ports.ContainerRepository,
	logger *zap.Logger,
) ImportContainerManifestCommandHandler {
	return ImportContainerManifestCommandHandler{
		parcels:    parcels,
		containers: containers,
		logger:     logger.Named("import_container_manifest"),
	}
}

// Handle imports the manifest. Nothing is stored when any line is invalid.
func (h *ImportContainerManifestCommandHandler) Handle(_ context.Context, cmd ImportContainerManifestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, exists := h.containers.GetByContainerID(cmd.ContainerID()); exists {
		return errs.NewObjectAlreadyExistsError("container", cmd.ContainerID())
	}

	parcels, err := buildParcels(cmd.Parcels())
	if err != nil {
		return err
	}

	c, err := container.NewShippingContainer(cmd.ID(), cmd.ContainerID(), cmd.ShippingDate(), parcels)
	if err != nil {
		return err
	}

	stored := make([]kernel.UUID, 0, len(parcels))
	for _, p := range parcels {
		if _, err = h.parcels.Add(p); err != nil {
			h.discard(stored)
			return err
		}
		stored = append(stored, p.ID())
	}

	if _, err = h.containers.Add(c); err != nil {
		h.discard(stored)
		return err
	}

	h.logger.Info("container imported",
		zap.Stringer("container_uuid", c.ID()),
		zap.String("container_id", c.ContainerID()),
		zap.Time("shipping_date", c.ShippingDate()),
		zap.Int("parcels", c.ParcelCount()),
	)
	return nil
}

// discard removes parcels stored by a failed import.
func (h *ImportContainerManifestCommandHandler) discard(ids []kernel.UUID) {
	for _, id := range ids {
		if err := h.parcels.Delete(id); err != nil {
			h.logger.Error("failed to discard parcel of failed import",
				zap.Stringer("parcel_id", id), zap.Error(err))
		}
	}
}

func buildParcels(lines []ManifestParcel) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(lines))

	var errList []error
	for i, line := range lines {
		p, err := buildParcel(line)
		if err != nil {
			errList = append(errList, fmt.Errorf("parcel %d: %w", i+1, err))
			continue
		}
		parcels = append(parcels, p)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return parcels, nil
}

func buildParcel(line ManifestParcel) (*parcel.Parcel, error) {
	address, err := customer.NewAddress(line.Address)
	if err != nil {
		return nil, err
	}

	recipient, err := customer.NewCustomer(line.RecipientName, address)
	if err != nil {
		return nil, err
	}

	return parcel.NewParcel(kernel.NewUUID(), recipient, line.Weight, line.Value)
}

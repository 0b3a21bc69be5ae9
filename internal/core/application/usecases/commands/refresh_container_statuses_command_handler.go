package commands

import (
	"context"
	"errors"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/services"
	"parcelrouting/internal/core/ports"
	"parcelrouting/internal/pkg/errs"

	"go.uber.org/zap"
)

var errContainerUnchanged = errors.New("container unchanged")

// RefreshContainerStatusesCommandHandler advances open containers whose
// parcels have moved on. Parcel state is read from the parcel store; the
// container's own copy is used for parcels no longer stored there.
type RefreshContainerStatusesCommandHandler struct {
	parcels    ports.ParcelRepository
	containers ports.ContainerRepository
	aggregator services.ContainerStatusAggregator
	logger     *zap.Logger
}

// NewRefreshContainerStatusesCommandHandler creates the handler.
func NewRefreshContainerStatusesCommandHandler(
	parcels ports.ParcelRepository,
	containers ports.ContainerRepository,
	logger *zap.Logger,
) RefreshContainerStatusesCommandHandler {
	return RefreshContainerStatusesCommandHandler{
		parcels:    parcels,
		containers: containers,
		aggregator: services.NewContainerStatusAggregator(),
		logger:     logger.Named("refresh_container_statuses"),
	}
}

// Handle advances every non-terminal container. A failure on one container
// does not stop the others; all failures are returned joined.
func (h *RefreshContainerStatusesCommandHandler) Handle(_ context.Context, cmd RefreshContainerStatusesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var errList []error
	for _, c := range h.containers.GetAll() {
		if c.Status().IsTerminal() {
			continue
		}
		if err := h.refresh(c.ID()); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// refresh re-reads the container and its parcels inside the container's
// critical section, so a status written meanwhile by another command is
// never overwritten.
func (h *RefreshContainerStatusesCommandHandler) refresh(id kernel.UUID) error {
	var (
		from    container.Status
		parcels []*parcel.Parcel
	)
	c, err := h.containers.Modify(id, func(c *container.ShippingContainer) (*container.ShippingContainer, error) {
		from = c.Status()
		if from.IsTerminal() {
			return nil, errContainerUnchanged
		}

		parcels = c.Parcels()
		for i, owned := range parcels {
			if current, ok := h.parcels.Get(owned.ID()); ok {
				parcels[i] = current
			}
		}

		changed, err := h.aggregator.Advance(c, parcels)
		if err != nil {
			return nil, err
		}
		if !changed {
			return nil, errContainerUnchanged
		}

		for _, p := range parcels {
			if err = c.ReplaceParcel(p); err != nil {
				return nil, err
			}
		}
		return c, nil
	})
	if errors.Is(err, errContainerUnchanged) || errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	h.logger.Info("container status follows its parcels",
		zap.String("container_id", c.ContainerID()),
		zap.Stringer("from", from),
		zap.Stringer("to", c.Status()),
		zap.Int("parcels", len(parcels)),
		zap.Int("delivered", countStatus(parcels, parcel.Delivered)),
	)
	return nil
}

func countStatus(parcels []*parcel.Parcel, status parcel.Status) int {
	n := 0
	for _, p := range parcels {
		if p.Status() == status {
			n++
		}
	}
	return n
}

package http

import (
	"errors"
	"net/http"

	"parcelrouting/internal/adapters/in/http/api"
	"parcelrouting/internal/adapters/in/manifest"
	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/application/usecases/queries"
	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListContainers handles GET /api/v1/containers. A containerId parameter
// turns the listing into a lookup returning zero or one container.
func (s *Server) ListContainers(ctx echo.Context, params api.ListContainersParams) error {
	if params.ContainerID != nil {
		return s.lookupContainer(ctx, *params.ContainerID)
	}

	var filter queries.ContainerFilter
	if params.Status != nil {
		status, err := container.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Status = status
	}
	if params.From != nil {
		filter.From = params.From.Time
	}
	if params.To != nil {
		filter.To = params.To.Time
	}

	query, err := queries.NewListContainersQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.ListContainers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toContainers(views))
}

func (s *Server) lookupContainer(ctx echo.Context, containerID string) error {
	query, err := queries.NewGetContainerByContainerIDQuery(containerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.queries.GetContainer.Handle(ctx.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusOK, []api.Container{})
	case err != nil:
		return s.fail(ctx, err)
	default:
		return ctx.JSON(http.StatusOK, []api.Container{toContainer(view)})
	}
}

// ImportContainer handles POST /api/v1/containers - JSON manifest import.
func (s *Server) ImportContainer(ctx echo.Context) error {
	var body api.NewContainer
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	lines := make([]commands.ManifestParcel, len(body.Parcels))
	for i, p := range body.Parcels {
		lines[i] = commands.ManifestParcel{
			RecipientName: p.RecipientName,
			Address:       fromAddress(p.Address),
			Weight:        toDecimal(p.Weight),
			Value:         toDecimal(p.Value),
		}
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewImportContainerManifestCommand(id, body.ContainerID, body.ShippingDate.Time, lines)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.importContainer(ctx, cmd)
}

// ImportContainerManifest handles POST /api/v1/manifests - XML manifest import.
func (s *Server) ImportContainerManifest(ctx echo.Context) error {
	m, err := manifest.Decode(ctx.Request().Body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := m.Command(kernel.NewUUID())
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.importContainer(ctx, cmd)
}

func (s *Server) importContainer(ctx echo.Context, cmd commands.ImportContainerManifestCommand) error {
	if err := s.commands.ImportContainerManifest.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondContainer(ctx, http.StatusCreated, cmd.ID())
}

// RefreshContainerStatuses handles POST /api/v1/container-statuses/refresh.
func (s *Server) RefreshContainerStatuses(ctx echo.Context) error {
	cmd := commands.NewRefreshContainerStatusesCommand()
	if err := s.commands.RefreshContainerStatuses.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetContainer handles GET /api/v1/containers/{containerUuid}.
func (s *Server) GetContainer(ctx echo.Context, containerUUID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(containerUUID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondContainer(ctx, http.StatusOK, id)
}

// DeleteContainer handles DELETE /api/v1/containers/{containerUuid}.
func (s *Server) DeleteContainer(ctx echo.Context, containerUUID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(containerUUID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteContainerCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteContainer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceContainer handles PUT /api/v1/containers/{containerUuid}/status.
func (s *Server) AdvanceContainer(ctx echo.Context, containerUUID openapi_types.UUID) error {
	var body api.ContainerStatusChange
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(containerUUID)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := container.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceContainerCommand(id, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.AdvanceContainer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondContainer(ctx, http.StatusOK, id)
}

func (s *Server) respondContainer(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetContainerQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetContainer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toContainer(view))
}

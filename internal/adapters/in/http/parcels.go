package http

import (
	"net/http"

	"parcelrouting/internal/adapters/in/http/api"
	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/application/usecases/queries"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ClassifyParcel handles GET /api/v1/classify - dry-run routing of measurements.
func (s *Server) ClassifyParcel(ctx echo.Context, params api.ClassifyParcelParams) error {
	query, err := queries.NewClassifyParcelQuery(toDecimal(params.Weight), toDecimal(params.Value))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.queries.ClassifyParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toClassification(view))
}

// ListParcels handles GET /api/v1/parcels.
func (s *Server) ListParcels(ctx echo.Context, params api.ListParcelsParams) error {
	var filter queries.ParcelFilter

	if params.Status != nil {
		status, err := parcel.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Status = status
	}

	weight, err := rangeOf(params.MinWeight, params.MaxWeight)
	if err != nil {
		return s.fail(ctx, err)
	}
	value, err := rangeOf(params.MinValue, params.MaxValue)
	if err != nil {
		return s.fail(ctx, err)
	}
	filter.Weight = weight
	filter.Value = value
	filter.RequiringInsurance = params.RequiresInsurance != nil && *params.RequiresInsurance

	query, err := queries.NewListParcelsQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.queries.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toParcels(views))
}

// RegisterParcel handles POST /api/v1/parcels.
func (s *Server) RegisterParcel(ctx echo.Context) error {
	var body api.NewParcel
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterParcelCommand(
		id,
		body.RecipientName,
		fromAddress(body.Address),
		toDecimal(body.Weight),
		toDecimal(body.Value),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.RegisterParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondParcel(ctx, http.StatusCreated, id)
}

// GetParcel handles GET /api/v1/parcels/{parcelId}.
func (s *Server) GetParcel(ctx echo.Context, parcelID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondParcel(ctx, http.StatusOK, id)
}

// UpdateParcelMeasurements handles PUT /api/v1/parcels/{parcelId}/measurements.
func (s *Server) UpdateParcelMeasurements(ctx echo.Context, parcelID openapi_types.UUID) error {
	var body api.Measurements
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateParcelMeasurementsCommand(id, toDecimal(body.Weight), toDecimal(body.Value))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.UpdateParcelMeasurements.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondParcel(ctx, http.StatusOK, id)
}

// ProcessParcel handles POST /api/v1/parcels/{parcelId}/process.
func (s *Server) ProcessParcel(ctx echo.Context, parcelID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewProcessParcelCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ProcessParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondParcel(ctx, http.StatusOK, id)
}

// DecideInsurance handles POST /api/v1/parcels/{parcelId}/insurance.
func (s *Server) DecideInsurance(ctx echo.Context, parcelID openapi_types.UUID) error {
	var body api.InsuranceDecision
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDecideInsuranceCommand(id, *body.Approved)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DecideInsurance.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondParcel(ctx, http.StatusOK, id)
}

// AdvanceParcel handles PUT /api/v1/parcels/{parcelId}/status.
func (s *Server) AdvanceParcel(ctx echo.Context, parcelID openapi_types.UUID) error {
	var body api.ParcelStatusChange
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(parcelID)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := parcel.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceParcelCommand(id, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.AdvanceParcel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondParcel(ctx, http.StatusOK, id)
}

func (s *Server) respondParcel(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetParcelQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetParcel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toParcel(view))
}

// rangeOf builds a measurement range from optional bounds. It returns nil
// when neither bound is given.
func rangeOf(minimum, maximum *float64) (*kernel.Range, error) {
	if minimum == nil && maximum == nil {
		return nil, nil //nolint:nilnil // no range requested
	}

	lower := decimal.Zero
	if minimum != nil {
		lower = toDecimal(*minimum)
	}
	r, err := kernel.NewRange(lower, toDecimalPtr(maximum))
	if err != nil {
		return nil, err
	}
	return &r, nil
}

package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists every operation of the OpenAPI document.
type ServerInterface interface {
	// (GET /health)
	Health(ctx echo.Context) error
	// (GET /api/v1/classify)
	ClassifyParcel(ctx echo.Context, params ClassifyParcelParams) error

	// (GET /api/v1/parcels)
	ListParcels(ctx echo.Context, params ListParcelsParams) error
	// (POST /api/v1/parcels)
	RegisterParcel(ctx echo.Context) error
	// (GET /api/v1/parcels/{parcelId})
	GetParcel(ctx echo.Context, parcelID openapi_types.UUID) error
	// (PUT /api/v1/parcels/{parcelId}/measurements)
	UpdateParcelMeasurements(ctx echo.Context, parcelID openapi_types.UUID) error
	// (POST /api/v1/parcels/{parcelId}/process)
	ProcessParcel(ctx echo.Context, parcelID openapi_types.UUID) error
	// (POST /api/v1/parcels/{parcelId}/insurance)
	DecideInsurance(ctx echo.Context, parcelID openapi_types.UUID) error
	// (PUT /api/v1/parcels/{parcelId}/status)
	AdvanceParcel(ctx echo.Context, parcelID openapi_types.UUID) error

	// (GET /api/v1/containers)
	ListContainers(ctx echo.Context, params ListContainersParams) error
	// (POST /api/v1/containers)
	ImportContainer(ctx echo.Context) error
	// (POST /api/v1/manifests)
	ImportContainerManifest(ctx echo.Context) error
	// (POST /api/v1/container-statuses/refresh)
	RefreshContainerStatuses(ctx echo.Context) error
	// (GET /api/v1/containers/{containerUuid})
	GetContainer(ctx echo.Context, containerUUID openapi_types.UUID) error
	// (DELETE /api/v1/containers/{containerUuid})
	DeleteContainer(ctx echo.Context, containerUUID openapi_types.UUID) error
	// (PUT /api/v1/containers/{containerUuid}/status)
	AdvanceContainer(ctx echo.Context, containerUUID openapi_types.UUID) error

	// (GET /api/v1/departments)
	ListDepartments(ctx echo.Context, params ListDepartmentsParams) error
	// (POST /api/v1/departments)
	CreateDepartment(ctx echo.Context) error
	// (GET /api/v1/departments/{name})
	GetDepartment(ctx echo.Context, name string) error
	// (PUT /api/v1/departments/{name}/activation)
	ChangeDepartmentActivation(ctx echo.Context, name string) error

	// (GET /api/v1/rules)
	ListRules(ctx echo.Context, params ListRulesParams) error
	// (POST /api/v1/rules)
	CreateRule(ctx echo.Context) error
	// (GET /api/v1/rules/{ruleId})
	GetRule(ctx echo.Context, ruleID openapi_types.UUID) error
	// (PUT /api/v1/rules/{ruleId})
	UpdateRule(ctx echo.Context, ruleID openapi_types.UUID) error
	// (DELETE /api/v1/rules/{ruleId})
	DeleteRule(ctx echo.Context, ruleID openapi_types.UUID) error
	// (PUT /api/v1/rules/{ruleId}/activation)
	ChangeRuleActivation(ctx echo.Context, ruleID openapi_types.UUID) error
}

// ServerInterfaceWrapper binds path and query parameters before calling
// the ServerInterface.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func (w *ServerInterfaceWrapper) ClassifyParcel(ctx echo.Context) error {
	var params ClassifyParcelParams
	if err := bindQuery(ctx, "weight", true, &params.Weight); err != nil {
		return err
	}
	if err := bindQuery(ctx, "value", true, &params.Value); err != nil {
		return err
	}
	return w.Handler.ClassifyParcel(ctx, params)
}

func (w *ServerInterfaceWrapper) ListParcels(ctx echo.Context) error {
	var params ListParcelsParams
	for name, dest := range map[string]any{
		"status":            &params.Status,
		"minWeight":         &params.MinWeight,
		"maxWeight":         &params.MaxWeight,
		"minValue":          &params.MinValue,
		"maxValue":          &params.MaxValue,
		"requiresInsurance": &params.RequiresInsurance,
	} {
		if err := bindQuery(ctx, name, false, dest); err != nil {
			return err
		}
	}
	return w.Handler.ListParcels(ctx, params)
}

func (w *ServerInterfaceWrapper) RegisterParcel(ctx echo.Context) error {
	return w.Handler.RegisterParcel(ctx)
}

func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	id, err := bindUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.GetParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateParcelMeasurements(ctx echo.Context) error {
	id, err := bindUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateParcelMeasurements(ctx, id)
}

func (w *ServerInterfaceWrapper) ProcessParcel(ctx echo.Context) error {
	id, err := bindUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.ProcessParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) DecideInsurance(ctx echo.Context) error {
	id, err := bindUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.DecideInsurance(ctx, id)
}

func (w *ServerInterfaceWrapper) AdvanceParcel(ctx echo.Context) error {
	id, err := bindUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.AdvanceParcel(ctx, id)
}

func (w *ServerInterfaceWrapper) ListContainers(ctx echo.Context) error {
	var params ListContainersParams
	for name, dest := range map[string]any{
		"containerId": &params.ContainerID,
		"status":      &params.Status,
		"from":        &params.From,
		"to":          &params.To,
	} {
		if err := bindQuery(ctx, name, false, dest); err != nil {
			return err
		}
	}
	return w.Handler.ListContainers(ctx, params)
}

func (w *ServerInterfaceWrapper) ImportContainer(ctx echo.Context) error {
	return w.Handler.ImportContainer(ctx)
}

func (w *ServerInterfaceWrapper) ImportContainerManifest(ctx echo.Context) error {
	return w.Handler.ImportContainerManifest(ctx)
}

func (w *ServerInterfaceWrapper) RefreshContainerStatuses(ctx echo.Context) error {
	return w.Handler.RefreshContainerStatuses(ctx)
}

func (w *ServerInterfaceWrapper) GetContainer(ctx echo.Context) error {
	id, err := bindUUID(ctx, "containerUuid")
	if err != nil {
		return err
	}
	return w.Handler.GetContainer(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteContainer(ctx echo.Context) error {
	id, err := bindUUID(ctx, "containerUuid")
	if err != nil {
		return err
	}
	return w.Handler.DeleteContainer(ctx, id)
}

func (w *ServerInterfaceWrapper) AdvanceContainer(ctx echo.Context) error {
	id, err := bindUUID(ctx, "containerUuid")
	if err != nil {
		return err
	}
	return w.Handler.AdvanceContainer(ctx, id)
}

func (w *ServerInterfaceWrapper) ListDepartments(ctx echo.Context) error {
	var params ListDepartmentsParams
	if err := bindQuery(ctx, "active", false, &params.Active); err != nil {
		return err
	}
	return w.Handler.ListDepartments(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateDepartment(ctx echo.Context) error {
	return w.Handler.CreateDepartment(ctx)
}

func (w *ServerInterfaceWrapper) GetDepartment(ctx echo.Context) error {
	name, err := bindString(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.GetDepartment(ctx, name)
}

func (w *ServerInterfaceWrapper) ChangeDepartmentActivation(ctx echo.Context) error {
	name, err := bindString(ctx, "name")
	if err != nil {
		return err
	}
	return w.Handler.ChangeDepartmentActivation(ctx, name)
}

func (w *ServerInterfaceWrapper) ListRules(ctx echo.Context) error {
	var params ListRulesParams
	for name, dest := range map[string]any{
		"active": &params.Active,
		"type":   &params.Type,
		"name":   &params.Name,
	} {
		if err := bindQuery(ctx, name, false, dest); err != nil {
			return err
		}
	}
	return w.Handler.ListRules(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateRule(ctx echo.Context) error {
	return w.Handler.CreateRule(ctx)
}

func (w *ServerInterfaceWrapper) GetRule(ctx echo.Context) error {
	id, err := bindUUID(ctx, "ruleId")
	if err != nil {
		return err
	}
	return w.Handler.GetRule(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateRule(ctx echo.Context) error {
	id, err := bindUUID(ctx, "ruleId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateRule(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteRule(ctx echo.Context) error {
	id, err := bindUUID(ctx, "ruleId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteRule(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangeRuleActivation(ctx echo.Context) error {
	id, err := bindUUID(ctx, "ruleId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeRuleActivation(ctx, id)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers routes every operation of si onto router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", w.Health)
	router.GET("/api/v1/classify", w.ClassifyParcel)

	router.GET("/api/v1/parcels", w.ListParcels)
	router.POST("/api/v1/parcels", w.RegisterParcel)
	router.GET("/api/v1/parcels/:parcelId", w.GetParcel)
	router.PUT("/api/v1/parcels/:parcelId/measurements", w.UpdateParcelMeasurements)
	router.POST("/api/v1/parcels/:parcelId/process", w.ProcessParcel)
	router.POST("/api/v1/parcels/:parcelId/insurance", w.DecideInsurance)
	router.PUT("/api/v1/parcels/:parcelId/status", w.AdvanceParcel)

	router.GET("/api/v1/containers", w.ListContainers)
	router.POST("/api/v1/containers", w.ImportContainer)
	router.POST("/api/v1/manifests", w.ImportContainerManifest)
	router.POST("/api/v1/container-statuses/refresh", w.RefreshContainerStatuses)
	router.GET("/api/v1/containers/:containerUuid", w.GetContainer)
	router.DELETE("/api/v1/containers/:containerUuid", w.DeleteContainer)
	router.PUT("/api/v1/containers/:containerUuid/status", w.AdvanceContainer)

	router.GET("/api/v1/departments", w.ListDepartments)
	router.POST("/api/v1/departments", w.CreateDepartment)
	router.GET("/api/v1/departments/:name", w.GetDepartment)
	router.PUT("/api/v1/departments/:name/activation", w.ChangeDepartmentActivation)

	router.GET("/api/v1/rules", w.ListRules)
	router.POST("/api/v1/rules", w.CreateRule)
	router.GET("/api/v1/rules/:ruleId", w.GetRule)
	router.PUT("/api/v1/rules/:ruleId", w.UpdateRule)
	router.DELETE("/api/v1/rules/:ruleId", w.DeleteRule)
	router.PUT("/api/v1/rules/:ruleId/activation", w.ChangeRuleActivation)
}

func bindUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &id)
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindString(ctx echo.Context, name string) (string, error) {
	var s string
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, ctx.Param(name), &s)
	if err != nil {
		return s, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return s, nil
}

func bindQuery(ctx echo.Context, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

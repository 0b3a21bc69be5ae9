package http

import (
	"net/http"

	"parcelrouting/internal/adapters/in/http/api"
	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/application/usecases/queries"
	"parcelrouting/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListDepartments handles GET /api/v1/departments.
func (s *Server) ListDepartments(ctx echo.Context, params api.ListDepartmentsParams) error {
	activeOnly := params.Active != nil && *params.Active

	views, err := s.queries.ListDepartments.Handle(ctx.Request().Context(), queries.NewListDepartmentsQuery(activeOnly))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]api.Department, len(views))
	for i, v := range views {
		response[i] = toDepartment(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateDepartment handles POST /api/v1/departments.
func (s *Server) CreateDepartment(ctx echo.Context) error {
	var body api.NewDepartment
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateDepartmentCommand(kernel.NewUUID(), body.Name, body.Description)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateDepartment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondDepartment(ctx, http.StatusCreated, body.Name)
}

// GetDepartment handles GET /api/v1/departments/{name}.
func (s *Server) GetDepartment(ctx echo.Context, name string) error {
	return s.respondDepartment(ctx, http.StatusOK, name)
}

// ChangeDepartmentActivation handles PUT /api/v1/departments/{name}/activation.
func (s *Server) ChangeDepartmentActivation(ctx echo.Context, name string) error {
	var body api.Activation
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	view, err := s.department(ctx, name)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeDepartmentActivationCommand(view.ID, *body.Active)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ChangeDepartmentActivation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondDepartment(ctx, http.StatusOK, name)
}

func (s *Server) department(ctx echo.Context, name string) (queries.DepartmentView, error) {
	query, err := queries.NewGetDepartmentQuery(name)
	if err != nil {
		return queries.DepartmentView{}, err
	}
	return s.queries.GetDepartment.Handle(ctx.Request().Context(), query)
}

func (s *Server) respondDepartment(ctx echo.Context, code int, name string) error {
	view, err := s.department(ctx, name)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toDepartment(view))
}

package queries

import (
	"context"

	"parcelrouting/internal/core/ports"
	"parcelrouting/internal/pkg/errs"
)

// GetDepartmentQueryHandler reads a single department by name.
type GetDepartmentQueryHandler struct {
	departments ports.DepartmentRepository
}

// NewGetDepartmentQueryHandler creates the handler.
func NewGetDepartmentQueryHandler(departments ports.DepartmentRepository) GetDepartmentQueryHandler {
	return GetDepartmentQueryHandler{departments: departments}
}

// Handle returns the department, or errs.ObjectNotFoundError.
func (h GetDepartmentQueryHandler) Handle(_ context.Context, query GetDepartmentQuery) (DepartmentView, error) {
	if err := query.Validate(); err != nil {
		return DepartmentView{}, err
	}

	d, ok := h.departments.GetByName(query.Name())
	if !ok {
		return DepartmentView{}, errs.NewObjectNotFoundError("department", query.Name())
	}
	return newDepartmentView(d), nil
}

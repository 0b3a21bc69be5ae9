package queries

import (
	"context"
	"sort"

	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/ports"
)

// ListDepartmentsQueryHandler lists the department directory.
type ListDepartmentsQueryHandler struct {
	departments ports.DepartmentRepository
}

// NewListDepartmentsQueryHandler creates the handler.
func NewListDepartmentsQueryHandler(departments ports.DepartmentRepository) ListDepartmentsQueryHandler {
	return ListDepartmentsQueryHandler{departments: departments}
}

// Handle returns the departments sorted by name. The result is never nil.
func (h ListDepartmentsQueryHandler) Handle(_ context.Context, query ListDepartmentsQuery) ([]DepartmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var departments []*department.Department
	if query.ActiveOnly() {
		departments = h.departments.GetActive()
	} else {
		departments = h.departments.GetAll()
	}

	views := make([]DepartmentView, len(departments))
	for i, d := range departments {
		views[i] = newDepartmentView(d)
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

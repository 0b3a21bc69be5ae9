package queries

import (
	"errors"
	"strings"

	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var ErrGetDepartmentQueryIsNotConstructed = errors.New(
	"GetDepartmentQuery must be created via NewGetDepartmentQuery constructor",
)

// GetDepartmentQuery looks a department up by name, ignoring case.
type GetDepartmentQuery struct {
	name  string
	guard guard.ConstructorGuard
}

// NewGetDepartmentQuery creates a lookup by department name.
func NewGetDepartmentQuery(name string) (GetDepartmentQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GetDepartmentQuery{}, errs.NewValueIsRequiredError("name")
	}
	return GetDepartmentQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDepartmentQuery) Validate() error {
	return q.guard.Validate(ErrGetDepartmentQueryIsNotConstructed)
}

// Name returns the department name to look up.
func (q GetDepartmentQuery) Name() string {
	return q.name
}

package queries

import (
	"errors"

	"parcelrouting/internal/pkg/guard"
)

var ErrListDepartmentsQueryIsNotConstructed = errors.New(
	"ListDepartmentsQuery must be created via NewListDepartmentsQuery constructor",
)

// ListDepartmentsQuery lists the department directory ordered by name.
type ListDepartmentsQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

// NewListDepartmentsQuery creates the query. With activeOnly set, inactive
// departments are left out.
func NewListDepartmentsQuery(activeOnly bool) ListDepartmentsQuery {
	return ListDepartmentsQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDepartmentsQuery) Validate() error {
	return q.guard.Validate(ErrListDepartmentsQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive departments are left out.
func (q ListDepartmentsQuery) ActiveOnly() bool {
	return q.activeOnly
}

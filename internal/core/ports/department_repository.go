package ports

import (
	"parcelrouting/internal/core/domain/model/department"
)

// DepartmentRepository is the department directory, uniquely indexed by name.
type DepartmentRepository interface {
	Repository[*department.Department]

	// GetByName looks a department up by its unique name.
	GetByName(name string) (*department.Department, bool)

	// GetActive returns the active departments.
	GetActive() []*department.Department
}

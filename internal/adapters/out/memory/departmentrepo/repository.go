// Package departmentrepo implements the department directory on the in-memory
// store. Names are unique regardless of case.
package departmentrepo

import (
	"strings"

	"parcelrouting/internal/adapters/out/memory"
	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/ports"
)

const nameIndex = "name"

var _ ports.DepartmentRepository = (*Repository)(nil)

// Repository stores departments by id and by name.
type Repository struct {
	*memory.Store[*department.Department]
}

// NewRepository creates an empty department directory.
func NewRepository() *Repository {
	return &Repository{
		Store: memory.NewStore("department",
			(*department.Department).ID,
			memory.WithClone((*department.Department).Clone),
			memory.WithValidator((*department.Department).Validate),
			memory.WithUniqueIndex(nameIndex, func(d *department.Department) string {
				return nameKey(d.Name())
			}),
		),
	}
}

// GetByName looks a department up by name, ignoring case.
func (r *Repository) GetByName(name string) (*department.Department, bool) {
	return r.GetBy(nameIndex, nameKey(name))
}

// GetActive returns the active departments.
func (r *Repository) GetActive() []*department.Department {
	return r.Find((*department.Department).IsActive)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

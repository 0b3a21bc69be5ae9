package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// SeedDepartmentsCommandHandler creates Mail, Regular, Heavy and Insurance
// when missing. Running it twice changes nothing.
type SeedDepartmentsCommandHandler struct {
	departments ports.DepartmentRepository
	logger      *zap.Logger
}

// NewSeedDepartmentsCommandHandler creates the handler.
func NewSeedDepartmentsCommandHandler(departments ports.DepartmentRepository, logger *zap.Logger) SeedDepartmentsCommandHandler {
	return SeedDepartmentsCommandHandler{
		departments: departments,
		logger:      logger.Named("seed_departments"),
	}
}

// Handle adds the missing default departments.
func (h *SeedDepartmentsCommandHandler) Handle(_ context.Context, cmd SeedDepartmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for _, def := range department.DefaultNames() {
		if _, exists := h.departments.GetByName(def[0]); exists {
			continue
		}

		d, err := department.NewDepartment(kernel.NewUUID(), def[0], def[1])
		if err != nil {
			return err
		}
		if _, err = h.departments.Add(d); err != nil {
			return err
		}
		h.logger.Debug("default department seeded", zap.String("name", d.Name()))
	}
	return nil
}

package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// CreateDepartmentCommandHandler adds active departments to the directory.
type CreateDepartmentCommandHandler struct {
	departments ports.DepartmentRepository
	logger      *zap.Logger
}

// NewCreateDepartmentCommandHandler creates the handler.
func NewCreateDepartmentCommandHandler(departments ports.DepartmentRepository, logger *zap.Logger) CreateDepartmentCommandHandler {
	return CreateDepartmentCommandHandler{
		departments: departments,
		logger:      logger.Named("create_department"),
	}
}

// Handle creates the department. Names are unique in the directory.
func (h *CreateDepartmentCommandHandler) Handle(_ context.Context, cmd CreateDepartmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := department.NewDepartment(cmd.ID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	if _, err = h.departments.Add(d); err != nil {
		return err
	}

	h.logger.Info("department created", zap.Stringer("department_id", d.ID()), zap.String("name", d.Name()))
	return nil
}

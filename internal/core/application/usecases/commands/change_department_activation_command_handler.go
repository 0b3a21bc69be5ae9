package commands

import (
	"context"

	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// ChangeDepartmentActivationCommandHandler toggles the active flag of a department.
// Inactive departments keep their existing assignments but receive no new parcels.
type ChangeDepartmentActivationCommandHandler struct {
	departments ports.DepartmentRepository
	logger      *zap.Logger
}

// NewChangeDepartmentActivationCommandHandler creates the handler.
func NewChangeDepartmentActivationCommandHandler(
	departments ports.DepartmentRepository,
	logger *zap.Logger,
) ChangeDepartmentActivationCommandHandler {
	return ChangeDepartmentActivationCommandHandler{
		departments: departments,
		logger:      logger.Named("change_department_activation"),
	}
}

// Handle activates or deactivates the department.
func (h *ChangeDepartmentActivationCommandHandler) Handle(_ context.Context, cmd ChangeDepartmentActivationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := loadDepartment(h.departments, cmd.ID())
	if err != nil {
		return err
	}

	if cmd.Active() {
		d.Activate()
	} else {
		d.Deactivate()
	}

	if _, err = h.departments.Update(d); err != nil {
		return err
	}

	h.logger.Info("department activation changed", zap.String("name", d.Name()), zap.Bool("active", d.IsActive()))
	return nil
}

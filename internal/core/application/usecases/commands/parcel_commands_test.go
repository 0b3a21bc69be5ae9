package commands_test

import (
	"testing"

	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterParcelCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewRegisterParcelCommand(kernel.NewUUID(), " Jan ", address(), dec("2"), dec("40"))
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Jan", cmd.RecipientName())
	})

	t.Run("blank recipient", func(t *testing.T) {
		_, err := commands.NewRegisterParcelCommand(kernel.NewUUID(), "  ", address(), dec("2"), dec("40"))
		require.ErrorIs(t, err, commands.ErrRecipientNameIsRequired)
	})

	t.Run("zero value command", func(t *testing.T) {
		var cmd commands.RegisterParcelCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterParcelCommandIsNotConstructed)
	})
}

func TestRegisterParcelCommandHandler_Handle(t *testing.T) {
	t.Run("stores a pending parcel", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2.5", "80")

		p, ok := e.parcels.Get(id)
		require.True(t, ok)
		assert.Equal(t, parcel.Pending, p.Status())
		assert.Equal(t, "5911AB", p.Recipient().Address().PostalCode())
		assert.Empty(t, p.DepartmentNames())
	})

	t.Run("duplicate id", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")

		cmd, err := commands.NewRegisterParcelCommand(id, "Piet", address(), dec("3"), dec("50"))
		require.NoError(t, err)
		h := commands.NewRegisterParcelCommandHandler(e.parcels, e.logger)
		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectAlreadyExists)
	})

	t.Run("invalid postal code", func(t *testing.T) {
		e := newEnv(t)
		fields := address()
		fields.PostalCode = "59A"
		cmd, err := commands.NewRegisterParcelCommand(kernel.NewUUID(), "Jan", fields, dec("2"), dec("40"))
		require.NoError(t, err)

		h := commands.NewRegisterParcelCommandHandler(e.parcels, e.logger)
		err = h.Handle(t.Context(), cmd)
		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
		assert.Empty(t, e.parcels.GetAll())
	})

	t.Run("negative weight", func(t *testing.T) {
		e := newEnv(t)
		cmd, err := commands.NewRegisterParcelCommand(kernel.NewUUID(), "Jan", address(), dec("-1"), dec("40"))
		require.NoError(t, err)

		h := commands.NewRegisterParcelCommandHandler(e.parcels, e.logger)
		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrValueIsOutOfRange)
	})

	t.Run("command not constructed", func(t *testing.T) {
		e := newEnv(t)
		h := commands.NewRegisterParcelCommandHandler(e.parcels, e.logger)
		require.ErrorIs(t, h.Handle(t.Context(), commands.RegisterParcelCommand{}),
			commands.ErrRegisterParcelCommandIsNotConstructed)
	})
}

func TestProcessParcelCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name        string
		weight      string
		value       string
		status      parcel.Status
		departments []string
	}{
		{"mail band", "0.5", "20", parcel.AssignedToDepartment, []string{department.Mail}},
		{"regular band", "5", "200", parcel.AssignedToDepartment, []string{department.Regular}},
		{"heavy band", "25", "500", parcel.AssignedToDepartment, []string{department.Heavy}},
		{"insured parcel waits for approval", "5", "1500", parcel.InsuranceApprovalRequired, []string{department.Insurance}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			id := e.register(t, tt.weight, tt.value)

			require.NoError(t, e.process(t, id))

			p, ok := e.parcels.Get(id)
			require.True(t, ok)
			assert.Equal(t, tt.status, p.Status())
			assert.Equal(t, tt.departments, p.DepartmentNames())
		})
	}

	t.Run("custom weight rule wins over the default band", func(t *testing.T) {
		e := newEnv(t)
		createRule(t, e, rule.Definition{
			Name:             "Light regular",
			Type:             rule.Weight,
			Minimum:          dec("0"),
			Maximum:          ptr(dec("3")),
			TargetDepartment: department.Regular,
		})
		id := e.register(t, "0.5", "20")

		require.NoError(t, e.process(t, id))

		p, _ := e.parcels.Get(id)
		assert.Equal(t, []string{department.Regular}, p.DepartmentNames())
	})

	t.Run("parcel already processed", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		require.NoError(t, e.process(t, id))

		require.ErrorIs(t, e.process(t, id), errs.ErrStatusTransitionIsInvalid)
	})

	t.Run("inactive department leaves the parcel pending", func(t *testing.T) {
		e := newEnv(t)
		mail, ok := e.departments.GetByName(department.Mail)
		require.True(t, ok)
		changeDepartmentActivation(t, e, mail.ID(), false)
		id := e.register(t, "0.5", "20")

		err := e.process(t, id)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorContains(t, err, department.ErrDepartmentIsInactive.Error())

		p, _ := e.parcels.Get(id)
		assert.Equal(t, parcel.Pending, p.Status())
	})

	t.Run("unknown parcel", func(t *testing.T) {
		e := newEnv(t)
		require.ErrorIs(t, e.process(t, kernel.NewUUID()), errs.ErrObjectNotFound)
	})

	t.Run("container copy follows the parcel", func(t *testing.T) {
		e := newEnv(t)
		containerUUID, err := e.importManifest(t, "CONT-1", line("2", "40"))
		require.NoError(t, err)
		c, _ := e.containers.Get(containerUUID)
		parcelID := c.ParcelIDs()[0]

		require.NoError(t, e.process(t, parcelID))

		c, _ = e.containers.Get(containerUUID)
		require.Len(t, c.Parcels(), 1)
		assert.Equal(t, parcel.AssignedToDepartment, c.Parcels()[0].Status())
	})
}

func TestDecideInsuranceCommandHandler_Handle(t *testing.T) {
	t.Run("approved parcel gets its weight department", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "12", "2500")
		require.NoError(t, e.process(t, id))

		require.NoError(t, e.decide(t, id, true))

		p, _ := e.parcels.Get(id)
		assert.Equal(t, parcel.AssignedToDepartment, p.Status())
		assert.Equal(t, []string{department.Heavy, department.Insurance}, p.DepartmentNames())
	})

	t.Run("rejected parcel stops", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "2500")
		require.NoError(t, e.process(t, id))

		require.NoError(t, e.decide(t, id, false))

		p, _ := e.parcels.Get(id)
		assert.Equal(t, parcel.InsuranceRejected, p.Status())
		assert.True(t, p.Status().IsTerminal())
	})

	t.Run("parcel not waiting for approval", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		require.NoError(t, e.process(t, id))

		var transitionErr *errs.StatusTransitionIsInvalidError
		require.ErrorAs(t, e.decide(t, id, true), &transitionErr)
		assert.Equal(t, "parcel", transitionErr.Entity)
	})
}

func TestAdvanceParcelCommand(t *testing.T) {
	t.Run("routing statuses are rejected", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.Pending, parcel.Processing, parcel.AssignedToDepartment} {
			_, err := commands.NewAdvanceParcelCommand(kernel.NewUUID(), s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s.String())
		}
	})

	t.Run("lifecycle", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		require.NoError(t, e.process(t, id))
		h := commands.NewAdvanceParcelCommandHandler(e.parcels, e.containers, e.logger)

		for _, s := range []parcel.Status{parcel.Processed, parcel.Shipped, parcel.Delivered} {
			cmd, err := commands.NewAdvanceParcelCommand(id, s)
			require.NoError(t, err)
			require.NoError(t, h.Handle(t.Context(), cmd), s.String())
		}

		p, _ := e.parcels.Get(id)
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("skipping a step fails", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		require.NoError(t, e.process(t, id))
		h := commands.NewAdvanceParcelCommandHandler(e.parcels, e.containers, e.logger)

		cmd, err := commands.NewAdvanceParcelCommand(id, parcel.Delivered)
		require.NoError(t, err)
		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrStatusTransitionIsInvalid)

		p, _ := e.parcels.Get(id)
		assert.Equal(t, parcel.AssignedToDepartment, p.Status())
	})

	t.Run("pending parcel can fail", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		h := commands.NewAdvanceParcelCommandHandler(e.parcels, e.containers, e.logger)

		cmd, err := commands.NewAdvanceParcelCommand(id, parcel.Failed)
		require.NoError(t, err)
		require.NoError(t, h.Handle(t.Context(), cmd))

		p, _ := e.parcels.Get(id)
		assert.Equal(t, parcel.Failed, p.Status())
	})
}

func TestUpdateParcelMeasurementsCommandHandler_Handle(t *testing.T) {
	t.Run("updates both measurements", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		cmd, err := commands.NewUpdateParcelMeasurementsCommand(id, dec("3.25"), dec("55"))
		require.NoError(t, err)

		h := commands.NewUpdateParcelMeasurementsCommandHandler(e.parcels, e.containers, e.logger)
		require.NoError(t, h.Handle(t.Context(), cmd))

		p, _ := e.parcels.Get(id)
		assert.True(t, p.Weight().Equal(dec("3.25")))
		assert.True(t, p.Value().Equal(dec("55")))
	})

	t.Run("invalid value keeps the old weight", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		cmd, err := commands.NewUpdateParcelMeasurementsCommand(id, dec("3"), dec("-5"))
		require.NoError(t, err)

		h := commands.NewUpdateParcelMeasurementsCommandHandler(e.parcels, e.containers, e.logger)
		require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrValueIsOutOfRange)

		p, _ := e.parcels.Get(id)
		assert.True(t, p.Weight().Equal(dec("2")))
	})

	t.Run("routed parcel keeps its measurements and departments", func(t *testing.T) {
		e := newEnv(t)
		id := e.register(t, "2", "40")
		require.NoError(t, e.process(t, id))

		cmd, err := commands.NewUpdateParcelMeasurementsCommand(id, dec("50"), dec("5000"))
		require.NoError(t, err)
		h := commands.NewUpdateParcelMeasurementsCommandHandler(e.parcels, e.containers, e.logger)
		err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorContains(t, err, parcel.ErrMeasurementsAreLocked.Error())

		p, _ := e.parcels.Get(id)
		assert.Equal(t, parcel.AssignedToDepartment, p.Status())
		assert.False(t, p.RequiresInsuranceApproval())
		assert.True(t, p.Value().Equal(dec("40")))
		assert.Equal(t, []string{"Regular"}, p.DepartmentNames())
	})
}

func ptr[T any](v T) *T {
	return &v
}

func createRule(t *testing.T, e *env, def rule.Definition) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRuleCommand(id, def)
	require.NoError(t, err)
	h := commands.NewCreateRuleCommandHandler(e.rules, e.departments, e.logger)
	require.NoError(t, h.Handle(t.Context(), cmd))
	return id
}

func changeDepartmentActivation(t *testing.T, e *env, id kernel.UUID, active bool) {
	t.Helper()
	cmd, err := commands.NewChangeDepartmentActivationCommand(id, active)
	require.NoError(t, err)
	h := commands.NewChangeDepartmentActivationCommandHandler(e.departments, e.logger)
	require.NoError(t, h.Handle(t.Context(), cmd))
}


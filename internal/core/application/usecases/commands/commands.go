// Package commands contains business operations that modify system state.
// Every command is a validated value built through its constructor; every
// handler checks the command, loads aggregates from the ports, lets the
// domain decide, and writes the result back.
//
// There is no transaction spanning stores. Handlers touching several stores
// write each one independently and compensate where a later write fails.
package commands

import (
	"errors"

	"parcelrouting/internal/core/domain/model/container"
	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/ports"
	"parcelrouting/internal/pkg/errs"
)

func loadDepartment(departments ports.DepartmentRepository, id kernel.UUID) (*department.Department, error) {
	d, ok := departments.Get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("department", id.String())
	}
	return d, nil
}

func loadRule(rules ports.RuleRepository, id kernel.UUID) (*rule.BusinessRule, error) {
	r, ok := rules.Get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("rule", id.String())
	}
	return r, nil
}

// modifyParcel applies mutate to the stored parcel in one store critical
// section, then refreshes the copy held by its container, if any.
func modifyParcel(
	parcels ports.ParcelRepository,
	containers ports.ContainerRepository,
	id kernel.UUID,
	mutate func(*parcel.Parcel) error,
) (*parcel.Parcel, error) {
	p, err := parcels.Modify(id, func(p *parcel.Parcel) (*parcel.Parcel, error) {
		if err := mutate(p); err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return p, syncContainerCopy(parcels, containers, id)
}

// syncContainerCopy copies the latest stored state of the parcel into the
// container owning it. The parcel is read inside the container's critical
// section, so concurrent syncs converge on the newest parcel state.
func syncContainerCopy(parcels ports.ParcelRepository, containers ports.ContainerRepository, parcelID kernel.UUID) error {
	c, ok := containers.GetByParcel(parcelID)
	if !ok {
		return nil
	}

	_, err := containers.Modify(c.ID(), func(c *container.ShippingContainer) (*container.ShippingContainer, error) {
		latest, found := parcels.Get(parcelID)
		if !found {
			return c, nil
		}
		if err := c.ReplaceParcel(latest); err != nil {
			return nil, err
		}
		return c, nil
	})
	if errors.Is(err, errs.ErrObjectNotFound) {
		// container deleted meanwhile
		return nil
	}
	return err
}

// ensureDepartmentExists resolves a rule's target department by name.
func ensureDepartmentExists(departments ports.DepartmentRepository, name string) error {
	if _, ok := departments.GetByName(name); !ok {
		return errs.NewReferenceIsUnresolvableError("department", name)
	}
	return nil
}

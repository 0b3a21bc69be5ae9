package services

import (
	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/pkg/errs"
)

// DepartmentLookup finds departments by their unique name.
type DepartmentLookup interface {
	GetByName(name string) (*department.Department, bool)
}

// RoutingDecision records what a routing step did to a parcel.
type RoutingDecision struct {
	Status      parcel.Status
	Assigned    []string
	Resolutions []Resolution
}

// ParcelRouter drives a parcel through processing and insurance approval.
//
// Business rules:
//   - Processing resolves the parcel's value; a resolved department is assigned
//   - Parcels requiring insurance stop at InsuranceApprovalRequired
//   - Every other parcel is assigned its weight department and reaches AssignedToDepartment
//   - Approved parcels are assigned their weight department; rejected parcels get nothing more
//
// The router mutates the parcel it is given and never touches a store.
// On error the parcel may be partially changed and must be discarded.
type ParcelRouter struct {
	resolver    *RuleResolver
	departments DepartmentLookup
}

// NewParcelRouter creates a ParcelRouter.
func NewParcelRouter(resolver *RuleResolver, departments DepartmentLookup) *ParcelRouter {
	return &ParcelRouter{resolver: resolver, departments: departments}
}

// Process moves a Pending parcel through Processing to either
// InsuranceApprovalRequired or AssignedToDepartment.
//
// Returns:
//   - errs.StatusTransitionIsInvalidError when the parcel is not Pending
//   - errs.ReferenceIsUnresolvableError when a resolved department does not exist
//   - department.ErrDepartmentIsInactive (wrapped) when it is inactive
func (r *ParcelRouter) Process(p *parcel.Parcel) (RoutingDecision, error) {
	var decision RoutingDecision

	if err := p.TransitionTo(parcel.Processing); err != nil {
		return decision, err
	}

	if err := r.assignResolved(p, rule.Value, &decision); err != nil {
		return decision, err
	}

	if p.RequiresInsuranceApproval() {
		if err := p.TransitionTo(parcel.InsuranceApprovalRequired); err != nil {
			return decision, err
		}
		decision.Status = p.Status()
		return decision, nil
	}

	if err := r.assignWeightDepartment(p, &decision); err != nil {
		return decision, err
	}
	decision.Status = p.Status()
	return decision, nil
}

// DecideInsurance records the insurance outcome of a parcel waiting for approval.
// Approved parcels continue to their weight department.
func (r *ParcelRouter) DecideInsurance(p *parcel.Parcel, approved bool) (RoutingDecision, error) {
	var decision RoutingDecision

	if !approved {
		if err := p.TransitionTo(parcel.InsuranceRejected); err != nil {
			return decision, err
		}
		decision.Status = p.Status()
		return decision, nil
	}

	if err := p.TransitionTo(parcel.InsuranceApproved); err != nil {
		return decision, err
	}
	if err := r.assignWeightDepartment(p, &decision); err != nil {
		return decision, err
	}
	decision.Status = p.Status()
	return decision, nil
}

func (r *ParcelRouter) assignWeightDepartment(p *parcel.Parcel, decision *RoutingDecision) error {
	if err := r.assignResolved(p, rule.Weight, decision); err != nil {
		return err
	}
	return p.TransitionTo(parcel.AssignedToDepartment)
}

func (r *ParcelRouter) assignResolved(p *parcel.Parcel, ruleType rule.Type, decision *RoutingDecision) error {
	measurement := p.Weight()
	if ruleType == rule.Value {
		measurement = p.Value()
	}

	res, err := r.resolver.Resolve(ruleType, measurement)
	if err != nil {
		return err
	}
	decision.Resolutions = append(decision.Resolutions, res)
	if !res.Found() {
		return nil
	}

	d, err := r.Department(res.Department)
	if err != nil {
		return err
	}
	if err = p.AssignDepartment(d); err != nil {
		return err
	}
	decision.Assigned = append(decision.Assigned, d.Name())
	return nil
}

// Department looks a department up by name.
//
// Returns:
//   - errs.ReferenceIsUnresolvableError when no department has that name
func (r *ParcelRouter) Department(name string) (*department.Department, error) {
	d, ok := r.departments.GetByName(name)
	if !ok {
		return nil, errs.NewReferenceIsUnresolvableError("department", name)
	}
	return d, nil
}

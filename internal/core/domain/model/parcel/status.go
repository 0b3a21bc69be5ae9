package parcel

import (
	"fmt"
	"strings"

	"parcelrouting/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a registered parcel.
	Pending

	// Processing indicates the parcel is being classified.
	Processing

	// InsuranceApprovalRequired holds a valuable parcel until insurance decides.
	InsuranceApprovalRequired

	// InsuranceApproved indicates insurance accepted the parcel.
	InsuranceApproved

	// InsuranceRejected indicates insurance refused the parcel.
	// The parcel is not assigned to any further department.
	InsuranceRejected

	// AssignedToDepartment indicates the parcel was routed to its weight department.
	AssignedToDepartment

	// Processed indicates the department finished handling the parcel.
	Processed

	// Shipped indicates the parcel left the distribution center.
	Shipped

	// Delivered is terminal.
	Delivered

	// Failed is terminal and reachable from every non-terminal status.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                   "Unknown",
		Pending:                   "Pending",
		Processing:                "Processing",
		InsuranceApprovalRequired: "InsuranceApprovalRequired",
		InsuranceApproved:         "InsuranceApproved",
		InsuranceRejected:         "InsuranceRejected",
		AssignedToDepartment:      "AssignedToDepartment",
		Processed:                 "Processed",
		Shipped:                   "Shipped",
		Delivered:                 "Delivered",
		Failed:                    "Failed",
	}
}

// getTransitions lists the statuses reachable from each non-terminal status,
// Failed excluded.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[Status][]Status{
		Pending:                   {Processing},
		Processing:                {InsuranceApprovalRequired, AssignedToDepartment},
		InsuranceApprovalRequired: {InsuranceApproved, InsuranceRejected},
		InsuranceApproved:         {AssignedToDepartment},
		InsuranceRejected:         {},
		AssignedToDepartment:      {Processed},
		Processed:                 {Shipped},
		Shipped:                   {Delivered},
	}
}

// getProgress orders the statuses along the happy path.
func getProgress() map[Status]int {
	//nolint:exhaustive // Unknown and Failed are off the path
	return map[Status]int{
		Pending:                   1,
		Processing:                2,
		InsuranceApprovalRequired: 3,
		InsuranceApproved:         4,
		InsuranceRejected:         4,
		AssignedToDepartment:      5,
		Processed:                 6,
		Shipped:                   7,
		Delivered:                 8,
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		Pending,
		Processing,
		InsuranceApprovalRequired,
		InsuranceApproved,
		InsuranceRejected,
		AssignedToDepartment,
		Processed,
		Shipped,
		Delivered,
		Failed,
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name, case-insensitively, into a Status.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, strings.TrimSpace(name)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// HasReached reports whether s is milestone or lies after it on the happy path.
// Failed has reached nothing.
func (s Status) HasReached(milestone Status) bool {
	progress := getProgress()
	current, ok := progress[s]
	if !ok {
		return false
	}
	target, ok := progress[milestone]
	return ok && current >= target
}

// CanTransitionTo reports whether the state graph allows moving from s to next.
//
// requiresInsurance routes Processing through InsuranceApprovalRequired:
// insured parcels may not jump straight to AssignedToDepartment, and
// uninsured parcels have nothing to approve.
func (s Status) CanTransitionTo(next Status, requiresInsurance bool) bool {
	if s.Validate() != nil || next.Validate() != nil || s.IsTerminal() {
		return false
	}
	if next == Failed {
		return true
	}

	if s == Processing {
		switch next { //nolint:exhaustive // other targets are not reachable from Processing
		case InsuranceApprovalRequired:
			return requiresInsurance
		case AssignedToDepartment:
			return !requiresInsurance
		default:
			return false
		}
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

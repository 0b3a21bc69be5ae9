// Package parcel implements the Parcel aggregate and its lifecycle.
//
// A parcel is registered for a recipient with a weight and a declared value,
// then processed: it is assigned to the department handling its weight band
// and, when valuable, must pass insurance approval first.
//
// State machine:
//
//	Pending ──> Processing ──────────────────────────────────────> AssignedToDepartment
//	                │                                                  ▲
//	                └──> InsuranceApprovalRequired ──> InsuranceApproved ┘
//	                                  │
//	                                  └──> InsuranceRejected
//
//	AssignedToDepartment ──> Processed ──> Shipped ──> Delivered
//
//	Failed is reachable from every non-terminal state. Delivered and Failed are terminal.
//
// Key business rules:
//   - Weight is strictly positive, value is never negative
//   - Exactly one weight band applies: mail (<= 1 kg), regular (<= 10 kg), heavy (> 10 kg)
//   - Parcels valued over 1000 require insurance approval before assignment
//   - Assigning the same department twice keeps a single assignment
//
// UpdateStatus sets any valid status without consulting the state graph.
// Workflows use TransitionTo, which rejects transitions the graph does not allow.
package parcel

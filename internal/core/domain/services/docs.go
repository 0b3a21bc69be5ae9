// Package services provides domain services that coordinate business
// decisions spanning several aggregates of the parcel routing system.
//
// The package includes:
//   - RuleResolver: maps a weight or value measurement to a department name,
//     preferring active custom rules over the fixed default bands
//   - ParcelRouter: drives a parcel through processing and insurance
//     approval, assigning the departments the resolver picks
//   - ContainerStatusAggregator: derives a container status from the
//     statuses of its parcels
package services

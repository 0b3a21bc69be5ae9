// Package container implements the ShippingContainer aggregate.
//
// A shipping container is identified internally by a UUID and externally by
// its human-facing container id (e.g. "CONT-2024-001"). It owns an ordered
// collection of parcels and carries its own lifecycle:
//
//	Pending ──> Processing ──> Processed ──> Shipped ──> Delivered
//
// Failed is reachable from every non-terminal state. Delivered and Failed
// are terminal. The container never derives its status from its parcels;
// workflows advance it explicitly.
package container

// Package kernel holds the primitives shared by every aggregate of the parcel
// routing domain: entity identifiers (UUID) and closed measurement intervals
// (Range) used by rule thresholds and range queries.
package kernel

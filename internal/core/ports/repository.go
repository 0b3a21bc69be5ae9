// Package ports defines the storage contracts of the parcel routing core.
// Adapters implement them; command and query handlers depend on them only.
//
// Reads never fail: a missing entity is reported through the boolean result.
// Writes fail with the errs taxonomy and leave the store unchanged on error.
package ports

import (
	"parcelrouting/internal/core/domain/model/kernel"
)

// Repository is the keyed store contract shared by every entity type.
type Repository[T any] interface {
	// Get returns the entity with id, or false when absent.
	Get(id kernel.UUID) (T, bool)

	// GetAll returns a snapshot of every entity in insertion order.
	// Later store mutations do not affect the returned slice.
	GetAll() []T

	// Add inserts entity.
	// Fails with errs.ObjectAlreadyExistsError when its id or a unique key is taken.
	Add(entity T) (T, error)

	// Update replaces the stored entity with the same id. Last writer wins.
	// Fails with errs.ObjectNotFoundError when the id is unknown.
	Update(entity T) (T, error)

	// Modify applies mutate to a copy of the stored entity with id and stores
	// the result atomically: no other write to the same store interleaves.
	// Nothing is stored when mutate or validation fails.
	// Fails with errs.ObjectNotFoundError when the id is unknown.
	Modify(id kernel.UUID, mutate func(T) (T, error)) (T, error)

	// Delete removes the entity with id.
	// Fails with errs.ObjectNotFoundError when the id is unknown.
	Delete(id kernel.UUID) error

	// Exists reports whether an entity with id is stored.
	Exists(id kernel.UUID) bool
}

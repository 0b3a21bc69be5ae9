package queries

import (
	"errors"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves one parcel by id.
//
// Example:
//
//	query, err := NewGetParcelQuery(parcelID)
//	if err != nil {
//	    return err
//	}
//	view, err := NewGetParcelQueryHandler(parcelRepo).Handle(ctx, query)
type GetParcelQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates the query.
func NewGetParcelQuery(id kernel.UUID) (GetParcelQuery, error) {
	if err := id.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ID returns the parcel identifier to look up.
func (q GetParcelQuery) ID() kernel.UUID {
	return q.id
}

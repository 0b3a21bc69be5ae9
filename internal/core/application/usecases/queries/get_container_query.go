package queries

import (
	"errors"
	"strings"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"
	"parcelrouting/internal/pkg/guard"
)

var ErrGetContainerQueryIsNotConstructed = errors.New(
	"GetContainerQuery must be created via NewGetContainerQuery or NewGetContainerByContainerIDQuery constructor",
)

// GetContainerQuery retrieves one container either by its identifier or by
// its human-facing container id.
type GetContainerQuery struct {
	id          kernel.UUID
	containerID string
	guard       guard.ConstructorGuard
}

// NewGetContainerQuery looks the container up by identifier.
func NewGetContainerQuery(id kernel.UUID) (GetContainerQuery, error) {
	if err := id.Validate(); err != nil {
		return GetContainerQuery{}, err
	}
	return GetContainerQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetContainerByContainerIDQuery looks the container up by container id,
// e.g. "CONT-2024-001".
func NewGetContainerByContainerIDQuery(containerID string) (GetContainerQuery, error) {
	containerID = strings.TrimSpace(containerID)
	if containerID == "" {
		return GetContainerQuery{}, errs.NewValueIsRequiredError("container id")
	}
	return GetContainerQuery{containerID: containerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetContainerQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerQueryIsNotConstructed)
}

// ID returns the container identifier to look up.
func (q GetContainerQuery) ID() kernel.UUID {
	return q.id
}

// ContainerID returns the human-facing container identifier to look up.
func (q GetContainerQuery) ContainerID() string {
	return q.containerID
}

// ByContainerID reports whether the lookup goes through the container id.
func (q GetContainerQuery) ByContainerID() bool { return q.containerID != "" }
